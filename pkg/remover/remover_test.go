//go:build unit

package remover

import (
	"errors"
	"os"
	"testing"

	fsmocks "github.com/lerenn/dotnet-prune/pkg/fs/mocks"
	"github.com/lerenn/dotnet-prune/pkg/logger"
	"github.com/lerenn/dotnet-prune/pkg/project"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const appProject = `<Project Sdk="Microsoft.NET.Sdk">
  <ItemGroup>
    <PackageReference Include="Newtonsoft.Json" Version="13.0.3" />
    <PackageReference Include="Dapper" Version="2.1.0" />
  </ItemGroup>
  <ItemGroup>
    <ProjectReference Include="..\Lib\Lib.csproj" />
  </ItemGroup>
</Project>`

type fakeFileInfo struct {
	os.FileInfo
}

func (fakeFileInfo) Mode() os.FileMode { return 0644 }

type notification struct {
	kind        Kind
	count       int
	projectPath string
	err         error
}

type recordingNotifier struct {
	removed []notification
	failed  []notification
}

func (n *recordingNotifier) Removed(kind Kind, count int, projectPath string) {
	n.removed = append(n.removed, notification{kind: kind, count: count, projectPath: projectPath})
}

func (n *recordingNotifier) RemovalFailed(kind Kind, projectPath string, err error) {
	n.failed = append(n.failed, notification{kind: kind, projectPath: projectPath, err: err})
}

func newTestRemover(mockFS *fsmocks.MockFS, notifier Notifier) *realRemover {
	return &realRemover{
		fs:       mockFS,
		logger:   logger.NewNoopLogger(),
		notifier: notifier,
	}
}

func TestRemoveUnusedPackages_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: any file system access fails the test.
	notifier := &recordingNotifier{}
	remover := newTestRemover(fsmocks.NewMockFS(ctrl), notifier)

	assert.True(t, remover.RemoveUnusedPackages(nil))
	assert.True(t, remover.RemoveUnusedPackages([]project.PackageReference{}))
	assert.True(t, remover.RemoveUnusedProjectReferences(nil))
	assert.Empty(t, notifier.removed)
	assert.Empty(t, notifier.failed)
}

func TestRemoveUnusedPackages_GroupsByProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	notifier := &recordingNotifier{}
	remover := newTestRemover(mockFS, notifier)

	// One load and one save per project, whatever the number of packages.
	for _, path := range []string{"/src/App/App.csproj", "/src/Api/Api.csproj"} {
		mockFS.EXPECT().ReadFile(path).Return([]byte(appProject), nil)
		mockFS.EXPECT().Stat(path).Return(fakeFileInfo{}, nil)
	}
	mockFS.EXPECT().WriteFileAtomic("/src/App/App.csproj", gomock.Any(), os.FileMode(0644)).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			assert.NotContains(t, string(data), "Newtonsoft.Json")
			assert.NotContains(t, string(data), "Dapper")
			assert.Contains(t, string(data), `..\Lib\Lib.csproj`)
			return nil
		})
	mockFS.EXPECT().WriteFileAtomic("/src/Api/Api.csproj", gomock.Any(), os.FileMode(0644)).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			assert.Contains(t, string(data), "Newtonsoft.Json")
			assert.NotContains(t, string(data), "Dapper")
			return nil
		})

	ok := remover.RemoveUnusedPackages([]project.PackageReference{
		{Name: "Newtonsoft.Json", ProjectPath: "/src/App/App.csproj"},
		{Name: "Dapper", ProjectPath: "/src/Api/Api.csproj"},
		{Name: "Dapper", ProjectPath: "/src/App/App.csproj"},
	})

	assert.True(t, ok)
	assert.Equal(t, []notification{
		{kind: KindPackage, count: 2, projectPath: "/src/App/App.csproj"},
		{kind: KindPackage, count: 1, projectPath: "/src/Api/Api.csproj"},
	}, notifier.removed)
	assert.Empty(t, notifier.failed)
}

func TestRemoveUnusedPackages_FailureDoesNotStopOtherProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	notifier := &recordingNotifier{}
	remover := newTestRemover(mockFS, notifier)

	readErr := errors.New("permission denied")
	mockFS.EXPECT().ReadFile("/src/Broken/Broken.csproj").Return(nil, readErr)
	mockFS.EXPECT().ReadFile("/src/App/App.csproj").Return([]byte(appProject), nil)
	mockFS.EXPECT().Stat("/src/App/App.csproj").Return(fakeFileInfo{}, nil)
	mockFS.EXPECT().WriteFileAtomic("/src/App/App.csproj", gomock.Any(), os.FileMode(0644)).Return(nil)

	ok := remover.RemoveUnusedPackages([]project.PackageReference{
		{Name: "Dapper", ProjectPath: "/src/Broken/Broken.csproj"},
		{Name: "Dapper", ProjectPath: "/src/App/App.csproj"},
	})

	assert.False(t, ok)
	if assert.Len(t, notifier.failed, 1) {
		assert.Equal(t, "/src/Broken/Broken.csproj", notifier.failed[0].projectPath)
		assert.ErrorIs(t, notifier.failed[0].err, readErr)
	}
	assert.Equal(t, []notification{
		{kind: KindPackage, count: 1, projectPath: "/src/App/App.csproj"},
	}, notifier.removed)
}

func TestRemoveUnusedProjectReferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	notifier := &recordingNotifier{}
	remover := newTestRemover(mockFS, notifier)

	mockFS.EXPECT().ReadFile("/src/App/App.csproj").Return([]byte(appProject), nil)
	mockFS.EXPECT().Stat("/src/App/App.csproj").Return(fakeFileInfo{}, nil)
	mockFS.EXPECT().WriteFileAtomic("/src/App/App.csproj", gomock.Any(), os.FileMode(0644)).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			assert.NotContains(t, string(data), "ProjectReference")
			assert.Contains(t, string(data), "Dapper")
			return nil
		})

	ok := remover.RemoveUnusedProjectReferences([]project.ProjectReference{
		{ReferencePath: `..\Lib\Lib.csproj`, SourceProjectPath: "/src/App/App.csproj"},
	})

	assert.True(t, ok)
	assert.Equal(t, []notification{
		{kind: KindProjectReference, count: 1, projectPath: "/src/App/App.csproj"},
	}, notifier.removed)
}

func TestRemoveUnusedProjectReferences_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	notifier := &recordingNotifier{}
	remover := newTestRemover(mockFS, notifier)

	mockFS.EXPECT().ReadFile("/src/App/App.csproj").Return([]byte(appProject), nil)
	mockFS.EXPECT().Stat("/src/App/App.csproj").Return(fakeFileInfo{}, nil)
	mockFS.EXPECT().WriteFileAtomic("/src/App/App.csproj", gomock.Any(), os.FileMode(0644)).
		Return(errors.New("read-only file system"))

	ok := remover.RemoveUnusedProjectReferences([]project.ProjectReference{
		{ReferencePath: `..\Lib\Lib.csproj`, SourceProjectPath: "/src/App/App.csproj"},
	})

	assert.False(t, ok)
	assert.Len(t, notifier.failed, 1)
	assert.Empty(t, notifier.removed)
}

func TestGroupByProject(t *testing.T) {
	groups := groupByProject([]removal{
		{projectPath: "b.csproj", include: "One"},
		{projectPath: "a.csproj", include: "Two"},
		{projectPath: "b.csproj", include: "Three"},
	})

	assert.Equal(t, []projectGroup{
		{projectPath: "b.csproj", includes: []string{"One", "Three"}},
		{projectPath: "a.csproj", includes: []string{"Two"}},
	}, groups)
}
