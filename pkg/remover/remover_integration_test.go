//go:build integration

package remover

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/dotnet-prune/pkg/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove_RoundTrip(t *testing.T) {
	projectPath := filepath.Join(t.TempDir(), "App.csproj")
	content := "\xEF\xBB\xBF" + `<?xml version="1.0" encoding="utf-8"?>
<Project Sdk="Microsoft.NET.Sdk">
  <!-- dependencies -->
  <ItemGroup>
    <PackageReference Include="Newtonsoft.Json" Version="13.0.3" />
    <PackageReference Include="Dapper" Version="2.1.0" />
  </ItemGroup>
  <ItemGroup>
    <ProjectReference Include="..\Lib\Lib.csproj" />
  </ItemGroup>
</Project>
`
	require.NoError(t, os.WriteFile(projectPath, []byte(content), 0600))

	parser := project.NewParser(project.NewParserParams{})
	info, err := parser.ParseProjectFile(projectPath)
	require.NoError(t, err)
	require.Len(t, info.PackageReferences, 2)
	require.Len(t, info.ProjectReferences, 1)

	remover := NewRemover(NewRemoverParams{})
	assert.True(t, remover.RemoveUnusedPackages(info.PackageReferences[1:]))
	assert.True(t, remover.RemoveUnusedProjectReferences(info.ProjectReferences))

	reparsed, err := parser.ParseProjectFile(projectPath)
	require.NoError(t, err)
	assert.Equal(t, []project.PackageReference{
		{Name: "Newtonsoft.Json", Version: "13.0.3", ProjectPath: projectPath},
	}, reparsed.PackageReferences)
	assert.Empty(t, reparsed.ProjectReferences)

	data, err := os.ReadFile(projectPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\xEF\xBB\xBF")))
	assert.Contains(t, string(data), "<!-- dependencies -->")

	stat, err := os.Stat(projectPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), stat.Mode().Perm())
}

func TestRemove_MissingProjectFile(t *testing.T) {
	remover := NewRemover(NewRemoverParams{})

	ok := remover.RemoveUnusedPackages([]project.PackageReference{
		{Name: "Dapper", ProjectPath: filepath.Join(t.TempDir(), "Missing.csproj")},
	})

	assert.False(t, ok)
}
