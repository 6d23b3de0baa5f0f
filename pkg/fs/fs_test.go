//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "App.csproj")
	require.NoError(t, os.WriteFile(file, []byte("<Project />"), 0644))

	exists, err := fs.Exists(file)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(tmpDir, "Missing.csproj"))
	assert.NoError(t, err)
	assert.False(t, exists)

	exists, err = fs.Exists(tmpDir)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestFS_IsDir(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "Program.cs")
	require.NoError(t, os.WriteFile(file, []byte("class P {}"), 0644))

	isDir, err := fs.IsDir(tmpDir)
	assert.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = fs.IsDir(file)
	assert.NoError(t, err)
	assert.False(t, isDir)

	_, err = fs.IsDir(filepath.Join(tmpDir, "nope"))
	assert.Error(t, err)
}

func TestFS_ReadFile(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "Program.cs")
	content := []byte("Console.WriteLine(\"Hello\");")
	require.NoError(t, os.WriteFile(file, content, 0644))

	readContent, err := fs.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, content, readContent)

	_, err = fs.ReadFile(filepath.Join(tmpDir, "missing.cs"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestFS_Glob(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()
	for _, name := range []string{"A.sln", "B.sln", "C.csproj"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), nil, 0644))
	}

	matches, err := fs.Glob(filepath.Join(tmpDir, "*.sln"))
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "A.sln"), filepath.Join(tmpDir, "B.sln")}, matches)
}

func TestFS_WalkFiles(t *testing.T) {
	fs := NewFS()
	root := filepath.Join(t.TempDir(), "robj")

	files := []string{
		"Program.cs",
		filepath.Join("Services", "Mailer.cs"),
		filepath.Join("obj", "Debug", "AssemblyInfo.cs"),
		filepath.Join("Bin", "Release", "Generated.cs"),
		filepath.Join("Services", "obj", "Nested.cs"),
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("//"), 0644))
	}

	walked, err := fs.WalkFiles(root, []string{"obj", "bin"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "Program.cs"),
		filepath.Join(root, "Services", "Mailer.cs"),
	}, walked)
}

func TestFS_WalkFiles_MissingRoot(t *testing.T) {
	fs := NewFS()

	_, err := fs.WalkFiles(filepath.Join(t.TempDir(), "missing"), nil)
	assert.ErrorIs(t, err, ErrWalk)
}

func TestFS_Stat(t *testing.T) {
	fs := NewFS()
	file := filepath.Join(t.TempDir(), "App.csproj")
	require.NoError(t, os.WriteFile(file, []byte("<Project />"), 0600))

	info, err := fs.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.Equal(t, "App.csproj", info.Name())
}
