//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	fs := NewFS()
	testFile := filepath.Join(t.TempDir(), "App.csproj")
	testData := []byte("<Project></Project>")

	err := fs.WriteFileAtomic(testFile, testData, 0644)
	require.NoError(t, err)

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testData, content)

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFileAtomic_Overwrite(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "App.csproj")

	require.NoError(t, fs.WriteFileAtomic(testFile, []byte("initial"), 0644))
	require.NoError(t, fs.WriteFileAtomic(testFile, []byte("rewritten"), 0600))

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, []byte("rewritten"), content)

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// No temporary files are left behind.
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	fs := NewFS()
	testFile := filepath.Join(t.TempDir(), "missing", "App.csproj")

	err := fs.WriteFileAtomic(testFile, []byte("data"), 0644)
	assert.Error(t, err)
}
