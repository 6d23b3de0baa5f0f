package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations needed to inspect and rewrite projects.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// Stat returns the file info for the given path.
	Stat(path string) (os.FileInfo, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// Glob finds files matching the pattern.
	Glob(pattern string) ([]string, error)

	// WalkFiles lists every regular file below root, skipping directories named in skipDirs.
	WalkFiles(root string, skipDirs []string) ([]string, error)

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// ResolvePath resolves a possibly Windows-style relative path against a base directory.
	ResolvePath(baseDir, relativePath string) (string, error)
}
