package fs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolvePath resolves relativePath against baseDir and returns an absolute, cleaned path.
// Backslash separators, as written by Visual Studio, are converted to the host separator.
func (f *realFS) ResolvePath(baseDir, relativePath string) (string, error) {
	if relativePath == "" {
		return "", fmt.Errorf("%w: relative path cannot be empty", ErrPathResolution)
	}

	relativePath = NormalizeSeparators(relativePath)
	if !filepath.IsAbs(relativePath) {
		relativePath = filepath.Join(baseDir, relativePath)
	}

	absPath, err := filepath.Abs(relativePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get absolute path for %s: %w", ErrPathResolution, relativePath, err)
	}

	return absPath, nil
}

// NormalizeSeparators converts both '\' and '/' to the host path separator.
func NormalizeSeparators(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	return filepath.FromSlash(path)
}
