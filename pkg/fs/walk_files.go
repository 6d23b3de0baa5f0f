package fs

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"
)

// WalkFiles lists every regular file below root in lexical order.
// Directories whose name equals one of skipDirs (ignoring case) are not entered;
// root itself is always walked.
func (f *realFS) WalkFiles(root string, skipDirs []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && isSkipped(d.Name(), skipDirs) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWalk, root, err)
	}

	return files, nil
}

func isSkipped(name string, skipDirs []string) bool {
	for _, skip := range skipDirs {
		if strings.EqualFold(name, skip) {
			return true
		}
	}
	return false
}
