package project

import (
	"fmt"
	"path/filepath"
	"sort"
)

// targetPreference lists the file kinds searched in a directory, most preferred first.
var targetPreference = []string{SolutionExtension, XMLSolutionExtension, ProjectExtension}

// ResolveTarget turns a file or directory argument into the file to analyze.
// A directory resolves to its first solution file, or failing that its first project file.
func (p *realParser) ResolveTarget(path string) (string, error) {
	exists, err := p.fs.Exists(path)
	if err != nil {
		return "", fmt.Errorf("failed to check target existence: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrTargetNotFound, path)
	}

	isDir, err := p.fs.IsDir(path)
	if err != nil {
		return "", fmt.Errorf("failed to check target type: %w", err)
	}
	if !isDir {
		return path, nil
	}

	for _, ext := range targetPreference {
		matches, err := p.fs.Glob(filepath.Join(path, "*"+ext))
		if err != nil {
			return "", fmt.Errorf("failed to search %s for %s files: %w", path, ext, err)
		}
		if len(matches) > 0 {
			sort.Strings(matches)
			p.logger.Logf("Resolved directory %s to %s", path, matches[0])
			return matches[0], nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNoProjectFileFound, path)
}
