package project

import (
	"fmt"
	"path/filepath"
)

// GetAllProjectFiles lists the absolute project paths reachable from path.
//
// A project file is returned as is, without checking that it exists. Projects
// listed by a solution are kept only when the file exists on disk. Any other
// extension yields an empty list.
func (p *realParser) GetAllProjectFiles(path string) ([]string, error) {
	switch {
	case hasExtension(path, ProjectExtension):
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for %s: %w", path, err)
		}
		return []string{absPath}, nil

	case hasExtension(path, SolutionExtension):
		return p.projectsFromSolution(path)

	case hasExtension(path, XMLSolutionExtension):
		return p.projectsFromXMLSolution(path)

	default:
		p.logger.Logf("Not a solution or project file, nothing to analyze: %s", path)
		return []string{}, nil
	}
}

// keepExisting resolves relativePath against solutionDir and appends it when the file exists.
func (p *realParser) keepExisting(projects []string, solutionDir, relativePath string) []string {
	resolved, err := p.fs.ResolvePath(solutionDir, relativePath)
	if err != nil {
		p.logger.Logf("Skipping project %q: %v", relativePath, err)
		return projects
	}

	exists, err := p.fs.Exists(resolved)
	if err != nil || !exists {
		p.logger.Logf("Skipping project %s: file does not exist", resolved)
		return projects
	}

	return append(projects, resolved)
}
