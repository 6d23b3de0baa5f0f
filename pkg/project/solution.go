package project

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/dotnet-prune/pkg/msbuild"
)

// Layout of a project declaration line in a .sln file:
//
//	Project("{TYPE-GUID}") = "App", "src\App\App.csproj", "{PROJECT-GUID}"
const (
	solutionProjectPrefix = "Project("
	solutionMinFields     = 3
	solutionPathField     = 1
	maxSolutionLineSize   = 1024 * 1024
)

// projectsFromSolution line-scans a .sln file for C# project declarations.
func (p *realParser) projectsFromSolution(path string) ([]string, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSolutionRead, path, err)
	}

	solutionDir := filepath.Dir(path)
	projects := []string{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxSolutionLineSize)
	for scanner.Scan() {
		relativePath, ok := solutionProjectPath(scanner.Text())
		if !ok {
			continue
		}
		projects = p.keepExisting(projects, solutionDir, relativePath)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSolutionRead, path, err)
	}

	p.logger.Logf("Found %d project(s) in %s", len(projects), path)
	return projects, nil
}

// solutionProjectPath extracts the quoted project path from a .sln declaration line.
func solutionProjectPath(line string) (string, bool) {
	if !strings.HasPrefix(line, solutionProjectPrefix) || !strings.Contains(line, ProjectExtension) {
		return "", false
	}

	fields := strings.Split(line, ",")
	if len(fields) < solutionMinFields {
		return "", false
	}

	return strings.Trim(strings.TrimSpace(fields[solutionPathField]), `"`), true
}

// projectsFromXMLSolution reads the Project entries of a .slnx file.
func (p *realParser) projectsFromXMLSolution(path string) ([]string, error) {
	doc, err := msbuild.Load(p.fs, path)
	if err != nil {
		return nil, err
	}

	solutionDir := filepath.Dir(path)
	projects := []string{}
	for _, projectPath := range doc.SolutionProjects() {
		if !hasExtension(projectPath, ProjectExtension) {
			continue
		}
		projects = p.keepExisting(projects, solutionDir, projectPath)
	}

	p.logger.Logf("Found %d project(s) in %s", len(projects), path)
	return projects, nil
}
