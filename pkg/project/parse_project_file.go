package project

import (
	"fmt"

	"github.com/lerenn/dotnet-prune/pkg/msbuild"
)

// ParseProjectFile reads the package and project references declared by a project file.
// Entries without an Include value are dropped.
func (p *realParser) ParseProjectFile(path string) (ProjectInfo, error) {
	exists, err := p.fs.Exists(path)
	if err != nil {
		return ProjectInfo{}, fmt.Errorf("failed to check project file existence: %w", err)
	}
	if !exists {
		return ProjectInfo{}, fmt.Errorf("%w: %s", ErrProjectFileNotFound, path)
	}

	doc, err := msbuild.Load(p.fs, path)
	if err != nil {
		return ProjectInfo{}, err
	}

	info := ProjectInfo{
		ProjectPath:       path,
		PackageReferences: []PackageReference{},
		ProjectReferences: []ProjectReference{},
	}

	for _, entry := range doc.PackageReferences() {
		if entry.Include == "" {
			continue
		}
		info.PackageReferences = append(info.PackageReferences, PackageReference{
			Name:        entry.Include,
			Version:     entry.Version,
			ProjectPath: path,
		})
	}

	for _, include := range doc.ProjectReferences() {
		if include == "" {
			continue
		}
		info.ProjectReferences = append(info.ProjectReferences, ProjectReference{
			ReferencePath:     include,
			SourceProjectPath: path,
		})
	}

	p.logger.Logf("Parsed %s: %d package(s), %d project reference(s)",
		path, len(info.PackageReferences), len(info.ProjectReferences))

	return info, nil
}
