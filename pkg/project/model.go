package project

import "fmt"

// PackageReference is a NuGet package declared by a project.
// Identity is (Name, ProjectPath); an empty Version means none was declared.
type PackageReference struct {
	Name        string
	Version     string
	ProjectPath string
}

// String renders the package as "Name (Version)", or "Name" without a version.
func (p PackageReference) String() string {
	if p.Version != "" {
		return fmt.Sprintf("%s (%s)", p.Name, p.Version)
	}
	return p.Name
}

// ProjectReference is a dependency on another project file.
// ReferencePath is written relative to SourceProjectPath's directory.
type ProjectReference struct {
	ReferencePath     string
	SourceProjectPath string
}

// String renders the reference path as declared.
func (p ProjectReference) String() string {
	return p.ReferencePath
}

// ProjectInfo holds the references declared by one project file, in document order.
type ProjectInfo struct {
	ProjectPath       string
	PackageReferences []PackageReference
	ProjectReferences []ProjectReference
}
