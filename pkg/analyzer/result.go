package analyzer

import "github.com/lerenn/dotnet-prune/pkg/project"

// Result is the outcome of analyzing one project. It never mutates project files.
type Result struct {
	UnusedPackages          []project.PackageReference
	UnusedProjectReferences []project.ProjectReference
	Errors                  []string
}

func newResult() Result {
	return Result{
		UnusedPackages:          []project.PackageReference{},
		UnusedProjectReferences: []project.ProjectReference{},
		Errors:                  []string{},
	}
}

// HasUnused reports whether at least one package or project reference is unused.
func (r Result) HasUnused() bool {
	return len(r.UnusedPackages) > 0 || len(r.UnusedProjectReferences) > 0
}
