package remover

import (
	"github.com/lerenn/dotnet-prune/pkg/msbuild"
	"github.com/lerenn/dotnet-prune/pkg/project"
)

// removal is one declaration to drop from a project file.
type removal struct {
	projectPath string
	include     string
}

// projectGroup collects the removals that target one project file.
type projectGroup struct {
	projectPath string
	includes    []string
}

// RemoveUnusedPackages removes the packages from their owning project files.
func (r *realRemover) RemoveUnusedPackages(packages []project.PackageReference) bool {
	removals := make([]removal, 0, len(packages))
	for _, pkg := range packages {
		removals = append(removals, removal{projectPath: pkg.ProjectPath, include: pkg.Name})
	}
	return r.removeGrouped(KindPackage, removals, (*msbuild.Document).RemovePackageReferences)
}

// RemoveUnusedProjectReferences removes the references from their owning project files.
func (r *realRemover) RemoveUnusedProjectReferences(references []project.ProjectReference) bool {
	removals := make([]removal, 0, len(references))
	for _, ref := range references {
		removals = append(removals, removal{projectPath: ref.SourceProjectPath, include: ref.ReferencePath})
	}
	return r.removeGrouped(KindProjectReference, removals, (*msbuild.Document).RemoveProjectReferences)
}

// removeGrouped rewrites each project file once. A failing project does not
// stop the others but makes the whole call report failure.
func (r *realRemover) removeGrouped(kind Kind, removals []removal, remove func(*msbuild.Document, string) int) bool {
	if len(removals) == 0 {
		return true
	}

	success := true
	for _, group := range groupByProject(removals) {
		removed, err := r.rewrite(group, remove)
		if err != nil {
			r.logger.Logf("Failed to remove %s entries from %s: %v", kind, group.projectPath, err)
			r.notifier.RemovalFailed(kind, group.projectPath, err)
			success = false
			continue
		}
		r.notifier.Removed(kind, removed, group.projectPath)
	}

	return success
}

func (r *realRemover) rewrite(group projectGroup, remove func(*msbuild.Document, string) int) (int, error) {
	doc, err := msbuild.Load(r.fs, group.projectPath)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, include := range group.includes {
		n := remove(doc, include)
		r.logger.Logf("Removed %d element(s) for %s from %s", n, include, group.projectPath)
		removed += n
	}

	if err := doc.Save(r.fs); err != nil {
		return 0, err
	}
	return removed, nil
}

// groupByProject groups removals by owning project, keeping first-seen order.
func groupByProject(removals []removal) []projectGroup {
	index := make(map[string]int)
	var groups []projectGroup

	for _, rm := range removals {
		i, ok := index[rm.projectPath]
		if !ok {
			i = len(groups)
			index[rm.projectPath] = i
			groups = append(groups, projectGroup{projectPath: rm.projectPath})
		}
		groups[i].includes = append(groups[i].includes, rm.include)
	}

	return groups
}
