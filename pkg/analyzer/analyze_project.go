package analyzer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/dotnet-prune/pkg/project"
)

// AnalyzeProject reports the unused references of a project.
// When an error occurs the verdicts reached so far are kept and the error is
// appended to Errors.
func (a *realAnalyzer) AnalyzeProject(info project.ProjectInfo) Result {
	result := newResult()

	corpus, err := a.sourceCorpus(info.ProjectPath)
	if err != nil {
		result.Errors = append(result.Errors, analysisError(info.ProjectPath, err))
		return result
	}

	for _, pkg := range info.PackageReferences {
		if a.config.IsIgnoredPackage(pkg.Name) {
			a.logger.Logf("Package %s is ignored by configuration", pkg.Name)
			continue
		}
		if !a.detector.PackageUsed(pkg.Name, corpus) {
			a.logger.Logf("Package %s looks unused", pkg.Name)
			result.UnusedPackages = append(result.UnusedPackages, pkg)
		}
	}

	projectDir := filepath.Dir(info.ProjectPath)
	for _, ref := range info.ProjectReferences {
		used, err := a.isProjectReferenceUsed(projectDir, ref, corpus)
		if err != nil {
			result.Errors = append(result.Errors, analysisError(info.ProjectPath, err))
			return result
		}
		if !used {
			a.logger.Logf("Project reference %s looks unused", ref.ReferencePath)
			result.UnusedProjectReferences = append(result.UnusedProjectReferences, ref)
		}
	}

	return result
}

// isProjectReferenceUsed checks the referenced project's file name against the corpus.
// A reference to a file that does not exist cannot be verified and counts as unused.
func (a *realAnalyzer) isProjectReferenceUsed(projectDir string, ref project.ProjectReference, corpus string) (bool, error) {
	referencedPath, err := a.fs.ResolvePath(projectDir, ref.ReferencePath)
	if err != nil {
		return false, err
	}

	exists, err := a.fs.Exists(referencedPath)
	if err != nil || !exists {
		a.logger.Logf("Referenced project %s does not exist", referencedPath)
		return false, nil
	}

	name := strings.TrimSuffix(filepath.Base(referencedPath), filepath.Ext(referencedPath))
	return a.detector.ProjectUsed(name, corpus), nil
}

// sourceCorpus joins every source file below the project directory with newlines.
// A missing project directory yields an empty corpus.
func (a *realAnalyzer) sourceCorpus(projectPath string) (string, error) {
	projectDir := filepath.Dir(projectPath)

	exists, err := a.fs.Exists(projectDir)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", nil
	}

	files, err := a.fs.WalkFiles(projectDir, a.config.ExcludedDirs)
	if err != nil {
		return "", err
	}

	var corpus strings.Builder
	count := 0
	for _, file := range files {
		if !a.config.IsSourceFile(file) {
			continue
		}

		content, err := a.fs.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("%w %s: %w", ErrSourceRead, file, err)
		}

		if count > 0 {
			corpus.WriteByte('\n')
		}
		corpus.Write(content)
		count++
	}

	a.logger.Logf("Scanned %d source file(s) in %s", count, projectDir)
	return corpus.String(), nil
}

func analysisError(projectPath string, err error) string {
	return fmt.Sprintf("error analyzing project %s: %v", projectPath, err)
}
