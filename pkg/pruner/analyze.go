package pruner

import "fmt"

// Analyze parses and analyzes every project reachable from target, printing
// each project's outcome as it goes. A project file that cannot be parsed
// aborts the whole run; analysis failures are kept in the project's result.
func (p *realPruner) Analyze(target string) (Report, error) {
	p.out.Analyzing(target)

	projectFiles, err := p.deps.Parser.GetAllProjectFiles(target)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list projects of %s: %w", target, err)
	}
	p.out.ProjectsFound(len(projectFiles))

	report := Report{Target: target}
	for _, projectFile := range projectFiles {
		p.VerbosePrint("Analyzing project: %s", projectFile)

		info, err := p.deps.Parser.ParseProjectFile(projectFile)
		if err != nil {
			return report, fmt.Errorf("%w %s: %w", ErrProjectParse, projectFile, err)
		}

		result := p.deps.Analyzer.AnalyzeProject(info)
		p.out.ProjectResult(projectFile, result)

		report.Projects = append(report.Projects, ProjectReport{ProjectPath: projectFile, Result: result})
		report.UnusedPackages = append(report.UnusedPackages, result.UnusedPackages...)
		report.UnusedProjectReferences = append(report.UnusedProjectReferences, result.UnusedProjectReferences...)
	}

	p.VerbosePrint("Found %d unused package(s) and %d unused project reference(s)",
		len(report.UnusedPackages), len(report.UnusedProjectReferences))
	return report, nil
}
