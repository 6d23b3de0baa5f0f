// Package pruner drives the analysis and removal of unused .NET dependencies.
package pruner

import (
	"fmt"

	"github.com/lerenn/dotnet-prune/pkg/analyzer"
	"github.com/lerenn/dotnet-prune/pkg/dependencies"
	"github.com/lerenn/dotnet-prune/pkg/logger"
	"github.com/lerenn/dotnet-prune/pkg/project"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=pruner.go -destination=mocks/pruner.gen.go -package=mocks

// Pruner interface provides the analyze-then-remove workflow.
type Pruner interface {
	// ResolveTarget turns a path argument into the solution or project file to analyze.
	ResolveTarget(path string) (string, error)
	// Analyze parses and analyzes every project reachable from target.
	Analyze(target string) (Report, error)
	// Prune removes the unused entries of a report, asking for confirmation unless skipped.
	Prune(report Report, opts PruneOpts) error
	// SetLogger sets the logger for this Pruner instance.
	SetLogger(logger logger.Logger)
}

// Output renders the workflow progress for the user.
type Output interface {
	Analyzing(target string)
	ProjectsFound(count int)
	ProjectResult(projectPath string, result analyzer.Result)
	Removing()
	RemovalComplete(ok bool)
	Cancelled()
}

// PruneOpts contains optional parameters for Prune.
type PruneOpts struct {
	SkipConfirmation bool
}

// ProjectReport is the analysis outcome of one project.
type ProjectReport struct {
	ProjectPath string
	Result      analyzer.Result
}

// Report aggregates the analysis of every project reachable from a target.
type Report struct {
	Target                  string
	Projects                []ProjectReport
	UnusedPackages          []project.PackageReference
	UnusedProjectReferences []project.ProjectReference
}

// HasUnused reports whether any project has an unused entry.
func (r Report) HasUnused() bool {
	return len(r.UnusedPackages) > 0 || len(r.UnusedProjectReferences) > 0
}

// NewPrunerParams contains parameters for creating a new Pruner instance.
type NewPrunerParams struct {
	Dependencies *dependencies.Dependencies
	Output       Output
}

type realPruner struct {
	deps *dependencies.Dependencies
	out  Output
}

// NewPruner creates a new Pruner instance.
// The dependencies must pass validation.
func NewPruner(params NewPrunerParams) (Pruner, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	out := params.Output
	if out == nil {
		out = noopOutput{}
	}

	return &realPruner{
		deps: deps,
		out:  out,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (p *realPruner) VerbosePrint(msg string, args ...interface{}) {
	if p.deps.Logger != nil {
		p.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this Pruner instance.
func (p *realPruner) SetLogger(logger logger.Logger) {
	p.deps.Logger = logger
}

// ResolveTarget turns a path argument into the solution or project file to analyze.
func (p *realPruner) ResolveTarget(path string) (string, error) {
	target, err := p.deps.Parser.ResolveTarget(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve target: %w", err)
	}
	p.VerbosePrint("Resolved target %s to %s", path, target)
	return target, nil
}

type noopOutput struct{}

func (noopOutput) Analyzing(string)                      {}
func (noopOutput) ProjectsFound(int)                     {}
func (noopOutput) ProjectResult(string, analyzer.Result) {}
func (noopOutput) Removing()                             {}
func (noopOutput) RemovalComplete(bool)                  {}
func (noopOutput) Cancelled()                            {}
