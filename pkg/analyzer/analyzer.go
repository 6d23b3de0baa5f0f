// Package analyzer decides which declared references of a project are unused by its sources.
package analyzer

import (
	"github.com/lerenn/dotnet-prune/pkg/config"
	"github.com/lerenn/dotnet-prune/pkg/fs"
	"github.com/lerenn/dotnet-prune/pkg/logger"
	"github.com/lerenn/dotnet-prune/pkg/project"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=analyzer.go -destination=mocks/analyzer.gen.go -package=mocks

// Analyzer interface provides per-project usage analysis.
type Analyzer interface {
	// AnalyzeProject reports the unused references of a project. Failures are
	// recorded in Result.Errors rather than returned.
	AnalyzeProject(info project.ProjectInfo) Result
}

// NewAnalyzerParams contains parameters for creating a new Analyzer instance.
type NewAnalyzerParams struct {
	FS       fs.FS
	Logger   logger.Logger
	Config   config.Config
	Detector UsageDetector
}

type realAnalyzer struct {
	fs       fs.FS
	logger   logger.Logger
	config   config.Config
	detector UsageDetector
}

// NewAnalyzer creates a new Analyzer instance.
// The heuristic detector is used when no detector is given.
func NewAnalyzer(params NewAnalyzerParams) Analyzer {
	a := &realAnalyzer{
		fs:       params.FS,
		logger:   params.Logger,
		config:   params.Config,
		detector: params.Detector,
	}
	if a.fs == nil {
		a.fs = fs.NewFS()
	}
	if a.logger == nil {
		a.logger = logger.NewNoopLogger()
	}
	if a.detector == nil {
		a.detector = NewHeuristicDetector(a.config.MinSegmentLength)
	}
	return a
}
