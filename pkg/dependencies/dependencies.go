// Package dependencies provides a centralized dependency container for dotnet-prune.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/dotnet-prune/pkg/analyzer"
	"github.com/lerenn/dotnet-prune/pkg/config"
	"github.com/lerenn/dotnet-prune/pkg/fs"
	"github.com/lerenn/dotnet-prune/pkg/logger"
	"github.com/lerenn/dotnet-prune/pkg/project"
	"github.com/lerenn/dotnet-prune/pkg/prompt"
	"github.com/lerenn/dotnet-prune/pkg/remover"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing       = errors.New("fs dependency is required but not set")
	ErrConfigMissing   = errors.New("config dependency is required but not set")
	ErrLoggerMissing   = errors.New("logger dependency is required but not set")
	ErrPromptMissing   = errors.New("prompt dependency is required but not set")
	ErrParserMissing   = errors.New("parser dependency is required but not set")
	ErrAnalyzerMissing = errors.New("analyzer dependency is required but not set")
	ErrRemoverMissing  = errors.New("remover dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS       fs.FS
	Config   config.Manager
	Logger   logger.Logger
	Prompt   prompt.Prompter
	Parser   project.Parser
	Analyzer analyzer.Analyzer
	Remover  remover.Remover
}

// New creates a new Dependencies instance with sensible defaults.
// Config, Analyzer and Remover are left nil: the analyzer needs the loaded
// configuration and the remover needs a notifier.
func New() *Dependencies {
	fsys := fs.NewFS()
	log := logger.NewNoopLogger()
	return &Dependencies{
		FS:     fsys,
		Logger: log,
		Prompt: prompt.NewPrompt(),
		Parser: project.NewParser(project.NewParserParams{FS: fsys, Logger: log}),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithParser sets the project parser and returns the instance for chaining.
func (d *Dependencies) WithParser(parser project.Parser) *Dependencies {
	d.Parser = parser
	return d
}

// WithAnalyzer sets the usage analyzer and returns the instance for chaining.
func (d *Dependencies) WithAnalyzer(a analyzer.Analyzer) *Dependencies {
	d.Analyzer = a
	return d
}

// WithRemover sets the dependency remover and returns the instance for chaining.
func (d *Dependencies) WithRemover(r remover.Remover) *Dependencies {
	d.Remover = r
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Parser, ErrParserMissing},
		{d.Analyzer, ErrAnalyzerMissing},
		{d.Remover, ErrRemoverMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
