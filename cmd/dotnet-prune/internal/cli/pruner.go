package cli

import (
	"io"

	"github.com/lerenn/dotnet-prune/pkg/analyzer"
	"github.com/lerenn/dotnet-prune/pkg/dependencies"
	"github.com/lerenn/dotnet-prune/pkg/logger"
	"github.com/lerenn/dotnet-prune/pkg/project"
	"github.com/lerenn/dotnet-prune/pkg/prompt"
	"github.com/lerenn/dotnet-prune/pkg/pruner"
	"github.com/lerenn/dotnet-prune/pkg/remover"
	"github.com/lerenn/dotnet-prune/pkg/report"
)

// NewLogger returns a logger writing to out when --verbose is set.
func NewLogger(out io.Writer) logger.Logger {
	if Verbose {
		return logger.NewVerboseLogger(out)
	}
	return logger.NewNoopLogger()
}

// NewPruner creates a Pruner wired to the configuration. Answers are read
// from in; progress, prompts and verbose lines go to out through printer.
func NewPruner(printer *report.Printer, in io.Reader, out io.Writer) (pruner.Pruner, error) {
	log := NewLogger(out)
	deps := dependencies.New().
		WithConfig(NewConfigManager()).
		WithLogger(log).
		WithPrompt(prompt.NewPromptWithIO(in, out))

	cfg, err := LoadConfig(deps.Config)
	if err != nil {
		return nil, err
	}
	log.Logf("Using configuration %s", deps.Config.GetConfigPath())

	return pruner.NewPruner(pruner.NewPrunerParams{
		Dependencies: deps.
			WithParser(project.NewParser(project.NewParserParams{
				FS:     deps.FS,
				Logger: log,
			})).
			WithAnalyzer(analyzer.NewAnalyzer(analyzer.NewAnalyzerParams{
				FS:     deps.FS,
				Logger: log,
				Config: cfg,
			})).
			WithRemover(remover.NewRemover(remover.NewRemoverParams{
				FS:       deps.FS,
				Logger:   log,
				Notifier: printer,
			})),
		Output: printer,
	})
}
