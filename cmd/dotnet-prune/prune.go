package main

import (
	"errors"
	"io"

	"github.com/lerenn/dotnet-prune/cmd/dotnet-prune/internal/cli"
	"github.com/lerenn/dotnet-prune/pkg/pruner"
	"github.com/lerenn/dotnet-prune/pkg/report"
)

func runPrune(printer *report.Printer, in io.Reader, out io.Writer, path string) error {
	p, err := cli.NewPruner(printer, in, out)
	if err != nil {
		return err
	}

	target, err := p.ResolveTarget(path)
	if err != nil {
		return err
	}

	result, err := p.Analyze(target)
	if err != nil {
		return err
	}
	if len(result.Projects) == 0 {
		return nil
	}
	if !result.HasUnused() {
		printer.NothingUnused()
		return nil
	}

	printer.Summary(len(result.UnusedPackages), len(result.UnusedProjectReferences))
	if !cli.Remove {
		printer.RemoveHint()
		return nil
	}

	err = p.Prune(result, pruner.PruneOpts{SkipConfirmation: cli.SkipConfirmation})
	if errors.Is(err, pruner.ErrOperationCancelled) {
		return nil
	}
	return err
}
