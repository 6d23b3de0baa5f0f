package pruner

import (
	"errors"
	"fmt"

	"github.com/lerenn/dotnet-prune/pkg/prompt"
)

const confirmationMessage = "Do you want to remove these unused dependencies?"

// Prune removes the unused entries of report from their project files.
// Both kinds are always attempted, even when the first one fails.
func (p *realPruner) Prune(report Report, opts PruneOpts) error {
	if !report.HasUnused() {
		p.VerbosePrint("Nothing to remove")
		return nil
	}

	if !opts.SkipConfirmation {
		confirmed, err := p.confirm()
		if err != nil {
			return err
		}
		if !confirmed {
			p.out.Cancelled()
			return ErrOperationCancelled
		}
	}

	p.out.Removing()
	packagesRemoved := p.deps.Remover.RemoveUnusedPackages(report.UnusedPackages)
	referencesRemoved := p.deps.Remover.RemoveUnusedProjectReferences(report.UnusedProjectReferences)

	ok := packagesRemoved && referencesRemoved
	p.out.RemovalComplete(ok)
	if !ok {
		return ErrPartialRemoval
	}
	return nil
}

// confirm asks the user before touching any file. Unrecognised answers decline.
func (p *realPruner) confirm() (bool, error) {
	confirmed, err := p.deps.Prompt.PromptForConfirmation(confirmationMessage, false)
	if errors.Is(err, prompt.ErrInvalidConfirmationInput) {
		p.VerbosePrint("Unrecognised answer, treating it as no")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get confirmation: %w", err)
	}
	return confirmed, nil
}
