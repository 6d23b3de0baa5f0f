package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/lerenn/dotnet-prune/pkg/analyzer"
	"github.com/lerenn/dotnet-prune/pkg/remover"
)

// Printer writes human-readable progress and results to a writer.
type Printer struct {
	out io.Writer

	heading lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		heading: r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func (p *Printer) println(style lipgloss.Style, format string, args ...interface{}) {
	fmt.Fprintln(p.out, style.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) blank() {
	fmt.Fprintln(p.out)
}

// Analyzing announces the resolved target.
func (p *Printer) Analyzing(target string) {
	p.println(p.heading, "Analyzing: %s", target)
	p.blank()
}

// ProjectsFound announces how many projects will be analyzed.
func (p *Printer) ProjectsFound(count int) {
	if count == 0 {
		p.println(p.muted, "No projects found to analyze.")
		return
	}
	p.println(p.muted, "Found %d project(s) to analyze.", count)
	p.blank()
}

// ProjectResult prints the errors and unused entries of one project.
// Nothing is printed for a clean project.
func (p *Printer) ProjectResult(projectPath string, result analyzer.Result) {
	if len(result.Errors) > 0 {
		p.println(p.failure, "Errors in %s:", projectPath)
		for _, e := range result.Errors {
			p.println(p.failure, "  - %s", e)
		}
		p.blank()
	}

	if !result.HasUnused() {
		return
	}

	p.println(p.heading, "Project: %s", filepath.Base(projectPath))
	if len(result.UnusedPackages) > 0 {
		p.println(p.warning, "  Unused Packages (%d):", len(result.UnusedPackages))
		for _, pkg := range result.UnusedPackages {
			fmt.Fprintf(p.out, "    - %s\n", pkg)
		}
	}
	if len(result.UnusedProjectReferences) > 0 {
		p.println(p.warning, "  Unused Project References (%d):", len(result.UnusedProjectReferences))
		for _, ref := range result.UnusedProjectReferences {
			fmt.Fprintf(p.out, "    - %s\n", ref)
		}
	}
	p.blank()
}

// NothingUnused reports a clean run.
func (p *Printer) NothingUnused() {
	p.println(p.success, "✓ No unused packages or project references found!")
}

// Summary prints the totals over all analyzed projects.
func (p *Printer) Summary(packages, projectReferences int) {
	p.println(p.heading, "Summary:")
	fmt.Fprintf(p.out, "  Total unused packages: %d\n", packages)
	fmt.Fprintf(p.out, "  Total unused project references: %d\n", projectReferences)
	p.blank()
}

// RemoveHint tells the user how to apply the removal.
func (p *Printer) RemoveHint() {
	p.println(p.muted, "To remove these unused dependencies, run the command again with the --remove flag.")
}

// Removing announces the start of the removal.
func (p *Printer) Removing() {
	p.println(p.heading, "Removing unused dependencies...")
}

// RemovalComplete reports the overall removal outcome.
func (p *Printer) RemovalComplete(ok bool) {
	if ok {
		p.println(p.success, "✓ Successfully removed unused dependencies!")
		return
	}
	p.println(p.warning, "⚠ Some dependencies could not be removed. Check the output above for details.")
}

// Cancelled reports a declined confirmation.
func (p *Printer) Cancelled() {
	p.println(p.muted, "Operation cancelled.")
}

// Removed implements remover.Notifier.
func (p *Printer) Removed(kind remover.Kind, count int, projectPath string) {
	fmt.Fprintf(p.out, "Removed %d %s(s) from %s\n", count, kind, projectPath)
}

// RemovalFailed implements remover.Notifier.
func (p *Printer) RemovalFailed(kind remover.Kind, projectPath string, err error) {
	p.println(p.failure, "Error removing %ss from %s: %v", kind, projectPath, err)
}

// Fatal prints an error that aborts the run. When verbose, every wrapped
// cause is listed below the message.
func (p *Printer) Fatal(err error, verbose bool) {
	p.println(p.failure, "Fatal error: %v", err)
	if !verbose {
		return
	}
	for _, cause := range causes(err) {
		p.println(p.muted, "  caused by: %v", cause)
	}
}

// causes lists the wrapped errors of err depth first, err excluded.
func causes(err error) []error {
	var wrapped []error
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		if inner := e.Unwrap(); inner != nil {
			wrapped = []error{inner}
		}
	case interface{ Unwrap() []error }:
		wrapped = e.Unwrap()
	}

	var out []error
	for _, w := range wrapped {
		out = append(out, w)
		out = append(out, causes(w)...)
	}
	return out
}
