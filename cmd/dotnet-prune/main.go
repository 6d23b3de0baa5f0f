// Package main provides the command-line interface for dotnet-prune.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/lerenn/dotnet-prune/cmd/dotnet-prune/internal/cli"
	"github.com/lerenn/dotnet-prune/pkg/pruner"
	"github.com/lerenn/dotnet-prune/pkg/report"
	"github.com/spf13/cobra"
)

func createRootCmd(printer *report.Printer, in io.Reader, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dotnet-prune [path]",
		Short: "Remove unused NuGet packages and project references from .NET projects",
		Long: `Scan a solution (.sln, .slnx) or project (.csproj) and report the package
and project references that none of the project's C# sources mention.

Examples:
  dotnet-prune
  dotnet-prune ./src/App.sln
  dotnet-prune ./src --remove
  dotnet-prune ./src/App/App.csproj --remove -y`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return runPrune(printer, in, out, path)
		},
	}

	rootCmd.Flags().BoolVar(&cli.Remove, "remove", false, "Remove the unused dependencies")
	rootCmd.Flags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVarP(&cli.SkipConfirmation, "skip-confirmation", "y", false,
		"Remove without asking for confirmation")
	rootCmd.Flags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	return rootCmd
}

// execute runs the command and returns the process exit code.
func execute(in io.Reader, out io.Writer, args []string) int {
	printer := report.NewPrinter(out)
	rootCmd := createRootCmd(printer, in, out)
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		// The partial removal warning has already been printed.
		if !errors.Is(err, pruner.ErrPartialRemoval) {
			printer.Fatal(err, cli.Verbose)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Stdin, os.Stdout, os.Args[1:]))
}
