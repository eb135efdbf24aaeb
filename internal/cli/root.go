// Package cli provides the command-line interface for buildlens.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildlens/buildlens/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "buildlens",
		Short: "Analyze CI/CD build logs",
		Long: `buildlens extracts structured build information from raw CI/CD logs.

It recognizes step boundaries, errors, warnings, and elapsed time for
GitHub Actions, Jenkins, and TeamCity logs, with a generic fallback
for everything else. Results can optionally be enriched with AI
diagnostics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewFormatsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
