package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildlens/buildlens/pkg/ai"
	"github.com/buildlens/buildlens/pkg/config"
	"github.com/buildlens/buildlens/pkg/output"
	"github.com/buildlens/buildlens/pkg/parser"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Format  string
	Output  string
	Quiet   bool
	Verbose bool

	// AI options
	AI         bool
	ConfigFile string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <log-file>",
		Short: "Analyze a build log file",
		Long: `Parse a CI/CD build log and report its steps, errors, warnings,
and elapsed time.

Exit codes:
  0 - No failed steps
  1 - Failed steps detected
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", parser.FormatGeneric, "Log format (github-actions|jenkins|teamcity|generic)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include line numbers and metadata")

	cmd.Flags().BoolVar(&opts.AI, "ai", false, "Request AI diagnostics for the analysis")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Config file (used for AI settings)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	logPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	formatter, err := output.NewFormatter(opts.Output, output.FormatOptions{
		Quiet:   opts.Quiet,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return err
	}

	content, err := os.ReadFile(logPath) // #nosec G304 -- user-provided log path is expected
	if err != nil {
		return fmt.Errorf("reading log file: %w", err)
	}

	analysis := parser.Parse(string(content), opts.Format)
	report := output.NewReport(analysis, opts.Format, logPath)

	if opts.AI {
		insights, err := fetchInsights(ctx, opts.ConfigFile, analysis, opts.Format)
		if err != nil {
			// AI problems never fail the analysis itself.
			fmt.Fprintf(os.Stderr, "Warning: AI insights unavailable: %v\n", err)
		} else {
			report.Insights = insights
		}
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.HasFailures() {
		ExitCode = 1
	}
	return nil
}

func fetchInsights(ctx context.Context, configFile string, analysis *parser.LogAnalysis, format string) (*ai.Insights, error) {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, err
	}
	if cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("no API key configured (set %s)", config.EnvAIAPIKey)
	}

	client := ai.NewClient(ai.Options{
		Endpoint: cfg.AI.Endpoint,
		Model:    cfg.AI.Model,
		APIKey:   cfg.AI.APIKey,
		Timeout:  cfg.AI.Timeout,
		CacheTTL: cfg.AI.CacheTTL,
	})
	return client.Analyze(ctx, analysis, format)
}
