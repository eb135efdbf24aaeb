package output

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	fmt.Fprintln(w, report.Summary)

	if f.opts.Quiet {
		return nil
	}
	fmt.Fprintln(w)

	if len(report.Analysis.Steps) > 0 {
		f.formatSteps(report, w)
	}

	if len(report.Analysis.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, e := range report.Analysis.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
		fmt.Fprintln(w)
	}

	if len(report.Analysis.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warning := range report.Analysis.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
		fmt.Fprintln(w)
	}

	if report.Insights != nil {
		f.formatInsights(report, w)
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Source: %s (format: %s)\n", report.Metadata.Source, report.Metadata.Format)
		fmt.Fprintf(w, "Analyzed at: %s\n", report.Metadata.AnalyzedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

func (f *TextFormatter) formatSteps(report *Report, w io.Writer) {
	table := tablewriter.NewWriter(w)
	if f.opts.Verbose {
		table.Header("Line", "Step", "Status", "Error")
	} else {
		table.Header("Step", "Status", "Error")
	}

	for _, step := range report.Analysis.Steps {
		row := []string{step.Name, string(step.Status), step.ErrorMessage}
		if f.opts.Verbose {
			line := ""
			if step.LineNumber > 0 {
				line = strconv.Itoa(step.LineNumber)
			}
			row = append([]string{line}, row...)
		}
		table.Append(row)
	}

	table.Render()
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatInsights(report *Report, w io.Writer) {
	fmt.Fprintln(w, "AI Insights:")
	if report.Insights.RootCause != "" {
		fmt.Fprintf(w, "  Root cause:      %s\n", report.Insights.RootCause)
	}
	if report.Insights.Recommendations != "" {
		fmt.Fprintf(w, "  Recommendations: %s\n", report.Insights.Recommendations)
	}
	if report.Insights.Impact != "" {
		fmt.Fprintf(w, "  Impact:          %s\n", report.Insights.Impact)
	}
	fmt.Fprintln(w)
}
