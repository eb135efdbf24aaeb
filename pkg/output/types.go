// Package output provides formatting and output generation for build
// log analysis results.
package output

import (
	"time"

	"github.com/buildlens/buildlens/pkg/ai"
	"github.com/buildlens/buildlens/pkg/parser"
	"github.com/buildlens/buildlens/pkg/summary"
)

// Report is the complete analysis output.
type Report struct {
	// Analysis is the parser's structured record.
	Analysis *parser.LogAnalysis `json:"analysis"`

	// Summary is a short natural-language digest of the analysis.
	Summary string `json:"summary"`

	// Insights holds AI diagnostics when they were requested and
	// succeeded. They sit alongside the analysis, never inside it.
	Insights *ai.Insights `json:"insights,omitempty"`

	// Metadata provides context about the analysis run.
	Metadata Metadata `json:"metadata"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Source identifies where the log came from.
	Source string `json:"source"`

	// Format is the format key the log was parsed with.
	Format string `json:"format"`

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// NewReport assembles a Report from an analysis record.
func NewReport(analysis *parser.LogAnalysis, format, source string) *Report {
	return &Report{
		Analysis: analysis,
		Summary:  summary.Render(analysis),
		Metadata: Metadata{
			Source:     source,
			Format:     format,
			AnalyzedAt: time.Now(),
		},
	}
}

// HasFailures returns true if any step failed.
func (r *Report) HasFailures() bool {
	return r.Analysis != nil && r.Analysis.FailedSteps > 0
}
