// Package parser extracts structured build information from raw CI/CD logs.
//
// The parser is a best-effort, line-oriented heuristic extractor: it
// recognizes step boundaries, errors, and warnings using per-format
// pattern conventions, and never fails regardless of input shape.
package parser

// StepStatus is the outcome of a single build step.
type StepStatus string

const (
	StepStatusSuccess StepStatus = "success"
	StepStatusFailed  StepStatus = "failed"
)

// BuildStep is one recognized unit of work within a build log.
type BuildStep struct {
	// Name is the step label as extracted by the format strategy.
	Name string `json:"name"`

	// Status is the step outcome. Steps start as success and may be
	// flipped to failed by the strategy that created them.
	Status StepStatus `json:"status"`

	// ErrorMessage carries the error text associated with a failed
	// step, when the strategy links errors to steps.
	ErrorMessage string `json:"error_message,omitempty"`

	// LineNumber is the 1-based line index where the step was
	// recognized, when the strategy records it.
	LineNumber int `json:"line_number,omitempty"`

	// DurationMS is reserved; no current strategy populates it.
	DurationMS *int64 `json:"duration_ms,omitempty"`
}

// LogAnalysis is the aggregate result of parsing one log.
// It is built fresh per Parse call; callers must not modify the slices.
type LogAnalysis struct {
	// TotalSteps is always len(Steps).
	TotalSteps int `json:"total_steps"`

	// FailedSteps is the count of steps with StepStatusFailed.
	FailedSteps int `json:"failed_steps"`

	// TotalDurationMS is the elapsed milliseconds between the first
	// and last timestamp encountered in the log, present only when at
	// least two timestamps were recovered.
	TotalDurationMS *int64 `json:"total_duration_ms,omitempty"`

	// Steps, Errors, and Warnings are in encounter order, never
	// sorted or deduplicated.
	Steps    []BuildStep `json:"steps"`
	Errors   []string    `json:"errors"`
	Warnings []string    `json:"warnings"`
}
