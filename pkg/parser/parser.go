package parser

import "strings"

// Format keys recognized by Parse. Comparison is case-insensitive;
// any other value selects the generic strategy.
const (
	FormatGitHubActions = "github-actions"
	FormatJenkins       = "jenkins"
	FormatTeamCity      = "teamcity"
	FormatGeneric       = "generic"
)

// SupportedFormats returns the format keys Parse dispatches on.
func SupportedFormats() []string {
	return []string{FormatGitHubActions, FormatJenkins, FormatTeamCity, FormatGeneric}
}

// accumulator collects steps, errors, and warnings during a single
// strategy walk. Each Parse call allocates its own; nothing is shared
// between concurrent calls.
type accumulator struct {
	steps    []BuildStep
	errors   []string
	warnings []string
}

func newAccumulator() *accumulator {
	return &accumulator{
		steps:    []BuildStep{},
		errors:   []string{},
		warnings: []string{},
	}
}

// failLast replaces the last step with a copy marked failed and
// carrying the given error message. No-op when no steps exist yet.
func (a *accumulator) failLast(msg string) {
	if len(a.steps) == 0 {
		return
	}
	last := a.steps[len(a.steps)-1]
	last.Status = StepStatusFailed
	last.ErrorMessage = msg
	a.steps[len(a.steps)-1] = last
}

// Parse analyzes raw build-log content using the strategy selected by
// format and returns the aggregate result. It never fails: empty
// content, unknown format keys, and arbitrary bytes all produce a
// valid (possibly empty) analysis.
func Parse(content, format string) *LogAnalysis {
	lines := strings.Split(content, "\n")
	acc := newAccumulator()

	switch strings.ToLower(format) {
	case FormatGitHubActions:
		parseGitHubActions(lines, acc)
	case FormatJenkins:
		parseJenkins(lines, acc)
	case FormatTeamCity:
		parseTeamCity(lines, acc)
	default:
		parseGeneric(lines, acc)
	}

	analysis := &LogAnalysis{
		TotalSteps:      len(acc.steps),
		TotalDurationMS: totalDuration(content),
		Steps:           acc.steps,
		Errors:          acc.errors,
		Warnings:        acc.warnings,
	}
	for _, s := range acc.steps {
		if s.Status == StepStatusFailed {
			analysis.FailedSteps++
		}
	}
	return analysis
}
