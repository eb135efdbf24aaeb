package parser

import (
	"regexp"
	"strings"
)

// Labeled message patterns for logs with no recognized CI convention.
var (
	genericErrorPattern   = regexp.MustCompile(`(?i)(?:error|exception|failed|failure):\s*(.*)`)
	genericWarningPattern = regexp.MustCompile(`(?i)(?:warning|warn):\s*(.*)`)
)

// fallbackStepName names the step synthesized when errors or warnings
// were found but no step boundary ever matched.
const fallbackStepName = "Build Process"

// parseGeneric applies loose heuristics to unrecognized log formats.
// A line opens a new step when it mentions "step" or "stage" or starts
// with a === or --- divider; the whole trimmed line becomes the step
// name. Labeled errors mark the most recent step failed; labeled
// warnings are recorded globally only.
func parseGeneric(lines []string, acc *accumulator) {
	for _, line := range lines {
		if isGenericStepBoundary(line) {
			acc.steps = append(acc.steps, BuildStep{
				Name:   strings.TrimSpace(line),
				Status: StepStatusSuccess,
			})
		}

		if m := genericErrorPattern.FindStringSubmatch(line); m != nil {
			msg := strings.TrimSpace(m[1])
			acc.errors = append(acc.errors, msg)
			acc.failLast(msg)
		}

		if m := genericWarningPattern.FindStringSubmatch(line); m != nil {
			acc.warnings = append(acc.warnings, strings.TrimSpace(m[1]))
		}
	}

	// A log full of errors or warnings but no recognizable step
	// boundary still deserves one step to hang the outcome on.
	if len(acc.steps) == 0 && (len(acc.errors) > 0 || len(acc.warnings) > 0) {
		step := BuildStep{
			Name:   fallbackStepName,
			Status: StepStatusSuccess,
		}
		if len(acc.errors) > 0 {
			step.Status = StepStatusFailed
			step.ErrorMessage = acc.errors[0]
		}
		acc.steps = append(acc.steps, step)
	}
}

func isGenericStepBoundary(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "step") ||
		strings.Contains(lower, "stage") ||
		strings.HasPrefix(line, "===") ||
		strings.HasPrefix(line, "---")
}
