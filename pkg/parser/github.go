package parser

import (
	"regexp"
	"strings"
)

// GitHub Actions workflow command markers.
// https://docs.github.com/en/actions/using-workflows/workflow-commands-for-github-actions
var (
	ghGroupPattern   = regexp.MustCompile(`##\[group\](.*)`)
	ghErrorPattern   = regexp.MustCompile(`##\[error\](.*)`)
	ghWarningPattern = regexp.MustCompile(`##\[warning\](.*)`)
)

// ghLookaheadLines is the window scanned for an error marker when a
// group opens: the group line itself plus the nine following lines.
const ghLookaheadLines = 10

// parseGitHubActions recognizes ##[group], ##[error], and ##[warning]
// markers. A step's outcome is decided at creation time: if any line
// in the lookahead window carries an error marker, the step is marked
// failed. Errors and warnings are recorded globally either way and
// are never attached to a step.
func parseGitHubActions(lines []string, acc *accumulator) {
	for i, line := range lines {
		if m := ghGroupPattern.FindStringSubmatch(line); m != nil {
			step := BuildStep{
				Name:       strings.TrimSpace(m[1]),
				Status:     StepStatusSuccess,
				LineNumber: i + 1,
			}
			if ghWindowHasError(lines, i) {
				step.Status = StepStatusFailed
			}
			acc.steps = append(acc.steps, step)
		}

		if m := ghErrorPattern.FindStringSubmatch(line); m != nil {
			acc.errors = append(acc.errors, strings.TrimSpace(m[1]))
		}

		if m := ghWarningPattern.FindStringSubmatch(line); m != nil {
			acc.warnings = append(acc.warnings, strings.TrimSpace(m[1]))
		}
	}
}

// ghWindowHasError reports whether any line in the lookahead window
// starting at start contains an error marker.
func ghWindowHasError(lines []string, start int) bool {
	end := start + ghLookaheadLines
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[start:end] {
		if ghErrorPattern.MatchString(line) {
			return true
		}
	}
	return false
}
