package parser

import (
	"regexp"
	"strings"
)

// Jenkins pipeline log markers. Stage boundaries look like
// "[Pipeline] stage" or "[Pipeline] { (Deploy)"; failures are printed
// as "ERROR: <message>".
var (
	jenkinsStagePattern = regexp.MustCompile(`\[Pipeline\]\s+(?:stage|step)\s*\{?\s*(.*)`)
	jenkinsErrorPattern = regexp.MustCompile(`^ERROR:\s*(.*)`)
)

// parseJenkins recognizes pipeline stage/step boundaries and ERROR:
// lines. An error is always recorded globally; when at least one step
// exists it is also attached to the most recent step, which is
// replaced by a failed copy. Errors that arrive before any step are
// recorded without step linkage.
func parseJenkins(lines []string, acc *accumulator) {
	for _, line := range lines {
		if m := jenkinsStagePattern.FindStringSubmatch(line); m != nil {
			acc.steps = append(acc.steps, BuildStep{
				Name:   strings.TrimSpace(m[1]),
				Status: StepStatusSuccess,
			})
			continue
		}

		if m := jenkinsErrorPattern.FindStringSubmatch(line); m != nil {
			msg := strings.TrimSpace(m[1])
			acc.errors = append(acc.errors, msg)
			acc.failLast(msg)
		}
	}
}
