// Package summary renders a short natural-language digest of a log
// analysis. It reads the analysis record only; it never modifies it.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/buildlens/buildlens/pkg/parser"
)

// Render returns a one-paragraph digest of the analysis counts.
func Render(analysis *parser.LogAnalysis) string {
	var b strings.Builder

	if analysis.FailedSteps > 0 {
		fmt.Fprintf(&b, "Build failed: %d of %d steps failed", analysis.FailedSteps, analysis.TotalSteps)
	} else if analysis.TotalSteps > 0 {
		fmt.Fprintf(&b, "Build succeeded: all %d steps passed", analysis.TotalSteps)
	} else {
		b.WriteString("No build steps were recognized")
	}

	if n := len(analysis.Errors); n > 0 {
		fmt.Fprintf(&b, ", %d error(s)", n)
	}
	if n := len(analysis.Warnings); n > 0 {
		fmt.Fprintf(&b, ", %d warning(s)", n)
	}

	if analysis.TotalDurationMS != nil {
		d := time.Duration(*analysis.TotalDurationMS) * time.Millisecond
		fmt.Fprintf(&b, ", elapsed %s", d)
	}

	b.WriteString(".")
	return b.String()
}
