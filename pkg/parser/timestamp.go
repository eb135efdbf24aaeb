package parser

import (
	"regexp"
	"strings"
	"time"
)

// timestampPattern matches a broad date-time shape: a calendar date,
// a T or space separator, a clock time, and an optional millisecond
// fraction with trailing Z.
var timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d{3}Z)?`)

// timestampLayouts are tried in order; the first that parses a
// candidate wins. Candidates that fail every layout are skipped.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// totalDuration scans the entire content for timestamps and returns
// the millisecond difference between the first- and last-encountered
// ones, in line order. Fewer than two parseable timestamps yields nil.
//
// Encounter order is deliberate: a log whose timestamps are not
// monotonically increasing produces a duration that tracks text
// order, not wall-clock order, and may be negative.
func totalDuration(content string) *int64 {
	var timestamps []time.Time

	for _, line := range strings.Split(content, "\n") {
		candidate := timestampPattern.FindString(line)
		if candidate == "" {
			continue
		}
		if ts, ok := parseTimestamp(candidate); ok {
			timestamps = append(timestamps, ts)
		}
	}

	if len(timestamps) < 2 {
		return nil
	}

	ms := timestamps[len(timestamps)-1].Sub(timestamps[0]).Milliseconds()
	return &ms
}

func parseTimestamp(candidate string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, candidate); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
