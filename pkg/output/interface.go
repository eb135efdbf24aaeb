package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders a report to a writer.
type Formatter interface {
	// Name returns the format name.
	Name() string

	// Format renders the report.
	Format(ctx context.Context, report *Report, w io.Writer) error
}

// FormatOptions configures formatter behavior.
type FormatOptions struct {
	// Quiet limits output to the summary line.
	Quiet bool

	// Verbose includes per-step line numbers and metadata.
	Verbose bool
}

// NewFormatter creates a formatter by name.
func NewFormatter(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", name)
	}
}
