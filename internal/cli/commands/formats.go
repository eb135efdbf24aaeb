package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// formatInfo describes one recognized log format for the listing.
type formatInfo struct {
	Key     string
	Markers string
}

var knownFormats = []formatInfo{
	{"github-actions", "##[group], ##[error], ##[warning]"},
	{"jenkins", "[Pipeline] stage/step, ERROR: prefix"},
	{"teamcity", "##teamcity[blockOpened ...], ##teamcity[message ... status='ERROR']"},
	{"generic", "step/stage keywords, ===/--- dividers, error:/warning: labels"},
}

// NewFormatsCommand creates the formats command.
func NewFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List recognized log formats",
		Long: `List the log format keys accepted by analyze and the API.

Unrecognized format keys fall back to generic matching.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range knownFormats {
				fmt.Printf("%-16s %s\n", f.Key, f.Markers)
			}
		},
	}
}
