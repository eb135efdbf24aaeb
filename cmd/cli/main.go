// buildlens - CI/CD Build Log Analyzer
//
// buildlens extracts structured build steps, errors, warnings, and
// timing from raw CI/CD logs, with optional AI diagnostics.
package main

import (
	"os"

	"github.com/buildlens/buildlens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
