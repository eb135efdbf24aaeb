package parser

import (
	"strings"
	"testing"
)

func TestTeamCity_BlockAndError(t *testing.T) {
	content := strings.Join([]string{
		"##teamcity[blockOpened name='Build']",
		"##teamcity[message text='Build failed' status='ERROR']",
	}, "\n")

	analysis := Parse(content, "teamcity")

	if analysis.TotalSteps != 1 {
		t.Fatalf("TotalSteps = %d, want 1", analysis.TotalSteps)
	}
	if analysis.Steps[0].Name != "Build" {
		t.Errorf("Name = %q, want %q", analysis.Steps[0].Name, "Build")
	}
	if len(analysis.Errors) != 1 || analysis.Errors[0] != "Build failed" {
		t.Errorf("Errors = %v, want [Build failed]", analysis.Errors)
	}

	// TeamCity errors are recorded globally but never flip a step.
	if analysis.Steps[0].Status != StepStatusSuccess {
		t.Errorf("Status = %q, want success", analysis.Steps[0].Status)
	}
	if analysis.FailedSteps != 0 {
		t.Errorf("FailedSteps = %d, want 0", analysis.FailedSteps)
	}
}

func TestTeamCity_NameKeptVerbatim(t *testing.T) {
	analysis := Parse("##teamcity[blockOpened name='  padded name  ']", "teamcity")

	if analysis.Steps[0].Name != "  padded name  " {
		t.Errorf("Name = %q, want untrimmed capture", analysis.Steps[0].Name)
	}
}

func TestTeamCity_NonErrorMessagesIgnored(t *testing.T) {
	content := strings.Join([]string{
		"##teamcity[message text='compiling' status='NORMAL']",
		"##teamcity[message text='slow disk' status='WARNING']",
	}, "\n")

	analysis := Parse(content, "teamcity")

	if len(analysis.Errors) != 0 {
		t.Errorf("Errors = %v, want none for non-ERROR statuses", analysis.Errors)
	}
	if len(analysis.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none (no warning channel for teamcity)", analysis.Warnings)
	}
}

func TestTeamCity_ErrorWithAttributesBetween(t *testing.T) {
	analysis := Parse("##teamcity[message text='oom' errorDetails='heap' status='ERROR']", "teamcity")

	if len(analysis.Errors) != 1 || analysis.Errors[0] != "oom" {
		t.Errorf("Errors = %v, want [oom]", analysis.Errors)
	}
}
