package parser

import (
	"strings"
	"testing"
)

func TestTotalDuration_TwoTimestamps(t *testing.T) {
	content := strings.Join([]string{
		"2024-01-01 00:00:00 build started",
		"compiling",
		"2024-01-01 00:00:05 build finished",
	}, "\n")

	analysis := Parse(content, "generic")

	if analysis.TotalDurationMS == nil {
		t.Fatal("TotalDurationMS = nil, want 5000")
	}
	if *analysis.TotalDurationMS != 5000 {
		t.Errorf("TotalDurationMS = %d, want 5000", *analysis.TotalDurationMS)
	}
}

func TestTotalDuration_SingleTimestamp(t *testing.T) {
	analysis := Parse("2024-01-01 00:00:00 lonely", "generic")

	if analysis.TotalDurationMS != nil {
		t.Errorf("TotalDurationMS = %d, want nil for a single timestamp", *analysis.TotalDurationMS)
	}
}

func TestTotalDuration_LayoutVariants(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMS  int64
	}{
		{
			"iso with milliseconds and Z",
			"2024-01-01T00:00:00.000Z start\n2024-01-01T00:00:01.500Z end",
			1500,
		},
		{
			"iso local",
			"2024-01-01T10:00:00 start\n2024-01-01T10:00:30 end",
			30000,
		},
		{
			"mixed layouts",
			"2024-01-01 10:00:00 start\n2024-01-01T10:01:00 end",
			60000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := Parse(tt.content, "generic")
			if analysis.TotalDurationMS == nil {
				t.Fatal("TotalDurationMS = nil")
			}
			if *analysis.TotalDurationMS != tt.wantMS {
				t.Errorf("TotalDurationMS = %d, want %d", *analysis.TotalDurationMS, tt.wantMS)
			}
		})
	}
}

func TestTotalDuration_UnparseableCandidatesSkipped(t *testing.T) {
	content := strings.Join([]string{
		"2024-13-45 99:99:99 not a real date",
		"2024-01-01 00:00:00 real",
		"2024-01-01 00:00:02 also real",
	}, "\n")

	analysis := Parse(content, "generic")

	if analysis.TotalDurationMS == nil {
		t.Fatal("TotalDurationMS = nil, want 2000")
	}
	if *analysis.TotalDurationMS != 2000 {
		t.Errorf("TotalDurationMS = %d, want 2000 (bad candidate skipped)", *analysis.TotalDurationMS)
	}
}

// Duration deliberately follows encounter order, not chronological
// order: timestamps that go backwards in the text produce a negative
// duration.
func TestTotalDuration_EncounterOrderCanGoNegative(t *testing.T) {
	content := strings.Join([]string{
		"2024-01-01 00:01:00 later timestamp printed first",
		"2024-01-01 00:00:00 earlier timestamp printed last",
	}, "\n")

	analysis := Parse(content, "generic")

	if analysis.TotalDurationMS == nil {
		t.Fatal("TotalDurationMS = nil")
	}
	if *analysis.TotalDurationMS != -60000 {
		t.Errorf("TotalDurationMS = %d, want -60000", *analysis.TotalDurationMS)
	}
}

func TestTotalDuration_ScansFullContentRegardlessOfFormat(t *testing.T) {
	content := strings.Join([]string{
		"##teamcity[blockOpened name='Build']",
		"2024-01-01 00:00:00 output",
		"2024-01-01 00:00:10 output",
	}, "\n")

	analysis := Parse(content, "teamcity")

	if analysis.TotalDurationMS == nil || *analysis.TotalDurationMS != 10000 {
		t.Errorf("TotalDurationMS = %v, want 10000", analysis.TotalDurationMS)
	}
}

func TestTotalDuration_FirstMatchPerLine(t *testing.T) {
	content := strings.Join([]string{
		"2024-01-01 00:00:00 retried at 2024-01-01 00:09:00",
		"2024-01-01 00:00:03 done",
	}, "\n")

	analysis := Parse(content, "generic")

	if analysis.TotalDurationMS == nil || *analysis.TotalDurationMS != 3000 {
		t.Errorf("TotalDurationMS = %v, want 3000 (one candidate per line)", analysis.TotalDurationMS)
	}
}
