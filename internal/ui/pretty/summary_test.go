package pretty_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocst/internal/ui/pretty"
	"github.com/yaklabco/gocst/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        10,
		FilesWithIssues:       3,
		DiagnosticsTotal:      15,
		BytesParsed:           2048,
		FilesByLanguage:       map[string]int{"json": 4, "css": 6},
		DiagnosticsBySeverity: map[string]int{"error": 5, "warning": 10},
		Duration:              1500 * time.Millisecond,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files checked:     10")
	assert.Contains(t, result, "Files with issues: 3")
	assert.Contains(t, result, "Bytes parsed:      2.0 kB")
	assert.Contains(t, result, "Languages:         css 6, json 4")
	assert.Contains(t, result, "Duration:          1.5s")
	assert.Contains(t, result, "Total issues:      15")
	assert.Contains(t, result, "Errors:")
	assert.Contains(t, result, "Warnings:")
	assert.Contains(t, result, "Lint failed with errors")
}

func TestFormatSummary_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{
		FilesProcessed:        5,
		DiagnosticsBySeverity: map[string]int{},
	})

	assert.Contains(t, result, "Lint passed")
	assert.NotContains(t, result, "Files with issues:")
}

func TestFormatSummary_WarningsOnly(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{
		FilesProcessed:        2,
		FilesWithIssues:       1,
		DiagnosticsTotal:      1,
		DiagnosticsBySeverity: map[string]int{"warning": 1},
	})

	assert.Contains(t, result, "Lint completed with warnings")
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "clean",
			stats: runner.Stats{FilesProcessed: 1, BytesParsed: 12},
			want:  "No issues found (1 file checked, 12 B)\n",
		},
		{
			name: "mixed",
			stats: runner.Stats{
				FilesWithIssues:       2,
				DiagnosticsTotal:      3,
				DiagnosticsBySeverity: map[string]int{"error": 1, "warning": 2},
			},
			want: "3 issues (1 error, 2 warnings) in 2 files\n",
		},
		{
			name: "single",
			stats: runner.Stats{
				FilesWithIssues:       1,
				DiagnosticsTotal:      1,
				DiagnosticsBySeverity: map[string]int{"info": 1},
			},
			want: "1 issue (1 info) in 1 file\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}
