package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/restitch/cli/internal/batch"
	"github.com/restitch/cli/internal/stats"
)

func TestRenderBatchReport(t *testing.T) {
	report := &batch.Report{
		Generated: time.Now(),
		Recipe:    "logging",
		Total:     3,
		Modified:  1,
		Skipped:   1,
		Failed:    1,
		Files: []batch.FileReport{
			{Path: "src/a.ts", Outcome: "modified"},
			{Path: "src/b.ts", Outcome: "skipped"},
			{Path: "src/c.ts", Outcome: "skipped", Err: "permission denied"},
		},
	}

	out := RenderBatchReport(report)
	for _, want := range []string{"logging", "Total:    3", "src/a.ts", "permission denied"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q:\n%s", want, out)
		}
	}

	if RenderBatchReport(nil) != "" {
		t.Error("nil report should render empty")
	}
}

func TestRenderStats(t *testing.T) {
	report := &stats.Report{
		Code: stats.CodeStats{
			TotalFiles:  2,
			TotalLines:  40,
			ByExtension: map[string]*stats.Counts{".tsx": {Files: 2, Lines: 40}},
			ByModule:    map[string]*stats.Counts{"app": {Files: 2, Lines: 40}},
			ByLanguage:  map[string]*stats.Counts{"TSX": {Files: 2, Lines: 40}},
		},
		Database:     stats.SchemaStats{Found: true, Models: 5, Enums: 2, Lines: 80},
		Dependencies: stats.DependencyStats{Found: true, Dependencies: 10, DevDependencies: 4, Total: 14},
	}

	out := RenderStats(report)
	for _, want := range []string{"Total Files: 2", ".tsx", "app", "TSX", "Models: 5", "Total:      14"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered stats missing %q:\n%s", want, out)
		}
	}
}
