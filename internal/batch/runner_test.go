package batch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/restitch/cli/internal/rewrite"
)

type fakeProcessor struct {
	mu       sync.Mutex
	outcomes map[string]rewrite.Outcome
	errs     map[string]error
	calls    []string
}

func (f *fakeProcessor) Process(path string) (rewrite.Outcome, error) {
	f.mu.Lock()
	f.calls = append(f.calls, path)
	f.mu.Unlock()
	if err, ok := f.errs[path]; ok {
		return rewrite.Skipped, err
	}
	return f.outcomes[path], nil
}

type discardLogger struct{}

func (discardLogger) Logf(format string, args ...interface{}) {}
func (discardLogger) Log(msg string)                          {}

func TestRunAggregates(t *testing.T) {
	p := &fakeProcessor{
		outcomes: map[string]rewrite.Outcome{
			"a.ts": rewrite.Modified,
			"b.ts": rewrite.Skipped,
			"c.ts": rewrite.NotFound,
		},
		errs: map[string]error{
			"d.ts": errors.New("permission denied"),
		},
	}
	r := NewRunner(p, 2, discardLogger{})

	report, err := r.Run(context.Background(), "logging", []string{"d.ts", "c.ts", "b.ts", "a.ts"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Total != 4 || report.Modified != 1 || report.Skipped != 1 || report.Missing != 1 || report.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", report)
	}
	if len(report.Files) != 4 {
		t.Fatalf("expected 4 file reports, got %d", len(report.Files))
	}
	if !sort.SliceIsSorted(report.Files, func(i, j int) bool {
		return report.Files[i].Path < report.Files[j].Path
	}) {
		t.Fatal("file reports must be sorted by path")
	}
	for _, fr := range report.Files {
		if fr.Path == "d.ts" && !strings.Contains(fr.Err, "permission denied") {
			t.Errorf("per-file error not recorded: %+v", fr)
		}
	}
}

func TestRunEmptyList(t *testing.T) {
	r := NewRunner(&fakeProcessor{}, 1, discardLogger{})
	if _, err := r.Run(context.Background(), "logging", nil); err == nil {
		t.Fatal("empty file list must be a batch-level error")
	}
}

func TestRunProcessesAllFilesInParallel(t *testing.T) {
	outcomes := make(map[string]rewrite.Outcome)
	var files []string
	for i := 0; i < 50; i++ {
		name := fmt.Sprintf("file-%02d.ts", i)
		files = append(files, name)
		outcomes[name] = rewrite.Skipped
	}
	p := &fakeProcessor{outcomes: outcomes}
	r := NewRunner(p, 8, discardLogger{})

	report, err := r.Run(context.Background(), "params", files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Skipped != 50 || len(p.calls) != 50 {
		t.Fatalf("expected all 50 files processed, got %d/%d", report.Skipped, len(p.calls))
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(&fakeProcessor{outcomes: map[string]rewrite.Outcome{}}, 1, discardLogger{})
	if _, err := r.Run(ctx, "logging", []string{"a.ts"}); err == nil {
		t.Fatal("expected context error")
	}
}
