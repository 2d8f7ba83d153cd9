// Package batch iterates a file set through the transform driver and
// aggregates per-file outcomes into a report.
package batch

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/restitch/cli/internal/logger"
	"github.com/restitch/cli/internal/rewrite"
)

// Processor transforms one file. *rewrite.Driver satisfies this.
type Processor interface {
	Process(path string) (rewrite.Outcome, error)
}

// FileReport records what happened to one file.
type FileReport struct {
	Path    string `json:"path"`
	Outcome string `json:"outcome"`
	Err     string `json:"error,omitempty"`
}

// Report aggregates a whole batch run.
type Report struct {
	Generated time.Time    `json:"generated"`
	Recipe    string       `json:"recipe,omitempty"`
	Total     int          `json:"total"`
	Modified  int          `json:"modified"`
	Skipped   int          `json:"skipped"`
	Missing   int          `json:"missing"`
	Failed    int          `json:"failed"`
	Files     []FileReport `json:"files"`
}

// Runner processes files in parallel with a bounded worker count. Each
// file's read-transform-write sequence is self-contained, so ordering
// between files does not matter; the final report is sorted by path to stay
// deterministic.
type Runner struct {
	Processor Processor
	Jobs      int
	Logger    logger.Logger
}

// NewRunner creates a runner. Jobs values below one fall back to a small
// default.
func NewRunner(p Processor, jobs int, log logger.Logger) *Runner {
	if jobs <= 0 {
		jobs = 4
	}
	if log == nil {
		log = &logger.StdoutLogger{}
	}
	return &Runner{Processor: p, Jobs: jobs, Logger: log}
}

// Run processes every file and absorbs per-file errors into the report; the
// batch keeps going past individual failures. A wholly empty file list is a
// batch-level error. Context cancellation stops scheduling new files;
// already-written files remain valid and are safely reprocessable.
func (r *Runner) Run(ctx context.Context, recipeName string, files []string) (*Report, error) {
	if len(files) == 0 {
		return nil, errors.New("no files to process")
	}

	report := &Report{
		Generated: time.Now(),
		Recipe:    recipeName,
		Total:     len(files),
	}
	var mu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Jobs)
	for _, path := range files {
		path := path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			outcome, err := r.Processor.Process(path)

			mu.Lock()
			defer mu.Unlock()
			fr := FileReport{Path: path, Outcome: outcome.String()}
			switch {
			case err != nil:
				report.Failed++
				fr.Err = err.Error()
			case outcome == rewrite.Modified:
				report.Modified++
			case outcome == rewrite.NotFound:
				report.Missing++
			default:
				report.Skipped++
			}
			report.Files = append(report.Files, fr)
			done++
			if fr.Err != "" {
				r.Logger.Logf("[%d/%d] %s: %s (%s)\n", done, report.Total, path, fr.Outcome, fr.Err)
			} else {
				r.Logger.Logf("[%d/%d] %s: %s\n", done, report.Total, path, fr.Outcome)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	sort.Slice(report.Files, func(i, j int) bool { return report.Files[i].Path < report.Files[j].Path })
	return report, nil
}
