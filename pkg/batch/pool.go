package batch

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sessilelab/dropletgen/pkg/pipeline"
)

// Report aggregates the outcome of a batch run. Per-row failures end up
// in Skipped rather than aborting the remaining rows.
type Report struct {
	// Written lists the output file names that were produced.
	Written []string

	// Skipped lists rows that failed to parse or generate.
	Skipped []RowError
}

// Sink receives one finished artifact per successful row.
type Sink func(row Row, result *pipeline.Result) error

// DirSink returns a sink that writes droplet_{id}.png files into dir.
// The artifact is rendered fully in memory first, so a failed generation
// never leaves a partially written file behind.
func DirSink(dir string) Sink {
	return func(row Row, result *pipeline.Result) error {
		return os.WriteFile(filepath.Join(dir, result.Filename()), result.PNG, 0644)
	}
}

// Run generates every row through the runner using a bounded worker pool
// and hands finished artifacts to sink. The base options carry shared
// settings (canvas, lighting, annotation); per-row ID and Angle override
// base.ID and base.Angle, and the seed derives from the row id unless the
// base fixes one.
//
// workers <= 0 means GOMAXPROCS. Rows queued after the context is
// cancelled are skipped with the context error; completed rows are
// unaffected.
func Run(ctx context.Context, runner *pipeline.Runner, rows []Row, base pipeline.Options, workers int, sink Sink) Report {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var mu sync.Mutex
	report := Report{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, row := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				mu.Lock()
				report.Skipped = append(report.Skipped, RowError{Line: row.Line, ID: row.ID, Err: err})
				mu.Unlock()
				return nil
			}

			result, err := runner.Generate(ctx, base.ForRow(row.ID, row.Angle))
			if err == nil {
				err = sink(row, result)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Skipped = append(report.Skipped, RowError{Line: row.Line, ID: row.ID, Err: err})
				return nil
			}
			report.Written = append(report.Written, result.Filename())
			return nil
		})
	}

	// Workers never return errors; failures land in the report.
	_ = g.Wait()

	sort.Strings(report.Written)
	sort.Slice(report.Skipped, func(i, j int) bool { return report.Skipped[i].Line < report.Skipped[j].Line })
	return report
}
