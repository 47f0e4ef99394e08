// Package pipeline implements the counting core: candidate discovery with a
// per-directory cache, the eligibility filter, per-dataset counters, and the
// sequential/parallel fan-out that reconciles results into a deterministic,
// id-sorted report.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/minha12/countimages/internal/config"
	"github.com/minha12/countimages/internal/logging"
)

// Runner owns one counting run over a dataset configuration. Fs and Log are
// required; Progress, when set, is called once per completed dataset and
// must be safe for concurrent use in parallel mode.
type Runner struct {
	Fs       afero.Fs
	Log      *logging.Logger
	Parallel bool
	Workers  int // Pool size in parallel mode; 0 means one per CPU.
	Progress func()
}

// Run counts every countable dataset and returns the results sorted by
// dataset id, so output is identical regardless of execution mode or
// completion order. Each counting task reads one dataset and one shared
// read-only candidate list and writes only its own result slot, so the
// tasks need no locking. A failed task (panic in a worker) fails the whole
// run; a silently substituted 0 would be indistinguishable from a
// legitimately empty dataset.
func (r *Runner) Run(ctx context.Context, datasets []config.Dataset) ([]Result, error) {
	countable := CountableDatasets(datasets)
	cache := BuildCache(r.Fs, countable, r.Log)

	if r.Log != nil {
		r.Log.Info("Counting images for %d datasets...", len(countable))
	}

	results := make([]Result, len(countable))
	var err error
	if r.Parallel {
		err = r.runParallel(ctx, countable, cache, results)
	} else {
		err = r.runSequential(ctx, countable, cache, results)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DatasetID < results[j].DatasetID
	})
	return results, nil
}

// CountableDatasets filters to the entries that contribute image counts
// (local, not text embeds), preserving input order.
func CountableDatasets(datasets []config.Dataset) []config.Dataset {
	var out []config.Dataset
	for _, d := range datasets {
		if d.Countable() {
			out = append(out, d)
		}
	}
	return out
}

func (r *Runner) runSequential(ctx context.Context, datasets []config.Dataset, cache map[string][]string, results []Result) error {
	for i := range datasets {
		if err := ctx.Err(); err != nil {
			return err
		}
		ds := &datasets[i]
		results[i] = CountFromList(r.Fs, ds, cache[ds.InstanceDataDir])
		if r.Progress != nil {
			r.Progress()
		}
	}
	return nil
}

func (r *Runner) runParallel(ctx context.Context, datasets []config.Dataset, cache map[string][]string, results []Result) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.poolSize())

	for i := range datasets {
		ds := &datasets[i]
		slot := &results[i]
		candidates := cache[ds.InstanceDataDir]

		g.Go(func() (err error) {
			// A crashed task must surface as a run failure, not as a
			// silent zero count.
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("counting dataset %q: %v", ds.ID, p)
				}
			}()

			if err := gctx.Err(); err != nil {
				return err
			}
			*slot = CountFromList(r.Fs, ds, candidates)
			if r.Progress != nil {
				r.Progress()
			}
			return nil
		})
	}
	return g.Wait()
}

func (r *Runner) poolSize() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.NumCPU()
}
