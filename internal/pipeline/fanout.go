package pipeline

import (
	"context"
	"fmt"

	"github.com/dusk-indust/seatperm/internal/seating"
	"golang.org/x/sync/errgroup"
)

// KeepFunc decides whether a candidate survives a stage.
type KeepFunc func(seating.Arrangement) bool

// FanOut evaluates candidates in fixed-size chunks on a bounded number of
// goroutines. Each chunk writes only its own slice of the verdicts, so the
// survivors keep generation order regardless of scheduling.
type FanOut struct {
	workers    int
	chunkSize  int
	onProgress func(ProgressEvent)
}

// NewFanOut creates a FanOut from cfg. onProgress is called from the worker
// goroutines; it may be nil.
func NewFanOut(cfg Config, onProgress func(ProgressEvent)) *FanOut {
	return &FanOut{
		workers:    cfg.workers(),
		chunkSize:  cfg.chunkSize(),
		onProgress: onProgress,
	}
}

// Run applies keep to every candidate and returns the ones it accepted, in
// input order. The first cancelled chunk cancels the rest; on error no
// survivors are returned.
func (f *FanOut) Run(ctx context.Context, stage Stage, candidates []seating.Arrangement, keep KeepFunc) ([]seating.Arrangement, error) {
	verdicts := make([]bool, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)

	for start := 0; start < len(candidates); start += f.chunkSize {
		end := min(start+f.chunkSize, len(candidates))
		section := fmt.Sprintf("%s[%d:%d]", stage, start, end)

		f.emit(ProgressEvent{Stage: stage, Section: section, Status: ProgressPending})

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				f.emit(ProgressEvent{Stage: stage, Section: section, Status: ProgressFailed, Message: err.Error()})
				return err
			}

			f.emit(ProgressEvent{Stage: stage, Section: section, Status: ProgressWorking})
			for i := start; i < end; i++ {
				verdicts[i] = keep(candidates[i])
			}
			f.emit(ProgressEvent{Stage: stage, Section: section, Status: ProgressComplete})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]seating.Arrangement, 0, len(candidates))
	for i, ok := range verdicts {
		if ok {
			kept = append(kept, candidates[i])
		}
	}
	return kept, nil
}

// emit sends a progress event if a callback is registered.
func (f *FanOut) emit(ev ProgressEvent) {
	if f.onProgress != nil {
		f.onProgress(ev)
	}
}
