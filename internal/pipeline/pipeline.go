// Package pipeline runs the seating search as four named stages
// (generate, assemble, filter, evaluate), reporting progress and per-stage
// candidate counts. The filter and evaluate stages fan out over a bounded
// worker pool; the result is identical to seating.FindSafeArrangements.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dusk-indust/seatperm/internal/seating"
)

// progressBuffer is how many progress events queue before new ones are dropped.
const progressBuffer = 64

// Pipeline coordinates one or more seating searches. It owns a
// ProgressReporter; callers should drain Progress and call Close when done.
type Pipeline struct {
	cfg      Config
	logger   *slog.Logger
	progress *ProgressReporter
	fanout   *FanOut
}

// NewPipeline creates a Pipeline. A nil logger discards log output.
func NewPipeline(cfg Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	progress := NewProgressReporter(progressBuffer)

	return &Pipeline{
		cfg:      cfg,
		logger:   logger,
		progress: progress,
		fanout:   NewFanOut(cfg, progress.Emit),
	}
}

// Run validates params and executes every stage in order. Validation errors
// wrap seating.ErrInvalidInput and are returned before any work starts. A
// cancelled context aborts the run without a partial result.
func (p *Pipeline) Run(ctx context.Context, params seating.Params) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	label := fmt.Sprintf("n=%d s=%d", params.Seats, params.StartingMatches)
	identity := seating.Identity(params.Seats)
	result := &Result{Params: params}

	p.logger.Debug("seating search started",
		"seats", params.Seats,
		"starting_matches", params.StartingMatches,
		"threshold", params.Threshold,
		"policy", params.Policy.String(),
		"workers", p.cfg.workers(),
	)

	// generate
	p.beginStage(label, StageGenerate)
	perms, err := seating.Permutations(params.Seats, params.StartingMatches)
	if err != nil {
		return nil, p.failStage(StageGenerate, err)
	}
	p.endStage(result, StageGenerate, len(perms))
	if err := ctx.Err(); err != nil {
		return nil, p.failStage(StageAssemble, err)
	}

	// assemble
	p.beginStage(label, StageAssemble)
	candidates, err := seating.AssembleAll(perms, params.Seats, params.StartingMatches)
	if err != nil {
		return nil, p.failStage(StageAssemble, err)
	}
	p.endStage(result, StageAssemble, len(candidates))

	// filter
	p.beginStage(label, StageFilter)
	candidates, err = p.fanout.Run(ctx, StageFilter, candidates, func(a seating.Arrangement) bool {
		return seating.HasExactMatches(a, identity, params.StartingMatches)
	})
	if err != nil {
		return nil, p.failStage(StageFilter, err)
	}
	p.endStage(result, StageFilter, len(candidates))

	// evaluate
	p.beginStage(label, StageEvaluate)
	candidates, err = p.fanout.Run(ctx, StageEvaluate, candidates, func(a seating.Arrangement) bool {
		return seating.IsSafe(a, identity, params.Threshold, params.Policy)
	})
	if err != nil {
		return nil, p.failStage(StageEvaluate, err)
	}
	p.endStage(result, StageEvaluate, len(candidates))

	result.Results = seating.NewResultSet(identity)
	for _, a := range candidates {
		result.Results.Add(a)
	}

	p.logger.Info("seating search finished",
		"seats", params.Seats,
		"accepted", result.Results.Len(),
		"progress_dropped", p.progress.Dropped(),
	)
	return result, nil
}

// Progress returns a channel that emits progress events.
func (p *Pipeline) Progress() <-chan ProgressEvent {
	return p.progress.Subscribe()
}

// Close shuts down the progress reporter. Runs after Close still work but
// report no progress.
func (p *Pipeline) Close() {
	p.progress.Close()
}

func (p *Pipeline) beginStage(label string, stage Stage) {
	p.progress.Emit(ProgressEvent{
		Stage:   stage,
		Section: stage.String(),
		Status:  ProgressWorking,
		Message: label,
	})
}

func (p *Pipeline) endStage(result *Result, stage Stage, n int) {
	result.Stages = append(result.Stages, StageResult{Stage: stage, Candidates: n})
	p.progress.Emit(ProgressEvent{
		Stage:   stage,
		Section: stage.String(),
		Status:  ProgressComplete,
		Message: fmt.Sprintf("%d candidates", n),
	})
	p.logger.Debug("stage complete", "stage", stage.String(), "candidates", n)
}

func (p *Pipeline) failStage(stage Stage, err error) error {
	p.progress.Emit(ProgressEvent{
		Stage:   stage,
		Section: stage.String(),
		Status:  ProgressFailed,
		Message: err.Error(),
	})
	p.logger.Warn("stage failed", "stage", stage.String(), "error", err)
	return fmt.Errorf("%s stage: %w", stage, err)
}
