package pipeline

import "github.com/dusk-indust/seatperm/internal/seating"

// Stage identifies a pipeline stage (0–3).
type Stage int

const (
	StageGenerate Stage = 0
	StageAssemble Stage = 1
	StageFilter   Stage = 2
	StageEvaluate Stage = 3
)

func (s Stage) String() string {
	names := [...]string{
		"generate",
		"assemble",
		"filter",
		"evaluate",
	}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// StageResult records how many candidates a stage passed on.
type StageResult struct {
	Stage      Stage
	Candidates int
}

// Result is the output of a full pipeline run.
type Result struct {
	Params  seating.Params
	Results *seating.ResultSet
	Stages  []StageResult
}

// ProgressEvent is emitted while the pipeline runs.
type ProgressEvent struct {
	Stage   Stage
	Section string
	Status  ProgressStatus
	Message string
}

// ProgressStatus is the state of a stage or of one evaluation chunk.
type ProgressStatus string

const (
	ProgressPending  ProgressStatus = "pending"
	ProgressWorking  ProgressStatus = "working"
	ProgressComplete ProgressStatus = "complete"
	ProgressFailed   ProgressStatus = "failed"
)
