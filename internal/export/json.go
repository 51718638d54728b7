package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dusk-indust/seatperm/internal/pipeline"
	"github.com/dusk-indust/seatperm/internal/seating"
)

// Report is the top-level JSON export structure for one search.
type Report struct {
	Seats           int            `json:"seats"`
	StartingMatches int            `json:"startingMatches"`
	Threshold       int            `json:"threshold"`
	Policy          seating.Policy `json:"policy"`
	Identity        []int          `json:"identity"`
	Total           int            `json:"total"`
	Shown           int            `json:"shown"`
	Arrangements    [][]int        `json:"arrangements"`
	Stages          []StageExport  `json:"stages,omitempty"`
	GeneratedAt     string         `json:"generatedAt"`
}

// StageExport describes how many candidates one pipeline stage passed on.
type StageExport struct {
	Stage      int    `json:"stage"`
	Name       string `json:"name"`
	Candidates int    `json:"candidates"`
}

// NewReport builds a Report holding at most limit arrangements.
func NewReport(res *pipeline.Result, limit int) *Report {
	shown := res.Results.First(limit)

	r := &Report{
		Seats:           res.Params.Seats,
		StartingMatches: res.Params.StartingMatches,
		Threshold:       res.Params.Threshold,
		Policy:          res.Params.Policy,
		Identity:        res.Results.Identity(),
		Total:           res.Results.Len(),
		Shown:           len(shown),
		Arrangements:    make([][]int, len(shown)),
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	for i, a := range shown {
		r.Arrangements[i] = a
	}
	for _, s := range res.Stages {
		r.Stages = append(r.Stages, StageExport{
			Stage:      int(s.Stage),
			Name:       s.Stage.String(),
			Candidates: s.Candidates,
		})
	}
	return r
}

// WriteJSON writes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r *Report) error {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
