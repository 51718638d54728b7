package mcptools

import (
	"context"
	"fmt"

	"github.com/dusk-indust/seatperm/internal/pipeline"
	"github.com/dusk-indust/seatperm/internal/seating"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SeatingService handles MCP tool calls. Searches run through a shared
// Pipeline so they use the configured worker pool.
type SeatingService struct {
	pipeline *pipeline.Pipeline
	maxSeats int
}

// NewSeatingService creates a SeatingService. maxSeats bounds the seat count
// a caller may request; zero disables the bound.
func NewSeatingService(p *pipeline.Pipeline, maxSeats int) *SeatingService {
	return &SeatingService{
		pipeline: p,
		maxSeats: maxSeats,
	}
}

// FindSafeArrangements runs the seating search and returns the accepted
// arrangements, truncated to input.Limit when it is positive.
func (s *SeatingService) FindSafeArrangements(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindSafeArrangementsInput,
) (*mcp.CallToolResult, FindSafeArrangementsOutput, error) {
	if s.maxSeats > 0 && input.Seats > s.maxSeats {
		return nil, FindSafeArrangementsOutput{}, fmt.Errorf("%w: %d seats exceeds the limit of %d", seating.ErrInvalidInput, input.Seats, s.maxSeats)
	}

	policy := seating.StrictBelow
	if input.Policy != "" {
		var err error
		if policy, err = seating.ParsePolicy(input.Policy); err != nil {
			return nil, FindSafeArrangementsOutput{}, err
		}
	}

	res, err := s.pipeline.Run(ctx, seating.Params{
		Seats:           input.Seats,
		StartingMatches: input.StartingMatches,
		Threshold:       input.Threshold,
		Policy:          policy,
	})
	if err != nil {
		return nil, FindSafeArrangementsOutput{}, err
	}

	limit := res.Results.Len()
	if input.Limit > 0 {
		limit = input.Limit
	}
	shown := res.Results.First(limit)

	out := FindSafeArrangementsOutput{
		Identity:     res.Results.Identity(),
		Policy:       policy.String(),
		Total:        res.Results.Len(),
		Arrangements: make([][]int, len(shown)),
	}
	for i, a := range shown {
		out.Arrangements[i] = a
	}
	return nil, out, nil
}

// RotationProfile reports the match count of every rotation of an
// arrangement against the identity placement.
func (s *SeatingService) RotationProfile(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RotationProfileInput,
) (*mcp.CallToolResult, RotationProfileOutput, error) {
	a := seating.Arrangement(input.Arrangement)
	if err := seating.ValidateArrangement(a); err != nil {
		return nil, RotationProfileOutput{}, err
	}

	identity := seating.Identity(len(a))
	p := seating.Profile(a, identity)
	return nil, RotationProfileOutput{
		Counts:  p.Counts,
		Peak:    p.Peak,
		Matches: seating.MatchCount(a, identity),
	}, nil
}
