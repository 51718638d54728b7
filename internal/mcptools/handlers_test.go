package mcptools

import (
	"context"
	"testing"

	"github.com/dusk-indust/seatperm/internal/pipeline"
	"github.com/dusk-indust/seatperm/internal/seating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, maxSeats int) *SeatingService {
	t.Helper()
	p := pipeline.NewPipeline(pipeline.Config{}, nil)
	t.Cleanup(p.Close)
	return NewSeatingService(p, maxSeats)
}

func TestSeatingService_FindSafeArrangements_AtMost(t *testing.T) {
	svc := newService(t, 0)

	_, out, err := svc.FindSafeArrangements(context.Background(), nil, FindSafeArrangementsInput{
		Seats: 4, StartingMatches: 2, Threshold: 2, Policy: "at-most",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, [][]int{{1, 2, 4, 3}}, out.Arrangements)
	assert.Equal(t, "at-most", out.Policy)
}

func TestSeatingService_FindSafeArrangements_Empty(t *testing.T) {
	svc := newService(t, 0)

	_, out, err := svc.FindSafeArrangements(context.Background(), nil, FindSafeArrangementsInput{
		Seats: 3, Threshold: 0,
	})
	require.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.NotNil(t, out.Arrangements)
	assert.Empty(t, out.Arrangements)
}

func TestSeatingService_FindSafeArrangements_Errors(t *testing.T) {
	svc := newService(t, 8)
	ctx := context.Background()

	_, _, err := svc.FindSafeArrangements(ctx, nil, FindSafeArrangementsInput{Seats: 9})
	require.ErrorIs(t, err, seating.ErrInvalidInput)
	assert.Contains(t, err.Error(), "exceeds the limit of 8")

	_, _, err = svc.FindSafeArrangements(ctx, nil, FindSafeArrangementsInput{Seats: 4, Policy: "never"})
	require.ErrorIs(t, err, seating.ErrInvalidInput)

	_, _, err = svc.FindSafeArrangements(ctx, nil, FindSafeArrangementsInput{Seats: 4, StartingMatches: 5})
	require.ErrorIs(t, err, seating.ErrInvalidInput)

	_, _, err = svc.FindSafeArrangements(ctx, nil, FindSafeArrangementsInput{Seats: 4, Threshold: -1})
	require.ErrorIs(t, err, seating.ErrInvalidInput)
}

func TestSeatingService_RotationProfile_Invalid(t *testing.T) {
	svc := newService(t, 0)

	_, _, err := svc.RotationProfile(context.Background(), nil, RotationProfileInput{Arrangement: []int{1, 1, 3}})
	require.ErrorIs(t, err, seating.ErrInvalidInput)
}

func TestSeatingService_RotationProfile_Identity(t *testing.T) {
	svc := newService(t, 0)

	_, out, err := svc.RotationProfile(context.Background(), nil, RotationProfileInput{Arrangement: []int{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 0}, out.Counts)
	assert.Equal(t, 3, out.Peak)
	assert.Equal(t, 3, out.Matches)
}
