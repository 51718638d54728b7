package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"valid", Params{Seats: 7, StartingMatches: 1, Threshold: 2, Policy: StrictBelow}, false},
		{"zero seats", Params{Policy: AtMost}, false},
		{"negative seats", Params{Seats: -1, Policy: AtMost}, true},
		{"starting above seats", Params{Seats: 3, StartingMatches: 4, Policy: AtMost}, true},
		{"negative starting", Params{Seats: 3, StartingMatches: -1, Policy: AtMost}, true},
		{"negative threshold", Params{Seats: 3, Threshold: -1, Policy: AtMost}, true},
		{"missing policy", Params{Seats: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFindSafeArrangements_InvalidInput(t *testing.T) {
	res, err := FindSafeArrangements(Params{Seats: 3, StartingMatches: 5, Policy: StrictBelow})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, res)
}

func TestFindSafeArrangements_SevenSeatsOneStartingMatch(t *testing.T) {
	res, err := FindSafeArrangements(Params{Seats: 7, StartingMatches: 1, Threshold: 2, Policy: StrictBelow})
	require.NoError(t, err)

	// Each rotation count must be at most 1 and the counts sum to 7, so every
	// rotation matches exactly once: 133 cyclic transversals / 7 rotations.
	require.Equal(t, 19, res.Len())

	id := Identity(7)
	for _, a := range res.All() {
		assert.Equal(t, 1, a[0])
		assert.Equal(t, 1, MatchCount(a, id))
		for j := range a {
			c := MatchCount(Rotate(a, j), id)
			assert.Contains(t, []int{0, 1}, c, "arrangement %v rotation %d", a, j)
		}
	}
	assert.Contains(t, res.All(), Arrangement{1, 3, 5, 7, 2, 4, 6})
}

func TestFindSafeArrangements_ThresholdAtStartingMatchesIsEmpty(t *testing.T) {
	// Rotation 0 always has exactly s matches, so strict-below with t == s
	// can never accept anything.
	for _, seats := range []int{5, 7} {
		res, err := FindSafeArrangements(Params{Seats: seats, StartingMatches: 1, Threshold: 1, Policy: StrictBelow})
		require.NoError(t, err)
		assert.Zero(t, res.Len(), "seats=%d", seats)
	}
}

func TestFindSafeArrangements_StrictBelowIsAtMostMinusOne(t *testing.T) {
	strict, err := FindSafeArrangements(Params{Seats: 7, StartingMatches: 1, Threshold: 2, Policy: StrictBelow})
	require.NoError(t, err)

	inclusive, err := FindSafeArrangements(Params{Seats: 7, StartingMatches: 1, Threshold: 1, Policy: AtMost})
	require.NoError(t, err)
	require.Equal(t, 19, inclusive.Len())
	assert.Equal(t, strict.All(), inclusive.All())
}

func TestFindSafeArrangements_FiveSeatsExactResult(t *testing.T) {
	res, err := FindSafeArrangements(Params{Seats: 5, StartingMatches: 1, Threshold: 2, Policy: StrictBelow})
	require.NoError(t, err)

	expected := []Arrangement{
		{1, 3, 5, 2, 4},
		{1, 4, 2, 5, 3},
		{1, 5, 4, 3, 2},
	}
	assert.Equal(t, expected, res.All())
}

func TestFindSafeArrangements_EmptyResult(t *testing.T) {
	res, err := FindSafeArrangements(Params{Seats: 3, StartingMatches: 0, Threshold: 0, Policy: StrictBelow})
	require.NoError(t, err)
	assert.Zero(t, res.Len())
	assert.Empty(t, res.All())
	assert.Equal(t, Identity(3), res.Identity())
}

func TestFindSafeArrangements_InclusiveThreshold(t *testing.T) {
	res, err := FindSafeArrangements(Params{Seats: 4, StartingMatches: 2, Threshold: 2, Policy: AtMost})
	require.NoError(t, err)
	require.Equal(t, []Arrangement{{1, 2, 4, 3}}, res.All())
	assert.Equal(t, 2, Profile(res.All()[0], Identity(4)).Peak)

	res, err = FindSafeArrangements(Params{Seats: 4, StartingMatches: 2, Threshold: 2, Policy: StrictBelow})
	require.NoError(t, err)
	assert.Zero(t, res.Len(), "a peak of exactly 2 is not strictly below 2")
}

func TestFindSafeArrangements_AllSeatsFixed(t *testing.T) {
	res, err := FindSafeArrangements(Params{Seats: 4, StartingMatches: 4, Threshold: 4, Policy: AtMost})
	require.NoError(t, err)
	assert.Equal(t, []Arrangement{Identity(4)}, res.All())

	res, err = FindSafeArrangements(Params{Seats: 4, StartingMatches: 4, Threshold: 4, Policy: StrictBelow})
	require.NoError(t, err)
	assert.Zero(t, res.Len())
}

func TestFindSafeArrangements_NoSeats(t *testing.T) {
	for _, policy := range []Policy{StrictBelow, AtMost} {
		res, err := FindSafeArrangements(Params{Policy: policy})
		require.NoError(t, err)
		require.Equal(t, 1, res.Len(), policy.String())
		assert.Empty(t, res.All()[0])
	}
}

func TestFindSafeArrangements_Deterministic(t *testing.T) {
	p := Params{Seats: 6, StartingMatches: 1, Threshold: 2, Policy: StrictBelow}

	first, err := FindSafeArrangements(p)
	require.NoError(t, err)
	second, err := FindSafeArrangements(p)
	require.NoError(t, err)

	assert.Equal(t, first.All(), second.All())
}

func TestFindSafeArrangements_SurvivorsHaveExactStartingMatches(t *testing.T) {
	p := Params{Seats: 6, StartingMatches: 2, Threshold: 6, Policy: AtMost}
	res, err := FindSafeArrangements(p)
	require.NoError(t, err)
	require.NotZero(t, res.Len())

	id := Identity(6)
	for _, a := range res.All() {
		assert.Equal(t, 2, MatchCount(a, id))
		assert.Equal(t, Arrangement{1, 2}, a[:2])
	}
}

func TestResultSet_First(t *testing.T) {
	r := NewResultSet(Identity(3))
	r.Add(Arrangement{1, 3, 2})
	r.Add(Arrangement{2, 1, 3})

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []Arrangement{{1, 3, 2}}, r.First(1))
	assert.Len(t, r.First(10), 2, "k is clamped to the available count")
	assert.Empty(t, r.First(0))
	assert.Empty(t, r.First(-3))

	got := r.First(1)
	got[0][0] = 9
	assert.Equal(t, Arrangement{1, 3, 2}, r.First(1)[0], "callers get copies")
}

func TestValidateArrangement(t *testing.T) {
	assert.NoError(t, ValidateArrangement(Arrangement{3, 1, 2}))
	assert.NoError(t, ValidateArrangement(nil))
	assert.ErrorIs(t, ValidateArrangement(Arrangement{1, 1, 2}), ErrInvalidInput)
	assert.ErrorIs(t, ValidateArrangement(Arrangement{0, 1, 2}), ErrInvalidInput)
	assert.ErrorIs(t, ValidateArrangement(Arrangement{1, 2, 4}), ErrInvalidInput)
}

func TestArrangement_String(t *testing.T) {
	assert.Equal(t, "[1, 3, 2]", Arrangement{1, 3, 2}.String())
	assert.Equal(t, "[]", Arrangement{}.String())
}
