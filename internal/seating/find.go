package seating

import "fmt"

// Params selects one enumeration run.
type Params struct {
	// Seats is the number of seats n around the table.
	Seats int

	// StartingMatches is the number s of leading seats forced to match.
	StartingMatches int

	// Threshold is the funding threshold t.
	Threshold int

	// Policy picks the comparison applied against Threshold.
	Policy Policy
}

// Validate checks the input domain: n >= 0, 0 <= s <= n, t >= 0 and a known
// policy.
func (p Params) Validate() error {
	if p.Seats < 0 {
		return fmt.Errorf("%w: seat count %d is negative", ErrInvalidInput, p.Seats)
	}
	if p.StartingMatches < 0 || p.StartingMatches > p.Seats {
		return fmt.Errorf("%w: starting matches %d not in [0, %d]", ErrInvalidInput, p.StartingMatches, p.Seats)
	}
	if p.Threshold < 0 {
		return fmt.Errorf("%w: threshold %d is negative", ErrInvalidInput, p.Threshold)
	}
	if p.Policy != StrictBelow && p.Policy != AtMost {
		return fmt.Errorf("%w: threshold policy must be set", ErrInvalidInput)
	}
	return nil
}

// FindSafeArrangements enumerates every arrangement that starts with exactly
// p.StartingMatches seats matching and stays safe under all rotations.
// Results are in generation order. No matching arrangement is not an error.
//
// The search is factorial in Seats - StartingMatches; callers bound Seats.
func FindSafeArrangements(p Params) (*ResultSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	identity := Identity(p.Seats)
	perms, err := Permutations(p.Seats, p.StartingMatches)
	if err != nil {
		return nil, err
	}

	candidates, err := AssembleAll(perms, p.Seats, p.StartingMatches)
	if err != nil {
		return nil, err
	}

	filtered := candidates[:0]
	for _, a := range candidates {
		if HasExactMatches(a, identity, p.StartingMatches) {
			filtered = append(filtered, a)
		}
	}

	results := NewResultSet(identity)
	for _, a := range filtered {
		if IsSafe(a, identity, p.Threshold, p.Policy) {
			results.Add(a)
		}
	}
	return results, nil
}

// ValidateArrangement checks that a holds each of 1..len(a) exactly once.
func ValidateArrangement(a Arrangement) error {
	seen := make([]bool, len(a)+1)
	for i, v := range a {
		if v < 1 || v > len(a) {
			return fmt.Errorf("%w: seat %d holds %d, want a value in [1, %d]", ErrInvalidInput, i+1, v, len(a))
		}
		if seen[v] {
			return fmt.Errorf("%w: value %d appears more than once", ErrInvalidInput, v)
		}
		seen[v] = true
	}
	return nil
}
