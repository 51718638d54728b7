package seating

import (
	"fmt"
	"strings"
)

// Policy decides whether a rotation's match count is below the funding
// threshold.
type Policy int

const (
	// PolicyUnknown is the zero value; it accepts nothing.
	PolicyUnknown Policy = iota

	// StrictBelow accepts a count only when it is less than the threshold.
	StrictBelow

	// AtMost accepts a count when it does not exceed the threshold.
	AtMost
)

func (p Policy) String() string {
	switch p {
	case StrictBelow:
		return "strict-below"
	case AtMost:
		return "at-most"
	default:
		return "unknown"
	}
}

// Accepts reports whether count is safe against threshold t.
func (p Policy) Accepts(count, t int) bool {
	switch p {
	case StrictBelow:
		return count < t
	case AtMost:
		return count <= t
	default:
		return false
	}
}

// Describe returns the phrase used when printing results, e.g.
// "less than 2 matches".
func (p Policy) Describe(t int) string {
	switch p {
	case StrictBelow:
		return fmt.Sprintf("less than %d matches", t)
	case AtMost:
		return fmt.Sprintf("at most %d matches", t)
	default:
		return fmt.Sprintf("an unknown bound of %d matches", t)
	}
}

// ParsePolicy maps a policy name to a Policy. Besides the canonical names it
// accepts "strict", "<", "inclusive" and "<=".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict-below", "strict", "<":
		return StrictBelow, nil
	case "at-most", "inclusive", "<=":
		return AtMost, nil
	default:
		return PolicyUnknown, fmt.Errorf("%w: unknown policy %q (want strict-below or at-most)", ErrInvalidInput, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if p != StrictBelow && p != AtMost {
		return nil, fmt.Errorf("%w: cannot encode policy %d", ErrInvalidInput, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
