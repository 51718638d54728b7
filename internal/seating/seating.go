// Package seating enumerates circular seating arrangements that stay below a
// match threshold under every rotation of the table.
//
// Seats are numbered 1..n. The identity placement puts person i in seat i. A
// candidate arrangement fixes the first s seats to 1..s, permutes the rest,
// and is kept when its own match count is exactly s and every cyclic rotation
// satisfies the configured threshold policy.
package seating

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when seat count, starting match count or
// threshold fall outside their domain. It is always reported before any
// enumeration work starts.
var ErrInvalidInput = errors.New("invalid input")

// Arrangement is a seating: the value at index i is the person sitting in
// seat i+1.
type Arrangement []int

// Identity returns the placement 1..n.
func Identity(n int) Arrangement {
	id := make(Arrangement, n)
	for i := range id {
		id[i] = i + 1
	}
	return id
}

// Clone returns a copy that shares no storage with a.
func (a Arrangement) Clone() Arrangement {
	out := make(Arrangement, len(a))
	copy(out, a)
	return out
}

// Equal reports whether a and b hold the same values in the same order.
func (a Arrangement) Equal(b Arrangement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the arrangement as "[1, 3, 2]".
func (a Arrangement) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
