package seating

// MatchCount returns the number of positions where a and identity agree.
// Positions past the shorter of the two are ignored.
func MatchCount(a, identity Arrangement) int {
	n := min(len(a), len(identity))
	matches := 0
	for i := 0; i < n; i++ {
		if a[i] == identity[i] {
			matches++
		}
	}
	return matches
}

// HasExactMatches reports whether a matches identity in exactly s positions.
// Arrangements whose free seats reproduce extra identity positions are
// rejected.
func HasExactMatches(a, identity Arrangement, s int) bool {
	return MatchCount(a, identity) == s
}
