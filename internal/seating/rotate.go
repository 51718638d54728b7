package seating

// Rotate returns a new arrangement with the last j elements of a moved to the
// front. j is taken modulo len(a); rotation 0 is a copy of a.
func Rotate(a Arrangement, j int) Arrangement {
	n := len(a)
	out := make(Arrangement, n)
	if n == 0 {
		return out
	}
	j = ((j % n) + n) % n
	copy(out, a[n-j:])
	copy(out[j:], a[:n-j])
	return out
}

// RotationProfile holds the match count of every rotation of an arrangement,
// indexed by rotation, and the largest of them.
type RotationProfile struct {
	Counts []int
	Peak   int
}

// Profile computes the match count against identity for each of the len(a)
// rotations of a.
func Profile(a, identity Arrangement) RotationProfile {
	p := RotationProfile{Counts: make([]int, len(a))}
	for j := range a {
		c := rotationMatches(a, identity, j)
		p.Counts[j] = c
		p.Peak = max(p.Peak, c)
	}
	return p
}

// IsSafe reports whether every rotation of a satisfies policy against
// threshold t. An empty arrangement has no rotations and is always safe.
func IsSafe(a, identity Arrangement, t int, policy Policy) bool {
	for j := range a {
		if !policy.Accepts(rotationMatches(a, identity, j), t) {
			return false
		}
	}
	return true
}

// rotationMatches counts matches of Rotate(a, j) without building it:
// seat k of the rotation holds a[(k-j) mod n].
func rotationMatches(a, identity Arrangement, j int) int {
	n := len(a)
	matches := 0
	for k := 0; k < n && k < len(identity); k++ {
		if a[(k-j+n)%n] == identity[k] {
			matches++
		}
	}
	return matches
}
