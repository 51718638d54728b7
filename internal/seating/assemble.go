package seating

import "fmt"

// Assemble places the fixed run 1..s in seats 1..s followed by the free
// ordering, producing an arrangement of length n.
func Assemble(free []int, n, s int) (Arrangement, error) {
	if s < 0 || s > n {
		return nil, fmt.Errorf("%w: %d fixed seats out of %d", ErrInvalidInput, s, n)
	}
	if len(free) != n-s {
		return nil, fmt.Errorf("assemble: free ordering has %d values, want %d", len(free), n-s)
	}

	a := make(Arrangement, n)
	for i := 0; i < s; i++ {
		a[i] = i + 1
	}
	copy(a[s:], free)
	return a, nil
}

// AssembleAll assembles every free ordering in perms. Each perms[i] is set to
// nil once consumed so the orderings and the arrangements are never both
// fully resident.
func AssembleAll(perms [][]int, n, s int) ([]Arrangement, error) {
	candidates := make([]Arrangement, 0, len(perms))
	for i, free := range perms {
		a, err := Assemble(free, n, s)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, a)
		perms[i] = nil
	}
	return candidates, nil
}
