package seating

import "fmt"

// Permutations returns every ordering of the free seat values {s+1..n} in
// lexicographic order. When s == n a single empty ordering is returned.
//
// Each ordering is an independent slice; callers may keep or modify them.
func Permutations(n, s int) ([][]int, error) {
	if n < 0 || s < 0 || s > n {
		return nil, fmt.Errorf("%w: permutations of seats %d with %d fixed", ErrInvalidInput, n, s)
	}

	free := make([]int, n-s)
	for i := range free {
		free[i] = s + 1 + i
	}

	perms := make([][]int, 0, factorial(len(free)))
	used := make([]bool, len(free))
	current := make([]int, 0, len(free))
	permute(free, used, current, &perms)
	return perms, nil
}

// permute extends current with each unused value in ascending order, which
// yields lexicographic output for a sorted values slice.
func permute(values []int, used []bool, current []int, perms *[][]int) {
	if len(current) == len(values) {
		perm := make([]int, len(current))
		copy(perm, current)
		*perms = append(*perms, perm)
		return
	}

	for i, v := range values {
		if used[i] {
			continue
		}
		used[i] = true
		permute(values, used, append(current, v), perms)
		used[i] = false
	}
}

// factorial is only used as a capacity hint; it saturates rather than overflow.
func factorial(k int) int {
	const capLimit = 1 << 24
	f := 1
	for i := 2; i <= k; i++ {
		f *= i
		if f > capLimit {
			return capLimit
		}
	}
	return f
}
