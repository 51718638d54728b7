package seating

// ResultSet collects accepted arrangements in generation order.
type ResultSet struct {
	identity     Arrangement
	arrangements []Arrangement
}

// NewResultSet creates an empty result set for the given identity placement.
func NewResultSet(identity Arrangement) *ResultSet {
	return &ResultSet{identity: identity.Clone()}
}

// Add appends a copy of a.
func (r *ResultSet) Add(a Arrangement) {
	r.arrangements = append(r.arrangements, a.Clone())
}

// Identity returns the reference placement the results were checked against.
func (r *ResultSet) Identity() Arrangement {
	return r.identity.Clone()
}

// Len returns the number of accepted arrangements.
func (r *ResultSet) Len() int {
	return len(r.arrangements)
}

// All returns every accepted arrangement in generation order.
func (r *ResultSet) All() []Arrangement {
	return r.First(len(r.arrangements))
}

// First returns up to k arrangements. k is clamped to [0, Len()], so asking
// for more than are available returns all of them.
func (r *ResultSet) First(k int) []Arrangement {
	k = max(0, min(k, len(r.arrangements)))
	out := make([]Arrangement, k)
	for i := 0; i < k; i++ {
		out[i] = r.arrangements[i].Clone()
	}
	return out
}
