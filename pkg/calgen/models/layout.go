package models

// IntSet is a small set of row or column indices. The zero value is an
// empty set; Has is safe on a nil set.
type IntSet map[int]struct{}

// NewIntSet builds a set from the given indices.
func NewIntSet(vals ...int) IntSet {
	s := make(IntSet, len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is in the set.
func (s IntSet) Has(v int) bool {
	_, ok := s[v]
	return ok
}

// Add inserts v into the set.
func (s IntSet) Add(v int) {
	s[v] = struct{}{}
}
