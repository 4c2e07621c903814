package visit

import "github.com/bits-and-blooms/bitset"

// IndexSet is a VisitMap backed by a dense bitset, addressed through a
// NodeIndexable bijection. One bit per index in [0, NodeBound()); membership
// tests and updates are O(1).
//
// Identifiers the bijection does not know (negative NodeIndex) are treated
// as unvisitable: Visit reports false and IsVisited reports false.
type IndexSet[N comparable] struct {
	bits *bitset.BitSet
	ix   NodeIndexable[N]
}

// NewIndexSet returns an empty IndexSet sized to ix.NodeBound().
func NewIndexSet[N comparable](ix NodeIndexable[N]) *IndexSet[N] {
	return &IndexSet[N]{
		bits: bitset.New(uint(ix.NodeBound())),
		ix:   ix,
	}
}

// Visit records n and reports whether it was newly recorded.
func (s *IndexSet[N]) Visit(n N) bool {
	i := s.ix.NodeIndex(n)
	if i < 0 {
		return false
	}
	if s.bits.Test(uint(i)) {
		return false
	}
	s.bits.Set(uint(i))

	return true
}

// IsVisited reports whether n has been recorded.
func (s *IndexSet[N]) IsVisited(n N) bool {
	i := s.ix.NodeIndex(n)

	return i >= 0 && s.bits.Test(uint(i))
}

// Count returns the number of recorded nodes.
func (s *IndexSet[N]) Count() int {
	return int(s.bits.Count())
}

// MapSet is a VisitMap backed by a hash set. The zero value is not usable;
// allocate with NewMapSet or make.
type MapSet[N comparable] map[N]struct{}

// NewMapSet returns an empty MapSet.
func NewMapSet[N comparable]() MapSet[N] {
	return make(MapSet[N])
}

// Visit records n and reports whether it was newly recorded.
func (s MapSet[N]) Visit(n N) bool {
	if _, ok := s[n]; ok {
		return false
	}
	s[n] = struct{}{}

	return true
}

// IsVisited reports whether n has been recorded.
func (s MapSet[N]) IsVisited(n N) bool {
	_, ok := s[n]

	return ok
}

// Count returns the number of recorded nodes.
func (s MapSet[N]) Count() int {
	return len(s)
}
