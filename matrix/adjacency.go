package matrix

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/qoqosz/petgraph/visit"
)

// AdjacencyMatrix is a precomputed O(1) adjacency oracle: one flat bitset
// holding bound×bound entries over the dense index space of the graph it
// was built from. Entry (i, j) is true iff the graph reported a directed
// edge i→j during the build sweep. No symmetric closure is applied —
// undirected graphs come out symmetric only because their neighbor
// sequences already are.
//
// The matrix is immutable after construction and safe for concurrent
// readers. Mutating the source graph afterwards leaves the matrix stale;
// rebuilding is the caller's responsibility.
type AdjacencyMatrix[N comparable] struct {
	bits  *bitset.BitSet
	bound int
	ix    visit.NodeIndexable[N]
}

// NewAdjacencyMatrix sweeps g once — every node from NodeIdentifiers,
// every target from Neighbors — and packs each reported edge into the bit
// matrix.
//
// Errors: ErrNilGraph for nil input; ErrCapacityExceeded when bound² is
// not addressable; ErrInvalidNode (wrapped with the offending node) when
// the index bijection leaves [0, bound) during the sweep.
//
// Complexity: O(bound²/64) to allocate, O(V+E) to fill.
func NewAdjacencyMatrix[N comparable](g visit.IndexedGraph[N]) (*AdjacencyMatrix[N], error) {
	// 1. Validate the input graph and its index space.
	if g == nil {
		return nil, ErrNilGraph
	}
	bound := g.NodeBound()
	if bound < 0 || (bound > 0 && bound > math.MaxInt/bound) {
		return nil, fmt.Errorf("matrix: node bound %d: %w", bound, ErrCapacityExceeded)
	}

	// 2. Allocate the flat bound×bound bitset.
	m := &AdjacencyMatrix[N]{
		bits:  bitset.New(uint(bound * bound)),
		bound: bound,
		ix:    g,
	}

	// 3. Sweep every edge the graph reports, validating indices as we go.
	for u := range g.NodeIdentifiers() {
		i, err := m.indexOf(u)
		if err != nil {
			return nil, err
		}
		for v := range g.Neighbors(u) {
			j, err := m.indexOf(v)
			if err != nil {
				return nil, err
			}
			m.bits.Set(uint(i*bound + j))
		}
	}

	return m, nil
}

// NodeBound returns the exclusive upper bound of the index space the
// matrix was built over.
func (m *AdjacencyMatrix[N]) NodeBound() int {
	return m.bound
}

// AdjacentIndex reports the bit (i, j): a directed edge i→j. Out-of-range
// indices answer false — this is the unchecked hot-path query; use
// IsAdjacent for validated lookups.
// Complexity: O(1).
func (m *AdjacencyMatrix[N]) AdjacentIndex(i, j int) bool {
	if i < 0 || j < 0 || i >= m.bound || j >= m.bound {
		return false
	}

	return m.bits.Test(uint(i*m.bound + j))
}

// MutualIndex reports whether edges run in both directions between i and j
// — the clique-adjacency rule in index space. Out-of-range indices answer
// false.
// Complexity: O(1).
func (m *AdjacencyMatrix[N]) MutualIndex(i, j int) bool {
	return m.AdjacentIndex(i, j) && m.AdjacentIndex(j, i)
}

// IsAdjacent reports whether the directed edge u→v exists.
// Returns ErrInvalidNode if either node is outside the index space.
func (m *AdjacencyMatrix[N]) IsAdjacent(u, v N) (bool, error) {
	i, err := m.indexOf(u)
	if err != nil {
		return false, err
	}
	j, err := m.indexOf(v)
	if err != nil {
		return false, err
	}

	return m.bits.Test(uint(i*m.bound + j)), nil
}

// IsMutual reports whether edges run in both directions between u and v.
// For undirected graphs this coincides with IsAdjacent; for directed
// graphs it is the clique-adjacency test.
// Returns ErrInvalidNode if either node is outside the index space.
func (m *AdjacencyMatrix[N]) IsMutual(u, v N) (bool, error) {
	forward, err := m.IsAdjacent(u, v)
	if err != nil || !forward {
		return false, err
	}

	return m.IsAdjacent(v, u)
}

// indexOf resolves n through the bijection, rejecting anything outside
// [0, bound).
func (m *AdjacencyMatrix[N]) indexOf(n N) (int, error) {
	i := m.ix.NodeIndex(n)
	if i < 0 || i >= m.bound {
		return -1, fmt.Errorf("matrix: node %v maps to index %d outside [0, %d): %w", n, i, m.bound, ErrInvalidNode)
	}

	return i, nil
}
