package clique

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/qoqosz/petgraph/matrix"
	"github.com/qoqosz/petgraph/visit"
)

// MaximalCliques returns every maximal clique of g: each inclusion-maximal
// set of nodes in which every pair is mutually adjacent. On directed
// graphs two nodes count as adjacent only when edges run in BOTH
// directions; on undirected graphs the rule degenerates to plain
// adjacency. A node with no mutual edge forms its own singleton clique,
// and the empty graph yields exactly one clique, the empty set.
//
// Every clique lists its nodes in ascending dense-index order and the
// cliques are sorted lexicographically by index sequence, so identical
// graphs produce identical results regardless of engine or worker count.
//
// The adjacency oracle is built internally; matrix errors surface wrapped.
// Returns ErrNilGraph for nil input and ErrOptionViolation for invalid
// options.
//
// Complexity: worst-case exponential — a graph on n nodes can hold up to
// 3^(n/3) maximal cliques — with O(1) adjacency tests via the oracle.
func MaximalCliques[N comparable](g visit.IndexedGraph[N], opts ...Option) ([][]N, error) {
	e, err := newEngine(g, opts...)
	if err != nil {
		return nil, err
	}

	var cliques [][]int
	e.emit = func(c []int) error {
		cliques = append(cliques, c)

		return nil
	}
	if err = e.enumerate(); err != nil {
		return nil, err
	}

	slices.SortFunc(cliques, slices.Compare)

	out := make([][]N, len(cliques))
	for i, c := range cliques {
		out[i] = fromIndexes(g, c)
	}

	return out, nil
}

// EachMaximalClique streams every maximal clique of g to fn, nodes in
// ascending dense-index order, cliques in traversal order. An error from
// fn aborts the enumeration and is returned wrapped. fn is never called
// concurrently: with WithWorkers the branches are collected first and fn
// receives the merged stream from the calling goroutine.
func EachMaximalClique[N comparable](g visit.IndexedGraph[N], fn func(clique []N) error, opts ...Option) error {
	if fn == nil {
		return fmt.Errorf("%w: nil clique callback", ErrOptionViolation)
	}
	e, err := newEngine(g, opts...)
	if err != nil {
		return err
	}

	e.emit = func(c []int) error {
		if err := fn(fromIndexes(g, c)); err != nil {
			return fmt.Errorf("clique: callback: %w", err)
		}

		return nil
	}

	return e.enumerate()
}

// fromIndexes maps a sorted index slice back to node identifiers.
func fromIndexes[N comparable](g visit.IndexedGraph[N], c []int) []N {
	nodes := make([]N, len(c))
	for i, idx := range c {
		nodes[i] = g.NodeFromIndex(idx)
	}

	return nodes
}

// engine holds everything one enumeration shares: the search options, the
// dense index bound, the set of present node indices, the per-node
// mutual-adjacency masks, and the emission sink. All of it is read-only
// once the search starts — the mutable (R, P, X) state lives on the call
// stack (or the explicit frame stack) of each run.
type engine struct {
	opts  Options
	bound int
	nodes *bitset.BitSet
	masks []*bitset.BitSet
	emit  func(c []int) error
}

// newEngine validates input and precomputes the shared search state.
func newEngine[N comparable](g visit.IndexedGraph[N], opts ...Option) (*engine, error) {
	// 1. Validate graph and options.
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Build the O(1) adjacency oracle.
	am, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		return nil, fmt.Errorf("clique: build adjacency oracle: %w", err)
	}

	// 3. Record which indices are present. For a filtered view this is a
	//    strict subset of [0, bound); hidden nodes never enter P.
	bound := am.NodeBound()
	nodes := bitset.New(uint(bound))
	for n := range g.NodeIdentifiers() {
		// Index validity was proven by the oracle build sweep.
		nodes.Set(uint(g.NodeIndex(n)))
	}

	// 4. Derive one mutual-adjacency mask per index: bit j is set iff
	//    edges run in both directions between i and j. The diagonal stays
	//    clear — a self-loop never extends a clique.
	masks := make([]*bitset.BitSet, bound)
	for i := 0; i < bound; i++ {
		mask := bitset.New(uint(bound))
		for j := 0; j < bound; j++ {
			if i != j && am.MutualIndex(i, j) {
				mask.Set(uint(j))
			}
		}
		masks[i] = mask
	}

	return &engine{opts: o, bound: bound, nodes: nodes, masks: masks}, nil
}

// enumerate runs the configured engine over the whole graph:
// R = ∅, P = all present nodes, X = ∅.
func (e *engine) enumerate() error {
	if e.opts.Workers > 1 {
		return e.parallel()
	}

	return e.search(make([]int, 0, e.bound), e.nodes.Clone(), bitset.New(uint(e.bound)))
}

// search explores one (R, P, X) triple with the configured control
// mechanism.
func (e *engine) search(r []int, p, x *bitset.BitSet) error {
	if e.opts.Iterative {
		return e.iterative(r, p, x)
	}

	return e.extend(r, p, x)
}

// extend is the recursive engine. R holds the committed members of the
// clique under construction, P the candidates that could still extend it,
// X the nodes already explored at an earlier branch whose maximal cliques
// are all known. The three sets stay disjoint; P strictly shrinks at each
// branch, which bounds the recursion.
func (e *engine) extend(r []int, p, x *bitset.BitSet) error {
	// 1. Cancellation check at the branch boundary.
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	// 2. No candidate can extend R and nothing explored before contains
	//    it: R is maximal.
	if p.None() && x.None() {
		return e.report(r)
	}

	// 3. Branch candidates: all of P, or P \ N(pivot) under pruning —
	//    skipping the pivot's neighborhood loses no maximal clique.
	cand := p.Clone()
	if e.opts.Pivot {
		cand.InPlaceDifference(e.masks[e.pivot(p, x)])
	}

	// 4. Branch on each candidate in ascending index order. Afterwards v
	//    moves from P to X, so later branches at this level treat it as
	//    explored — the mechanism that keeps every maximal clique unique.
	for v, ok := cand.NextSet(0); ok; v, ok = cand.NextSet(v + 1) {
		nv := e.masks[v]
		if err := e.extend(append(r, int(v)), p.Intersection(nv), x.Intersection(nv)); err != nil {
			return err
		}
		p.Clear(v)
		x.Set(v)
	}

	return nil
}

// pivot picks the member of P ∪ X whose mutual neighborhood covers the
// most of P, smallest index winning ties. Never called with both sets
// empty.
func (e *engine) pivot(p, x *bitset.BitSet) int {
	var (
		best      uint
		bestCover = -1
	)
	union := p.Union(x)
	for u, ok := union.NextSet(0); ok; u, ok = union.NextSet(u + 1) {
		if cover := int(p.IntersectionCardinality(e.masks[u])); cover > bestCover {
			best, bestCover = u, cover
		}
	}

	return int(best)
}

// report hands a sorted copy of R to the emission sink.
func (e *engine) report(r []int) error {
	c := make([]int, len(r))
	copy(c, r)
	slices.Sort(c)

	return e.emit(c)
}
