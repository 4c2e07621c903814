package visit

import "iter"

// Filtered is a zero-copy view of a base graph narrowed by a NodeFilter.
//
// The view satisfies the full Graph contract, so it can stand in for its
// base anywhere — including as the base of another Filtered view. It owns
// no node or edge storage and must not outlive the base graph.
//
// Visibility rules:
//   - NodeIdentifiers yields exactly the base nodes passing the filter,
//     in base order.
//   - Neighbors and NeighborsDirected yield an empty sequence when the
//     source node itself fails the filter — an excluded node contributes
//     no edges even though it remains nameable. Otherwise they yield the
//     base sequence with excluded targets removed, in base order.
//   - NodeBound, NodeIndex, NodeFromIndex, IsDirected, and NewVisitMap
//     delegate to the base unchanged: filtering narrows visibility, not
//     the index space or directedness.
//
// Extra memory is O(1) beyond the filter itself; each neighbor call costs
// time proportional to the base's unfiltered degree.
type Filtered[N comparable] struct {
	// G is the wrapped base graph.
	G Graph[N]

	// F decides node inclusion.
	F NodeFilter[N]
}

// NewFiltered returns a view of base narrowed by filter.
func NewFiltered[N comparable](base Graph[N], filter NodeFilter[N]) Filtered[N] {
	return Filtered[N]{G: base, F: filter}
}

// IsDirected reports the base graph's directedness.
func (f Filtered[N]) IsDirected() bool { return f.G.IsDirected() }

// NodeBound reports the base graph's index bound.
func (f Filtered[N]) NodeBound() int { return f.G.NodeBound() }

// NodeIndex reports the base graph's dense index for n.
func (f Filtered[N]) NodeIndex(n N) int { return f.G.NodeIndex(n) }

// NodeFromIndex reports the base graph's node with dense index i.
func (f Filtered[N]) NodeFromIndex(i int) N { return f.G.NodeFromIndex(i) }

// NewVisitMap returns a fresh visit map sized to the base graph.
func (f Filtered[N]) NewVisitMap() VisitMap[N] { return f.G.NewVisitMap() }

// NodeIdentifiers yields the base identifiers passing the filter, in base order.
func (f Filtered[N]) NodeIdentifiers() iter.Seq[N] {
	return FilteredNodes(true, f.G.NodeIdentifiers(), f.F)
}

// Neighbors yields the filtered neighbor sequence of n. If n itself fails
// the filter the sequence is empty.
func (f Filtered[N]) Neighbors(n N) iter.Seq[N] {
	return FilteredNodes(f.F.IncludeNode(n), f.G.Neighbors(n), f.F)
}

// NeighborsDirected yields the filtered, direction-qualified neighbor
// sequence of n. If n itself fails the filter the sequence is empty.
func (f Filtered[N]) NeighborsDirected(n N, dir Direction) iter.Seq[N] {
	return FilteredNodes(f.F.IncludeNode(n), f.G.NeighborsDirected(n, dir), f.F)
}

// FilteredNodes is the lazy producer behind every Filtered sequence: it
// yields the elements of src passing filter, in src order. When
// includeSource is false the sequence is empty and src is never consumed —
// the source-suppression rule for neighbors of an excluded node.
//
// The result is as restartable as src: each range re-runs the filter.
func FilteredNodes[N comparable](includeSource bool, src iter.Seq[N], filter NodeFilter[N]) iter.Seq[N] {
	return func(yield func(N) bool) {
		if !includeSource {
			return
		}
		for n := range src {
			if !filter.IncludeNode(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}
