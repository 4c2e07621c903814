package visit

import "iter"

// Direction qualifies directed neighbor queries.
type Direction uint8

const (
	// Outgoing selects successors: nodes v with an edge n→v.
	Outgoing Direction = iota

	// Incoming selects predecessors: nodes v with an edge v→n.
	Incoming
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Outgoing {
		return Incoming
	}

	return Outgoing
}

// String returns "outgoing" or "incoming".
func (d Direction) String() string {
	if d == Outgoing {
		return "outgoing"
	}

	return "incoming"
}

// GraphProp reports structural properties of a graph.
type GraphProp interface {
	// IsDirected reports whether edges are one-way.
	IsDirected() bool
}

// NodeIdentifiers lists every current node identifier.
// The sequence is finite, restartable, and must enumerate each node once.
type NodeIdentifiers[N comparable] interface {
	NodeIdentifiers() iter.Seq[N]
}

// Neighbors lists the nodes directly reachable from n: successors on a
// directed graph, all incident nodes on an undirected graph. An identifier
// outside the graph yields an empty sequence.
type Neighbors[N comparable] interface {
	Neighbors(n N) iter.Seq[N]
}

// NeighborsDirected is the direction-qualified neighbor listing. Undirected
// graphs return the same incident set for either direction.
type NeighborsDirected[N comparable] interface {
	NeighborsDirected(n N, dir Direction) iter.Seq[N]
}

// NodeIndexable maps node identifiers to a dense index range, enabling
// array- and bit-addressed bookkeeping.
//
// The mapping must be a bijection between the graph's nodes and
// [0, NodeBound()). NodeIndex reports an identifier outside the graph with
// a negative index; callers needing a hard failure get one from the oracle
// boundary (matrix.ErrInvalidNode).
type NodeIndexable[N comparable] interface {
	// NodeBound returns the exclusive upper bound of the index space.
	NodeBound() int

	// NodeIndex returns the dense index of n, negative if n is not a node.
	NodeIndex(n N) int

	// NodeFromIndex returns the node with dense index i, 0 ≤ i < NodeBound().
	NodeFromIndex(i int) N
}

// Visitable produces fresh membership sets sized to the graph, for
// visited-node bookkeeping by traversal algorithms.
type Visitable[N comparable] interface {
	NewVisitMap() VisitMap[N]
}

// VisitMap is a mutable membership set over node identifiers.
type VisitMap[N comparable] interface {
	// Visit records n and reports whether it was newly recorded.
	Visit(n N) bool

	// IsVisited reports whether n has been recorded.
	IsVisited(n N) bool
}

// Graph is the full capability contract: the one interface every
// representation in this module satisfies, Filtered views included.
type Graph[N comparable] interface {
	GraphProp
	NodeIdentifiers[N]
	Neighbors[N]
	NeighborsDirected[N]
	NodeIndexable[N]
	Visitable[N]
}

// IndexedGraph is the minimal bound for index-addressed algorithms such as
// the adjacency oracle and the clique enumerator.
type IndexedGraph[N comparable] interface {
	NodeIdentifiers[N]
	Neighbors[N]
	NodeIndexable[N]
}
