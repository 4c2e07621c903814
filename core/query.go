package core

import "github.com/qoqosz/petgraph/visit"

// IsDirected reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph) IsDirected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// NodeBound returns the exclusive upper bound of the dense index space.
// Equal to NodeCount, since identifiers are dense and never removed.
// Complexity: O(1).
func (g *Graph) NodeBound() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.succ)
}

// NodeIndex returns the dense index of n, or a negative value if n is not
// a node of this graph. The mapping is the identity on [0, NodeBound()).
// Complexity: O(1).
func (g *Graph) NodeIndex(n NodeID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(n) {
		return -1
	}

	return int(n)
}

// NodeFromIndex returns the node with dense index i. The caller guarantees
// 0 <= i < NodeBound(); the mapping is the identity.
// Complexity: O(1).
func (g *Graph) NodeFromIndex(i int) NodeID {
	return NodeID(i)
}

// NewVisitMap returns a fresh dense membership set sized to NodeBound(),
// for visited-node bookkeeping by traversal algorithms.
// Complexity: O(NodeBound()/64) for the backing bit storage.
func (g *Graph) NewVisitMap() visit.VisitMap[NodeID] {
	return visit.NewIndexSet[NodeID](g)
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.succ)
}

// EdgeCount returns the number of logical edges; an undirected edge and its
// mirror count once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// HasNode reports whether n is a node of this graph.
// Complexity: O(1).
func (g *Graph) HasNode(n NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNodeLocked(n)
}

// HasEdge reports whether an edge u→v is stored. On undirected graphs the
// mirror makes HasEdge symmetric. Unknown endpoints report false.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(u) || !g.hasNodeLocked(v) {
		return false
	}

	return g.hasEdgeLocked(u, v)
}
