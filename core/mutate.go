package core

import "fmt"

// AddNode inserts a fresh node and returns its identifier.
// Identifiers are assigned sequentially, so the k-th call returns NodeID(k).
// Thread-safe: acquires the write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked()
}

// AddNodes inserts k nodes and returns their identifiers in insertion order.
// A non-positive k returns nil.
// Thread-safe: acquires the write lock once for the whole batch.
//
// Complexity: O(k) amortized.
func (g *Graph) AddNodes(k int) []NodeID {
	if k <= 0 {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]NodeID, k)
	for i := range ids {
		ids[i] = g.addNodeLocked()
	}

	return ids
}

// addNodeLocked appends an empty adjacency row; callers hold the write lock.
func (g *Graph) addNodeLocked() NodeID {
	id := NodeID(len(g.succ))
	g.succ = append(g.succ, nil)
	if g.directed {
		g.pred = append(g.pred, nil)
	}

	return id
}

// AddEdge connects u to v. On undirected graphs the edge is mirrored into
// both adjacency rows; on directed graphs it runs u→v only, and v's
// predecessor row is updated alongside.
//
// Adding an edge that already exists is a no-op. Self-loops require
// WithLoops and appear once in the adjacency row.
// Thread-safe: acquires the write lock.
//
// Returns ErrNodeNotFound if either endpoint is outside the graph, or
// ErrLoopNotAllowed for a self-loop on a loopless graph.
//
// Complexity: O(deg(u)) for the duplicate check.
func (g *Graph) AddEdge(u, v NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNodeLocked(u) {
		return fmt.Errorf("core: AddEdge(%d, %d): source: %w", u, v, ErrNodeNotFound)
	}
	if !g.hasNodeLocked(v) {
		return fmt.Errorf("core: AddEdge(%d, %d): target: %w", u, v, ErrNodeNotFound)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("core: AddEdge(%d, %d): %w", u, v, ErrLoopNotAllowed)
	}
	if g.hasEdgeLocked(u, v) {
		return nil
	}

	g.succ[u] = append(g.succ[u], v)
	switch {
	case g.directed:
		g.pred[v] = append(g.pred[v], u)
	case u != v:
		// Mirror for undirected graphs; loops stay single entries.
		g.succ[v] = append(g.succ[v], u)
	}
	g.edgeCount++

	return nil
}

// hasNodeLocked reports membership without locking; callers hold a lock.
func (g *Graph) hasNodeLocked(n NodeID) bool {
	return n >= 0 && int(n) < len(g.succ)
}

// hasEdgeLocked reports whether the edge u→v is already stored;
// callers hold a lock and have validated both endpoints.
func (g *Graph) hasEdgeLocked(u, v NodeID) bool {
	for _, w := range g.succ[u] {
		if w == v {
			return true
		}
	}

	return false
}
