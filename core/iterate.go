package core

import (
	"iter"

	"github.com/qoqosz/petgraph/visit"
)

// NodeIdentifiers yields every node identifier in ascending order.
// The sequence is restartable: each range re-reads the current node count.
// Thread-safe: the count is snapshotted under the read lock; no lock is
// held while yielding.
//
// Complexity: O(V) per full iteration.
func (g *Graph) NodeIdentifiers() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		g.mu.RLock()
		n := len(g.succ)
		g.mu.RUnlock()

		for i := 0; i < n; i++ {
			if !yield(NodeID(i)) {
				return
			}
		}
	}
}

// Neighbors yields the nodes directly reachable from n in insertion order:
// successors on a directed graph, all incident nodes on an undirected one.
// An identifier outside the graph yields an empty sequence.
// Thread-safe: the adjacency row is copied under the read lock; no lock is
// held while yielding.
//
// Complexity: O(deg(n)) per full iteration.
func (g *Graph) Neighbors(n NodeID) iter.Seq[NodeID] {
	return g.rowSeq(n, visit.Outgoing)
}

// NeighborsDirected is the direction-qualified neighbor listing.
// Outgoing yields successors; Incoming yields predecessors. On undirected
// graphs both directions yield the same incident set.
//
// Complexity: O(deg(n)) per full iteration.
func (g *Graph) NeighborsDirected(n NodeID, dir visit.Direction) iter.Seq[NodeID] {
	return g.rowSeq(n, dir)
}

// rowSeq snapshots the requested adjacency row and yields it lock-free.
func (g *Graph) rowSeq(n NodeID, dir visit.Direction) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, v := range g.rowSnapshot(n, dir) {
			if !yield(v) {
				return
			}
		}
	}
}

// rowSnapshot copies the adjacency row for n under the read lock.
// Unknown identifiers return nil.
func (g *Graph) rowSnapshot(n NodeID, dir visit.Direction) []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(n) {
		return nil
	}

	row := g.succ[n]
	if g.directed && dir == visit.Incoming {
		row = g.pred[n]
	}
	if len(row) == 0 {
		return nil
	}

	out := make([]NodeID, len(row))
	copy(out, row)

	return out
}
