// Package core defines the Graph type and its construction options,
// plus the sentinel errors shared by all core operations.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node outside the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// NodeID identifies a node of a Graph. Identifiers are dense: the k-th
// added node gets NodeID(k), and a NodeID doubles as its own index in
// [0, NodeBound()). Nodes are never removed, so the mapping stays a
// bijection for the life of the graph.
type NodeID int

// GraphOption configures a Graph before first use.
type GraphOption func(*Graph)

// WithDirected sets edge orientation for the whole graph
// (true = one-way edges, false = mirrored into both adjacency rows).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes internal adjacency storage for n nodes.
// Purely an allocation hint; non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.succ = make([][]NodeID, 0, n)
			g.pred = make([][]NodeID, 0, n)
		}
	}
}

// Graph is an in-memory adjacency-list graph with dense NodeID handles.
//
// It implements the full visit.Graph[NodeID] capability contract: lazy
// node and neighbor sequences, the identity index bijection, and a dense
// visit-map factory. A single sync.RWMutex guards mutation; iteration
// snapshots under the read lock so no lock is held across yields.
//
// Mutating the graph while a view or an in-flight enumeration built on it
// is live is a caller error; the library does not detect it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags, immutable after NewGraph.
	directed   bool
	allowLoops bool

	// succ[u] lists nodes reachable from u in insertion order.
	// Undirected graphs mirror every edge into both rows.
	succ [][]NodeID

	// pred[u] lists nodes with an edge into u; maintained for directed
	// graphs only, so NeighborsDirected(n, Incoming) is O(deg).
	pred [][]NodeID

	// edgeCount tracks logical edges: one per AddEdge, mirrors not counted.
	edgeCount int
}

// NewGraph creates an empty Graph. By default the graph is undirected and
// rejects self-loops.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
