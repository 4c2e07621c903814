// Package core provides the concrete in-memory graph backing the visit
// capability contract: an adjacency-list Graph with dense NodeID handles.
//
// Nodes are created with AddNode/AddNodes and identified by sequential
// NodeIDs, which double as their own dense indexes — NodeIndex and
// NodeFromIndex are the identity on [0, NodeBound()). Nodes are never
// removed, so the bijection holds for the life of the graph.
//
// Edges are added with AddEdge. Undirected graphs (the default) mirror
// every edge into both adjacency rows; directed graphs additionally
// maintain predecessor rows so NeighborsDirected(n, Incoming) costs
// O(deg(n)). Duplicate edges are no-ops; self-loops require WithLoops.
//
// Usage:
//
//	g := core.NewGraph(core.WithDirected(true))
//	ns := g.AddNodes(3)
//	if err := g.AddEdge(ns[0], ns[1]); err != nil { ... }
//	for v := range g.Neighbors(ns[0]) { ... }
//
// Concurrency: a single sync.RWMutex guards mutation. Sequences snapshot
// under the read lock and yield lock-free, so callers may mutate between —
// but not during — the traversals they started (see the visit contract).
//
// Errors:
//
//   - ErrNodeNotFound: an edge endpoint is outside the graph.
//   - ErrLoopNotAllowed: self-loop on a graph built without WithLoops.
package core
