// Package visit defines the capability contract shared by every graph
// representation in this module, plus the adaptors that let one graph pose
// as another: node-inclusion filters and the zero-copy Filtered view.
//
// The contract is split into single-concern interfaces so an algorithm can
// demand exactly what it uses:
//
//   - GraphProp          — IsDirected
//   - NodeIdentifiers    — lazy, restartable listing of all node identifiers
//   - Neighbors          — lazy listing of nodes reachable from a node
//   - NeighborsDirected  — the same, qualified by traversal Direction
//   - NodeIndexable      — bijection NodeId ↔ dense index in [0, NodeBound())
//   - Visitable          — factory for fresh membership sets sized to NodeBound()
//
// Graph combines all of the above; IndexedGraph is the narrower bound
// consumed by the adjacency oracle and the clique enumerator.
//
// All sequences are iter.Seq values: finite, restartable (each range starts
// over), and lazy. Implementations must not hold locks across yields.
//
// # Filtered views
//
// Filtered wraps a base graph together with a NodeFilter and satisfies the
// full Graph contract itself, so views nest to any depth and drop into any
// algorithm unchanged:
//
//	even := visit.FilterFunc[core.NodeID](func(n core.NodeID) bool { return n%2 == 0 })
//	view := visit.NewFiltered[core.NodeID](g, even)
//	cliques, err := clique.MaximalCliques[core.NodeID](view)
//
// A node failing the filter vanishes from NodeIdentifiers and contributes no
// edges: its own neighbor sequence is empty, and it is filtered out of every
// other node's sequence. The index space and directedness of the base are
// left untouched — a view narrows visibility, not identity.
//
// # Filter strategies
//
// NodeFilter is a single-method interface; any predicate works. Provided
// strategies: FilterFunc adapts a closure, and MapFilter includes exactly
// the nodes recorded in a VisitMap — pair it with IndexSet for dense
// bit-index membership or with MapSet for hash membership.
package visit
