// Package petgraph is a capability-based graph toolkit: algorithms are
// written once against small composable interfaces and run unchanged over
// any conforming representation, including zero-copy filtered views of
// other graphs.
//
// What lives where:
//
//	visit/      — the capability contract (node listing, neighbor sequences,
//	              dense index bijection, visit maps), node-inclusion filters,
//	              and the Filtered view that satisfies the same contract as
//	              the graph it wraps.
//	core/       — a concrete adjacency-list graph with dense NodeID handles
//	              implementing the full contract.
//	matrix/     — an immutable bit-matrix adjacency oracle answering
//	              "is there an edge u→v?" in O(1).
//	clique/     — exhaustive enumeration of all maximal cliques via
//	              Bron–Kerbosch backtracking over the oracle.
//	converters/ — adapters bridging external graph libraries (gonum) into
//	              the capability contract and back.
//
// A quick sketch:
//
//	        5
//	        │
//	    3───4───0
//	    │   │ ╱
//	    2───1
//
//	g := core.NewGraph()
//	ns := g.AddNodes(6)
//	g.AddEdge(ns[0], ns[1]) // ...
//	cliques, err := clique.MaximalCliques[core.NodeID](g)
//
// Because clique.MaximalCliques only sees the visit contract, the same call
// accepts a visit.Filtered view or a wrapped gonum graph in place of g.
//
//	go get github.com/qoqosz/petgraph
package petgraph
