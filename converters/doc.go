// Package converters provides two-way adapters between the visit
// capability contract and external Go graph libraries.
//
// Supported today:
//
//   - gonum/graph: WrapGonum exposes any gonum graph.Graph through the
//     contract (the clique enumerator and the adjacency oracle run on it
//     unchanged); ToGonum exports any contract graph as a gonum
//     simple.DirectedGraph or simple.UndirectedGraph.
//
// Further adapters (dominikbraun/graph, hmdsefi/gograph, yourbasic/graph)
// follow the same pattern: wrap the foreign representation behind the
// contract once, and every algorithm in this module works on it.
package converters
