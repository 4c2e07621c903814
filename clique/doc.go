// Package clique enumerates maximal cliques with the Bron–Kerbosch
// backtracking algorithm over an O(1) adjacency oracle.
//
// A clique is a set of nodes in which every pair is mutually adjacent;
// maximal means no further node can join. On directed graphs "mutually"
// is taken literally: u and v count as clique-adjacent only when edges
// run in both directions. Undirected graphs get the classic definition.
//
// What:
//
//   - MaximalCliques(g) collects every maximal clique in canonical order:
//     nodes ascending within a clique, cliques sorted lexicographically.
//   - EachMaximalClique(g, fn) streams cliques as they are found; an error
//     from fn aborts the search.
//   - Any graph satisfying the visit capability contract works — the
//     adjacency-list core, a filtered view over it, or a wrapped gonum
//     graph.
//
// Why:
//
//   - Community detection: tightly-knit groups in social or interaction
//     networks.
//   - Protein-complex discovery and co-expression analysis.
//   - Constraint problems reducible to clique cover or independent sets.
//
// Options:
//
//   - WithContext(ctx): cancellation checked at every search branch.
//   - WithoutPivot(): disable pivot pruning (full branching at each level).
//   - WithIterative(): explicit-stack engine for very deep searches.
//   - WithWorkers(k): fan the top-level branches out over k goroutines.
//
// Engines and worker counts never change the result, only the running
// time: the same graph always yields the same cliques.
//
// Errors:
//
//   - ErrNilGraph: nil graph handed to the enumerator.
//   - ErrOptionViolation: invalid functional option or nil callback.
//
// Complexity: O(3^(V/3)) worst case (the Moon–Moser bound), O(V²/64)
// memory for the oracle and masks.
package clique
