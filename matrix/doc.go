// Package matrix provides the adjacency oracle: a dense bit matrix built
// once from any graph satisfying the visit capability contract, answering
// "is there an edge u→v?" in O(1) afterwards.
//
// What:
//
//   - NewAdjacencyMatrix(g) sweeps node identifiers and neighbor sequences
//     once and packs every reported edge into a bound×bound bitset.
//   - IsAdjacent / IsMutual query by node with index validation;
//     AdjacentIndex / MutualIndex query by dense index without it.
//   - No symmetric closure: for directed graphs, the bit (i, j) reflects
//     exactly the edge i→j. Symmetrization, if wanted, is the caller's.
//
// Why: search algorithms such as the maximal-clique enumerator test
// adjacency far more often than they walk edges; the oracle makes each
// test independent of node degree.
//
// Filtered views build matrices too: the bound stays the base graph's, and
// only node pairs passing the filter contribute bits.
//
// Errors:
//
//   - ErrNilGraph: nil graph handed to the builder.
//   - ErrCapacityExceeded: bound² not representable.
//   - ErrInvalidNode: index bijection left [0, bound).
//
// Complexity: O(bound²/64) memory; O(V+E) build; O(1) per query.
package matrix
