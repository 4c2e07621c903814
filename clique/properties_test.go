package clique_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qoqosz/petgraph/clique"
	"github.com/qoqosz/petgraph/core"
	"github.com/qoqosz/petgraph/visit"
)

// isSubset reports whether every node of a occurs in b.
func isSubset(a, b []core.NodeID) bool {
	in := make(map[core.NodeID]bool, len(b))
	for _, n := range b {
		in[n] = true
	}
	for _, n := range a {
		if !in[n] {
			return false
		}
	}

	return true
}

// TestMaximalCliques_Properties checks the result contract directly on a
// mixed battery: pairwise mutual adjacency, maximality, uniqueness, and
// the absence of proper-subset pairs.
func TestMaximalCliques_Properties(t *testing.T) {
	graphs := []*core.Graph{
		scenarioA(t),
		scenarioB(t),
		randomGraph(t, false, 18, 60, 3),
		randomGraph(t, true, 18, 90, 4),
	}

	for gi, g := range graphs {
		cliques, err := clique.MaximalCliques[core.NodeID](g)
		require.NoError(t, err, "graph %d", gi)

		mutual := func(u, v core.NodeID) bool {
			return g.HasEdge(u, v) && g.HasEdge(v, u)
		}

		seen := make(map[string]bool, len(cliques))
		for _, c := range cliques {
			key := fmt.Sprint(c)
			assert.False(t, seen[key], "graph %d: duplicate clique %v", gi, c)
			seen[key] = true

			for i := 0; i < len(c); i++ {
				for j := i + 1; j < len(c); j++ {
					assert.True(t, mutual(c[i], c[j]),
						"graph %d: %v and %v in %v must be mutually adjacent", gi, c[i], c[j], c)
				}
			}

			for n := range g.NodeIdentifiers() {
				if slices.Contains(c, n) {
					continue
				}
				extends := true
				for _, m := range c {
					if !mutual(n, m) {
						extends = false
						break
					}
				}
				assert.False(t, extends, "graph %d: node %v extends clique %v", gi, n, c)
			}
		}

		for i := range cliques {
			for j := range cliques {
				if i != j && len(cliques[i]) < len(cliques[j]) {
					assert.False(t, isSubset(cliques[i], cliques[j]),
						"graph %d: %v is a proper subset of %v", gi, cliques[i], cliques[j])
				}
			}
		}
	}
}

// TestMaximalCliques_FilteredViewMatchesExplicitSubgraph compares a view
// enumeration against the same subgraph rebuilt explicitly with fresh
// dense identifiers.
func TestMaximalCliques_FilteredViewMatchesExplicitSubgraph(t *testing.T) {
	base := randomGraph(t, false, 16, 48, 9)
	keep := func(n core.NodeID) bool { return n%3 != 0 }
	view := visit.NewFiltered[core.NodeID](base, visit.FilterFunc[core.NodeID](keep))

	// 1. Rebuild the visible subgraph explicitly; rank maps base ids to the
	//    rebuilt graph's dense ids, ascending either way.
	var visible []core.NodeID
	for n := range view.NodeIdentifiers() {
		visible = append(visible, n)
	}
	sub := core.NewGraph()
	rank := make(map[core.NodeID]core.NodeID, len(visible))
	for _, n := range visible {
		rank[n] = sub.AddNode()
	}
	for _, u := range visible {
		for v := range base.Neighbors(u) {
			if keep(v) && u < v {
				require.NoError(t, sub.AddEdge(rank[u], rank[v]))
			}
		}
	}

	want, err := clique.MaximalCliques[core.NodeID](sub)
	require.NoError(t, err)

	// 2. Map the rebuilt ids back to base ids. The mapping is monotone, so
	//    canonical ordering survives and the comparison can be exact.
	mapped := make([][]core.NodeID, len(want))
	for i, c := range want {
		mapped[i] = make([]core.NodeID, len(c))
		for j, n := range c {
			mapped[i][j] = visible[n]
		}
	}

	got, err := clique.MaximalCliques[core.NodeID](view)
	require.NoError(t, err)
	assert.Equal(t, mapped, got)
}
