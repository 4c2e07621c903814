package clique_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qoqosz/petgraph/clique"
	"github.com/qoqosz/petgraph/core"
)

// naiveCliques enumerates maximal cliques of the mutual-adjacency relation
// with plain hash sets and no pruning, straight from the raw edge list. It
// shares nothing with the engine under test beyond the definition.
func naiveCliques(n int, directed bool, edges [][2]int) [][]int {
	// 1. Mutual adjacency from the edge list; self-loops contribute nothing.
	has := make(map[[2]int]bool, 2*len(edges))
	for _, e := range edges {
		has[e] = true
		if !directed {
			has[[2]int{e[1], e[0]}] = true
		}
	}
	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = make(map[int]bool)
	}
	for e := range has {
		if e[0] != e[1] && has[[2]int{e[1], e[0]}] {
			adj[e[0]][e[1]] = true
		}
	}

	// 2. Textbook Bron–Kerbosch over hash sets, branch order arbitrary.
	var out [][]int
	var extend func(r []int, p, x map[int]bool)
	extend = func(r []int, p, x map[int]bool) {
		if len(p) == 0 && len(x) == 0 {
			c := append([]int(nil), r...)
			slices.Sort(c)
			out = append(out, c)

			return
		}
		todo := make([]int, 0, len(p))
		for v := range p {
			todo = append(todo, v)
		}
		for _, v := range todo {
			delete(p, v)
			np := make(map[int]bool)
			nx := make(map[int]bool)
			for u := range p {
				if adj[v][u] {
					np[u] = true
				}
			}
			for u := range x {
				if adj[v][u] {
					nx[u] = true
				}
			}
			extend(append(r, v), np, nx)
			x[v] = true
		}
	}

	p := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		p[i] = true
	}
	extend(nil, p, make(map[int]bool))

	slices.SortFunc(out, slices.Compare)

	return out
}

func TestMaximalCliques_MatchesNaiveReference(t *testing.T) {
	cases := []struct {
		directed bool
		n, m     int
		seed     int64
	}{
		{false, 10, 30, 11},
		{false, 30, 90, 12},
		{false, 80, 160, 13},
		{false, 200, 200, 14},
		{true, 10, 60, 15},
		{true, 30, 180, 16},
		{true, 200, 200, 17},
	}

	for _, tc := range cases {
		rnd := rand.New(rand.NewSource(tc.seed))
		var edges [][2]int
		for k := 0; k < tc.m; k++ {
			u, v := rnd.Intn(tc.n), rnd.Intn(tc.n)
			if u == v {
				continue
			}
			edges = append(edges, [2]int{u, v})
		}

		g := buildGraph(t, tc.directed, tc.n, edges)
		want := naiveCliques(tc.n, tc.directed, edges)

		got, err := clique.MaximalCliques[core.NodeID](g)
		require.NoError(t, err)
		require.Equal(t, want, asInts(got),
			"directed=%v n=%d m=%d seed=%d", tc.directed, tc.n, tc.m, tc.seed)
	}
}
