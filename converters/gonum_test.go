package converters_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/qoqosz/petgraph/clique"
	"github.com/qoqosz/petgraph/converters"
	"github.com/qoqosz/petgraph/core"
	"github.com/qoqosz/petgraph/visit"
)

// The wrapper must satisfy the full capability contract.
var _ visit.Graph[int64] = (*converters.GonumGraph)(nil)

func collect(seq iter.Seq[int64]) []int64 {
	var out []int64
	for v := range seq {
		out = append(out, v)
	}

	return out
}

// gonumScenarioA is the undirected hub graph built with gonum primitives.
// Edges: 0-1, 0-4, 1-4, 1-2, 2-3, 3-4, 4-5.
func gonumScenarioA() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, e := range [][2]int64{
		{0, 1}, {0, 4}, {1, 4}, {1, 2}, {2, 3}, {3, 4}, {4, 5},
	} {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}

	return g
}

// gonumScenarioB is the directed graph with mutual pairs 0⇄1, 0⇄4, 1⇄4,
// 2⇄3, 3⇄4 and one-way edges 1→2, 4→5.
func gonumScenarioB() *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for _, e := range [][2]int64{
		{0, 1}, {1, 0},
		{0, 4}, {4, 0},
		{1, 4}, {4, 1},
		{1, 2},
		{2, 3}, {3, 2},
		{3, 4}, {4, 3},
		{4, 5},
	} {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}

	return g
}

func TestWrapGonum_UndirectedCliques(t *testing.T) {
	w := converters.WrapGonum(gonumScenarioA())
	require.False(t, w.IsDirected())

	cliques, err := clique.MaximalCliques[int64](w)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 1, 4}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}, cliques)
}

func TestWrapGonum_DirectedCliques(t *testing.T) {
	w := converters.WrapGonum(gonumScenarioB())
	require.True(t, w.IsDirected())

	cliques, err := clique.MaximalCliques[int64](w)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 1, 4}, {2, 3}, {3, 4}, {5}}, cliques)
}

func TestWrapGonum_SparseIDs(t *testing.T) {
	g := simple.NewUndirectedGraph()
	g.SetEdge(simple.Edge{F: simple.Node(10), T: simple.Node(20)})
	g.AddNode(simple.Node(30))

	w := converters.WrapGonum(g)
	assert.Equal(t, 3, w.NodeBound())
	assert.Equal(t, 0, w.NodeIndex(10))
	assert.Equal(t, 1, w.NodeIndex(20))
	assert.Equal(t, 2, w.NodeIndex(30))
	assert.Equal(t, -1, w.NodeIndex(15), "unknown id must map to a negative index")
	assert.Equal(t, int64(30), w.NodeFromIndex(2))

	cliques, err := clique.MaximalCliques[int64](w)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{10, 20}, {30}}, cliques)
}

func TestWrapGonum_NilAndEmpty(t *testing.T) {
	w := converters.WrapGonum(nil)
	assert.Zero(t, w.NodeBound())
	assert.False(t, w.IsDirected())
	assert.Empty(t, collect(w.NodeIdentifiers()))

	cliques, err := clique.MaximalCliques[int64](w)
	require.NoError(t, err)
	require.Len(t, cliques, 1)
	assert.Empty(t, cliques[0])
}

func TestGonumGraph_NeighborsSortedRestartable(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for _, v := range []int64{9, 3, 7} {
		g.SetEdge(simple.Edge{F: simple.Node(5), T: simple.Node(v)})
	}
	w := converters.WrapGonum(g)

	first := collect(w.Neighbors(5))
	assert.Equal(t, []int64{3, 7, 9}, first)
	assert.Equal(t, first, collect(w.Neighbors(5)), "sequence must be restartable")
	assert.Empty(t, collect(w.Neighbors(42)), "unknown id yields nothing")
}

func TestGonumGraph_NeighborsDirected(t *testing.T) {
	g := simple.NewDirectedGraph()
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	g.SetEdge(simple.Edge{F: simple.Node(3), T: simple.Node(2)})
	w := converters.WrapGonum(g)

	assert.Equal(t, []int64{2}, collect(w.NeighborsDirected(1, visit.Outgoing)))
	assert.Empty(t, collect(w.NeighborsDirected(1, visit.Incoming)))
	assert.Equal(t, []int64{1, 3}, collect(w.NeighborsDirected(2, visit.Incoming)))
}

func TestWrapGonum_FilteredView(t *testing.T) {
	// Three layers composed: gonum graph, capability wrapper, node filter.
	w := converters.WrapGonum(gonumScenarioA())
	view := visit.NewFiltered[int64](w, visit.FilterFunc[int64](func(id int64) bool {
		return id != 4
	}))

	cliques, err := clique.MaximalCliques[int64](view)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 1}, {1, 2}, {2, 3}, {5}}, cliques)
}

func TestToGonum_DirectedRoundTrip(t *testing.T) {
	src := core.NewGraph(core.WithDirected(true))
	ids := src.AddNodes(6)
	for _, e := range [][2]int{
		{0, 1}, {1, 0},
		{0, 4}, {4, 0},
		{1, 4}, {4, 1},
		{1, 2},
		{2, 3}, {3, 2},
		{3, 4}, {4, 3},
		{4, 5},
	} {
		require.NoError(t, src.AddEdge(ids[e[0]], ids[e[1]]))
	}

	out := converters.ToGonum[core.NodeID](src)
	d, ok := out.(graph.Directed)
	require.True(t, ok, "directed source must export a directed gonum graph")
	assert.True(t, d.HasEdgeFromTo(1, 2))
	assert.False(t, d.HasEdgeFromTo(2, 1))

	// Full circle: the exported graph, wrapped again, yields the same cliques.
	back, err := clique.MaximalCliques[int64](converters.WrapGonum(out))
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 1, 4}, {2, 3}, {3, 4}, {5}}, back)
}

func TestToGonum_UndirectedExport(t *testing.T) {
	src := core.NewGraph()
	ids := src.AddNodes(3)
	require.NoError(t, src.AddEdge(ids[0], ids[1]))

	out := converters.ToGonum[core.NodeID](src)
	_, directed := out.(graph.Directed)
	assert.False(t, directed)
	assert.True(t, out.HasEdgeBetween(0, 1))
	assert.True(t, out.HasEdgeBetween(1, 0))
}

func TestToGonum_SelfLoopsSkippedIsolatedKept(t *testing.T) {
	src := core.NewGraph(core.WithLoops())
	ids := src.AddNodes(3)
	require.NoError(t, src.AddEdge(ids[0], ids[0]))
	require.NoError(t, src.AddEdge(ids[0], ids[1]))

	out := converters.ToGonum[core.NodeID](src)
	assert.False(t, out.HasEdgeBetween(0, 0), "self-loops must not be exported")
	assert.True(t, out.HasEdgeBetween(0, 1))
	assert.NotNil(t, out.Node(2), "isolated node must survive the export")
}

func TestToGonum_FilteredViewExportsVisibleSubgraph(t *testing.T) {
	src := core.NewGraph()
	ids := src.AddNodes(3)
	require.NoError(t, src.AddEdge(ids[0], ids[1]))
	require.NoError(t, src.AddEdge(ids[1], ids[2]))

	view := visit.NewFiltered[core.NodeID](src, visit.FilterFunc[core.NodeID](func(n core.NodeID) bool {
		return n != 1
	}))

	out := converters.ToGonum[core.NodeID](view)
	assert.NotNil(t, out.Node(0))
	assert.Nil(t, out.Node(1), "hidden node must not be exported")
	assert.NotNil(t, out.Node(2))
	assert.False(t, out.HasEdgeBetween(0, 1))
	assert.False(t, out.HasEdgeBetween(1, 2))
}
