package converters

import (
	"iter"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/qoqosz/petgraph/visit"
)

// GonumGraph exposes a gonum graph through the visit capability contract,
// so every algorithm in this module runs on it unchanged.
//
// Node identifiers are gonum's int64 IDs. The dense index of an ID is its
// rank in ascending ID order, frozen at wrap time: rebuild the wrapper
// after mutating the underlying graph. Neighbor queries read through live
// and are sorted ascending for deterministic iteration.
type GonumGraph struct {
	g        graph.Graph
	directed graph.Directed

	// ids holds every node ID ascending; index is the inverse mapping.
	ids   []int64
	index map[int64]int
}

// WrapGonum indexes g and returns the adapter. A nil g yields an empty
// wrapper.
func WrapGonum(g graph.Graph) *GonumGraph {
	w := &GonumGraph{g: g, index: make(map[int64]int)}
	if g == nil {
		return w
	}

	// 1. Directedness is a capability of the wrapped value, not a flag.
	if d, ok := g.(graph.Directed); ok {
		w.directed = d
	}

	// 2. Freeze the ID set and its rank index.
	it := g.Nodes()
	for it.Next() {
		w.ids = append(w.ids, it.Node().ID())
	}
	slices.Sort(w.ids)
	for i, id := range w.ids {
		w.index[id] = i
	}

	return w
}

// IsDirected reports whether the wrapped graph satisfies graph.Directed.
func (w *GonumGraph) IsDirected() bool { return w.directed != nil }

// NodeBound returns the number of wrapped nodes; indices are ID ranks.
func (w *GonumGraph) NodeBound() int { return len(w.ids) }

// NodeIndex returns the rank of id among the wrapped node IDs, or -1 if id
// was not present at wrap time.
func (w *GonumGraph) NodeIndex(id int64) int {
	i, ok := w.index[id]
	if !ok {
		return -1
	}

	return i
}

// NodeFromIndex returns the node ID with rank i, 0 ≤ i < NodeBound().
func (w *GonumGraph) NodeFromIndex(i int) int64 { return w.ids[i] }

// NewVisitMap returns a fresh dense membership set over the wrapped IDs.
func (w *GonumGraph) NewVisitMap() visit.VisitMap[int64] {
	return visit.NewIndexSet[int64](w)
}

// NodeIdentifiers yields the wrapped node IDs in ascending order.
func (w *GonumGraph) NodeIdentifiers() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, id := range w.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// Neighbors yields the successors of id in ascending order. An unknown id
// yields nothing.
func (w *GonumGraph) Neighbors(id int64) iter.Seq[int64] {
	return w.NeighborsDirected(id, visit.Outgoing)
}

// NeighborsDirected yields the direction-qualified neighbors of id in
// ascending order. On an undirected graph either direction returns the
// incident set.
func (w *GonumGraph) NeighborsDirected(id int64, dir visit.Direction) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if _, ok := w.index[id]; !ok {
			return
		}
		var it graph.Nodes
		if dir == visit.Incoming && w.directed != nil {
			it = w.directed.To(id)
		} else {
			it = w.g.From(id)
		}

		// Collect and sort; gonum iterators carry no order guarantee.
		var ns []int64
		if l := it.Len(); l > 0 {
			ns = make([]int64, 0, l)
		}
		for it.Next() {
			ns = append(ns, it.Node().ID())
		}
		slices.Sort(ns)

		for _, v := range ns {
			if !yield(v) {
				return
			}
		}
	}
}

// ToGonum materializes any capability-contract graph as a gonum simple
// graph: a *simple.DirectedGraph when g is directed, otherwise a
// *simple.UndirectedGraph. Node IDs are the source's dense indices — for a
// filtered view, the base indices of its visible nodes. Self-loops are
// dropped; gonum's simple graphs reject them. A nil g yields an empty
// undirected graph.
func ToGonum[N comparable](g visit.Graph[N]) graph.Graph {
	if g == nil {
		return simple.NewUndirectedGraph()
	}
	if g.IsDirected() {
		dst := simple.NewDirectedGraph()
		fillGonum(dst, g)

		return dst
	}
	dst := simple.NewUndirectedGraph()
	fillGonum(dst, g)

	return dst
}

// gonumBuilder is the mutation surface shared by gonum's simple graphs.
type gonumBuilder interface {
	AddNode(graph.Node)
	SetEdge(graph.Edge)
}

// fillGonum copies nodes first and edges second, so isolated nodes survive
// the export.
func fillGonum[N comparable](dst gonumBuilder, src visit.Graph[N]) {
	for n := range src.NodeIdentifiers() {
		dst.AddNode(simple.Node(src.NodeIndex(n)))
	}
	for u := range src.NodeIdentifiers() {
		ui := src.NodeIndex(u)
		for v := range src.Neighbors(u) {
			vi := src.NodeIndex(v)
			if vi == ui {
				continue
			}
			dst.SetEdge(simple.Edge{F: simple.Node(ui), T: simple.Node(vi)})
		}
	}
}
