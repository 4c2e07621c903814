package visit_test

import (
	"fmt"

	"github.com/qoqosz/petgraph/core"
	"github.com/qoqosz/petgraph/visit"
)

// ExampleNewFiltered hides one node of a path and shows how the view
// reshapes both the node listing and every neighbor sequence:
//
//	0──1──2──3──4      filter: hide 2
func ExampleNewFiltered() {
	g := core.NewGraph()
	ids := g.AddNodes(5)
	for i := 0; i+1 < 5; i++ {
		_ = g.AddEdge(ids[i], ids[i+1])
	}

	view := visit.NewFiltered[core.NodeID](g, visit.FilterFunc[core.NodeID](func(n core.NodeID) bool {
		return n != 2
	}))

	for n := range view.NodeIdentifiers() {
		fmt.Print(n, ": [")
		for m := range view.Neighbors(n) {
			fmt.Print(" ", m)
		}
		fmt.Println(" ]")
	}

	// Output:
	// 0: [ 1 ]
	// 1: [ 0 ]
	// 3: [ 4 ]
	// 4: [ 3 ]
}

// ExampleMapFilter keeps exactly the nodes recorded in a visit map — here
// the even half of a small complete graph.
func ExampleMapFilter() {
	g := core.NewGraph()
	ids := g.AddNodes(4)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_ = g.AddEdge(ids[i], ids[j])
		}
	}

	allow := g.NewVisitMap()
	allow.Visit(ids[0])
	allow.Visit(ids[2])

	view := visit.NewFiltered[core.NodeID](g, visit.MapFilter[core.NodeID]{M: allow})
	for n := range view.NodeIdentifiers() {
		fmt.Println(n, "->", collectExample(view, n))
	}

	// Output:
	// 0 -> [2]
	// 2 -> [0]
}

func collectExample(g visit.Graph[core.NodeID], n core.NodeID) []core.NodeID {
	var out []core.NodeID
	for m := range g.Neighbors(n) {
		out = append(out, m)
	}

	return out
}
