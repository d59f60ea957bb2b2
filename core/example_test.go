package core_test

import (
	"fmt"

	"github.com/katalvlaran/motifguard/core"
)

// ExampleGraph builds a three-state chain and inspects both directions
// of adjacency.
func ExampleGraph() {
	g := core.NewGraph()
	start := g.AddVertex("start")
	f1 := g.AddVertex("f1")
	end := g.AddVertex("end")
	_ = g.AddEdge(start, f1)
	_ = g.AddEdge(start, end)
	_ = g.AddEdge(f1, end)

	succ, _ := g.Successors(start)
	pred, _ := g.Predecessors(end)
	fmt.Println(succ, pred, g.EdgeCount())
	// Output:
	// [1 2] [0 1] 3
}
