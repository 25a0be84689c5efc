package core_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// ExampleNewDigraphFromEdges builds a small digraph from an edge-pair
// stream and prints its adjacency structure.
//
//	0 ──▶ 1 ──▶ 2
//	└──────────▶ 2
func ExampleNewDigraphFromEdges() {
	g, err := core.NewDigraphFromEdges(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(g)

	// Output:
	// 3 vertices, 3 edges
	// 0: 1 2
	// 1: 2
	// 2:
}

// ExampleDigraph_Reverse flips every edge of a path.
func ExampleDigraph_Reverse() {
	g, _ := core.NewDigraphFromEdges(3, [][2]int{{0, 1}, {1, 2}})

	fmt.Print(g.Reverse())

	// Output:
	// 3 vertices, 2 edges
	// 0:
	// 1: 0
	// 2: 1
}
