// Package dijkstra_test provides examples demonstrating how to use the solver.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/pqueue"
)

// ExampleDijkstra finds the cheap detour A→B→C instead of the direct A→C.
func ExampleDijkstra() {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("A", "C", 10)

	path, ok := dijkstra.Dijkstra(g, "A", "C")
	fmt.Println(path, ok)
	// Output: [A B C] true
}

// ExampleDijkstra_unreachable shows the "no path" result.
func ExampleDijkstra_unreachable() {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "D", 1)

	path, ok := dijkstra.Dijkstra(g, "A", "D", dijkstra.WithQueue(pqueue.KindList))
	fmt.Println(path == nil, ok)
	// Output: true false
}

// ExampleSolve computes costs to every reachable vertex.
func ExampleSolve() {
	g := core.NewGraph[string]()
	g.AddEdge("depot", "north", 4)
	g.AddEdge("depot", "east", 1)
	g.AddEdge("east", "north", 2)
	g.AddEdge("north", "hill", 5)

	res := dijkstra.Solve(g, "depot")
	for _, v := range g.Vertices() {
		fmt.Printf("%s=%v\n", v, res.Cost(v))
	}
	path, _ := res.Path("hill")
	fmt.Println(path)

	// Output:
	// depot=0
	// north=3
	// east=1
	// hill=8
	// [depot east north hill]
}
