// Package dijkstra_test provides examples demonstrating grid searches.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleSearch finds a route around a wall.
// Complexity: O(E log E) with E ≤ 4×cells frontier pushes.
func ExampleSearch() {
	// 1) Parse the grid: 'S' start, 'G' goal, '1' walls.
	g, err := gridgraph.FromRows([]string{
		"S1G",
		"010",
		"000",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Run the search.
	res, err := dijkstra.Search(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the route and how many cells were finalized.
	fmt.Println("length:", res.Distance)
	fmt.Println("path:", res.Path)
	fmt.Println("explored:", len(res.Explored))
	// Output:
	// length: 6
	// path: [(0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)]
	// explored: 7
}

// ExampleSearch_noPath shows that an unreachable goal is a normal outcome.
func ExampleSearch_noPath() {
	g, _ := gridgraph.FromRows([]string{"S1", "1G"})
	res, err := dijkstra.Search(g)
	fmt.Println("err:", err)
	fmt.Println("found:", res.Found, "explored:", res.Explored)
	// Output:
	// err: <nil>
	// found: false explored: [(0,0)]
}

// ExampleDistances prints the step count to every reachable cell.
func ExampleDistances() {
	g, _ := gridgraph.FromRows([]string{"S0", "1G"})
	dist, _ := dijkstra.Distances(g)
	fmt.Println(dist[gridgraph.Position{Row: 0, Col: 1}], dist[gridgraph.Position{Row: 1, Col: 1}])
	// Output: 1 2
}
