// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FromRows
////////////////////////////////////////////////////////////////////////////////

// ExampleFromRows parses a small maze and inspects its endpoints and the
// open neighbors of the start cell.
func ExampleFromRows() {
	gg, err := gridgraph.FromRows([]string{
		"0S0",
		"010",
		"G00",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := gg.Start()
	goal, _ := gg.Goal()
	fmt.Println("start:", start, "goal:", goal)
	fmt.Println("neighbors of start:", gg.Neighbors(start))

	// Output:
	// start: (0,1) goal: (2,0)
	// neighbors of start: [(0,0) (0,2)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: MinBreach
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_MinBreach shows how many walls separate a boxed-in goal.
func ExampleGridGraph_MinBreach() {
	gg, _ := gridgraph.FromRows([]string{
		"S0000",
		"00111",
		"001G1",
	})
	start, _ := gg.Start()
	goal, _ := gg.Goal()
	fmt.Println("connected:", gg.Connected(start, goal))

	_, walls, _ := gg.MinBreach(start, goal)
	fmt.Println("walls to clear:", walls)

	// Output:
	// connected: false
	// walls to clear: 1
}
