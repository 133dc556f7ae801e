package render_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

// ExampleText prints the explored cells and the route, then the directions.
func ExampleText() {
	g, _ := gridgraph.FromRows([]string{
		"S00",
		"010",
		"00G",
	})
	res, _ := dijkstra.Search(g)
	for _, row := range render.Text(g, res.Path, res.Explored) {
		fmt.Println(row)
	}
	dirs, _ := render.Directions(res.Path)
	fmt.Println("Directions:", dirs)
	// Output:
	// S..
	// *1.
	// **G
	// Directions: SSEE
}
