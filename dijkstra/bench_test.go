package dijkstra_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// benchGrid builds an n×n grid with ~25% walls, 'S' top-left and 'G' bottom-right.
func benchGrid(b *testing.B, n int) *gridgraph.GridGraph {
	r := rand.New(rand.NewSource(7))
	rows := make([]string, n)
	for y := 0; y < n; y++ {
		var sb strings.Builder
		for x := 0; x < n; x++ {
			switch {
			case x == 0 && y == 0:
				sb.WriteByte('S')
			case x == n-1 && y == n-1:
				sb.WriteByte('G')
			case r.Intn(4) == 0:
				sb.WriteByte('1')
			default:
				sb.WriteByte('0')
			}
		}
		rows[y] = sb.String()
	}
	g, err := gridgraph.FromRows(rows)
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}

	return g
}

// BenchmarkSearch_200 runs Search on a 200×200 random grid.
func BenchmarkSearch_200(b *testing.B) {
	g := benchGrid(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Search(g)
	}
}

// BenchmarkSearch_Open500 runs Search corner to corner on an open 500×500 grid,
// the worst case for equal-distance ties.
func BenchmarkSearch_Open500(b *testing.B) {
	rows := make([]string, 500)
	for y := range rows {
		rows[y] = strings.Repeat("0", 500)
	}
	rows[0] = "S" + rows[0][1:]
	rows[499] = rows[499][:499] + "G"
	g, err := gridgraph.FromRows(rows)
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Search(g)
	}
}
