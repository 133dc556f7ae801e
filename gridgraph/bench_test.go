package gridgraph_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomRows builds an n×n grid with ~30% walls, 'S' top-left and 'G' bottom-right.
func randomRows(n int) []string {
	r := rand.New(rand.NewSource(42))
	rows := make([]string, n)
	for y := 0; y < n; y++ {
		var sb strings.Builder
		for x := 0; x < n; x++ {
			switch {
			case x == 0 && y == 0:
				sb.WriteByte('S')
			case x == n-1 && y == n-1:
				sb.WriteByte('G')
			case r.Intn(10) < 3:
				sb.WriteByte('1')
			default:
				sb.WriteByte('0')
			}
		}
		rows[y] = sb.String()
	}

	return rows
}

// BenchmarkConnectedComponents measures ConnectedComponents on a 500×500 grid.
// Complexity: O(R×C)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.FromRows(randomRows(500))
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkMinBreach measures MinBreach between opposite corners of a 500×500 grid.
// Complexity: O(R×C)
func BenchmarkMinBreach(b *testing.B) {
	gg, err := gridgraph.FromRows(randomRows(500))
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}
	start, _ := gg.Start()
	goal, _ := gg.Goal()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gg.MinBreach(start, goal)
	}
}
