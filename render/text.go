package render

import (
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Text renders g as one string per row. Explored cells off the path get the
// explored glyph, path cells get the path glyph, and the start and goal cells
// read 'S' and 'G'. With WithEndpoints the overridden cells carry those letters
// and the grid's own markers read '0'; when start and goal coincide the cell
// reads 'S'. Positions outside g are ignored.
// Complexity: O(R×C + |path| + |explored|).
func Text(g *gridgraph.GridGraph, path, explored []gridgraph.Position, opts ...Option) []string {
	cfg := apply(opts)
	cells := g.Markers()
	start, hasStart, goal, hasGoal := cfg.endpoints(g)
	if cfg.Start != nil || cfg.Goal != nil {
		for _, row := range cells {
			for c, m := range row {
				if m == gridgraph.Start || m == gridgraph.Goal {
					row[c] = gridgraph.Open
				}
			}
		}
		if hasGoal {
			cells[goal.Row][goal.Col] = gridgraph.Goal
		}
		if hasStart {
			cells[start.Row][start.Col] = gridgraph.Start
		}
	}
	endpoint := func(p gridgraph.Position) bool {
		return (hasStart && p == start) || (hasGoal && p == goal)
	}

	onPath := make(map[gridgraph.Position]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}
	mark := func(p gridgraph.Position, glyph byte) {
		if !g.InBounds(p) {
			return
		}
		if endpoint(p) {
			return
		}
		cells[p.Row][p.Col] = gridgraph.Marker(glyph)
	}

	for _, p := range explored {
		if _, ok := onPath[p]; !ok {
			mark(p, cfg.ExploredGlyph)
		}
	}
	for _, p := range path {
		mark(p, cfg.PathGlyph)
	}

	out := make([]string, len(cells))
	for r, row := range cells {
		b := make([]byte, len(row))
		for c, m := range row {
			b[c] = byte(m)
		}
		out[r] = string(b)
	}

	return out
}
