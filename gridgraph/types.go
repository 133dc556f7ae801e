package gridgraph

import "fmt"

// Marker is the content of a single grid cell.
type Marker byte

const (
	// Open is a free cell.
	Open Marker = '0'
	// Blocked is an obstacle; it is never entered unless it is also the start or goal.
	Blocked Marker = '1'
	// Start marks the source cell of a search.
	Start Marker = 'S'
	// Goal marks the target cell of a search.
	Goal Marker = 'G'
)

// Valid reports whether m is one of the four known markers.
func (m Marker) Valid() bool {
	switch m {
	case Open, Blocked, Start, Goal:
		return true
	}

	return false
}

// Position addresses a cell by 0-indexed row and column.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by the given row and column deltas.
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// neighborOffsets lists orthogonal moves in the fixed order North, South, West, East.
// The order pins tie-breaking in searches that enqueue neighbors as returned.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// GridGraph treats a 2D grid of Markers as a graph. It is immutable once built.
// cells[r][c] holds the marker at row r, column c.
type GridGraph struct {
	rows, cols int
	cells      [][]Marker
	start      Position
	goal       Position
	hasStart   bool
	hasGoal    bool
}
