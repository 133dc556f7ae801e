// Package gridgraph provides utilities to treat a 2D grid of cell markers
// as a graph with 4-connectivity.
//
// Blocked cells ('1') are walls; every other marker, including start and goal,
// is traversable.
package gridgraph

import "fmt"

// FromRows constructs a GridGraph from strings over the alphabet {0,1,S,G},
// one string per row, top to bottom.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrInvalidMarker or ErrDuplicateMarker
// (wrapped with the offending location) for malformed input.
// Complexity: O(R×C) time and memory.
func FromRows(rows []string) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Marker, len(rows))
	for r, row := range rows {
		cells[r] = []Marker(row)
	}

	return NewGridGraph(cells)
}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of markers. It deep-copies the input to ensure immutability and scans it
// row-major for the start and goal cells.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(markers [][]Marker) (*GridGraph, error) {
	if len(markers) == 0 || len(markers[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(markers), len(markers[0])
	gg := &GridGraph{rows: h, cols: w, cells: make([][]Marker, h)}
	for r, row := range markers {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, r, len(row), w)
		}
		// Deep copy to prevent external mutation
		gg.cells[r] = make([]Marker, w)
		copy(gg.cells[r], row)
		for c, m := range row {
			if err := gg.locate(m, Position{Row: r, Col: c}); err != nil {
				return nil, err
			}
		}
	}

	return gg, nil
}

// locate validates m and records it if it is the start or goal marker.
func (gg *GridGraph) locate(m Marker, p Position) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q at %v", ErrInvalidMarker, byte(m), p)
	}
	switch m {
	case Start:
		if gg.hasStart {
			return fmt.Errorf("%w: 'S' at %v and %v", ErrDuplicateMarker, gg.start, p)
		}
		gg.start, gg.hasStart = p, true
	case Goal:
		if gg.hasGoal {
			return fmt.Errorf("%w: 'G' at %v and %v", ErrDuplicateMarker, gg.goal, p)
		}
		gg.goal, gg.hasGoal = p, true
	}

	return nil
}

// Rows returns the grid height.
func (gg *GridGraph) Rows() int { return gg.rows }

// Cols returns the grid width.
func (gg *GridGraph) Cols() int { return gg.cols }

// Start returns the start cell and whether the grid has one.
func (gg *GridGraph) Start() (Position, bool) { return gg.start, gg.hasStart }

// Goal returns the goal cell and whether the grid has one.
func (gg *GridGraph) Goal() (Position, bool) { return gg.goal, gg.hasGoal }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < gg.rows && p.Col >= 0 && p.Col < gg.cols
}

// At returns the marker stored at p. p must be in bounds.
func (gg *GridGraph) At(p Position) Marker {
	return gg.cells[p.Row][p.Col]
}

// Traversable reports whether p is in bounds and not a wall.
func (gg *GridGraph) Traversable(p Position) bool {
	return gg.InBounds(p) && gg.cells[p.Row][p.Col] != Blocked
}

// Markers returns a deep copy of the cell markers.
func (gg *GridGraph) Markers() [][]Marker {
	out := make([][]Marker, gg.rows)
	for r := range gg.cells {
		out[r] = make([]Marker, gg.cols)
		copy(out[r], gg.cells[r])
	}

	return out
}

// Adjacent returns the in-bounds orthogonal neighbors of p, walls included,
// in the order North, South, West, East.
// Complexity: O(1).
func (gg *GridGraph) Adjacent(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if q := p.Add(d[0], d[1]); gg.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Neighbors returns the orthogonally adjacent, traversable cells of p in the
// order North, South, West, East.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(p Position) []Position {
	adj := gg.Adjacent(p)
	out := adj[:0]
	for _, q := range adj {
		if gg.cells[q.Row][q.Col] != Blocked {
			out = append(out, q)
		}
	}

	return out
}

// index maps p to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (gg *GridGraph) index(p Position) int {
	return p.Row*gg.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Position {
	return Position{Row: idx / gg.cols, Col: idx % gg.cols}
}
