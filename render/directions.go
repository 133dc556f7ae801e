package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Direction is a compass step between two orthogonally adjacent cells.
type Direction byte

// Compass directions; North decreases the row, West decreases the column.
const (
	North Direction = 'N'
	South Direction = 'S'
	West  Direction = 'W'
	East  Direction = 'E'
)

// Step returns the direction from a to b, or ErrNotAdjacent.
func Step(a, b gridgraph.Position) (Direction, error) {
	switch {
	case b.Row == a.Row-1 && b.Col == a.Col:
		return North, nil
	case b.Row == a.Row+1 && b.Col == a.Col:
		return South, nil
	case b.Col == a.Col-1 && b.Row == a.Row:
		return West, nil
	case b.Col == a.Col+1 && b.Row == a.Row:
		return East, nil
	}

	return 0, fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, a, b)
}

// Steps converts a path into one Direction per edge. Paths with fewer than
// two cells yield no steps.
func Steps(path []gridgraph.Position) ([]Direction, error) {
	if len(path) < 2 {
		return nil, nil
	}
	out := make([]Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		d, err := Step(path[i-1], path[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}

// Directions is Steps joined into a string such as "NNEES".
func Directions(path []gridgraph.Position) (string, error) {
	steps, err := Steps(path)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(len(steps))
	for _, d := range steps {
		sb.WriteByte(byte(d))
	}

	return sb.String(), nil
}
