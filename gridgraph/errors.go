package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidMarker indicates a cell character outside {0,1,S,G}.
	ErrInvalidMarker = errors.New("gridgraph: invalid cell marker")
	// ErrDuplicateMarker indicates more than one start or more than one goal cell.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate start or goal marker")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
)
