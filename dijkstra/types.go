package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Search and Distances.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrMissingStart indicates that the grid has no start cell.
	ErrMissingStart = errors.New("dijkstra: grid has no start cell")

	// ErrMissingGoal indicates that the grid has no goal cell.
	ErrMissingGoal = errors.New("dijkstra: grid has no goal cell")

	// ErrStepLimit indicates that the search finalized MaxSteps cells without finishing.
	ErrStepLimit = errors.New("dijkstra: step limit reached")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadMaxSteps indicates that MaxSteps was set to zero or a negative value.
	ErrBadMaxSteps = errors.New("dijkstra: MaxSteps must be positive")

	// ErrEndpointOutOfBounds indicates a WithStart or WithGoal position outside the grid.
	ErrEndpointOutOfBounds = errors.New("dijkstra: endpoint outside the grid")
)

// Result is the outcome of a single Search call.
type Result struct {
	Path     []gridgraph.Position // start..goal inclusive; nil if not found
	Explored []gridgraph.Position // finalized cells in pop order
	Distance int                  // len(Path)-1, or -1 if not found
	Found    bool
}

// Options configures a search.
//
// MaxDistance: cells farther than this many steps are not expanded.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
//
// MaxSteps: upper bound on finalized cells; Search fails with ErrStepLimit beyond it.
//
//	Must be > 0. Default is math.MaxInt (no bound).
//
// Start, Goal: override the grid's 'S' and 'G' cells when non-nil.
type Options struct {
	Start       *gridgraph.Position
	Goal        *gridgraph.Position
	MaxDistance int
	MaxSteps    int
	Ctx         context.Context
	OnVisit     func(gridgraph.Position)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithStart searches from p instead of the grid's 'S' cell.
// The cell is traversable whatever its marker.
func WithStart(p gridgraph.Position) Option {
	return func(o *Options) {
		o.Start = &p
	}
}

// WithGoal searches towards p instead of the grid's 'G' cell.
// The cell is traversable whatever its marker; it may equal the start.
func WithGoal(p gridgraph.Position) Option {
	return func(o *Options) {
		o.Goal = &p
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed max are never expanded.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithMaxSteps bounds the number of cells the search may finalize.
// Zero or negative values panic with ErrBadMaxSteps.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxSteps.Error())
	}

	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithContext makes the search stop once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithObserver registers fn to be called with each finalized cell.
func WithObserver(fn func(gridgraph.Position)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns an Options struct with no caps, no context and no observer.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt,
		MaxSteps:    math.MaxInt,
		Ctx:         context.Background(),
	}
}
