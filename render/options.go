package render

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for render operations.
var (
	// ErrNotAdjacent indicates two consecutive path cells that are not one orthogonal step apart.
	ErrNotAdjacent = errors.New("render: consecutive path cells are not adjacent")
	// ErrBadCellSize indicates a non-positive image cell size.
	ErrBadCellSize = errors.New("render: cell size must be positive")
)

// Default glyphs and image settings.
const (
	DefaultExploredGlyph = '.'
	DefaultPathGlyph     = '*'
	DefaultCellSize      = 16
)

// Options configures Text and PNG.
type Options struct {
	ExploredGlyph byte
	PathGlyph     byte
	CellSize      int  // pixels per cell side in PNG
	Caption       bool // draw the length/directions line under the PNG grid

	// Start and Goal replace the grid's own 'S'/'G' cells when set.
	Start, Goal *gridgraph.Position
}

// Option represents a functional option for rendering.
type Option func(*Options)

// WithExploredGlyph sets the glyph for explored, off-path cells.
func WithExploredGlyph(b byte) Option {
	return func(o *Options) { o.ExploredGlyph = b }
}

// WithPathGlyph sets the glyph for path cells.
func WithPathGlyph(b byte) Option {
	return func(o *Options) { o.PathGlyph = b }
}

// WithCellSize sets the PNG cell size in pixels. Non-positive values panic with ErrBadCellSize.
func WithCellSize(px int) Option {
	if px <= 0 {
		panic(ErrBadCellSize.Error())
	}

	return func(o *Options) { o.CellSize = px }
}

// WithEndpoints marks start and goal as the endpoints to draw, matching a
// search run with dijkstra.WithStart and dijkstra.WithGoal. The grid's own
// 'S' and 'G' cells are then drawn as open cells.
func WithEndpoints(start, goal gridgraph.Position) Option {
	return func(o *Options) {
		o.Start, o.Goal = &start, &goal
	}
}

// WithoutCaption suppresses the caption line in PNG output.
func WithoutCaption() Option {
	return func(o *Options) { o.Caption = false }
}

// DefaultOptions returns '.' and '*' glyphs, 16px cells and a caption.
func DefaultOptions() Options {
	return Options{
		ExploredGlyph: DefaultExploredGlyph,
		PathGlyph:     DefaultPathGlyph,
		CellSize:      DefaultCellSize,
		Caption:       true,
	}
}

// endpoints resolves the cells drawn as start and goal: the overrides when
// set, otherwise the grid's own markers.
func (o Options) endpoints(g *gridgraph.GridGraph) (start gridgraph.Position, hasStart bool, goal gridgraph.Position, hasGoal bool) {
	start, hasStart = g.Start()
	if o.Start != nil {
		start, hasStart = *o.Start, true
	}
	goal, hasGoal = g.Goal()
	if o.Goal != nil {
		goal, hasGoal = *o.Goal, true
	}

	return start, hasStart && g.InBounds(start), goal, hasGoal && g.InBounds(goal)
}

func apply(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
