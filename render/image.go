package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Palette used by PNG.
var (
	ColorOpen     = color.RGBA{255, 255, 255, 255}
	ColorBlocked  = color.RGBA{51, 51, 51, 255}
	ColorExplored = color.RGBA{173, 216, 230, 255}
	ColorPath     = color.RGBA{255, 200, 0, 255}
	ColorStart    = color.RGBA{0, 170, 0, 255}
	ColorGoal     = color.RGBA{0, 0, 255, 255}
	ColorText     = color.RGBA{0, 0, 0, 255}
)

// captionHeight fits one line of basicfont.Face7x13 plus padding.
const captionHeight = 18

// PNG draws g as an image: one CellSize×CellSize square per cell, tinted by
// marker, explored and path membership, with start and goal as circles (see
// WithEndpoints). Unless
// WithoutCaption is given, a line with the path length and directions is
// drawn beneath the grid.
func PNG(w io.Writer, g *gridgraph.GridGraph, path, explored []gridgraph.Position, opts ...Option) error {
	cfg := apply(opts)
	size := cfg.CellSize
	caption := ""
	if cfg.Caption {
		var err error
		if caption, err = Caption(path); err != nil {
			return err
		}
	}

	width, height := g.Cols()*size, g.Rows()*size
	canvasH := height
	if cfg.Caption {
		canvasH += captionHeight
	}
	dc := gg.NewContext(width, canvasH)
	dc.SetFontFace(basicfont.Face7x13)
	if cfg.Caption {
		// Widen the canvas if the caption does not fit under the grid.
		if tw, _ := dc.MeasureString(caption); int(tw)+8 > width {
			width = int(tw) + 8
			dc = gg.NewContext(width, canvasH)
			dc.SetFontFace(basicfont.Face7x13)
		}
	}
	dc.SetColor(ColorOpen)
	dc.Clear()

	fill := func(p gridgraph.Position, c color.Color) {
		if !g.InBounds(p) {
			return
		}
		dc.SetColor(c)
		dc.DrawRectangle(float64(p.Col*size), float64(p.Row*size), float64(size), float64(size))
		dc.Fill()
	}

	// Walls, then explored cells, then the path on top.
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := gridgraph.Position{Row: r, Col: c}
			if g.At(p) == gridgraph.Blocked {
				fill(p, ColorBlocked)
			}
		}
	}
	for _, p := range explored {
		fill(p, ColorExplored)
	}
	for _, p := range path {
		fill(p, ColorPath)
	}

	circle := func(p gridgraph.Position, ok bool, c color.Color) {
		if !ok {
			return
		}
		half := float64(size) / 2
		dc.SetColor(c)
		dc.DrawCircle(float64(p.Col*size)+half, float64(p.Row*size)+half, half*0.8)
		dc.Fill()
	}
	start, hasStart, goal, hasGoal := cfg.endpoints(g)
	circle(goal, hasGoal, ColorGoal)
	circle(start, hasStart, ColorStart)

	if cfg.Caption {
		dc.SetColor(ColorText)
		dc.DrawString(caption, 4, float64(height+captionHeight-5))
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

// Caption summarises a path as "length N: DIRS", or "no path" when empty.
func Caption(path []gridgraph.Position) (string, error) {
	if len(path) == 0 {
		return "no path", nil
	}
	dirs, err := Directions(path)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("length %d: %s", len(path)-1, dirs), nil
}
