package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

func (a *app) solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find the shortest path from S to G and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runSolve,
	}
	f := cmd.Flags()
	f.String(keyPNG, "", "also write a PNG rendering to this file")
	f.Int(keyCellSize, render.DefaultCellSize, "PNG cell size in pixels")
	f.Int(keyMaxSteps, 0, "stop after finalizing this many cells (0 = no limit)")
	f.Duration(keyTimeout, 0, "abort the search after this long (0 = no limit)")
	f.String(keyExploredGlyph, string(rune(render.DefaultExploredGlyph)), "glyph for explored cells")
	f.String(keyPathGlyph, string(rune(render.DefaultPathGlyph)), "glyph for path cells")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	g, err := loadGrid(cmd, args)
	if err != nil {
		return err
	}
	a.log.Info("grid parsed", "rows", g.Rows(), "cols", g.Cols())

	opts, cancel, err := a.searchOptions()
	if err != nil {
		return err
	}
	defer cancel()

	began := time.Now()
	res, err := dijkstra.Search(g, opts...)
	if err != nil {
		return err
	}
	a.log.Info("search finished",
		"found", res.Found,
		"distance", res.Distance,
		"explored", len(res.Explored),
		"elapsed", time.Since(began))

	renderOpts, err := a.renderOptions()
	if err != nil {
		return err
	}
	if err = report(cmd.OutOrStdout(), g, res, renderOpts); err != nil {
		return err
	}

	if file := a.v.GetString(keyPNG); file != "" {
		if err = writePNG(file, g, res, append(renderOpts, render.WithCellSize(a.v.GetInt(keyCellSize)))); err != nil {
			return err
		}
		a.log.Info("png written", "file", file)
	}

	return nil
}

// searchOptions translates configuration into dijkstra options. The returned
// cancel func must always be called.
func (a *app) searchOptions() ([]dijkstra.Option, context.CancelFunc, error) {
	var opts []dijkstra.Option
	if n := a.v.GetInt(keyMaxSteps); n > 0 {
		opts = append(opts, dijkstra.WithMaxSteps(n))
	} else if n < 0 {
		return nil, nil, fmt.Errorf("%s must not be negative", keyMaxSteps)
	}

	ctx, cancel := context.Background(), context.CancelFunc(func() {})
	if d := a.v.GetDuration(keyTimeout); d > 0 {
		ctx, cancel = context.WithTimeout(ctx, d)
	}
	opts = append(opts, dijkstra.WithContext(ctx))

	return opts, cancel, nil
}

func (a *app) renderOptions() ([]render.Option, error) {
	explored, err := glyph(a.v.GetString(keyExploredGlyph), keyExploredGlyph)
	if err != nil {
		return nil, err
	}
	path, err := glyph(a.v.GetString(keyPathGlyph), keyPathGlyph)
	if err != nil {
		return nil, err
	}
	if a.v.GetInt(keyCellSize) <= 0 {
		return nil, fmt.Errorf("%s must be positive", keyCellSize)
	}

	return []render.Option{render.WithExploredGlyph(explored), render.WithPathGlyph(path)}, nil
}

func glyph(s, key string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%s must be a single ASCII character, got %q", key, s)
	}

	return s[0], nil
}

// report prints the outcome in the same shape for found and missing paths.
func report(w io.Writer, g *gridgraph.GridGraph, res dijkstra.Result, opts []render.Option) error {
	if !res.Found {
		fmt.Fprintln(w, "No path found!")
		start, _ := g.Start()
		goal, _ := g.Goal()
		if _, walls, err := g.MinBreach(start, goal); err == nil {
			fmt.Fprintf(w, "Walls to clear: %d\n", walls)
		}
		fmt.Fprintf(w, "Explored: %d cells\n", len(res.Explored))
		for _, row := range render.Text(g, nil, res.Explored, opts...) {
			fmt.Fprintln(w, row)
		}

		return nil
	}

	dirs, err := render.Directions(res.Path)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Path found! Length:", res.Distance)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Visualization:")
	for _, row := range render.Text(g, res.Path, res.Explored, opts...) {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directions:", dirs)

	return nil
}

func writePNG(file string, g *gridgraph.GridGraph, res dijkstra.Result, opts []render.Option) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err = render.PNG(f, g, res.Path, res.Explored, opts...); err != nil {
		// Close first: Windows refuses to remove an open file.
		return errors.Join(err, f.Close(), os.Remove(file))
	}

	return f.Close()
}
