// Package dijkstra implements uniform-cost shortest-path search on grids.
package dijkstra

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search computes a shortest path from the grid's start cell to its goal cell,
// or between the cells given by WithStart and WithGoal.
//
// Returns:
//
//   - Result with Path, Explored, Distance and Found (see package docs).
//   - err: ErrNilGrid, ErrMissingStart, ErrMissingGoal or
//     ErrEndpointOutOfBounds before any work is
//     done (Result has Distance -1 and no explored cells); ErrStepLimit or a
//     wrapped context error mid-search (Result holds the partial explored set).
//
// An unreachable goal returns Found=false and a nil error.
//
// Complexity:
//
//   - Time:  O(E log E), E = frontier pushes ≤ 4×cells
//   - Space: O(cells)
func Search(g *gridgraph.GridGraph, opts ...Option) (Result, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return Result{Distance: -1}, err
	}
	if !r.hasGoal {
		return Result{Distance: -1}, ErrMissingGoal
	}
	err = r.process()

	res := Result{Explored: r.order, Distance: -1}
	if r.reached {
		res.Path = r.path(r.goal)
		res.Distance = r.dist[r.goal]
		res.Found = true
	}

	return res, err
}

// Distances runs the search from the start cell without stopping at the goal
// and returns the edge count to every reachable cell. The grid need not have
// a goal. WithMaxDistance limits the radius; the other options apply as in Search.
func Distances(g *gridgraph.GridGraph, opts ...Option) (map[gridgraph.Position]int, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, err
	}
	r.hasGoal = false
	if err = r.process(); err != nil {
		return nil, err
	}
	// Tentative entries beyond MaxDistance were never finalized; leave them out.
	out := make(map[gridgraph.Position]int, len(r.order))
	for _, p := range r.order {
		out[p] = r.dist[p]
	}

	return out, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *gridgraph.GridGraph
	options  Options
	start    gridgraph.Position
	goal     gridgraph.Position
	hasGoal  bool
	reached  bool
	dist     map[gridgraph.Position]int                // best known distance
	prev     map[gridgraph.Position]gridgraph.Position // back-pointer on that route
	explored mapset.Set[gridgraph.Position]            // finalized cells
	order    []gridgraph.Position                      // finalized cells, pop order
	pq       *heap.Heap[frontierItem]
	seq      uint64
}

// newRunner applies options, resolves the endpoints and seeds the frontier
// with the start cell at distance 0.
func newRunner(g *gridgraph.GridGraph, opts []Option) (*runner, error) {
	// 1) Validate the grid and apply options.
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}

	// 2) Allocate per-call state sized for the whole grid.
	cells := g.Rows() * g.Cols()
	r := &runner{
		g:        g,
		options:  cfg,
		dist:     make(map[gridgraph.Position]int, cells),
		prev:     make(map[gridgraph.Position]gridgraph.Position, cells),
		explored: mapset.New[gridgraph.Position](),
		pq:       heap.New[frontierItem](frontierLess),
	}

	// 3) Resolve endpoints: overrides first, then the grid's markers.
	var ok bool
	if cfg.Start != nil {
		r.start, ok = *cfg.Start, true
	} else {
		r.start, ok = g.Start()
	}
	if !ok {
		return nil, ErrMissingStart
	}
	if !g.InBounds(r.start) {
		return nil, fmt.Errorf("%w: start %v", ErrEndpointOutOfBounds, r.start)
	}
	if cfg.Goal != nil {
		r.goal, r.hasGoal = *cfg.Goal, true
	} else {
		r.goal, r.hasGoal = g.Goal()
	}
	if r.hasGoal && !g.InBounds(r.goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrEndpointOutOfBounds, r.goal)
	}

	// 4) Seed the frontier with the start cell.
	r.dist[r.start] = 0
	r.push(r.start, 0)

	return r, nil
}

// process is the main loop. It stops when the frontier is empty, the goal is
// finalized, the next distance exceeds MaxDistance, or a guard trips.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Size() > 0 {
		// 1) Honor cancellation once per pop.
		if err := cfg.Ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: search interrupted: %w", err)
		}

		// 2) Pop the nearest entry; skip it if stale (u was finalized through
		// a route no longer than d).
		item, _ := r.pq.Pop()
		u, d := item.pos, item.dist
		if r.explored.Has(u) {
			continue
		}

		// 3) Everything left in the frontier is at least as far; stop.
		if d > cfg.MaxDistance {
			break
		}

		// 4) Finalize u unless the step budget is spent.
		if r.explored.Size() >= cfg.MaxSteps {
			return fmt.Errorf("%w: %d cells finalized", ErrStepLimit, r.explored.Size())
		}

		r.explored.Put(u)
		r.order = append(r.order, u)
		if cfg.OnVisit != nil {
			cfg.OnVisit(u)
		}

		// 5) Stop at the goal, otherwise relax u's neighbors.
		if r.hasGoal && u == r.goal {
			r.reached = true
			return nil
		}
		r.relax(u, d)
	}

	return nil
}

// relax examines the traversable neighbors of u and records every strictly
// shorter route it finds.
func (r *runner) relax(u gridgraph.Position, d int) {
	newDist := d + 1
	if newDist > r.options.MaxDistance {
		return
	}
	for _, v := range r.neighbors(u) {
		if best, seen := r.dist[v]; seen && newDist >= best {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}
}

// neighbors returns the grid neighbors of u in N,S,W,E order. A goal placed
// on a wall through WithGoal is included in its compass slot when adjacent.
func (r *runner) neighbors(u gridgraph.Position) []gridgraph.Position {
	if !r.hasGoal || r.g.Traversable(r.goal) || u.Manhattan(r.goal) != 1 {
		return r.g.Neighbors(u)
	}
	adj := r.g.Adjacent(u)
	ns := adj[:0]
	for _, v := range adj {
		if v == r.goal || r.g.Traversable(v) {
			ns = append(ns, v)
		}
	}

	return ns
}

// push inserts a frontier entry stamped with the next insertion sequence number.
func (r *runner) push(p gridgraph.Position, d int) {
	r.pq.Push(frontierItem{pos: p, dist: d, seq: r.seq})
	r.seq++
}

// path walks back-pointers from target to the start cell.
func (r *runner) path(target gridgraph.Position) []gridgraph.Position {
	out := []gridgraph.Position{target}
	for at := target; at != r.start; {
		at = r.prev[at]
		out = append(out, at)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// frontierItem is a candidate cell with its accumulated distance.
// seq orders equal distances by insertion.
type frontierItem struct {
	pos  gridgraph.Position
	dist int
	seq  uint64
}

// frontierLess orders by distance, then insertion sequence.
func frontierLess(a, b frontierItem) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.seq < b.seq
}
