// Package dijkstra finds shortest paths between the start and goal cells of a
// gridgraph.GridGraph using Dijkstra's algorithm specialised to unit edge weights.
//
// Overview:
//
//   - Search pops cells from a min-priority frontier ordered by accumulated
//     distance (edge count), finalizes them into the explored set, and relaxes
//     their North, South, West and East neighbors.
//   - On unit-weight grids this explores cells in the same order as a
//     breadth-first search; the priority frontier keeps the procedure a true
//     Dijkstra so caps and hooks behave uniformly.
//   - Stale frontier entries (a cell already finalized through a shorter route)
//     are discarded when popped: a lazy decrease-key.
//   - The path is rebuilt from per-cell back-pointers once the goal is popped;
//     frontier entries never carry path copies.
//
// Tie-breaking:
//
//   - Entries with equal distance pop in insertion order. Combined with the
//     fixed N,S,W,E neighbor order this makes the returned path deterministic:
//     on "S0"/"0G" the route goes South first, then East.
//
// Results:
//
//   - Path:     start..goal inclusive, nil when the goal is unreachable.
//   - Explored: every finalized cell in finalization order, without duplicates.
//     Kept on failure too, since the reachable component is useful diagnostics.
//   - Distance: edge count of Path, or -1.
//   - Found:    whether Path is set.
//
// Complexity:
//
//   - Time:  O(E log E), E ≤ 4×cells frontier pushes.
//   - Space: O(cells) for distances, back-pointers, explored set and frontier.
//
// Options:
//
//   - WithStart(p), WithGoal(p): override the 'S' and 'G' cells; an
//     overridden endpoint is traversable even on a wall, and may coincide.
//   - WithMaxDistance(d): never expand cells farther than d steps.
//   - WithMaxSteps(n):    stop with ErrStepLimit after n finalizations.
//   - WithContext(ctx):   stop with ctx.Err() when the context is done.
//   - WithObserver(fn):   call fn for every finalized cell, in order.
//
// Errors (sentinel):
//
//   - ErrNilGrid:      grid pointer is nil.
//   - ErrMissingStart: grid has no 'S' cell; the search is not run.
//   - ErrMissingGoal:  grid has no 'G' cell; the search is not run.
//   - ErrEndpointOutOfBounds: WithStart or WithGoal lies outside the grid.
//   - ErrStepLimit:    WithMaxSteps bound was reached.
//
// An unreachable goal is not an error: Search returns Found=false with a nil error.
package dijkstra
