// Package gridgraph treats a rectangular grid of cell markers as an implicit,
// unweighted graph, the input side of grid path finding.
//
// What:
//
//   - GridGraph wraps rows such as "00S1" into an immutable store of Markers:
//     '0' open, '1' blocked, 'S' start, 'G' goal.
//   - Locates the single start and goal cells during construction.
//   - Enumerates orthogonal neighbors (North, South, West, East) of a cell.
//   - Groups traversable cells into connected components.
//   - Computes the fewest blocked cells that would have to be cleared to connect
//     two cells (0-1 BFS), which explains "no path" outcomes.
//
// Why:
//
//   - Maze and level solving, robot route planning on occupancy grids,
//     reachability diagnostics for game maps.
//
// Complexity:
//
//   - FromRows:            O(R×C), Memory: O(R×C).
//   - Neighbors:           O(1).
//   - ConnectedComponents: O(R×C), Memory: O(R×C).
//   - MinBreach:           O(R×C), Memory: O(R×C).
//
// Input policy:
//
//   - Empty input or an empty first row: ErrEmptyGrid.
//   - Rows of differing lengths: ErrNonRectangular.
//   - Characters outside {0,1,S,G}: ErrInvalidMarker.
//   - More than one 'S' or more than one 'G': ErrDuplicateMarker.
//   - A missing 'S' or 'G' is not a construction error; Start and Goal report
//     it through their boolean result so callers can check before searching.
package gridgraph
