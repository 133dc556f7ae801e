// Package gridpath finds shortest routes through 2D mazes written as rows of
// '0' (open), '1' (wall), 'S' (start) and 'G' (goal).
//
// What is in the box?
//
//   - gridgraph/: parse rows into an immutable grid, locate S and G, enumerate
//     N/S/W/E neighbors, connected regions, fewest-walls breach planning
//   - dijkstra/: uniform-cost priority search returning the path and every
//     explored cell, with distance caps, step limits, context and visit hooks
//   - render/: text overlay ('.' explored, '*' path), compass directions,
//     PNG images
//   - cmd/gridpath: command line front end
//
// Quick example:
//
//	S1G
//	010     → length 6, directions SSEENN
//	000
//
// Searches are synchronous and keep no state between calls; a GridGraph may be
// shared by any number of goroutines.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
