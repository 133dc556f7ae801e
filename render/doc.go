// Package render turns search results into something a person can read:
// a character grid, a compass direction string, or a PNG image.
//
// All functions consume a gridgraph.GridGraph together with a path and an
// explored list (as produced by dijkstra.Search) and never modify them.
//
// Text glyphs:
//
//   - '.' explored cell that is not on the path
//   - '*' path cell other than start and goal
//   - 'S', 'G', '0', '1' as in the input
//
// Directions emit one letter per step: N (row-1), S (row+1), W (col-1), E (col+1).
package render
