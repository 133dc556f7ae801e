package gridgraph

// ConnectedComponents finds all contiguous regions of traversable cells
// (anything but Blocked) under 4-connectivity.
// Components are returned in row-major order of their first cell; cells within
// a component are listed in BFS discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Position {
	seen := make([]bool, gg.rows*gg.cols)
	var comps [][]Position

	for r := 0; r < gg.rows; r++ {
		for c := 0; c < gg.cols; c++ {
			p := Position{Row: r, Col: c}
			if !gg.Traversable(p) || seen[gg.index(p)] {
				continue // wall or already labelled
			}
			comps = append(comps, gg.flood(p, seen))
		}
	}

	return comps
}

// ComponentOf returns the index (as in ConnectedComponents) of the component
// containing p, or -1 if p is out of bounds or blocked.
func (gg *GridGraph) ComponentOf(p Position) int {
	if !gg.Traversable(p) {
		return -1
	}
	for k, comp := range gg.ConnectedComponents() {
		for _, q := range comp {
			if q == p {
				return k
			}
		}
	}

	return -1
}

// Connected reports whether a and b lie in the same traversable component.
func (gg *GridGraph) Connected(a, b Position) bool {
	if !gg.Traversable(a) || !gg.Traversable(b) {
		return false
	}
	for _, q := range gg.flood(a, make([]bool, gg.rows*gg.cols)) {
		if q == b {
			return true
		}
	}

	return false
}

// flood collects the cells reachable from p in breadth-first discovery order,
// marking each one in seen.
func (gg *GridGraph) flood(p Position, seen []bool) []Position {
	seen[gg.index(p)] = true
	queue := []Position{p}
	for qi := 0; qi < len(queue); qi++ {
		for _, q := range gg.Neighbors(queue[qi]) {
			if i := gg.index(q); !seen[i] {
				seen[i] = true
				queue = append(queue, q)
			}
		}
	}

	return queue
}
