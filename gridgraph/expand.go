package gridgraph

import (
	"container/list"
	"fmt"
)

// MinBreach finds a path from one cell to another that crosses the fewest
// Blocked cells. Each wall on the path costs 1; every other step is free.
// Returns the sequence of positions (including from and to) and the number
// of walls that would have to be cleared. A cost of 0 means the cells are
// already connected.
//
// Behavior:
//  1. Validate that both positions are in bounds.
//  2. 0-1 BFS from `from`:
//     • Moving into a traversable cell → cost 0 (pushed at the front)
//     • Moving into a wall             → cost 1 (pushed at the back)
//  3. Stop when `to` is dequeued.
//  4. Reconstruct the path via predecessor indices.
//
// Complexity: O(R·C) time, O(R·C) memory for distance and prev arrays.
func (gg *GridGraph) MinBreach(from, to Position) (path []Position, cost int, err error) {
	if !gg.InBounds(from) {
		return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}
	if !gg.InBounds(to) {
		return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, to)
	}

	n := gg.rows * gg.cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost 0 at front, cost 1 at back
	dq := list.New()
	src, dst := gg.index(from), gg.index(to)
	dist[src] = 0
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		up := gg.Coordinate(u)
		for _, d := range neighborOffsets {
			vp := up.Add(d[0], d[1])
			if !gg.InBounds(vp) {
				continue
			}
			v := gg.index(vp)
			step := 0
			if gg.At(vp) == Blocked {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct path
	for at := dst; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}
