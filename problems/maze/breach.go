package maze

import (
	"container/list"
)

// MinBreaches finds a route from a to b that crosses the fewest walls and
// returns it (both ends included) together with the number of walls crossed.
// Entering an open cell costs 0, entering a wall costs 1. When b is
// Reachable from a the count is 0.
//
// Behavior:
//  1. 0-1 BFS from a: cost-0 moves go to the front of the deque, cost-1 moves
//     to the back.
//  2. Stop when b is popped.
//  3. Reconstruct the route via predecessors.
//
// Returns ErrOutOfBounds if a or b lies outside the grid.
// Complexity: O(W·H·d). Memory: O(W·H).
func (g *Grid) MinBreaches(a, b Cell) (path []Cell, walls int, err error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil, 0, ErrOutOfBounds
	}

	n := g.Width * g.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.index(a), g.index(b)
	dist[src] = 0
	if !g.Open(a) {
		dist[src] = 1
	}
	dq := list.New()
	dq.PushFront(src)

	// every in-bounds cell is reachable once walls may be crossed
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		uc := g.CellAt(u)
		for _, m := range g.moves {
			vc := Cell{X: uc.X + m.dx, Y: uc.Y + m.dy}
			if !g.InBounds(vc) {
				continue
			}
			v := g.index(vc)
			step := 0
			if !g.Open(vc) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
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

	for at := dst; at >= 0; at = prev[at] {
		path = append(path, g.CellAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}
