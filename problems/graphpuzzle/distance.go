package graphpuzzle

import (
	"math"

	"github.com/katalvlaran/lvsearch/fringe"
)

// distancesTo returns, for every vertex, the cheapest cost of reaching goal
// while ignoring conditions and other tokens (+Inf when goal is unreachable).
// It runs Dijkstra from goal over the reversed edges.
//
// Complexity: O((V + E) log V) with lazy decrease-key.
func distancesTo(c *compiled, goal uint8) []float64 {
	// reverse adjacency: in[v] lists (u, cost) for every edge u→v
	type inArc struct {
		from uint8
		cost float64
	}
	in := make([][]inArc, len(c.vertices))
	for u, out := range c.out {
		for _, a := range out {
			in[a.to] = append(in[a.to], inArc{from: uint8(u), cost: a.cost})
		}
	}

	dist := make([]float64, len(c.vertices))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	visited := make([]bool, len(c.vertices))
	pq := fringe.NewPriorityQueue[uint8]()

	dist[goal] = 0
	pq.Push(goal, 0)
	for {
		v, ok := pq.Pop()
		if !ok {
			break
		}
		// skip stale entries of already finalized vertices
		if visited[v] {
			continue
		}
		visited[v] = true

		for _, e := range in[v] {
			// strictly shorter only, so equal distances push no duplicates
			if nd := dist[v] + e.cost; nd < dist[e.from] {
				dist[e.from] = nd
				pq.Push(e.from, nd)
			}
		}
	}

	return dist
}
