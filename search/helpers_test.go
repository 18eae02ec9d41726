package search_test

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// edge is one weighted arc of a test graph.
type edge struct {
	to   string
	cost float64
}

// graphProblem is a Problem over string vertices with explicit arcs.
// Successors are returned in reverse insertion order on purpose, so tests
// exercise the strategies' own sorting.
type graphProblem struct {
	starts []string
	goals  map[string]bool
	arcs   map[string][]edge
}

func newGraphProblem(starts []string, goals ...string) *graphProblem {
	g := &graphProblem{starts: starts, goals: map[string]bool{}, arcs: map[string][]edge{}}
	for _, v := range goals {
		g.goals[v] = true
	}

	return g
}

func (g *graphProblem) arc(from, to string, cost float64) *graphProblem {
	g.arcs[from] = append(g.arcs[from], edge{to: to, cost: cost})
	return g
}

func (g *graphProblem) StartStates() []string { return g.starts }

func (g *graphProblem) IsGoal(s string) bool { return g.goals[s] }

func (g *graphProblem) Successors(s string) []search.Successor[string, string] {
	arcs := g.arcs[s]
	out := make([]search.Successor[string, string], 0, len(arcs))
	for i := len(arcs) - 1; i >= 0; i-- {
		out = append(out, search.Successor[string, string]{
			State:  arcs[i].to,
			Action: s + "->" + arcs[i].to,
			Cost:   arcs[i].cost,
		})
	}

	return out
}

func (g *graphProblem) Compare(a, b string) int { return strings.Compare(a, b) }

// randomGraph builds a reproducible graph with n vertices v00..v(n-1),
// a guaranteed path from v00 to the goal v(n-1), and extra random arcs with
// costs in [1, maxCost].
func randomGraph(seed int64, n, extra, maxCost int) *graphProblem {
	r := rand.New(rand.NewSource(seed))
	name := func(i int) string { return fmt.Sprintf("v%02d", i) }
	g := newGraphProblem([]string{name(0)}, name(n-1))
	for i := 1; i < n; i++ {
		g.arc(name(i-1), name(i), float64(1+r.Intn(maxCost)))
	}
	for i := 0; i < extra; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		g.arc(name(u), name(v), float64(1+r.Intn(maxCost)))
	}

	return g
}

// distances returns the exact cost-to-goal of every vertex (Bellman-Ford on
// the arcs), +Inf for vertices that cannot reach a goal.
func distances(g *graphProblem) map[string]float64 {
	d := map[string]float64{}
	vertices := map[string]bool{}
	for u, arcs := range g.arcs {
		vertices[u] = true
		for _, a := range arcs {
			vertices[a.to] = true
		}
	}
	for v := range vertices {
		d[v] = math.Inf(1)
		if g.goals[v] {
			d[v] = 0
		}
	}
	for i := 0; i < len(vertices); i++ {
		for u, arcs := range g.arcs {
			for _, a := range arcs {
				if d[a.to]+a.cost < d[u] {
					d[u] = d[a.to] + a.cost
				}
			}
		}
	}

	return d
}

// consistentHeuristic scales the exact distance by factor (≤ 1), which keeps
// it consistent. Dead ends get a large constant.
func consistentHeuristic(g *graphProblem, factor float64) search.Heuristic[string] {
	d := distances(g)
	return func(s string) float64 {
		v, ok := d[s]
		if !ok || math.IsInf(v, 1) {
			return 1e6
		}
		return factor * v
	}
}

// bruteForceOptimum enumerates every simple path from the start states and
// returns the cheapest cost reaching a goal (+Inf if none).
func bruteForceOptimum(g *graphProblem) float64 {
	best := math.Inf(1)
	onPath := map[string]bool{}
	var walk func(v string, cost float64)
	walk = func(v string, cost float64) {
		if g.goals[v] {
			best = math.Min(best, cost)
			return
		}
		onPath[v] = true
		for _, a := range g.arcs[v] {
			if !onPath[a.to] {
				walk(a.to, cost+a.cost)
			}
		}
		onPath[v] = false
	}
	for _, s := range g.starts {
		walk(s, 0)
	}

	return best
}

// maxArcCost returns the largest arc cost of g.
func maxArcCost(g *graphProblem) float64 {
	m := 0.0
	for _, arcs := range g.arcs {
		for _, a := range arcs {
			m = math.Max(m, a.cost)
		}
	}

	return m
}

// expandedStates lists the states of sol's expanded nodes in expand order.
func expandedStates[S comparable, A any](sol *search.Solution[S, A]) []S {
	nodes := sol.Expanded()
	out := make([]S, len(nodes))
	for i, n := range nodes {
		out[i] = n.State()
	}

	return out
}

// run builds the named strategy and runs it, failing loudly on error.
func run(name string, p search.Problem[string, string], h search.Heuristic[string], opts ...search.Option) (*search.Solution[string, string], error) {
	strat, err := search.New(name, p, opts...)
	if err != nil {
		return nil, err
	}

	return strat.Run(h)
}
