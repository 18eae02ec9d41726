package search

import (
	"log/slog"

	"github.com/katalvlaran/lvsearch/fringe"
)

// AStarGraph is best-first graph search ordered by f(n) = g(n) + h(n), with
// a closed set of expanded states.
//
// A popped node whose state was already expanded is discarded (the fringe
// uses lazy deletion: the same state may sit in it several times). Successors
// whose state was already expanded are not generated; the others are
// goal-tested on generation and returned without expansion. Roots are
// goal-tested before they are pushed.
//
// With WithBestCost the search also keeps the best g seen per state:
//   - a popped node whose g is greater than its state's best g is stale and
//     discarded (equal-cost duplicates are still expanded);
//   - a successor becomes a node only if it is the first path to its state
//     or strictly cheaper than the best known one; the best g is updated on
//     the spot.
//
// WithReopen (best-cost mode only) drops the closed-set filter for strictly
// cheaper paths, so a state may be expanded again; this keeps A* optimal
// for admissible but inconsistent heuristics at the price of the
// at-most-once expansion guarantee.
//
// Without re-opening every state is expanded at most once; the returned
// path is optimal when h is consistent.
type AStarGraph[S comparable, A any] struct {
	problem Problem[S, A]
	opts    Options
	name    string // registry alias, empty for the plain strategy
}

// NewAStarGraph binds A* graph search to p.
func NewAStarGraph[S comparable, A any](p Problem[S, A], opts ...Option) (*AStarGraph[S, A], error) {
	o, err := newBase(p, opts)
	if err != nil {
		return nil, err
	}

	return &AStarGraph[S, A]{problem: p, opts: o}, nil
}

// Name returns "astar-graph", or "astar-graph-best" with best-cost pruning.
func (g *AStarGraph[S, A]) Name() string {
	if g.name != "" {
		return g.name
	}
	if g.opts.BestCost {
		return AlgAStarGraphBest
	}

	return AlgAStarGraph
}

// Run executes the search with heuristic h.
// Returns ErrNilHeuristic when h is nil.
func (g *AStarGraph[S, A]) Run(h Heuristic[S]) (*Solution[S, A], error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}
	w := &graphWalker[S, A]{
		runner:   newRunner(g.Name(), g.problem, g.opts),
		h:        h,
		pq:       fringe.NewPriorityQueue[*Node[S, A]](),
		expanded: make(map[S]float64),
		reopen:   g.opts.Reopen,
	}
	if g.opts.BestCost {
		w.best = make(map[S]float64)
	}

	return w.run(), nil
}

// graphWalker is the mutable state of one A* graph run.
type graphWalker[S comparable, A any] struct {
	*runner[S, A]
	h        Heuristic[S]
	pq       *fringe.PriorityQueue[*Node[S, A]]
	expanded map[S]float64 // state → g at its last expansion
	best     map[S]float64 // nil unless best-cost pruning is on
	reopen   bool
}

// run seeds the fringe and processes it until a goal or exhaustion.
func (w *graphWalker[S, A]) run() *Solution[S, A] {
	roots := w.seed()
	w.log.Debug("search started",
		slog.Int("roots", len(roots)),
		slog.Bool("best_cost", w.best != nil),
		slog.Bool("reopen", w.reopen),
	)
	for _, n := range roots {
		if w.problem.IsGoal(n.state) {
			return w.finish(n, false)
		}
		if w.best != nil {
			if b, ok := w.best[n.state]; !ok || n.cost < b {
				w.best[n.state] = n.cost
			}
		}
		w.pq.Push(n, n.cost+w.h(n.state))
	}
	w.observe(w.pq.Len())

	for {
		n, ok := w.pq.Pop()
		if !ok {
			return w.finish(nil, false)
		}
		if w.discard(n) {
			w.stats.Skipped++
			continue
		}
		if w.budgetSpent() {
			return w.finish(nil, true)
		}
		w.expand(n)
		w.expanded[n.state] = n.cost

		if goal := w.generate(n); goal != nil {
			return w.finish(goal, false)
		}
		w.observe(w.pq.Len())
	}
}

// discard reports whether popped node n must be dropped unexpanded.
func (w *graphWalker[S, A]) discard(n *Node[S, A]) bool {
	if g, done := w.expanded[n.state]; done {
		if !w.reopen || g <= n.cost {
			return true
		}
	}
	if w.best != nil && n.cost > w.best[n.state] {
		return true // stale: a cheaper entry for this state exists
	}

	return false
}

// generate creates and pushes the admissible successors of n and returns the
// first generated goal, if any.
func (w *graphWalker[S, A]) generate(n *Node[S, A]) *Node[S, A] {
	for _, sc := range w.successors(n.state) {
		cost := n.cost + sc.Cost
		if _, done := w.expanded[sc.State]; done && !w.reopen {
			w.stats.Pruned++
			continue
		}
		if w.best != nil {
			if b, seen := w.best[sc.State]; seen && cost >= b {
				w.stats.Pruned++
				continue
			}
			w.best[sc.State] = cost
		}

		c := w.child(n, sc)
		if w.problem.IsGoal(c.state) {
			return c
		}
		w.pq.Push(c, c.cost+w.h(c.state))
	}

	return nil
}
