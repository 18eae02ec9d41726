package search

import (
	"log/slog"

	"github.com/katalvlaran/lvsearch/fringe"
)

// AStarTree is best-first tree search ordered by f(n) = g(n) + h(n).
//
// Roots are goal-tested before they are pushed. Every other node is
// goal-tested when it is popped and expanded, not when it is generated:
// with varying edge costs a generated goal may still be beaten by a cheaper
// path sitting deeper in the fringe. Successors are pushed unconditionally;
// the same state reached along different paths yields distinct nodes.
//
// Optimal when h is admissible.
type AStarTree[S comparable, A any] struct {
	problem Problem[S, A]
	opts    Options
}

// NewAStarTree binds A* tree search to p.
func NewAStarTree[S comparable, A any](p Problem[S, A], opts ...Option) (*AStarTree[S, A], error) {
	o, err := newBase(p, opts)
	if err != nil {
		return nil, err
	}

	return &AStarTree[S, A]{problem: p, opts: o}, nil
}

// Name returns "astar-tree".
func (t *AStarTree[S, A]) Name() string { return AlgAStarTree }

// Run executes the search with heuristic h.
// Returns ErrNilHeuristic when h is nil.
func (t *AStarTree[S, A]) Run(h Heuristic[S]) (*Solution[S, A], error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}
	r := newRunner(t.Name(), t.problem, t.opts)
	pq := fringe.NewPriorityQueue[*Node[S, A]]()

	roots := r.seed()
	r.log.Debug("search started", slog.Int("roots", len(roots)))
	for _, n := range roots {
		if r.problem.IsGoal(n.state) {
			return r.finish(n, false), nil
		}
		pq.Push(n, n.cost+h(n.state))
	}
	r.observe(pq.Len())

	for {
		n, ok := pq.Pop()
		if !ok {
			break
		}
		if r.budgetSpent() {
			return r.finish(nil, true), nil
		}
		r.expand(n)
		if r.problem.IsGoal(n.state) {
			return r.finish(n, false), nil
		}
		for _, sc := range r.successors(n.state) {
			c := r.child(n, sc)
			pq.Push(c, c.cost+h(c.state))
		}
		r.observe(pq.Len())
	}

	return r.finish(nil, false), nil
}
