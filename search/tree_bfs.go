package search

import (
	"log/slog"

	"github.com/katalvlaran/lvsearch/fringe"
)

// TreeBFS is breadth-first tree search.
//
// Roots are goal-tested before they enter the FIFO fringe; every other node
// is goal-tested when it is generated, so a goal is returned without ever
// being expanded. There is no duplicate detection: each path is a distinct
// branch, which makes the search exponential on graphs with cycles.
type TreeBFS[S comparable, A any] struct {
	problem Problem[S, A]
	opts    Options
}

// NewTreeBFS binds breadth-first tree search to p.
// Returns ErrNilProblem, ErrNoStartStates or ErrOptionViolation.
func NewTreeBFS[S comparable, A any](p Problem[S, A], opts ...Option) (*TreeBFS[S, A], error) {
	o, err := newBase(p, opts)
	if err != nil {
		return nil, err
	}

	return &TreeBFS[S, A]{problem: p, opts: o}, nil
}

// Name returns "tree-bfs".
func (b *TreeBFS[S, A]) Name() string { return AlgTreeBFS }

// Run executes the search. The heuristic is ignored.
func (b *TreeBFS[S, A]) Run(_ Heuristic[S]) (*Solution[S, A], error) {
	r := newRunner(b.Name(), b.problem, b.opts)
	queue := fringe.NewQueue[*Node[S, A]]()

	roots := r.seed()
	r.log.Debug("search started", slog.Int("roots", len(roots)))
	for _, n := range roots {
		if r.problem.IsGoal(n.state) {
			return r.finish(n, false), nil
		}
		queue.Push(n)
	}
	r.observe(queue.Len())

	for {
		n, ok := queue.Pop()
		if !ok {
			break
		}
		if r.budgetSpent() {
			return r.finish(nil, true), nil
		}
		r.expand(n)
		for _, sc := range r.successors(n.state) {
			c := r.child(n, sc)
			if r.problem.IsGoal(c.state) {
				return r.finish(c, false), nil
			}
			queue.Push(c)
		}
		r.observe(queue.Len())
	}

	return r.finish(nil, false), nil
}
