package search

import (
	"log/slog"

	"github.com/katalvlaran/lvsearch/fringe"
)

// IDS is iterative-deepening depth-first tree search.
//
// Pass k runs a depth-limited DFS with limit k on a fresh stack and a fresh
// forest: nodes at depth ≥ k are cut off instead of expanded, every other
// node is expanded and its successors are goal-tested as they are generated.
// A pass that cuts nothing off has exhausted the space, and the run fails
// with Cutoff == false. Otherwise the limit grows by one and everything is
// rebuilt; no information is carried between passes except statistics.
//
// With unit edge costs the first goal found is a shallowest one.
type IDS[S comparable, A any] struct {
	problem Problem[S, A]
	opts    Options
}

// NewIDS binds iterative deepening to p.
// WithMaxDepth bounds the limit; by default it is unbounded.
func NewIDS[S comparable, A any](p Problem[S, A], opts ...Option) (*IDS[S, A], error) {
	o, err := newBase(p, opts)
	if err != nil {
		return nil, err
	}

	return &IDS[S, A]{problem: p, opts: o}, nil
}

// Name returns "ids".
func (d *IDS[S, A]) Name() string { return AlgIDS }

// Run executes the passes. The heuristic is ignored.
func (d *IDS[S, A]) Run(_ Heuristic[S]) (*Solution[S, A], error) {
	r := newRunner(d.Name(), d.problem, d.opts)
	r.stats.Iterations = 0

	for limit := 0; ; limit++ {
		r.stats.Iterations++
		r.stats.DepthLimit = limit

		goal, cutoff, spent := d.pass(r, limit)
		r.log.Debug("depth pass done",
			slog.Int("limit", limit),
			slog.Bool("cutoff", cutoff),
			slog.Int("expanded", r.counter),
		)
		switch {
		case goal != nil:
			return r.finish(goal, cutoff), nil
		case spent:
			return r.finish(nil, true), nil
		case !cutoff:
			// nothing was cut off: the whole reachable space was searched
			return r.finish(nil, false), nil
		case d.opts.MaxDepth > 0 && limit >= d.opts.MaxDepth:
			return r.finish(nil, true), nil
		}
	}
}

// pass runs one depth-limited search. It returns the goal node if one was
// generated, whether any node was cut off so far, and whether the expansion
// budget ran out.
func (d *IDS[S, A]) pass(r *runner[S, A], limit int) (goal *Node[S, A], cutoff, spent bool) {
	stack := fringe.NewStack[*Node[S, A]]()

	for _, n := range r.seed() {
		if r.problem.IsGoal(n.state) {
			return n, false, false
		}
		stack.Push(n)
	}
	r.observe(stack.Len())

	for {
		n, ok := stack.Pop()
		if !ok {
			return nil, cutoff, false
		}
		if n.depth >= limit {
			cutoff = true
			continue
		}
		if r.budgetSpent() {
			return nil, cutoff, true
		}
		r.expand(n)
		for _, sc := range r.successors(n.state) {
			c := r.child(n, sc)
			if r.problem.IsGoal(c.state) {
				return c, cutoff, false
			}
			stack.Push(c)
		}
		r.observe(stack.Len())
	}
}
