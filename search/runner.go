package search

import (
	"log/slog"
	"slices"
)

// runner holds the mutable bookkeeping of one search run: the forest being
// built, the expansion counter and the statistics. Strategies own the fringe
// and the control loop; runner owns everything they have in common.
type runner[S comparable, A any] struct {
	algorithm string
	problem   Problem[S, A]
	opts      Options
	log       *slog.Logger
	roots     []*Node[S, A]
	counter   int // expansions in the current pass
	stats     Stats
}

// newRunner prepares a run for the named algorithm.
func newRunner[S comparable, A any](algorithm string, p Problem[S, A], opts Options) *runner[S, A] {
	return &runner[S, A]{
		algorithm: algorithm,
		problem:   p,
		opts:      opts,
		log:       opts.Logger.With(slog.String("algorithm", algorithm)),
		stats:     Stats{Iterations: 1},
	}
}

// seed drops any previous forest and creates one root per start state.
// The expansion counter restarts at zero; statistics keep accumulating.
func (r *runner[S, A]) seed() []*Node[S, A] {
	starts := r.problem.StartStates()
	r.roots = make([]*Node[S, A], len(starts))
	for i, s := range starts {
		r.roots[i] = newRoot[S, A](s)
	}
	r.counter = 0
	r.stats.Generated += len(r.roots)

	return r.roots
}

// budgetSpent reports whether MaxExpansions has been reached.
func (r *runner[S, A]) budgetSpent() bool {
	return r.opts.MaxExpansions > 0 && r.stats.Expanded >= r.opts.MaxExpansions
}

// expand marks n expanded with the next sequence number.
func (r *runner[S, A]) expand(n *Node[S, A]) {
	r.counter++
	r.stats.Expanded++
	n.expandOrder = r.counter
	n.location = Expanded
}

// successors asks the problem for the transitions out of s, sorted by
// resulting state unless sorting was disabled. The sort is stable so equal
// states keep the problem's order.
func (r *runner[S, A]) successors(s S) []Successor[S, A] {
	succs := r.problem.Successors(s)
	if !r.opts.SortSuccessors || len(succs) < 2 {
		return succs
	}
	succs = slices.Clone(succs)
	slices.SortStableFunc(succs, func(a, b Successor[S, A]) int {
		return r.problem.Compare(a.State, b.State)
	})

	return succs
}

// child creates the node for sc under parent.
func (r *runner[S, A]) child(parent *Node[S, A], sc Successor[S, A]) *Node[S, A] {
	r.stats.Generated++

	return newChild(parent, sc)
}

// observe records the fringe size after a push round.
func (r *runner[S, A]) observe(fringeLen int) {
	if fringeLen > r.stats.MaxFringe {
		r.stats.MaxFringe = fringeLen
	}
}

// finish freezes the run into a Solution.
func (r *runner[S, A]) finish(goal *Node[S, A], cutoff bool) *Solution[S, A] {
	sol := &Solution[S, A]{
		algorithm: r.algorithm,
		problem:   r.problem,
		roots:     r.roots,
		node:      goal,
		cutoff:    cutoff,
		stats:     r.stats,
	}
	r.log.Debug("search finished",
		slog.Bool("found", sol.Found()),
		slog.Float64("cost", sol.Cost()),
		slog.Int("depth", sol.Depth()),
		slog.Bool("cutoff", cutoff),
		slog.Int("expanded", r.stats.Expanded),
		slog.Int("generated", r.stats.Generated),
		slog.Int("max_fringe", r.stats.MaxFringe),
	)

	return sol
}

// checkProblem validates what the constructors can check cheaply.
func checkProblem[S comparable, A any](p Problem[S, A]) error {
	if p == nil {
		return ErrNilProblem
	}
	if len(p.StartStates()) == 0 {
		return ErrNoStartStates
	}

	return nil
}

// newBase validates p and opts for a strategy constructor.
func newBase[S comparable, A any](p Problem[S, A], opts []Option) (Options, error) {
	if err := checkProblem(p); err != nil {
		return Options{}, err
	}
	return buildOptions(opts)
}
