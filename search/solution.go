package search

import "sort"

// Stats summarizes the work done by one run.
type Stats struct {
	// Expanded counts expansions over the whole run (all IDS passes).
	Expanded int
	// Generated counts created nodes, roots included, over the whole run.
	Generated int
	// Skipped counts popped nodes discarded without expansion
	// (already expanded states, stale best-cost entries).
	Skipped int
	// Pruned counts successors not turned into nodes by graph search.
	Pruned int
	// MaxFringe is the largest fringe size observed.
	MaxFringe int
	// Iterations is the number of depth-limited passes run by IDS (1 otherwise).
	Iterations int
	// DepthLimit is the limit of the last IDS pass (0 otherwise).
	DepthLimit int
}

// Solution is the immutable result of a strategy run.
//
// A Solution without a goal node is a normal outcome, not an error: the
// space was exhausted, or (Cutoff == true) the search stopped at a depth
// ceiling or expansion budget and a goal may still exist.
type Solution[S comparable, A any] struct {
	algorithm string
	problem   Problem[S, A]
	roots     []*Node[S, A]
	node      *Node[S, A]
	cutoff    bool
	stats     Stats
}

// Algorithm returns the name of the strategy that produced the solution.
func (s *Solution[S, A]) Algorithm() string { return s.algorithm }

// Problem returns the problem instance that was searched.
func (s *Solution[S, A]) Problem() Problem[S, A] { return s.problem }

// Roots returns the forest of root nodes (of the last pass for IDS).
func (s *Solution[S, A]) Roots() []*Node[S, A] { return s.roots }

// Node returns the goal node, or nil when no goal was found.
func (s *Solution[S, A]) Node() *Node[S, A] { return s.node }

// Found reports whether a goal node was reached.
func (s *Solution[S, A]) Found() bool { return s.node != nil }

// Cutoff reports whether the search was truncated by a bound rather than by
// exhausting the space.
func (s *Solution[S, A]) Cutoff() bool { return s.cutoff }

// Stats returns the run statistics.
func (s *Solution[S, A]) Stats() Stats { return s.stats }

// Path returns the nodes from a root to the goal, or nil.
func (s *Solution[S, A]) Path() []*Node[S, A] { return s.node.Path() }

// States returns the states along the solution path, or nil.
func (s *Solution[S, A]) States() []S {
	path := s.Path()
	if path == nil {
		return nil
	}
	out := make([]S, len(path))
	for i, n := range path {
		out[i] = n.state
	}

	return out
}

// Actions returns the actions along the solution path (one fewer than
// States), or nil.
func (s *Solution[S, A]) Actions() []A {
	path := s.Path()
	if path == nil {
		return nil
	}
	out := make([]A, 0, len(path)-1)
	for _, n := range path[1:] {
		out = append(out, n.action)
	}

	return out
}

// Cost returns the goal's path cost, or 0 when nothing was found.
func (s *Solution[S, A]) Cost() float64 {
	if s.node == nil {
		return 0
	}

	return s.node.cost
}

// Depth returns the goal's depth, or -1 when nothing was found.
func (s *Solution[S, A]) Depth() int {
	if s.node == nil {
		return -1
	}

	return s.node.depth
}

// Walk visits every node of the forest in pre-order (roots in order,
// children in generation order). Returning false from fn stops the walk.
func (s *Solution[S, A]) Walk(fn func(*Node[S, A]) bool) {
	var stack []*Node[S, A]
	for i := len(s.roots) - 1; i >= 0; i-- {
		stack = append(stack, s.roots[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		for i := len(n.successors) - 1; i >= 0; i-- {
			stack = append(stack, n.successors[i])
		}
	}
}

// Expanded returns every expanded node of the forest ordered by ExpandOrder.
func (s *Solution[S, A]) Expanded() []*Node[S, A] {
	var out []*Node[S, A]
	s.Walk(func(n *Node[S, A]) bool {
		if n.location == Expanded {
			out = append(out, n)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].expandOrder < out[j].expandOrder })

	return out
}
