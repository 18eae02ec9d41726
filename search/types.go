// Package search defines the problem and heuristic contracts, sentinel errors
// and the Strategy interface shared by every search algorithm in lvsearch.
package search

import "errors"

// Sentinel errors for strategy construction and execution.
var (
	// ErrNilProblem is returned when a strategy is built without a problem.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNoStartStates is returned when the problem enumerates no start state.
	ErrNoStartStates = errors.New("search: problem has no start states")

	// ErrNilHeuristic is returned when an informed strategy runs without a heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by New for an unregistered name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Successor is one outgoing transition reported by a Problem:
// applying Action to the current state yields State at the given Cost.
// Cost must be non-negative.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is the contract a problem definition fulfils for the strategies.
//
// StartStates must be non-empty; each start state seeds an independent tree.
// Successors may be returned in any order: strategies re-sort them with
// Compare before expanding, so Compare must be a total order consistent with
// ==. The core does not validate states produced by Successors.
type Problem[S comparable, A any] interface {
	StartStates() []S
	IsGoal(state S) bool
	Successors(state S) []Successor[S, A]
	Compare(a, b S) int
}

// Heuristic estimates the remaining cost from a state to the nearest goal.
// It must return a non-negative value. A* tree search is optimal when h is
// admissible; A* graph search (generation-time goal test, best-cost pruning)
// additionally needs h to be consistent. Neither property is checked.
type Heuristic[S comparable] func(state S) float64

// Zero is the heuristic that always returns 0. With it A* graph search
// degenerates into uniform-cost search.
func Zero[S comparable](S) float64 { return 0 }

// Strategy is a configured search algorithm bound to one problem.
// Uninformed strategies ignore h, which may then be nil.
// Each Run builds its own fringe and bookkeeping, so a Strategy can be run
// repeatedly; it must not be run from several goroutines at once.
type Strategy[S comparable, A any] interface {
	Name() string
	Run(h Heuristic[S]) (*Solution[S, A], error)
}
