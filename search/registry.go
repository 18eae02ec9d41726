package search

import "fmt"

// Registered algorithm names.
const (
	AlgTreeBFS        = "tree-bfs"
	AlgIDS            = "ids"
	AlgAStarTree      = "astar-tree"
	AlgAStarGraph     = "astar-graph"
	AlgAStarGraphBest = "astar-graph-best"
	AlgUCS            = "ucs"
)

// Algorithms lists the names accepted by New, in a stable order.
func Algorithms() []string {
	return []string{AlgTreeBFS, AlgIDS, AlgAStarTree, AlgAStarGraph, AlgAStarGraphBest, AlgUCS}
}

// Informed reports whether the named algorithm uses the heuristic passed to Run.
func Informed(name string) bool {
	switch name {
	case AlgAStarTree, AlgAStarGraph, AlgAStarGraphBest:
		return true
	default:
		return false
	}
}

// New builds the strategy registered under name.
//
//	"astar-graph-best" is AStarGraph with WithBestCost.
//	"ucs" is AStarGraph that always runs with the Zero heuristic.
//
// Returns ErrUnknownAlgorithm for any other name.
func New[S comparable, A any](name string, p Problem[S, A], opts ...Option) (Strategy[S, A], error) {
	var (
		s   Strategy[S, A]
		err error
	)
	switch name {
	case AlgTreeBFS:
		s, err = wrap[S, A](NewTreeBFS(p, opts...))
	case AlgIDS:
		s, err = wrap[S, A](NewIDS(p, opts...))
	case AlgAStarTree:
		s, err = wrap[S, A](NewAStarTree(p, opts...))
	case AlgAStarGraph:
		s, err = wrap[S, A](NewAStarGraph(p, opts...))
	case AlgAStarGraphBest:
		s, err = wrap[S, A](NewAStarGraph(p, append(opts[:len(opts):len(opts)], WithBestCost())...))
	case AlgUCS:
		var g *AStarGraph[S, A]
		if g, err = NewAStarGraph(p, opts...); err == nil {
			g.name = AlgUCS
			s = &uniformCost[S, A]{graph: g}
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

// wrap converts a constructor result into a Strategy without leaking a typed
// nil pointer on error.
func wrap[S comparable, A any](s Strategy[S, A], err error) (Strategy[S, A], error) {
	if err != nil {
		return nil, err
	}

	return s, nil
}

// uniformCost is A* graph search pinned to the zero heuristic.
type uniformCost[S comparable, A any] struct {
	graph *AStarGraph[S, A]
}

func (u *uniformCost[S, A]) Name() string { return AlgUCS }

// Run ignores h and orders the fringe by g alone.
func (u *uniformCost[S, A]) Run(_ Heuristic[S]) (*Solution[S, A], error) {
	return u.graph.Run(Zero[S])
}
