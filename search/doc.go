// Package search implements generic state-space search: breadth-first tree
// search, iterative deepening, and A* in tree and graph form, the graph form
// optionally with best-cost pruning and re-opening.
//
// What
//
//   - A Problem supplies start states, a goal test, successors
//     (state, action, cost) and a total order over states.
//   - A Strategy is built from a Problem (NewTreeBFS, NewIDS, NewAStarTree,
//     NewAStarGraph, or New by name) and Run with an optional Heuristic.
//   - Run returns a Solution: the goal Node (or none), the full search
//     forest, a Cutoff flag and Stats.
//
// Goal tests
//
//	Roots are tested before they enter the fringe in every strategy.
//	TreeBFS, IDS and AStarGraph test successors when they are generated and
//	return them unexpanded. AStarTree tests nodes when they are expanded.
//
// Determinism
//
//	Successors are stable-sorted with Problem.Compare before expansion and
//	the priority fringe breaks ties in insertion order, so two runs on the
//	same problem produce the same expand order and the same path.
//
// Complexity (b = branching factor, d = solution depth)
//
//   - TreeBFS:    Time O(b^d), Memory O(b^d).
//   - IDS:        Time O(b^d), Memory O(b·d) for the stack (the forest is kept).
//   - AStarTree:  exponential in the heuristic error; no duplicate detection.
//   - AStarGraph: O((V + E) log V) with V states and E transitions reached.
//
// Options
//
//   - WithLogger(l):          Debug-level tracing (run start, IDS passes, run end).
//   - WithBestCost():         best-cost pruning for AStarGraph.
//   - WithReopen():           re-open expanded states on cheaper paths (needs WithBestCost).
//   - WithMaxDepth(d):        ceiling for the IDS depth limit (0 = none).
//   - WithMaxExpansions(n):   stop after n expansions with Cutoff set (0 = none).
//   - WithSortSuccessors(b):  disable or enable successor sorting (default on).
//
// Errors
//
//   - ErrNilProblem        problem is nil.
//   - ErrNoStartStates     problem returns no start state.
//   - ErrNilHeuristic      informed strategy run with a nil heuristic.
//   - ErrOptionViolation   negative limits, Reopen without BestCost.
//   - ErrUnknownAlgorithm  New called with an unregistered name.
//
// Failing to find a goal is not an error. The strategies are single-threaded
// and have no cancellation hook; wrap Run in a goroutine to bound its time.
//
// Usage
//
//	strat, err := search.NewAStarGraph(problem, search.WithBestCost())
//	if err != nil {
//		// handle construction error
//	}
//	sol, err := strat.Run(heuristic)
//	if err == nil && sol.Found() {
//		fmt.Println(sol.Cost(), sol.Actions())
//	}
package search
