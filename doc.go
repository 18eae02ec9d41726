// Package lvsearch is a generic state-space search engine: describe a
// problem once (start states, goal test, weighted successors and a total
// order over states) and solve it with any of the bundled strategies.
//
// What is inside?
//
//	fringe/      Stack, Queue and a FIFO-stable PriorityQueue
//	search/      Problem/Heuristic contracts, the search forest (Node),
//	             Solution with Stats, and the strategies:
//	               tree-bfs          breadth-first tree search
//	               ids               iterative deepening depth-first search
//	               astar-tree        A* without duplicate detection
//	               astar-graph       A* with a closed set
//	               astar-graph-best  A* graph with best-cost pruning
//	               ucs               uniform-cost search
//	action/      named, parameterized actions over typed domains, expanded
//	             into successors through a cartesian product
//	problems/    jars, vacuum, nqueens, graphpuzzle (kiwis-and-dogs, YAML
//	             and HCL loaders) and maze (weighted grids)
//	cmd/         the lvsearch CLI: list, run, compare
//
// Quick start:
//
//	p, _ := jars.New()
//	strat, _ := search.New[jars.State, action.Call]("astar-graph", p)
//	sol, _ := strat.Run(p.DiffFromTarget)
//	fmt.Println(sol.Cost(), sol.Actions())
//
// Every run returns a Solution that keeps the whole search forest, so the
// expansion order, the fringe locations and the per-run statistics can be
// inspected after the fact.
package lvsearch
