package search_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// roads is a tiny directed road map: from → to → length.
type roads map[string]map[string]float64

func (r roads) StartStates() []string { return []string{"S"} }

func (r roads) IsGoal(s string) bool { return s == "G" }

func (r roads) Successors(s string) []search.Successor[string, string] {
	var out []search.Successor[string, string]
	for to, d := range r[s] {
		out = append(out, search.Successor[string, string]{State: to, Action: s + "-" + to, Cost: d})
	}

	return out
}

func (r roads) Compare(a, b string) int { return strings.Compare(a, b) }

// ExampleNew runs every registered algorithm on the same map. The cheapest
// route S-A-B-G costs 4; strategies that goal-test on generation stop at the
// first route they generate instead.
func ExampleNew() {
	m := roads{
		"S": {"A": 1, "B": 4},
		"A": {"B": 2, "G": 6},
		"B": {"G": 1},
	}

	for _, name := range search.Algorithms() {
		strat, err := search.New[string, string](name, m)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		sol, err := strat.Run(search.Zero[string])
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-16s %v cost=%g\n", name, sol.States(), sol.Cost())
	}
	// Output:
	// tree-bfs         [S A G] cost=7
	// ids              [S B G] cost=5
	// astar-tree       [S A B G] cost=4
	// astar-graph      [S A G] cost=7
	// astar-graph-best [S A G] cost=7
	// ucs              [S A G] cost=7
}

// ExampleSolution_Actions shows the action sequence and the per-run counters.
func ExampleSolution_Actions() {
	m := roads{
		"S": {"A": 1, "B": 4},
		"A": {"B": 2, "G": 6},
		"B": {"G": 1},
	}
	strat, _ := search.NewAStarTree[string, string](m)
	sol, _ := strat.Run(search.Zero[string])

	fmt.Println(strings.Join(sol.Actions(), " "))
	fmt.Println("expanded:", sol.Stats().Expanded, "generated:", sol.Stats().Generated)
	// Output:
	// S-A A-B B-G
	// expanded: 5 generated: 7
}

// ExampleNewIDS bounds iterative deepening on a cyclic space without a goal.
func ExampleNewIDS() {
	m := roads{"S": {"A": 1}, "A": {"S": 1}}
	strat, _ := search.NewIDS[string, string](m, search.WithMaxDepth(2))
	sol, _ := strat.Run(nil)

	fmt.Println(sol.Found(), sol.Cutoff(), sol.Stats().Iterations)
	// Output:
	// false true 3
}
