package search_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

// zeroH is the zero heuristic for string states.
var zeroH = search.Zero[string]

//----------------------------------------------------------------------------//
// Construction errors
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	p := newGraphProblem([]string{"A"}, "B").arc("A", "B", 1)

	for _, name := range search.Algorithms() {
		t.Run(name, func(t *testing.T) {
			_, err := search.New[string, string](name, nil)
			assert.ErrorIs(t, err, search.ErrNilProblem)

			_, err = search.New[string, string](name, newGraphProblem(nil, "B"))
			assert.ErrorIs(t, err, search.ErrNoStartStates)

			_, err = search.New(name, p, search.WithMaxDepth(-1))
			assert.ErrorIs(t, err, search.ErrOptionViolation)

			_, err = search.New(name, p, search.WithMaxExpansions(-5))
			assert.ErrorIs(t, err, search.ErrOptionViolation)

			_, err = search.New(name, p, search.WithReopen())
			if name == search.AlgAStarGraphBest {
				assert.NoError(t, err, "best-cost alias supplies WithBestCost")
			} else {
				assert.ErrorIs(t, err, search.ErrOptionViolation, "reopen without best cost")
			}
		})
	}

	_, err := search.New("dijkstra", p)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), `"dijkstra"`)
}

func TestRun_NilHeuristic(t *testing.T) {
	p := newGraphProblem([]string{"A"}, "B").arc("A", "B", 1)
	for _, name := range search.Algorithms() {
		strat, err := search.New(name, p)
		require.NoError(t, err)
		sol, err := strat.Run(nil)
		if search.Informed(name) {
			assert.True(t, errors.Is(err, search.ErrNilHeuristic), "%s: want ErrNilHeuristic, got %v", name, err)
			assert.Nil(t, sol)
			continue
		}
		require.NoError(t, err, name)
		assert.True(t, sol.Found(), name)
	}
}

func TestNames(t *testing.T) {
	p := newGraphProblem([]string{"A"}, "A")
	for _, name := range search.Algorithms() {
		strat, err := search.New(name, p)
		require.NoError(t, err)
		assert.Equal(t, name, strat.Name())
		sol, err := strat.Run(zeroH)
		require.NoError(t, err)
		assert.Equal(t, name, sol.Algorithm())
	}
}

//----------------------------------------------------------------------------//
// Properties shared by every strategy
//----------------------------------------------------------------------------//

// TestStartIsGoal: the solution is a root, nothing is expanded.
func TestStartIsGoal(t *testing.T) {
	p := newGraphProblem([]string{"S"}, "S").arc("S", "X", 1)
	for _, name := range search.Algorithms() {
		t.Run(name, func(t *testing.T) {
			sol, err := run(name, p, zeroH)
			require.NoError(t, err)
			require.True(t, sol.Found())
			assert.Same(t, sol.Roots()[0], sol.Node())
			assert.True(t, sol.Node().IsRoot())
			assert.Zero(t, sol.Cost())
			assert.Zero(t, sol.Depth())
			assert.Zero(t, sol.Stats().Expanded)
			assert.Empty(t, sol.Expanded())
			assert.Equal(t, search.Generated, sol.Node().Location())
			assert.Equal(t, []string{"S"}, sol.States())
			assert.Empty(t, sol.Actions())
		})
	}
}

// TestSecondRootIsGoal: every root is built before goal testing, so the
// forest holds all start states even when the second one is the goal.
func TestSecondRootIsGoal(t *testing.T) {
	p := newGraphProblem([]string{"A", "G", "C"}, "G")
	for _, name := range search.Algorithms() {
		sol, err := run(name, p, zeroH)
		require.NoError(t, err)
		require.Len(t, sol.Roots(), 3, name)
		assert.Same(t, sol.Roots()[1], sol.Node(), name)
	}
}

func TestNoSolution(t *testing.T) {
	// finite DAG, goal unreachable
	p := newGraphProblem([]string{"A"}, "Z").
		arc("A", "B", 1).arc("A", "C", 2).arc("B", "D", 1).arc("C", "D", 1)
	for _, name := range search.Algorithms() {
		t.Run(name, func(t *testing.T) {
			sol, err := run(name, p, zeroH)
			require.NoError(t, err)
			assert.False(t, sol.Found())
			assert.False(t, sol.Cutoff())
			assert.Nil(t, sol.Node())
			assert.Nil(t, sol.Path())
			assert.Nil(t, sol.States())
			assert.Equal(t, -1, sol.Depth())
			assert.Zero(t, sol.Cost())
		})
	}
}

// TestForestInvariants walks every node produced on a random graph and checks
// cost monotonicity, depth steps and successor links.
func TestForestInvariants(t *testing.T) {
	p := randomGraph(7, 8, 12, 5)
	h := consistentHeuristic(p, 1)
	for _, name := range search.Algorithms() {
		t.Run(name, func(t *testing.T) {
			sol, err := run(name, p, h, search.WithMaxExpansions(50000))
			require.NoError(t, err)
			require.True(t, sol.Found())

			count := 0
			orders := map[int]bool{}
			sol.Walk(func(n *search.Node[string, string]) bool {
				count++
				if n.Location() == search.Expanded {
					assert.Positive(t, n.ExpandOrder())
					assert.False(t, orders[n.ExpandOrder()], "expand order %d reused", n.ExpandOrder())
					orders[n.ExpandOrder()] = true
				} else {
					assert.Zero(t, n.ExpandOrder())
				}
				for _, c := range n.Successors() {
					assert.Same(t, n, c.Parent())
					assert.Equal(t, n.Depth()+1, c.Depth())
					assert.GreaterOrEqual(t, c.Cost(), n.Cost())
					assert.True(t, c.HasAction())
				}
				if n.IsRoot() {
					assert.False(t, n.HasAction())
					assert.Zero(t, n.Cost())
					assert.Zero(t, n.Depth())
				}
				return true
			})
			if name != search.AlgIDS {
				// IDS statistics span every pass, the forest only the last one
				assert.Equal(t, sol.Stats().Generated, count, "every generated node is in the forest")
			}

			path := sol.Path()
			assert.Same(t, sol.Roots()[0], path[0])
			assert.Same(t, sol.Node(), path[len(path)-1])
			assert.Len(t, sol.Actions(), len(path)-1)
		})
	}
}

// TestDeterminism runs every strategy twice and compares expand orders and paths.
func TestDeterminism(t *testing.T) {
	p := randomGraph(11, 9, 16, 4)
	h := consistentHeuristic(p, 1)
	for _, name := range search.Algorithms() {
		t.Run(name, func(t *testing.T) {
			first, err := run(name, p, h, search.WithMaxExpansions(50000))
			require.NoError(t, err)
			second, err := run(name, p, h, search.WithMaxExpansions(50000))
			require.NoError(t, err)

			if diff := cmp.Diff(expandedStates(first), expandedStates(second)); diff != "" {
				t.Errorf("expand order differs (-first +second):\n%s", diff)
			}
			if diff := cmp.Diff(first.Actions(), second.Actions()); diff != "" {
				t.Errorf("solution path differs (-first +second):\n%s", diff)
			}
			assert.Equal(t, first.Stats(), second.Stats())
		})
	}
}

// TestSuccessorSorting: the problem returns arcs in reverse order; the
// strategies must still expand in lexicographic state order.
func TestSuccessorSorting(t *testing.T) {
	p := newGraphProblem([]string{"R"}, "none").
		arc("R", "a", 1).arc("R", "c", 1).arc("R", "b", 1)

	sol, err := run(search.AlgTreeBFS, p, nil)
	require.NoError(t, err)
	var children []string
	for _, c := range sol.Roots()[0].Successors() {
		children = append(children, c.State())
	}
	assert.Equal(t, []string{"a", "b", "c"}, children)
	assert.Equal(t, []string{"R", "a", "b", "c"}, expandedStates(sol))

	sol, err = run(search.AlgTreeBFS, p, nil, search.WithSortSuccessors(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "b", "c", "a"}, expandedStates(sol))
}

func TestMaxExpansions(t *testing.T) {
	// an infinite two-cycle without goal
	p := newGraphProblem([]string{"A"}, "Z").arc("A", "B", 1).arc("B", "A", 1)
	for _, name := range []string{search.AlgTreeBFS, search.AlgIDS, search.AlgAStarTree} {
		sol, err := run(name, p, zeroH, search.WithMaxExpansions(25))
		require.NoError(t, err)
		assert.False(t, sol.Found(), name)
		assert.True(t, sol.Cutoff(), name)
		assert.Equal(t, 25, sol.Stats().Expanded, name)
	}
}

//----------------------------------------------------------------------------//
// Goal-test placement
//----------------------------------------------------------------------------//

// goalTrap has a cheap two-step path and an expensive direct arc to G.
func goalTrap() *graphProblem {
	return newGraphProblem([]string{"S"}, "G").
		arc("S", "G", 10).arc("S", "A", 1).arc("A", "G", 1)
}

func TestAStarTree_GoalTestOnExpansion(t *testing.T) {
	sol, err := run(search.AlgAStarTree, goalTrap(), zeroH)
	require.NoError(t, err)
	require.True(t, sol.Found())
	assert.Equal(t, 2.0, sol.Cost())
	assert.Equal(t, []string{"S", "A", "G"}, sol.States())
	assert.Equal(t, search.Expanded, sol.Node().Location(), "goal is expanded before it is returned")
	assert.Equal(t, 3, sol.Node().ExpandOrder())
}

func TestAStarGraph_GoalTestOnGeneration(t *testing.T) {
	for _, name := range []string{search.AlgAStarGraph, search.AlgAStarGraphBest, search.AlgUCS} {
		sol, err := run(name, goalTrap(), zeroH)
		require.NoError(t, err)
		require.True(t, sol.Found())
		// S's successors sorted: A then G; G is returned as soon as it is generated
		assert.Equal(t, 10.0, sol.Cost(), name)
		assert.Equal(t, search.Generated, sol.Node().Location(), name)
		assert.Zero(t, sol.Node().ExpandOrder(), name)
		assert.Equal(t, 1, sol.Stats().Expanded, name)
	}
}

func TestTreeBFS_GoalTestOnGeneration(t *testing.T) {
	p := newGraphProblem([]string{"S"}, "G").arc("S", "A", 1).arc("A", "G", 1).arc("S", "B", 1)
	sol, err := run(search.AlgTreeBFS, p, nil)
	require.NoError(t, err)
	require.True(t, sol.Found())
	assert.Equal(t, []string{"S", "A", "G"}, sol.States())
	assert.Equal(t, []string{"S->A", "A->G"}, sol.Actions())
	assert.Equal(t, search.Generated, sol.Node().Location())
	assert.Equal(t, []string{"S", "A"}, expandedStates(sol))
}

// TestTreeBFS_NoDuplicateDetection: a diamond is explored along both paths.
func TestTreeBFS_NoDuplicateDetection(t *testing.T) {
	p := newGraphProblem([]string{"S"}, "none").
		arc("S", "A", 1).arc("S", "B", 1).arc("A", "D", 1).arc("B", "D", 1)
	sol, err := run(search.AlgTreeBFS, p, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B", "D", "D"}, expandedStates(sol))
	assert.Equal(t, 5, sol.Stats().Generated)
	assert.Equal(t, 2, sol.Stats().MaxFringe)
}
