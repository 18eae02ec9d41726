package search_test

import (
	"cmp"
	"testing"

	"github.com/katalvlaran/lvsearch/search"
)

// cell is a position on an open square grid.
type cell struct{ r, c int }

// openGrid is an N×N 4-connected grid with unit moves from the top-left to
// the bottom-right corner.
type openGrid int

func (g openGrid) StartStates() []cell { return []cell{{0, 0}} }

func (g openGrid) IsGoal(s cell) bool { return s.r == int(g)-1 && s.c == int(g)-1 }

func (g openGrid) Successors(s cell) []search.Successor[cell, byte] {
	out := make([]search.Successor[cell, byte], 0, 4)
	for _, m := range []struct {
		dr, dc int
		a      byte
	}{{-1, 0, 'U'}, {1, 0, 'D'}, {0, -1, 'L'}, {0, 1, 'R'}} {
		n := cell{s.r + m.dr, s.c + m.dc}
		if n.r < 0 || n.c < 0 || n.r >= int(g) || n.c >= int(g) {
			continue
		}
		out = append(out, search.Successor[cell, byte]{State: n, Action: m.a, Cost: 1})
	}

	return out
}

func (g openGrid) Compare(a, b cell) int {
	if c := cmp.Compare(a.r, b.r); c != 0 {
		return c
	}
	return cmp.Compare(a.c, b.c)
}

func (g openGrid) manhattan(s cell) float64 {
	return float64(int(g) - 1 - s.r + int(g) - 1 - s.c)
}

// BenchmarkAStarGraph_Grid runs UCS and A* with Manhattan distance on a
// 100×100 grid (10 000 states).
func BenchmarkAStarGraph_Grid(b *testing.B) {
	g := openGrid(100)
	for _, bc := range []struct {
		name string
		h    search.Heuristic[cell]
	}{
		{"zero", search.Zero[cell]},
		{"manhattan", g.manhattan},
	} {
		b.Run(bc.name, func(b *testing.B) {
			strat, err := search.NewAStarGraph[cell, byte](g, search.WithBestCost())
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = strat.Run(bc.h)
			}
		})
	}
}

// BenchmarkIDS_Grid measures the cost of re-running passes: the goal of a
// 4×4 grid sits at depth 6.
func BenchmarkIDS_Grid(b *testing.B) {
	strat, err := search.NewIDS[cell, byte](openGrid(4))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = strat.Run(nil)
	}
}

// BenchmarkTreeBFS_Grid is the uninformed baseline on the same 4×4 grid.
func BenchmarkTreeBFS_Grid(b *testing.B) {
	strat, err := search.NewTreeBFS[cell, byte](openGrid(4))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = strat.Run(nil)
	}
}
