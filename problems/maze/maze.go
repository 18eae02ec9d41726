package maze

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// Problem is a grid path-finding instance. States are cells, actions are the
// compass names of the moves. It implements search.Problem.
type Problem struct {
	grid        *Grid
	start, goal Cell
}

var _ search.Problem[Cell, string] = (*Problem)(nil)

// New places start and goal on g. Both must be open cells.
func New(g *Grid, start, goal Cell) (*Problem, error) {
	for _, c := range []Cell{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, g.Width, g.Height)
		}
		if !g.Open(c) {
			return nil, fmt.Errorf("%w: %v", ErrOnWall, c)
		}
	}

	return &Problem{grid: g, start: start, goal: goal}, nil
}

// Grid returns the underlying grid.
func (p *Problem) Grid() *Grid { return p.grid }

// Start returns the start cell.
func (p *Problem) Start() Cell { return p.start }

// Goal returns the goal cell.
func (p *Problem) Goal() Cell { return p.goal }

// Reachable reports whether the goal lies in the start's component.
func (p *Problem) Reachable() bool { return p.grid.Reachable(p.start, p.goal) }

// StartStates returns the start cell.
func (p *Problem) StartStates() []Cell { return []Cell{p.start} }

// IsGoal reports whether c is the goal cell.
func (p *Problem) IsGoal(c Cell) bool { return c == p.goal }

// Successors lists the moves into open neighbors in compass order, each
// costing the value of the cell entered.
func (p *Problem) Successors(c Cell) []search.Successor[Cell, string] {
	out := make([]search.Successor[Cell, string], 0, len(p.grid.moves))
	for _, m := range p.grid.moves {
		next := Cell{X: c.X + m.dx, Y: c.Y + m.dy}
		if !p.grid.Open(next) {
			continue
		}
		out = append(out, search.Successor[Cell, string]{
			State:  next,
			Action: m.name,
			Cost:   float64(p.grid.Cost(next)),
		})
	}

	return out
}

// Compare orders cells row-major.
func (p *Problem) Compare(a, b Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// Manhattan is |dx|+|dy| to the goal times the cheapest open cell.
func (p *Problem) Manhattan(c Cell) float64 {
	dx, dy := absDiff(c.X, p.goal.X), absDiff(c.Y, p.goal.Y)
	return float64((dx + dy) * p.grid.minCost)
}

// Chebyshev is max(|dx|,|dy|) to the goal times the cheapest open cell.
func (p *Problem) Chebyshev(c Cell) float64 {
	dx, dy := absDiff(c.X, p.goal.X), absDiff(c.Y, p.goal.Y)
	return float64(max(dx, dy) * p.grid.minCost)
}

// Heuristic returns the admissible distance for the grid's connectivity.
func (p *Problem) Heuristic() search.Heuristic[Cell] {
	if p.grid.Conn == Conn8 {
		return p.Chebyshev
	}
	return p.Manhattan
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
