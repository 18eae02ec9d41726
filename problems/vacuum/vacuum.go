// Package vacuum is the two-cell vacuum world: a robot in cell 0 or 1 moves
// left and right and sweeps until both cells are clean.
package vacuum

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/action"
	"github.com/katalvlaran/lvsearch/search"
)

// Cells is the number of cells in the world.
const Cells = 2

// ErrBadPosition is returned by New for a start position outside the world.
var ErrBadPosition = errors.New("vacuum: position out of range")

// State is the robot position and the dirt flag of every cell.
type State struct {
	Pos   int
	Dirty [Cells]bool
}

// String renders the state as (pos,(T,F)).
func (s State) String() string {
	flag := func(b bool) string {
		if b {
			return "T"
		}
		return "F"
	}

	return fmt.Sprintf("(%d,(%s,%s))", s.Pos, flag(s.Dirty[0]), flag(s.Dirty[1]))
}

// Option configures New.
type Option func(*State)

// WithInitialPosition places the robot (default cell 0).
func WithInitialPosition(pos int) Option {
	return func(s *State) { s.Pos = pos }
}

// WithDirt sets which cells start dirty (default both).
func WithDirt(left, right bool) Option {
	return func(s *State) { s.Dirty = [Cells]bool{left, right} }
}

// Problem is a configured vacuum world. It implements search.Problem.
type Problem struct {
	start   State
	actions *action.Registry[State]
}

var _ search.Problem[State, action.Call] = (*Problem)(nil)

// New builds the world and its left, right and sweep actions, each of cost 1.
func New(opts ...Option) (*Problem, error) {
	start := State{Pos: 0, Dirty: [Cells]bool{true, true}}
	for _, o := range opts {
		o(&start)
	}
	if start.Pos < 0 || start.Pos >= Cells {
		return nil, fmt.Errorf("%w: %d", ErrBadPosition, start.Pos)
	}

	p := &Problem{start: start}
	p.actions = action.NewRegistry[State]().WithValidator(func(s State) bool {
		return s.Pos >= 0 && s.Pos < Cells
	})
	if err := errors.Join(
		p.actions.Register("left", action.Fixed(1, left)),
		p.actions.Register("right", action.Fixed(1, right)),
		p.actions.Register("sweep", action.Fixed(1, sweep)),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// StartStates returns the configured start.
func (p *Problem) StartStates() []State { return []State{p.start} }

// IsGoal reports whether every cell is clean.
func (p *Problem) IsGoal(s State) bool { return DirtyCells(s) == 0 }

// Successors applies left, right and sweep to s.
func (p *Problem) Successors(s State) []search.Successor[State, action.Call] {
	return p.actions.Successors(s)
}

// Compare orders by position, then dirt flags with clean before dirty.
func (p *Problem) Compare(a, b State) int {
	if c := cmp.Compare(a.Pos, b.Pos); c != 0 {
		return c
	}
	for i := range a.Dirty {
		if c := cmp.Compare(b2i(a.Dirty[i]), b2i(b.Dirty[i])); c != 0 {
			return c
		}
	}

	return 0
}

// DirtyCells counts the dirty cells. Every sweep cleans at most one, so it
// is admissible and consistent.
func DirtyCells(s State) float64 {
	n := 0.0
	for _, d := range s.Dirty {
		if d {
			n++
		}
	}

	return n
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func left(s State, _ action.Args) (State, bool) {
	if s.Pos == 0 {
		return s, false
	}
	s.Pos--

	return s, true
}

func right(s State, _ action.Args) (State, bool) {
	if s.Pos == Cells-1 {
		return s, false
	}
	s.Pos++

	return s, true
}

// sweep always applies; sweeping a clean cell leaves the state unchanged.
func sweep(s State, _ action.Args) (State, bool) {
	s.Dirty[s.Pos] = false
	return s, true
}
