// Package jars is the water-jugs puzzle: starting from empty jars of fixed
// capacities, reach a target amount in one jar by filling, emptying and
// pouring.
//
// Actions (all cost 1):
//
//	fill(j)    jar j to capacity; rejected if already full.
//	empty(j)   jar j; rejected if already empty.
//	pour(s,d)  from s into d until s is empty or d is full; rejected if
//	           s == d, s is empty or d is full.
//
// With no options the problem is the classic 5 and 3 litre jars with the
// goal of 4 litres in jar 0.
package jars

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/action"
	"github.com/katalvlaran/lvsearch/search"
)

// MaxJars bounds the number of jars a State can hold.
const MaxJars = 8

// Sentinel errors returned by New.
var (
	ErrNoJars      = errors.New("jars: at least one jar is required")
	ErrTooManyJars = errors.New("jars: too many jars")
	ErrBadCapacity = errors.New("jars: capacity must be positive")
	ErrBadTarget   = errors.New("jars: target out of range")
)

// State is the fill level of every jar.
type State struct {
	n      int
	levels [MaxJars]int
}

// StateOf builds a State from explicit levels (at most MaxJars).
func StateOf(levels ...int) State {
	var s State
	s.n = min(len(levels), MaxJars)
	copy(s.levels[:], levels)

	return s
}

// Len returns the number of jars.
func (s State) Len() int { return s.n }

// Level returns the content of jar j.
func (s State) Level(j int) int { return s.levels[j] }

// Levels returns a copy of all jar levels.
func (s State) Levels() []int {
	out := make([]int, s.n)
	copy(out, s.levels[:s.n])

	return out
}

// String renders the state as (l0,l1,...).
func (s State) String() string {
	parts := make([]string, s.n)
	for i := range parts {
		parts[i] = strconv.Itoa(s.levels[i])
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// Option configures New.
type Option func(*config)

type config struct {
	capacities []int
	jar        int
	amount     int
}

// WithCapacities sets the jar capacities (default 5, 3).
func WithCapacities(c ...int) Option {
	return func(cfg *config) { cfg.capacities = append([]int(nil), c...) }
}

// WithTarget sets the goal: amount litres in jar (default jar 0, 4 litres).
func WithTarget(jar, amount int) Option {
	return func(cfg *config) { cfg.jar, cfg.amount = jar, amount }
}

// Problem is a configured jars puzzle. It implements search.Problem.
type Problem struct {
	capacities []int
	jar        int
	amount     int
	actions    *action.Registry[State]
}

var _ search.Problem[State, action.Call] = (*Problem)(nil)

// New validates the options and registers the actions.
func New(opts ...Option) (*Problem, error) {
	cfg := config{capacities: []int{5, 3}, jar: 0, amount: 4}
	for _, o := range opts {
		o(&cfg)
	}

	switch n := len(cfg.capacities); {
	case n == 0:
		return nil, ErrNoJars
	case n > MaxJars:
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyJars, n, MaxJars)
	}
	for i, c := range cfg.capacities {
		if c <= 0 {
			return nil, fmt.Errorf("%w: jar %d has %d", ErrBadCapacity, i, c)
		}
	}
	if cfg.jar < 0 || cfg.jar >= len(cfg.capacities) {
		return nil, fmt.Errorf("%w: jar %d of %d", ErrBadTarget, cfg.jar, len(cfg.capacities))
	}
	if cfg.amount < 0 || cfg.amount > cfg.capacities[cfg.jar] {
		return nil, fmt.Errorf("%w: %d litres in a jar of %d", ErrBadTarget, cfg.amount, cfg.capacities[cfg.jar])
	}

	p := &Problem{capacities: cfg.capacities, jar: cfg.jar, amount: cfg.amount}
	p.actions = action.NewRegistry[State]().WithValidator(p.valid)
	jars := action.Range(0, len(cfg.capacities))
	if err := errors.Join(
		p.actions.Register("fill", action.Fixed(1, p.fill), jars),
		p.actions.Register("empty", action.Fixed(1, p.empty), jars),
		p.actions.Register("pour", action.Fixed(1, p.pour), jars, jars),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Capacities returns a copy of the jar capacities.
func (p *Problem) Capacities() []int { return append([]int(nil), p.capacities...) }

// Target returns the goal jar and amount.
func (p *Problem) Target() (jar, amount int) { return p.jar, p.amount }

// Actions lists the registered action names.
func (p *Problem) Actions() []string { return p.actions.Names() }

// StartStates returns the single all-empty state.
func (p *Problem) StartStates() []State {
	return []State{{n: len(p.capacities)}}
}

// IsGoal reports whether the target jar holds the target amount.
func (p *Problem) IsGoal(s State) bool { return s.levels[p.jar] == p.amount }

// Successors applies every action to s.
func (p *Problem) Successors(s State) []search.Successor[State, action.Call] {
	return p.actions.Successors(s)
}

// Compare orders states lexicographically by jar level.
func (p *Problem) Compare(a, b State) int {
	for i := 0; i < max(a.n, b.n); i++ {
		if c := cmp.Compare(a.levels[i], b.levels[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.n, b.n)
}

// DiffFromTarget is |level(target jar) - target amount|. It is cheap and
// guides A* well on small instances but is not admissible: one fill or pour
// can move the level by more than one litre.
func (p *Problem) DiffFromTarget(s State) float64 {
	d := s.levels[p.jar] - p.amount
	if d < 0 {
		d = -d
	}

	return float64(d)
}

func (p *Problem) valid(s State) bool {
	for i, c := range p.capacities {
		if s.levels[i] < 0 || s.levels[i] > c {
			return false
		}
	}

	return true
}

func (p *Problem) fill(s State, a action.Args) (State, bool) {
	j := a.Int(0)
	if s.levels[j] == p.capacities[j] {
		return s, false
	}
	s.levels[j] = p.capacities[j]

	return s, true
}

func (p *Problem) empty(s State, a action.Args) (State, bool) {
	j := a.Int(0)
	if s.levels[j] == 0 {
		return s, false
	}
	s.levels[j] = 0

	return s, true
}

func (p *Problem) pour(s State, a action.Args) (State, bool) {
	from, to := a.Int(0), a.Int(1)
	room := p.capacities[to] - s.levels[to]
	if from == to || s.levels[from] == 0 || room == 0 {
		return s, false
	}
	amount := min(s.levels[from], room)
	s.levels[from] -= amount
	s.levels[to] += amount

	return s, true
}
