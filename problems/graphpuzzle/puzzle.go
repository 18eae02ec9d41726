package graphpuzzle

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/action"
	"github.com/katalvlaran/lvsearch/search"
)

// State holds the vertex index of every token, groups in definition order.
type State struct {
	n   uint8
	pos [MaxTokens]uint8
}

// Problem is a compiled puzzle. It implements search.Problem.
type Problem struct {
	name    string
	c       *compiled
	arcs    map[[2]uint8]arc
	start   State
	dist    [][]float64 // per group: vertex → distance to the group goal
	actions *action.Registry[State]
}

var _ search.Problem[State, action.Call] = (*Problem)(nil)

// New validates def and builds the puzzle.
func New(def *Definition) (*Problem, error) {
	c, err := compile(def)
	if err != nil {
		return nil, err
	}

	p := &Problem{
		name:    def.Name,
		c:       c,
		arcs:    make(map[[2]uint8]arc),
		start:   State{n: uint8(c.tokens)},
		actions: action.NewRegistry[State](),
	}
	for u, out := range c.out {
		for _, a := range out {
			p.arcs[[2]uint8{uint8(u), a.to}] = a
		}
	}

	vertices := make([]any, len(c.vertices))
	for i, v := range c.vertices {
		vertices[i] = v
	}
	for _, g := range c.groups {
		copy(p.start.pos[g.offset:], g.start)
		p.dist = append(p.dist, distancesTo(c, g.goal))
		if err := p.actions.Register("move_"+g.name, p.mover(g),
			action.Range(0, len(g.start)), action.Values(vertices...)); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Name returns the definition name.
func (p *Problem) Name() string { return p.name }

// StartStates returns the single start placement.
func (p *Problem) StartStates() []State { return []State{p.start} }

// IsGoal reports whether every token stands on its group goal.
func (p *Problem) IsGoal(s State) bool {
	for _, g := range p.c.groups {
		for i := range g.start {
			if s.pos[g.offset+i] != g.goal {
				return false
			}
		}
	}

	return true
}

// Successors applies every move_<group>(i,V) to s.
func (p *Problem) Successors(s State) []search.Successor[State, action.Call] {
	return p.actions.Successors(s)
}

// Compare orders states by token positions, token by token.
func (p *Problem) Compare(a, b State) int {
	for i := 0; i < int(max(a.n, b.n)); i++ {
		if c := cmp.Compare(a.pos[i], b.pos[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.n, b.n)
}

// Distance is the admissible, consistent heuristic described in the package
// documentation. A token that cannot reach its goal makes it +Inf.
func (p *Problem) Distance(s State) float64 {
	h := 0.0
	for gi, g := range p.c.groups {
		for i := range g.start {
			h += p.dist[gi][s.pos[g.offset+i]]
		}
	}

	return h
}

// Positions maps every group to the vertex names of its tokens.
func (p *Problem) Positions(s State) map[string][]string {
	out := make(map[string][]string, len(p.c.groups))
	for _, g := range p.c.groups {
		names := make([]string, len(g.start))
		for i := range names {
			names[i] = p.c.vertices[s.pos[g.offset+i]]
		}
		out[g.name] = names
	}

	return out
}

// StateOf builds a state from vertex names per group. Every group must be
// given with exactly its token count.
func (p *Problem) StateOf(positions map[string][]string) (State, error) {
	s := State{n: uint8(p.c.tokens)}
	for _, g := range p.c.groups {
		names := positions[g.name]
		if len(names) != len(g.start) {
			return State{}, fmt.Errorf("graphpuzzle: group %q needs %d positions, got %d", g.name, len(g.start), len(names))
		}
		if err := p.c.known(names...); err != nil {
			return State{}, err
		}
		for i, v := range names {
			s.pos[g.offset+i] = p.c.index[v]
		}
	}

	return s, nil
}

// Format renders s as group=[V V] pairs in definition order.
func (p *Problem) Format(s State) string {
	parts := make([]string, len(p.c.groups))
	for gi, g := range p.c.groups {
		names := make([]string, len(g.start))
		for i := range names {
			names[i] = p.c.vertices[s.pos[g.offset+i]]
		}
		parts[gi] = g.name + "=[" + strings.Join(names, " ") + "]"
	}

	return strings.Join(parts, " ")
}

// mover returns the action moving token i of g to the named vertex.
func (p *Problem) mover(g compiledGroup) action.Func[State] {
	return func(s State, a action.Args) (State, float64, bool) {
		tok := g.offset + a.Int(0)
		to := p.c.index[a.String(1)]
		e, ok := p.arcs[[2]uint8{s.pos[tok], to}]
		if !ok || !p.holds(s, e.conds) {
			return s, 0, false
		}
		s.pos[tok] = to

		return s, e.cost, true
	}
}

// holds evaluates a conjunction of conditions against s.
func (p *Problem) holds(s State, conds []condition) bool {
	for _, c := range conds {
		occupied := false
		for i := 0; i < int(s.n); i++ {
			if s.pos[i] == c.vertex {
				occupied = true
				break
			}
		}
		if occupied != c.occupied {
			return false
		}
	}

	return true
}
