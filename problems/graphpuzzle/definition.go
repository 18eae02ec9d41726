package graphpuzzle

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Limits of the compact State encoding.
const (
	MaxVertices = 255
	MaxTokens   = 16
)

// Sentinel errors for Definition validation and loading.
var (
	ErrNoVertices      = errors.New("graphpuzzle: no vertices")
	ErrTooManyVertices = errors.New("graphpuzzle: too many vertices")
	ErrDuplicateVertex = errors.New("graphpuzzle: duplicate vertex")
	ErrUnknownVertex   = errors.New("graphpuzzle: unknown vertex")
	ErrDuplicateEdge   = errors.New("graphpuzzle: duplicate edge")
	ErrNegativeCost    = errors.New("graphpuzzle: negative edge cost")
	ErrBadCondition    = errors.New("graphpuzzle: malformed condition")
	ErrNoGroups        = errors.New("graphpuzzle: no token groups")
	ErrDuplicateGroup  = errors.New("graphpuzzle: duplicate group")
	ErrEmptyGroup      = errors.New("graphpuzzle: group has no tokens")
	ErrTooManyTokens   = errors.New("graphpuzzle: too many tokens")
	ErrDecode          = errors.New("graphpuzzle: decode error")
)

// Definition is the declarative form of a puzzle.
type Definition struct {
	Name     string   `yaml:"name,omitempty"`
	Vertices []string `yaml:"vertices"`
	Edges    []Edge   `yaml:"edges"`
	Groups   []Group  `yaml:"groups"`
}

// Edge is a directed edge. Both adds the reverse edge with the same cost and
// conditions.
type Edge struct {
	From string   `yaml:"from"`
	To   string   `yaml:"to"`
	Cost float64  `yaml:"cost"`
	When []string `yaml:"when,omitempty"`
	Both bool     `yaml:"both,omitempty"`
}

// Group is a named set of tokens sharing one goal vertex. Tokens are tracked
// individually: swapping two tokens of a group yields a different state.
type Group struct {
	Name  string   `yaml:"name"`
	Start []string `yaml:"start"`
	Goal  string   `yaml:"goal"`
}

// condition is one compiled somebody/nobody test.
type condition struct {
	vertex   uint8
	occupied bool // true for somebody, false for nobody
}

// arc is one compiled directed edge.
type arc struct {
	to    uint8
	cost  float64
	conds []condition
}

var condRE = regexp.MustCompile(`^(somebody|nobody)\(\s*([^()\s]+)\s*\)$`)

// compiled is a validated Definition in index form.
type compiled struct {
	vertices []string
	index    map[string]uint8
	out      [][]arc // by source vertex
	groups   []compiledGroup
	tokens   int
}

type compiledGroup struct {
	name   string
	offset int // index of the group's first token
	start  []uint8
	goal   uint8
}

// compile validates def and converts it to index form.
func compile(def *Definition) (*compiled, error) {
	switch n := len(def.Vertices); {
	case n == 0:
		return nil, ErrNoVertices
	case n > MaxVertices:
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, n, MaxVertices)
	}

	c := &compiled{
		vertices: append([]string(nil), def.Vertices...),
		index:    make(map[string]uint8, len(def.Vertices)),
		out:      make([][]arc, len(def.Vertices)),
	}
	for i, v := range def.Vertices {
		if _, dup := c.index[v]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, v)
		}
		c.index[v] = uint8(i)
	}

	seen := make(map[[2]uint8]bool)
	addArc := func(from, to string, e Edge, conds []condition) error {
		u, v := c.index[from], c.index[to]
		if seen[[2]uint8{u, v}] {
			return fmt.Errorf("%w: %s->%s", ErrDuplicateEdge, from, to)
		}
		seen[[2]uint8{u, v}] = true
		c.out[u] = append(c.out[u], arc{to: v, cost: e.Cost, conds: conds})

		return nil
	}
	for _, e := range def.Edges {
		if err := c.known(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
		if e.Cost < 0 {
			return nil, fmt.Errorf("%w: %s->%s costs %g", ErrNegativeCost, e.From, e.To, e.Cost)
		}
		conds, err := c.conditions(e.When)
		if err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
		if err := addArc(e.From, e.To, e, conds); err != nil {
			return nil, err
		}
		if e.Both {
			if err := addArc(e.To, e.From, e, conds); err != nil {
				return nil, err
			}
		}
	}

	if len(def.Groups) == 0 {
		return nil, ErrNoGroups
	}
	names := make(map[string]bool, len(def.Groups))
	for _, g := range def.Groups {
		switch {
		case names[g.Name]:
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGroup, g.Name)
		case len(g.Start) == 0:
			return nil, fmt.Errorf("%w: %q", ErrEmptyGroup, g.Name)
		}
		names[g.Name] = true
		if err := c.known(append([]string{g.Goal}, g.Start...)...); err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		cg := compiledGroup{name: g.Name, offset: c.tokens, goal: c.index[g.Goal]}
		for _, v := range g.Start {
			cg.start = append(cg.start, c.index[v])
		}
		c.tokens += len(g.Start)
		c.groups = append(c.groups, cg)
	}
	if c.tokens > MaxTokens {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyTokens, c.tokens, MaxTokens)
	}

	return c, nil
}

// known returns ErrUnknownVertex for the first name not in the vertex list.
func (c *compiled) known(names ...string) error {
	for _, n := range names {
		if _, ok := c.index[n]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownVertex, n)
		}
	}

	return nil
}

// conditions parses the entries of an edge's when list.
func (c *compiled) conditions(when []string) ([]condition, error) {
	var out []condition
	for _, entry := range when {
		for _, raw := range strings.Split(entry, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			m := condRE.FindStringSubmatch(raw)
			if m == nil {
				return nil, fmt.Errorf("%w: %q", ErrBadCondition, raw)
			}
			v, ok := c.index[m[2]]
			if !ok {
				return nil, fmt.Errorf("%w: %q in %q", ErrUnknownVertex, m[2], raw)
			}
			out = append(out, condition{vertex: v, occupied: m[1] == "somebody"})
		}
	}

	return out, nil
}
