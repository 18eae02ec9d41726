package action

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsearch/search"
)

// entry is one registered action.
type entry[S comparable] struct {
	name    string
	fn      Func[S]
	domains []Domain
}

// Registry holds the actions of one problem in registration order.
// It is safe for concurrent Successors calls once registration is done.
type Registry[S comparable] struct {
	entries []entry[S]
	index   map[string]int
	valid   func(S) bool
}

// NewRegistry returns an empty registry that admits every state.
func NewRegistry[S comparable]() *Registry[S] {
	return &Registry[S]{index: make(map[string]int)}
}

// Register adds an action under name; its parameters range over domains.
func (r *Registry[S]) Register(name string, fn Func[S], domains ...Domain) error {
	switch {
	case name == "":
		return ErrEmptyName
	case fn == nil:
		return fmt.Errorf("%w: %q", ErrNilFunc, name)
	}
	if _, dup := r.index[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, entry[S]{name: name, fn: fn, domains: slices.Clone(domains)})

	return nil
}

// WithValidator installs the filter applied to every produced state; states
// for which valid returns false are dropped. A nil valid admits everything.
// It returns r for chaining.
func (r *Registry[S]) WithValidator(valid func(S) bool) *Registry[S] {
	r.valid = valid
	return r
}

// Names returns the registered action names in registration order.
func (r *Registry[S]) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}

	return names
}

// Len returns the number of registered actions.
func (r *Registry[S]) Len() int { return len(r.entries) }

// Successors applies every action to s with every parameter tuple and returns
// the accepted, valid results in registration then tuple order.
func (r *Registry[S]) Successors(s S) []search.Successor[S, Call] {
	var out []search.Successor[S, Call]
	for _, e := range r.entries {
		for args := range Product(e.domains...) {
			next, cost, ok := e.fn(s, args)
			if !ok || (r.valid != nil && !r.valid(next)) {
				continue
			}
			out = append(out, search.Successor[S, Call]{
				State:  next,
				Action: Call{Name: e.name, Args: args},
				Cost:   cost,
			})
		}
	}

	return out
}

// Apply replays c on s. It reports false when c names no registered action
// or its application is rejected.
func (r *Registry[S]) Apply(s S, c Call) (S, float64, bool) {
	i, known := r.index[c.Name]
	if !known {
		return s, 0, false
	}
	next, cost, ok := r.entries[i].fn(s, c.Args)
	if !ok || (r.valid != nil && !r.valid(next)) {
		return s, 0, false
	}

	return next, cost, true
}
