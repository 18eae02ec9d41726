package action

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for Registry.Register.
var (
	ErrEmptyName     = errors.New("action: empty action name")
	ErrDuplicateName = errors.New("action: duplicate action name")
	ErrNilFunc       = errors.New("action: nil action func")
)

// Args is one tuple of parameter values, in domain order.
type Args []any

// Int returns argument i as an int.
func (a Args) Int(i int) int { return a[i].(int) }

// String returns argument i as a string.
func (a Args) String(i int) string { return a[i].(string) }

// Call is the action value a Registry attaches to every successor: the
// registered name and the parameter tuple it was applied with.
type Call struct {
	Name string
	Args Args
}

// String renders the call as name(a,b); a call without arguments renders as
// its bare name.
func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	parts := make([]string, len(c.Args))
	for i, v := range c.Args {
		parts[i] = fmt.Sprint(v)
	}

	return c.Name + "(" + strings.Join(parts, ",") + ")"
}

// Compare orders calls by name, then argument by argument, shorter tuples
// first. Ints and strings compare natively; other values by their %v form.
func Compare(a, b Call) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	for i := 0; i < min(len(a.Args), len(b.Args)); i++ {
		if c := compareValue(a.Args[i], b.Args[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a.Args), len(b.Args))
}

func compareValue(x, y any) int {
	switch xv := x.(type) {
	case int:
		if yv, ok := y.(int); ok {
			return cmp.Compare(xv, yv)
		}
	case string:
		if yv, ok := y.(string); ok {
			return strings.Compare(xv, yv)
		}
	}

	return strings.Compare(fmt.Sprint(x), fmt.Sprint(y))
}

// Func applies an action with args to s. It returns the resulting state and
// the step cost, or ok == false when the action does not apply.
type Func[S any] func(s S, args Args) (next S, cost float64, ok bool)

// Fixed adapts a cost-free transition into a Func with a constant cost.
func Fixed[S any](cost float64, fn func(s S, args Args) (S, bool)) Func[S] {
	return func(s S, args Args) (S, float64, bool) {
		next, ok := fn(s, args)
		return next, cost, ok
	}
}
