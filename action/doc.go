// Package action turns a set of named, parameterized transition functions
// into search.Successor lists.
//
// A problem registers each action once, together with the ordered domains
// of its parameters:
//
//	reg := action.NewRegistry[State]()
//	_ = reg.Register("fill", action.Fixed(1, fill), action.Range(0, nJars))
//	_ = reg.Register("pour", action.Fixed(1, pour), action.Range(0, nJars), action.Range(0, nJars))
//
// Successors then applies every action to every parameter tuple of the
// cartesian product of its domains, in registration order and lexicographic
// tuple order, and keeps the results the action accepted (ok == true) and the
// optional validator admits. The resulting actions are Call values such as
// pour(0,1).
//
// Errors
//
//   - ErrEmptyName     Register with "".
//   - ErrDuplicateName Register twice with the same name.
//   - ErrNilFunc       Register with a nil Func.
//
// Args accessors panic on an index or type mismatch: that is a bug in the
// action body, not a runtime condition.
package action
