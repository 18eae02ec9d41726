package fringe

// Stack is a LIFO container.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero // drop the reference for the GC
	s.items = s.items[:n-1]

	return item, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }
