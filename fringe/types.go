package fringe

// Fringe is the read side shared by every container discipline.
// Pop and Peek report ok == false when the container is empty.
type Fringe[T any] interface {
	// Pop removes and returns the next item chosen by the discipline.
	Pop() (item T, ok bool)

	// Peek returns the next item without removing it.
	Peek() (item T, ok bool)

	// Len returns the number of items currently held.
	Len() int

	// Empty reports whether Pop would fail.
	Empty() bool
}

var (
	_ Fringe[int] = (*Stack[int])(nil)
	_ Fringe[int] = (*Queue[int])(nil)
	_ Fringe[int] = (*PriorityQueue[int])(nil)
)
