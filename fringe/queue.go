package fringe

// compactThreshold is the number of consumed head slots after which the
// queue copies its live items to the front of a fresh slice.
const compactThreshold = 1024

// Queue is a FIFO container.
//
// Popped slots are not re-sliced away one by one (as a plain queue[1:] would
// do); a head index advances instead and the backing array is compacted once
// half of it is dead, so long runs do not pin every node ever enqueued.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends item at the tail.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the item at the head.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		// fully drained: reuse the backing array from the start
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.items):
		live := make([]T, len(q.items)-q.head, cap(q.items)-q.head)
		copy(live, q.items[q.head:])
		q.items = live
		q.head = 0
	}

	return item, true
}

// Peek returns the head item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head >= len(q.items) {
		var zero T
		return zero, false
	}

	return q.items[q.head], true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }
