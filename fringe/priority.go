package fringe

import "container/heap"

// PriorityQueue pops the item with the lowest priority first.
// Items pushed with equal priorities leave in the order they were pushed.
type PriorityQueue[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// NewPriorityQueue returns an empty priority queue.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

// Push inserts item with the given priority.
// Complexity: O(log n).
func (pq *PriorityQueue[T]) Push(item T, priority float64) {
	heap.Push(&pq.h, entry[T]{item: item, priority: priority, seq: pq.seq})
	pq.seq++
}

// Pop removes and returns the lowest-priority item.
// Complexity: O(log n).
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if len(pq.h) == 0 {
		var zero T
		return zero, false
	}
	e := heap.Pop(&pq.h).(entry[T])

	return e.item, true
}

// PopWithPriority is Pop that also reports the priority the item was pushed with.
func (pq *PriorityQueue[T]) PopWithPriority() (T, float64, bool) {
	if len(pq.h) == 0 {
		var zero T
		return zero, 0, false
	}
	e := heap.Pop(&pq.h).(entry[T])

	return e.item, e.priority, true
}

// Peek returns the lowest-priority item without removing it.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if len(pq.h) == 0 {
		var zero T
		return zero, false
	}

	return pq.h[0].item, true
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h) }

// Empty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) Empty() bool { return len(pq.h) == 0 }

// entry is one heap slot: the item, its priority and its insertion stamp.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entryHeap implements heap.Interface ordered by (priority, seq) ascending.
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion stamp so ties are FIFO.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return e
}
