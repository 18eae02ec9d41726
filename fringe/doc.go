// Package fringe provides the frontier containers used by the search
// strategies of lvsearch: a LIFO Stack, a FIFO Queue and a min PriorityQueue.
//
// What
//
//   - Stack[T]:         last pushed, first popped (depth-first order).
//   - Queue[T]:         first pushed, first popped (breadth-first order).
//   - PriorityQueue[T]: lowest priority popped first; equal priorities are
//     popped in insertion order.
//
// All three satisfy Fringe[T] (Pop, Peek, Len, Empty). Push is discipline
// specific: Stack and Queue take only the item, PriorityQueue also takes a
// float64 priority.
//
// Determinism
//
//	PriorityQueue stamps every pushed entry with a monotonically increasing
//	sequence number and breaks priority ties on it. Two runs that push the
//	same items with the same priorities in the same order pop them in the
//	same order, on every platform.
//
// Complexity
//
//   - Stack:         Push/Pop O(1) amortized.
//   - Queue:         Push/Pop O(1) amortized (head index, periodic compaction).
//   - PriorityQueue: Push/Pop O(log n), Peek O(1).
//
// Concurrency
//
//	The containers are not safe for concurrent use. Each search run owns its
//	own fringe.
//
// Usage
//
//	pq := fringe.NewPriorityQueue[string]()
//	pq.Push("b", 2)
//	pq.Push("a", 1)
//	first, _ := pq.Pop() // "a"
package fringe
