// Package minheap is a binary min-heap of values keyed by an integer priority.
// Entries with equal priority leave the heap in the order they entered it.
package minheap

import "container/heap"

type Heap[T any] struct {
	q   queue[T]
	seq uint64
}

// New returns a heap with room for capacity entries. onResize, if not nil,
// is called every time the backing slice is reallocated.
func New[T any](capacity int, onResize func(from, to int)) *Heap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Heap[T]{
		q: queue[T]{
			items:    make([]*item[T], 0, capacity),
			onResize: onResize,
		},
	}
}

func (h *Heap[T]) Push(value T, priority int) {
	h.seq++
	heap.Push(&h.q, &item[T]{
		value:    value,
		priority: priority,
		seq:      h.seq,
	})
}

// Pop removes and returns the value with the smallest priority.
// ok is false when the heap is empty.
func (h *Heap[T]) Pop() (value T, ok bool) {
	if h.q.Len() == 0 {
		return value, false
	}
	return heap.Pop(&h.q).(*item[T]).value, true
}

// Peek returns the value Pop would return without removing it.
func (h *Heap[T]) Peek() (value T, ok bool) {
	if h.q.Len() == 0 {
		return value, false
	}
	return h.q.items[0].value, true
}

func (h *Heap[T]) Len() int { return h.q.Len() }

func (h *Heap[T]) Cap() int { return cap(h.q.items) }
