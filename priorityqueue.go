package collections

import (
	"github.com/KFCxMcDonalds/collections/minheap"
	"github.com/sirupsen/logrus"
)

// PriorityQueue hands out values in ascending priority order: the entry with
// the numerically smallest priority is dequeued first, so priority 1 leaves
// before priority 5. Entries that share a priority are dequeued in the order
// they were enqueued.
//
// The zero value is an empty queue ready to use. A PriorityQueue is not safe
// for concurrent use.
type PriorityQueue[T any] struct {
	heap *minheap.Heap[T]
}

func NewPriorityQueue[T any](opts ...Option) *PriorityQueue[T] {
	o := buildOptions(opts)
	return &PriorityQueue[T]{
		heap: newEntryHeap[T](o.capacity, o.logger),
	}
}

func newEntryHeap[T any](capacity int, logger logrus.FieldLogger) *minheap.Heap[T] {
	return minheap.New[T](capacity, func(from, to int) {
		logger.WithFields(logrus.Fields{
			"from": from,
			"to":   to,
		}).Debug("priority queue resized")
	})
}

func (pq *PriorityQueue[T]) entries() *minheap.Heap[T] {
	if pq.heap == nil {
		pq.heap = newEntryHeap[T](defaultCapacity, logrus.StandardLogger())
	}
	return pq.heap
}

func (pq *PriorityQueue[T]) Enqueue(item T, priority int) {
	pq.entries().Push(item, priority)
}

// Dequeue removes and returns the value with the smallest priority.
// It returns ErrEmpty if the queue has no entries.
func (pq *PriorityQueue[T]) Dequeue() (T, error) {
	v, ok := pq.entries().Pop()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// Peek returns the value Dequeue would return, leaving it in the queue.
func (pq *PriorityQueue[T]) Peek() (T, error) {
	v, ok := pq.entries().Peek()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

func (pq *PriorityQueue[T]) Len() int { return pq.entries().Len() }
