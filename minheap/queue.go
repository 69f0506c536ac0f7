package minheap

type item[T any] struct {
	value    T
	priority int
	seq      uint64 // insertion order, breaks priority ties
}

// queue implements heap.Interface. Smaller priorities sit closer to the root.
type queue[T any] struct {
	items    []*item[T]
	onResize func(from, to int)
}

func (q *queue[T]) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}
func (q *queue[T]) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *queue[T]) Len() int      { return len(q.items) }

func (q *queue[T]) Push(x any) {
	// manually expand slice cap
	l, c := len(q.items), cap(q.items)
	if l == c {
		nc := c * 2
		if nc == 0 {
			nc = 1
		}
		nq := make([]*item[T], l, nc)
		copy(nq, q.items)
		q.items = nq
		q.resized(c, nc)
	}
	q.items = q.items[:l+1]
	q.items[l] = x.(*item[T])
}

func (q *queue[T]) Pop() any {
	// manually shrink slice cap
	l, c := len(q.items), cap(q.items)
	if l < c/2 && c > 25 {
		nq := make([]*item[T], l, c/2)
		copy(nq, q.items)
		q.items = nq
		q.resized(c, c/2)
	}
	it := q.items[l-1]
	q.items[l-1] = nil
	q.items = q.items[:l-1]
	return it
}

func (q *queue[T]) resized(from, to int) {
	if q.onResize != nil {
		q.onResize(from, to)
	}
}
