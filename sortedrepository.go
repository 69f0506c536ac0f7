package collections

import (
	"cmp"
	"slices"
	"sort"
)

// SortedRepository keeps its elements in ascending order at all times.
// Duplicates are kept; a newly added element goes after any equal ones.
//
// The compare function must define a total order. Use one of the
// constructors; the zero value has no ordering. A SortedRepository is not
// safe for concurrent use.
type SortedRepository[T any] struct {
	items   []T
	compare func(a, b T) int
}

func NewSortedRepository[T cmp.Ordered](opts ...Option) *SortedRepository[T] {
	return newSortedRepository(cmp.Compare[T], buildOptions(opts))
}

// NewSortedRepositoryFunc orders elements with compare, which returns a
// negative number when a < b, zero when equal and a positive number when a > b.
func NewSortedRepositoryFunc[T any](compare func(a, b T) int, opts ...Option) (*SortedRepository[T], error) {
	if compare == nil {
		return nil, ErrInvalidArgument
	}
	return newSortedRepository(compare, buildOptions(opts)), nil
}

func newSortedRepository[T any](compare func(a, b T) int, o options) *SortedRepository[T] {
	return &SortedRepository[T]{
		items:   make([]T, 0, o.capacity),
		compare: compare,
	}
}

func (r *SortedRepository[T]) Add(item T) {
	// first position holding an element greater than item
	i := sort.Search(len(r.items), func(i int) bool {
		return r.compare(r.items[i], item) > 0
	})
	r.items = slices.Insert(r.items, i, item)
}

// GetAll returns a copy of the elements in ascending order.
func (r *SortedRepository[T]) GetAll() []T { return slices.Clone(r.items) }

// FindMax returns the greatest element, or ErrEmpty if there is none.
func (r *SortedRepository[T]) FindMax() (T, error) {
	if len(r.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return r.items[len(r.items)-1], nil
}

func (r *SortedRepository[T]) Len() int { return len(r.items) }
