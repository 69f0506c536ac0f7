package collections

import "slices"

// Repository is an unordered collection that keeps insertion order.
type Repository[T comparable] struct {
	items []T
}

func NewRepository[T comparable](opts ...Option) *Repository[T] {
	o := buildOptions(opts)
	return &Repository[T]{items: make([]T, 0, o.capacity)}
}

func (r *Repository[T]) Add(item T) { r.items = append(r.items, item) }

// Remove deletes the first element equal to item and reports whether one
// was found.
func (r *Repository[T]) Remove(item T) bool {
	i := slices.Index(r.items, item)
	if i < 0 {
		return false
	}
	r.items = slices.Delete(r.items, i, i+1)
	return true
}

// GetAll returns a copy of the elements in insertion order.
func (r *Repository[T]) GetAll() []T { return slices.Clone(r.items) }

func (r *Repository[T]) Len() int { return len(r.items) }
