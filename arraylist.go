package collections

import (
	"fmt"
	"iter"
	"slices"

	"github.com/sirupsen/logrus"
)

// BoundedArrayList is an indexable sequence stored in a fixed-size buffer.
// When an append would overflow the buffer, the buffer is reallocated at twice
// its size. Capacity never shrinks.
//
// The zero value is an empty list that allocates the default capacity on its
// first Add. A BoundedArrayList is not safe for concurrent use.
type BoundedArrayList[T comparable] struct {
	buf   []T // len(buf) is the capacity
	count int

	logger logrus.FieldLogger
}

func NewBoundedArrayList[T comparable](opts ...Option) *BoundedArrayList[T] {
	o := buildOptions(opts)
	return &BoundedArrayList[T]{
		buf:    make([]T, o.capacity),
		logger: o.logger,
	}
}

func (l *BoundedArrayList[T]) Add(item T) {
	if l.count == len(l.buf) {
		l.grow()
	}
	l.buf[l.count] = item
	l.count++
}

func (l *BoundedArrayList[T]) grow() {
	size := len(l.buf) * 2
	if size == 0 {
		size = defaultCapacity
	}
	buf := make([]T, size)
	copy(buf, l.buf[:l.count])
	logger := l.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.WithFields(logrus.Fields{
		"from": len(l.buf),
		"to":   size,
	}).Debug("array list grown")
	l.buf = buf
}

// Remove deletes the first live element equal to item and reports whether
// one was found.
func (l *BoundedArrayList[T]) Remove(item T) bool {
	i := l.indexOf(item)
	if i < 0 {
		return false
	}
	copy(l.buf[i:], l.buf[i+1:l.count])
	l.count--
	var zero T
	l.buf[l.count] = zero
	return true
}

func (l *BoundedArrayList[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.buf[index], nil
}

func (l *BoundedArrayList[T]) Set(index int, item T) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.buf[index] = item
	return nil
}

func (l *BoundedArrayList[T]) Contains(item T) bool { return l.indexOf(item) >= 0 }

func (l *BoundedArrayList[T]) Count() int { return l.count }

// Cap returns the size of the backing buffer.
func (l *BoundedArrayList[T]) Cap() int { return len(l.buf) }

// All iterates over the live elements in index order. The iterator works on
// a copy taken when All is called, so later changes to the list are not
// visited.
func (l *BoundedArrayList[T]) All() iter.Seq2[int, T] {
	view := slices.Clone(l.buf[:l.count])
	return func(yield func(int, T) bool) {
		for i, v := range view {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values is like All without the index.
func (l *BoundedArrayList[T]) Values() iter.Seq[T] {
	view := slices.Clone(l.buf[:l.count])
	return func(yield func(T) bool) {
		for _, v := range view {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *BoundedArrayList[T]) indexOf(item T) int {
	for i := 0; i < l.count; i++ {
		if l.buf[i] == item {
			return i
		}
	}
	return -1
}

func (l *BoundedArrayList[T]) checkIndex(index int) error {
	if index < 0 || index >= l.count {
		return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, index, l.count)
	}
	return nil
}
