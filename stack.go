package collections

// Stack is a LIFO stack backed by a slice.
type Stack[T any] struct {
	items []T
}

func NewStack[T any](opts ...Option) *Stack[T] {
	o := buildOptions(opts)
	return &Stack[T]{items: make([]T, 0, o.capacity)}
}

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

func (s *Stack[T]) Pop() (T, error) {
	top, err := s.Peek()
	if err != nil {
		return top, err
	}
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

func (s *Stack[T]) Len() int { return len(s.items) }
