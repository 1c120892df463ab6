package container

import "cmp"

// Stack is the LIFO variant: Remove and Peek target the most recently
// added element. Not safe for concurrent use.
type Stack[T cmp.Ordered] struct {
	items []T
}

// NewStack returns an empty Stack.
func NewStack[T cmp.Ordered]() *Stack[T] {
	return &Stack[T]{items: make([]T, 0)}
}

func (s *Stack[T]) Add(element T) {
	s.items = append(s.items, element)
}

func (s *Stack[T]) Remove() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	last := len(s.items) - 1
	element := s.items[last]
	s.items = s.items[:last]
	return element, nil
}

func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return s.items[len(s.items)-1], nil
}

func (s *Stack[T]) Size() int {
	return len(s.items)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}
