package container

import "cmp"

// Queue is the FIFO variant: Remove and Peek target the earliest added
// element still present. Not safe for concurrent use.
type Queue[T cmp.Ordered] struct {
	items []T
}

// NewQueue returns an empty Queue.
func NewQueue[T cmp.Ordered]() *Queue[T] {
	return &Queue[T]{items: make([]T, 0)}
}

func (q *Queue[T]) Add(element T) {
	q.items = append(q.items, element)
}

func (q *Queue[T]) Remove() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	element := q.items[0]
	q.items = q.items[1:]
	return element, nil
}

func (q *Queue[T]) Peek() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return q.items[0], nil
}

func (q *Queue[T]) Size() int {
	return len(q.items)
}

func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}
