package container

import (
	"cmp"
	"slices"
)

// PriorityQueue is the max-first variant: Remove and Peek target the
// largest element currently held. The backing slice is kept sorted
// ascending so both operations read the final position, which keeps them
// consistent with each other. Equal values retain their insertion order
// among themselves. Not safe for concurrent use.
type PriorityQueue[T cmp.Ordered] struct {
	items []T
}

// NewPriorityQueue returns an empty PriorityQueue.
func NewPriorityQueue[T cmp.Ordered]() *PriorityQueue[T] {
	return &PriorityQueue[T]{items: make([]T, 0)}
}

func (p *PriorityQueue[T]) Add(element T) {
	// Insert after any run of equal values so ties stay in arrival order.
	i, _ := slices.BinarySearchFunc(p.items, element, func(existing, target T) int {
		if existing <= target {
			return -1
		}
		return 1
	})
	p.items = slices.Insert(p.items, i, element)
}

func (p *PriorityQueue[T]) Remove() (T, error) {
	if len(p.items) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	last := len(p.items) - 1
	element := p.items[last]
	p.items = p.items[:last]
	return element, nil
}

func (p *PriorityQueue[T]) Peek() (T, error) {
	if len(p.items) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return p.items[len(p.items)-1], nil
}

func (p *PriorityQueue[T]) Size() int {
	return len(p.items)
}

func (p *PriorityQueue[T]) IsEmpty() bool {
	return len(p.items) == 0
}
