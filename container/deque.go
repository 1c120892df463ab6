package container

import "cmp"

// End selects which end of a Deque its Remove and Peek operate on.
type End int

const (
	// Back removes the most recently added element (the default).
	Back End = iota
	// Front removes the earliest added element still present.
	Front
)

// DequeOption configures a Deque at construction time.
type DequeOption func(*dequeConfig)

type dequeConfig struct {
	end End
}

// WithFrontRemoval fixes the deque's Remove and Peek to the front for the
// lifetime of the instance.
func WithFrontRemoval() DequeOption {
	return func(c *dequeConfig) {
		c.end = Front
	}
}

// Deque is a double ended queue with its removal end fixed at
// construction. Add always appends at the back; Remove and Peek both use
// the configured end, so a front-mode deque behaves as a queue and a
// back-mode deque as a stack, while staying one substitutable type.
// Not safe for concurrent use.
type Deque[T cmp.Ordered] struct {
	items []T
	end   End
}

// NewDeque returns an empty Deque removing from the back unless
// configured otherwise.
func NewDeque[T cmp.Ordered](opts ...DequeOption) *Deque[T] {
	cfg := dequeConfig{end: Back}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Deque[T]{items: make([]T, 0), end: cfg.end}
}

// RemovalEnd reports which end this instance removes from.
func (d *Deque[T]) RemovalEnd() End {
	return d.end
}

func (d *Deque[T]) Add(element T) {
	d.items = append(d.items, element)
}

func (d *Deque[T]) Remove() (T, error) {
	if len(d.items) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	if d.end == Front {
		element := d.items[0]
		d.items = d.items[1:]
		return element, nil
	}
	last := len(d.items) - 1
	element := d.items[last]
	d.items = d.items[:last]
	return element, nil
}

func (d *Deque[T]) Peek() (T, error) {
	if len(d.items) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	if d.end == Front {
		return d.items[0], nil
	}
	return d.items[len(d.items)-1], nil
}

func (d *Deque[T]) Size() int {
	return len(d.items)
}

func (d *Deque[T]) IsEmpty() bool {
	return len(d.items) == 0
}
