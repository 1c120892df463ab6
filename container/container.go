// container provides a family of interchangeable sequential containers
// sharing a single behavioral contract, together with generic client
// operations written only against that contract. It is the Liskov
// substitution half of this repository: any variant can stand in for any
// other in client code without changing the client's correctness.
package container

import (
	"cmp"
	"errors"
)

var (
	// ErrEmptyContainer is returned by Remove and Peek when the container
	// holds no elements. It is the only error kind in the contract.
	ErrEmptyContainer = errors.New("container is empty")
)

// Container is the contract every variant in this package honors. The
// ordering constraint exists so the priority variant can satisfy the same
// interface as the positional ones.
//
// Substitutability rules: no implementation may strengthen preconditions
// (Add accepts every value of T and never fails), weaken postconditions
// (Remove returns exactly what an immediately preceding Peek reported),
// introduce nondeterminism, or mutate state from Peek, Size or IsEmpty.
type Container[T cmp.Ordered] interface {
	// Add appends an element. Size grows by exactly one.
	Add(element T)
	// Remove takes out and returns the element selected by the variant's
	// policy, or ErrEmptyContainer when there is none. Size shrinks by
	// exactly one on success.
	Remove() (T, error)
	// Peek returns the element Remove would return next, without mutating
	// state, or ErrEmptyContainer when there is none.
	Peek() (T, error)
	// Size reports the current element count.
	Size() int
	// IsEmpty reports whether Size is zero.
	IsEmpty() bool
}

// Compile-time interface checks for the variant set.
var (
	_ Container[int] = (*Stack[int])(nil)
	_ Container[int] = (*Queue[int])(nil)
	_ Container[int] = (*PriorityQueue[int])(nil)
	_ Container[int] = (*Deque[int])(nil)
)
