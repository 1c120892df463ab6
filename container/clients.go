package container

import "cmp"

// The operations in this file are written purely against the Container
// contract. They are the client side of the substitutability demonstration:
// any variant can be passed to any of them.

// Transfer removes up to count elements from source and adds each to
// target, stopping early without error if source runs out. It returns the
// number of elements actually moved.
func Transfer[T cmp.Ordered](source, target Container[T], count int) int {
	moved := 0
	for moved < count && !source.IsEmpty() {
		element, err := source.Remove()
		if err != nil {
			break
		}
		target.Add(element)
		moved++
	}
	return moved
}

// Drain removes every element, returning them in removal order. The
// container is empty afterwards.
func Drain[T cmp.Ordered](c Container[T]) []T {
	elements := make([]T, 0, c.Size())
	for !c.IsEmpty() {
		element, err := c.Remove()
		if err != nil {
			break
		}
		elements = append(elements, element)
	}
	return elements
}

// Count reports how many elements the container held, by removing them
// all. The container is consumed.
func Count[T cmp.Ordered](c Container[T]) int {
	return len(Drain(c))
}

// Sum adds up every element, removing them all. The container is consumed.
func Sum[T cmp.Ordered](c Container[T]) T {
	var total T
	for _, element := range Drain(c) {
		total += element
	}
	return total
}
