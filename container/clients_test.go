package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferMovesExactCount(t *testing.T) {
	source := NewStack[int]()
	target := NewQueue[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		source.Add(v)
	}

	moved := Transfer[int](source, target, 3)

	assert.Equal(t, 3, moved)
	assert.Equal(t, 2, source.Size())
	// Stack removal order lands in the queue top-first.
	assert.Equal(t, []int{5, 4, 3}, Drain[int](target))
}

func TestTransferStopsAtExhaustionWithoutError(t *testing.T) {
	source := NewQueue[int]()
	target := NewStack[int]()
	source.Add(8)
	source.Add(9)

	moved := Transfer[int](source, target, 10)

	assert.Equal(t, 2, moved)
	assert.True(t, source.IsEmpty())
	assert.Equal(t, 2, target.Size())
}

func TestTransferFromEmptySource(t *testing.T) {
	moved := Transfer[int](NewQueue[int](), NewStack[int](), 4)
	assert.Equal(t, 0, moved)
}

func TestTransferAcrossEveryVariantPair(t *testing.T) {
	for sourceName, buildSource := range variants {
		for targetName, buildTarget := range variants {
			t.Run(sourceName+"_to_"+targetName, func(t *testing.T) {
				source := buildSource()
				target := buildTarget()
				for _, v := range []int{4, 7, 1} {
					source.Add(v)
				}
				moved := Transfer(source, target, 2)
				assert.Equal(t, 2, moved)
				assert.Equal(t, 1, source.Size())
				assert.Equal(t, 2, target.Size())
			})
		}
	}
}

func TestCountConsumesContainer(t *testing.T) {
	for name, build := range variants {
		t.Run(name, func(t *testing.T) {
			c := build()
			for _, v := range []int{10, 20, 30, 40, 50} {
				c.Add(v)
			}
			assert.Equal(t, 5, Count(c))
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestSumIsOrderIndependent(t *testing.T) {
	for name, build := range variants {
		t.Run(name, func(t *testing.T) {
			c := build()
			for _, v := range []int{10, 20, 30, 40, 50} {
				c.Add(v)
			}
			assert.Equal(t, 150, Sum(c))
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestDrainOnEmptyContainer(t *testing.T) {
	assert.Empty(t, Drain[int](NewPriorityQueue[int]()))
}
