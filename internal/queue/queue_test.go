package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLess(t *testing.T) {
	assert.True(t, Less(Item{Index: 5, Distance: 1}, Item{Index: 0, Distance: 2}))
	assert.False(t, Less(Item{Index: 0, Distance: 2}, Item{Index: 5, Distance: 1}))

	// Equal distance: earlier library index ranks first.
	assert.True(t, Less(Item{Index: 1, Distance: 3}, Item{Index: 2, Distance: 3}))
	assert.False(t, Less(Item{Index: 2, Distance: 3}, Item{Index: 1, Distance: 3}))
}

func TestMax(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		q := NewMax(4)
		assert.Equal(t, 0, q.Len())

		_, ok := q.Top()
		assert.False(t, ok)

		_, ok = q.Pop()
		assert.False(t, ok)
	})

	t.Run("PopsWorstFirst", func(t *testing.T) {
		q := NewMax(4)
		q.Push(Item{Index: 0, Distance: 2})
		q.Push(Item{Index: 1, Distance: 5})
		q.Push(Item{Index: 2, Distance: 1})
		q.Push(Item{Index: 3, Distance: 5})

		var order []Item
		for q.Len() > 0 {
			item, ok := q.Pop()
			require.True(t, ok)
			order = append(order, item)
		}

		// Worst first: ties pop the later index first.
		assert.Equal(t, []Item{
			{Index: 3, Distance: 5},
			{Index: 1, Distance: 5},
			{Index: 0, Distance: 2},
			{Index: 2, Distance: 1},
		}, order)
	})

	t.Run("BoundedSelection", func(t *testing.T) {
		// Keep the 2 best of 5 candidates, the way the matcher does.
		const k = 2
		q := NewMax(k)
		for _, item := range []Item{
			{Index: 0, Distance: 9},
			{Index: 1, Distance: 4},
			{Index: 2, Distance: 4},
			{Index: 3, Distance: 7},
			{Index: 4, Distance: 1},
		} {
			if q.Len() < k {
				q.Push(item)
				continue
			}
			if worst, _ := q.Top(); Less(item, worst) {
				q.Pop()
				q.Push(item)
			}
		}

		second, ok := q.Pop()
		require.True(t, ok)
		first, ok := q.Pop()
		require.True(t, ok)

		assert.Equal(t, Item{Index: 4, Distance: 1}, first)
		// Index 1 beats the equally distant index 2.
		assert.Equal(t, Item{Index: 1, Distance: 4}, second)
	})
}
