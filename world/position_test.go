package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborsOf(t *testing.T) {
	t.Run("Neighbor count by cell kind on a 4x4 grid", func(t *testing.T) {
		side := 4
		for i := 0; i < side*side; i++ {
			pos := Position(i)
			onRowEdge := pos.Row(side) == 0 || pos.Row(side) == side-1
			onColEdge := pos.Col(side) == 0 || pos.Col(side) == side-1

			expected := 4
			switch {
			case onRowEdge && onColEdge:
				expected = 2
			case onRowEdge || onColEdge:
				expected = 3
			}
			assert.Len(t, NeighborsOf(side, pos), expected, "position %d", i)
		}
	})

	t.Run("Interior cell", func(t *testing.T) {
		assert.ElementsMatch(t, []Position{1, 4, 6, 9}, NeighborsOf(4, 5))
	})

	t.Run("Corners", func(t *testing.T) {
		assert.ElementsMatch(t, []Position{1, 4}, NeighborsOf(4, 0))
		assert.ElementsMatch(t, []Position{2, 7}, NeighborsOf(4, 3))
		assert.ElementsMatch(t, []Position{8, 13}, NeighborsOf(4, 12))
		assert.ElementsMatch(t, []Position{11, 14}, NeighborsOf(4, 15))
	})

	t.Run("No wrap around between rows", func(t *testing.T) {
		assert.NotContains(t, NeighborsOf(4, 3), Position(4))
		assert.NotContains(t, NeighborsOf(4, 4), Position(3))
	})

	t.Run("Neighbors agree with row and column arithmetic", func(t *testing.T) {
		side := 5
		for i := 0; i < side*side; i++ {
			pos := Position(i)
			for _, n := range NeighborsOf(side, pos) {
				dr := n.Row(side) - pos.Row(side)
				dc := n.Col(side) - pos.Col(side)
				assert.Equal(t, 1, dr*dr+dc*dc, "%d -> %d is not orthogonal", pos, n)
				assert.True(t, n.InBound(side))
			}
		}
	})
}

func TestPositionConversion(t *testing.T) {
	side := 4
	for i := 0; i < side*side; i++ {
		pos := Position(i)
		assert.Equal(t, pos, PositionAt(side, pos.Row(side), pos.Col(side)))
	}
	assert.Equal(t, 2, Position(10).Row(side))
	assert.Equal(t, 2, Position(10).Col(side))
	assert.False(t, Position(16).InBound(side))
	assert.False(t, Position(-1).InBound(side))
}

func TestStartBlock(t *testing.T) {
	assert.Equal(t, []Position{0, 1, 4, 5}, StartBlock(4))
	assert.Equal(t, []Position{0, 1, 6, 7}, StartBlock(6))
}

func TestExclusion(t *testing.T) {
	base := NewExclusion(0, 1)
	extended := base.With(7, 1)

	assert.True(t, extended.Contains(7))
	assert.Len(t, extended, 3)
	assert.False(t, base.Contains(7), "With must not mutate the receiver")
	assert.Len(t, base, 2)
}
