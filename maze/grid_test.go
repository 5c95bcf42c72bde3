package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Run("valid dimensions", func(t *testing.T) {
		g, err := NewGrid(20, 30, 4, 6, 10, 5)
		require.NoError(t, err)
		assert.Equal(t, 4, g.Rows)
		assert.Equal(t, 6, g.Cols)

		cells := g.Cells()
		assert.Len(t, cells, 4)
		for _, row := range cells {
			assert.Len(t, row, 6)
		}
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		_, err := NewGrid(0, 0, 0, 5, 10, 10)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = NewGrid(0, 0, 5, 0, 10, 10)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = NewGrid(0, 0, -1, -1, 10, 10)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("degenerate cell geometry", func(t *testing.T) {
		_, err := NewGrid(0, 0, 3, 3, 0, 10)
		assert.ErrorIs(t, err, ErrDegenerateCell)

		_, err = NewGrid(0, 0, 3, 3, 10, -5)
		assert.ErrorIs(t, err, ErrDegenerateCell)
	})
}

func TestGridCells(t *testing.T) {
	t.Run("lazy construction is idempotent", func(t *testing.T) {
		g, err := NewGrid(0, 0, 3, 3, 10, 10)
		require.NoError(t, err)

		first := g.Cells()
		second := g.Cells()
		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				assert.Same(t, first[r][c], second[r][c])
			}
		}
	})

	t.Run("all walls present initially", func(t *testing.T) {
		g, err := NewGrid(0, 0, 2, 2, 10, 10)
		require.NoError(t, err)

		for _, row := range g.Cells() {
			for _, cell := range row {
				assert.True(t, cell.NorthWall)
				assert.True(t, cell.SouthWall)
				assert.True(t, cell.EastWall)
				assert.True(t, cell.WestWall)
				assert.False(t, cell.Visited)
			}
		}
	})

	t.Run("geometry follows origin and cell size", func(t *testing.T) {
		g, err := NewGrid(20, 30, 4, 5, 10, 5)
		require.NoError(t, err)

		cell := g.CellAt(CellPosition{Row: 2, Col: 3})
		assert.Equal(t, 50, cell.X1)
		assert.Equal(t, 40, cell.Y1)
		assert.Equal(t, 60, cell.X2)
		assert.Equal(t, 45, cell.Y2)

		for _, row := range g.Cells() {
			for _, c := range row {
				assert.Less(t, c.X1, c.X2)
				assert.Less(t, c.Y1, c.Y2)
			}
		}
	})
}

func TestGridNeighbors(t *testing.T) {
	g, err := NewGrid(0, 0, 3, 3, 10, 10)
	if err != nil {
		t.Fatalf("creating grid: %v", err)
	}

	t.Run("center cell in canonical order", func(t *testing.T) {
		neighbors := g.Neighbors(CellPosition{Row: 1, Col: 1})
		expected := []CellPosition{
			{Row: 0, Col: 1}, // north
			{Row: 1, Col: 0}, // west
			{Row: 2, Col: 1}, // south
			{Row: 1, Col: 2}, // east
		}
		assert.Equal(t, expected, neighbors)
	})

	t.Run("corner cell", func(t *testing.T) {
		neighbors := g.Neighbors(CellPosition{Row: 0, Col: 0})
		expected := []CellPosition{
			{Row: 1, Col: 0}, // south
			{Row: 0, Col: 1}, // east
		}
		assert.Equal(t, expected, neighbors)
	})
}

func TestBreakWallBetween(t *testing.T) {
	t.Run("breaks wall pair on both sides", func(t *testing.T) {
		g, _ := NewGrid(0, 0, 3, 3, 10, 10)
		a := CellPosition{Row: 0, Col: 0}
		b := CellPosition{Row: 0, Col: 1}

		err := g.BreakWallBetween(a, b)
		assert.NoError(t, err)
		assert.False(t, g.CellAt(a).EastWall)
		assert.False(t, g.CellAt(b).WestWall)
		assert.True(t, g.PassageOpen(a, b))
		assert.True(t, g.PassageOpen(b, a))
	})

	t.Run("vertical wall pair", func(t *testing.T) {
		g, _ := NewGrid(0, 0, 3, 3, 10, 10)
		a := CellPosition{Row: 2, Col: 1}
		b := CellPosition{Row: 1, Col: 1}

		err := g.BreakWallBetween(a, b)
		assert.NoError(t, err)
		assert.False(t, g.CellAt(a).NorthWall)
		assert.False(t, g.CellAt(b).SouthWall)
	})

	t.Run("non-adjacent cells fail", func(t *testing.T) {
		g, _ := NewGrid(0, 0, 3, 3, 10, 10)
		err := g.BreakWallBetween(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 2, Col: 2})
		assert.ErrorIs(t, err, ErrNotAdjacent)

		// Diagonal neighbors are not adjacent either.
		err = g.BreakWallBetween(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 1, Col: 1})
		assert.ErrorIs(t, err, ErrNotAdjacent)
	})

	t.Run("out-of-bounds cells fail", func(t *testing.T) {
		g, _ := NewGrid(0, 0, 3, 3, 10, 10)
		err := g.BreakWallBetween(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: -1})
		assert.ErrorIs(t, err, ErrNotAdjacent)
	})
}

func TestPassageOpen(t *testing.T) {
	g, _ := NewGrid(0, 0, 2, 2, 10, 10)
	a := CellPosition{Row: 0, Col: 0}
	b := CellPosition{Row: 1, Col: 0}

	assert.False(t, g.PassageOpen(a, b), "walls up means no passage")
	assert.False(t, g.PassageOpen(a, CellPosition{Row: 1, Col: 1}), "non-adjacent cells have no passage")

	if err := g.BreakWallBetween(a, b); err != nil {
		t.Fatalf("breaking wall: %v", err)
	}
	assert.True(t, g.PassageOpen(a, b))
}

func TestResetVisited(t *testing.T) {
	g, _ := NewGrid(0, 0, 3, 3, 10, 10)
	for _, row := range g.Cells() {
		for _, cell := range row {
			cell.Visited = true
		}
	}

	g.ResetVisited()
	for _, row := range g.Cells() {
		for _, cell := range row {
			assert.False(t, cell.Visited)
		}
	}
}
