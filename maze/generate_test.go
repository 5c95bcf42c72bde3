package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenWallPairs counts interior passages by checking each cell's east and
// south sides once.
func brokenWallPairs(g *Grid) int {
	count := 0
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			pos := CellPosition{Row: r, Col: c}
			if g.PassageOpen(pos, CellPosition{Row: r, Col: c + 1}) {
				count++
			}
			if g.PassageOpen(pos, CellPosition{Row: r + 1, Col: c}) {
				count++
			}
		}
	}
	return count
}

func generatedGrid(t *testing.T, rows, cols int, seed int64) *Grid {
	t.Helper()
	g, err := NewGrid(0, 0, rows, cols, 10, 10)
	require.NoError(t, err)
	Generate(g, rand.New(rand.NewSource(seed)))
	return g
}

func TestGenerate(t *testing.T) {
	t.Run("breaks entrance and exit", func(t *testing.T) {
		g := generatedGrid(t, 6, 8, 42)

		entrance := g.CellAt(g.Entrance())
		assert.False(t, entrance.NorthWall)
		assert.False(t, entrance.WestWall)

		exit := g.CellAt(g.Exit())
		assert.False(t, exit.SouthWall)
		assert.False(t, exit.EastWall)
	})

	t.Run("carves a spanning tree", func(t *testing.T) {
		g := generatedGrid(t, 6, 8, 42)

		// A spanning tree over rows*cols cells has exactly rows*cols-1 edges.
		assert.Equal(t, g.Rows*g.Cols-1, brokenWallPairs(g))
	})

	t.Run("interior walls stay mutually consistent", func(t *testing.T) {
		g := generatedGrid(t, 6, 8, 42)

		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				cell := g.Cells()[r][c]
				if c+1 < g.Cols {
					assert.Equal(t, cell.EastWall, g.Cells()[r][c+1].WestWall)
				}
				if r+1 < g.Rows {
					assert.Equal(t, cell.SouthWall, g.Cells()[r+1][c].NorthWall)
				}
			}
		}
	})

	t.Run("resets visited flags", func(t *testing.T) {
		g := generatedGrid(t, 6, 8, 42)

		for _, row := range g.Cells() {
			for _, cell := range row {
				assert.False(t, cell.Visited)
			}
		}
	})

	t.Run("same seed reproduces the maze", func(t *testing.T) {
		first := generatedGrid(t, 6, 8, 7)
		second := generatedGrid(t, 6, 8, 7)

		for r := 0; r < first.Rows; r++ {
			for c := 0; c < first.Cols; c++ {
				a, b := first.Cells()[r][c], second.Cells()[r][c]
				assert.Equal(t, a.NorthWall, b.NorthWall)
				assert.Equal(t, a.SouthWall, b.SouthWall)
				assert.Equal(t, a.EastWall, b.EastWall)
				assert.Equal(t, a.WestWall, b.WestWall)
			}
		}
	})

	t.Run("nil rng still carves a full maze", func(t *testing.T) {
		g, err := NewGrid(0, 0, 4, 4, 10, 10)
		require.NoError(t, err)
		Generate(g, nil)

		assert.Equal(t, g.Rows*g.Cols-1, brokenWallPairs(g))
	})

	t.Run("2x2 maze has exactly three passages", func(t *testing.T) {
		g := generatedGrid(t, 2, 2, 1)
		assert.Equal(t, 3, brokenWallPairs(g))
	})

	t.Run("single cell maze", func(t *testing.T) {
		g := generatedGrid(t, 1, 1, 1)
		assert.Equal(t, 0, brokenWallPairs(g))

		cell := g.CellAt(g.Entrance())
		assert.False(t, cell.NorthWall)
		assert.False(t, cell.WestWall)
		assert.False(t, cell.SouthWall)
		assert.False(t, cell.EastWall)
	})
}
