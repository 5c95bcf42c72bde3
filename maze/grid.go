/*
Package maze provides the data model and algorithms for perfect rectangular mazes.

It defines the Grid structure, composed of Cell values carrying wall flags and
pixel geometry, a randomized recursive-backtracking generator, and utilities for
neighbor lookup, wall-pair breaking and ASCII visualization. The carved maze is a
spanning tree of the grid graph: exactly one simple path exists between any two
cells.
*/
package maze

import (
	"errors"
	"fmt"
)

// Directions maps a direction name to the (row, col) delta it represents.
var Directions = map[string]CellPosition{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	West:  {Row: 0, Col: -1},
}

// Direction names.
const (
	North = "North"
	South = "South"
	East  = "East"
	West  = "West"
)

// directionOrder fixes the canonical neighbor order before callers shuffle.
var directionOrder = []string{North, West, South, East}

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrDegenerateCell    = errors.New("degenerate cell geometry")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
)

// Grid is a rectangular maze grid of Rows x Cols cells. Cell (r, c) occupies the
// pixel rectangle origin + (c*CellWidth, r*CellHeight) through
// origin + ((c+1)*CellWidth, (r+1)*CellHeight).
type Grid struct {
	OriginX    int // OriginX is the pixel x coordinate of the grid's top-left corner.
	OriginY    int // OriginY is the pixel y coordinate of the grid's top-left corner.
	Rows       int // Rows is the number of rows in the grid.
	Cols       int // Cols is the number of columns in the grid.
	CellWidth  int // CellWidth is the pixel width of each cell.
	CellHeight int // CellHeight is the pixel height of each cell.

	cells [][]*Cell
}

// NewGrid initializes a grid of the given dimensions with every wall present and
// no cell visited. Cell storage itself is created lazily by Cells.
func NewGrid(originX, originY, rows, cols, cellWidth, cellHeight int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if cellWidth < 1 || cellHeight < 1 {
		return nil, fmt.Errorf("%w: cell size %dx%d", ErrDegenerateCell, cellWidth, cellHeight)
	}

	return &Grid{
		OriginX:    originX,
		OriginY:    originY,
		Rows:       rows,
		Cols:       cols,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}, nil
}

// Cells returns the 2D cell storage, creating it on first access. Repeated calls
// return the same instances.
func (g *Grid) Cells() [][]*Cell {
	if g.cells == nil {
		cells := make([][]*Cell, g.Rows)
		for r := range cells {
			cells[r] = make([]*Cell, g.Cols)
			for c := range cells[r] {
				x1 := g.OriginX + c*g.CellWidth
				y1 := g.OriginY + r*g.CellHeight
				cells[r][c] = &Cell{
					NorthWall: true,
					SouthWall: true,
					EastWall:  true,
					WestWall:  true,
					X1:        x1,
					Y1:        y1,
					X2:        x1 + g.CellWidth,
					Y2:        y1 + g.CellHeight,
				}
			}
		}
		g.cells = cells
	}
	return g.cells
}

// CellAt returns the cell at the given position.
func (g *Grid) CellAt(pos CellPosition) *Cell {
	return g.Cells()[pos.Row][pos.Col]
}

// InBounds reports whether the position lies within the grid.
func (g *Grid) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.Rows && pos.Col >= 0 && pos.Col < g.Cols
}

// Entrance returns the entrance cell position, the grid's top-left cell.
func (g *Grid) Entrance() CellPosition {
	return CellPosition{Row: 0, Col: 0}
}

// Exit returns the exit cell position, the grid's bottom-right cell.
func (g *Grid) Exit() CellPosition {
	return CellPosition{Row: g.Rows - 1, Col: g.Cols - 1}
}

// Neighbors finds all in-bounds positions adjacent to pos, in canonical
// north, west, south, east order.
func (g *Grid) Neighbors(pos CellPosition) []CellPosition {
	var result []CellPosition
	for _, dir := range directionOrder {
		delta := Directions[dir]
		neighbor := CellPosition{Row: pos.Row + delta.Row, Col: pos.Col + delta.Col}
		if g.InBounds(neighbor) {
			result = append(result, neighbor)
		}
	}
	return result
}

// directionBetween derives the direction leading from a to b. It fails with
// ErrNotAdjacent unless the positions differ by exactly one step in exactly one
// axis.
func directionBetween(a, b CellPosition) (string, error) {
	for _, dir := range directionOrder {
		delta := Directions[dir]
		if b.Row == a.Row+delta.Row && b.Col == a.Col+delta.Col {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrNotAdjacent, a.Row, a.Col, b.Row, b.Col)
}

// BreakWallBetween removes the wall pair between two adjacent cells. Walls are
// always broken in matched pairs so the interior stays mutually consistent.
func (g *Grid) BreakWallBetween(a, b CellPosition) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("%w: position out of bounds", ErrNotAdjacent)
	}

	dir, err := directionBetween(a, b)
	if err != nil {
		return err
	}

	from, to := g.CellAt(a), g.CellAt(b)
	switch dir {
	case North:
		from.NorthWall = false
		to.SouthWall = false
	case South:
		from.SouthWall = false
		to.NorthWall = false
	case East:
		from.EastWall = false
		to.WestWall = false
	case West:
		from.WestWall = false
		to.EastWall = false
	}
	return nil
}

// PassageOpen reports whether the wall pair between two adjacent cells is down
// on both sides. Non-adjacent or out-of-bounds positions have no passage.
func (g *Grid) PassageOpen(a, b CellPosition) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}

	dir, err := directionBetween(a, b)
	if err != nil {
		return false
	}

	from, to := g.CellAt(a), g.CellAt(b)
	switch dir {
	case North:
		return !from.NorthWall && !to.SouthWall
	case South:
		return !from.SouthWall && !to.NorthWall
	case East:
		return !from.EastWall && !to.WestWall
	case West:
		return !from.WestWall && !to.EastWall
	default:
		return false
	}
}

// ResetVisited clears the visited flag on every cell. It must run before a solve
// pass whenever a previous generation or solve pass used the grid.
func (g *Grid) ResetVisited() {
	for _, row := range g.Cells() {
		for _, cell := range row {
			cell.Visited = false
		}
	}
}

// String provides a textual representation of the maze walls.
func (g *Grid) String() string {
	var output string

	// Top boundary follows each cell's north wall so the entrance gap shows.
	top := "+"
	for col := 0; col < g.Cols; col++ {
		if g.Cells()[0][col].NorthWall {
			top += "---+"
		} else {
			top += "   +"
		}
	}
	output += top + "\n"

	for row := 0; row < g.Rows; row++ {
		cellRow := ""
		if g.Cells()[row][0].WestWall {
			cellRow += "|"
		} else {
			cellRow += " "
		}
		for col := 0; col < g.Cols; col++ {
			cell := g.Cells()[row][col]
			cellRow += "   "
			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		wallRow := "+"
		for col := 0; col < g.Cols; col++ {
			cell := g.Cells()[row][col]
			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
