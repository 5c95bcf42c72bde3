// Package mazeapi provides structures and utilities for the maze REST endpoints.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/maze-api/domain"
	"github.com/beka-birhanu/maze-api/solver"
	"github.com/google/uuid"
)

// CreateMazeRequest represents a request to generate a new maze.
type CreateMazeRequest struct {
	Rows int    `json:"rows" binding:"required,min=1,max=64"`
	Cols int    `json:"cols" binding:"required,min=1,max=64"`
	Seed *int64 `json:"seed"` // optional; omit for a random maze
}

// CellResponse carries one cell's wall flags and pixel bounds for renderers.
type CellResponse struct {
	NorthWall bool `json:"north_wall"`
	SouthWall bool `json:"south_wall"`
	EastWall  bool `json:"east_wall"`
	WestWall  bool `json:"west_wall"`
	X1        int  `json:"x1"`
	Y1        int  `json:"y1"`
	X2        int  `json:"x2"`
	Y2        int  `json:"y2"`
}

// MazeResponse represents a stored maze.
type MazeResponse struct {
	ID        uuid.UUID        `json:"id"`
	Seed      int64            `json:"seed"`
	CreatedAt time.Time        `json:"created_at"`
	Rows      int              `json:"rows"`
	Cols      int              `json:"cols"`
	Cells     [][]CellResponse `json:"cells"`
}

// SolutionResponse represents a solve trace for a stored maze.
type SolutionResponse struct {
	MazeID    uuid.UUID     `json:"maze_id"`
	Algorithm string        `json:"algorithm"`
	Steps     []solver.Step `json:"steps"`
}

// newMazeResponse converts a domain maze into its response representation.
func newMazeResponse(m *dmn.Maze) *MazeResponse {
	cells := make([][]CellResponse, m.Grid.Rows)
	for row, gridRow := range m.Grid.Cells() {
		cells[row] = make([]CellResponse, m.Grid.Cols)
		for col, cell := range gridRow {
			cells[row][col] = CellResponse{
				NorthWall: cell.NorthWall,
				SouthWall: cell.SouthWall,
				EastWall:  cell.EastWall,
				WestWall:  cell.WestWall,
				X1:        cell.X1,
				Y1:        cell.Y1,
				X2:        cell.X2,
				Y2:        cell.Y2,
			}
		}
	}

	return &MazeResponse{
		ID:        m.ID,
		Seed:      m.Seed,
		CreatedAt: m.CreatedAt,
		Rows:      m.Grid.Rows,
		Cols:      m.Grid.Cols,
		Cells:     cells,
	}
}
