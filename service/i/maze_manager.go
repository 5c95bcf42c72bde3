package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-api/domain"
	"github.com/beka-birhanu/maze-api/solver"
	"github.com/google/uuid"
)

// MazeManager defines the maze operations exposed to the API layer.
type MazeManager interface {
	// Create generates a new maze of the given dimensions and stores it.
	// A nil seed means a random maze; an explicit seed reproduces the maze.
	Create(ctx context.Context, rows, cols int, seed *int64) (*dmn.Maze, error)

	// ByID retrieves a stored maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)

	// Solve computes the step trace from entrance to exit of a stored maze
	// using the named algorithm ("dfs" or "astar").
	Solve(ctx context.Context, id uuid.UUID, algorithm string) ([]solver.Step, error)
}
