package i

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/maze-api/domain"
	"github.com/google/uuid"
)

// ErrMazeNotFound is returned when no maze exists for the requested ID.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save stores a maze record. An existing record with the same ID is replaced.
	Save(ctx context.Context, m *dmn.Maze) error

	// ByID retrieves a maze by its unique ID.
	// Returns ErrMazeNotFound if no such maze exists.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)
}
