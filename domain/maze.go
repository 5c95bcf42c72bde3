// Package domain holds the application's aggregate models.
package domain

import (
	"time"

	"github.com/beka-birhanu/maze-api/maze"
	"github.com/google/uuid"
)

// Maze is a generated maze owned by the service: the carved grid plus the
// identity and seed needed to fetch it again and to replay its solves.
type Maze struct {
	ID        uuid.UUID  // ID uniquely identifies the maze.
	Seed      int64      // Seed reproduces the generation and the DFS solve order.
	CreatedAt time.Time  // CreatedAt records when the maze was generated.
	Grid      *maze.Grid // Grid is the carved maze grid.
}
