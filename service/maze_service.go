// Package service orchestrates maze generation, storage and solving.
package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/maze-api/domain"
	"github.com/beka-birhanu/maze-api/maze"
	"github.com/beka-birhanu/maze-api/service/i"
	"github.com/beka-birhanu/maze-api/solver"
	"github.com/google/uuid"
)

const (
	// defaultCellSize is the pixel size handed to renderers for each cell.
	defaultCellSize = 50

	// gridOriginX and gridOriginY offset the rendered grid from the canvas edge.
	gridOriginX = 20
	gridOriginY = 20
)

// MazeService generates perfect mazes, stores them and solves them on demand.
// It implements i.MazeManager.
type MazeService struct {
	repo   i.MazeRepo
	logger *log.Logger
}

// NewMazeService creates a MazeService backed by the given repository.
func NewMazeService(repo i.MazeRepo, logger *log.Logger) (*MazeService, error) {
	if repo == nil {
		return nil, errors.New("maze repository is required")
	}
	return &MazeService{
		repo:   repo,
		logger: logger,
	}, nil
}

// Create generates a rows x cols maze, stores it and returns it. A nil seed is
// replaced with the current time, so every unseeded maze differs; the resolved
// seed is stored with the maze to keep generation and solving reproducible.
func (s *MazeService) Create(ctx context.Context, rows, cols int, seed *int64) (*dmn.Maze, error) {
	grid, err := maze.NewGrid(gridOriginX, gridOriginY, rows, cols, defaultCellSize, defaultCellSize)
	if err != nil {
		return nil, err
	}

	resolvedSeed := time.Now().UnixNano()
	if seed != nil {
		resolvedSeed = *seed
	}
	maze.Generate(grid, rand.New(rand.NewSource(resolvedSeed)))

	m := &dmn.Maze{
		ID:        uuid.New(),
		Seed:      resolvedSeed,
		CreatedAt: time.Now().UTC(),
		Grid:      grid,
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Printf("generated %dx%d maze %s (seed %d)", rows, cols, m.ID, m.Seed)
	}
	return m, nil
}

// ByID retrieves a stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	return s.repo.ByID(ctx, id)
}

// Solve loads the maze, clears the visited flags left by any previous pass and
// runs the requested algorithm. The DFS rng is re-seeded from the maze's stored
// seed, so solving the same maze twice returns the identical trace.
func (s *MazeService) Solve(ctx context.Context, id uuid.UUID, algorithm string) ([]solver.Step, error) {
	m, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Grid.ResetVisited()
	return solver.Solve(m.Grid, algorithm, rand.New(rand.NewSource(m.Seed)))
}
