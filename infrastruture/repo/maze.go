// Package repo provides storage adapters for generated mazes.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/maze-api/domain"
	"github.com/beka-birhanu/maze-api/maze"
	"github.com/beka-birhanu/maze-api/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// mazeKeyFmt is the redis key format for maze records.
const mazeKeyFmt = "maze:%s"

// MazeRepo stores maze records in redis as JSON with a TTL.
// It implements i.MazeRepo.
type MazeRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMazeRepo creates a MazeRepo with the given redis client and record TTL.
func NewMazeRepo(client *redis.Client, ttl time.Duration) (*MazeRepo, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	return &MazeRepo{
		client: client,
		ttl:    ttl,
	}, nil
}

// cellRecord is the stored wall state of a single cell. Geometry and visited
// flags are not stored; geometry is recomputed from the grid parameters and
// visited is transient by contract.
type cellRecord struct {
	North bool `json:"n"`
	South bool `json:"s"`
	East  bool `json:"e"`
	West  bool `json:"w"`
}

// mazeRecord is the JSON document stored per maze.
type mazeRecord struct {
	ID         uuid.UUID      `json:"id"`
	Seed       int64          `json:"seed"`
	CreatedAt  time.Time      `json:"created_at"`
	OriginX    int            `json:"origin_x"`
	OriginY    int            `json:"origin_y"`
	Rows       int            `json:"rows"`
	Cols       int            `json:"cols"`
	CellWidth  int            `json:"cell_width"`
	CellHeight int            `json:"cell_height"`
	Cells      [][]cellRecord `json:"cells"`
}

// Save stores a maze record, replacing any previous record with the same ID.
func (r *MazeRepo) Save(ctx context.Context, m *dmn.Maze) error {
	record := mazeRecord{
		ID:         m.ID,
		Seed:       m.Seed,
		CreatedAt:  m.CreatedAt,
		OriginX:    m.Grid.OriginX,
		OriginY:    m.Grid.OriginY,
		Rows:       m.Grid.Rows,
		Cols:       m.Grid.Cols,
		CellWidth:  m.Grid.CellWidth,
		CellHeight: m.Grid.CellHeight,
		Cells:      make([][]cellRecord, m.Grid.Rows),
	}
	for row, cells := range m.Grid.Cells() {
		record.Cells[row] = make([]cellRecord, m.Grid.Cols)
		for col, cell := range cells {
			record.Cells[row][col] = cellRecord{
				North: cell.NorthWall,
				South: cell.SouthWall,
				East:  cell.EastWall,
				West:  cell.WestWall,
			}
		}
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling maze record: %w", err)
	}

	if err := r.client.Set(ctx, fmt.Sprintf(mazeKeyFmt, m.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("storing maze record: %w", err)
	}
	return nil
}

// ByID retrieves a maze by its ID and rebuilds its grid.
// Returns i.ErrMazeNotFound for unknown or expired IDs.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	data, err := r.client.Get(ctx, fmt.Sprintf(mazeKeyFmt, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, i.ErrMazeNotFound
		}
		return nil, fmt.Errorf("loading maze record: %w", err)
	}

	var record mazeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("unmarshaling maze record: %w", err)
	}

	grid, err := maze.NewGrid(record.OriginX, record.OriginY, record.Rows, record.Cols, record.CellWidth, record.CellHeight)
	if err != nil {
		return nil, fmt.Errorf("rebuilding maze grid: %w", err)
	}
	for row, cells := range grid.Cells() {
		for col, cell := range cells {
			stored := record.Cells[row][col]
			cell.NorthWall = stored.North
			cell.SouthWall = stored.South
			cell.EastWall = stored.East
			cell.WestWall = stored.West
		}
	}

	return &dmn.Maze{
		ID:        record.ID,
		Seed:      record.Seed,
		CreatedAt: record.CreatedAt,
		Grid:      grid,
	}, nil
}
