/*
Package solver computes entrance-to-exit paths through a carved maze grid.

Two interchangeable strategies are provided: backtracking depth-first search,
which traces its forward and undo moves, and A* with a Manhattan heuristic,
which yields a direct shortest path. Both operate only on open passages and
leave the grid unchanged apart from the cells' visited flags.
*/
package solver

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/maze-api/maze"
)

// Supported solve algorithms.
const (
	AlgorithmDFS   = "dfs"
	AlgorithmAStar = "astar"
)

// ErrUnsupportedAlgorithm is returned by Solve for an unknown algorithm name.
var ErrUnsupportedAlgorithm = errors.New("unsupported solve algorithm")

// Step is a single traced edge traversal. Undo marks a retraction from a dead
// end during depth-first search; A* emits forward steps only. Steps are emitted
// raw, in search order, with no compaction, so an animator can replay them as
// draw-then-possibly-erase.
type Step struct {
	From maze.CellPosition `json:"from"`
	To   maze.CellPosition `json:"to"`
	Undo bool              `json:"undo"`
}

// Solve runs the named algorithm against the grid and returns its step trace.
// The grid's visited flags must be clear before the call; use
// Grid.ResetVisited between passes.
func Solve(g *maze.Grid, algorithm string, rng *rand.Rand) ([]Step, error) {
	switch algorithm {
	case AlgorithmDFS:
		return SolveDFS(g, rng), nil
	case AlgorithmAStar:
		return SolveAStar(g), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}
