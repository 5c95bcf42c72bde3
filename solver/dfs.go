package solver

import (
	"math/rand"
	"time"

	"github.com/beka-birhanu/maze-api/maze"
)

// SolveDFS searches for the exit with recursive backtracking, starting at the
// entrance. Every move through an open passage into an unvisited cell emits a
// forward Step; when a branch dead-ends, an undo Step for the same edge is
// emitted before the next candidate is tried. The trace therefore replays the
// search's exact forward/backward motion.
//
// Neighbor order is shuffled with rng, so the same seed reproduces the same
// trace on the same maze. A nil rng uses a time-seeded source. The search
// always reaches the exit on a connected maze.
func SolveDFS(g *maze.Grid, rng *rand.Rand) []Step {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	steps := []Step{}
	dfsFrom(g, g.Entrance(), rng, &steps)
	return steps
}

// dfsFrom reports whether pos is the exit or leads to it.
func dfsFrom(g *maze.Grid, pos maze.CellPosition, rng *rand.Rand, steps *[]Step) bool {
	g.CellAt(pos).Visited = true

	if pos == g.Exit() {
		return true
	}

	neighbors := g.Neighbors(pos)
	rng.Shuffle(len(neighbors), func(i, j int) {
		neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
	})

	for _, neighbor := range neighbors {
		if g.CellAt(neighbor).Visited || !g.PassageOpen(pos, neighbor) {
			continue
		}

		*steps = append(*steps, Step{From: pos, To: neighbor})
		if dfsFrom(g, neighbor, rng, steps) {
			return true
		}
		*steps = append(*steps, Step{From: pos, To: neighbor, Undo: true})
	}

	return false
}
