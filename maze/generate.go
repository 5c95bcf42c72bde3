package maze

import (
	"math/rand"
	"time"
)

// Generate carves a perfect maze into the grid using randomized recursive
// backtracking: the entrance and exit openings are punched first, then walls are
// broken along a random depth-first walk from the entrance, and finally the
// visited flags are cleared so the grid is solve-ready.
//
// Each cell is visited exactly once and walls are only broken into unvisited
// neighbors, so the carved passages form a spanning tree of the grid graph.
// The same rng seed reproduces the same maze. A nil rng uses a time-seeded
// source.
func Generate(g *Grid, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.BreakEntranceAndExit()
	g.carveFrom(g.Entrance(), rng)
	g.ResetVisited()
}

// BreakEntranceAndExit removes the north and west walls of the entrance cell and
// the south and east walls of the exit cell, opening both to the outside.
func (g *Grid) BreakEntranceAndExit() {
	entrance := g.CellAt(g.Entrance())
	entrance.NorthWall = false
	entrance.WestWall = false

	exit := g.CellAt(g.Exit())
	exit.SouthWall = false
	exit.EastWall = false
}

// carveFrom breaks walls along a random depth-first walk starting at pos.
func (g *Grid) carveFrom(pos CellPosition, rng *rand.Rand) {
	g.CellAt(pos).Visited = true

	neighbors := g.Neighbors(pos)
	rng.Shuffle(len(neighbors), func(i, j int) {
		neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
	})

	for _, neighbor := range neighbors {
		if g.CellAt(neighbor).Visited {
			continue
		}
		// Neighbors only yields grid-adjacent positions, so this cannot fail.
		_ = g.BreakWallBetween(pos, neighbor)
		g.carveFrom(neighbor, rng)
	}
}
