package solver

import (
	"container/heap"

	"github.com/beka-birhanu/maze-api/maze"
)

// SolveAStar finds the shortest entrance-to-exit path with A* over the open
// passages, using Manhattan distance as the heuristic. On a 4-connected
// unweighted grid the heuristic is admissible and consistent, so the returned
// path is optimal. The trace contains forward steps only; if the exit is
// unreachable the result is empty.
func SolveAStar(g *maze.Grid) []Step {
	start, goal := g.Entrance(), g.Exit()

	gScore := map[maze.CellPosition]int{start: 0}
	cameFrom := make(map[maze.CellPosition]maze.CellPosition)

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &frontierItem{pos: start, fScore: manhattan(start, goal)})

	for open.Len() > 0 {
		current := heap.Pop(open).(*frontierItem).pos
		if current == goal {
			return reconstructPath(cameFrom, start, goal)
		}

		for _, neighbor := range g.Neighbors(current) {
			if !g.PassageOpen(current, neighbor) {
				continue
			}

			tentativeG := gScore[current] + 1
			if oldG, seen := gScore[neighbor]; seen && tentativeG >= oldG {
				continue
			}

			cameFrom[neighbor] = current
			gScore[neighbor] = tentativeG
			heap.Push(open, &frontierItem{
				pos:    neighbor,
				fScore: tentativeG + manhattan(neighbor, goal),
			})
		}
	}

	return []Step{}
}

// manhattan is the (row, col) taxicab distance between two positions.
func manhattan(a, b maze.CellPosition) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// reconstructPath walks the parent map backward from goal to start and emits
// the path as forward steps.
func reconstructPath(cameFrom map[maze.CellPosition]maze.CellPosition, start, goal maze.CellPosition) []Step {
	var route []maze.CellPosition
	for current := goal; current != start; current = cameFrom[current] {
		route = append(route, current)
	}

	steps := make([]Step, 0, len(route))
	previous := start
	for i := len(route) - 1; i >= 0; i-- {
		steps = append(steps, Step{From: previous, To: route[i]})
		previous = route[i]
	}
	return steps
}

// frontierItem is an open-set entry ordered by f-score.
type frontierItem struct {
	pos    maze.CellPosition
	fScore int
	index  int
}

// frontier is a min-heap of open-set entries.
type frontier []*frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].fScore < f[j].fScore }
func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*f)
	*f = append(*f, item)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*f = old[:n-1]
	return item
}
