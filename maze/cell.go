package maze

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side, the transient visited marker
// used by the generator and the solvers, and the cell's pixel bounds for renderers.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.

	// Visited marks the cell during a generation or solve pass. It must be
	// cleared with Grid.ResetVisited before the next pass.
	Visited bool

	// Bounding geometry for external renderers. Algorithms never read these.
	// Invariant: X1 < X2 and Y1 < Y2.
	X1, Y1, X2, Y2 int
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Col index of the cell
}
