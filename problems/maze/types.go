package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and maze setup.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNegativeValue indicates a cell value below zero.
	ErrNegativeValue = errors.New("maze: cell values must be non-negative")
	// ErrBadThreshold indicates a wall threshold below 1, which would open zero-cost cells.
	ErrBadThreshold = errors.New("maze: wall threshold must be at least 1")
	// ErrOutOfBounds indicates a start or goal outside the grid.
	ErrOutOfBounds = errors.New("maze: cell out of bounds")
	// ErrOnWall indicates a start or goal placed on a wall.
	ErrOnWall = errors.New("maze: cell is a wall")
	// ErrParse indicates a malformed text maze.
	ErrParse = errors.New("maze: parse error")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Cell is a grid coordinate: X is the column, Y the row (0 at the top).
type Cell struct {
	X, Y int
}

// String renders the cell as (x,y).
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// WallThreshold is the smallest open cell value; lower values are walls.
	WallThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns WallThreshold=1 (0 is a wall), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold: 1,
		Conn:          Conn4,
	}
}

// move is one compass step.
type move struct {
	name   string
	dx, dy int
}

var (
	moves4 = []move{{"N", 0, -1}, {"E", 1, 0}, {"S", 0, 1}, {"W", -1, 0}}
	moves8 = []move{
		{"N", 0, -1}, {"NE", 1, -1}, {"E", 1, 0}, {"SE", 1, 1},
		{"S", 0, 1}, {"SW", -1, 1}, {"W", -1, 0}, {"NW", -1, -1},
	}
)
