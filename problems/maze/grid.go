package maze

// Grid treats a 2D integer grid as a weighted graph. It is immutable once
// built. Values[y][x] holds the input value; cells below WallThreshold are
// walls, every other cell costs its value to enter.
type Grid struct {
	Width, Height int
	Values        [][]int
	Conn          Connectivity
	WallThreshold int
	moves         []move
	minCost       int
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNegativeValue or ErrBadThreshold.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.WallThreshold < 1 {
		return nil, ErrBadThreshold
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	minCost := 0
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range cells[y] {
			if v < 0 {
				return nil, ErrNegativeValue
			}
			if v >= opts.WallThreshold && (minCost == 0 || v < minCost) {
				minCost = v
			}
		}
	}
	moves := moves4
	if opts.Conn == Conn8 {
		moves = moves8
	}

	return &Grid{
		Width:         w,
		Height:        h,
		Values:        cells,
		Conn:          opts.Conn,
		WallThreshold: opts.WallThreshold,
		moves:         moves,
		minCost:       minCost,
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Open reports whether c is inside the grid and not a wall.
func (g *Grid) Open(c Cell) bool {
	return g.InBounds(c) && g.Values[c.Y][c.X] >= g.WallThreshold
}

// Cost returns the cost of entering c.
func (g *Grid) Cost(c Cell) int { return g.Values[c.Y][c.X] }

// MinCost returns the cheapest open cell value, 0 if every cell is a wall.
func (g *Grid) MinCost() int { return g.minCost }

// index maps c to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Y*g.Width + c.X
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}
