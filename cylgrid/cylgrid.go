package cylgrid

// New constructs a Grid with the given dimensions.
// Returns ErrInvalidDimension if rows < 1 or cols < 2: a maze needs at
// least one ring of cells, and with a single column the horizontal wrap
// would make West and East the same neighbor.
// Complexity: O(1) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 2 {
		return nil, ErrInvalidDimension
	}
	return &Grid{rows: rows, cols: cols}, nil
}

// Rows returns the number of rings along the cylinder axis.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of cells around the circumference.
func (g *Grid) Cols() int { return g.cols }

// CellCount returns rows×cols, the total number of cells.
func (g *Grid) CellCount() int { return g.rows * g.cols }

// InBounds reports whether c names a cell of this grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Neighbors returns c's adjacent cells with the direction leading to each,
// in the fixed order North, South, West, East. West and East always exist
// (columns wrap modulo cols); North exists only for Row > 0 and South only
// for Row < rows-1, so the cap rows return three entries.
// Complexity: O(1); at most four entries.
func (g *Grid) Neighbors(c Cell) []Neighbor {
	ns := make([]Neighbor, 0, 4)
	if c.Row > 0 {
		ns = append(ns, Neighbor{Cell: Cell{Row: c.Row - 1, Col: c.Col}, Dir: North})
	}
	if c.Row < g.rows-1 {
		ns = append(ns, Neighbor{Cell: Cell{Row: c.Row + 1, Col: c.Col}, Dir: South})
	}
	west := c.Col - 1
	if west < 0 {
		west = g.cols - 1
	}
	ns = append(ns, Neighbor{Cell: Cell{Row: c.Row, Col: west}, Dir: West})
	ns = append(ns, Neighbor{Cell: Cell{Row: c.Row, Col: (c.Col + 1) % g.cols}, Dir: East})

	return ns
}

// Neighbor returns c's adjacent cell in direction d, and whether one
// exists. It is the single-direction form of Neighbors: East/West are
// always present, North/South only while the row stays in range.
// Complexity: O(1).
func (g *Grid) Neighbor(c Cell, d Direction) (Cell, bool) {
	switch d {
	case North:
		if c.Row == 0 {
			return Cell{}, false
		}
		return Cell{Row: c.Row - 1, Col: c.Col}, true
	case South:
		if c.Row == g.rows-1 {
			return Cell{}, false
		}
		return Cell{Row: c.Row + 1, Col: c.Col}, true
	case West:
		west := c.Col - 1
		if west < 0 {
			west = g.cols - 1
		}
		return Cell{Row: c.Row, Col: west}, true
	default:
		return Cell{Row: c.Row, Col: (c.Col + 1) % g.cols}, true
	}
}

// Index maps c to its row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// Cells returns every cell of the grid in row-major order.
// Complexity: O(rows×cols).
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}

	return cells
}
