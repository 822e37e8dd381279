package wallplan

import (
	"github.com/mbrooker/maze-maker/cylgrid"
	"github.com/mbrooker/maze-maker/wilson"
)

// Side is the state of one cell side: solid wall or open passage.
type Side int8

const (
	// Wall is a solid side; the default for every side not opened by a
	// tree edge, including the cylinder caps.
	Wall Side = iota
	// Passage is an open side: the dividing wall toward that neighbor is
	// simply omitted.
	Passage
)

// String returns "Wall" or "Passage".
func (s Side) String() string {
	if s == Passage {
		return "Passage"
	}
	return "Wall"
}

// CellWalls holds the four side states of a single cell.
type CellWalls struct {
	North, South, East, West Side
}

// At returns the side state in direction d.
func (cw CellWalls) At(d cylgrid.Direction) Side {
	switch d {
	case cylgrid.North:
		return cw.North
	case cylgrid.South:
		return cw.South
	case cylgrid.West:
		return cw.West
	default:
		return cw.East
	}
}

// Plan is the derived Wall/Passage classification for every cell of a
// grid. Write-once: Derive builds it and nothing mutates it afterward.
type Plan struct {
	rows, cols int
	cells      []CellWalls // row-major
}

// Derive classifies every side of every cell: Passage iff tree holds the
// edge to the neighbor in that direction, Wall otherwise. Sides without a
// neighbor (the cap rows) are never examined and stay Wall.
// Symmetric by construction, since tree.HasEdge ignores orientation.
// Complexity: O(rows×cols).
func Derive(g *cylgrid.Grid, tree *wilson.SpanningTree) *Plan {
	p := &Plan{
		rows:  g.Rows(),
		cols:  g.Cols(),
		cells: make([]CellWalls, g.CellCount()),
	}
	for _, c := range g.Cells() {
		cw := CellWalls{} // all Wall
		for _, n := range g.Neighbors(c) {
			if !tree.HasEdge(c, n.Cell) {
				continue
			}
			switch n.Dir {
			case cylgrid.North:
				cw.North = Passage
			case cylgrid.South:
				cw.South = Passage
			case cylgrid.West:
				cw.West = Passage
			case cylgrid.East:
				cw.East = Passage
			}
		}
		p.cells[g.Index(c)] = cw
	}

	return p
}

// Rows returns the number of cell rows.
func (p *Plan) Rows() int { return p.rows }

// Cols returns the number of cell columns.
func (p *Plan) Cols() int { return p.cols }

// At returns the wall states of cell (row, col).
func (p *Plan) At(row, col int) CellWalls {
	return p.cells[row*p.cols+col]
}
