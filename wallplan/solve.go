package wallplan

import "github.com/mbrooker/maze-maker/cylgrid"

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  cylgrid.Cell
	depth int
}

// Solvable reports whether to is reachable from from by crossing Passage
// sides only. On a perfect maze this is always true for in-grid cells; it
// exists as a sanity check on generated plans (a false result means the
// plan did not come from a spanning tree).
// Out-of-grid endpoints are simply unreachable.
// Complexity: O(rows×cols).
func (p *Plan) Solvable(from, to cylgrid.Cell) bool {
	if !p.inBounds(from) || !p.inBounds(to) {
		return false
	}

	visited := make(map[cylgrid.Cell]bool, len(p.cells))
	visited[from] = true
	queue := []queueItem{{cell: from, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.cell == to {
			return true
		}
		for _, n := range p.passageNeighbors(cur.cell) {
			if visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, queueItem{cell: n, depth: cur.depth + 1})
		}
	}

	return false
}

// passageNeighbors lists the cells reachable from c through open sides,
// wrapping East/West around the cylinder.
func (p *Plan) passageNeighbors(c cylgrid.Cell) []cylgrid.Cell {
	cw := p.At(c.Row, c.Col)
	ns := make([]cylgrid.Cell, 0, 4)
	if cw.North == Passage && c.Row > 0 {
		ns = append(ns, cylgrid.Cell{Row: c.Row - 1, Col: c.Col})
	}
	if cw.South == Passage && c.Row < p.rows-1 {
		ns = append(ns, cylgrid.Cell{Row: c.Row + 1, Col: c.Col})
	}
	if cw.West == Passage {
		west := c.Col - 1
		if west < 0 {
			west = p.cols - 1
		}
		ns = append(ns, cylgrid.Cell{Row: c.Row, Col: west})
	}
	if cw.East == Passage {
		ns = append(ns, cylgrid.Cell{Row: c.Row, Col: (c.Col + 1) % p.cols})
	}

	return ns
}

// inBounds reports whether c names a cell of the plan.
func (p *Plan) inBounds(c cylgrid.Cell) bool {
	return c.Row >= 0 && c.Row < p.rows && c.Col >= 0 && c.Col < p.cols
}
