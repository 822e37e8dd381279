package wilson

import (
	"sort"

	"github.com/mbrooker/maze-maker/cylgrid"
)

// SpanningTree maps every non-root cell to its parent neighbor. It covers
// all cells of the grid it was generated over, is connected, and holds
// exactly CellCount-1 undirected edges. Immutable once returned by Generate.
type SpanningTree struct {
	root   cylgrid.Cell
	parent map[cylgrid.Cell]cylgrid.Cell
}

// Root returns the tree's root cell.
func (t *SpanningTree) Root() cylgrid.Cell { return t.root }

// Parent returns c's parent and true, or the zero cell and false for the
// root (or a cell the tree does not cover).
// Complexity: O(1).
func (t *SpanningTree) Parent(c cylgrid.Cell) (cylgrid.Cell, bool) {
	p, ok := t.parent[c]
	return p, ok
}

// HasEdge reports whether {a, b} is a tree edge, in either direction.
// Wall derivation treats passage state as a property of the undirected
// edge, so both orientations answer identically.
// Complexity: O(1).
func (t *SpanningTree) HasEdge(a, b cylgrid.Cell) bool {
	if p, ok := t.parent[a]; ok && p == b {
		return true
	}
	if p, ok := t.parent[b]; ok && p == a {
		return true
	}
	return false
}

// CellCount returns the number of cells the tree covers.
func (t *SpanningTree) CellCount() int { return len(t.parent) + 1 }

// EdgeCount returns the number of tree edges, always CellCount-1.
func (t *SpanningTree) EdgeCount() int { return len(t.parent) }

// Edges returns all child→parent edges sorted by child coordinate in
// row-major order, so repeated calls and identical trees list edges
// identically.
// Complexity: O(n log n).
func (t *SpanningTree) Edges() []Edge {
	edges := make([]Edge, 0, len(t.parent))
	for from, to := range t.parent {
		edges = append(edges, Edge{From: from, To: to})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From.Row != edges[j].From.Row {
			return edges[i].From.Row < edges[j].From.Row
		}
		return edges[i].From.Col < edges[j].From.Col
	})

	return edges
}
