// Package cylgrid models a rows×cols cell lattice wrapped horizontally
// into a cylinder, exposing it as a graph of cells and directed sides.
//
// What:
//
//   - Grid fixes the dimensions and the adjacency rule: every cell has
//     East/West neighbors (columns wrap modulo cols), and North/South
//     neighbors only while the row index stays in range. The top and
//     bottom rows are the cylinder caps.
//   - Cell is a pure (Row, Col) coordinate; it owns no other state.
//   - Direction enumerates North, South, West, East with Opposite().
//
// Why:
//
//   - Maze generation: the lattice is the vertex set a spanning tree is
//     sampled over.
//   - Geometry mapping: row-major indexing ties each cell to an angular
//     and axial offset on the physical cylinder.
//
// Complexity:
//
//   - New:       O(1) time and memory (adjacency is a rule, not a table).
//   - Neighbors: O(1), at most four entries, deterministic order.
//
// Errors:
//
//   - ErrInvalidDimension: rows < 1, or cols < 2. A single column would
//     make a cell's West and East neighbor the same cell, which is a
//     degenerate cylinder, so it is rejected explicitly.
package cylgrid
