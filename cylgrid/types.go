// Package cylgrid defines the cell, direction, and grid types plus the
// sentinel errors for the cylindrical lattice.
package cylgrid

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension indicates rows or cols outside the valid range.
// A cylinder needs at least one ring (rows ≥ 1) and two genuinely
// distinct columns (cols ≥ 2).
var ErrInvalidDimension = errors.New("cylgrid: rows must be ≥ 1 and cols ≥ 2")

// Direction identifies one of a cell's four sides.
type Direction int

const (
	// North points toward row-1 (up the cylinder axis).
	North Direction = iota
	// South points toward row+1 (down the cylinder axis).
	South
	// West points toward col-1, wrapping to cols-1 at column 0.
	West
	// East points toward col+1, wrapping to 0 at column cols-1.
	East
)

// directionNames backs Direction.String; indexed by the constant values above.
var directionNames = [...]string{"North", "South", "West", "East"}

// String returns the direction name, or "Direction(n)" for out-of-range values.
func (d Direction) String() string {
	if d < North || d > East {
		return fmt.Sprintf("Direction(%d)", d)
	}
	return directionNames[d]
}

// Opposite returns the reverse direction: North↔South, West↔East.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// Cell identifies a lattice cell by its (Row, Col) coordinate.
// It is a comparable value type with no owned state beyond identity.
type Cell struct {
	Row, Col int
}

// Neighbor pairs an adjacent cell with the direction leading to it
// from the cell that was queried.
type Neighbor struct {
	Cell Cell
	Dir  Direction
}

// Grid is an immutable rows×cols lattice wrapped horizontally into a
// cylinder. Adjacency is symmetric and fixed for the grid's lifetime.
type Grid struct {
	rows, cols int
}
