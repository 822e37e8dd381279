// Package wilson implements Wilson's loop-erased random-walk algorithm
// for sampling a spanning tree uniformly at random.
package wilson

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mbrooker/maze-maker/cylgrid"
)

// Generate samples a uniform spanning tree over g.
//
// Error Conditions:
//   - ErrGridNil          : g is nil.
//   - ErrOptionViolation  : an invalid Option was supplied.
//   - ErrGeneratorStalled : the defensive step cap was exceeded; no
//     partial tree is returned.
//
// Steps:
//  1. Apply options; surface any recorded option error immediately.
//  2. Resolve the random source (explicit > seeded > time-seeded) and the
//     root cell (explicit > random top-row cell).
//  3. Mark the root in-tree. Scan all cells in row-major order; for each
//     cell not yet in-tree, run a loop-erased random walk until it hits
//     the tree (see walk), then commit the path parent-wise.
//  4. Return the tree once every cell is covered.
//
// Determinism: with a fixed seed (or caller-owned source) two runs on the
// same grid produce bit-identical trees — walk starts are scanned in a
// fixed order and randomness enters only through the source.
func Generate(g *cylgrid.Grid, opts ...Option) (*SpanningTree, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Resolve the random source: explicit source wins, then a fixed seed,
	// then time-based seeding for default runs.
	rng := o.Rand
	if rng == nil {
		seed := o.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	// Resolve the root: an explicit root must name a grid cell; the
	// default is a random top-row cell (the maze entrance convention).
	var root cylgrid.Cell
	if o.Root != nil {
		if !g.InBounds(*o.Root) {
			return nil, fmt.Errorf("%w: root %v outside %dx%d grid",
				ErrOptionViolation, *o.Root, g.Rows(), g.Cols())
		}
		root = *o.Root
	} else {
		root = cylgrid.Cell{Row: 0, Col: rng.Intn(g.Cols())}
	}

	maxSteps := o.MaxSteps
	if maxSteps == 0 {
		maxSteps = defaultStepsPerCell * g.CellCount()
	}

	w := &generator{
		grid:     g,
		rng:      rng,
		maxSteps: maxSteps,
		inTree:   make(map[cylgrid.Cell]bool, g.CellCount()),
		parent:   make(map[cylgrid.Cell]cylgrid.Cell, g.CellCount()-1),
	}
	w.inTree[root] = true

	// Row-major scan over walk starts keeps runs reproducible; the order
	// does not bias the sample — that is Wilson's guarantee.
	for _, c := range g.Cells() {
		if w.inTree[c] {
			continue
		}
		if err := w.walk(c); err != nil {
			return nil, err
		}
	}

	return &SpanningTree{root: root, parent: w.parent}, nil
}

// generator holds the mutable state of one Generate run.
type generator struct {
	grid     *cylgrid.Grid
	rng      *rand.Rand
	maxSteps int
	steps    int
	inTree   map[cylgrid.Cell]bool
	parent   map[cylgrid.Cell]cylgrid.Cell
}

// walk performs one loop-erased random walk from start until it reaches
// the tree, then commits the loop-free path.
//
// The path is an append-only cell sequence plus a first-occurrence index,
// so revisit detection and loop truncation are O(1) amortized: on a
// revisit, the path is cut back to the cell's first occurrence and the
// erased cells drop out of the index.
func (w *generator) walk(start cylgrid.Cell) error {
	path := []cylgrid.Cell{start}
	pos := map[cylgrid.Cell]int{start: 0}

	cur := start
	for !w.inTree[cur] {
		w.steps++
		if w.steps > w.maxSteps {
			return fmt.Errorf("%w: %d steps on %dx%d grid",
				ErrGeneratorStalled, w.steps, w.grid.Rows(), w.grid.Cols())
		}

		ns := w.grid.Neighbors(cur)
		next := ns[w.rng.Intn(len(ns))].Cell

		if j, seen := pos[next]; seen {
			// Loop erasure: truncate back to next's first occurrence.
			for _, c := range path[j+1:] {
				delete(pos, c)
			}
			path = path[:j+1]
		} else {
			pos[next] = len(path)
			path = append(path, next)
		}
		cur = next
	}

	// Commit: each path cell's parent is its successor toward the tree;
	// the final cell is already in-tree and keeps its existing parent.
	for i := 0; i < len(path)-1; i++ {
		w.parent[path[i]] = path[i+1]
		w.inTree[path[i]] = true
	}

	return nil
}
