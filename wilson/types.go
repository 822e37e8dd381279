// Package wilson defines configuration options and sentinel errors for
// spanning-tree generation.
package wilson

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mbrooker/maze-maker/cylgrid"
)

// Sentinel errors for maze generation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed to Generate.
	ErrGridNil = errors.New("wilson: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wilson: invalid option supplied")

	// ErrGeneratorStalled is returned when the defensive random-walk step
	// cap is exceeded. This is an internal-invariant failure, not an
	// expected outcome: a healthy random source on a connected grid
	// terminates far below the cap.
	ErrGeneratorStalled = errors.New("wilson: random walk exceeded step cap")
)

// defaultStepsPerCell scales the defensive walk cap with grid size.
// The expected total walk length is far below cells×1000 on any grid,
// so hitting the cap signals a broken random source or adjacency bug.
const defaultStepsPerCell = 1000

// Option configures maze generation via functional arguments.
// An invalid Option (negative cap, out-of-grid root) is recorded
// internally and surfaced as ErrOptionViolation when Generate runs.
type Option func(*Options)

// Options holds parameters that customize Generate.
type Options struct {
	// Rand is the random source for neighbor selection. When nil, a new
	// source is created from Seed.
	Rand *rand.Rand

	// Seed seeds a fresh source when Rand is nil. Seed 0 selects a
	// time-based seed, so default runs differ; any fixed non-zero seed
	// reproduces a bit-identical tree.
	Seed int64

	// Root, when set, fixes the first in-tree cell. When nil, a random
	// cell of the top row is chosen (the maze entrance convention).
	Root *cylgrid.Cell

	// MaxSteps bounds total random-walk steps across all walks.
	// 0 selects the default of defaultStepsPerCell per cell.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: a time-seeded source,
// a random top-row root, and the default step cap.
func DefaultOptions() Options {
	return Options{}
}

// WithRand sets the random source directly, taking precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds the generator's random source. Seed 0 keeps the default
// time-based seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRoot fixes the root cell of the spanning tree. The cell must lie
// within the grid passed to Generate, otherwise ErrOptionViolation.
func WithRoot(c cylgrid.Cell) Option {
	return func(o *Options) {
		root := c
		o.Root = &root
	}
}

// WithMaxSteps overrides the defensive walk cap.
//
//	n > 0: cap total walk steps at n
//	n == 0: keep the size-scaled default
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Edge is one undirected tree edge, recorded child→parent.
type Edge struct {
	From, To cylgrid.Cell
}
