// Package solid defines the physical dimensions, print-tolerance
// constants, derived layout values, and sentinel errors of the geometry
// builders.
package solid

import (
	"errors"
	"math"
)

// Sentinel errors for geometry building.
var (
	// ErrInvalidDimension indicates a non-positive height or circumference.
	ErrInvalidDimension = errors.New("solid: height and circumference must be positive")

	// ErrPlanNil is returned if a nil wall plan is passed to BuildInner.
	ErrPlanNil = errors.New("solid: wall plan is nil")
)

// Print-tolerance constants. These are fit and stability choices for the
// printed pieces, not algorithmic values; adjust for a printer, not for
// the maze.
const (
	// ClearanceMM is the sliding gap between the inner piece's outer
	// radius and the shell bore.
	ClearanceMM = 0.2

	// ShellWallMinMM is the minimum shell wall thickness.
	ShellWallMinMM = 1.2

	// WallDepthMM is how far maze walls stand off the core surface,
	// radially. Fixed in millimeters so the shell bore stays independent
	// of the cell count.
	WallDepthMM = 2.0

	// HollowWallMM is the core wall thickness left when Hollow is set.
	HollowWallMM = 1.2

	// wallFrac sizes wall thickness as a fraction of the cell span it
	// divides, so walls scale with the maze like the original channels.
	wallFrac = 0.3

	// baseHeightFrac sizes the base platform height against the cylinder
	// height; baseOverhang widens the platform past the outer radius.
	baseHeightFrac = 0.05
	baseOverhang   = 1.1

	// wallEmbedMM sinks wall boxes slightly into the core so the union
	// never leaves a coincident-face sliver.
	wallEmbedMM = 0.1

	// Guide tooth on the shell bore, near the top rim.
	toothRadiusMM  = 1.5
	toothLengthMM  = 1.5
	toothDropMM    = 3.0
	toothTipTaper  = 0.8
	toothFacets    = 36
	cylinderFacets = 360
)

// Dimensions are the physical parameters of one maze cylinder.
type Dimensions struct {
	// HeightMM is the cylinder height along its axis.
	HeightMM float64
	// CircumferenceMM is the outer circumference of the core cylinder.
	CircumferenceMM float64
	// Hollow carves a concentric cavity out of the inner core and opens
	// the shell bottom to match.
	Hollow bool
}

// Validate returns ErrInvalidDimension unless both physical extents are
// positive finite values.
func (d Dimensions) Validate() error {
	if !(d.HeightMM > 0) || !(d.CircumferenceMM > 0) ||
		math.IsInf(d.HeightMM, 1) || math.IsInf(d.CircumferenceMM, 1) {
		return ErrInvalidDimension
	}
	return nil
}

// Layout holds the physical spans derived from dimensions and cell count.
// Every axial value scales linearly with HeightMM and every tangential
// value with CircumferenceMM.
type Layout struct {
	// CoreRadius is the maze cylinder radius: circumference / 2π.
	CoreRadius float64
	// OuterRadius is the inner piece's outermost extent: core plus walls.
	OuterRadius float64
	// CellWidth and CellHeight are one cell's tangential and axial spans.
	CellWidth, CellHeight float64
	// CellAngleDeg is one cell's angular span.
	CellAngleDeg float64
	// TangentialWallT is the thickness of East/West walls (thin across
	// the cell width); AxialWallT of North/South walls (thin across the
	// cell height).
	TangentialWallT, AxialWallT float64
	// BandInnerRadius is the inner radius of North/South wall bands:
	// deep enough to bond with the core, but never inside the cavity a
	// hollow core carves.
	BandInnerRadius float64
	// BaseHeight and BaseRadius size the print-stability platform.
	BaseHeight, BaseRadius float64
}

// NewLayout derives the physical spans for a rows×cols maze at the given
// dimensions. Pure arithmetic; assumes validated dimensions and positive
// cell counts.
func NewLayout(d Dimensions, rows, cols int) Layout {
	coreR := d.CircumferenceMM / (2 * math.Pi)
	outerR := coreR + WallDepthMM
	cellW := d.CircumferenceMM / float64(cols)
	cellH := d.HeightMM / float64(rows)

	return Layout{
		CoreRadius:      coreR,
		OuterRadius:     outerR,
		CellWidth:       cellW,
		CellHeight:      cellH,
		CellAngleDeg:    360.0 / float64(cols),
		TangentialWallT: wallFrac * cellW,
		AxialWallT:      wallFrac * cellH,
		BandInnerRadius: math.Max(0, coreR-HollowWallMM),
		BaseHeight:      baseHeightFrac * d.HeightMM,
		BaseRadius:      baseOverhang * outerR,
	}
}

// ShellRadii returns the shell bore radius and the shell outer radius for
// the given dimensions. The bore clears the inner piece's outer radius by
// ClearanceMM; the outer radius keeps at least ShellWallMinMM of wall.
func ShellRadii(d Dimensions) (bore, outer float64) {
	innerOuter := d.CircumferenceMM/(2*math.Pi) + WallDepthMM
	bore = innerOuter + ClearanceMM
	outer = math.Max(baseOverhang*innerOuter, bore+ShellWallMinMM)
	return bore, outer
}
