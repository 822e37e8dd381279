package solid

import (
	"github.com/mbrooker/maze-maker/scad"
	"github.com/mbrooker/maze-maker/wallplan"
)

// BuildInner converts a wall plan plus physical dimensions into the inner
// piece's geometry document: core cylinder (with a concentric cavity when
// Hollow), base platform, then one wall segment per solid side, in
// row-major cell order.
//
// Orientation: maze row 0 sits at the top of the cylinder (z = height),
// matching the entrance-on-top convention, so a cell's South boundary is
// below it in z.
//
// Error Conditions:
//   - ErrPlanNil          : p is nil.
//   - ErrInvalidDimension : non-positive height or circumference.
func BuildInner(p *wallplan.Plan, d Dimensions) (*scad.Document, error) {
	if p == nil {
		return nil, ErrPlanNil
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	rows, cols := p.Rows(), p.Cols()
	l := NewLayout(d, rows, cols)

	doc := scad.NewDocument()
	doc.Assign("radius", l.CoreRadius)
	doc.Assign("height", d.HeightMM)
	doc.Assign("cell_width", l.CellWidth)
	doc.Assign("cell_height", l.CellHeight)
	doc.Assign("rows", float64(rows))
	doc.Assign("cols", float64(cols))

	parts := make([]scad.Node, 0, 2+rows*cols*2)
	parts = append(parts, core(d, l), basePlatform(l))

	// Deduplicated wall emission: East and South per cell, North for the
	// top row only. Every physical wall appears exactly once.
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cw := p.At(row, col)
			if cw.East == wallplan.Wall {
				parts = append(parts, eastWall(l, row, col, rows))
			}
			if cw.South == wallplan.Wall {
				parts = append(parts, southWall(l, row, col, rows))
			}
			if row == 0 && cw.North == wallplan.Wall {
				parts = append(parts, northCapWall(l, col, d.HeightMM))
			}
		}
	}

	doc.Add(scad.Union{Children: parts})
	return doc, nil
}

// core returns the central cylinder, hollowed when requested. The cavity
// runs slightly past the top so the difference never leaves a skin; the
// base platform closes the bottom.
func core(d Dimensions, l Layout) scad.Node {
	solidCore := scad.Cylinder{R: l.CoreRadius, H: d.HeightMM, Fn: cylinderFacets}
	if !d.Hollow {
		return solidCore
	}
	return scad.Difference{Children: []scad.Node{
		solidCore,
		scad.Cylinder{R: l.CoreRadius - HollowWallMM, H: d.HeightMM + 0.1, Fn: cylinderFacets},
	}}
}

// basePlatform returns the stability platform under z=0, wide enough to
// overhang the walls' outer radius.
func basePlatform(l Layout) scad.Node {
	return scad.Translate{
		Z:     -l.BaseHeight,
		Child: scad.Cylinder{R: l.BaseRadius, H: l.BaseHeight, Fn: cylinderFacets},
	}
}

// rowBottomZ returns the z coordinate of a row's lower edge under the
// row-0-on-top orientation.
func rowBottomZ(l Layout, row, rows int) float64 {
	return float64(rows-1-row) * l.CellHeight
}

// eastWall returns the radial-axial box dividing a cell from its eastern
// neighbor: thin tangentially, one cell tall, standing WallDepthMM off
// the core with a small embed into it.
func eastWall(l Layout, row, col, rows int) scad.Node {
	boundaryAngle := float64(col+1) * l.CellAngleDeg
	return scad.Rotate{
		Z: boundaryAngle,
		Child: scad.Translate{
			X: l.CoreRadius - wallEmbedMM,
			Y: -l.TangentialWallT / 2,
			Z: rowBottomZ(l, row, rows),
			Child: scad.Cube{
				X: WallDepthMM + wallEmbedMM,
				Y: l.TangentialWallT,
				Z: l.CellHeight,
			},
		},
	}
}

// southWall returns the ring band dividing a cell from the row below: an
// annular wedge spanning the cell's angle, thin axially. The band stops
// at BandInnerRadius so it bonds with the core wall without refilling a
// hollow core's cavity. The bottom row's band sits fully above z=0 so it
// never pierces the platform seam.
func southWall(l Layout, row, col, rows int) scad.Node {
	z := rowBottomZ(l, row, rows) - l.AxialWallT/2
	if row == rows-1 {
		z = 0
	}
	return scad.Rotate{
		Z: float64(col) * l.CellAngleDeg,
		Child: scad.Translate{
			Z: z,
			Child: scad.Wedge{
				R:        l.OuterRadius,
				InnerR:   l.BandInnerRadius,
				AngleDeg: l.CellAngleDeg,
				H:        l.AxialWallT,
			},
		},
	}
}

// northCapWall returns the top-cap ring band of a top-row cell, kept
// inside the cylinder height.
func northCapWall(l Layout, col int, height float64) scad.Node {
	return scad.Rotate{
		Z: float64(col) * l.CellAngleDeg,
		Child: scad.Translate{
			Z: height - l.AxialWallT,
			Child: scad.Wedge{
				R:        l.OuterRadius,
				InnerR:   l.BandInnerRadius,
				AngleDeg: l.CellAngleDeg,
				H:        l.AxialWallT,
			},
		},
	}
}
