package solid

import "github.com/mbrooker/maze-maker/scad"

// BuildOuter converts physical dimensions into the companion shell's
// geometry document: a hollow cylinder whose bore clears the inner
// piece's outer radius by ClearanceMM, a base platform, and an inward
// guide tooth near the top rim (a cone frustum that rides the maze
// track). Independent of the wall plan — the shell carries no maze
// geometry.
//
// Hollow semantics mirror the inner piece: with Hollow set the bore
// pierces the base platform, leaving the shell open at both ends;
// otherwise the platform closes the bottom.
//
// Error Conditions:
//   - ErrInvalidDimension : non-positive height or circumference.
func BuildOuter(d Dimensions) (*scad.Document, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	bore, outer := ShellRadii(d)
	baseH := baseHeightFrac * d.HeightMM

	doc := scad.NewDocument()
	doc.Assign("inner_radius", bore)
	doc.Assign("outer_radius", outer)
	doc.Assign("height", d.HeightMM)

	cavity := scad.Node(scad.Cylinder{R: bore, H: d.HeightMM * 1.01, Fn: cylinderFacets})
	platform := scad.Node(scad.Translate{
		Z:     -baseH,
		Child: scad.Cylinder{R: baseOverhang * outer, H: baseH, Fn: cylinderFacets},
	})
	if d.Hollow {
		// Open bottom: extend the bore down through the platform.
		cavity = scad.Translate{
			Z:     -baseH - 0.1,
			Child: scad.Cylinder{R: bore, H: d.HeightMM + baseH + 0.2, Fn: cylinderFacets},
		}
	}

	// The cavity subtracts from shell and platform together, so a
	// hollow bore really pierces the bottom; the tooth joins afterward.
	doc.Add(scad.Union{Children: []scad.Node{
		scad.Difference{Children: []scad.Node{
			scad.Union{Children: []scad.Node{
				scad.Cylinder{R: outer, H: d.HeightMM, Fn: cylinderFacets},
				platform,
			}},
			cavity,
		}},
		guideTooth(d, bore),
	}})

	return doc, nil
}

// guideTooth returns the inward frustum on the bore wall near the top
// rim. It engages the maze track of the inner piece so the two pieces
// index against each other.
func guideTooth(d Dimensions, bore float64) scad.Node {
	return scad.Translate{
		X: -bore - 0.1,
		Z: d.HeightMM - toothDropMM,
		Child: scad.Rotate{
			Y: 90,
			Child: scad.Cylinder{
				R1: toothRadiusMM,
				R2: toothRadiusMM * toothTipTaper,
				H:  toothLengthMM + 0.1,
				Fn: toothFacets,
			},
		},
	}
}
