// Package scad defines the tagged-variant node types of a solid-geometry
// document.
package scad

// Node is one solid-geometry statement: a primitive shape, a boolean
// operation over children, or a transform wrapping a child.
// The interface is sealed; the variant set is fixed by this package.
type Node interface {
	// encodeInto appends this node's OpenSCAD text at the given indent.
	encodeInto(e *encoder)
}

// Cylinder is a Z-axis cylinder of height H sitting on the XY plane.
// With R set it has constant radius; with R1/R2 set it is a cone frustum
// from bottom radius R1 to top radius R2. Fn, when positive, fixes the
// facet count ($fn).
type Cylinder struct {
	R      float64
	R1, R2 float64
	H      float64
	Fn     int
}

// Cube is an axis-aligned box with one corner at the origin.
type Cube struct {
	X, Y, Z float64
}

// Wedge is a pie-sector prism: a sector of radius R spanning AngleDeg
// degrees from the +X axis, extruded H along Z. With InnerR > 0 the
// sector is annular (a ring band) and never reaches the axis. The arcs
// are emitted as a polygon sampled finely enough that the band always
// covers its nominal radii, for any angle up to 360°.
type Wedge struct {
	R        float64
	InnerR   float64
	AngleDeg float64
	H        float64
}

// Union is the boolean union of its children, in order.
type Union struct {
	Children []Node
}

// Difference subtracts every later child from the first.
type Difference struct {
	Children []Node
}

// Translate shifts its child by (X, Y, Z).
type Translate struct {
	X, Y, Z float64
	Child   Node
}

// Rotate rotates its child by the given per-axis angles in degrees.
type Rotate struct {
	X, Y, Z float64
	Child   Node
}

// Scale scales its child by the given per-axis factors.
type Scale struct {
	X, Y, Z float64
	Child   Node
}

// assignment is one named numeric parameter at the top of a document.
type assignment struct {
	name  string
	value float64
}

// Document is an ordered solid-geometry description of one printable
// piece: named parameter assignments first, then statement nodes.
// Write-once: a builder appends, serialization reads.
type Document struct {
	assigns []assignment
	stmts   []Node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Assign appends a named numeric parameter line (`name = value;`).
// Assignments keep insertion order.
func (d *Document) Assign(name string, value float64) {
	d.assigns = append(d.assigns, assignment{name: name, value: value})
}

// Add appends a statement node. Statements keep insertion order.
func (d *Document) Add(n Node) {
	d.stmts = append(d.stmts, n)
}
