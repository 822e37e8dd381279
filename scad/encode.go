package scad

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// wedgeMaxStepDeg bounds the arc sampling step of a Wedge polygon.
const wedgeMaxStepDeg = 5.0

// encoder accumulates OpenSCAD text with two-space indentation.
type encoder struct {
	b      strings.Builder
	indent int
}

// line writes one indented statement line.
func (e *encoder) line(s string) {
	for i := 0; i < e.indent; i++ {
		e.b.WriteString("  ")
	}
	e.b.WriteString(s)
	e.b.WriteString("\n")
}

// num formats a float the same way on every run: shortest round-trip
// representation, no locale, no exponent surprises for the magnitudes
// geometry uses.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// triple formats "[x, y, z]".
func triple(x, y, z float64) string {
	return "[" + num(x) + ", " + num(y) + ", " + num(z) + "]"
}

// String returns the document as OpenSCAD source text.
func (d *Document) String() string {
	e := &encoder{}
	for _, a := range d.assigns {
		e.line(a.name + " = " + num(a.value) + ";")
	}
	if len(d.assigns) > 0 && len(d.stmts) > 0 {
		e.b.WriteString("\n")
	}
	for _, s := range d.stmts {
		s.encodeInto(e)
	}
	return e.b.String()
}

// Encode writes the document to w, returning only the writer's error.
// Output is deterministic: identical documents encode byte-identically.
func (d *Document) Encode(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}

func (c Cylinder) encodeInto(e *encoder) {
	var args string
	if c.R1 != 0 || c.R2 != 0 {
		args = "r1=" + num(c.R1) + ", r2=" + num(c.R2) + ", h=" + num(c.H)
	} else {
		args = "r=" + num(c.R) + ", h=" + num(c.H)
	}
	if c.Fn > 0 {
		args += fmt.Sprintf(", $fn=%d", c.Fn)
	}
	e.line("cylinder(" + args + ");")
}

func (c Cube) encodeInto(e *encoder) {
	e.line("cube(" + triple(c.X, c.Y, c.Z) + ");")
}

func (w Wedge) encodeInto(e *encoder) {
	segments := int(math.Ceil(w.AngleDeg / wedgeMaxStepDeg))
	if segments < 1 {
		segments = 1
	}
	step := w.AngleDeg / float64(segments)
	// Pad the sampled radii so the polygon circumscribes the nominal
	// arcs instead of inscribing them; the band must not fall short of
	// R, and its inner edge must not sag below InnerR into a cavity.
	pad := 1 / math.Cos(step*math.Pi/360)
	outer := w.R * pad

	var pts strings.Builder
	if w.InnerR > 0 {
		// Ring band: outer arc forward, inner arc backward.
		pts.WriteString("[")
		for i := 0; i <= segments; i++ {
			a := float64(i) * step * math.Pi / 180
			if i > 0 {
				pts.WriteString(", ")
			}
			pts.WriteString("[" + num(outer*math.Cos(a)) + ", " + num(outer*math.Sin(a)) + "]")
		}
		inner := w.InnerR * pad
		for i := segments; i >= 0; i-- {
			a := float64(i) * step * math.Pi / 180
			pts.WriteString(", [" + num(inner*math.Cos(a)) + ", " + num(inner*math.Sin(a)) + "]")
		}
		pts.WriteString("]")
	} else {
		// Full sector: fan from the axis.
		pts.WriteString("[[0, 0]")
		for i := 0; i <= segments; i++ {
			a := float64(i) * step * math.Pi / 180
			pts.WriteString(", [" + num(outer*math.Cos(a)) + ", " + num(outer*math.Sin(a)) + "]")
		}
		pts.WriteString("]")
	}

	e.line("linear_extrude(height=" + num(w.H) + ")")
	e.indent++
	e.line("polygon(points=" + pts.String() + ");")
	e.indent--
}

func (u Union) encodeInto(e *encoder) {
	e.line("union() {")
	e.indent++
	for _, c := range u.Children {
		c.encodeInto(e)
	}
	e.indent--
	e.line("}")
}

func (d Difference) encodeInto(e *encoder) {
	e.line("difference() {")
	e.indent++
	for _, c := range d.Children {
		c.encodeInto(e)
	}
	e.indent--
	e.line("}")
}

func (t Translate) encodeInto(e *encoder) {
	e.line("translate(" + triple(t.X, t.Y, t.Z) + ")")
	e.indent++
	t.Child.encodeInto(e)
	e.indent--
}

func (r Rotate) encodeInto(e *encoder) {
	e.line("rotate(" + triple(r.X, r.Y, r.Z) + ")")
	e.indent++
	r.Child.encodeInto(e)
	e.indent--
}

func (s Scale) encodeInto(e *encoder) {
	e.line("scale(" + triple(s.X, s.Y, s.Z) + ")")
	e.indent++
	s.Child.encodeInto(e)
	e.indent--
}
