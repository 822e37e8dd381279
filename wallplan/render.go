package wallplan

import (
	"strings"

	"github.com/mbrooker/maze-maker/cylgrid"
)

// String renders the plan as ASCII art, one text cell per maze cell.
// The left and right edges are the same physical seam on the cylinder:
// a gap there means the passage wraps around. The top and bottom borders
// are always solid — they are the cylinder caps.
func (p *Plan) String() string {
	off := cylgrid.Cell{Row: -1, Col: -1}
	return p.render(off, off)
}

// MarkedString renders like String with the start cell shown as S and
// the end cell as E inside the maze. Out-of-grid cells mark nothing.
func (p *Plan) MarkedString(start, end cylgrid.Cell) string {
	return p.render(start, end)
}

func (p *Plan) render(start, end cylgrid.Cell) string {
	var b strings.Builder

	// Top cap: row 0's North sides are all Wall.
	b.WriteString("+")
	b.WriteString(strings.Repeat("---+", p.cols))
	b.WriteString("\n")

	for row := 0; row < p.rows; row++ {
		// Cell band: the leading edge shows column 0's West wall, which
		// is the wrap seam shared with column cols-1's East wall.
		if p.At(row, 0).West == Passage {
			b.WriteString(" ")
		} else {
			b.WriteString("|")
		}
		for col := 0; col < p.cols; col++ {
			switch (cylgrid.Cell{Row: row, Col: col}) {
			case start:
				b.WriteString(" S ")
			case end:
				b.WriteString(" E ")
			default:
				b.WriteString("   ")
			}
			if p.At(row, col).East == Passage {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")

		// Wall band below the row; the final row's South sides are all
		// Wall, closing the bottom cap.
		b.WriteString("+")
		for col := 0; col < p.cols; col++ {
			if p.At(row, col).South == Passage {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
