package wallplan_test

import (
	"strings"
	"testing"

	"github.com/mbrooker/maze-maker/cylgrid"
	"github.com/mbrooker/maze-maker/wallplan"
	"github.com/mbrooker/maze-maker/wilson"
)

// derivePlan builds a grid, generates a seeded maze, and derives its plan.
func derivePlan(t testing.TB, rows, cols int, seed int64) (*cylgrid.Grid, *wallplan.Plan) {
	t.Helper()
	g, err := cylgrid.New(rows, cols)
	if err != nil {
		t.Fatalf("New(%d,%d) error: %v", rows, cols, err)
	}
	tree, err := wilson.Generate(g, wilson.WithSeed(seed))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	return g, wallplan.Derive(g, tree)
}

//----------------------------------------------------------------------------//
// Derivation properties
//----------------------------------------------------------------------------//

// TestDerive_MatchesTreeEdges verifies side = Passage exactly where a
// tree edge exists toward that neighbor.
func TestDerive_MatchesTreeEdges(t *testing.T) {
	g, err := cylgrid.New(5, 7)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	tree, err := wilson.Generate(g, wilson.WithSeed(21))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	p := wallplan.Derive(g, tree)

	for _, c := range g.Cells() {
		for _, n := range g.Neighbors(c) {
			got := p.At(c.Row, c.Col).At(n.Dir)
			want := wallplan.Wall
			if tree.HasEdge(c, n.Cell) {
				want = wallplan.Passage
			}
			if got != want {
				t.Errorf("cell %v side %v = %v; want %v", c, n.Dir, got, want)
			}
		}
	}
}

// TestDerive_Symmetric verifies wall state is a property of the edge:
// A's side toward B always equals B's side toward A.
func TestDerive_Symmetric(t *testing.T) {
	g, p := derivePlan(t, 6, 8, 33)

	for _, c := range g.Cells() {
		for _, n := range g.Neighbors(c) {
			mine := p.At(c.Row, c.Col).At(n.Dir)
			theirs := p.At(n.Cell.Row, n.Cell.Col).At(n.Dir.Opposite())
			if mine != theirs {
				t.Errorf("asymmetric side: %v %v=%v but %v %v=%v",
					c, n.Dir, mine, n.Cell, n.Dir.Opposite(), theirs)
			}
		}
	}
}

// TestDerive_CapRowsAlwaysWall verifies row 0 North and row rows-1 South
// never open: the caps have no neighbor to open toward.
func TestDerive_CapRowsAlwaysWall(t *testing.T) {
	_, p := derivePlan(t, 4, 5, 11)

	for col := 0; col < p.Cols(); col++ {
		if p.At(0, col).North != wallplan.Wall {
			t.Errorf("row 0 col %d North = Passage; caps must stay Wall", col)
		}
		if p.At(p.Rows()-1, col).South != wallplan.Wall {
			t.Errorf("bottom row col %d South = Passage; caps must stay Wall", col)
		}
	}
}

// TestDerive_SingleRing pins the rows=1, cols=4 scenario: the plan has
// exactly one East/West pair marked Wall (the omitted ring edge), every
// other ring side open, and no vertical side open anywhere.
func TestDerive_SingleRing(t *testing.T) {
	_, p := derivePlan(t, 1, 4, 77)

	eastWalls := 0
	for col := 0; col < 4; col++ {
		cw := p.At(0, col)
		if cw.North != wallplan.Wall || cw.South != wallplan.Wall {
			t.Errorf("col %d has an open vertical side on a single ring", col)
		}
		if cw.East == wallplan.Wall {
			eastWalls++
			// The matching West wall of the eastern neighbor must agree.
			if p.At(0, (col+1)%4).West != wallplan.Wall {
				t.Errorf("col %d East=Wall but neighbor West=Passage", col)
			}
		}
	}
	if eastWalls != 1 {
		t.Errorf("single-ring plan has %d East walls; want exactly 1", eastWalls)
	}
}

//----------------------------------------------------------------------------//
// Solvability
//----------------------------------------------------------------------------//

// TestSolvable_PerfectMaze verifies every pair of cells is connected
// through passages, and out-of-grid endpoints are unreachable.
func TestSolvable_PerfectMaze(t *testing.T) {
	g, p := derivePlan(t, 3, 4, 55)

	cells := g.Cells()
	from := cells[0]
	for _, to := range cells {
		if !p.Solvable(from, to) {
			t.Errorf("cell %v unreachable from %v in a perfect maze", to, from)
		}
	}

	if p.Solvable(from, cylgrid.Cell{Row: 9, Col: 9}) {
		t.Error("out-of-grid cell reported reachable")
	}
	if p.Solvable(cylgrid.Cell{Row: -1, Col: 0}, from) {
		t.Error("out-of-grid start reported reachable")
	}
}

//----------------------------------------------------------------------------//
// Rendering
//----------------------------------------------------------------------------//

// TestString_Shape checks the rendering has the expected line count and
// solid top/bottom cap borders.
func TestString_Shape(t *testing.T) {
	_, p := derivePlan(t, 3, 5, 13)

	lines := splitLines(p.String())
	// One top border plus two bands per row.
	if want := 1 + 2*p.Rows(); len(lines) != want {
		t.Fatalf("rendered line count = %d; want %d", len(lines), want)
	}
	top := "+---+---+---+---+---+"
	if lines[0] != top {
		t.Errorf("top border = %q; want %q", lines[0], top)
	}
	if lines[len(lines)-1] != top {
		t.Errorf("bottom border = %q; want %q", lines[len(lines)-1], top)
	}
}

// TestMarkedString_StartEnd checks the marked rendering places exactly
// one S and one E in the named cells' rows, and that the plain
// rendering stays unmarked.
func TestMarkedString_StartEnd(t *testing.T) {
	_, p := derivePlan(t, 3, 4, 13)
	start := cylgrid.Cell{Row: 0, Col: 1}
	end := cylgrid.Cell{Row: 2, Col: 3}

	out := p.MarkedString(start, end)
	if got := strings.Count(out, "S"); got != 1 {
		t.Errorf("S marker count = %d; want 1", got)
	}
	if got := strings.Count(out, "E"); got != 1 {
		t.Errorf("E marker count = %d; want 1", got)
	}

	lines := splitLines(out)
	// Cell band for row r is line 1+2r.
	if !strings.Contains(lines[1], " S ") {
		t.Errorf("row 0 band %q missing start marker", lines[1])
	}
	if !strings.Contains(lines[5], " E ") {
		t.Errorf("row 2 band %q missing end marker", lines[5])
	}

	if strings.ContainsAny(p.String(), "SE") {
		t.Error("plain rendering carries markers")
	}
}

// splitLines splits s on newlines, dropping the trailing empty entry.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
