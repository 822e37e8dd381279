// File: wilson/example_test.go
package wilson_test

import (
	"fmt"

	"github.com/mbrooker/maze-maker/cylgrid"
	"github.com/mbrooker/maze-maker/wilson"
)

// ExampleGenerate demonstrates sampling a perfect maze over a 4×6
// cylinder grid with a fixed seed.
// Scenario:
//
//   - 24 cells ⇒ the spanning tree always has 23 edges.
//   - A fixed seed makes the run reproducible.
//
// Complexity: expected O(τ) walk steps (mean hitting time of the grid).
func ExampleGenerate() {
	g, _ := cylgrid.New(4, 6)
	tree, err := wilson.Generate(g, wilson.WithSeed(42))
	if err != nil {
		fmt.Println("generate failed:", err)
		return
	}
	fmt.Println("cells:", tree.CellCount())
	fmt.Println("edges:", tree.EdgeCount())

	// Output:
	// cells: 24
	// edges: 23
}
