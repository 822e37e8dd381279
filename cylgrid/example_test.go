// File: cylgrid/example_test.go
package cylgrid_test

import (
	"fmt"

	"github.com/mbrooker/maze-maker/cylgrid"
)

// ExampleGrid_Neighbors demonstrates cylinder adjacency on a 2×3 grid.
// Scenario:
//
//   - Cell (0,0) sits on the top cap: no North neighbor.
//   - Its West neighbor wraps around to column 2.
//
// Complexity: O(1)
func ExampleGrid_Neighbors() {
	g, _ := cylgrid.New(2, 3)
	for _, n := range g.Neighbors(cylgrid.Cell{Row: 0, Col: 0}) {
		fmt.Printf("%s -> (%d,%d)\n", n.Dir, n.Cell.Row, n.Cell.Col)
	}

	// Output:
	// South -> (1,0)
	// West -> (0,2)
	// East -> (0,1)
}
