// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/astar2d/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: From2D and neighbor enumeration
////////////////////////////////////////////////////////////////////////////////

// ExampleFrom2D demonstrates building a grid from 2-D weights and listing
// the neighbors of a cell under 4-connectivity.
// Scenario:
//
//   - 3×3 terrain: the middle column is swampy (cost 3), the rest costs 1.
//   - Neighbors of the center (1,1), enumerated up, down, left, right.
//
// Complexity: O(W·H) to build, O(1) per neighbor query.
func ExampleFrom2D() {
	g, _ := grid.From2D([][]float64{
		{1, 3, 1},
		{1, 3, 1},
		{1, 3, 1},
	})

	fmt.Printf("%d×%d cells\n", g.Height(), g.Width())
	for _, n := range g.AppendNeighbors(nil, g.Index(1, 1), grid.Conn4) {
		r, c := g.Coordinate(n.Index)
		fmt.Printf("(%d,%d) costs %g\n", r, c, n.Cost)
	}

	// Output:
	// 3×3 cells
	// (0,1) costs 3
	// (2,1) costs 3
	// (1,0) costs 1
	// (1,2) costs 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: PathCost
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_PathCost demonstrates re-deriving the total cost of a
// coordinate path: each step charges the weight of the cell being entered.
func ExampleGrid_PathCost() {
	g, _ := grid.From2D([][]float64{
		{1, 1, 1},
		{1, 5, 1},
		{1, 1, 1},
	})

	around := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}
	through := [][2]int{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}}

	a, _ := g.PathCost(around, grid.Conn4)
	b, _ := g.PathCost(through, grid.Conn4)
	fmt.Printf("around: %g\nthrough: %g\n", a, b)

	// Output:
	// around: 4
	// through: 8
}
