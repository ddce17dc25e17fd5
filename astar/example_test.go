// Package astar_test provides examples demonstrating how to use FindPath.
// Each example is runnable via "go test -run Example", showing both code and
// expected output.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/astar2d/astar"
	"github.com/katalvlaran/astar2d/grid"
)

// ExampleFindPath demonstrates routing around expensive terrain.
// The middle column costs 9 per cell except at the bottom, so the cheapest
// route makes a U-turn through the bottom row.
// Complexity: O(N log N) with N = 9 cells.
func ExampleFindPath() {
	// 1) Build the cost surface. Entering a cell charges its weight.
	g, err := grid.From2D([][]float64{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Search from the top-left to the top-right corner.
	res, err := astar.FindPath(g, [2]int{0, 0}, [2]int{0, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Six unit steps instead of one 9-weighted shortcut.
	fmt.Println("path:", res.Path)
	fmt.Println("cost:", res.Cost)
	// Output:
	// path: [[0 0] [1 0] [2 0] [2 1] [2 2] [1 2] [0 2]]
	// cost: 6
}

// ExampleFindPath_diagonal demonstrates 8-way movement: on a uniform grid
// the main diagonal wins at √2 per step.
// Complexity: O(N log N).
func ExampleFindPath_diagonal() {
	// 1) A uniform 3×3 grid: every cell costs 1 to enter.
	g, err := grid.From2D([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Allow diagonal steps with WithConnectivity(Conn8); the Auto
	//    heuristic switches to the octile estimate automatically.
	res, err := astar.FindPath(g, [2]int{0, 0}, [2]int{2, 2},
		astar.WithConnectivity(grid.Conn8))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Two diagonal steps: 2·√2 ≈ 2.828.
	fmt.Printf("cells=%d cost=%.3f\n", len(res.Path), res.Cost)
	// Output: cells=3 cost=2.828
}

// ExampleFindPath_noPath demonstrates walls and the unreachable outcome.
// A full column of grid.Impassable severs the grid; FindPath reports
// Found=false with a nil error rather than failing.
func ExampleFindPath_noPath() {
	// 1) Wall off the middle column.
	//
	//	. # .
	//	. # .
	//	. # .
	W := grid.Impassable
	g, err := grid.From2D([][]float64{
		{1, W, 1},
		{1, W, 1},
		{1, W, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) The left and right components never touch.
	res, err := astar.FindPath(g, [2]int{1, 0}, [2]int{1, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Expanded counts the cells settled before giving up.
	fmt.Printf("found=%v expanded=%d\n", res.Found, res.Expanded)
	// Output: found=false expanded=3
}

// ExampleFindPath_onExpand demonstrates observing the search as it runs.
// On a 1×4 corridor the cells settle strictly left to right; the goal ends
// the search before it can be expanded, so it never reaches the hook.
func ExampleFindPath_onExpand() {
	g, err := grid.From2D([][]float64{{1, 1, 1, 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := astar.FindPath(g, [2]int{0, 0}, [2]int{0, 3},
		astar.WithOnExpand(func(cell [2]int, gCost float64) error {
			fmt.Printf("expand (%d,%d) g=%g\n", cell[0], cell[1], gCost)

			// Returning an error here would abort the search; that is how
			// callers impose iteration or deadline caps.
			return nil
		}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost=%g len=%d\n", res.Cost, len(res.Path))
	// Output:
	// expand (0,0) g=0
	// expand (0,1) g=1
	// expand (0,2) g=2
	// cost=3 len=4
}
