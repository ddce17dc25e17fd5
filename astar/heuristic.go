package astar

import "github.com/katalvlaran/astar2d/grid"

// estimatorFor builds the cost-to-goal estimate for the resolved family.
// Coordinates are recovered from flat indices on demand:
//
//	dr = |row − goalRow|, dc = |col − goalCol|
//
//	Diagonal:    min(dr,dc)·DiagonalCost + (max(dr,dc) − min(dr,dc))
//	Manhattan:   dr + dc
//	OrthogonalX: dc
//	OrthogonalY: dr
//
// The straight-step term uses grid.MinWeight (1) as the cheapest possible
// move, which keeps the admissible families from overestimating.
// Every family returns exactly 0 at the goal itself.
func estimatorFor(h Heuristic, conn grid.Connectivity, g *grid.Grid, goal int) func(idx int) float64 {
	goalRow, goalCol := g.Coordinate(goal)

	switch h.resolve(conn) {
	case Manhattan:
		return func(idx int) float64 {
			row, col := g.Coordinate(idx)

			return float64(abs(row-goalRow) + abs(col-goalCol))
		}
	case OrthogonalX:
		return func(idx int) float64 {
			_, col := g.Coordinate(idx)

			return float64(abs(col - goalCol))
		}
	case OrthogonalY:
		return func(idx int) float64 {
			row, _ := g.Coordinate(idx)

			return float64(abs(row - goalRow))
		}
	default: // Diagonal, the only family left after resolve.
		return func(idx int) float64 {
			row, col := g.Coordinate(idx)
			dr, dc := abs(row-goalRow), abs(col-goalCol)
			if dr > dc {
				dr, dc = dc, dr
			}
			// dr is now min(|Δrow|,|Δcol|): the diagonal leg; the rest is straight.
			return float64(dr)*grid.DiagonalCost + float64(dc-dr)
		}
	}
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
