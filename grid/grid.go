// Package grid provides the read-only cost model for 2-D weighted grids:
// per-cell traversal weights, bounds checks, row-major index conversion,
// and neighbor enumeration under Conn4 or Conn8 connectivity.
package grid

import (
	"fmt"
	"math"
)

// Grid is an immutable view over a flattened row-major weight array.
// Weight(idx) answers "what does it cost to enter cell idx"; every weight
// is ≥ MinWeight, enforced at construction so downstream searches may
// assume it. A weight of Impassable (+Inf) marks a wall: the cell exists
// but is never offered as a neighbor.
type Grid struct {
	height, width int
	weights       []float64
}

// New constructs a Grid from a flattened row-major weight slice.
// It deep-copies weights to ensure immutability.
// Returns ErrEmptyGrid if height or width is non-positive,
// ErrDimensionMismatch if len(weights) != height*width,
// ErrWeightNaN or ErrWeightBelowMin (wrapped with the offending index and
// value) if any weight violates the cost floor. Impassable (+Inf) passes
// the floor and marks a wall; −Inf is rejected like any weight below 1.
// Complexity: O(H×W) time and memory.
func New(weights []float64, height, width int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, ErrEmptyGrid
	}
	if len(weights) != height*width {
		return nil, fmt.Errorf("%w: got %d weights for %d×%d", ErrDimensionMismatch, len(weights), height, width)
	}
	for i, w := range weights {
		// NaN compares false against everything, so the floor check below
		// would silently admit it.
		if math.IsNaN(w) {
			return nil, fmt.Errorf("%w: weight[%d]", ErrWeightNaN, i)
		}
		if w < MinWeight {
			return nil, fmt.Errorf("%w: weight[%d]=%g", ErrWeightBelowMin, i, w)
		}
	}
	// Deep copy to prevent external mutation
	cp := make([]float64, len(weights))
	copy(cp, weights)

	return &Grid{height: height, width: width, weights: cp}, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2-D weight slice,
// flattening it row-major. Returns ErrEmptyGrid if rows has no rows or no
// columns, ErrNonRectangular if any row length differs, and the same weight
// validation errors as New.
// Complexity: O(H×W) time and memory.
func From2D(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	flat := make([]float64, 0, h*w)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		flat = append(flat, row...)
	}

	return New(flat, h, w)
}

// Height reports the number of rows.
func (g *Grid) Height() int { return g.height }

// Width reports the number of columns.
func (g *Grid) Width() int { return g.width }

// Len reports the total cell count, height*width.
func (g *Grid) Len() int { return len(g.weights) }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

// Index maps (r,c) to its row-major flattened index: r*Width + c.
// Complexity: O(1).
func (g *Grid) Index(r, c int) int {
	return r*g.width + c
}

// Coordinate converts a flattened index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.width, idx % g.width
}

// Weight returns the cost charged to enter cell idx.
func (g *Grid) Weight(idx int) float64 {
	return g.weights[idx]
}

// WeightAt returns the cost charged to enter cell (r,c).
func (g *Grid) WeightAt(r, c int) float64 {
	return g.weights[r*g.width+c]
}

// AppendNeighbors appends the reachable neighbors of cell idx under conn to
// dst and returns the extended slice. Step costs charge the destination
// cell's weight, scaled by DiagonalCost for diagonal moves so that step
// costs and the diagonal heuristic share one geometry. Cells outside the
// grid are never produced (no wraparound), and Impassable cells are skipped
// entirely.
//
// Passing dst[:0] with a reused buffer keeps search loops allocation-free.
// Complexity: O(1), at most 8 appends.
func (g *Grid) AppendNeighbors(dst []Neighbor, idx int, conn Connectivity) []Neighbor {
	r, c := idx/g.width, idx%g.width
	for _, d := range conn.offsets() {
		nr, nc := r+d[0], c+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		ni := nr*g.width + nc
		cost := g.weights[ni]
		// Walls are not neighbors.
		if math.IsInf(cost, 1) {
			continue
		}
		if d[0] != 0 && d[1] != 0 {
			cost *= DiagonalCost
		}
		dst = append(dst, Neighbor{Index: ni, Cost: cost})
	}

	return dst
}

// PathCost sums the per-step entry costs along path under conn: for each
// consecutive pair the destination cell's weight, scaled by DiagonalCost on
// diagonal steps. The first cell is never "entered" and contributes nothing,
// so a single-cell path costs 0. A step into an Impassable cell makes the
// total +Inf, which is the honest cost of walking through a wall.
//
// Returns ErrOutOfBounds (wrapped with the offending position) if any cell
// lies outside the grid, and ErrNotAdjacent if a consecutive pair is not a
// legal step under conn.
// Complexity: O(len(path)).
func (g *Grid) PathCost(path [][2]int, conn Connectivity) (float64, error) {
	var total float64
	for i, cell := range path {
		if !g.InBounds(cell[0], cell[1]) {
			return 0, fmt.Errorf("%w: path[%d]=(%d,%d)", ErrOutOfBounds, i, cell[0], cell[1])
		}
		if i == 0 {
			continue
		}
		dr := abs(cell[0] - path[i-1][0])
		dc := abs(cell[1] - path[i-1][1])
		switch {
		case conn == Conn8 && dr <= 1 && dc <= 1 && dr+dc > 0:
			// legal orthogonal or diagonal step
		case conn != Conn8 && dr+dc == 1:
			// legal orthogonal step
		default:
			return 0, fmt.Errorf("%w: path[%d]→path[%d]", ErrNotAdjacent, i-1, i)
		}
		cost := g.weights[cell[0]*g.width+cell[1]]
		if dr == 1 && dc == 1 {
			cost *= DiagonalCost
		}
		total += cost
	}

	return total, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
