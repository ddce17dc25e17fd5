// Package grid defines core types, constants, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/astar2d.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction and inspection.
var (
	// ErrEmptyGrid indicates non-positive height or width.
	ErrEmptyGrid = errors.New("grid: height and width must be at least 1")
	// ErrDimensionMismatch indicates the weight slice length differs from height*width.
	ErrDimensionMismatch = errors.New("grid: weight count must equal height*width")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrWeightBelowMin indicates a cell weight below MinWeight.
	ErrWeightBelowMin = errors.New("grid: cell weight below minimum of 1")
	// ErrWeightNaN indicates a NaN cell weight.
	ErrWeightNaN = errors.New("grid: cell weight is NaN")
	// ErrOutOfBounds indicates a coordinate outside [0,H)×[0,W).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNotAdjacent indicates consecutive path cells that are not a legal step.
	ErrNotAdjacent = errors.New("grid: path cells are not adjacent under the given connectivity")
)

// MinWeight is the smallest admissible cell weight. Any move must cost at
// least 1; the heuristics in the astar package rely on this floor.
const MinWeight = 1.0

// Impassable is the weight of a wall cell. Walls pass the ≥ MinWeight floor
// but are excluded from neighbor enumeration, so no search can enter them.
// Assign it to cells directly: weights[i] = grid.Impassable.
var Impassable = math.Inf(1)

// DiagonalCost is the step multiplier for diagonal moves under Conn8.
// The same constant scales the diagonal heuristic, keeping estimates
// admissible; changing one without the other breaks that guarantee.
const DiagonalCost = math.Sqrt2

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, S, W, E.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, S, W, E plus the four diagonals.
	Conn8
)

// offsets returns the fixed (dRow, dCol) neighbor offsets for c.
// The order is part of the contract: searches enumerate neighbors in this
// sequence, which makes results reproducible run to run.
// Any value other than Conn8 falls back to the orthogonal set.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return conn8Offsets[:]
	}

	return conn4Offsets[:]
}

var conn4Offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

var conn8Offsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Neighbor is one reachable cell together with the cost of stepping into it:
// the destination cell's weight, multiplied by DiagonalCost on diagonal moves.
type Neighbor struct {
	Index int     // flattened index of the neighboring cell
	Cost  float64 // cost charged for entering it from the current cell
}
