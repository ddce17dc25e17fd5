// Package astar defines core types and configuration options
// for A* shortest-path search over 2-D weighted grids.
//
// A* computes the minimum-cost path from a start cell to a goal cell,
// expanding cells in order of g + h: the best-known cost from the start
// plus a heuristic estimate of the cost remaining to the goal.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = height·width
//	   • Each cell is settled (closed) at most once: N pops.
//	   • Each settle relaxes ≤ 8 neighbors, so ≤ 8·N pushes.
//	   • Each heap operation costs O(log N).
//	– Space: O(N)
//	   • Arena arrays for g-costs, parents, and closed flags.
//	   • Frontier may hold duplicate entries (lazy decrease-key).
//
// Options:
//
//	– WithConnectivity:  Conn4 (default) or Conn8 movement.
//	– WithHeuristic:     estimate family; Auto resolves by connectivity.
//	– WithTiebreaker:    bias expansion among equal-f cells (0 disables).
//	– WithOnExpand:      per-expansion hook; returning an error aborts.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrOutOfBounds     if start or goal lies outside the grid.
//	– ErrOptionViolation if an invalid Option is supplied.
//
// An unreachable goal is NOT an error: FindPath reports it as a Result
// with Found=false and a nil Path.
package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/astar2d/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates a start or goal cell outside the grid;
	// the wrapped message names the role and coordinates.
	ErrOutOfBounds = errors.New("astar: cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic selects the estimate family used to order the frontier.
// The numeric values (0=auto, 1=diagonal, 2=manhattan, 3=orthogonal-x,
// 4=orthogonal-y) are fixed and part of the public contract, so stored or
// marshaled selectors stay meaningful across versions.
//
// Selectors Auto, Diagonal, and Manhattan never overestimate the true
// remaining cost while every weight is ≥ grid.MinWeight, so paths found
// with them are minimal. OrthogonalX and OrthogonalY deliberately ignore
// one axis: they are directional bias modes, not shortest-path guarantees.
type Heuristic int

const (
	// Auto resolves to Diagonal under Conn8 and Manhattan otherwise.
	Auto Heuristic = iota

	// Diagonal is the octile estimate:
	// min(|dr|,|dc|)·DiagonalCost + (max(|dr|,|dc|)−min(|dr|,|dc|)).
	// Admissible under both connectivity modes.
	Diagonal

	// Manhattan is |dr| + |dc|. Admissible under Conn4; under Conn8 it can
	// overestimate, which is why Auto switches away from it.
	Manhattan

	// OrthogonalX estimates |dc| only, ignoring the row distance.
	// Intentionally inadmissible: expansion races along columns first.
	// Paths found with it are not guaranteed minimal.
	OrthogonalX

	// OrthogonalY estimates |dr| only, ignoring the column distance.
	// Same caveat as OrthogonalX.
	OrthogonalY
)

// valid reports whether h is one of the defined selector values.
func (h Heuristic) valid() bool {
	return h >= Auto && h <= OrthogonalY
}

// resolve maps Auto to the concrete family for conn; other selectors pass
// through unchanged.
func (h Heuristic) resolve(conn grid.Connectivity) Heuristic {
	if h != Auto {
		return h
	}
	if conn == grid.Conn8 {
		return Diagonal
	}

	return Manhattan
}

// Options configures the behavior of FindPath.
//
// Conn       – movement connectivity (Conn4 or Conn8).
// Heuristic  – estimate family; see the Heuristic constants.
// Tiebreaker – coefficient c adding c/1000·h to frontier priorities only,
// never to recorded g-costs. 0 disables the bias exactly. Among equal-cost
// candidates a positive c penalizes the larger estimate, so cells nearer
// the goal pop first; that tends to favor straighter paths over zig-zags,
// at the price of the optimality guarantee.
// OnExpand   – hook invoked for each cell as it is expanded; see WithOnExpand.
type Options struct {
	Conn       grid.Connectivity
	Heuristic  Heuristic
	Tiebreaker float64
	OnExpand   func(cell [2]int, gCost float64) error

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns an Options with sensible defaults: Conn4 movement,
// Auto heuristic, tie-breaking disabled, and a no-op expansion hook.
func DefaultOptions() Options {
	return Options{
		Conn:       grid.Conn4,
		Heuristic:  Auto,
		Tiebreaker: 0,
		OnExpand:   func([2]int, float64) error { return nil },
		err:        nil,
	}
}

// WithConnectivity selects 4- or 8-directional movement.
// Values other than grid.Conn4 and grid.Conn8 cause ErrOptionViolation.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		if c != grid.Conn4 && c != grid.Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, c)

			return
		}
		o.Conn = c
	}
}

// WithHeuristic selects the estimate family.
// Selectors outside [Auto, OrthogonalY] cause ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if !h.valid() {
			o.err = fmt.Errorf("%w: unknown heuristic selector %d", ErrOptionViolation, h)

			return
		}
		o.Heuristic = h
	}
}

// WithTiebreaker sets the tie-break coefficient c. Any finite value is
// accepted; c = 0 disables the feature exactly. A NaN coefficient causes
// ErrOptionViolation. Non-zero coefficients trade the minimal-cost
// guarantee for an expansion-order bias.
func WithTiebreaker(c float64) Option {
	return func(o *Options) {
		if math.IsNaN(c) {
			o.err = fmt.Errorf("%w: tiebreaker coefficient is NaN", ErrOptionViolation)

			return
		}
		o.Tiebreaker = c
	}
}

// WithOnExpand registers a hook called for each cell as it is expanded
// (settled and about to relax its neighbors), receiving the cell and its
// final g-cost. Returning a non-nil error aborts the search and FindPath
// propagates it wrapped; this is how callers impose iteration or
// wall-clock caps, as an outcome distinct from "no path".
// The goal cell ends the search before expansion, so it never reaches
// the hook. A nil fn leaves the no-op hook in place.
func WithOnExpand(fn func(cell [2]int, gCost float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of one search:
//   - Path: (row, col) pairs from start to goal inclusive; nil when no
//     path exists. Owned by the caller; the engine keeps no reference.
//   - Cost: total path cost, the goal's recorded g (0 when Found=false).
//   - Found: whether the goal was reached. False is an ordinary outcome,
//     not an error; disconnection is expected on many grids.
//   - Expanded: cells settled during the search, the goal included.
//     Useful for comparing heuristics and tie-break settings.
type Result struct {
	Path     [][2]int
	Cost     float64
	Found    bool
	Expanded int
}
