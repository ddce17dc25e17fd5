// Package grid models a 2-D weighted grid as the read-only cost surface
// for shortest-path search.
//
// What:
//
//   - Grid wraps a flattened row-major []float64 of per-cell entry costs
//     with its height and width, deep-copied and immutable once built.
//   - Validating constructors (New, From2D) enforce the cost floor: every
//     weight ≥ MinWeight (1.0), NaN rejected.
//   - Walls: a weight of Impassable (+Inf) marks a cell no search may
//     enter. Walls pass the floor but are skipped during neighbor
//     enumeration.
//   - Row-major index bijection: Index(r,c) = r·W+c and Coordinate(idx).
//   - Neighbor enumeration under Conn4 or Conn8; diagonal steps cost the
//     destination weight × DiagonalCost (√2).
//   - PathCost re-derives the total cost of a coordinate path, validating
//     step legality along the way.
//
// Why:
//
//   - Terrain and tile maps: movement cost per cell, 4- or 8-way movement.
//   - Robotics occupancy grids: traversal penalties over a discretized map.
//   - Any A*/Dijkstra-style search needs exactly this read-only contract:
//     "cost to enter cell X" and "neighbors of X".
//
// The cost floor matters: heuristics in the astar package estimate at least
// 1 per remaining step, so a weight below 1 would let the estimate exceed
// the true cost and break optimality. Construction fails fast instead.
// Unreachability comes from walls: with every cell finite, a rectangular
// grid is fully connected and every search succeeds.
//
// Complexity:
//
//   - New / From2D:      O(W×H) time and memory.
//   - InBounds, Index, Coordinate, Weight: O(1).
//   - AppendNeighbors:   O(1) (≤ 8 neighbors).
//   - PathCost:          O(len(path)).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive height or width.
//   - ErrDimensionMismatch: weight count differs from height×width.
//   - ErrNonRectangular: rows of differing lengths (From2D).
//   - ErrWeightBelowMin: a weight under MinWeight (−Inf included).
//   - ErrWeightNaN: a NaN weight.
//   - ErrOutOfBounds: coordinate outside the grid (PathCost).
//   - ErrNotAdjacent: illegal step between consecutive path cells (PathCost).
//
// A *Grid is safe for concurrent readers; searches on a shared grid never
// interfere.
package grid
