// Package astar provides a precise, high-performance implementation of the
// A* shortest-path algorithm on 2-D weighted grids.
//
// Overview:
//
//   - FindPath computes the minimum-cost route between two cells of a
//     grid.Grid in O(N log N) time, where N = height·width.
//   - It relies on a min-heap (priority queue) ordered by f = g + h: the
//     best-known cost from the start plus a heuristic estimate to the goal.
//   - With an admissible heuristic (Auto, Diagonal, Manhattan) the returned
//     path cost is minimal; directional selectors trade that guarantee for
//     a steering bias.
//
// When to use:
//
//   - Tile and terrain maps: unit movement with per-cell traversal costs.
//   - Robotics and simulation: route planning over occupancy grids.
//   - Anywhere Dijkstra would work but a goal cell is known in advance;
//     the heuristic focuses expansion toward it and settles far fewer cells.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the
//     API signature.
//   - WithConnectivity: orthogonal-only (Conn4, default) or 8-way movement
//     (Conn8) with diagonal steps costing weight·√2.
//   - WithHeuristic: five selectors (Auto, Diagonal, Manhattan,
//     OrthogonalX, OrthogonalY); Auto picks the right admissible family for
//     the chosen connectivity.
//   - WithTiebreaker: adds c/1000·h to frontier priorities so equal-cost
//     routes break toward straighter paths; 0 disables it exactly.
//   - WithOnExpand: per-expansion callback; returning an error aborts the
//     search, which is how callers impose iteration or deadline caps.
//   - Walls: cells weighted grid.Impassable are never entered, and an
//     unreachable goal is reported as Found=false, not as an error.
//
// Heuristic selectors:
//
//   - Auto (0):        Diagonal under Conn8, Manhattan under Conn4.
//   - Diagonal (1):    octile distance; admissible everywhere.
//   - Manhattan (2):   |dr| + |dc|; admissible under Conn4 only.
//   - OrthogonalX (3): |dc| alone, racing along columns; inadmissible.
//   - OrthogonalY (4): |dr| alone, racing along rows; inadmissible.
//
// Admissibility rests on the grid's weight floor: every step costs at least
// grid.MinWeight, so an estimate of 1 per remaining step never overshoots.
//
// Performance and complexity:
//
//   - Time:  O(N log N)
//   - Each cell is settled at most once: N pops from the heap.
//   - Each settle relaxes at most 8 neighbors: up to 8·N pushes.
//   - Each heap Push/Pop costs O(log N).
//   - Space: O(N) for the per-call g-cost, parent, and closed arrays.
//   - No allocation inside the search loop: arena arrays plus a reused
//     neighbor buffer; frontier entries are the only per-push allocations.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil *grid.Grid to FindPath.
//   - ErrOutOfBounds:
//     Returned if start or goal lies outside the grid; the message names
//     the offending role and coordinates.
//   - ErrOptionViolation:
//     Returned if an option records an invalid value (unknown connectivity,
//     unknown heuristic selector, NaN tiebreaker).
//   - OnExpand errors are propagated wrapped with the cell they fired at;
//     use errors.Is to recover the caller's own sentinel.
//
// API reference:
//
//	func FindPath(
//	    g *grid.Grid,
//	    start, goal [2]int,
//	    opts ...Option,
//	) (*Result, error)
//
//	  - g:       validated grid from grid.New or grid.From2D.
//	  - start:   (row, col) of the first path cell.
//	  - goal:    (row, col) of the last path cell.
//	  - Result:  Path [][2]int (start→goal inclusive, nil if none),
//	             Cost float64 (sum of entered-cell weights),
//	             Found bool (false means unreachable, not failure),
//	             Expanded int (cells settled; a quality metric for
//	             comparing heuristics and tie-break settings).
//
// Determinism and thread safety:
//
//   - Identical inputs yield identical paths: neighbor order is fixed and
//     nothing is randomized.
//   - A *grid.Grid is read-only after construction; any number of FindPath
//     calls may run concurrently against the same grid, each with its own
//     private search state.
//
// See also:
//
//   - grid.Grid: construction, validation, walls, and the cost model.
//   - grid.PathCost: independent re-derivation of a path's total cost.
//
// Thanks for choosing astar2d! We aim to provide rock-solid pathfinding that
// blends mathematical rigor, performance, and clarity. If you spot any issue
// or have suggestions, please open an issue or PR on GitHub.
package astar
