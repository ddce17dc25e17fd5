// Package astar2d is your toolkit for shortest-path search over 2-D
// weighted grids: cost surfaces, walls, pluggable heuristics, and a
// tunable A* engine.
//
// 🚀 What is astar2d?
//
//	A small, deterministic, thread-friendly pathfinding library:
//		• Cost model: per-cell entry weights with a validated ≥ 1 floor
//		• Walls: mark cells Impassable and routes flow around them
//		• Movement: orthogonal (Conn4) or 8-way with √2 diagonals (Conn8)
//		• Heuristics: auto, octile, Manhattan, plus directional bias modes
//		• Tie-breaking: nudge equal-cost frontiers toward straighter paths
//		• Hooks: observe every expansion, or abort to cap the search
//
// ✨ Why choose astar2d?
//
//   - Beginner-friendly – two calls: grid.From2D, then astar.FindPath
//   - Rock-solid guarantees – admissible heuristics yield provably
//     minimal paths; invalid grids are unrepresentable
//   - Pure Go – no cgo; testify is the only test-time dependency
//   - Fast – flat arena arrays, zero allocation inside the search loop
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/  — immutable weight grids: construction, validation, bounds,
//	         index math, neighbor enumeration, path costing
//	astar/ — the search engine: FindPath, options, heuristic selectors,
//	         results with expansion diagnostics
//
// Quick ASCII example:
//
//	S . .      S = start (0,0)    . = cost 1
//	. # .      # = grid.Impassable
//	. . G      G = goal (2,2)
//
// The cheapest 4-way route skirts the wall in four unit steps; under
// Conn8 the corners cut it to 2 + √2.
//
// Next up: weighted corridors, multi-goal search, and precomputed
// landmark heuristics.
//
//	go get github.com/katalvlaran/astar2d
package astar2d
