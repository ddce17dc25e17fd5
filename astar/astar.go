// Package astar implements A* shortest-path search over 2-D weighted grids.
//
// A* processes cells in order of increasing f = g + h, where g is the
// best-known cost from the start and h is a heuristic estimate of the cost
// remaining to the goal. With an admissible h (never overestimating), the
// first time the goal is settled its g is the true minimum cost.
//
// Notes on implementation choices:
//
//   - Per-call arena arrays (g-costs, parents, closed flags) indexed by flat
//     cell index replace hash maps; a grid's cells are dense in [0, H·W).
//   - "Lazy" decrease-key: improved routes push duplicate heap entries and
//     stale ones are discarded on pop via the closed check.
//   - The tie-break term c/1000·h is folded into the heap priority as
//     h·(1 + c/1000), so c = 0 reproduces plain A* bit for bit.
//   - Impassable cells never appear in neighbor expansions (the grid layer
//     skips them), so the engine itself needs no wall handling.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/astar2d/grid"
)

// tiebreakDivisor scales the tie-break coefficient: a coefficient c adds
// c/tiebreakDivisor·h to each frontier priority.
const tiebreakDivisor = 1000.0

// noParent marks a cell with no recorded predecessor.
const noParent = -1

// FindPath runs A* over g from the start cell to the goal cell, both given
// as (row, col) pairs. It accepts functional options to customize movement,
// heuristic, tie-breaking, and per-expansion hooks.
//
// Returns:
//
//   - res: the search outcome. res.Found=false with a nil error means the
//     goal is unreachable, an ordinary result rather than a failure.
//     res.Path holds (row, col) pairs from start to goal inclusive and is
//     owned by the caller. Two calls with identical inputs yield identical
//     results: neighbor order and heap behavior are deterministic.
//   - err: non-nil only for invalid inputs or an OnExpand abort; res is nil
//     in that case.
//
// Preconditions and validation (in order):
//  1. Every supplied Option must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start must lie within the grid bounds (ErrOutOfBounds).
//  4. goal must lie within the grid bounds (ErrOutOfBounds).
//
// Cell weights need no re-validation here: the grid constructors enforce
// the ≥ grid.MinWeight floor that keeps step costs admissible.
//
// Options customization:
//
//   - WithConnectivity(c): Conn4 (default) or Conn8 movement.
//   - WithHeuristic(h): estimate family; Auto resolves by connectivity.
//   - WithTiebreaker(c): add c/1000·h to frontier priorities (0 disables).
//   - WithOnExpand(fn): hook per expanded cell; an error aborts the search.
//
// Complexity:
//
//   - Time:  O(N log N), N = height·width
//   - Space: O(N)
func FindPath(g *grid.Grid, start, goal [2]int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid is non-nil.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Validate start lies within bounds.
	if !g.InBounds(start[0], start[1]) {
		return nil, fmt.Errorf("%w: start (%d,%d) on %d×%d grid",
			ErrOutOfBounds, start[0], start[1], g.Height(), g.Width())
	}

	// 4) Validate goal lies within bounds.
	if !g.InBounds(goal[0], goal[1]) {
		return nil, fmt.Errorf("%w: goal (%d,%d) on %d×%d grid",
			ErrOutOfBounds, goal[0], goal[1], g.Height(), g.Width())
	}

	// 5) Prepare the per-call arena sized to the grid. Flat arrays indexed
	//    by cell index; no state survives the call, so concurrent searches
	//    may share one Grid freely.
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		goal:    g.Index(goal[0], goal[1]),
		gScore:  make([]float64, n),
		parent:  make([]int, n),
		closed:  make([]bool, n),
		pq:      make(frontier, 0, n/4+1),
		buf:     make([]grid.Neighbor, 0, 8),
		// hWeight folds the tie-break into the heuristic multiplier.
		// With cfg.Tiebreaker == 0 this is exactly 1 and priorities
		// reduce to plain g + h.
		hWeight: 1 + cfg.Tiebreaker/tiebreakDivisor,
	}
	r.estimate = estimatorFor(cfg.Heuristic, cfg.Conn, g, r.goal)

	// 6) Initialize algorithm state and run the main loop.
	r.init(g.Index(start[0], start[1]))
	found, err := r.process()
	if err != nil {
		return nil, err
	}

	// 7) Assemble the Result. Expanded is reported either way; Path and
	//    Cost only when the goal was settled.
	res := &Result{Expanded: r.expanded}
	if !found {
		return res, nil
	}
	res.Found = true
	res.Cost = r.gScore[r.goal]
	res.Path = r.reconstruct()

	return res, nil
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	g        *grid.Grid            // the input grid; read-only within FindPath
	options  Options               // configuration (connectivity, heuristic, hooks)
	goal     int                   // flat index of the goal cell
	gScore   []float64             // cell index → best-known cost from start
	parent   []int                 // cell index → predecessor index (noParent if none)
	closed   []bool                // cell index → cost finalized
	pq       frontier              // min-heap of *frontierItem, lazy decrease-key
	buf      []grid.Neighbor       // reusable neighbor buffer, one alloc per call
	estimate func(idx int) float64 // cost-to-goal estimate, closed over the goal
	hWeight  float64               // heuristic multiplier: 1 + c/1000
	expanded int                   // cells settled so far
}

// init seeds the arena (every cost +∞, no parents yet) and pushes the
// start cell at priority h(start)·hWeight (its g is zero).
func (r *runner) init(start int) {
	inf := math.Inf(1)
	for i := range r.gScore {
		r.gScore[i] = inf
		r.parent[i] = noParent
	}
	r.gScore[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{
		idx:      start,
		priority: r.estimate(start) * r.hWeight,
	})
}

// process is the core loop. It repeatedly extracts the lowest-priority cell,
// discards stale entries, and expands live ones until the goal is settled or
// the frontier drains.
//
// Loop termination conditions:
//
//   - The goal cell is popped live: success, its g-cost is final.
//   - The heap becomes empty: every cell reachable from start was settled
//     without meeting the goal, so no path exists.
//
// Returns whether the goal was reached, and an error only when the OnExpand
// hook aborts.
func (r *runner) process() (bool, error) {
	var u int
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-priority entry.
		item := heap.Pop(&r.pq).(*frontierItem)
		u = item.idx

		// 2) Skip stale entries: a cheaper route to u was settled earlier.
		if r.closed[u] {
			continue
		}

		// 3) Goal popped live: settle it and stop. Settling on pop, not on
		//    push, is what makes the admissible-heuristic optimality claim
		//    hold.
		if u == r.goal {
			r.closed[u] = true
			r.expanded++

			return true, nil
		}

		// 4) Settle u: its g-cost is now final.
		r.closed[u] = true
		r.expanded++

		// 5) Invoke the expansion hook; a non-nil error aborts the search.
		if err := r.options.OnExpand(r.cell(u), r.gScore[u]); err != nil {
			row, col := r.g.Coordinate(u)

			return false, fmt.Errorf("astar: OnExpand hook error at (%d,%d): %w", row, col, err)
		}

		// 6) Relax all neighbors of u.
		r.relax(u)
	}

	return false, nil
}

// relax attempts to improve the route to every neighbor of the settled cell
// u. Improved neighbors are re-pushed with priority g + h·hWeight; the old
// entries stay in the heap and die as stale pops.
//
// Assumes r.gScore[u] is finalized before calling relax(u).
func (r *runner) relax(u int) {
	// Reuse the neighbor buffer across the whole search.
	r.buf = r.g.AppendNeighbors(r.buf[:0], u, r.options.Conn)

	gU := r.gScore[u]
	var tentative float64
	var nb grid.Neighbor
	for _, nb = range r.buf {
		// Settled neighbors already carry their minimal cost.
		if r.closed[nb.Index] {
			continue
		}

		// Candidate cost via u. Skip unless strictly better, so equal-cost
		// routes do not push duplicates.
		tentative = gU + nb.Cost
		if tentative >= r.gScore[nb.Index] {
			continue
		}

		r.gScore[nb.Index] = tentative
		r.parent[nb.Index] = u
		heap.Push(&r.pq, &frontierItem{
			idx: nb.Index,
			// The tie-break multiplier biases only the expansion order;
			// recorded g-costs stay exact.
			priority: tentative + r.estimate(nb.Index)*r.hWeight,
		})
	}
}

// reconstruct walks parent links from the settled goal back to the start,
// then reverses the sequence in place so it reads start → goal.
func (r *runner) reconstruct() [][2]int {
	var path [][2]int
	for at := r.goal; at >= 0; at = r.parent[at] {
		path = append(path, r.cell(at))
	}

	// Reverse in place: parent links run goal → start.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// cell converts a flat index to its (row, col) pair.
func (r *runner) cell(idx int) [2]int {
	row, col := r.g.Coordinate(idx)

	return [2]int{row, col}
}

// frontierItem represents a discovered cell and the priority it was pushed
// with (g + h·hWeight at push time).
type frontierItem struct {
	idx      int     // flat cell index
	priority float64 // f-value ordering the frontier
}

// frontier is a min-heap (priority queue) of *frontierItem, ordered by
// priority ascending. We use the "lazy-decrease-key" approach: when a
// cheaper route to a cell is found, we push a new *frontierItem. The
// outdated entry remains but is ignored when popped (checked via closed).
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller priority → expanded first.
func (f frontier) Less(i, j int) bool { return f[i].priority < f[j].priority }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *frontierItem.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
