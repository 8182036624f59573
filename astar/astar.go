// Package astar implements A* search over a grid.Grid.
//
// Notes on implementation choices:
//
//   - Cost, parent and closed tables are dense row-major slices sized R·C; grids
//     are fully materialized, so maps would only add hashing overhead.
//   - We use the "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when they surface.
//   - We stop as soon as end is popped; the remaining frontier is discarded.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// FindPath runs A* from start to end on g and returns the visited order and the
// optimal path. A nil start or end yields (nil, nil); an unreachable end yields
// (visited, nil).
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V + E)
func FindPath(g *grid.Grid, start, end *grid.Cell, opts ...Option) (visited, path []grid.Cell) {
	res := Search(g, start, end, opts...)
	return res.Visited, res.Path
}

// Search computes the same sequences as FindPath together with the path cost
// and frontier statistics.
//
// Preconditions (in order):
//  1. g must be non-nil (panics with ErrNilGrid).
//  2. start and end, when set, must lie inside g (panics wrapping ErrOutOfBounds).
func Search(g *grid.Grid, start, end *grid.Cell, opts ...Option) Result {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate contract
	if g == nil {
		panic(ErrNilGrid)
	}
	if start == nil || end == nil {
		return Result{}
	}
	for _, c := range []grid.Cell{*start, *end} {
		if !g.InBounds(c) {
			panic(fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, c, g.Rows(), g.Cols()))
		}
	}

	// 3) Run
	r := newRunner(g, *start, *end, cfg)
	r.init()
	r.process()

	return r.result()
}

// runner holds the mutable state for a single search.
type runner struct {
	g          *grid.Grid
	start, end grid.Cell
	opts       Options

	cost   []int  // best-known g per cell, -1 when never reached
	parent []int  // predecessor index per cell, -1 for start and unreached cells
	closed []bool // finalized cells
	pq     frontier

	visited []grid.Cell
	found   bool
	pushed  int
}

func newRunner(g *grid.Grid, start, end grid.Cell, opts Options) *runner {
	n := g.Rows() * g.Cols()
	r := &runner{
		g:      g,
		start:  start,
		end:    end,
		opts:   opts,
		cost:   make([]int, n),
		parent: make([]int, n),
		closed: make([]bool, n),
		pq:     make(frontier, 0, g.Rows()+g.Cols()),
	}
	for i := range r.cost {
		r.cost[i] = -1
		r.parent[i] = -1
	}
	return r
}

// init records g[start] = 0 and seeds the frontier with start.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.cost[r.index(r.start)] = 0
	r.push(r.start, 0)
}

// process pops entries until end is finalized or the frontier is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)
		i := r.index(item.cell)

		// Skip stale entries superseded by a cheaper push.
		if r.closed[i] {
			continue
		}
		r.closed[i] = true
		r.visited = append(r.visited, item.cell)
		r.opts.OnFinalize(item.cell, item.g, item.h)

		if item.cell == r.end {
			r.found = true
			return
		}
		r.expand(item.cell, item.g)
	}
}

// expand relaxes each open neighbor of u. A neighbor is pushed only when it has
// no recorded cost yet or the new cost is strictly smaller.
func (r *runner) expand(u grid.Cell, gu int) {
	ui := r.index(u)
	tentative := gu + 1
	for _, v := range r.g.Neighbors(u) {
		vi := r.index(v)
		if r.closed[vi] {
			continue
		}
		if old := r.cost[vi]; old >= 0 && tentative >= old {
			continue
		}
		r.cost[vi] = tentative
		r.parent[vi] = ui
		r.push(v, tentative)
	}
}

func (r *runner) push(c grid.Cell, g int) {
	h := grid.Manhattan(c, r.end)
	heap.Push(&r.pq, frontierItem{cell: c, g: g, h: h})
	r.pushed++
	r.opts.OnPush(c, g, h)
}

// result builds the Result, reconstructing the path when end was reached.
func (r *runner) result() Result {
	res := Result{Visited: r.visited, Found: r.found, Pushed: r.pushed}
	if !r.found {
		return res
	}
	res.Path = r.reconstruct()
	res.Cost = len(res.Path) - 1
	return res
}

// reconstruct walks parents from end back to start, then reverses.
func (r *runner) reconstruct() []grid.Cell {
	path := make([]grid.Cell, 0, r.cost[r.index(r.end)]+1)
	for at := r.index(r.end); at >= 0; at = r.parent[at] {
		path = append(path, r.cell(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (r *runner) index(c grid.Cell) int { return c.Row*r.g.Cols() + c.Col }

func (r *runner) cell(i int) grid.Cell {
	return grid.Cell{Row: i / r.g.Cols(), Col: i % r.g.Cols()}
}
