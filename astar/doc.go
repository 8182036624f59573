// Package astar implements uniform-cost A* shortest-path search on a grid.Grid
// with 4-directional unit-cost movement and the Manhattan distance heuristic.
//
// Overview:
//
//   - FindPath(g, start, end) returns two sequences: the visited order (cells in
//     the exact order they were finalized) and the optimal path from start to end
//     inclusive, or an empty path if end cannot be reached.
//   - Search returns the same sequences wrapped in a Result with the path cost
//     and frontier statistics.
//   - Every call is independent: the frontier, cost table, parent map and closed
//     set are created per call and discarded on return.
//
// Ordering and determinism:
//
//   - The frontier is a binary min-heap ordered by (f, h) ascending, where
//     g is the step count from start, h = Manhattan(cell, end) and f = g + h.
//     Among equal f, cells closer to the goal are preferred.
//   - Remaining ties are broken by (row, col) ascending, so the visit order is
//     fully specified and does not depend on heap internals.
//   - Neighbors are relaxed east, south, west, north.
//   - Identical inputs therefore always yield identical sequences.
//
// Lazy deletion:
//
//   - When a cheaper g is found for a cell already on the frontier, a new entry
//     is pushed and the old one is left in place. Stale entries are discarded
//     when popped, by checking the closed set.
//   - Closed cells are never reopened. Because Manhattan distance is consistent
//     for unit-cost orthogonal moves, the first time end is popped its g is optimal.
//
// Outcomes (none are errors):
//
//   - start or end unset (nil):  (nil, nil).
//   - start == end:              ([start], [start]).
//   - end unreachable:           (visited, nil); visited is the whole connected
//     component of start, each cell exactly once.
//
// Contract violations fail fast:
//
//   - nil grid:                  panic(ErrNilGrid).
//   - endpoint outside the grid: panic wrapping ErrOutOfBounds.
//
// Hooks:
//
//   - WithOnPush(fn):     called for every frontier push, including superseding ones.
//   - WithOnFinalize(fn): called once per cell as it is closed and appended to
//     the visited order.
//
// Complexity:
//
//   - Time:  O(E log V), E ≤ 4·R·C relaxations, V = R·C cells.
//   - Space: O(V) for the cost and parent tables, O(E) worst-case heap entries.
//
// Thread safety:
//
//   - Search reads the grid while it runs; callers must not mutate the grid
//     until the call returns. There is no mid-call cancellation.
package astar
