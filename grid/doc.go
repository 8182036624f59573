// Package grid models the rectangular, binary-state board that path searches
// run on.
//
// What:
//
//   - Cell is a (Row, Col) coordinate compared and hashed by value.
//   - Grid wraps a rows×cols matrix of State values: Passable (0) or Wall (1).
//   - Neighbors yields the in-bounds, passable orthogonal neighbors of a cell in
//     a fixed order: east, south, west, north.
//   - Reachable collects the connected component of passable cells around a cell.
//   - StepDistance answers the shortest 4-directional step count by plain BFS.
//
// Why:
//
//   - A single validated board type lets the search code assume a rectangular
//     matrix instead of re-checking it on every call.
//   - The fixed neighbor order is what makes every search over a Grid
//     reproducible for identical inputs.
//   - Reachable and StepDistance are the brute-force references that the
//     heuristic search is measured against.
//
// Construction:
//
//   - New(rows, cols):   an all-passable grid; ErrBadDimensions for rows or cols ≤ 0.
//   - From2D(values):    deep copy of a [][]int of 0/1 values.
//   - FromRows(rows...): rows of '.' (passable) and '#' (wall).
//
// Errors:
//
//   - ErrBadDimensions:  rows or cols is not positive.
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadState:       a value is neither Passable nor Wall.
//   - ErrOutOfBounds:    a cell lies outside the grid (Set panics with it).
//
// Complexity:
//
//   - Neighbors:    O(1).
//   - Reachable:    O(R×C) time and memory.
//   - StepDistance: O(R×C) time and memory.
//
// A Grid is not safe for concurrent mutation; callers that hand a Grid to a
// search must not modify it until the search returns.
package grid
