// Package grid defines core types, state values, and sentinel errors
// for the grid package of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a requested row or column count is not positive.
	ErrBadDimensions = errors.New("grid: dimensions must be positive")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadState indicates a cell value other than Passable or Wall.
	ErrBadState = errors.New("grid: cell state must be passable or wall")
	// ErrOutOfBounds indicates a cell outside the grid boundaries.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// State is the binary content of a grid cell.
type State uint8

const (
	// Passable cells can be entered by a search.
	Passable State = 0
	// Wall cells are never entered.
	Wall State = 1
)

// String renders the state with the same runes FromRows accepts.
func (s State) String() string {
	if s == Wall {
		return "#"
	}
	return "."
}

// Cell is a grid coordinate. Equality and map hashing are by value.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell displaced by the given row and column offsets.
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Adjacent reports whether a and b differ by exactly one orthogonal step.
func Adjacent(a, b Cell) bool {
	return Manhattan(a, b) == 1
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
// Complexity: O(1).
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// offsets4 is the neighbor order every traversal uses: east, south, west, north.
var offsets4 = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is a rectangular rows×cols matrix of State values.
// Dimensions are fixed once built; cells[r][c] holds the state at Cell{r, c}.
type Grid struct {
	rows, cols int
	cells      [][]State
}
