// Package grid provides the board representation used by the path search:
// a validated, rectangular matrix of passable and wall cells.
package grid

import (
	"fmt"
	"strings"
)

// New constructs an all-passable rows×cols grid.
// Returns ErrBadDimensions if rows or cols is not positive.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDimensions, rows, cols)
	}
	cells := make([][]State, rows)
	for r := range cells {
		cells[r] = make([]State, cols)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice of 0/1 values.
// It deep-copies the input so later edits to values are not observed.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadState for values other than 0 or 1.
// Complexity: O(R×C) time and memory.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]State, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]State, w)
		for c, v := range values[r] {
			if v != int(Passable) && v != int(Wall) {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadState, v, r, c)
			}
			cells[r][c] = State(v)
		}
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// FromRows builds a Grid from text rows where '.' is passable and '#' is a wall.
// Errors mirror From2D.
func FromRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, len(rows))
	for r, line := range rows {
		values[r] = make([]int, 0, len(line))
		for c, ch := range line {
			switch ch {
			case '.':
				values[r] = append(values[r], int(Passable))
			case '#':
				values[r] = append(values[r], int(Wall))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadState, ch, r, c)
			}
		}
	}

	return From2D(values)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the state of c. Cells outside the grid read as Wall.
func (g *Grid) At(c Cell) State {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Row][c.Col]
}

// IsWall reports whether c is a wall or outside the grid.
func (g *Grid) IsWall(c Cell) bool {
	return g.At(c) == Wall
}

// Set stores s at c. It panics with ErrOutOfBounds when c is outside the grid.
func (g *Grid) Set(c Cell, s State) {
	if !g.InBounds(c) {
		panic(fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, c, g.rows, g.cols))
	}
	g.cells[c.Row][c.Col] = s
}

// Fill sets every cell to s.
func (g *Grid) Fill(s State) {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = s
		}
	}
}

// Walls counts wall cells.
func (g *Grid) Walls() int {
	n := 0
	for r := range g.cells {
		for _, s := range g.cells[r] {
			if s == Wall {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of g.
// Complexity: O(R×C).
func (g *Grid) Clone() *Grid {
	cells := make([][]State, g.rows)
	for r := range cells {
		cells[r] = make([]State, g.cols)
		copy(cells[r], g.cells[r])
	}
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Neighbors returns the in-bounds, non-wall orthogonal neighbors of c
// in the order east, south, west, north.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(offsets4))
	for _, d := range offsets4 {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) && g.cells[n.Row][n.Col] == Passable {
			out = append(out, n)
		}
	}
	return out
}

// String renders the grid as newline-separated rows of '.' and '#'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteString(g.cells[r][c].String())
		}
	}
	return sb.String()
}
