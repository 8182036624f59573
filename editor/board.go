package editor

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for board edits.
var (
	// ErrOutOfBounds indicates an edit outside the board.
	ErrOutOfBounds = errors.New("editor: cell out of bounds")
	// ErrEndpointCell indicates a wall edit on the start or end cell.
	ErrEndpointCell = errors.New("editor: cell holds an endpoint")
	// ErrBadDensity indicates a wall density outside [0,1].
	ErrBadDensity = errors.New("editor: density must be within [0,1]")
)

// Board is a grid plus its optional endpoints.
type Board struct {
	g     *grid.Grid
	start *grid.Cell
	end   *grid.Cell
}

// NewBoard returns an all-passable rows×cols board with no endpoints.
// It returns an error wrapping grid.ErrBadDimensions for non-positive sizes.
func NewBoard(rows, cols int) (*Board, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Board{g: g}, nil
}

// NewBoardFrom returns a board over a clone of g with no endpoints.
func NewBoardFrom(g *grid.Grid) *Board {
	return &Board{g: g.Clone()}
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.g.Rows() }

// Cols returns the board width.
func (b *Board) Cols() int { return b.g.Cols() }

// At returns the state of c; out-of-bounds cells read as walls.
func (b *Board) At(c grid.Cell) grid.State { return b.g.At(c) }

// Grid returns a snapshot of the current grid.
func (b *Board) Grid() *grid.Grid { return b.g.Clone() }

// Start returns a copy of the start cell, or nil when unset.
func (b *Board) Start() *grid.Cell { return copyCell(b.start) }

// End returns a copy of the end cell, or nil when unset.
func (b *Board) End() *grid.Cell { return copyCell(b.end) }

// Endpoints returns the set endpoints, start first.
func (b *Board) Endpoints() []grid.Cell {
	var out []grid.Cell
	if b.start != nil {
		out = append(out, *b.start)
	}
	if b.end != nil {
		out = append(out, *b.end)
	}
	return out
}

// IsEndpoint reports whether c is the start or the end.
func (b *Board) IsEndpoint(c grid.Cell) bool {
	return (b.start != nil && *b.start == c) || (b.end != nil && *b.end == c)
}

// SetStart places the start at c, clearing any wall there.
// The start may share a cell with the end.
func (b *Board) SetStart(c grid.Cell) error {
	if err := b.check(c); err != nil {
		return err
	}
	b.g.Set(c, grid.Passable)
	b.start = &c
	return nil
}

// SetEnd places the end at c, clearing any wall there.
// The end may share a cell with the start.
func (b *Board) SetEnd(c grid.Cell) error {
	if err := b.check(c); err != nil {
		return err
	}
	b.g.Set(c, grid.Passable)
	b.end = &c
	return nil
}

// ClearStart unsets the start.
func (b *Board) ClearStart() { b.start = nil }

// ClearEnd unsets the end.
func (b *Board) ClearEnd() { b.end = nil }

// ToggleWall flips c between passable and wall and returns the new state.
func (b *Board) ToggleWall(c grid.Cell) (grid.State, error) {
	if err := b.check(c); err != nil {
		return grid.Passable, err
	}
	if b.IsEndpoint(c) {
		return grid.Passable, fmt.Errorf("%w: %v", ErrEndpointCell, c)
	}
	next := grid.Wall
	if b.g.IsWall(c) {
		next = grid.Passable
	}
	b.g.Set(c, next)
	return next, nil
}

// SetWall sets c to s, failing on endpoints for s == grid.Wall.
func (b *Board) SetWall(c grid.Cell, s grid.State) error {
	if err := b.check(c); err != nil {
		return err
	}
	if s == grid.Wall && b.IsEndpoint(c) {
		return fmt.Errorf("%w: %v", ErrEndpointCell, c)
	}
	b.g.Set(c, s)
	return nil
}

// ClearWalls makes every cell passable and keeps the endpoints.
func (b *Board) ClearWalls() { b.g.Fill(grid.Passable) }

// Reset replaces the grid with an all-passable rows×cols grid and unsets both
// endpoints. On error the board is unchanged.
func (b *Board) Reset(rows, cols int) error {
	g, err := grid.New(rows, cols)
	if err != nil {
		return err
	}
	b.g, b.start, b.end = g, nil, nil
	return nil
}

// Randomize clears the board and walls each non-endpoint cell with
// probability density, using a generator seeded with seed.
// The same seed, density and endpoints always produce the same walls.
func (b *Board) Randomize(density float64, seed int64) error {
	if math.IsNaN(density) || density < 0 || density > 1 {
		return fmt.Errorf("%w: got %v", ErrBadDensity, density)
	}
	rng := rand.New(rand.NewSource(seed))
	b.g.Fill(grid.Passable)
	for r := 0; r < b.g.Rows(); r++ {
		for c := 0; c < b.g.Cols(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			// Draw for every cell so endpoint moves do not reshuffle the rest.
			wall := rng.Float64() < density
			if wall && !b.IsEndpoint(cell) {
				b.g.Set(cell, grid.Wall)
			}
		}
	}
	return nil
}

// Search runs astar.Search on a snapshot of the board.
func (b *Board) Search(opts ...astar.Option) astar.Result {
	return astar.Search(b.g.Clone(), b.start, b.end, opts...)
}

// FindPath runs astar.FindPath on a snapshot of the board.
func (b *Board) FindPath(opts ...astar.Option) (visited, path []grid.Cell) {
	res := b.Search(opts...)
	return res.Visited, res.Path
}

// String renders the board with S and E over the grid's ./# rows.
func (b *Board) String() string {
	return Render(b, nil, nil)
}

func (b *Board) check(c grid.Cell) error {
	if !b.g.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, b.g.Rows(), b.g.Cols())
	}
	return nil
}

func copyCell(c *grid.Cell) *grid.Cell {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
