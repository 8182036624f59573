package editor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/grid"
)

func cell(r, c int) grid.Cell { return grid.Cell{Row: r, Col: c} }

func newBoard(t *testing.T, rows, cols int) *editor.Board {
	t.Helper()
	b, err := editor.NewBoard(rows, cols)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	b := newBoard(t, 3, 4)
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 4, b.Cols())
	assert.Nil(t, b.Start())
	assert.Nil(t, b.End())
	assert.Empty(t, b.Endpoints())

	_, err := editor.NewBoard(0, 4)
	assert.ErrorIs(t, err, grid.ErrBadDimensions)
	_, err = editor.NewBoard(3, -1)
	assert.ErrorIs(t, err, grid.ErrBadDimensions)
}

func TestNewBoardFrom_Clones(t *testing.T) {
	g, err := grid.FromRows(".#", "..")
	require.NoError(t, err)
	b := editor.NewBoardFrom(g)

	g.Set(cell(1, 1), grid.Wall)
	assert.Equal(t, grid.Passable, b.At(cell(1, 1)))
	assert.Equal(t, grid.Wall, b.At(cell(0, 1)))
}

func TestSetEndpoints(t *testing.T) {
	b := newBoard(t, 3, 3)
	_, err := b.ToggleWall(cell(1, 1))
	require.NoError(t, err)

	require.NoError(t, b.SetStart(cell(1, 1)))
	assert.Equal(t, grid.Passable, b.At(cell(1, 1)), "placing start clears the wall")
	assert.Equal(t, cell(1, 1), *b.Start())

	require.NoError(t, b.SetEnd(cell(2, 2)))
	assert.Equal(t, []grid.Cell{cell(1, 1), cell(2, 2)}, b.Endpoints())

	// End onto start: both endpoints share the cell.
	require.NoError(t, b.SetEnd(cell(1, 1)))
	assert.Equal(t, cell(1, 1), *b.Start())
	assert.Equal(t, cell(1, 1), *b.End())
	assert.Equal(t, []grid.Cell{cell(1, 1), cell(1, 1)}, b.Endpoints())

	// Moving start away leaves end in place.
	require.NoError(t, b.SetStart(cell(0, 0)))
	assert.Equal(t, cell(1, 1), *b.End())

	assert.ErrorIs(t, b.SetStart(cell(3, 0)), editor.ErrOutOfBounds)
	assert.ErrorIs(t, b.SetEnd(cell(0, -1)), editor.ErrOutOfBounds)

	b.ClearStart()
	assert.Nil(t, b.Start())
	require.NoError(t, b.SetEnd(cell(0, 0)))
	b.ClearEnd()
	assert.Nil(t, b.End())
}

func TestStartEnd_ReturnCopies(t *testing.T) {
	b := newBoard(t, 2, 2)
	require.NoError(t, b.SetStart(cell(0, 0)))
	s := b.Start()
	s.Row = 1
	assert.Equal(t, cell(0, 0), *b.Start())
}

func TestToggleWall(t *testing.T) {
	b := newBoard(t, 2, 2)

	st, err := b.ToggleWall(cell(0, 1))
	require.NoError(t, err)
	assert.Equal(t, grid.Wall, st)
	st, err = b.ToggleWall(cell(0, 1))
	require.NoError(t, err)
	assert.Equal(t, grid.Passable, st)

	require.NoError(t, b.SetStart(cell(0, 0)))
	_, err = b.ToggleWall(cell(0, 0))
	assert.ErrorIs(t, err, editor.ErrEndpointCell)
	_, err = b.ToggleWall(cell(5, 5))
	assert.ErrorIs(t, err, editor.ErrOutOfBounds)

	assert.ErrorIs(t, b.SetWall(cell(0, 0), grid.Wall), editor.ErrEndpointCell)
	assert.NoError(t, b.SetWall(cell(0, 0), grid.Passable))
	assert.NoError(t, b.SetWall(cell(1, 1), grid.Wall))
	assert.Equal(t, grid.Wall, b.At(cell(1, 1)))
}

func TestClearWalls_KeepsEndpoints(t *testing.T) {
	b := newBoard(t, 3, 3)
	require.NoError(t, b.SetStart(cell(0, 0)))
	require.NoError(t, b.SetEnd(cell(2, 2)))
	require.NoError(t, b.Randomize(1, 1))
	require.Equal(t, 7, b.Grid().Walls())

	b.ClearWalls()
	assert.Zero(t, b.Grid().Walls())
	assert.Equal(t, cell(0, 0), *b.Start())
	assert.Equal(t, cell(2, 2), *b.End())
}

func TestReset(t *testing.T) {
	b := newBoard(t, 3, 3)
	require.NoError(t, b.SetStart(cell(0, 0)))
	require.NoError(t, b.SetEnd(cell(2, 2)))

	assert.ErrorIs(t, b.Reset(0, 0), grid.ErrBadDimensions)
	assert.Equal(t, 3, b.Rows(), "failed reset leaves the board unchanged")
	assert.NotNil(t, b.Start())

	require.NoError(t, b.Reset(5, 7))
	assert.Equal(t, 5, b.Rows())
	assert.Equal(t, 7, b.Cols())
	assert.Nil(t, b.Start())
	assert.Nil(t, b.End())
}

func TestRandomize(t *testing.T) {
	b := newBoard(t, 20, 20)
	require.NoError(t, b.SetStart(cell(0, 0)))
	require.NoError(t, b.SetEnd(cell(19, 19)))

	require.NoError(t, b.Randomize(0.4, 99))
	first := b.Grid().String()
	assert.Equal(t, grid.Passable, b.At(cell(0, 0)))
	assert.Equal(t, grid.Passable, b.At(cell(19, 19)))
	walls := b.Grid().Walls()
	assert.Greater(t, walls, 0)
	assert.Less(t, walls, 400)

	require.NoError(t, b.Randomize(0.4, 99))
	assert.Equal(t, first, b.Grid().String(), "same seed, same walls")

	require.NoError(t, b.Randomize(0, 5))
	assert.Zero(t, b.Grid().Walls())

	for _, d := range []float64{-0.1, 1.5, math.NaN()} {
		assert.ErrorIs(t, b.Randomize(d, 1), editor.ErrBadDensity)
	}
}

func TestSearch_Snapshot(t *testing.T) {
	b := newBoard(t, 3, 3)
	require.NoError(t, b.SetStart(cell(0, 0)))
	require.NoError(t, b.SetEnd(cell(0, 2)))

	res := b.Search()
	require.True(t, res.Found)
	assert.Equal(t, 2, res.Cost)

	// Editing afterwards does not touch the returned trace.
	path := res.Path
	_, err := b.ToggleWall(cell(0, 1))
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{cell(0, 0), cell(0, 1), cell(0, 2)}, path)

	visited, path := b.FindPath()
	assert.NotEmpty(t, visited)
	assert.Equal(t, 5, len(path), "detour around the new wall")
}

func TestSearch_MissingEndpoint(t *testing.T) {
	b := newBoard(t, 3, 3)
	require.NoError(t, b.SetStart(cell(0, 0)))
	visited, path := b.FindPath()
	assert.Nil(t, visited)
	assert.Nil(t, path)
}

// TestSearch_SharedEndpoint reaches the start == end case through the editor.
func TestSearch_SharedEndpoint(t *testing.T) {
	b := newBoard(t, 2, 2)
	_, err := b.ToggleWall(cell(1, 1))
	require.NoError(t, err)
	require.NoError(t, b.SetStart(cell(1, 1)))
	require.NoError(t, b.SetEnd(cell(1, 1)))

	res := b.Search()
	require.True(t, res.Found)
	assert.Equal(t, []grid.Cell{cell(1, 1)}, res.Visited)
	assert.Equal(t, []grid.Cell{cell(1, 1)}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, "..\n.E", editor.Render(b, res.Visited, res.Path))

	_, err = b.ToggleWall(cell(1, 1))
	assert.ErrorIs(t, err, editor.ErrEndpointCell)
}

func TestRender(t *testing.T) {
	g, err := grid.FromRows(
		".#.",
		".#.",
		"...",
	)
	require.NoError(t, err)
	b := editor.NewBoardFrom(g)
	require.NoError(t, b.SetStart(cell(0, 0)))
	require.NoError(t, b.SetEnd(cell(0, 2)))

	visited, path := b.FindPath()
	want := "S#E\n*#*\n***"
	assert.Equal(t, want, editor.Render(b, visited, path))
	assert.Equal(t, "S#E\n.#.\n...", b.String())

	// Visited cells off the path.
	got := editor.Render(b, []grid.Cell{cell(2, 0), cell(9, 9)}, nil)
	assert.Equal(t, "S#E\n.#.\n+..", got)
}
