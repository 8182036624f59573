package tui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/replay"
)

func cell(r, c int) grid.Cell { return grid.Cell{Row: r, Col: c} }

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// glyphAt returns the rune drawn for c.
func glyphAt(s tcell.Screen, c grid.Cell) rune {
	r, _, _, _ := s.GetContent(c.Col*CellWidth, c.Row)
	return r
}

func boardFrom(t *testing.T, rows ...string) *editor.Board {
	t.Helper()
	g, err := grid.FromRows(rows...)
	require.NoError(t, err)
	return editor.NewBoardFrom(g)
}

func TestRenderer_Draw(t *testing.T) {
	s := newScreen(t, 20, 5)
	b := boardFrom(t, ".#.", "...")
	require.NoError(t, b.SetStart(cell(0, 0)))
	require.NoError(t, b.SetEnd(cell(1, 2)))

	r := NewRenderer(s)
	r.Draw(b, nil)
	s.Show()

	assert.Equal(t, 'S', glyphAt(s, cell(0, 0)))
	assert.Equal(t, '#', glyphAt(s, cell(0, 1)))
	assert.Equal(t, '.', glyphAt(s, cell(0, 2)))
	assert.Equal(t, 'E', glyphAt(s, cell(1, 2)))

	// The second column of a cell is padding in the same style.
	ch, _, style, _ := s.GetContent(3, 0)
	assert.Equal(t, ' ', ch)
	assert.Equal(t, StyleWall, style)
}

func TestRenderer_ReplayEvents(t *testing.T) {
	s := newScreen(t, 20, 5)
	b := boardFrom(t, "....")
	require.NoError(t, b.SetStart(cell(0, 0)))
	require.NoError(t, b.SetEnd(cell(0, 3)))

	r := NewRenderer(s)
	r.Draw(b, nil)
	visited, path := b.FindPath()

	p := replay.New(r)
	require.True(t, p.Start(visited, path, cell(0, 0), cell(0, 3)))

	p.Tick() // start, skipped
	p.Tick()
	assert.Equal(t, '+', glyphAt(s, cell(0, 1)))
	p.Tick()
	assert.Equal(t, '+', glyphAt(s, cell(0, 2)))
	p.Tick() // end, then clear
	assert.Equal(t, '.', glyphAt(s, cell(0, 1)))
	assert.Equal(t, '.', glyphAt(s, cell(0, 2)))
	assert.Equal(t, 'E', glyphAt(s, cell(0, 3)))

	for p.Tick() {
	}
	assert.Equal(t, '*', glyphAt(s, cell(0, 1)))
	assert.Equal(t, '*', glyphAt(s, cell(0, 2)))
	assert.Equal(t, 'S', glyphAt(s, cell(0, 0)))
	assert.Equal(t, 'E', glyphAt(s, cell(0, 3)), "end is never painted as path")
}

func TestRenderer_CellAtAndFits(t *testing.T) {
	s := newScreen(t, 8, 3)
	b := boardFrom(t, "...", "...")
	r := NewRenderer(s)

	_, ok := r.CellAt(0, 0)
	assert.False(t, ok, "nothing drawn yet")

	r.Draw(b, nil)
	c, ok := r.CellAt(5, 1)
	require.True(t, ok)
	assert.Equal(t, cell(1, 2), c)
	_, ok = r.CellAt(6, 1)
	assert.False(t, ok)
	_, ok = r.CellAt(0, 2)
	assert.False(t, ok)
	_, ok = r.CellAt(-1, 0)
	assert.False(t, ok)

	assert.NoError(t, r.Fits(b))
	assert.Error(t, r.Fits(boardFrom(t, ".....", ".....")))
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func runeKey(ch rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone) }

func click(c grid.Cell) *tcell.EventMouse {
	return tcell.NewEventMouse(c.Col*CellWidth, c.Row, tcell.Button1, tcell.ModNone)
}

func release() *tcell.EventMouse {
	return tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)
}

func newApp(t *testing.T, rows, cols int) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := newScreen(t, cols*CellWidth+4, rows+2)
	b, err := editor.NewBoard(rows, cols)
	require.NoError(t, err)
	a := NewApp(s, b, Options{Tick: time.Millisecond, Density: 0.5, Seed: 3})
	a.redraw()
	return a, s
}

func TestApp_PlaceAndSearch(t *testing.T) {
	a, s := newApp(t, 3, 4)

	assert.True(t, a.HandleEvent(runeKey('s')))
	assert.True(t, a.HandleEvent(runeKey(' ')))
	require.NotNil(t, a.Board().Start())
	assert.Equal(t, cell(0, 0), *a.Board().Start())

	a.HandleEvent(key(tcell.KeyRight))
	a.HandleEvent(key(tcell.KeyRight))
	a.HandleEvent(key(tcell.KeyRight))
	a.HandleEvent(key(tcell.KeyRight)) // clamped at the edge
	a.HandleEvent(runeKey('e'))
	a.HandleEvent(runeKey(' '))
	require.NotNil(t, a.Board().End())
	assert.Equal(t, cell(0, 3), *a.Board().End())

	a.HandleEvent(key(tcell.KeyEnter))
	require.True(t, a.Replayer().Active())
	for a.Replayer().Active() {
		a.Step()
	}
	assert.Equal(t, '*', glyphAt(s, cell(0, 1)))
	assert.Equal(t, '*', glyphAt(s, cell(0, 2)))
	assert.Equal(t, 'E', glyphAt(s, cell(0, 3)))
}

func TestApp_SearchNeedsEndpoints(t *testing.T) {
	a, _ := newApp(t, 2, 2)
	a.HandleEvent(key(tcell.KeyEnter))
	assert.False(t, a.Replayer().Active())
	assert.Contains(t, a.status, "start")
}

func TestApp_MouseTogglesWalls(t *testing.T) {
	a, s := newApp(t, 3, 3)

	a.HandleEvent(click(cell(1, 1)))
	assert.Equal(t, grid.Wall, a.Board().At(cell(1, 1)))
	assert.Equal(t, '#', glyphAt(s, cell(1, 1)))

	// Holding the button on the same cell does not toggle it back.
	a.HandleEvent(click(cell(1, 1)))
	assert.Equal(t, grid.Wall, a.Board().At(cell(1, 1)))

	// Dragging paints the next cell.
	a.HandleEvent(click(cell(1, 2)))
	assert.Equal(t, grid.Wall, a.Board().At(cell(1, 2)))

	a.HandleEvent(release())
	a.HandleEvent(click(cell(1, 1)))
	assert.Equal(t, grid.Passable, a.Board().At(cell(1, 1)))

	// Clicks outside the board are ignored.
	a.HandleEvent(release())
	a.HandleEvent(tcell.NewEventMouse(100, 100, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 1, a.Board().Grid().Walls())
}

func TestApp_EditCancelsReplay(t *testing.T) {
	a, _ := newApp(t, 3, 3)
	require.NoError(t, a.Board().SetStart(cell(0, 0)))
	require.NoError(t, a.Board().SetEnd(cell(2, 2)))

	a.HandleEvent(key(tcell.KeyEnter))
	a.Step()
	require.True(t, a.Replayer().Active())

	a.HandleEvent(runeKey('c'))
	assert.False(t, a.Replayer().Active())
	assert.Equal(t, "walls cleared", a.status)
}

func TestApp_RandomizeAndReset(t *testing.T) {
	a, _ := newApp(t, 6, 6)
	require.NoError(t, a.Board().SetStart(cell(0, 0)))

	a.HandleEvent(runeKey('r'))
	first := a.Board().Grid().String()
	assert.Greater(t, a.Board().Grid().Walls(), 0)
	assert.Equal(t, grid.Passable, a.Board().At(cell(0, 0)))

	a.HandleEvent(runeKey('r'))
	assert.NotEqual(t, first, a.Board().Grid().String(), "each use advances the seed")

	a.HandleEvent(runeKey('n'))
	assert.Zero(t, a.Board().Grid().Walls())
	assert.Nil(t, a.Board().Start())
}

func TestApp_EndpointToggleReportsError(t *testing.T) {
	a, _ := newApp(t, 2, 2)
	require.NoError(t, a.Board().SetStart(cell(0, 0)))
	a.HandleEvent(runeKey(' '))
	assert.Contains(t, a.status, "endpoint")
	assert.Equal(t, grid.Passable, a.Board().At(cell(0, 0)))
}

func TestApp_Quit(t *testing.T) {
	a, _ := newApp(t, 2, 2)
	assert.False(t, a.HandleEvent(runeKey('q')))
	assert.False(t, a.HandleEvent(key(tcell.KeyEscape)))
	assert.True(t, a.HandleEvent(runeKey('x')))
}

func TestApp_Run(t *testing.T) {
	t.Run("QuitKey", func(t *testing.T) {
		a, s := newApp(t, 2, 2)
		s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

		errc := make(chan error, 1)
		go func() { errc <- a.Run(context.Background()) }()
		select {
		case err := <-errc:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return after q")
		}
	})

	t.Run("ContextDone", func(t *testing.T) {
		a, _ := newApp(t, 2, 2)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, a.Run(ctx), context.Canceled)
	})

	t.Run("TooSmall", func(t *testing.T) {
		s := newScreen(t, 4, 2)
		b, err := editor.NewBoard(5, 5)
		require.NoError(t, err)
		a := NewApp(s, b, Options{Tick: time.Millisecond})
		assert.Error(t, a.Run(context.Background()))
	})

	t.Run("BadTick", func(t *testing.T) {
		a, _ := newApp(t, 2, 2)
		a.opts.Tick = 0
		assert.ErrorIs(t, a.Run(context.Background()), replay.ErrBadInterval)
	})
}
