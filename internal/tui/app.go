package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/replay"
)

// placeMode selects what the next click or space press places.
type placeMode int

const (
	placeWall placeMode = iota
	placeStart
	placeEnd
)

func (m placeMode) String() string {
	switch m {
	case placeStart:
		return "start"
	case placeEnd:
		return "end"
	default:
		return "wall"
	}
}

// Options configures an App.
type Options struct {
	Tick    time.Duration // replay pacing
	Density float64       // wall density for 'r'
	Seed    int64         // first seed for 'r'; incremented on each use
	Logger  *slog.Logger
}

// App is the interactive editor loop. It owns its board and replayer and
// touches them from the Run goroutine only.
type App struct {
	screen tcell.Screen
	board  *editor.Board
	rend   *Renderer
	player *replay.Replayer
	opts   Options
	log    *slog.Logger

	mode     placeMode
	cursor   grid.Cell
	dragging bool
	lastDrag grid.Cell
	status   string
}

// NewApp wires a board to an initialized screen.
func NewApp(screen tcell.Screen, board *editor.Board, opts Options) *App {
	rend := NewRenderer(screen)
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	a := &App{
		screen: screen,
		board:  board,
		rend:   rend,
		player: replay.New(rend),
		opts:   opts,
		log:    log,
	}
	a.status = a.help()
	return a
}

// Board returns the edited board.
func (a *App) Board() *editor.Board { return a.board }

// Replayer returns the app's replayer.
func (a *App) Replayer() *replay.Replayer { return a.player }

// Run draws the board and processes events until the user quits or ctx is done.
// Input is read on a separate goroutine and handed over through a channel.
func (a *App) Run(ctx context.Context) error {
	if err := a.rend.Fits(a.board); err != nil {
		return err
	}
	if a.opts.Tick <= 0 {
		return replay.ErrBadInterval
	}
	a.screen.EnableMouse()
	a.redraw()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.opts.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Step()
		}
	}
}

// Step advances the replay by one tick and shows the result.
func (a *App) Step() {
	if !a.player.Active() {
		return
	}
	if !a.player.Tick() {
		a.log.Debug("replay finished")
	}
	a.screen.Show()
}

// HandleEvent applies one input event. It returns false when the user quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.redraw()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.search()
		return true
	case tcell.KeyUp:
		a.moveCursor(-1, 0)
		return true
	case tcell.KeyDown:
		a.moveCursor(1, 0)
		return true
	case tcell.KeyLeft:
		a.moveCursor(0, -1)
		return true
	case tcell.KeyRight:
		a.moveCursor(0, 1)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 's':
		a.mode = placeStart
		a.status = "click a cell to place the start"
	case 'e':
		a.mode = placeEnd
		a.status = "click a cell to place the end"
	case ' ':
		a.apply(a.cursor)
	case 'c':
		a.edit(func() error {
			a.board.ClearWalls()
			return nil
		}, "walls cleared")
	case 'r':
		seed := a.opts.Seed
		a.opts.Seed++
		a.edit(func() error {
			return a.board.Randomize(a.opts.Density, seed)
		}, fmt.Sprintf("randomized (seed %d)", seed))
	case 'n':
		a.edit(func() error {
			return a.board.Reset(a.board.Rows(), a.board.Cols())
		}, "reset")
	}
	a.refresh()
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		a.dragging = false
		return
	}
	c, ok := a.rend.CellAt(ev.Position())
	if !ok {
		return
	}
	// Holding the button over one cell must not toggle it back and forth.
	if a.dragging && c == a.lastDrag {
		return
	}
	a.dragging, a.lastDrag = true, c
	a.cursor = c
	a.apply(c)
	a.refresh()
}

// apply performs the current placement at c.
func (a *App) apply(c grid.Cell) {
	switch a.mode {
	case placeStart:
		a.edit(func() error { return a.board.SetStart(c) }, "start at "+c.String())
	case placeEnd:
		a.edit(func() error { return a.board.SetEnd(c) }, "end at "+c.String())
	default:
		a.edit(func() error {
			_, err := a.board.ToggleWall(c)
			return err
		}, "")
	}
	a.mode = placeWall
}

// edit cancels a running replay, then applies fn.
func (a *App) edit(fn func() error, ok string) {
	a.player.Cancel()
	if err := fn(); err != nil {
		a.status = err.Error()
		return
	}
	if ok != "" {
		a.status = ok
	}
}

func (a *App) moveCursor(dr, dc int) {
	next := a.cursor.Add(dr, dc)
	if next.Row >= 0 && next.Row < a.board.Rows() && next.Col >= 0 && next.Col < a.board.Cols() {
		a.cursor = next
	}
	a.refresh()
}

// search runs the path search and starts replaying it.
func (a *App) search() {
	a.player.Cancel()
	a.redraw()

	start, end := a.board.Start(), a.board.End()
	if start == nil || end == nil {
		a.status = "place both start (s) and end (e) first"
		a.rend.Status(a.status)
		a.screen.Show()
		return
	}

	res := a.board.Search()
	a.player.Start(res.Visited, res.Path, *start, *end)
	if res.Found {
		a.status = fmt.Sprintf("visited %d, path %d cells, cost %d", len(res.Visited), len(res.Path), res.Cost)
	} else {
		a.status = fmt.Sprintf("visited %d, no path", len(res.Visited))
	}
	a.log.Info("search", "start", start.String(), "end", end.String(),
		"visited", len(res.Visited), "path", len(res.Path), "found", res.Found)
	a.rend.Status(a.status)
	a.screen.Show()
}

// refresh repaints the board, or only the status line while a replay is
// drawing over it.
func (a *App) refresh() {
	if a.player.Active() {
		a.rend.Status(fmt.Sprintf("[%s] %s", a.mode, a.status))
		a.screen.Show()
		return
	}
	a.redraw()
}

func (a *App) redraw() {
	a.screen.Clear()
	cursor := a.cursor
	a.rend.Draw(a.board, &cursor)
	a.rend.Status(fmt.Sprintf("[%s] %s", a.mode, a.status))
	a.screen.Show()
}

func (a *App) help() string {
	return "s/e place start/end, click or space toggles walls, enter search, c clear, r random, n reset, q quit"
}
