// Package tui is the terminal front end: a tcell renderer for replay events
// and an interactive board editor.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/replay"
)

// CellWidth is the number of terminal columns one grid cell occupies.
const CellWidth = 2

// Styles for board cells.
var (
	StylePassable = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	StyleWall     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGray)
	StyleStart    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	StyleEnd      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed)
	StyleVisited  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(60, 100, 200))
	StylePath     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(255, 255, 0))
	StyleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer draws a board and replay events on a tcell.Screen.
// The board occupies the top-left corner; the status line sits below it.
type Renderer struct {
	screen  tcell.Screen
	board   *editor.Board
	visited []grid.Cell // cells painted by VisitedEvent since the last Draw
}

// NewRenderer returns a renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw paints the base board (walls, endpoints and an optional cursor) and
// forgets any overlay. It does not call Show.
func (r *Renderer) Draw(b *editor.Board, cursor *grid.Cell) {
	r.board = b
	r.visited = r.visited[:0]
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			c := grid.Cell{Row: row, Col: col}
			glyph, style := r.base(c)
			if cursor != nil && *cursor == c {
				style = style.Reverse(true)
			}
			r.put(c, glyph, style)
		}
	}
}

// Render implements replay.Renderer.
func (r *Renderer) Render(e replay.Event) {
	if r.board == nil {
		return
	}
	switch e.Kind {
	case replay.VisitedEvent:
		r.visited = append(r.visited, e.Cell)
		r.put(e.Cell, editor.GlyphVisited, StyleVisited)
	case replay.PathEvent:
		r.put(e.Cell, editor.GlyphPath, StylePath)
	case replay.ClearVisitedEvent:
		for _, c := range r.visited {
			glyph, style := r.base(c)
			r.put(c, glyph, style)
		}
		r.visited = r.visited[:0]
	}
}

// Status writes msg on the line below the board, padded to the screen width.
func (r *Renderer) Status(msg string) {
	if r.board == nil {
		return
	}
	w, _ := r.screen.Size()
	y := r.board.Rows()
	runes := []rune(msg)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.screen.SetContent(x, y, ch, nil, StyleStatus)
	}
}

// CellAt maps screen coordinates to the board cell under them.
func (r *Renderer) CellAt(x, y int) (grid.Cell, bool) {
	if r.board == nil || x < 0 || y < 0 {
		return grid.Cell{}, false
	}
	c := grid.Cell{Row: y, Col: x / CellWidth}
	if c.Row >= r.board.Rows() || c.Col >= r.board.Cols() {
		return grid.Cell{}, false
	}
	return c, true
}

// Fits reports whether the board plus status line fits the screen.
func (r *Renderer) Fits(b *editor.Board) error {
	w, h := r.screen.Size()
	needW, needH := b.Cols()*CellWidth, b.Rows()+1
	if w < needW || h < needH {
		return fmt.Errorf("tui: board needs %dx%d terminal cells, screen is %dx%d", needW, needH, w, h)
	}
	return nil
}

func (r *Renderer) base(c grid.Cell) (rune, tcell.Style) {
	start, end := r.board.Start(), r.board.End()
	switch {
	case end != nil && *end == c:
		return editor.GlyphEnd, StyleEnd
	case start != nil && *start == c:
		return editor.GlyphStart, StyleStart
	case r.board.At(c) == grid.Wall:
		return '#', StyleWall
	default:
		return '.', StylePassable
	}
}

func (r *Renderer) put(c grid.Cell, glyph rune, style tcell.Style) {
	x := c.Col * CellWidth
	r.screen.SetContent(x, c.Row, glyph, nil, style)
	for i := 1; i < CellWidth; i++ {
		r.screen.SetContent(x+i, c.Row, ' ', nil, style)
	}
}
