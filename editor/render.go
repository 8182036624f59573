package editor

import (
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Glyphs used by Render.
const (
	GlyphStart   = 'S'
	GlyphEnd     = 'E'
	GlyphPath    = '*'
	GlyphVisited = '+'
)

// Render draws b as newline-separated rows. Precedence, highest first:
// end, start, path, visited, then the grid's own '.'/'#'.
func Render(b *Board, visited, path []grid.Cell) string {
	rows, cols := b.Rows(), b.Cols()
	canvas := make([][]byte, rows)
	for r := range canvas {
		canvas[r] = make([]byte, cols)
		for c := range canvas[r] {
			canvas[r][c] = b.At(grid.Cell{Row: r, Col: c}).String()[0]
		}
	}

	paint := func(cells []grid.Cell, glyph byte) {
		for _, c := range cells {
			if b.g.InBounds(c) {
				canvas[c.Row][c.Col] = glyph
			}
		}
	}
	paint(visited, GlyphVisited)
	paint(path, GlyphPath)
	if b.start != nil {
		paint([]grid.Cell{*b.start}, GlyphStart)
	}
	if b.end != nil {
		paint([]grid.Cell{*b.end}, GlyphEnd)
	}

	var sb strings.Builder
	sb.Grow(rows * (cols + 1))
	for r, line := range canvas {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(line)
	}
	return sb.String()
}
