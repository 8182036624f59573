package stream

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrBadRequest marks a request body that does not describe a valid search.
var ErrBadRequest = errors.New("stream: bad request")

// Message is one websocket payload.
type Message struct {
	Event string `json:"event"`
	Cell  *Point `json:"cell,omitempty"`
	Phase string `json:"phase,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// Point is a cell on the wire: [row, col].
type Point [2]int

func pointOf(c grid.Cell) Point { return Point{c.Row, c.Col} }

func (p Point) cell() grid.Cell { return grid.Cell{Row: p[0], Col: p[1]} }

func points(cells []grid.Cell) []Point {
	out := make([]Point, len(cells))
	for i, c := range cells {
		out[i] = pointOf(c)
	}
	return out
}

// Request is the body of /api/search and /api/replay.
type Request struct {
	Rows  []string `json:"rows"`
	Start *Point   `json:"start,omitempty"`
	End   *Point   `json:"end,omitempty"`
}

// search is a validated Request.
type search struct {
	grid       *grid.Grid
	start, end *grid.Cell
}

// endpoints returns the set endpoints, start first.
func (s search) endpoints() []grid.Cell {
	var out []grid.Cell
	if s.start != nil {
		out = append(out, *s.start)
	}
	if s.end != nil {
		out = append(out, *s.end)
	}
	return out
}

func (s search) run() astar.Result {
	return astar.Search(s.grid, s.start, s.end)
}

// validate parses the grid and bounds-checks the endpoints.
func (r Request) validate() (search, error) {
	g, err := grid.FromRows(r.Rows...)
	if err != nil {
		return search{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	s := search{grid: g}
	for _, ep := range []struct {
		name string
		in   *Point
		out  **grid.Cell
	}{{"start", r.Start, &s.start}, {"end", r.End, &s.end}} {
		if ep.in == nil {
			continue
		}
		c := ep.in.cell()
		if !g.InBounds(c) {
			return search{}, fmt.Errorf("%w: %s %v outside %dx%d grid", ErrBadRequest, ep.name, c, g.Rows(), g.Cols())
		}
		*ep.out = &c
	}
	return s, nil
}

// Response is the body returned by /api/search and /api/replay.
type Response struct {
	Visited []Point `json:"visited"`
	Path    []Point `json:"path"`
	Cost    int     `json:"cost"`
	Found   bool    `json:"found"`
}

func responseOf(res astar.Result) Response {
	return Response{
		Visited: points(res.Visited),
		Path:    points(res.Path),
		Cost:    res.Cost,
		Found:   res.Found,
	}
}

// startPayload is the data of a "start" message: enough for a client to draw
// the base board before events arrive.
type startPayload struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Grid  []string `json:"grid"`
	Start *Point   `json:"start,omitempty"`
	End   *Point   `json:"end,omitempty"`
}

func rowsOf(g *grid.Grid) []string {
	return strings.Split(g.String(), "\n")
}
