// Package replay implements the Replayer state machine.
package replay

import (
	"github.com/katalvlaran/gridpath/grid"
)

// Replayer drains a visited order and then a path, one cell per Tick.
type Replayer struct {
	out Renderer

	phase   Phase
	visited []grid.Cell // remaining visited cells, front first
	path    []grid.Cell // remaining path cells, front first
	skip    []grid.Cell // endpoints that are consumed but never emitted

	// gen changes on every Start and Cancel so a Render callback that cancels
	// mid-tick suppresses the rest of that tick's events.
	gen uint64
}

// New returns an idle Replayer that emits to out.
// It panics with ErrNilRenderer if out is nil.
func New(out Renderer) *Replayer {
	if out == nil {
		panic(ErrNilRenderer)
	}
	return &Replayer{out: out}
}

// Start loads a new replay. It is accepted only in Idle and returns false,
// leaving the current replay untouched, otherwise.
//
// Both sequences are copied. The replay begins in ReplayingVisited when visited
// is non-empty, in ReplayingPath when only path is non-empty, and stays Idle
// when both are empty (Start still reports true). Cells listed in endpoints are
// never emitted.
func (p *Replayer) Start(visited, path []grid.Cell, endpoints ...grid.Cell) bool {
	if p.phase != Idle {
		return false
	}
	p.gen++
	p.visited = append([]grid.Cell(nil), visited...)
	p.path = append([]grid.Cell(nil), path...)
	p.skip = append([]grid.Cell(nil), endpoints...)

	switch {
	case len(p.visited) > 0:
		p.phase = ReplayingVisited
	case len(p.path) > 0:
		p.phase = ReplayingPath
	default:
		p.release()
	}
	return true
}

// Tick advances the replay by one cell and reports whether a replay is still
// active afterwards. In Idle it does nothing and returns false.
func (p *Replayer) Tick() bool {
	switch p.phase {
	case ReplayingVisited:
		c := p.visited[0]
		p.visited = p.visited[1:]
		emit := !p.isEndpoint(c)
		handover := false
		if len(p.visited) == 0 {
			if len(p.path) > 0 {
				p.phase = ReplayingPath
				handover = true
			} else {
				p.release()
			}
		}
		gen := p.gen
		if emit {
			p.out.Render(Event{Kind: VisitedEvent, Cell: c})
		}
		if handover && gen == p.gen {
			p.out.Render(Event{Kind: ClearVisitedEvent})
		}

	case ReplayingPath:
		c := p.path[0]
		p.path = p.path[1:]
		// Check before release, which drops the endpoint list.
		emit := !p.isEndpoint(c)
		if len(p.path) == 0 {
			p.release()
		}
		if emit {
			p.out.Render(Event{Kind: PathEvent, Cell: c})
		}

	case Idle:
		return false
	}

	return p.phase != Idle
}

// Cancel discards any queued cells and returns to Idle without emitting.
func (p *Replayer) Cancel() {
	p.gen++
	p.release()
}

// Phase returns the current phase.
func (p *Replayer) Phase() Phase { return p.phase }

// Active reports whether a replay is in progress.
func (p *Replayer) Active() bool { return p.phase != Idle }

// Remaining returns how many visited and path cells are still queued.
func (p *Replayer) Remaining() (visited, path int) {
	return len(p.visited), len(p.path)
}

// release drops the queues and enters Idle.
func (p *Replayer) release() {
	p.phase = Idle
	p.visited = nil
	p.path = nil
	p.skip = nil
}

func (p *Replayer) isEndpoint(c grid.Cell) bool {
	for _, e := range p.skip {
		if e == c {
			return true
		}
	}
	return false
}

// Collect replays visited and path synchronously and returns every emitted
// event. It is the batch equivalent of Start followed by Tick until Idle.
func Collect(visited, path []grid.Cell, endpoints ...grid.Cell) []Event {
	rec := &Recorder{}
	p := New(rec)
	p.Start(visited, path, endpoints...)
	for p.Tick() {
	}
	return rec.Events
}
