// Package replay defines phases, render events, renderer adapters and
// sentinel errors for the step replayer.
package replay

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for replay operations.
var (
	// ErrNilRenderer is raised (via panic) when New receives a nil Renderer.
	ErrNilRenderer = errors.New("replay: renderer is nil")

	// ErrBadInterval is returned by Drive for a non-positive tick interval.
	ErrBadInterval = errors.New("replay: tick interval must be positive")
)

// Phase is the replayer state.
type Phase int

const (
	// Idle means no replay is active.
	Idle Phase = iota
	// ReplayingVisited drains the visited order.
	ReplayingVisited
	// ReplayingPath drains the path after the visited order is exhausted.
	ReplayingPath
)

// String returns a lower-case phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case ReplayingVisited:
		return "visited"
	case ReplayingPath:
		return "path"
	default:
		return "unknown"
	}
}

// EventKind tells the renderer what to draw.
type EventKind int

const (
	// VisitedEvent marks a cell the search finalized.
	VisitedEvent EventKind = iota
	// PathEvent marks a cell on the final path.
	PathEvent
	// ClearVisitedEvent removes the visited overlay before the path is drawn.
	ClearVisitedEvent
)

// String returns the wire name of the kind.
func (k EventKind) String() string {
	switch k {
	case VisitedEvent:
		return "visited"
	case PathEvent:
		return "path"
	case ClearVisitedEvent:
		return "clear"
	default:
		return "unknown"
	}
}

// Event is a single render instruction. Cell is the zero Cell for ClearVisitedEvent.
type Event struct {
	Kind EventKind
	Cell grid.Cell
}

// Renderer receives events in emission order.
type Renderer interface {
	Render(Event)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Event)

// Render calls f(e).
func (f RendererFunc) Render(e Event) { f(e) }

// Recorder is a Renderer that keeps every event it receives.
type Recorder struct {
	Events []Event
}

// Render appends e.
func (r *Recorder) Render(e Event) { r.Events = append(r.Events, e) }

// Cells returns the cells of all recorded events of the given kind, in order.
func (r *Recorder) Cells(kind EventKind) []grid.Cell {
	var out []grid.Cell
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e.Cell)
		}
	}
	return out
}

// Count returns how many recorded events have the given kind.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded events.
func (r *Recorder) Reset() { r.Events = r.Events[:0] }
