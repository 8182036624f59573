// Package astar defines the options, hooks, result type and sentinel errors
// for grid A* search.
package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors used when a caller breaks the search contract.
// They are raised via panic, never returned.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates start or end lies outside the grid.
	ErrOutOfBounds = errors.New("astar: endpoint out of bounds")
)

// Hook observes a cell together with its accumulated cost g and heuristic h.
type Hook func(c grid.Cell, g, h int)

// Options configures a single search.
//
// OnPush     – called each time a cell is pushed onto the frontier.
// OnFinalize – called each time a cell is closed and appended to Visited.
type Options struct {
	OnPush     Hook
	OnFinalize Hook
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnPush:     func(grid.Cell, int, int) {},
		OnFinalize: func(grid.Cell, int, int) {},
	}
}

// WithOnPush registers a callback for every frontier push.
func WithOnPush(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnFinalize registers a callback for every finalized cell.
func WithOnFinalize(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Visited: cells in the order they were finalized.
//   - Path:    start → end inclusive, nil when no path exists.
//   - Cost:    len(Path)-1 when Found, 0 otherwise.
//   - Found:   whether end was reached.
//   - Pushed:  total frontier pushes, stale entries included.
type Result struct {
	Visited []grid.Cell
	Path    []grid.Cell
	Cost    int
	Found   bool
	Pushed  int
}
