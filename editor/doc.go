// Package editor holds the mutable state an interactive front end edits:
// a grid, an optional start cell and an optional end cell.
//
// A Board enforces the editing rules front ends share:
//
//   - Placing an endpoint clears a wall under it.
//   - Start and end may share a cell; the search then visits and returns just
//     that cell, and renderers draw it as the end.
//   - Walls cannot be toggled on an endpoint (ErrEndpointCell).
//   - Randomize never walls an endpoint.
//
// Search runs astar.Search against a snapshot clone, so later edits cannot
// affect a trace that is already being replayed.
//
// A Board is not safe for concurrent use.
package editor
