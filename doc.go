// Package gridpath finds shortest paths on 4-connected grids and replays
// the search one step at a time.
//
// What is in the box?
//
//	grid/    rectangular Passable/Wall grids, parsing, bounds, BFS components
//	astar/   A* with a Manhattan heuristic and deterministic tie-breaking
//	replay/  a tick-driven Replayer that animates the visited cells,
//	         clears them, then traces the path
//	editor/  a board with walls and start/end endpoints, plus ASCII rendering
//
// Tools built on top live under internal/ and cmd/gridpath: a tcell terminal
// editor, an HTTP API that streams replays over websockets, and an MCP stdio
// tool server.
//
// Quick ASCII example (S start, E end, * path, # wall):
//
//	S#E
//	*#*
//	***
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
