// Package stream serves path searches over HTTP and streams replays to
// websocket clients.
//
// Routes:
//
//	GET  /healthz      liveness probe
//	POST /api/search   run a search, return visited order, path and cost
//	POST /api/replay   run a search and animate it to every /ws client
//	GET  /ws           subscribe to replay events
//
// Request body for both POST routes:
//
//	{"rows": ["..#", "..."], "start": [0, 0], "end": [1, 2]}
//
// Rows use '.' for passable and '#' for walls. Omitted endpoints yield an
// empty result, as PathSearch defines.
//
// Websocket messages are JSON objects, one per line within a frame:
//
//	{"event":"start","data":{...}}      replay begins; data is the request echo
//	{"event":"visited","cell":[r,c]}
//	{"event":"clear"}
//	{"event":"path","cell":[r,c]}
//	{"event":"done","phase":"idle","data":{"cancelled":false}}
//
// The hub follows the register/unregister/broadcast model: one goroutine owns
// the client set; each connection runs a read pump and a write pump with
// ping/pong keep-alive. Only one replay runs at a time; a new POST /api/replay
// cancels the running one before starting.
package stream
