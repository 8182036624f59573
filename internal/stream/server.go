package stream

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/replay"
)

// maxBodyBytes bounds request bodies on the POST routes.
const maxBodyBytes = 1 << 20

// Options configures a Server.
type Options struct {
	Tick   time.Duration // replay pacing
	Logger *slog.Logger
}

// Server is the HTTP front end. It implements http.Handler.
type Server struct {
	hub    *Hub
	router *mux.Router
	tick   time.Duration
	log    *slog.Logger
	reqID  atomic.Uint64

	mu      sync.Mutex
	running *run // replay in flight, nil when idle
}

// run tracks one replay goroutine.
type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewServer creates a server that streams replays through hub.
// It panics with replay.ErrBadInterval for a non-positive tick.
func NewServer(hub *Hub, opts Options) *Server {
	if opts.Tick <= 0 {
		panic(replay.ErrBadInterval)
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	s := &Server{
		hub:    hub,
		router: mux.NewRouter(),
		tick:   opts.Tick,
		log:    log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.withLogger)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	// Full paths on the root router: a subrouter reports a method mismatch
	// as 404 instead of 405.
	s.router.HandleFunc("/api/search", s.handleSearch).Methods("POST")
	s.router.HandleFunc("/api/replay", s.handleReplay).Methods("POST")

	s.router.HandleFunc("/ws", s.hub.ServeWS).Methods("GET")
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// withLogger attaches a request-scoped logger to the request context.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strconv.FormatUint(s.reqID.Add(1), 10)
		log := s.log.With("request_id", id, "method", r.Method, "path", r.URL.Path)
		log.Debug("request")
		next.ServeHTTP(w, r.WithContext(logging.WithLogger(r.Context(), log)))
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"clients": s.hub.Clients(),
	})
}

// decode reads and validates a Request, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request) (search, bool) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return search{}, false
	}
	sr, err := req.validate()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return search{}, false
	}
	return sr, true
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	sr, ok := decode(w, r)
	if !ok {
		return
	}
	res := sr.run()
	logging.FromContext(r.Context()).Info("search",
		"rows", sr.grid.Rows(), "cols", sr.grid.Cols(),
		"visited", len(res.Visited), "path", len(res.Path), "found", res.Found)
	respondJSON(w, http.StatusOK, responseOf(res))
}

func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	sr, ok := decode(w, r)
	if !ok {
		return
	}
	res := sr.run()
	s.startReplay(sr, res)
	logging.FromContext(r.Context()).Info("replay started",
		"visited", len(res.Visited), "path", len(res.Path), "clients", s.hub.Clients())
	respondJSON(w, http.StatusAccepted, responseOf(res))
}

// startReplay cancels any running replay, waits for it to stop, then animates
// res on a new goroutine.
func (s *Server) startReplay(sr search, res astar.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	rn := &run{cancel: cancel, done: make(chan struct{})}
	s.running = rn

	start := startPayload{Rows: sr.grid.Rows(), Cols: sr.grid.Cols(), Grid: rowsOf(sr.grid)}
	if sr.start != nil {
		p := pointOf(*sr.start)
		start.Start = &p
	}
	if sr.end != nil {
		p := pointOf(*sr.end)
		start.End = &p
	}

	go func() {
		defer close(rn.done)
		p := replay.New(s.hub)
		p.Start(res.Visited, res.Path, sr.endpoints()...)
		s.hub.Send(Message{Event: "start", Data: start})

		err := replay.Drive(ctx, p, s.tick)
		p.Cancel()
		if err != nil && !errors.Is(err, context.Canceled) {
			s.log.Warn("replay stopped", "error", err)
		}
		s.hub.Send(Message{Event: "done", Phase: p.Phase().String(), Data: map[string]bool{"cancelled": err != nil}})
	}()
}

// Close cancels the running replay and waits for it.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Server) stopLocked() {
	if s.running == nil {
		return
	}
	s.running.cancel()
	<-s.running.done
	s.running = nil
}
