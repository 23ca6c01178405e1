// Package httpapi exposes the dispatch core over JSON HTTP. The adapter
// translates transport concerns only: request decoding, status mapping,
// response encoding. No business rule lives here.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/example/skylark/internal/models"
	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/ports/secondary"
)

// ReloadFunc re-ingests the configured data sources into the catalog.
// Wired in by the composition root so the server never touches files.
type ReloadFunc func(ctx context.Context) (*primary.LoadResponse, error)

// Server wraps the HTTP listener and handlers for the dispatch API.
type Server struct {
	addr     string
	dispatch primary.DispatchService
	query    primary.QueryService
	roster   primary.RosterService
	reload   ReloadFunc
	logger   *slog.Logger

	server   *http.Server
	listener net.Listener
}

// Option customizes server construction.
type Option func(*Server)

// WithReload enables the /reload endpoint.
func WithReload(fn ReloadFunc) Option {
	return func(s *Server) { s.reload = fn }
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer prepares a dispatch API server listening on addr.
func NewServer(addr string, dispatch primary.DispatchService, query primary.QueryService, roster primary.RosterService, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		dispatch: dispatch,
		query:    query,
		roster:   roster,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the route table. Exposed so tests can drive the server
// through httptest without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /assign", s.handleAssign)
	mux.HandleFunc("GET /pilots", s.handleQueryPilots)
	mux.HandleFunc("GET /drones", s.handleQueryDrones)
	mux.HandleFunc("POST /pilots/{id}/status", s.handleUpdateStatus)
	if s.reload != nil {
		mux.HandleFunc("POST /reload", s.handleReload)
	}
	return mux
}

// Start begins serving. It returns once the listener is bound; the serve
// loop runs until Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("dispatch API server stopped", "error", err)
		}
	}()

	s.logger.Info("dispatch API listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the bound listen address, useful when addr had port 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Shutdown drains in-flight requests and closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"msg": "Skylark dispatch API ready.",
	})
}

type assignPayload struct {
	PilotID   string `json:"pilot_id"`
	DroneID   string `json:"drone_id"`
	MissionID string `json:"mission_id"`
}

type assignReply struct {
	Assigned   bool     `json:"assigned"`
	Violations []string `json:"violations,omitempty"`
	Cost       int64    `json:"cost"`
}

func (s *Server) handleAssign(w http.ResponseWriter, r *http.Request) {
	var payload assignPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if payload.PilotID == "" || payload.DroneID == "" || payload.MissionID == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("pilot_id, drone_id and mission_id are required"))
		return
	}

	resp, err := s.dispatch.Assign(r.Context(), primary.AssignRequest{
		PilotID:   payload.PilotID,
		DroneID:   payload.DroneID,
		MissionID: payload.MissionID,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if !resp.Assigned {
		// Constraint failures are a normal outcome, not a server error;
		// 422 keeps them apart from transport-level rejects.
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, assignReply{
		Assigned:   resp.Assigned,
		Violations: resp.Violations,
		Cost:       resp.Cost,
	})
}

type pilotReply struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	DailyRate int64  `json:"daily_rate"`
}

func (s *Server) handleQueryPilots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pilots, err := s.query.QueryPilots(r.Context(), primary.PilotFilters{
		Skill:         q.Get("skill"),
		Location:      q.Get("location"),
		Certification: q.Get("certification"),
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	out := make([]pilotReply, len(pilots))
	for i, p := range pilots {
		out[i] = pilotReply{ID: p.ID, Name: p.Name, Location: p.Location, DailyRate: p.DailyRate}
	}
	s.writeJSON(w, http.StatusOK, out)
}

type droneReply struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	Location string `json:"location"`
}

func (s *Server) handleQueryDrones(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	drones, err := s.query.QueryDrones(r.Context(), primary.DroneFilters{
		Capability: q.Get("capability"),
		Location:   q.Get("location"),
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	out := make([]droneReply, len(drones))
	for i, d := range drones {
		out[i] = droneReply{ID: d.ID, Model: d.Model, Location: d.Location}
	}
	s.writeJSON(w, http.StatusOK, out)
}

type statusPayload struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if _, err := models.ParsePilotStatus(payload.Status); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := s.roster.UpdatePilotStatus(r.Context(), primary.UpdateStatusRequest{
		PilotID: r.PathValue("id"),
		Status:  payload.Status,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	resp, err := s.reload(r.Context())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// writeServiceError maps service failures to transport status codes.
// Unknown identifiers become 404, malformed input 400, the rest 500.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, secondary.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err)
	default:
		s.logger.Error("request failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
