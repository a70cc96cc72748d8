// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/PatiFroNati/shot-plot-app/internal/adapters/repository"
	"github.com/PatiFroNati/shot-plot-app/internal/domain/catalog"
	"github.com/PatiFroNati/shot-plot-app/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Targets(ctx context.Context) []types.TargetSummary
	CreateSession(ctx context.Context, targetName string) (types.SessionState, error)
	Session(ctx context.Context, sessionID string) (types.SessionState, error)
	SelectTarget(ctx context.Context, sessionID, targetName string) (types.SessionState, error)
	RecordShot(ctx context.Context, sessionID string, xPx, yPx float64) (types.Shot, error)
	Shots(ctx context.Context, sessionID string) ([]types.Shot, error)
	ClearShots(ctx context.Context, sessionID string) error
	ExportCSV(ctx context.Context, sessionID string) ([]byte, error)
	Render(ctx context.Context, sessionID string) (types.RenderDescription, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	targetsHandler  *TargetsHandler
	sessionsHandler *SessionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		targetsHandler:  NewTargetsHandler(deps),
		sessionsHandler: NewSessionsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/targets", MetricsMiddleware(s.targetsHandler.HandleGetTargets, "targets"))
	mux.HandleFunc("/sessions", MetricsMiddleware(s.sessionsHandler.HandleCreateSession, "sessions"))
	mux.HandleFunc("/sessions/", MetricsMiddleware(s.sessionsHandler.HandleSessionSubtree, "sessions"))
}

// createSessionRequest is the body of POST /sessions.
type createSessionRequest struct {
	Target string `json:"target"`
}

// selectTargetRequest is the body of PUT /sessions/{id}/target.
type selectTargetRequest struct {
	Target string `json:"target"`
}

// shotRequest is the body of POST /sessions/{id}/shots.
// Coordinates are canvas pixels.
type shotRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func (r shotRequest) validate() error {
	switch {
	case r.X == nil:
		return errors.New("missing x")
	case r.Y == nil:
		return errors.New("missing y")
	}
	return nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates sentinel kinds from lower layers to HTTP.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrStoreFull):
		writeError(w, http.StatusTooManyRequests, "store_full", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
