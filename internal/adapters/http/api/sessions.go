// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// SessionsHandler handles session lifecycle and shot recording requests.
type SessionsHandler struct {
	deps Dependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps Dependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

// HandleCreateSession handles POST /sessions requests.
func (h *SessionsHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_session"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(req.Target) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	state, err := h.deps.CreateSession(r.Context(), req.Target)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

// HandleSessionSubtree routes /sessions/{id}[/...] requests.
//
//	GET    /sessions/{id}            -> session state
//	PUT    /sessions/{id}/target     -> select target (clears log on change)
//	POST   /sessions/{id}/shots      -> record a shot
//	GET    /sessions/{id}/shots      -> list shots
//	DELETE /sessions/{id}/shots      -> clear the log
//	GET    /sessions/{id}/render     -> render description
//	GET    /sessions/{id}/export.csv -> CSV export
func (h *SessionsHandler) HandleSessionSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/sessions/")
	parts := strings.Split(rest, "/")
	if len(parts) == 0 || parts[0] == "" || len(parts) > 2 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	id := parts[0]

	if len(parts) == 1 {
		h.handleState(w, r, id)
		return
	}

	switch parts[1] {
	case "target":
		h.handleSelectTarget(w, r, id)
	case "shots":
		h.handleShots(w, r, id)
	case "render":
		h.handleRender(w, r, id)
	case "export.csv":
		h.handleExport(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *SessionsHandler) handleState(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	state, err := h.deps.Session(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *SessionsHandler) handleSelectTarget(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.select_target"
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}
	var req selectTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(req.Target) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	state, err := h.deps.SelectTarget(r.Context(), id, req.Target)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *SessionsHandler) handleShots(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.shots"
	switch r.Method {
	case http.MethodPost:
		var req shotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		shot, err := h.deps.RecordShot(r.Context(), id, *req.X, *req.Y)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, shot)

	case http.MethodGet:
		shots, err := h.deps.Shots(r.Context(), id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, shots)

	case http.MethodDelete:
		if err := h.deps.ClearShots(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.NotFound(w, r)
	}
}

func (h *SessionsHandler) handleRender(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	desc, err := h.deps.Render(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, desc)
}
