// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/PatiFroNati/shot-plot-app/internal/domain/types"
)

// TargetsDependencies defines the interface for catalog reads.
type TargetsDependencies interface {
	Targets(ctx context.Context) []types.TargetSummary
}

// TargetsHandler handles catalog listing requests.
type TargetsHandler struct {
	deps TargetsDependencies
}

// NewTargetsHandler creates a new targets handler.
func NewTargetsHandler(deps TargetsDependencies) *TargetsHandler {
	return &TargetsHandler{deps: deps}
}

// HandleGetTargets handles GET /targets requests.
func (h *TargetsHandler) HandleGetTargets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Targets(r.Context()))
}
