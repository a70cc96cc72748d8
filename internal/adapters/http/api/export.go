// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	"github.com/PatiFroNati/shot-plot-app/internal/domain/shotlog"
)

// handleExport handles GET /sessions/{id}/export.csv requests.
// An empty log is not an error for the client: the export is withheld with
// 204 No Content instead of writing a degenerate file.
func (h *SessionsHandler) handleExport(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	data, err := h.deps.ExportCSV(r.Context(), id)
	if err != nil {
		if errors.Is(err, shotlog.ErrEmptyLog) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="shot_log.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
