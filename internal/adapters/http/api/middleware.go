// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/PatiFroNati/shot-plot-app/pkg/metrics"
)

// MetricsMiddleware wraps a handler and records per-endpoint request counts,
// latency, and error breakdowns.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		status := strconv.Itoa(rec.status)
		metrics.RecordHTTPRequest(endpoint, r.Method, status)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, status, float64(time.Since(start).Milliseconds()))

		if rec.status >= http.StatusBadRequest {
			errorType, severity := classifyError(rec.status)
			metrics.RecordErrorByEndpoint(endpoint, r.Method, errorType)
			metrics.RecordErrorByType(errorType, severity)
		}
	}
}

// classifyError maps a response status onto the error labels this service
// emits: bad input, unknown target or session, full session store, and
// everything else as a server fault. Store exhaustion is the one condition
// operators page on, hence its own label.
func classifyError(status int) (errorType, severity string) {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error", "high"
	case status == http.StatusTooManyRequests:
		return "store_full", "high"
	case status == http.StatusNotFound:
		return "not_found", "low"
	default:
		return "bad_request", "medium"
	}
}

// statusRecorder captures the status code written by the wrapped handler.
// Handlers that never call WriteHeader implicitly respond 200.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}
