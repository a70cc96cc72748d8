// Package metrics provides Prometheus metrics for the shot plotter service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Core Business Metrics - shots and scoring
	shotsRecorded  prometheus.Counter
	shotsOffTarget prometheus.Counter
	shotScores     prometheus.Histogram
	scoringLatency prometheus.Histogram

	// Shot log lifecycle
	logClears      prometheus.Counter
	targetSwitches prometheus.Counter
	exports        prometheus.Counter
	exportsEmpty   prometheus.Counter
	exportRows     prometheus.Histogram

	// Session metrics
	sessionsCreated prometheus.Counter
	sessionsActive  prometheus.Gauge
	sessionsEvicted prometheus.Counter

	// Catalog metrics
	catalogTargets prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Enhanced Error Metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "shotplot",
		subsystem:        "range",
		histogramBuckets: prometheus.DefBuckets,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Core Business Metrics
	m.shotsRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "shots_recorded_total",
		Help:      "Total number of shots recorded across all sessions",
	})

	m.shotsOffTarget = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "shots_off_target_total",
		Help:      "Total number of shots landing outside the largest scoring ring",
	})

	m.shotScores = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "shot_score",
		Help:      "Distribution of shot scores",
		Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	})

	m.scoringLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_latency_milliseconds",
		Help:      "Histogram of scoring latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// Shot log lifecycle
	m.logClears = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "log_clears_total",
		Help:      "Total number of explicit shot log clears",
	})

	m.targetSwitches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "target_switches_total",
		Help:      "Total number of target switches that reset a shot log",
	})

	m.exports = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exports_total",
		Help:      "Total number of successful CSV exports",
	})

	m.exportsEmpty = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exports_empty_total",
		Help:      "Total number of export attempts against an empty shot log",
	})

	m.exportRows = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "export_rows",
		Help:      "Distribution of row counts per CSV export",
		Buckets:   []float64{1, 5, 10, 20, 40, 60, 100},
	})

	// Session metrics
	m.sessionsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions created",
	})

	m.sessionsActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_active",
		Help:      "Current number of live sessions in the store",
	})

	m.sessionsEvicted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_evicted_total",
		Help:      "Total number of sessions evicted by TTL sweep",
	})

	// Catalog metrics
	m.catalogTargets = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_targets",
		Help:      "Number of target definitions loaded into the catalog",
	})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Enhanced Error Metrics
	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total errors by type and severity",
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total errors by endpoint and method",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "Histogram of garbage collector pause times in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// Package-level helpers that record against the global manager.

// RecordShot records a scored shot.
func RecordShot(score int) {
	globalManager.shotsRecorded.Inc()
	globalManager.shotScores.Observe(float64(score))
	if score == 0 {
		globalManager.shotsOffTarget.Inc()
	}
}

// RecordScoringLatency records the duration of one scoring call in milliseconds.
func RecordScoringLatency(latencyMs float64) {
	globalManager.scoringLatency.Observe(latencyMs)
}

// RecordLogClear records an explicit shot log clear.
func RecordLogClear() {
	globalManager.logClears.Inc()
}

// RecordTargetSwitch records a target switch that reset a shot log.
func RecordTargetSwitch() {
	globalManager.targetSwitches.Inc()
}

// RecordExport records a successful CSV export of n rows.
func RecordExport(rows int) {
	globalManager.exports.Inc()
	globalManager.exportRows.Observe(float64(rows))
}

// RecordExportEmpty records an export attempt against an empty log.
func RecordExportEmpty() {
	globalManager.exportsEmpty.Inc()
}

// RecordSessionCreated records a new session.
func RecordSessionCreated() {
	globalManager.sessionsCreated.Inc()
}

// RecordSessionEvicted records a TTL eviction.
func RecordSessionEvicted() {
	globalManager.sessionsEvicted.Inc()
}

// UpdateActiveSessions updates the live session gauge.
func UpdateActiveSessions(count int) {
	globalManager.sessionsActive.Set(float64(count))
}

// UpdateCatalogTargets updates the loaded target definitions gauge.
func UpdateCatalogTargets(count int) {
	globalManager.catalogTargets.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByType records an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage updates the allocated memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount updates the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records a GC pause duration in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
