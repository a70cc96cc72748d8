// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Default session bounds.
const (
	defaultMaxSessions       = 1024
	defaultSessionTTLMinutes = 240
	defaultCanvasSizePX      = 800
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// CatalogPath optionally points at a target specification document.
	// When empty the embedded catalog is used.
	CatalogPath string `koanf:"catalog_path"`

	// CanvasSizePX is the square canvas edge in pixels used for geometry.
	CanvasSizePX int `koanf:"canvas_size_px"`

	// MaxSessions bounds the in-memory session store.
	MaxSessions int `koanf:"max_sessions"`

	// SessionTTLMinutes evicts sessions idle longer than this.
	SessionTTLMinutes int `koanf:"session_ttl_minutes"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":8090",
		CatalogPath:       "",
		CanvasSizePX:      defaultCanvasSizePX,
		MaxSessions:       defaultMaxSessions,
		SessionTTLMinutes: defaultSessionTTLMinutes,
	}
}
