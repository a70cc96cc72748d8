package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if SHOTPLOT_CONFIG is set
//  3. env (prefix SHOTPLOT_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SHOTPLOT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SHOTPLOT_ADDR, SHOTPLOT_CANVAS_SIZE_PX, ...
	// Map env keys like SHOTPLOT_MAX_SESSIONS -> max_sessions (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SHOTPLOT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "shotplot_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.CanvasSizePX <= 0:
		return nil, fmt.Errorf("%w: canvas_size_px must be positive", ErrInvalidConfig)
	case cfg.MaxSessions <= 0:
		return nil, fmt.Errorf("%w: max_sessions must be positive", ErrInvalidConfig)
	case cfg.SessionTTLMinutes <= 0:
		return nil, fmt.Errorf("%w: session_ttl_minutes must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
