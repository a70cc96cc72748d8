package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PatiFroNati/shot-plot-app/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

// Each Load scenario gets its own test function: t.Setenv restores the
// environment when the function returns, so env mutations never bleed into
// the re-executed branches of a sibling scenario.

func TestNew(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := config.New()

		Convey("Then the defaults are sensible for local runs", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":8090")
			So(cfg.CatalogPath, ShouldBeEmpty)
			So(cfg.CanvasSizePX, ShouldEqual, 800)
			So(cfg.MaxSessions, ShouldEqual, 1024)
			So(cfg.SessionTTLMinutes, ShouldEqual, 240)
		})
	})
}

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file and no env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the defaults come through", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8090")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.CanvasSizePX, ShouldEqual, 800)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SHOTPLOT_ADDR", ":9999")
	t.Setenv("SHOTPLOT_LOG_LEVEL", "debug")
	t.Setenv("SHOTPLOT_CANVAS_SIZE_PX", "400")
	t.Setenv("SHOTPLOT_MAX_SESSIONS", "8")

	Convey("Given env vars for most keys", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the overrides win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9999")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.CanvasSizePX, ShouldEqual, 400)
			So(cfg.MaxSessions, ShouldEqual, 8)
			// Untouched fields keep their defaults.
			So(cfg.SessionTTLMinutes, ShouldEqual, 240)
		})
	})
}

// writeConfigFile drops a YAML document into a temp dir and returns its path.
func writeConfigFile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfigFile(t, "addr: \":7070\"\nlog_level: warn\ncatalog_path: /etc/targets.json\n")
	t.Setenv("SHOTPLOT_CONFIG", path)

	Convey("Given a YAML file and no other env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the file values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "warn")
			So(cfg.CatalogPath, ShouldEqual, "/etc/targets.json")
			// Keys the file does not mention keep their defaults.
			So(cfg.CanvasSizePX, ShouldEqual, 800)
		})
	})
}

func TestLoadEnvOverFile(t *testing.T) {
	path := writeConfigFile(t, "addr: \":7070\"\nlog_level: warn\n")
	t.Setenv("SHOTPLOT_CONFIG", path)
	t.Setenv("SHOTPLOT_ADDR", ":6060")

	Convey("Given a YAML file and an env var on the same key", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the env var wins and other file keys survive", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
			So(cfg.LogLevel, ShouldEqual, "warn")
		})
	})
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("SHOTPLOT_CONFIG", "/no/such/config.yaml")

	Convey("Given a config path that does not exist", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then loading fails with ErrLoadConfig", func() {
			So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
		})
	})
}

func TestLoadValidationCanvas(t *testing.T) {
	t.Setenv("SHOTPLOT_CANVAS_SIZE_PX", "0")

	Convey("Given a non-positive canvas size", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then validation fails with ErrInvalidConfig", func() {
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}

func TestLoadValidationMaxSessions(t *testing.T) {
	t.Setenv("SHOTPLOT_MAX_SESSIONS", "-1")

	Convey("Given a non-positive session bound", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then validation fails with ErrInvalidConfig", func() {
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}

func TestLoadValidationSessionTTL(t *testing.T) {
	t.Setenv("SHOTPLOT_SESSION_TTL_MINUTES", "0")

	Convey("Given a non-positive session TTL", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then validation fails with ErrInvalidConfig", func() {
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}
