// Command simulate fires generated clicks at a running shot plotter and
// verifies the returned scores against a local scoring engine.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PatiFroNati/shot-plot-app/internal/simulate"
	"github.com/PatiFroNati/shot-plot-app/pkg/logger"
)

func main() {
	var cfg simulate.Config

	flag.StringVar(&cfg.BaseURL, "url", "http://localhost:8090", "base URL of the service")
	flag.StringVar(&cfg.Target, "target", "", "target name (default: first catalog entry)")
	flag.StringVar(&cfg.CatalogPath, "catalog", "", "catalog document for local verification (default: embedded)")
	flag.IntVar(&cfg.NumShots, "shots", 100, "number of clicks to fire")
	flag.Float64Var(&cfg.CanvasPX, "canvas", 800, "canvas size the service is configured with")
	flag.DurationVar(&cfg.Timeout, "timeout", 30*time.Second, "HTTP request timeout")
	flag.Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "RNG seed for reproducible runs")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "log every verified shot")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if cfg.Verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := simulate.Run(ctx, &cfg); err != nil {
		logger.Get().Error(ctx, "simulation failed", logger.Error(err))
		os.Exit(1)
	}
}
