// Package simulate drives a running shot plotter instance with generated
// clicks and cross-checks the returned scores against a local scoring engine.
package simulate

import "time"

// Config holds configuration for a simulation run.
type Config struct {
	BaseURL     string        // Base URL of the service
	Target      string        // Target name to shoot at (empty = first catalog entry)
	CatalogPath string        // Catalog document for local verification (empty = embedded)
	NumShots    int           // Number of clicks to fire
	CanvasPX    float64       // Canvas size the service is configured with
	Timeout     time.Duration // HTTP request timeout
	Seed        int64         // RNG seed for reproducible runs
	Verbose     bool          // Enable verbose logging
}

// Stats holds simulation statistics.
type Stats struct {
	ShotsFired     int
	ShotsMatched   int
	ShotsMismatch  int
	ScoreHistogram map[int]int
	StartTime      time.Time
	Duration       time.Duration
}
