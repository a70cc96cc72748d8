package simulate

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/PatiFroNati/shot-plot-app/pkg/logger"
)

// Run executes a complete simulation: open a session, fire generated clicks,
// and verify every returned score against the local engine.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	stats := &Stats{
		ScoreHistogram: make(map[int]int),
		StartTime:      time.Now(),
	}
	log := logger.Get()

	log.Info(ctx, "starting shot simulation",
		logger.String("baseURL", cfg.BaseURL),
		logger.String("target", cfg.Target),
		logger.Int("shots", cfg.NumShots),
		logger.Float64("canvasPx", cfg.CanvasPX),
	)

	c := newClient(cfg.BaseURL, cfg.Timeout)
	if err := c.checkHealth(); err != nil {
		return stats, err
	}

	target := cfg.Target
	if target == "" {
		targets, err := c.listTargets()
		if err != nil {
			return stats, err
		}
		if len(targets) == 0 {
			return stats, fmt.Errorf("service catalog is empty")
		}
		target = targets[0].Name
		log.Info(ctx, "no target given, using first catalog entry", logger.String("target", target))
	}

	state, err := c.openSession(target)
	if err != nil {
		return stats, fmt.Errorf("open session: %w", err)
	}
	if state.CanvasSizePX != cfg.CanvasPX {
		return stats, fmt.Errorf("canvas mismatch: service uses %v px, local verification assumes %v px",
			state.CanvasSizePX, cfg.CanvasPX)
	}

	v, err := newVerifier(ctx, cfg, state.Target)
	if err != nil {
		return stats, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // reproducible simulation, not crypto
	clicks := generateClicks(rng, cfg.NumShots, cfg.CanvasPX)

	for i, cl := range clicks {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("simulation cancelled: %w", err)
		}

		shot, err := c.fireShot(state.SessionID, cl)
		if err != nil {
			return stats, fmt.Errorf("shot %d: %w", i+1, err)
		}
		stats.ShotsFired++
		stats.ScoreHistogram[shot.Score]++

		if err := v.verify(ctx, cl, shot); err != nil {
			stats.ShotsMismatch++
			log.Warn(ctx, "verification mismatch", logger.Int("shot", shot.Index), logger.Error(err))
			continue
		}
		stats.ShotsMatched++

		if cfg.Verbose {
			log.Info(ctx, "shot verified",
				logger.Int("shot", shot.Index),
				logger.Int("score", shot.Score),
				logger.Float64("xMM", shot.XMM),
				logger.Float64("yMM", shot.YMM),
			)
		}
	}

	stats.Duration = time.Since(stats.StartTime)
	log.Info(ctx, "simulation finished",
		logger.Int("fired", stats.ShotsFired),
		logger.Int("matched", stats.ShotsMatched),
		logger.Int("mismatched", stats.ShotsMismatch),
		logger.Duration("duration", stats.Duration),
	)
	for score, count := range stats.ScoreHistogram {
		log.Debug(ctx, "score bucket", logger.Int("score", score), logger.Int("count", count))
	}

	if stats.ShotsMismatch > 0 {
		return stats, fmt.Errorf("%d of %d shots disagreed with local scoring", stats.ShotsMismatch, stats.ShotsFired)
	}
	return stats, nil
}
