package simulate

import (
	"context"
	"fmt"
	"math"

	"github.com/PatiFroNati/shot-plot-app/internal/domain/catalog"
	"github.com/PatiFroNati/shot-plot-app/internal/domain/scoring"
	"github.com/PatiFroNati/shot-plot-app/internal/domain/types"
)

// mmTolerance absorbs float formatting differences between the service and
// the local engine. Scores must match exactly.
const mmTolerance = 1e-6

// verifier recomputes expected results through a local scoring engine fed by
// the same catalog document the service uses.
type verifier struct {
	engine *scoring.Engine
	rings  []catalog.Ring
	geo    scoring.Geometry
}

func newVerifier(ctx context.Context, cfg *Config, target string) (*verifier, error) {
	cat, err := catalog.Load(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog for verification: %w", err)
	}
	t, err := cat.Lookup(target)
	if err != nil {
		return nil, err
	}
	engine := scoring.NewEngine()
	geo, err := engine.GeometryFor(t.Name, cfg.CanvasPX, t.Rings)
	if err != nil {
		return nil, err
	}
	return &verifier{engine: engine, rings: t.Rings, geo: geo}, nil
}

// verify checks one returned shot against the local engine.
func (v *verifier) verify(ctx context.Context, cl click, got types.Shot) error {
	want, err := v.engine.Score(ctx, scoring.Input{
		ClickXPX: cl.X,
		ClickYPX: cl.Y,
		Geometry: v.geo,
		Rings:    v.rings,
	})
	if err != nil {
		return fmt.Errorf("local scoring: %w", err)
	}

	if got.Score != want.Score {
		return fmt.Errorf("score mismatch at (%.1f, %.1f): got %d, want %d", cl.X, cl.Y, got.Score, want.Score)
	}
	if math.Abs(got.XMM-want.XMM) > mmTolerance || math.Abs(got.YMM-want.YMM) > mmTolerance {
		return fmt.Errorf("offset mismatch at (%.1f, %.1f): got (%v, %v), want (%v, %v)",
			cl.X, cl.Y, got.XMM, got.YMM, want.XMM, want.YMM)
	}
	return nil
}
