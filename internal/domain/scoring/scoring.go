// Package scoring maps raw canvas clicks to millimeter offsets and ring scores.
package scoring

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/PatiFroNati/shot-plot-app/internal/domain/catalog"
)

// Input carries one click and the geometry/rings in effect when it landed.
type Input struct {
	ClickXPX float64
	ClickYPX float64
	Geometry Geometry
	Rings    []catalog.Ring
}

// Result is the scored click.
type Result struct {
	XMM        float64
	YMM        float64
	DistanceMM float64
	Score      int
}

// Scorer computes a score from a click. Implementations must be pure:
// no I/O and no mutation of inputs.
type Scorer interface {
	// Score computes a score, honoring ctx for cancellation.
	Score(ctx context.Context, in Input) (Result, error)
}

// Engine implements Scorer and memoizes derived geometry per
// (target name, canvas size) pair.
type Engine struct {
	mu       sync.RWMutex
	geoCache map[geoKey]Geometry
}

type geoKey struct {
	target   string
	canvasPX float64
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// NewEngine creates a scoring engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		geoCache: make(map[geoKey]Geometry),
	}

	// Apply all options
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// GeometryFor returns the canvas geometry for a target, deriving and caching
// it on first use. The cache key includes the canvas size because the scale
// factor changes with it.
func (e *Engine) GeometryFor(targetName string, canvasSizePx float64, rings []catalog.Ring) (Geometry, error) {
	key := geoKey{target: targetName, canvasPX: canvasSizePx}

	e.mu.RLock()
	g, ok := e.geoCache[key]
	e.mu.RUnlock()
	if ok {
		return g, nil
	}

	g, err := DeriveGeometry(canvasSizePx, rings)
	if err != nil {
		return Geometry{}, err
	}

	e.mu.Lock()
	e.geoCache[key] = g
	e.mu.Unlock()
	return g, nil
}

// Score maps a pixel click to a millimeter offset from center and the points
// of the innermost ring containing it.
//
// The pixel Y axis grows downward while target coordinates grow upward, so
// the Y offset is inverted. A click exactly on a ring boundary counts as
// inside that ring. A click outside the largest ring scores 0.
func (e *Engine) Score(ctx context.Context, in Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("scoring cancelled: %w", err)
	}
	if in.Geometry.PixelsPerMM <= 0 {
		return Result{}, fmt.Errorf("%w: pixels per mm %v", ErrInvalidGeometry, in.Geometry.PixelsPerMM)
	}
	if len(in.Rings) == 0 {
		return Result{}, fmt.Errorf("%w: no rings to score against", catalog.ErrInvalidSpec)
	}

	dxPx := in.ClickXPX - in.Geometry.CenterPX
	dyPx := in.Geometry.CenterPX - in.ClickYPX

	xMM := dxPx / in.Geometry.PixelsPerMM
	yMM := dyPx / in.Geometry.PixelsPerMM
	distMM := math.Hypot(xMM, yMM)

	return Result{
		XMM:        xMM,
		YMM:        yMM,
		DistanceMM: distMM,
		Score:      scoreAt(distMM, in.Rings),
	}, nil
}

// scoreAt scans rings inside-out and returns the points of the first ring
// whose radius contains the distance. Rings are nested, so the first match
// in ascending diameter order is the innermost containing ring.
func scoreAt(distMM float64, rings []catalog.Ring) int {
	sorted := make([]catalog.Ring, len(rings))
	copy(sorted, rings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DiameterMM < sorted[j].DiameterMM
	})

	for _, r := range sorted {
		if distMM <= r.Radius() {
			return r.Points
		}
	}
	return 0
}
