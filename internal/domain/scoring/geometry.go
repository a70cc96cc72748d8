package scoring

import (
	"fmt"

	"github.com/PatiFroNati/shot-plot-app/internal/domain/catalog"
)

// Geometry describes a square canvas and its millimeter scale for one target.
// The scale maps the largest ring diameter onto the full canvas edge.
type Geometry struct {
	CanvasSizePX float64
	CenterPX     float64
	PixelsPerMM  float64
}

// DeriveGeometry computes the canvas geometry for a ring set. It must be
// recomputed whenever the selected target changes because the largest ring
// diameter differs per target.
func DeriveGeometry(canvasSizePx float64, rings []catalog.Ring) (Geometry, error) {
	if canvasSizePx <= 0 {
		return Geometry{}, fmt.Errorf("%w: canvas size %v", ErrInvalidGeometry, canvasSizePx)
	}
	if len(rings) == 0 {
		return Geometry{}, fmt.Errorf("%w: no rings to derive geometry from", catalog.ErrInvalidSpec)
	}

	var maxD float64
	for _, r := range rings {
		if r.DiameterMM > maxD {
			maxD = r.DiameterMM
		}
	}
	if maxD <= 0 {
		return Geometry{}, fmt.Errorf("%w: max ring diameter %v", ErrInvalidGeometry, maxD)
	}

	return Geometry{
		CanvasSizePX: canvasSizePx,
		CenterPX:     canvasSizePx / 2,
		PixelsPerMM:  canvasSizePx / maxD,
	}, nil
}
