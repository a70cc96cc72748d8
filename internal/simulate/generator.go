package simulate

import (
	"math/rand"
)

// click is one generated canvas coordinate pair.
type click struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// generateClicks produces n clicks spread over the canvas. Most land inside
// the rings; a margin of the distribution falls outside the largest ring so
// the zero-score path gets exercised too.
func generateClicks(rng *rand.Rand, n int, canvasPX float64) []click {
	clicks := make([]click, n)
	for i := range clicks {
		clicks[i] = click{
			X: rng.Float64() * canvasPX,
			Y: rng.Float64() * canvasPX,
		}
	}
	return clicks
}
