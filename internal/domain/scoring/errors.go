package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrInvalidGeometry = errors.New("invalid canvas geometry")
)
