package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrInvalidSpec = errors.New("invalid target spec")
	ErrNotFound    = errors.New("target not found")
)
