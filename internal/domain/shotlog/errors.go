package shotlog

import "errors"

// Sentinel kinds for shot log errors.
var (
	ErrEmptyLog = errors.New("shot log is empty")
)
