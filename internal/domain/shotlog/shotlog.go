// Package shotlog keeps the ordered record of scored shots for one session.
//
// The log is scoped to one target selection: switching targets clears it,
// because mm offsets and scores under different ring sets are not comparable.
// It is append-only apart from explicit clears. The log is not safe for
// concurrent use; each session owns exactly one log and serializes access.
package shotlog

import (
	"github.com/PatiFroNati/shot-plot-app/internal/domain/scoring"
)

// Shot is one recorded click with its derived position and score.
// Index is 1-based and equals the shot's position in the log at creation
// time; it is never renumbered.
type Shot struct {
	Index  int
	Score  int
	XMM    float64
	YMM    float64
	PixelX float64
	PixelY float64
}

// Log is the ordered shot record for the currently selected target.
type Log struct {
	target string
	shots  []Shot
}

// New creates an empty log bound to a target.
func New(targetName string) *Log {
	return &Log{target: targetName}
}

// Append records a scored click and returns the created shot.
// The score is taken as-is from the scoring result; it is never recomputed
// later, even if the catalog changes.
func (l *Log) Append(res scoring.Result, pixelX, pixelY float64) Shot {
	s := Shot{
		Index:  len(l.shots) + 1,
		Score:  res.Score,
		XMM:    res.XMM,
		YMM:    res.YMM,
		PixelX: pixelX,
		PixelY: pixelY,
	}
	l.shots = append(l.shots, s)
	return s
}

// Clear discards all shots. Idempotent; the next append restarts at index 1.
func (l *Log) Clear() {
	l.shots = nil
}

// SetTarget switches the active target. When the name differs from the
// current one the log is cleared; it reports whether a clear happened.
func (l *Log) SetTarget(name string) bool {
	if name == l.target {
		return false
	}
	l.target = name
	l.Clear()
	return true
}

// Target returns the name of the target the log is bound to.
func (l *Log) Target() string {
	return l.target
}

// Len returns the number of recorded shots.
func (l *Log) Len() int {
	return len(l.shots)
}

// Shots returns a copy of the log in insertion order.
func (l *Log) Shots() []Shot {
	out := make([]Shot, len(l.shots))
	copy(out, l.shots)
	return out
}
