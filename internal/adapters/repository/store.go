// Package repository defines the session store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/PatiFroNati/shot-plot-app/internal/domain/shotlog"
)

// Session is one user's view of a target: the selected target name and the
// shot log it owns. Sessions are independent; there is no shared mutable
// state between them.
type Session struct {
	ID         string
	TargetName string
	CreatedAt  time.Time
	LastSeen   time.Time
	Log        *shotlog.Log
}

// Store provides access to live sessions.
type Store interface {
	// Put inserts or replaces a session.
	// Returns ErrStoreFull when the capacity bound would be exceeded.
	Put(ctx context.Context, s *Session) error

	// Get returns the session by id and refreshes its LastSeen time.
	// Returns ErrNotFound if the session is unknown.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session. Unknown ids are ignored.
	Delete(ctx context.Context, id string)

	// Count returns the number of live sessions.
	Count(ctx context.Context) int
}
