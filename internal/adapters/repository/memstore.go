package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/PatiFroNati/shot-plot-app/pkg/metrics"
)

// Default store configuration constants.
const (
	defaultMaxSessions   = 1024
	defaultSessionTTL    = 4 * time.Hour
	defaultSweepInterval = time.Minute
)

// MemStore implements Store with an in-memory map and TTL eviction.
type MemStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	maxSessions   int
	ttl           time.Duration
	sweepInterval time.Duration

	stopCh chan struct{}
	once   sync.Once
}

// NewMemStore creates a session store and starts its TTL sweeper. The
// sweeper stops when ctx is cancelled or Close is called.
func NewMemStore(ctx context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		sessions:      make(map[string]*Session),
		maxSessions:   defaultMaxSessions,
		ttl:           defaultSessionTTL,
		sweepInterval: defaultSweepInterval,
		stopCh:        make(chan struct{}),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	go s.sweepLoop(ctx)

	return s
}

// Put inserts or replaces a session.
func (s *MemStore) Put(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.ID]; !exists && len(s.sessions) >= s.maxSessions {
		return fmt.Errorf("%w: limit %d", ErrStoreFull, s.maxSessions)
	}
	s.sessions[sess.ID] = sess
	metrics.UpdateActiveSessions(len(s.sessions))
	return nil
}

// Get returns the session by id and refreshes its LastSeen time.
func (s *MemStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	sess.LastSeen = time.Now()
	return sess, nil
}

// Delete removes a session. Unknown ids are ignored.
func (s *MemStore) Delete(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	metrics.UpdateActiveSessions(len(s.sessions))
}

// Count returns the number of live sessions.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the TTL sweeper.
func (s *MemStore) Close() error {
	s.once.Do(func() { close(s.stopCh) })
	return nil
}

// sweepLoop evicts sessions idle longer than the TTL.
func (s *MemStore) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

// sweep removes sessions whose LastSeen is older than the TTL.
func (s *MemStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen) > s.ttl {
			delete(s.sessions, id)
			metrics.RecordSessionEvicted()
		}
	}
	metrics.UpdateActiveSessions(len(s.sessions))
}
