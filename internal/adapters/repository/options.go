package repository

import "time"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithMaxSessions bounds the number of live sessions.
func WithMaxSessions(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithTTL sets the idle lifetime of a session before eviction.
func WithTTL(ttl time.Duration) Option {
	return func(s *MemStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithSweepInterval sets how often the TTL sweeper runs.
func WithSweepInterval(interval time.Duration) Option {
	return func(s *MemStore) {
		if interval > 0 {
			s.sweepInterval = interval
		}
	}
}
