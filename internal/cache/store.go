package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt int64
}

// Store is a thread-safe TTL cache. The API layer uses it to avoid
// re-scoring the same URL on every request.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// Assessments is the shared process-wide cache instance.
var Assessments = New()

func New() *Store {
	return &Store{entries: make(map[string]entry)}
}

// Set stores value under key for the given TTL.
func (s *Store) Set(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl).UnixNano(),
	}
}

// Get retrieves a live value. Expired entries read as absent; eviction
// happens lazily here and in bulk via Cleanup.
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, found := s.entries[key]
	if !found || time.Now().UnixNano() > e.expiresAt {
		return nil, false
	}
	return e.value, true
}

// Cleanup drops every expired entry.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixNano()
	for k, e := range s.entries {
		if now > e.expiresAt {
			delete(s.entries, k)
		}
	}
}

// StartCleanup launches a goroutine that evicts expired entries every
// interval and exits when ctx is cancelled.
func (s *Store) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}
