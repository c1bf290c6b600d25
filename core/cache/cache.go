package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Entry is a cached value together with its build time.
type Entry struct {
	// Value is the cached value.
	Value any

	// Built is the timestamp when this entry was loaded.
	Built time.Time

	// TTL is the time-to-live for this entry.
	TTL time.Duration
}

// IsExpired returns true if this entry has expired based on its TTL.
func (e *Entry) IsExpired() bool {
	if e.TTL == 0 {
		return true // No caching
	}
	return time.Since(e.Built) > e.TTL
}

// LoadFunc produces the value for a key on a cache miss.
type LoadFunc func() (any, error)

// Store holds cached values keyed by string.
// Concurrent misses for the same key share one load (singleflight).
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	sf      singleflight.Group
	ttl     time.Duration
}

// New creates a store whose entries live for ttl. A zero ttl disables caching:
// every call loads, but concurrent loads for one key are still collapsed.
func New(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*Entry),
		ttl:     ttl,
	}
}

// GetOrLoad returns the cached value for key, or loads and stores it when
// missing or expired. Load errors are returned and never cached.
func (s *Store) GetOrLoad(key string, load LoadFunc) (any, error) {
	// Fast path: check if entry exists and is fresh
	s.mu.RLock()
	entry, exists := s.entries[key]
	s.mu.RUnlock()

	if exists && !entry.IsExpired() {
		return entry.Value, nil
	}

	// Slow path: load using singleflight to prevent stampedes
	result, err, _ := s.sf.Do(key, func() (any, error) {
		s.mu.RLock()
		entry, exists := s.entries[key]
		s.mu.RUnlock()

		if exists && !entry.IsExpired() {
			return entry.Value, nil
		}

		value, err := load()
		if err != nil {
			return nil, err
		}

		if s.ttl > 0 {
			s.mu.Lock()
			s.entries[key] = &Entry{Value: value, Built: time.Now(), TTL: s.ttl}
			s.mu.Unlock()
		}

		return value, nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// Invalidate removes the entry for key from the store.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
