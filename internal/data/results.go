package data

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// resultEntry is one stored computation keyed by ID.
type resultEntry struct {
	payload   any
	expiresAt time.Time
}

// ResultStore keeps recently computed results in memory so the API can serve
// follow-up requests (e.g. fetching the yearly ledger of an earlier run) by
// ID. Entries expire after a TTL; this is a convenience buffer, not
// persistence.
type ResultStore struct {
	mu    sync.RWMutex
	store map[string]resultEntry
	ttl   time.Duration
}

// DefaultResultTTL bounds how long a computed result stays retrievable.
const DefaultResultTTL = 1 * time.Hour

// NewResultStore creates a result store with the given TTL (DefaultResultTTL
// if ttl <= 0) and starts a background sweep of expired entries.
func NewResultStore(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	s := &ResultStore{
		store: make(map[string]resultEntry),
		ttl:   ttl,
	}
	go s.sweep()
	return s
}

// Put stores a payload and returns its generated ID.
func (s *ResultStore) Put(payload any) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[id] = resultEntry{
		payload:   payload,
		expiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get retrieves a stored payload. Expired entries are treated as absent.
func (s *ResultStore) Get(id string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.store[id]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.payload, true
}

// Len reports the number of live entries.
func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	now := time.Now()
	for _, entry := range s.store {
		if now.Before(entry.expiresAt) {
			n++
		}
	}
	return n
}

// Clear removes all entries.
func (s *ResultStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = make(map[string]resultEntry)
}

// sweep periodically removes expired entries.
func (s *ResultStore) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, entry := range s.store {
			if now.After(entry.expiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}
