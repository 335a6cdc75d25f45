// Package store provides the session store backends: a process-local map
// for the default single-instance deployment and a Redis-backed variant
// for deployments that need sessions outside process memory.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/beka-birhanu/micromouse-api/game"
)

// entry pairs a session with its turn lock and eviction bookkeeping.
type entry struct {
	mu       sync.Mutex
	session  *game.Session
	lastSeen time.Time
}

// MemoryStore keeps sessions in process memory. Lookup-or-create runs
// under a store-wide lock; each turn then holds that session's own lock,
// so concurrent requests for the same id serialize while distinct
// sessions stay independent. A non-zero TTL evicts idle sessions.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	done    chan struct{}
}

// NewMemoryStore creates a memory store. A zero ttl disables eviction,
// which suits the simulator's short-lived sessions.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*entry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	if ttl > 0 {
		go s.sweep()
	}
	return s
}

// Acquire locks and returns the session for id, creating it if absent.
func (s *MemoryStore) Acquire(_ context.Context, id string) (*game.Session, error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok {
		e = &entry{session: game.NewSession(id)}
		s.entries[id] = e
	}
	e.lastSeen = time.Now()
	s.mu.Unlock()

	e.mu.Lock()
	return e.session, nil
}

// Release unlocks the session taken by Acquire. The state lives in
// process memory, so there is nothing separate to persist.
func (s *MemoryStore) Release(_ context.Context, session *game.Session) error {
	s.mu.Lock()
	e, ok := s.entries[session.ID]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	e.mu.Unlock()
	return nil
}

// Close stops the eviction sweeper.
func (s *MemoryStore) Close() {
	close(s.done)
}

// sweep periodically drops sessions idle for longer than the TTL.
func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, e := range s.entries {
				if now.Sub(e.lastSeen) <= s.ttl {
					continue
				}
				// Never evict a session mid-turn.
				if e.mu.TryLock() {
					delete(s.entries, id)
					e.mu.Unlock()
				}
			}
			s.mu.Unlock()
		}
	}
}
