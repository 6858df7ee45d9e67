// Package cache holds the in-process result cache and the cache key scheme
// shared with the durable store.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/vesoapp/veso-backend/internal/models"
)

// Key builds the deterministic cache key for a date+region query. An empty
// region means "all regions".
func Key(date string, region models.Region) string {
	r := string(region)
	if r == "" {
		r = "all"
	}
	return fmt.Sprintf("lottery:%s:%s", date, r)
}

type entry struct {
	set       models.ResultSet
	expiresAt time.Time
}

// Memory is a TTL map cache for result sets. It deduplicates bursts of
// requests for the same query within a session; the durable store covers
// anything longer-lived. Safe for concurrent use; duplicate population is
// last-writer-wins.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// NewMemory creates a memory cache with the given entry TTL.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached set for key, or ok=false on miss or expiry.
func (m *Memory) Get(key string) (models.ResultSet, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || m.now().After(e.expiresAt) {
		return nil, false
	}
	return e.set, true
}

// Put stores a set under key. Empty sets are ignored so a transient scrape
// failure cannot poison later lookups.
func (m *Memory) Put(key string, set models.ResultSet) {
	if len(set) == 0 {
		return
	}
	m.mu.Lock()
	m.entries[key] = entry{set: set, expiresAt: m.now().Add(m.ttl)}
	m.mu.Unlock()
}
