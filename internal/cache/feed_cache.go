// Package cache holds the snapshot cache for the global feed's first page.
// Only that one scope/page combination is ever cached; everything else is
// recomposed on every read.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is how long a snapshot is served before it goes stale.
const DefaultTTL = 20 * time.Second

// Clock abstracts time so tests can move it without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FeedCache keeps one rendered payload with a fixed TTL. Expiry is checked
// on every read; there is no background eviction. Writes to the underlying
// store never invalidate it — only TTL or an explicit Clear does.
type FeedCache struct {
	mu       sync.RWMutex
	clock    Clock
	ttl      time.Duration
	data     []byte
	storedAt time.Time
	valid    bool
}

// NewFeedCache builds a cache with the given TTL; ttl <= 0 falls back to
// DefaultTTL and a nil clock falls back to real time.
func NewFeedCache(ttl time.Duration, clock Clock) *FeedCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &FeedCache{clock: clock, ttl: ttl}
}

// Get returns the cached payload if one is stored and still fresh.
func (c *FeedCache) Get() ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid || c.expiredLocked() {
		return nil, false
	}
	return c.data, true
}

// Set stores a payload and restarts the TTL window.
func (c *FeedCache) Set(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
	c.storedAt = c.clock.Now()
	c.valid = true
}

// Clear drops the snapshot immediately; the next read recomputes.
func (c *FeedCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	c.valid = false
}

// IsExpired reports whether the stored snapshot has outlived its TTL.
// An empty cache counts as expired.
func (c *FeedCache) IsExpired() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.valid || c.expiredLocked()
}

func (c *FeedCache) expiredLocked() bool {
	return c.clock.Now().Sub(c.storedAt) >= c.ttl
}
