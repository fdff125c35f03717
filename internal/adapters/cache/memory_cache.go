package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryLookupCache is an in-process LookupCache with per-entry TTL.
// Expiry is lazy (checked on read); call Sweep or SweepEvery to reclaim
// memory from entries that are never read again. Safe for concurrent use.
type MemoryLookupCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryLookupCache() *MemoryLookupCache {
	return &MemoryLookupCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryLookupCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (c *MemoryLookupCache) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{value: value, expiresAt: c.now().Add(ttl)}
	return nil
}

// Sweep removes every expired entry and reports how many were dropped.
func (c *MemoryLookupCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			dropped++
		}
	}
	return dropped
}

// SweepEvery runs Sweep on the given interval until the context is done.
func (c *MemoryLookupCache) SweepEvery(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sweep()
			}
		}
	}()
}
