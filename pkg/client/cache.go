package client

import "sync"

// listCache holds one fetched list per named key. A mutation marks
// the key stale so the next List refetches; nothing is evicted on a
// timer.
type listCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	data  any
	stale bool
}

func newListCache() *listCache {
	return &listCache{entries: map[string]*cacheEntry{}}
}

func (c *listCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || entry.stale {
		return nil, false
	}
	return entry.data, true
}

func (c *listCache) set(key string, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &cacheEntry{data: data}
}

func (c *listCache) markStale(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok {
		entry.stale = true
	}
}
