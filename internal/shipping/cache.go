package shipping

import (
	"sync"
	"time"
)

type cacheEntry struct {
	cities    []City
	expiresAt time.Time
}

// subregionCache memoizes city lookups per region. Entries expire on read
// after the TTL; there is no active eviction.
type subregionCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

func newSubregionCache(ttl time.Duration) *subregionCache {
	return &subregionCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *subregionCache) get(regionID string) ([]City, bool) {
	c.mu.RLock()
	entry, ok := c.entries[regionID]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.cities, true
}

func (c *subregionCache) put(regionID string, cities []City) {
	c.mu.Lock()
	c.entries[regionID] = cacheEntry{
		cities:    cities,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}
