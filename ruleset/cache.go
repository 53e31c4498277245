package ruleset

import (
	"encoding/hex"
	"sync"

	"github.com/partizangames/cgt/cgt"
)

// Cache is a per-ruleset fingerprint-to-value memoization table
// (spec.md §4.6 step 2). It is safe for concurrent use: the search
// driver shards the outer position enumeration across worker threads
// and all workers share one Cache.
type Cache struct {
	mu sync.RWMutex
	m  map[string]cgt.Value
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{m: make(map[string]cgt.Value)}
}

func key(fingerprint []byte) string {
	return hex.EncodeToString(fingerprint)
}

// Get returns the cached value for fingerprint, if present.
func (c *Cache) Get(fingerprint []byte) (cgt.Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key(fingerprint)]
	return v, ok
}

// Put stores v under fingerprint. A second Put for the same fingerprint
// overwrites (callers are expected to only ever compute one value per
// fingerprint, but concurrent misses computing the same value
// redundantly is harmless: cgt's own interner guarantees the two
// computed Values are handle-equal).
func (c *Cache) Put(fingerprint []byte, v cgt.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key(fingerprint)] = v
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
