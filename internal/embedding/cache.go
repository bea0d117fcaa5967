package embedding

import (
	"encoding/hex"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// ContentHash fingerprints accomplishment text for cache invalidation.
func ContentHash(text string) string {
	sum := blake2b.Sum256([]byte(text))
	return hex.EncodeToString(sum[:16])
}

type cacheEntry struct {
	hash string
	vec  []float32
}

// Cache holds one vector per accomplishment id, valid only while the
// content hash matches. It is owned by a single scorer.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	hits    int
	misses  int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Get returns the vector for id if it was stored for the same content hash.
func (c *Cache) Get(id, hash string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	if !ok || e.hash != hash {
		c.misses++
		return nil, false
	}
	c.hits++
	return e.vec, true
}

// Put stores a vector, replacing any entry for id.
func (c *Cache) Put(id, hash string, vec []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = cacheEntry{hash: hash, vec: vec}
}

// Invalidate drops the entry for id.
func (c *Cache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of cached vectors.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns hit and miss counts since creation.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
