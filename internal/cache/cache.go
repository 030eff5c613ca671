// Package cache provides an in-memory TTL cache for backend responses.
package cache

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"
)

type entry[V any] struct {
	payload   V
	createdAt time.Time
	expiresAt time.Time
}

// Cache memoizes payloads per fingerprint key for a bounded time window.
// An entry is usable iff the lookup time is strictly before its expiry.
//
// Expiry is lazy: there is no eviction goroutine, expired entries simply
// read as misses and are overwritten by the next Put for their key. The
// key space is bounded by the distinct parameter fingerprints ever
// requested, so stale entries lingering in memory is acceptable.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	now     func() time.Time
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return NewWithClock[V](time.Now)
}

// NewWithClock creates a cache using now as its clock. Tests use this to
// advance time without sleeping.
func NewWithClock[V any](now func() time.Time) *Cache[V] {
	return &Cache[V]{entries: make(map[string]entry[V]), now: now}
}

// Get returns the live payload for key. Expired entries read as misses.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.payload, true
}

// Put stores payload under key, overwriting any prior entry.
func (c *Cache[V]) Put(key string, payload V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = entry[V]{
		payload:   payload,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
}

// Invalidate removes the entry for key, if any.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateAll removes every entry. Used when the caller signals that the
// underlying data changed; this read-side cache has no write path of its
// own to invalidate on.
func (c *Cache[V]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

// Fingerprint derives a deterministic cache key from an operation name and
// its parameter set. Map keys are serialized in sorted order so the scheme
// stays collision-free if params gain fields. An empty or nil parameter
// set yields the bare operation name.
func Fingerprint(operation string, params map[string]any) string {
	if len(params) == 0 {
		return operation
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(operation)
	for _, k := range keys {
		v, err := json.Marshal(params[k])
		if err != nil {
			v = []byte("null")
		}
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("=")
		b.Write(v)
	}
	return b.String()
}
