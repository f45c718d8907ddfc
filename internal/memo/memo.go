// Package memo caches results of search subproblems. A subproblem is
// identified by the sorted identities of its live entries and its uncovered
// elements; the active membership of every entry follows from those two.
package memo

import (
	"encoding/binary"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// Cache is a concurrency-safe map from subproblem keys to results.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

// New returns an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]T)}
}

// Get returns the cached result for key.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores value under key. Results are deterministic per key, so a
// concurrent Put of the same key is harmless.
func (c *Cache[T]) Put(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Len returns the number of cached subproblems.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Key encodes sorted entry ids and the uncovered set as a compact string.
// ids must already be sorted ascending.
func Key(ids []int, uncovered *bitset.BitSet) string {
	buf := make([]byte, 0, 2*len(ids)+2*int(uncovered.Count())+1)
	buf = binary.AppendUvarint(buf, uint64(len(ids)))
	for _, id := range ids {
		buf = binary.AppendUvarint(buf, uint64(id))
	}
	for i, ok := uncovered.NextSet(0); ok; i, ok = uncovered.NextSet(i + 1) {
		buf = binary.AppendUvarint(buf, uint64(i))
	}
	return string(buf)
}
