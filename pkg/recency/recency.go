// Package recency provides a capacity-bounded key/value store that keeps
// its entries ordered by most recent access and evicts the least recently
// accessed entry when the capacity is exceeded.
//
// Unlike a textbook LRU cache, both reads and writes refresh an entry's
// recency, and the capacity bound itself can be changed at any time;
// shrinking it evicts immediately.
package recency

import (
	"container/list"
	"errors"
	"iter"
)

var (
	// ErrInvalidCapacity is returned when a negative capacity is supplied.
	ErrInvalidCapacity = errors.New("recency: capacity must be non-negative")

	// ErrNotFound is returned by Get for a key that is not present.
	ErrNotFound = errors.New("recency: key not found")
)

// Entry is a single key/value pair, used to seed a cache.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type node[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a mapping from K to V ordered from least to most recently
// accessed key. If capacity is positive, the size is bounded by evicting
// the least recently accessed entry on overflow. A capacity of zero means
// unbounded.
//
// Cache is not safe for concurrent use; a shared Cache must be guarded by
// a single lock covering every operation, Get included (it mutates the
// access order).
type Cache[K comparable, V any] struct {
	capacity int
	order    *list.List // Front = least recently accessed, Back = most recent.
	index    map[K]*list.Element
}

// New creates an empty Cache with the given capacity.
// A capacity of zero disables eviction; a negative capacity is rejected
// with ErrInvalidCapacity.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[K]*list.Element),
	}, nil
}

// NewFrom creates a Cache seeded with entries, inserted in the given order
// (the first entry becomes the least recently accessed). If the entries
// exceed a positive capacity, the oldest ones are evicted.
func NewFrom[K comparable, V any](capacity int, entries []Entry[K, V]) (*Cache[K, V], error) {
	c, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		c.Set(e.Key, e.Value)
	}
	return c, nil
}

// Get returns the value for key and marks it as the most recently
// accessed entry. A miss returns ErrNotFound and leaves the cache
// untouched.
func (c *Cache[K, V]) Get(key K) (V, error) {
	elem, ok := c.index[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	c.order.MoveToBack(elem)
	return elem.Value.(*node[K, V]).value, nil
}

// Set inserts or replaces the value for key and marks it as the most
// recently accessed entry. If a positive capacity is exceeded, the least
// recently accessed entries are evicted until the bound holds.
func (c *Cache[K, V]) Set(key K, value V) {
	if elem, ok := c.index[key]; ok {
		elem.Value.(*node[K, V]).value = value
		c.order.MoveToBack(elem)
		return
	}
	c.index[key] = c.order.PushBack(&node[K, V]{key: key, value: value})
	c.evictOverflow()
}

// SetCapacity changes the capacity bound. Shrinking below the current
// size immediately evicts the least recently accessed entries; setting
// zero switches to unbounded mode without touching existing entries.
// The recency order of surviving entries is unchanged.
func (c *Cache[K, V]) SetCapacity(capacity int) error {
	if capacity < 0 {
		return ErrInvalidCapacity
	}
	c.capacity = capacity
	c.evictOverflow()
	return nil
}

func (c *Cache[K, V]) evictOverflow() {
	if c.capacity <= 0 {
		return
	}
	for c.order.Len() > c.capacity {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(*node[K, V]).key)
	}
}

// Contains reports whether key is present without changing the access
// order.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Peek returns the value for key without changing the access order.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	elem, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return elem.Value.(*node[K, V]).value, true
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

// Capacity returns the current capacity bound (zero = unbounded).
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns the keys from least to most recently accessed.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*node[K, V]).key)
	}
	return keys
}

// All returns an iterator over the entries from least to most recently
// accessed. Iterating does not refresh recency. Mutating the cache while
// iterating without holding the caller's lock is undefined.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for elem := c.order.Front(); elem != nil; elem = elem.Next() {
			n := elem.Value.(*node[K, V])
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Clear removes all entries, keeping the capacity.
func (c *Cache[K, V]) Clear() {
	c.order.Init()
	clear(c.index)
}
