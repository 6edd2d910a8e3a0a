package cache

import (
	"sync"
	"sync/atomic"
)

// ShardCount is the number of independently locked shards.
// Must be a power of 2 for fast modulo via bitwise AND.
const ShardCount = 16

const shardMask = ShardCount - 1

// DefaultCapacity is the per-shard entry limit used when none is given.
const DefaultCapacity = 1024

// Hasher maps a key to the hash used for shard selection.
type Hasher[K any] func(K) uint64

// ColorHasher spreads a packed 0xAARRGGBB color across shards.
// Neighbouring colors differ in their low bits, so the value is mixed
// (splitmix64 finalizer) before the shard mask is applied.
func ColorHasher(argb uint32) uint64 {
	x := uint64(argb)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Sharded is a thread-safe LRU cache split into ShardCount shards.
//
// It backs color-name lookups: the same handful of colors is named over and
// over while a channel is being stepped, from whichever goroutine the host
// calls in on.
type Sharded[K comparable, V any] struct {
	shards   [ShardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	lru     lruList[K]
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// NewSharded creates a cache holding up to capacity entries per shard.
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &Sharded[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]*entry[K, V])}
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get returns the cached value for key and marks it most recently used.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	c.hits.Add(1)
	return e.value, true
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs with the shard lock held, so concurrent callers asking for the
// same key compute it once. Keep it fast.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}

	c.misses.Add(1)
	value := create()
	c.insertLocked(s, key, value)
	return value
}

// Set stores value under key, evicting the least recently used entries of
// the shard if it is full.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.value = value
		s.lru.MoveToFront(e.node)
		return
	}
	c.insertLocked(s, key, value)
}

func (c *Sharded[K, V]) insertLocked(s *shard[K, V], key K, value V) {
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}
	s.entries[key] = &entry[K, V]{value: value, node: s.lru.PushFront(key)}
}

// Clear drops every entry. Statistics are kept.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Capacity  int // per shard
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns the current counters.
func (c *Sharded[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
