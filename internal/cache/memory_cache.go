package cache

import (
	"context"
	"sync"
	"time"
)

type item[V any] struct {
	value      V
	expiration int64 // Unix nanoseconds; zero = no expire
}

type shard[V any] struct {
	sync.RWMutex
	items map[string]item[V]
}

// EvictFunc is called with every entry dropped because its TTL ran out.
// It runs outside shard locks.
type EvictFunc[V any] func(key string, value V)

type MemoryCache[V any] struct {
	shards []*shard[V]
	quit   chan struct{}

	evictMu sync.RWMutex
	onEvict EvictFunc[V]
}

// NewMemoryCache creates a 256-shard cache with a 1s janitor by default.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithOptions[V](256, 1*time.Second)
}

// NewMemoryCacheWithOptions allows customizing shard count & janitor interval.
func NewMemoryCacheWithOptions[V any](shardCount int, janitorInterval time.Duration) *MemoryCache[V] {
	mc := &MemoryCache[V]{
		shards: make([]*shard[V], shardCount),
		quit:   make(chan struct{}),
	}
	for i := 0; i < shardCount; i++ {
		mc.shards[i] = &shard[V]{items: make(map[string]item[V])}
	}
	go mc.startJanitor(janitorInterval)
	return mc
}

// OnEvict registers fn to be told about expired entries.
func (mc *MemoryCache[V]) OnEvict(fn EvictFunc[V]) {
	mc.evictMu.Lock()
	mc.onEvict = fn
	mc.evictMu.Unlock()
}

// Stop terminates the janitor goroutine and releases resources.
func (mc *MemoryCache[V]) Stop() {
	select {
	case <-mc.quit:
	default:
		close(mc.quit)
	}
}

// Len returns the number of stored entries, expired ones included until swept.
func (mc *MemoryCache[V]) Len() int {
	n := 0
	for _, s := range mc.shards {
		s.RLock()
		n += len(s.items)
		s.RUnlock()
	}
	return n
}

func (mc *MemoryCache[V]) getShard(key string) *shard[V] {
	h := fnv32(key)
	return mc.shards[int(h%uint32(len(mc.shards)))]
}

func fnv32(key string) uint32 {
	const offset = 2166136261
	const prime = 16777619
	h := uint32(offset)
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= prime
	}
	return h
}

// Get does an atomic lock/unlock to avoid the RLock→Lock race.
func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V
	now := time.Now().UnixNano()
	s := mc.getShard(key)

	s.Lock()
	itm, ok := s.items[key]
	if ok && itm.expired(now) {
		delete(s.items, key)
		s.Unlock()
		mc.evicted(key, itm.value)
		return zero, ErrCacheMiss
	}
	s.Unlock()

	if !ok {
		return zero, ErrCacheMiss
	}
	return itm.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixNano()
	}
	s := mc.getShard(key)
	s.Lock()
	s.items[key] = item[V]{value: value, expiration: exp}
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	s := mc.getShard(key)
	s.Lock()
	delete(s.items, key)
	s.Unlock()
	return nil
}

func (itm item[V]) expired(now int64) bool {
	return itm.expiration > 0 && now > itm.expiration
}

func (mc *MemoryCache[V]) evicted(key string, value V) {
	mc.evictMu.RLock()
	fn := mc.onEvict
	mc.evictMu.RUnlock()
	if fn != nil {
		fn(key, value)
	}
}

func (mc *MemoryCache[V]) sweep(now int64) {
	type entry struct {
		key   string
		value V
	}
	for _, s := range mc.shards {
		var dropped []entry
		s.Lock()
		for k, itm := range s.items {
			if itm.expired(now) {
				delete(s.items, k)
				dropped = append(dropped, entry{k, itm.value})
			}
		}
		s.Unlock()
		for _, e := range dropped {
			mc.evicted(e.key, e.value)
		}
	}
}

func (mc *MemoryCache[V]) startJanitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			mc.sweep(time.Now().UnixNano())
		case <-mc.quit:
			return
		}
	}
}
