package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/golang/groupcache/singleflight"
)

// Cache is a TTL cache whose loads are de-duplicated per key, so concurrent
// page renders for the same project trigger a single upstream fetch.
type Cache[V any] struct {
	cache *ristretto.Cache[string, V]
	group singleflight.Group
	ttl   time.Duration
}

func (c *Cache[V]) Get(key string) (V, bool) {
	return c.cache.Get(key)
}

func (c *Cache[V]) Set(key string, value V) bool {
	ok := c.cache.SetWithTTL(key, value, 1, c.ttl)
	c.cache.Wait()
	return ok
}

// ComputeIfAbsent returns the cached value of key, or loads it with f.
// Failed loads are not cached.
func (c *Cache[V]) ComputeIfAbsent(key string, f func() (V, error)) (V, error) {
	v, ok := c.cache.Get(key)
	if ok {
		return v, nil
	}
	cv, err := c.group.Do(key, func() (any, error) {
		r, err := f()
		if err != nil {
			return nil, err
		}
		c.Set(key, r)
		return r, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return cv.(V), nil
}

func (c *Cache[V]) Delete(key string) {
	c.cache.Del(key)
}

func (c *Cache[V]) EvictAll() {
	c.cache.Clear()
}

func (c *Cache[V]) Close() {
	c.cache.Close()
}

func NewCache[V any](capacity int64, ttl time.Duration) (*Cache[V], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: capacity * 10,
		MaxCost:     capacity,
		BufferItems: 64,

		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	// ristretto rejects negative TTLs, zero means no expiry
	if ttl < 0 {
		ttl = 0
	}
	return &Cache[V]{
		cache: cache,
		ttl:   ttl,
	}, nil
}
