package cachemanager

import "time"

// ReadThroughCache fills misses by calling fn and caching its result.
// Errors are returned and not cached.
type ReadThroughCache[V any, I any] struct {
	cache CacheManager[V]
	fn    func(input I) (V, error)
	ttl   time.Duration
}

// NewReadThroughCache wraps cache with a loader.
func NewReadThroughCache[V any, I any](cache CacheManager[V], ttl time.Duration, fn func(input I) (V, error)) *ReadThroughCache[V, I] {
	return &ReadThroughCache[V, I]{cache: cache, fn: fn, ttl: ttl}
}

// Get returns the cached value for key or loads it from input.
func (r *ReadThroughCache[V, I]) Get(key string, input I) (V, error) {
	if value, ok := r.cache.Get(key); ok {
		return value, nil
	}

	value, err := r.fn(input)
	if err != nil {
		return value, err
	}
	r.cache.Set(key, value, r.ttl)
	return value, nil
}
