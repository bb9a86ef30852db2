// Package cachemanager wraps go-cache with typed accessors. sketchpad keeps
// font faces and rendered preview frames in it.
package cachemanager

import "time"

// CacheManager is a typed string-keyed cache.
type CacheManager[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
	Delete(keys ...string)
	Flush()
	Len() int
}
