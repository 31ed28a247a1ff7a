package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache computes values on a miss and stores them. K is derived
// from the input, so equal inputs share one entry.
type ReadThroughCache[K ~string, V any, I any] struct {
	cache           CacheManager[K, V]
	key             func(input I) K
	fn              func(ctx context.Context, input I) (V, error)
	shouldSkipCache bool
}

// NewReadThroughCache wraps cache with a key derivation and a loader.
// shouldSkipCache makes every Get call fn directly.
func NewReadThroughCache[K ~string, V any, I any](
	cache CacheManager[K, V],
	key func(input I) K,
	fn func(ctx context.Context, input I) (V, error),
	shouldSkipCache bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache:           cache,
		key:             key,
		fn:              fn,
		shouldSkipCache: shouldSkipCache,
	}
}

// Get returns the cached value for input, loading and storing it on a miss.
// The second result reports a cache hit. Errors are not cached.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, input I, ttl time.Duration) (V, bool, error) {
	if r.shouldSkipCache {
		v, err := r.fn(ctx, input)
		return v, false, err
	}

	key := r.key(input)
	if value, ok := r.cache.GetWithRefresh(ctx, key, ttl); ok {
		return value, true, nil
	}

	value, err := r.fn(ctx, input)
	if err != nil {
		return value, false, err
	}
	r.cache.Set(ctx, key, value, ttl)
	return value, false, nil
}
