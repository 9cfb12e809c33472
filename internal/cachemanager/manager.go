// Package cachemanager provides a small generic caching layer used to avoid
// re-parsing roster data files on every read. Entries expire on a TTL and
// are refreshed whenever a file is rewritten.
package cachemanager

import (
	"context"
	"time"
)

type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
