// internal/core/ports/cache.go
package ports

import (
	"context"
	"time"
)

// CacheRepository caches computed report results. It must never hold
// inventory quantities used for decisions.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	GetOrSet(ctx context.Context, key string, dest interface{},
		fetch func() (interface{}, error), ttl time.Duration) error
	Ping(ctx context.Context) error
}
