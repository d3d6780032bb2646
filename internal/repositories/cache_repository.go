package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface is the narrow cache port the settings service
// reads through. Redis in production, an in-memory map in tests.
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
