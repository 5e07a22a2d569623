package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value cache with TTL. The catalog service uses
// it for storefront listings; everything else goes straight to the database.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// NoopCache satisfies Cache without storing anything. Used when Redis is not
// configured so services never have to nil-check.
type NoopCache struct{}

func (NoopCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

func (NoopCache) DeletePrefix(_ context.Context, _ string) error {
	return nil
}
