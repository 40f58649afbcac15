package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/goloan/internal/usecase"
)

// DefaultCacheTTL applies when Set is called without a positive TTL, so no
// cached contract outlives a missed invalidation forever.
const DefaultCacheTTL = 15 * time.Minute

// Cache implements usecase.Cache over Redis strings. The contract use case
// keeps the active contract of each company here.
type Cache struct {
	client *redis.Client
	prefix string
}

// NewCache creates a Cache under the goloan:cache: namespace.
func NewCache(client *redis.Client) *Cache {
	return &Cache{
		client: client,
		prefix: "goloan:cache:",
	}
}

// Namespace returns a Cache sharing the client whose keys live under ns.
func (c *Cache) Namespace(ns string) *Cache {
	return &Cache{client: c.client, prefix: c.prefix + ns + ":"}
}

// Get returns usecase.ErrCacheMiss for an absent or expired key.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, usecase.ErrCacheMiss
	}
	return data, err
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
