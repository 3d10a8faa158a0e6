package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dreamwell/backend/internal/application/adapter"
)

// redisCache implements the adapter.Cache interface on top of Redis.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis backed cache instance.
func NewRedisCache(client *redis.Client) adapter.Cache {
	return &redisCache{
		client: client,
	}
}

// Get retrieves the value for a key. A missing key is not an error.
func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set stores a value with a time-to-live.
func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key.
func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
