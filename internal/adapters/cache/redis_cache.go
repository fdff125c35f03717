package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// RedisLookupCache is a LookupCache over Redis, for deployments where
// several processes share one external-lookup cache. Expiry is delegated to
// Redis key TTLs, so entries can never be served past their deadline.
type RedisLookupCache struct {
	rdb *redis.Client
}

func NewRedisLookupCache(rdb *redis.Client) *RedisLookupCache {
	return &RedisLookupCache{rdb: rdb}
}

// NewRedisLookupCacheFromURL connects using a redis:// URL.
func NewRedisLookupCacheFromURL(url string) (*RedisLookupCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis lookup cache: parse url: %w", err)
	}
	return &RedisLookupCache{rdb: redis.NewClient(opt)}, nil
}

func (c *RedisLookupCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis lookup cache: get %q: %w", key, err)
	}
	return value, true, nil
}

func (c *RedisLookupCache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis lookup cache: set %q: %w", key, err)
	}
	return nil
}

func (c *RedisLookupCache) Close() error { return c.rdb.Close() }
