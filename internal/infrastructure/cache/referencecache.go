package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

const (
	referenceKeyPrefix    = "proptech:reference:"
	defaultReferenceTTL   = 5 * time.Minute
	referenceTTLJitterPct = 20 // TTL range: ttl to ttl+20% (anti-stampede)
)

// RedisReferenceCache stores small read-mostly lists (property options,
// technician summaries) as JSON strings.
type RedisReferenceCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewRedisReferenceCache creates a cache whose entries live for ttl plus jitter.
// A non-positive ttl falls back to five minutes.
func NewRedisReferenceCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisReferenceCache {
	if ttl <= 0 {
		ttl = defaultReferenceTTL
	}
	return &RedisReferenceCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func buildReferenceKey(key string) string {
	return referenceKeyPrefix + key
}

// Get decodes the cached value into dest. It reports false on a miss.
func (c *RedisReferenceCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, buildReferenceKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read reference cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// A corrupt entry behaves like a miss and is overwritten on the next Set.
		c.logger.Warnw("discarding undecodable reference cache entry", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (c *RedisReferenceCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal reference cache value: %w", err)
	}

	if err := c.client.Set(ctx, buildReferenceKey(key), data, ttlWithJitter(c.ttl)).Err(); err != nil {
		return fmt.Errorf("failed to write reference cache: %w", err)
	}

	c.logger.Debugw("reference data cached", "key", key)
	return nil
}

func (c *RedisReferenceCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	redisKeys := make([]string, len(keys))
	for i, k := range keys {
		redisKeys[i] = buildReferenceKey(k)
	}

	if err := c.client.Del(ctx, redisKeys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate reference cache: %w", err)
	}

	c.logger.Debugw("reference cache invalidated", "keys", keys)
	return nil
}

func ttlWithJitter(ttl time.Duration) time.Duration {
	maxJitter := int64(ttl) * referenceTTLJitterPct / 100
	if maxJitter <= 0 {
		return ttl
	}
	return ttl + time.Duration(rand.Int64N(maxJitter))
}

// NoopReferenceCache always misses. It is used when Redis is not reachable.
type NoopReferenceCache struct{}

func (NoopReferenceCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (NoopReferenceCache) Set(context.Context, string, interface{}) error         { return nil }
func (NoopReferenceCache) Invalidate(context.Context, ...string) error            { return nil }
