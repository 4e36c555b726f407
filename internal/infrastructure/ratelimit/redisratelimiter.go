package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter counts hits per fixed window with INCR. The first hit of a
// window sets the expiry, so the counter resets Window after it started.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, rule Rule) (Result, error) {
	if !rule.Enabled() {
		return Result{Allowed: true}, nil
	}

	redisKey := l.getKey(key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, rule.Window)
	ttl := pipe.PTTL(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return evaluate(incr.Val(), rule, ttl.Val()), nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return fmt.Sprintf("ratelimit:%s", identifier)
}
