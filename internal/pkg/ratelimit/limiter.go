// internal/pkg/ratelimit/limiter.go
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter tracks failed credential checks per identity.
type Limiter interface {
	// Locked reports whether key has used up its attempts for the current window.
	Locked(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

type RedisLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

func NewRedisLimiter(client *redis.Client, maxAttempts int64, window time.Duration) *RedisLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RedisLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

func loginKey(key string) string {
	return fmt.Sprintf("ratelimit:login:%s", key)
}

func (r *RedisLimiter) Locked(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Get(ctx, loginKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get login attempts: %w", err)
	}
	return count >= r.maxAttempts, nil
}

// RecordFailure counts one failed attempt. The window starts at the first failure.
func (r *RedisLimiter) RecordFailure(ctx context.Context, key string) error {
	k := loginKey(key)

	count, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("failed to increment login attempt: %w", err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, k, r.window).Err(); err != nil {
			return fmt.Errorf("failed to set login attempt expiry: %w", err)
		}
	}
	return nil
}

func (r *RedisLimiter) Reset(ctx context.Context, key string) error {
	return r.client.Del(ctx, loginKey(key)).Err()
}
