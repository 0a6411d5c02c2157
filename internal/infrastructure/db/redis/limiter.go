package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter is a fixed-window attempt counter backed by Redis.
// Key format: login:<key>
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter allows maxAttempts per key in each window.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow records an attempt for key and reports whether it is within the
// limit. When it is not, retryAfter is the number of seconds until the
// window resets.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	k := l.key(key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, l.window)
	ttl := pipe.TTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("login limiter: %w", err)
	}

	if incr.Val() <= int64(l.maxAttempts) {
		return true, 0, nil
	}

	retry := int(ttl.Val().Round(time.Second) / time.Second)
	if retry <= 0 {
		retry = int(l.window / time.Second)
	}
	return false, retry, nil
}

func (l *LoginLimiter) key(key string) string {
	return "login:" + key
}
