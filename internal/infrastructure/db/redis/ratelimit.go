package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLimit  = 5
	defaultWindow = time.Minute
)

// RateLimiter is a fixed-window per-user limiter for the generation
// endpoint. Key format: ratelimit:generate:<user_id>.
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a RateLimiter wrapping the given Redis client.
// Non-positive limit or window fall back to the defaults.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &RateLimiter{client: client, limit: int64(limit), window: window}
}

// Allow reports whether the user may issue another generation request in
// the current window.
func (l *RateLimiter) Allow(ctx context.Context, userID string) (bool, error) {
	key := l.key(userID)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	// First hit in the window owns the expiry.
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return n <= l.limit, nil
}

func (l *RateLimiter) key(userID string) string {
	return fmt.Sprintf("ratelimit:generate:%s", userID)
}
