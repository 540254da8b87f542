package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

// LoginThrottle limits login attempts per username with a counter key that
// expires after the window. Key format: login_attempts:<username>
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// Non-positive limits fall back to defaults.
func NewLoginThrottle(client *redis.Client, maxAttempts int64, window time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow counts this attempt and reports whether it is within the limit.
func (t *LoginThrottle) Allow(ctx context.Context, username string) (bool, error) {
	key := t.key(username)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		// first attempt in this window starts the expiry clock
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= t.maxAttempts, nil
}

// Reset clears the attempt counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *LoginThrottle) key(username string) string {
	return "login_attempts:" + username
}
