// Package ratelimit throttles outbound email issuance with Redis. The
// limiter degrades gracefully: with no Redis client configured every check
// passes, so a cache outage never blocks signups or password resets.
package ratelimit

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type EmailCooldown struct {
	client *redis.Client
	ttl    time.Duration
}

func NewEmailCooldown(client *redis.Client, ttl time.Duration) *EmailCooldown {
	return &EmailCooldown{client: client, ttl: ttl}
}

// Allow reports whether an email of the given kind may be sent to the
// address, and starts the cooldown window when it may. Errors talking to
// Redis count as allowed.
func (c *EmailCooldown) Allow(ctx context.Context, kind, email string) bool {
	if c == nil || c.client == nil {
		return true
	}
	key := "email_cooldown:" + kind + ":" + strings.ToLower(email)
	ok, err := c.client.SetNX(ctx, key, 1, c.ttl).Result()
	if err != nil {
		return true
	}
	return ok
}
