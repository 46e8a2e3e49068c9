package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ClaimCache implements ports.ClaimCache using Redis. The first
// successful claim response is cached by claim token so webhook retries
// and double-clicks see the original result without touching Postgres.
type ClaimCache struct {
	client *goredis.Client
	prefix string
}

// NewClaimCache creates a new Redis-backed claim cache.
func NewClaimCache(client *goredis.Client) *ClaimCache {
	return &ClaimCache{
		client: client,
		prefix: "claim:",
	}
}

// Get retrieves a cached claim response by claim token.
// Returns nil, nil if the token has no cached response.
func (c *ClaimCache) Get(ctx context.Context, claimToken string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+claimToken).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis claim get: %w", err)
	}
	return val, nil
}

// Set stores a claim response with TTL.
func (c *ClaimCache) Set(ctx context.Context, claimToken string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+claimToken, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis claim set: %w", err)
	}
	return nil
}
