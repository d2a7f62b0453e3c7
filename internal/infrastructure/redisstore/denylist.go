// Package redisstore backs the token denylist with Redis so revocations
// are shared across instances and survive process restarts. Keys expire
// with the token they revoke.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "auth:denylist:"

// Denylist stores revoked token values keyed by the raw token string.
type Denylist struct {
	client *redis.Client
}

func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client}
}

func (d *Denylist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to revoke.
		return nil
	}
	key := denylistKeyPrefix + token
	if err := d.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("denylist add: %w", err)
	}
	return nil
}

func (d *Denylist) Contains(ctx context.Context, token string) (bool, error) {
	key := denylistKeyPrefix + token
	if err := d.client.Get(ctx, key).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return true, nil
}
