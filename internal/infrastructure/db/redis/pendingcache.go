package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pendingCountKey = "hris:change_requests:pending_count"
	pendingCountTTL = 30 * time.Second
)

// PendingCountCache caches the reviewer dashboard badge count. The TTL is
// short and every workflow mutation invalidates the key, so a stale badge
// lives at most pendingCountTTL.
type PendingCountCache struct {
	client *redis.Client
}

// NewPendingCountCache creates a PendingCountCache wrapping the given
// Redis client.
func NewPendingCountCache(client *redis.Client) *PendingCountCache {
	return &PendingCountCache{client: client}
}

// Get returns the cached count and whether the key was present.
func (c *PendingCountCache) Get(ctx context.Context) (int64, bool, error) {
	val, err := c.client.Get(ctx, pendingCountKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("pending count get: %w", err)
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("pending count parse: %w", err)
	}
	return n, true, nil
}

// Set records the count (expires after pendingCountTTL).
func (c *PendingCountCache) Set(ctx context.Context, n int64) error {
	return c.client.Set(ctx, pendingCountKey, strconv.FormatInt(n, 10), pendingCountTTL).Err()
}

// Invalidate drops the cached count after a workflow mutation.
func (c *PendingCountCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, pendingCountKey).Err()
}
