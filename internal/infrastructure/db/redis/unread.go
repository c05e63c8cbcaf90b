package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const unreadTTL = 5 * time.Minute

// UnreadCountCache caches per-user unread message counts in Redis.
// Key format: unread:<user_id>
type UnreadCountCache struct {
	client *redis.Client
}

// NewUnreadCountCache creates an UnreadCountCache wrapping the given client.
func NewUnreadCountCache(client *redis.Client) *UnreadCountCache {
	return &UnreadCountCache{client: client}
}

// Get returns the cached count and whether a cached value existed.
func (c *UnreadCountCache) Get(ctx context.Context, userID string) (int64, bool, error) {
	n, err := c.client.Get(ctx, c.key(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("unread cache get: %w", err)
	}
	return n, true, nil
}

// Set stores the count with a bounded TTL so a missed invalidation heals
// itself.
func (c *UnreadCountCache) Set(ctx context.Context, userID string, count int64) error {
	return c.client.Set(ctx, c.key(userID), count, unreadTTL).Err()
}

// Invalidate drops the cached count; the next read recomputes from the store.
func (c *UnreadCountCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *UnreadCountCache) key(userID string) string {
	return "unread:" + userID
}
