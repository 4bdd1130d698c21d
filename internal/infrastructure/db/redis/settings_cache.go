package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 5 * time.Minute

// SettingsCache caches serialized settings documents in Redis.
// Key format: settings:<category>
type SettingsCache struct {
	client *redis.Client
}

// NewSettingsCache creates a SettingsCache wrapping the given Redis client.
func NewSettingsCache(client *redis.Client) *SettingsCache {
	return &SettingsCache{client: client}
}

// Get returns the cached blob for a category, or (nil, nil) on a miss.
func (c *SettingsCache) Get(ctx context.Context, category string) ([]byte, error) {
	blob, err := c.client.Get(ctx, c.key(category)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings cache get: %w", err)
	}
	return blob, nil
}

// Set stores the blob for a category (expires after cacheTTL).
func (c *SettingsCache) Set(ctx context.Context, category string, blob []byte) error {
	return c.client.Set(ctx, c.key(category), blob, cacheTTL).Err()
}

// Invalidate drops the cached blob for a category.
func (c *SettingsCache) Invalidate(ctx context.Context, category string) error {
	return c.client.Del(ctx, c.key(category)).Err()
}

func (c *SettingsCache) key(category string) string {
	return fmt.Sprintf("settings:%s", category)
}
