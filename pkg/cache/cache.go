package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrDisabled indicates the cache side channel is not configured
var ErrDisabled = errors.New("cache disabled")

// Cache is a best-effort Redis side channel recording diagnostic refresh
// markers. Its absence or failure never affects ingestion correctness;
// callers log and move on.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache over the given Redis address. Empty address disables
// the side channel entirely.
func New(addr, password string, ttl time.Duration) *Cache {
	if addr == "" {
		return &Cache{}
	}
	if ttl == 0 {
		ttl = time.Hour
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		ttl:    ttl,
	}
}

// Enabled reports whether the side channel is configured
func (c *Cache) Enabled() bool {
	return c.client != nil
}

// RecordRefresh notes that a feed was refreshed at the given time
func (c *Cache) RecordRefresh(ctx context.Context, feedID int64, at time.Time) error {
	if c.client == nil {
		return ErrDisabled
	}
	key := refreshKey(feedID)
	if err := c.client.Set(ctx, key, strconv.FormatInt(at.UnixMilli(), 10), c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// LastRefresh returns the recorded refresh time for a feed, or zero time when
// nothing is recorded
func (c *Cache) LastRefresh(ctx context.Context, feedID int64) (time.Time, error) {
	if c.client == nil {
		return time.Time{}, ErrDisabled
	}
	key := refreshKey(feedID)
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("get %s: %w", key, err)
	}

	ms, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s value %q: %w", key, val, err)
	}
	return time.UnixMilli(ms), nil
}

// Close releases the Redis connection
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func refreshKey(feedID int64) string {
	return fmt.Sprintf("feed:%d:refreshed", feedID)
}
