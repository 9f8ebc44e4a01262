// Package cache provides an optional Redis-backed JSON cache. A nil
// Cache is valid and behaves as a pass-through, so callers never need
// to branch on whether Redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/folio-cms/folio/internal/telemetry"
	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 5 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache over an existing Redis client. A nil client
// yields a nil Cache.
func New(client *redis.Client, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Connect dials Redis from a URL and verifies the connection.
func Connect(ctx context.Context, redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client, ttl), nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// GetJSON loads a cached value into dest. Returns false on miss, on a
// nil cache, or on any Redis or decode failure; failures degrade to a
// direct read and are captured to telemetry.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			telemetry.CaptureError(ctx, fmt.Errorf("cache get %s: %w", key, err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		telemetry.CaptureError(ctx, fmt.Errorf("cache decode %s: %w", key, err))
		return false
	}
	return true
}

// SetJSON stores a value under key with the cache TTL. Failures are
// captured and otherwise ignored.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		telemetry.CaptureError(ctx, fmt.Errorf("cache encode %s: %w", key, err))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		telemetry.CaptureError(ctx, fmt.Errorf("cache set %s: %w", key, err))
	}
}
