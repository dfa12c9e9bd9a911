package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a thin Redis wrapper. Every operation degrades to a cache miss
// when Redis is unreachable or the client is nil, so callers never fail
// because of the cache.
type Client struct {
	rdb *redis.Client
}

// New creates a Redis-backed cache client.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// enabled reports whether a usable Redis connection exists. A nil Client is a
// valid no-op cache.
func (c *Client) enabled() bool {
	return c != nil && c.rdb != nil
}

// Get returns the cached value, or nil on a miss or Redis error.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.enabled() {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, nil
	}
	return data, nil
}

// Set stores value under key for ttl, swallowing Redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.enabled() {
		return nil
	}
	_ = c.rdb.Set(ctx, key, value, ttl).Err()
	return nil
}

// Delete removes key, swallowing Redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if !c.enabled() {
		return nil
	}
	_ = c.rdb.Del(ctx, key).Err()
	return nil
}
