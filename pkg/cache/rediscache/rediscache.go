package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	herrors "github.com/Aureliona1/Helpers/pkg/common/errors"
	"github.com/Aureliona1/Helpers/pkg/common/validation"
)

// DefaultPrefix namespaces cache keys in Redis.
const DefaultPrefix = "helpers:cache:"

// Config holds configuration options for creating a redis-backed cache.
type Config struct {
	// Addr is the Redis server address, host:port. Ignored when Client
	// is provided.
	Addr string

	// Password is the optional Redis password.
	Password string

	// DB selects the Redis database number.
	DB int

	// Prefix namespaces this cache's keys. Defaults to DefaultPrefix.
	Prefix string

	// Client overrides Addr/Password/DB with a pre-built client. The
	// cache takes ownership and closes it on Close.
	Client redis.UniversalClient
}

// Cache is a key-value store backed by Redis, interchangeable with the
// file-backed kvcache through the cache.Store interface. TTLs map to Redis
// key expiry.
type Cache struct {
	client redis.UniversalClient
	prefix string
}

// New creates a cache talking to the Redis server at addr.
func New(addr string) (*Cache, error) {
	return NewWithConfig(Config{Addr: addr})
}

// NewWithConfig creates a cache with the given configuration.
func NewWithConfig(config Config) (*Cache, error) {
	client := config.Client
	if client == nil {
		if err := validation.ValidateNotEmpty("rediscache", "addr", config.Addr); err != nil {
			return nil, err
		}
		client = redis.NewClient(&redis.Options{
			Addr:     config.Addr,
			Password: config.Password,
			DB:       config.DB,
		})
	}

	prefix := config.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &Cache{client: client, prefix: prefix}, nil
}

func (c *Cache) key(key string) string {
	return c.prefix + key
}

// Get returns the raw JSON stored under key, or ErrCacheMiss if the key is
// absent or expired.
func (c *Cache) Get(ctx context.Context, key string) (json.RawMessage, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, herrors.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Set stores value under key, JSON-encoded. A zero ttl means the entry
// never expires.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), raw, ttl).Err()
}

// Delete removes key. Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}

// Keys returns the live keys under this cache's prefix. The scan is
// cursor-based, so it is safe on large databases.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	var keys []string

	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), c.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// Len returns the number of live entries.
func (c *Cache) Len(ctx context.Context) (int, error) {
	keys, err := c.Keys(ctx)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Close closes the underlying Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
