package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	herrors "github.com/Aureliona1/Helpers/pkg/common/errors"
	"github.com/Aureliona1/Helpers/pkg/metrics"
)

// Store is a JSON-valued key-value store with optional per-key TTL.
type Store interface {
	// Get returns the raw JSON stored under key, or ErrCacheMiss if the
	// key is absent or expired.
	Get(ctx context.Context, key string) (json.RawMessage, error)

	// Set stores value under key, JSON-encoded. A zero ttl means the
	// entry never expires.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns the live (unexpired) keys.
	Keys(ctx context.Context) ([]string, error)

	// Len returns the number of live entries.
	Len(ctx context.Context) (int, error)

	// Close releases the store's resources, flushing if applicable.
	Close() error
}

// GetAs fetches key from s and decodes it into T.
func GetAs[T any](ctx context.Context, s Store, key string) (T, error) {
	var v T

	raw, err := s.Get(ctx, key)
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		return v, err
	}
	return v, nil
}

// InstrumentedStore wraps a Store with Prometheus hit/miss accounting.
type InstrumentedStore struct {
	Store

	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewInstrumentedStore wraps s with metrics under the given cache name.
func NewInstrumentedStore(s Store, name string, config metrics.Config) *InstrumentedStore {
	registry := metrics.DefaultRegistry
	if config.Registry != nil {
		registry = metrics.NewRegistry(config.Registry)
	}

	return &InstrumentedStore{
		Store:    s,
		name:     name,
		registry: registry,
		enabled:  config.Enabled,
	}
}

// Get delegates to the wrapped store, counting hits and misses.
func (is *InstrumentedStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	raw, err := is.Store.Get(ctx, key)

	if is.enabled {
		switch {
		case err == nil:
			is.registry.CacheHits.WithLabelValues(is.name).Inc()
		case errors.Is(err, herrors.ErrCacheMiss):
			is.registry.CacheMisses.WithLabelValues(is.name).Inc()
		}
	}

	return raw, err
}
