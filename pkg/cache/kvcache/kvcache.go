package kvcache

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	herrors "github.com/Aureliona1/Helpers/pkg/common/errors"
	"github.com/Aureliona1/Helpers/pkg/common/validation"
)

// Clock provides the current time. It can be mocked for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Config holds configuration options for opening a Cache.
type Config struct {
	// Path is the JSON file backing the cache. Created on first Flush
	// if it does not exist.
	Path string

	// Clock provides the current time. If nil, SystemClock is used.
	Clock Clock
}

// entry is the on-disk and in-memory representation of one cached value.
type entry struct {
	Value     json.RawMessage `json:"value"`
	ExpiresAt time.Time       `json:"expires_at,omitempty"`
}

func (e entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

// Cache is a key-value store persisted to a single JSON file. Reads and
// writes hit the in-memory map; Flush (or the AutoFlush janitor) writes the
// file atomically.
type Cache struct {
	path  string
	clock Clock

	mu      sync.RWMutex
	entries map[string]entry
	dirty   bool
	closed  bool
	janitor *cron.Cron
}

// Open loads the cache file at path, or starts empty if it does not exist.
func Open(path string) (*Cache, error) {
	return OpenWithConfig(Config{Path: path})
}

// OpenWithConfig loads a cache with the given configuration.
func OpenWithConfig(config Config) (*Cache, error) {
	if err := validation.ValidateNotEmpty("kvcache", "path", config.Path); err != nil {
		return nil, err
	}
	if config.Clock == nil {
		config.Clock = SystemClock{}
	}

	c := &Cache{
		path:    config.Path,
		clock:   config.Clock,
		entries: make(map[string]entry),
	}

	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cache) load() error {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	entries := make(map[string]entry)
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	// Expired entries are dropped at load rather than carried forward.
	// Values are re-compacted: the indented file format must not leak
	// into the bytes handed back by Get.
	now := c.clock.Now()
	for key, e := range entries {
		if e.expired(now) {
			delete(entries, key)
			continue
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, e.Value); err != nil {
			return err
		}
		e.Value = json.RawMessage(compact.Bytes())
		entries[key] = e
	}

	c.entries = entries
	return nil
}

// Get returns the raw JSON stored under key, or ErrCacheMiss if the key is
// absent or expired.
func (c *Cache) Get(ctx context.Context, key string) (json.RawMessage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, herrors.ErrClosed
	}

	e, ok := c.entries[key]
	if !ok || e.expired(c.clock.Now()) {
		return nil, herrors.ErrCacheMiss
	}
	return e.Value, nil
}

// Set stores value under key, JSON-encoded. A zero ttl means the entry
// never expires.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return herrors.ErrClosed
	}

	e := entry{Value: raw}
	if ttl > 0 {
		e.ExpiresAt = c.clock.Now().Add(ttl)
	}

	c.entries[key] = e
	c.dirty = true
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return herrors.ErrClosed
	}

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.dirty = true
	}
	return nil
}

// Keys returns the live keys in sorted order.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, herrors.ErrClosed
	}

	now := c.clock.Now()
	keys := make([]string, 0, len(c.entries))
	for key, e := range c.entries {
		if !e.expired(now) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
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

// Flush writes the cache to its backing file atomically (temp file plus
// rename). Expired entries are swept first. Flushing a clean cache is a
// no-op.
func (c *Cache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return herrors.ErrClosed
	}
	return c.flushLocked()
}

func (c *Cache) flushLocked() error {
	c.sweepLocked()
	if !c.dirty {
		return nil
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".kvcache-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	c.dirty = false
	return nil
}

// sweepLocked drops expired entries. Must be called with c.mu held.
func (c *Cache) sweepLocked() {
	now := c.clock.Now()
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
			c.dirty = true
		}
	}
}

// AutoFlush starts a cron janitor that sweeps expired entries and flushes
// the cache on the given schedule. Standard cron expressions and the
// @every shorthand are accepted, e.g. "@every 30s".
func (c *Cache) AutoFlush(spec string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return herrors.ErrClosed
	}
	if c.janitor != nil {
		return herrors.NewValidationError("kvcache", "autoflush", spec, "already started").
			WithHint("AutoFlush may only be called once per cache")
	}

	janitor := cron.New()
	if _, err := janitor.AddFunc(spec, func() {
		// Flush errors here are dropped; the next scheduled run retries.
		_ = c.Flush()
	}); err != nil {
		return herrors.NewValidationError("kvcache", "autoflush", spec, "invalid cron expression").
			WithHint("see https://pkg.go.dev/github.com/robfig/cron/v3")
	}

	janitor.Start()
	c.janitor = janitor
	return nil
}

// Close stops the autoflush janitor, flushes pending writes, and marks the
// cache closed. Further operations return ErrClosed.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	if c.janitor != nil {
		c.janitor.Stop()
		c.janitor = nil
	}

	err := c.flushLocked()
	c.closed = true
	return err
}
