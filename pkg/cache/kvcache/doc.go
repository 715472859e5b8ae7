/*
Package kvcache provides a key-value cache persisted to a single JSON file.

Values are stored JSON-encoded with an optional TTL. All reads and writes
are served from memory; Flush writes the file atomically via a temp file
and rename, and AutoFlush runs a cron-scheduled janitor that sweeps expired
entries and persists pending changes.

Basic usage:

	c, err := kvcache.Open("cache.json")
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close() // flushes pending writes

	c.Set(ctx, "greeting", "hello", 0)
	c.Set(ctx, "session", token, 15*time.Minute)

	raw, err := c.Get(ctx, "greeting")
	if errors.Is(err, herrors.ErrCacheMiss) {
		// absent or expired
	}

Background persistence:

	if err := c.AutoFlush("@every 30s"); err != nil {
		log.Fatal(err)
	}

The cache is safe for concurrent use. It implements cache.Store, so it is
interchangeable with the redis backend.
*/
package kvcache
