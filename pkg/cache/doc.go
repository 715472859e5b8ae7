/*
Package cache defines the key-value store interface shared by the cache
backends.

Implementations:
  - kvcache: Single-file JSON store with TTL and cron-scheduled autosave
  - rediscache: Redis-backed store

Values are stored as JSON. Use GetAs to decode directly into a typed value:

	count, err := cache.GetAs[int](ctx, store, "visits")
	if errors.Is(err, herrors.ErrCacheMiss) {
		count = 0
	}
*/
package cache
