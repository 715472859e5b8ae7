/*
Package helpers provides a grab-bag of small Go utilities: a priority-aware
HTTP admission queue, JSON-backed key-value caches, generic containers,
numeric helpers, and console logging.

Fetching (pkg/fetch):
  - queue: Bound concurrent HTTP requests with priority ordering and pacing

Caching (pkg/cache):
  - kvcache: Single-file JSON store with TTL and cron-scheduled autosave
  - rediscache: Redis-backed store behind the same interface

Utilities:
  - container/list: Generic linked list and stack
  - console: Leveled, styled console logging
  - mathx: Generic numeric and slice helpers

Example usage:

	import (
		"github.com/Aureliona1/Helpers/pkg/cache/kvcache"
		"github.com/Aureliona1/Helpers/pkg/fetch/queue"
	)

	q, _ := queue.New(4) // at most 4 requests in flight
	resp, _ := q.Get(ctx, "https://example.com/data.json")

	c, _ := kvcache.Open("cache.json")
	defer c.Close()
	c.Set(ctx, "data", resp.Header.Get("Etag"), 0)
*/
package helpers
