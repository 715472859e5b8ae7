/*
Package rediscache provides a Redis-backed key-value cache implementing the
cache.Store interface.

Entries are stored JSON-encoded under a configurable key prefix; TTLs map
directly to Redis key expiry, so expired entries vanish server-side.

Basic usage:

	c, err := rediscache.New("localhost:6379")
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	c.Set(ctx, "session", token, 15*time.Minute)

	raw, err := c.Get(ctx, "session")
	if errors.Is(err, herrors.ErrCacheMiss) {
		// absent or expired
	}

An existing client (including cluster and sentinel clients) can be shared:

	c, err := rediscache.NewWithConfig(rediscache.Config{
		Client: existingClient,
		Prefix: "myapp:",
	})
*/
package rediscache
