/*
Package queue provides a priority-aware admission queue for HTTP requests.

A Queue bounds how many operations may be in flight at once. Callers request
admission, do their work, and call the returned release function; waiting
callers are admitted in priority order (lower numbers first), FIFO within a
priority. Admissions can optionally be paced a minimum interval apart.

Basic usage:

	q, err := queue.New(4) // at most 4 concurrent requests
	if err != nil {
		log.Fatal(err)
	}

	resp, err := q.Get(ctx, "https://example.com/data.json")
	if err != nil {
		log.Fatal(err)
	}

	var data map[string]any
	if err := resp.JSON(ctx, &data); err != nil {
		log.Fatal(err)
	}

Admission Control:

The queue hands each admitted caller a one-shot release function. Always
arrange for it to run on every exit path:

	release, err := q.Admit(ctx, queue.PriorityDefault)
	if err != nil {
		return err
	}
	defer release()

	// Do rate-limited work.

Releasing a slot admits at most one waiter: the oldest entry in the
lowest-numbered non-empty priority bucket. A continuous stream of urgent
requests can therefore starve less urgent ones; that is the intended
strict-priority behavior.

Pacing:

With MinInterval set, successive admissions are spaced at least that far
apart. The pacing window is assigned when a job is selected for admission,
so pacing delays never reorder jobs relative to priority/FIFO order.

	q, err := queue.NewWithConfig(queue.Config{
		Capacity:    2,
		MinInterval: 250 * time.Millisecond,
	})

Body Buffering:

By default Do reads the whole response body before releasing its admission
slot, so slow downloads count against capacity and later body reads are
free. With StreamBodies set, the slot is released once headers arrive and
each body read re-enters the queue at PriorityBody, which outranks new
fetches so in-flight downloads drain first.

	q, err := queue.NewWithConfig(queue.Config{
		Capacity:     4,
		StreamBodies: true,
	})

	resp, _ := q.Get(ctx, url) // slot released after headers
	body, _ := resp.Bytes(ctx) // separate PriorityBody admission

A streaming response that will not be read should be closed with
resp.Close() so its connection is not pinned; buffered responses need no
Close.

Error Handling:

The queue never swallows errors from the wrapped operation; it only
guarantees its own bookkeeping is restored on every exit path. Context
cancellation while waiting returns ctx.Err() and removes the waiter without
leaking a slot. Invalid configuration fails at construction with a
ValidationError.
*/
package queue
