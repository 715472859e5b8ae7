package queue

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Aureliona1/Helpers/pkg/common/validation"
)

// Admission priorities. Lower values are serviced first.
const (
	// PriorityBody is used by deferred body reads, so that in-flight
	// downloads drain before new fetches are admitted.
	PriorityBody = 0

	// PriorityDefault is the admission priority for new fetches.
	PriorityDefault = 5
)

// ReleaseFunc returns an admission slot to its queue. Each admitted caller
// must invoke it once after its protected work completes; additional calls
// are no-ops.
type ReleaseFunc func()

// Doer performs HTTP requests. *http.Client satisfies it; tests can supply
// a stub transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds configuration options for creating a new Queue.
type Config struct {
	// Capacity is the maximum number of concurrently admitted jobs.
	Capacity int

	// MinInterval is the minimum time between successive admissions.
	// Zero disables pacing.
	MinInterval time.Duration

	// StreamBodies disables eager body buffering. When false (the default),
	// Do reads the whole response body before releasing its slot, so slot
	// occupancy reflects total transfer time. When true, the slot is
	// released once headers arrive and body reads re-enter the queue at
	// PriorityBody.
	StreamBodies bool

	// Client performs the HTTP requests. If nil, http.DefaultClient is used.
	Client Doer
}

// Queue bounds the number of concurrently in-flight operations, optionally
// pacing admissions a minimum interval apart. Waiting operations are ordered
// by priority, FIFO within a priority.
type Queue struct {
	capacity int
	stream   bool
	client   Doer
	pacer    *rate.Limiter // nil when pacing is disabled

	mu      sync.Mutex
	active  int
	waiting int
	pending map[int][]*waiter
	prios   []int // sorted ascending, one entry per non-empty bucket
}

// grant carries an admission to a waiter, along with the pacing delay the
// waiter must sleep out before proceeding.
type grant struct {
	release ReleaseFunc
	delay   time.Duration
}

type waiter struct {
	ready chan grant // buffered; sent at most once, under q.mu
}

// New creates a Queue admitting at most capacity concurrent jobs.
func New(capacity int) (*Queue, error) {
	return NewWithConfig(Config{Capacity: capacity})
}

// NewWithConfig creates a Queue with the given configuration.
func NewWithConfig(config Config) (*Queue, error) {
	if err := validation.ValidatePositive("queue", "capacity", config.Capacity); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegativeDuration("queue", "minInterval", config.MinInterval); err != nil {
		return nil, err
	}

	client := config.Client
	if client == nil {
		client = http.DefaultClient
	}

	var pacer *rate.Limiter
	if config.MinInterval > 0 {
		pacer = rate.NewLimiter(rate.Every(config.MinInterval), 1)
	}

	return &Queue{
		capacity: config.Capacity,
		stream:   config.StreamBodies,
		client:   client,
		pacer:    pacer,
		pending:  make(map[int][]*waiter),
	}, nil
}

// Admit blocks until an admission slot is granted, then returns the
// ReleaseFunc that must be called to free the slot. Lower priority numbers
// are serviced first; waiters at the same priority are admitted in request
// order. Admit returns ctx.Err() if the context is canceled while waiting;
// a canceled waiter never retains a slot.
func (q *Queue) Admit(ctx context.Context, priority int) (ReleaseFunc, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	q.mu.Lock()

	// Fast path: a slot is free. Claim it and the next pacing window
	// before unlocking, so later arrivals cannot overtake this admission.
	if q.active < q.capacity {
		q.active++
		delay := q.reservePace()
		release := q.releaseFunc()
		q.mu.Unlock()

		if err := pause(ctx, delay); err != nil {
			release()
			return nil, err
		}
		return release, nil
	}

	// Slow path: queue up and wait for a release to hand us the slot.
	w := &waiter{ready: make(chan grant, 1)}
	q.enqueue(priority, w)
	q.mu.Unlock()

	select {
	case g := <-w.ready:
		if err := pause(ctx, g.delay); err != nil {
			g.release()
			return nil, err
		}
		return g.release, nil
	case <-ctx.Done():
		q.abandon(priority, w)
		return nil, ctx.Err()
	}
}

// Capacity returns the maximum number of concurrently admitted jobs.
func (q *Queue) Capacity() int {
	return q.capacity
}

// Active returns the number of jobs currently holding a slot.
func (q *Queue) Active() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.active
}

// Waiting returns the number of jobs queued for admission.
func (q *Queue) Waiting() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.waiting
}

// releaseFunc builds the one-shot release callback for an admission.
func (q *Queue) releaseFunc() ReleaseFunc {
	var once sync.Once
	return func() {
		once.Do(q.release)
	}
}

// release frees a slot and hands it to the next eligible waiter, if any.
// Each release admits at most one waiter; the admitted job continues the
// chain on its own eventual release.
func (q *Queue) release() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.active--

	w, ok := q.popNext()
	if !ok {
		return
	}

	q.active++
	w.ready <- grant{release: q.releaseFunc(), delay: q.reservePace()}
}

// enqueue appends w to its priority bucket. Must be called with q.mu held.
func (q *Queue) enqueue(priority int, w *waiter) {
	if _, ok := q.pending[priority]; !ok {
		i := sort.SearchInts(q.prios, priority)
		q.prios = append(q.prios, 0)
		copy(q.prios[i+1:], q.prios[i:])
		q.prios[i] = priority
	}
	q.pending[priority] = append(q.pending[priority], w)
	q.waiting++
}

// popNext removes and returns the oldest waiter in the lowest-numbered
// priority bucket. Empty buckets are deleted. Must be called with q.mu held.
func (q *Queue) popNext() (*waiter, bool) {
	if len(q.prios) == 0 {
		return nil, false
	}

	p := q.prios[0]
	bucket := q.pending[p]
	w := bucket[0]

	if len(bucket) == 1 {
		delete(q.pending, p)
		q.prios = q.prios[1:]
	} else {
		q.pending[p] = bucket[1:]
	}

	q.waiting--
	return w, true
}

// abandon removes a canceled waiter from its bucket. If the grant raced
// with the cancellation, the slot is already ours and must be returned.
func (q *Queue) abandon(priority int, w *waiter) {
	q.mu.Lock()
	bucket := q.pending[priority]
	for i := range bucket {
		if bucket[i] != w {
			continue
		}
		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(q.pending, priority)
			j := sort.SearchInts(q.prios, priority)
			q.prios = append(q.prios[:j], q.prios[j+1:]...)
		} else {
			q.pending[priority] = bucket
		}
		q.waiting--
		q.mu.Unlock()
		return
	}
	q.mu.Unlock()

	// Grants are sent under q.mu, so if w is gone from its bucket the
	// grant is already buffered in the channel.
	g := <-w.ready
	g.release()
}

// reservePace claims the next pacing window and returns how long the
// admitted job must wait before proceeding. Windows are assigned in
// admission-selection order, so pacing never reorders admissions.
// Must be called with q.mu held.
func (q *Queue) reservePace() time.Duration {
	if q.pacer == nil {
		return 0
	}
	return q.pacer.Reserve().Delay()
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
