package queue

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Aureliona1/Helpers/internal/testutil"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantErr  bool
		capacity int
	}{
		{"valid capacity", Config{Capacity: 10}, false, 10},
		{"capacity one", Config{Capacity: 1}, false, 1},
		{"with pacing", Config{Capacity: 2, MinInterval: 50 * time.Millisecond}, false, 2},
		{"zero capacity", Config{Capacity: 0}, true, 0},
		{"negative capacity", Config{Capacity: -1}, true, 0},
		{"negative interval", Config{Capacity: 1, MinInterval: -time.Second}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewWithConfig(tt.config)
			if tt.wantErr {
				testutil.AssertError(t, err)
				if q != nil {
					t.Error("expected nil queue on error")
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, q.Capacity(), tt.capacity)
			testutil.AssertEqual(t, q.Active(), 0)
			testutil.AssertEqual(t, q.Waiting(), 0)
		})
	}
}

func TestAdmitImmediate(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	q, err := New(2)
	testutil.AssertNoError(t, err)

	r1, err := q.Admit(ctx, PriorityDefault)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, q.Active(), 1)

	r2, err := q.Admit(ctx, PriorityDefault)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, q.Active(), 2)

	r1()
	r2()
	testutil.AssertEqual(t, q.Active(), 0)
}

func TestConcurrencyBound(t *testing.T) {
	const capacity = 3
	const jobs = 20

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	q, err := New(capacity)
	testutil.AssertNoError(t, err)

	var current, peak int64
	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := q.Admit(ctx, PriorityDefault)
			if err != nil {
				t.Error(err)
				return
			}
			defer release()

			n := atomic.AddInt64(&current, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt64(&current, -1)
		}()
	}
	wg.Wait()

	if p := atomic.LoadInt64(&peak); p > capacity {
		t.Errorf("observed %d concurrent jobs, capacity %d", p, capacity)
	}
	testutil.AssertEqual(t, q.Active(), 0)
	testutil.AssertEqual(t, q.Waiting(), 0)
}

func TestReleaseAdmitsQueued(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	q, err := New(2)
	testutil.AssertNoError(t, err)

	r1, err := q.Admit(ctx, PriorityDefault)
	testutil.AssertNoError(t, err)
	r2, err := q.Admit(ctx, PriorityDefault)
	testutil.AssertNoError(t, err)

	admitted := make(chan ReleaseFunc, 1)
	go func() {
		release, err := q.Admit(ctx, PriorityDefault)
		if err != nil {
			t.Error(err)
			return
		}
		admitted <- release
	}()

	testutil.Eventually(t, testutil.TestTimeout, func() bool { return q.Waiting() == 1 })

	select {
	case <-admitted:
		t.Fatal("third job admitted while queue full")
	case <-time.After(20 * time.Millisecond):
	}

	r1()

	select {
	case release := <-admitted:
		release()
	case <-time.After(testutil.TestTimeout):
		t.Fatal("queued job not admitted after release")
	}

	r2()
	testutil.AssertEqual(t, q.Active(), 0)
}

// admitInOrder submits one waiter per priority, in order, waiting for each
// to be queued before submitting the next. It returns the order in which
// waiters were admitted.
func admitInOrder(t *testing.T, q *Queue, occupied ReleaseFunc, priorities []int) []int {
	t.Helper()

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	order := make(chan int, len(priorities))
	var wg sync.WaitGroup
	for i, p := range priorities {
		wg.Add(1)
		go func(idx, prio int) {
			defer wg.Done()

			release, err := q.Admit(ctx, prio)
			if err != nil {
				t.Error(err)
				return
			}
			order <- idx
			release()
		}(i, p)

		testutil.Eventually(t, testutil.TestTimeout, func() bool { return q.Waiting() == i+1 })
	}

	occupied()
	wg.Wait()
	close(order)

	var got []int
	for idx := range order {
		got = append(got, idx)
	}
	return got
}

func TestPriorityOrdering(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	q, err := New(1)
	testutil.AssertNoError(t, err)

	release, err := q.Admit(ctx, PriorityDefault)
	testutil.AssertNoError(t, err)

	// Submitted as [5, 5, 0]: the priority-0 waiter must be admitted first,
	// then the two priority-5 waiters in submission order.
	got := admitInOrder(t, q, release, []int{5, 5, 0})
	want := []int{2, 0, 1}

	if len(got) != len(want) {
		t.Fatalf("got %d admissions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("admission order %v, want %v", got, want)
		}
	}
}

func TestFIFOWithinPriority(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	q, err := New(1)
	testutil.AssertNoError(t, err)

	release, err := q.Admit(ctx, PriorityDefault)
	testutil.AssertNoError(t, err)

	got := admitInOrder(t, q, release, []int{3, 3, 3, 3})
	for i, idx := range got {
		if idx != i {
			t.Fatalf("admission order %v, want FIFO", got)
		}
	}
}

func TestPacing(t *testing.T) {
	const interval = 30 * time.Millisecond
	const jobs = 4

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	q, err := NewWithConfig(Config{Capacity: jobs, MinInterval: interval})
	testutil.AssertNoError(t, err)

	times := make(chan time.Time, jobs)
	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := q.Admit(ctx, PriorityDefault)
			if err != nil {
				t.Error(err)
				return
			}
			times <- time.Now()
			release()
		}()
	}
	wg.Wait()
	close(times)

	var admitted []time.Time
	for ts := range times {
		admitted = append(admitted, ts)
	}
	if len(admitted) != jobs {
		t.Fatalf("got %d admissions, want %d", len(admitted), jobs)
	}

	// Admission timestamps arrive unordered; sort before checking gaps.
	sort.Slice(admitted, func(i, j int) bool { return admitted[i].Before(admitted[j]) })

	const tolerance = 5 * time.Millisecond
	for i := 1; i < len(admitted); i++ {
		gap := admitted[i].Sub(admitted[i-1])
		if gap < interval-tolerance {
			t.Errorf("admissions %d and %d only %v apart, want >= %v", i-1, i, gap, interval)
		}
	}
}

func TestReleaseIdempotent(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	q, err := New(1)
	testutil.AssertNoError(t, err)

	release, err := q.Admit(ctx, PriorityDefault)
	testutil.AssertNoError(t, err)

	release()
	release() // one-shot: second call must not double-free
	testutil.AssertEqual(t, q.Active(), 0)

	release2, err := q.Admit(ctx, PriorityDefault)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, q.Active(), 1)
	release2()
}

func TestCancelWhileWaiting(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	q, err := New(1)
	testutil.AssertNoError(t, err)

	release, err := q.Admit(ctx, PriorityDefault)
	testutil.AssertNoError(t, err)

	waitCtx, cancelWait := context.WithCancel(ctx)
	errs := make(chan error, 1)
	go func() {
		_, err := q.Admit(waitCtx, PriorityDefault)
		errs <- err
	}()

	testutil.Eventually(t, testutil.TestTimeout, func() bool { return q.Waiting() == 1 })
	cancelWait()

	select {
	case err := <-errs:
		if err != context.Canceled {
			t.Fatalf("got %v, want context.Canceled", err)
		}
	case <-time.After(testutil.TestTimeout):
		t.Fatal("canceled waiter did not return")
	}

	testutil.AssertEqual(t, q.Waiting(), 0)

	// The slot must still be usable.
	release()
	release2, err := q.Admit(ctx, PriorityDefault)
	testutil.AssertNoError(t, err)
	release2()
	testutil.AssertEqual(t, q.Active(), 0)
}

func TestCancelBeforeAdmit(t *testing.T) {
	q, err := New(1)
	testutil.AssertNoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := q.Admit(ctx, PriorityDefault); err != context.Canceled {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	testutil.AssertEqual(t, q.Active(), 0)
}

func TestSlotConservation(t *testing.T) {
	const jobs = 50

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	q, err := NewWithConfig(Config{Capacity: 4})
	testutil.AssertNoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func(prio int) {
			defer wg.Done()

			release, err := q.Admit(ctx, prio%7)
			if err != nil {
				t.Error(err)
				return
			}
			defer release()
		}(i)
	}
	wg.Wait()

	testutil.AssertEqual(t, q.Active(), 0)
	testutil.AssertEqual(t, q.Waiting(), 0)
}
