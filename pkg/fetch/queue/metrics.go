package queue

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aureliona1/Helpers/pkg/metrics"
)

// InstrumentedQueue wraps a Queue with Prometheus metrics collection.
type InstrumentedQueue struct {
	queue    *Queue
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a queue with metrics enabled on its own registry.
func NewWithMetrics(capacity int, name string) (*InstrumentedQueue, error) {
	registry := prometheus.NewRegistry()
	return NewWithConfigAndMetrics(Config{Capacity: capacity}, name, metrics.Config{
		Enabled:  true,
		Registry: registry,
	})
}

// NewWithConfigAndMetrics creates a queue with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) (*InstrumentedQueue, error) {
	q, err := NewWithConfig(config)
	if err != nil {
		return nil, err
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	iq := &InstrumentedQueue{
		queue:    q,
		name:     name,
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}
	iq.updateGauges()
	return iq, nil
}

// Admit grants an admission slot, recording wait time and queue depth.
func (iq *InstrumentedQueue) Admit(ctx context.Context, priority int) (ReleaseFunc, error) {
	if !iq.enabled {
		return iq.queue.Admit(ctx, priority)
	}

	start := time.Now()
	iq.registry.QueueWaiting.WithLabelValues(iq.name).Inc()

	release, err := iq.queue.Admit(ctx, priority)

	iq.registry.QueueWaiting.WithLabelValues(iq.name).Dec()
	iq.registry.QueueWaitDuration.WithLabelValues(iq.name).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}

	iq.registry.QueueAdmissions.WithLabelValues(iq.name).Inc()
	iq.updateGauges()

	return func() {
		release()
		iq.registry.QueueReleases.WithLabelValues(iq.name).Inc()
		iq.updateGauges()
	}, nil
}

// Do performs an HTTP request through the underlying queue, counting
// requests and failures.
func (iq *InstrumentedQueue) Do(ctx context.Context, req *http.Request) (*Response, error) {
	resp, err := iq.queue.Do(ctx, req)

	if iq.enabled {
		iq.registry.FetchRequests.WithLabelValues(iq.name).Inc()
		if err != nil {
			iq.registry.FetchFailures.WithLabelValues(iq.name).Inc()
		}
		iq.updateGauges()
	}

	return resp, err
}

// Get performs a GET request through the underlying queue.
func (iq *InstrumentedQueue) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return iq.Do(ctx, req)
}

// Capacity returns the maximum number of concurrently admitted jobs.
func (iq *InstrumentedQueue) Capacity() int {
	return iq.queue.Capacity()
}

// Active returns the number of jobs currently holding a slot.
func (iq *InstrumentedQueue) Active() int {
	return iq.queue.Active()
}

// Waiting returns the number of jobs queued for admission.
func (iq *InstrumentedQueue) Waiting() int {
	return iq.queue.Waiting()
}

// Queue returns the wrapped queue.
func (iq *InstrumentedQueue) Queue() *Queue {
	return iq.queue
}

func (iq *InstrumentedQueue) updateGauges() {
	if !iq.enabled {
		return
	}
	iq.registry.QueueActive.WithLabelValues(iq.name).Set(float64(iq.queue.Active()))
}
