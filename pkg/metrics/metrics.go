// Package metrics provides Prometheus instrumentation for helpers components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for helpers components.
type Registry struct {
	// Fetch Queue Metrics
	QueueAdmissions   *prometheus.CounterVec
	QueueReleases     *prometheus.CounterVec
	QueueActive       *prometheus.GaugeVec
	QueueWaiting      *prometheus.GaugeVec
	QueueWaitDuration *prometheus.HistogramVec
	FetchRequests     *prometheus.CounterVec
	FetchFailures     *prometheus.CounterVec

	// Cache Metrics
	CacheHits    *prometheus.CounterVec
	CacheMisses  *prometheus.CounterVec
	CacheEntries *prometheus.GaugeVec
	CacheFlushes *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by helpers components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		QueueAdmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "helpers",
				Subsystem: "queue",
				Name:      "admissions_total",
				Help:      "Total number of admissions granted",
			},
			[]string{"queue_name"},
		),

		QueueReleases: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "helpers",
				Subsystem: "queue",
				Name:      "releases_total",
				Help:      "Total number of admission slots released",
			},
			[]string{"queue_name"},
		),

		QueueActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "helpers",
				Subsystem: "queue",
				Name:      "active",
				Help:      "Number of jobs currently holding an admission slot",
			},
			[]string{"queue_name"},
		),

		QueueWaiting: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "helpers",
				Subsystem: "queue",
				Name:      "waiting",
				Help:      "Number of jobs waiting for an admission slot",
			},
			[]string{"queue_name"},
		),

		QueueWaitDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "helpers",
				Subsystem: "queue",
				Name:      "wait_duration_seconds",
				Help:      "Time spent waiting for admission",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"queue_name"},
		),

		FetchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "helpers",
				Subsystem: "fetch",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests performed through the queue",
			},
			[]string{"queue_name"},
		),

		FetchFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "helpers",
				Subsystem: "fetch",
				Name:      "failures_total",
				Help:      "Total number of HTTP requests that failed",
			},
			[]string{"queue_name"},
		),

		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "helpers",
				Subsystem: "cache",
				Name:      "hits_total",
				Help:      "Total number of cache hits",
			},
			[]string{"cache_name"},
		),

		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "helpers",
				Subsystem: "cache",
				Name:      "misses_total",
				Help:      "Total number of cache misses",
			},
			[]string{"cache_name"},
		),

		CacheEntries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "helpers",
				Subsystem: "cache",
				Name:      "entries",
				Help:      "Number of entries currently held",
			},
			[]string{"cache_name"},
		),

		CacheFlushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "helpers",
				Subsystem: "cache",
				Name:      "flushes_total",
				Help:      "Total number of cache flushes to backing storage",
			},
			[]string{"cache_name"},
		),
	}
}
