/*
Package metrics provides Prometheus instrumentation for helpers components.

The package exposes a Registry that holds the metric instances used by the
fetch queue and cache packages. Components accept a metrics.Config and report
through either the DefaultRegistry or a caller-supplied registerer.

Basic usage:

	registry := prometheus.NewRegistry()
	q, err := queue.NewWithConfigAndMetrics(queue.Config{Capacity: 4}, "api", metrics.Config{
		Enabled:  true,
		Registry: registry,
	})

	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

Metric names follow the helpers_<subsystem>_<name> convention, e.g.
helpers_queue_active or helpers_cache_hits_total.
*/
package metrics
