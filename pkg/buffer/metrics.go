package buffer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kudzu-forest/ringkit/metric"
)

// ringMetrics holds Prometheus metrics for ring operations.
type ringMetrics struct {
	// Counter metrics - directly incremented without stats duplication
	enqueues  prometheus.Counter
	dequeues  prometheus.Counter
	peeks     prometheus.Counter
	evictions prometheus.Counter

	// Gauge metrics - updated on operations
	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newRingMetrics creates and registers ring metrics with the provided registry.
func newRingMetrics(registry *metric.Registry, prefix string) (*ringMetrics, error) {
	m := &ringMetrics{
		enqueues: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "enqueues_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of ring enqueue operations",
		}),
		dequeues: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "dequeues_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of ring dequeue operations",
		}),
		peeks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "peeks_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of head/rear reads",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "evictions_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of elements overwritten on full enqueue",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "size",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of live elements in the ring",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "buffer",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Ring fill level relative to capacity (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(prefix, "buffer_enqueues", m.enqueues); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_dequeues", m.dequeues); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_peeks", m.peeks); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_evictions", m.evictions); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordEnqueue increments the enqueue counter and updates size/utilization.
func (m *ringMetrics) recordEnqueue(size, capacity int) {
	m.enqueues.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordDequeue increments the dequeue counter and updates size/utilization.
func (m *ringMetrics) recordDequeue(size, capacity int) {
	m.dequeues.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordPeek increments the peek counter.
func (m *ringMetrics) recordPeek() {
	m.peeks.Inc()
}

// recordEviction increments the eviction counter.
func (m *ringMetrics) recordEviction() {
	m.evictions.Inc()
}

// updateSize sets the current size and utilization.
func (m *ringMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}
