package buffer

import (
	"github.com/kudzu-forest/ringkit/metric"
)

// EvictCallback is called when an element is overwritten by an enqueue on a
// full ring. It receives the element that was evicted.
type EvictCallback[T any] func(evicted T)

// Option configures ring behavior using the functional options pattern.
type Option[T any] func(*ringOptions[T])

// ringOptions holds internal configuration for ring instances.
// Statistics are ALWAYS collected - they are not optional.
// Metrics are optional and enabled via WithMetrics().
type ringOptions[T any] struct {
	evictCallback EvictCallback[T]

	// metricsReg is optional - if provided, ring stats are also exposed as Prometheus metrics
	metricsReg *metric.Registry

	// metricsPrefix is used as the component label for Prometheus metrics
	metricsPrefix string
}

// WithMetrics enables Prometheus metrics export for ring statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics[T any](registry *metric.Registry, prefix string) Option[T] {
	return func(opts *ringOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithEvictCallback sets a callback invoked whenever an enqueue on a full
// ring overwrites the oldest element. The callback receives the evicted
// element after the ring has advanced past it.
func WithEvictCallback[T any](callback EvictCallback[T]) Option[T] {
	return func(opts *ringOptions[T]) {
		opts.evictCallback = callback
	}
}

// applyOptions applies functional options to create final ring configuration.
func applyOptions[T any](options ...Option[T]) *ringOptions[T] {
	opts := &ringOptions[T]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
