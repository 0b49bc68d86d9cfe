// Package buffer provides a generic fixed-capacity ring with overwrite-oldest
// semantics, built-in statistics tracking, and optional Prometheus metrics
// integration.
//
// # Overview
//
// Ring is a circular queue for latency-sensitive rolling windows: frame and
// event history, last-N telemetry, bounded replay logs. Every queue operation
// runs in constant time with zero allocations; the trade-offs are a hard
// capacity ceiling and silent eviction of the oldest element when full.
//
// # Quick Start
//
// Basic ring creation:
//
//	ring, err := buffer.New[int](10, 0) // 2^10 slots, capacity 1023
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ring.Enqueue(42)
//	value, ok := ring.Dequeue()
//
// With eviction callback and metrics:
//
//	ring, err := buffer.New[[]byte](12, nil,
//		buffer.WithEvictCallback[[]byte](func(old []byte) { recycle(old) }),
//		buffer.WithMetrics[[]byte](registry, "frame_window"),
//	)
//
// # Masked Indexing
//
// Storage length is always a power of two, chosen by a bit width clamped into
// [MinBits, MaxBits]. Index wraparound is a bitwise AND with len-1 instead of
// a modulo. One slot is permanently reserved to distinguish an empty ring
// from a full one, so a ring built with bit width m holds 2^m - 1 elements.
//
// Vacated slots are not cleared: Dequeue and Clear only move cursors, and
// stale values stay physically present until overwritten. Two rings with
// identical live contents can therefore differ in raw storage; compare rings
// with ToSlice, never with reflect.DeepEqual on the struct.
//
// # Failure Model
//
// No queue operation can fail:
//
//   - Out-of-range bit widths are clamped at construction, not rejected
//   - Enqueue on a full ring evicts the oldest element
//   - Dequeue and Clear on an empty ring are no-ops
//   - Head and Rear on an empty ring return (zero, false)
//
// The single constructor error is Prometheus registration failure when
// WithMetrics was requested.
//
// # Observability Architecture
//
// Statistics (Always On):
//   - Tracks all operations using atomic counters
//   - Zero configuration required
//   - Available via ring.Stats()
//   - Provides computed rates (throughput, eviction rate, utilization)
//
// Prometheus Metrics (Optional):
//   - Enabled via WithMetrics() option
//   - Counters for enqueues, dequeues, peeks, evictions
//   - Gauges for size and utilization
//   - Component labels for instance identification
//
// # Concurrency
//
// A Ring has a single exclusive owner and performs no locking; callers that
// share a ring across goroutines must serialize access themselves. Statistics
// counters are atomic so monitoring code can read them concurrently with the
// owner's mutations.
package buffer
