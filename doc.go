// Package ringkit provides a fixed-capacity ring buffer with queue semantics
// for latency-sensitive producer/consumer windows.
//
// # Philosophy: Predictable Time Over Unbounded Growth
//
// RingKit trades a hard capacity ceiling for guarantees that matter in hot
// paths:
//
//   - Every queue operation (enqueue, dequeue, length, head, rear) runs in
//     constant time with zero allocations
//   - Overflow never fails: enqueue on a full ring silently evicts the
//     oldest element
//   - No operation has an error path; edge cases are handled by policy
//     (clamping, no-ops, absent values) rather than failure
//
// RingKit MUST NOT contain:
//   - Dynamic resizing or growth
//   - Internal locking or concurrency guarantees (a ring has one owner)
//   - Persistence or serialization of ring contents
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│        pkg/buffer.Ring[T]           │  Masked-index circular queue,
//	│  (enqueue, dequeue, head, rear...)  │  overwrite-oldest policy
//	└─────────────────────────────────────┘
//	           ↓ always collects
//	┌─────────────────────────────────────┐
//	│         buffer.Statistics           │  Atomic op counters,
//	│   (throughput, eviction rate...)    │  derived rates
//	└─────────────────────────────────────┘
//	           ↓ optionally exports via
//	┌─────────────────────────────────────┐
//	│          metric.Registry            │  Prometheus collectors,
//	│     (counters, gauges, handler)     │  HTTP exposition
//	└─────────────────────────────────────┘
//
// Storage length is always a power of two (bit width clamped into [2, 24]),
// so index wraparound is a single bitwise AND. One slot is permanently
// reserved to distinguish empty from full; a ring built with bit width m
// holds 2^m - 1 elements.
//
// Errors raised by the ambient layers (metrics registration) are classified
// through the errors package so callers can distinguish invalid configuration
// from unrecoverable registry failures.
package ringkit
