package buffer

import (
	"github.com/kudzu-forest/ringkit/errors"
)

// Bit-width bounds for Ring storage. Widths outside the range are clamped,
// never rejected.
const (
	MinBits = 2
	MaxBits = 24
)

// Ring is a fixed-capacity circular queue with overwrite-oldest semantics.
//
// Storage length is always a power of two so that index wraparound is a single
// bitwise AND with mask. One slot is permanently reserved as the gap that
// distinguishes an empty ring from a full one, so usable capacity is
// 2^bits - 1.
//
// A Ring has a single exclusive owner and performs no locking. Statistics
// counters are atomic, so a monitoring goroutine may read them while the owner
// mutates the ring.
type Ring[T any] struct {
	storage []T
	mask    int // len(storage) - 1, power of two minus one
	write   int // next slot to be written
	read    int // oldest live element, when not empty

	sentinel T
	stats    *Statistics
	metrics  *ringMetrics
	evict    EvictCallback[T]
}

// New creates a ring with 2^bits slots, each initialized to sentinel.
// bits is clamped into [MinBits, MaxBits]; out-of-range widths are not an
// error. The sentinel only fills slots that no live element occupies; it is
// never returned through the API.
//
// Plain construction cannot fail. The only error path is Prometheus
// registration when WithMetrics was requested.
func New[T any](bits int, sentinel T, options ...Option[T]) (*Ring[T], error) {
	if bits < MinBits {
		bits = MinBits
	}
	if bits > MaxBits {
		bits = MaxBits
	}

	opts := applyOptions(options...)

	var metrics *ringMetrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newRingMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapInvalid(err, "Ring", "New", "metrics registration")
		}
	}

	mask := 1<<bits - 1
	storage := make([]T, mask+1)
	for i := range storage {
		storage[i] = sentinel
	}

	return &Ring[T]{
		storage:  storage,
		mask:     mask,
		sentinel: sentinel,
		stats:    NewStatistics(),
		metrics:  metrics,
		evict:    opts.evictCallback,
	}, nil
}

// Enqueue appends value as the newest element. When the ring is full the
// oldest element is evicted to make room; Enqueue never fails.
func (r *Ring[T]) Enqueue(value T) {
	r.storage[r.write] = value
	next := (r.write + 1) & r.mask

	var evicted T
	evictedOne := false
	if next == r.read {
		// The write consumed the empty/full gap: advance the read cursor past
		// the oldest element to restore it.
		evicted = r.storage[r.read]
		evictedOne = true
		r.read = (next + 1) & r.mask
	}
	r.write = next

	r.stats.Enqueue()
	if evictedOne {
		r.stats.Eviction()
	}
	r.stats.UpdateSize(int64(r.Len()))

	if r.metrics != nil {
		r.metrics.recordEnqueue(r.Len(), r.mask)
		if evictedOne {
			r.metrics.recordEviction()
		}
	}

	if evictedOne && r.evict != nil {
		r.evict(evicted)
	}
}

// EnqueueAll appends values in left-to-right order, equivalent to repeated
// Enqueue calls. Later values may evict earlier ones once capacity is
// exceeded.
func (r *Ring[T]) EnqueueAll(values ...T) {
	for _, v := range values {
		r.Enqueue(v)
	}
}

// Dequeue removes and returns the oldest element. It returns the zero value
// and false, without changing state, when the ring is empty. The vacated slot
// is not cleared; the stale value stays physically present but is unreachable
// through the API.
func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	if r.read == r.write {
		return zero, false
	}

	value := r.storage[r.read]
	r.read = (r.read + 1) & r.mask

	r.stats.Dequeue()
	r.stats.UpdateSize(int64(r.Len()))
	if r.metrics != nil {
		r.metrics.recordDequeue(r.Len(), r.mask)
	}

	return value, true
}

// Clear empties the ring by moving the read cursor to the write cursor.
// Storage contents are untouched, so the raw state of a cleared ring differs
// from a fresh one; logical equality must be judged via ToSlice.
func (r *Ring[T]) Clear() {
	r.read = r.write

	r.stats.UpdateSize(0)
	if r.metrics != nil {
		r.metrics.updateSize(0, r.mask)
	}
}

// IsEmpty reports whether the ring holds no live elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.read == r.write
}

// IsFull reports whether the ring holds Capacity() live elements.
func (r *Ring[T]) IsFull() bool {
	return (r.write+1)&r.mask == r.read
}

// Len returns the number of live elements, the circular distance from the
// read cursor to the write cursor.
func (r *Ring[T]) Len() int {
	return (r.write + r.mask + 1 - r.read) & r.mask
}

// Capacity returns the number of elements the ring can hold, 2^bits - 1.
func (r *Ring[T]) Capacity() int {
	return r.mask
}

// Head returns the oldest live element without removing it, or the zero value
// and false when the ring is empty.
func (r *Ring[T]) Head() (T, bool) {
	var zero T
	if r.read == r.write {
		return zero, false
	}

	r.stats.Peek()
	if r.metrics != nil {
		r.metrics.recordPeek()
	}

	return r.storage[r.read], true
}

// Rear returns the newest live element without removing it, or the zero value
// and false when the ring is empty.
func (r *Ring[T]) Rear() (T, bool) {
	var zero T
	if r.read == r.write {
		return zero, false
	}

	r.stats.Peek()
	if r.metrics != nil {
		r.metrics.recordPeek()
	}

	return r.storage[(r.write+r.mask)&r.mask], true
}

// ToSlice returns all live elements oldest first. The ring is not mutated:
// the walk uses private cursor copies, so repeated calls on an unmodified
// ring yield identical results. Returns nil when empty.
func (r *Ring[T]) ToSlice() []T {
	n := r.Len()
	if n == 0 {
		return nil
	}

	out := make([]T, 0, n)
	for i, idx := 0, r.read; i < n; i++ {
		out = append(out, r.storage[idx])
		idx = (idx + 1) & r.mask
	}
	return out
}

// Stats returns the ring's statistics (always collected).
func (r *Ring[T]) Stats() *Statistics {
	return r.stats
}
