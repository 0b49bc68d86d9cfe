package buffer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks ring operation counts and derived rates.
type Statistics struct {
	// Atomic counters so a monitoring goroutine can read them while the
	// ring's owner mutates it
	enqueues  int64
	dequeues  int64
	peeks     int64
	evictions int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Enqueue records an enqueue operation.
func (s *Statistics) Enqueue() {
	atomic.AddInt64(&s.enqueues, 1)
}

// Dequeue records a dequeue operation.
func (s *Statistics) Dequeue() {
	atomic.AddInt64(&s.dequeues, 1)
}

// Peek records a head or rear read.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// Eviction records an element overwritten by an enqueue on a full ring.
func (s *Statistics) Eviction() {
	atomic.AddInt64(&s.evictions, 1)
}

// UpdateSize updates the current element count.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Enqueues returns the total number of enqueue operations.
func (s *Statistics) Enqueues() int64 {
	return atomic.LoadInt64(&s.enqueues)
}

// Dequeues returns the total number of dequeue operations.
func (s *Statistics) Dequeues() int64 {
	return atomic.LoadInt64(&s.dequeues)
}

// Peeks returns the total number of head/rear reads.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// Evictions returns the total number of evicted elements.
func (s *Statistics) Evictions() int64 {
	return atomic.LoadInt64(&s.evictions)
}

// CurrentSize returns the current number of live elements.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the high-water element count.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// Throughput returns the average number of enqueues per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Enqueues()) / elapsed.Seconds()
}

// DequeueThroughput returns the average number of dequeues per second.
func (s *Statistics) DequeueThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Dequeues()) / elapsed.Seconds()
}

// EvictionRate returns the fraction of enqueues that evicted an element
// (0.0 to 1.0).
func (s *Statistics) EvictionRate() float64 {
	enqueues := s.Enqueues()
	if enqueues == 0 {
		return 0.0
	}

	return float64(s.Evictions()) / float64(enqueues)
}

// Utilization returns the current fill level relative to capacity
// (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long the ring has existed.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.enqueues, 0)
	atomic.StoreInt64(&s.dequeues, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.evictions, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Enqueues          int64         `json:"enqueues"`
	Dequeues          int64         `json:"dequeues"`
	Peeks             int64         `json:"peeks"`
	Evictions         int64         `json:"evictions"`
	CurrentSize       int64         `json:"current_size"`
	MaxSize           int64         `json:"max_size"`
	Throughput        float64       `json:"throughput"`
	DequeueThroughput float64       `json:"dequeue_throughput"`
	EvictionRate      float64       `json:"eviction_rate"`
	Uptime            time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Enqueues:          s.Enqueues(),
		Dequeues:          s.Dequeues(),
		Peeks:             s.Peeks(),
		Evictions:         s.Evictions(),
		CurrentSize:       s.CurrentSize(),
		MaxSize:           s.MaxSize(),
		Throughput:        s.Throughput(),
		DequeueThroughput: s.DequeueThroughput(),
		EvictionRate:      s.EvictionRate(),
		Uptime:            s.Uptime(),
	}
}
