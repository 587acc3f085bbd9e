package sink

import (
	"sync/atomic"
)

// Stats tracks sink statistics
type Stats struct {
	// FragmentsTotal counts successful fragment writes
	FragmentsTotal uint64
	// LinesTotal counts terminated lines
	LinesTotal uint64
	// BytesTotal counts bytes handed to the destination
	BytesTotal uint64
	// DroppedTotal counts fragments and terminators that were lost
	DroppedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementFragment atomically records a fragment of n bytes
func (s *Stats) IncrementFragment(n int) {
	atomic.AddUint64(&s.FragmentsTotal, 1)
	atomic.AddUint64(&s.BytesTotal, uint64(n))
}

// IncrementLine atomically records a terminated line
func (s *Stats) IncrementLine() {
	atomic.AddUint64(&s.LinesTotal, 1)
	atomic.AddUint64(&s.BytesTotal, 1)
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.FragmentsTotal, 0)
	atomic.StoreUint64(&s.LinesTotal, 0)
	atomic.StoreUint64(&s.BytesTotal, 0)
	atomic.StoreUint64(&s.DroppedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Fragments uint64
	Lines     uint64
	Bytes     uint64
	Dropped   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Fragments: atomic.LoadUint64(&s.FragmentsTotal),
		Lines:     atomic.LoadUint64(&s.LinesTotal),
		Bytes:     atomic.LoadUint64(&s.BytesTotal),
		Dropped:   atomic.LoadUint64(&s.DroppedTotal),
	}
}

// Add returns the element-wise sum of two snapshots
func (s Snapshot) Add(o Snapshot) Snapshot {
	return Snapshot{
		Fragments: s.Fragments + o.Fragments,
		Lines:     s.Lines + o.Lines,
		Bytes:     s.Bytes + o.Bytes,
		Dropped:   s.Dropped + o.Dropped,
	}
}
