package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock returns the current time used for line prefixes
type Clock func() time.Time

// SystemClock reads the wall clock on every call
func SystemClock() time.Time {
	return time.Now()
}

// coarseResolution is well below the one-second resolution of the
// prefix timestamp.
const coarseResolution = 100 * time.Millisecond

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 100ms. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(coarseResolution)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. It falls back to
// time.Now() if StartCoarseClock has not been called.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}

// CoarseClock starts the coarse clock and returns it as a Clock
func CoarseClock() Clock {
	StartCoarseClock()
	return CoarseNow
}
