// Package frametest provides a controllable clock and pumping helpers for
// tests that drive a frame.Scheduler.
package frametest

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/jiva/internal/frame"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// NewScheduler returns a scheduler bound to a fresh FakeClock.
func NewScheduler() (*frame.Scheduler, *FakeClock) {
	clk := NewFakeClock()
	return frame.NewScheduler(clk), clk
}

// Pump advances the clock frame by frame, ticking the scheduler after each
// step, until d has elapsed.
func Pump(s *frame.Scheduler, clk *FakeClock, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame.FrameInterval {
		clk.Advance(frame.FrameInterval)
		s.Tick()
	}
}

// PumpFrames runs exactly n frames.
func PumpFrames(s *frame.Scheduler, clk *FakeClock, n int) {
	for i := 0; i < n; i++ {
		clk.Advance(frame.FrameInterval)
		s.Tick()
	}
}

// Settle pumps frames until the scheduler is idle or limit has elapsed.
// It returns the simulated time spent.
func Settle(s *frame.Scheduler, clk *FakeClock, limit time.Duration) time.Duration {
	var elapsed time.Duration
	for s.Busy() && elapsed < limit {
		clk.Advance(frame.FrameInterval)
		s.Tick()
		elapsed += frame.FrameInterval
	}
	return elapsed
}
