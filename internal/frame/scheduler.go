package frame

import (
	"sort"
	"time"
)

// FrameInterval is the delay between two frames while work is pending.
const FrameInterval = time.Second / 60

// Handle identifies a pending frame callback or timer.
// The zero Handle is never issued and cancelling it is a no-op.
type Handle struct {
	index int
	gen   uint32
}

// Valid reports whether the handle was issued by a scheduler.
// A valid handle may still refer to a callback that already ran.
func (h Handle) Valid() bool {
	return h.gen != 0
}

type slotKind int

const (
	kindFrame slotKind = iota
	kindTimer
)

type slot struct {
	gen      uint32
	live     bool
	kind     slotKind
	onFrame  func(time.Time)
	onTimer  func()
	deadline time.Time
	seq      uint64
	tick     uint64
}

// Scheduler runs frame callbacks and timers when ticked.
type Scheduler struct {
	clock    Clock
	slots    []slot
	free     []int
	seq      uint64
	ticks    uint64
	pending  int
	inFlight bool
}

// NewScheduler creates a scheduler reading time from clock.
// A nil clock uses the system clock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{clock: clock}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// RequestFrame registers fn to run on the next Tick.
// Callbacks registered while a Tick is running wait for the following one.
func (s *Scheduler) RequestFrame(fn func(now time.Time)) Handle {
	i := s.alloc()
	sl := &s.slots[i]
	sl.kind = kindFrame
	sl.onFrame = fn
	sl.tick = s.ticks
	return Handle{index: i, gen: sl.gen}
}

// AfterFunc registers fn to run once d has elapsed.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) Handle {
	i := s.alloc()
	sl := &s.slots[i]
	sl.kind = kindTimer
	sl.onTimer = fn
	sl.deadline = s.clock.Now().Add(d)
	return Handle{index: i, gen: sl.gen}
}

// Cancel releases a pending callback. It returns false when the handle
// already fired, was cancelled, or never existed.
func (s *Scheduler) Cancel(h Handle) bool {
	if !s.owns(h) {
		return false
	}
	s.release(h.index)
	return true
}

// Pending reports whether the handle still refers to a callback waiting to run.
func (s *Scheduler) Pending(h Handle) bool {
	return s.owns(h)
}

// Len returns the number of pending callbacks.
func (s *Scheduler) Len() int {
	return s.pending
}

// Busy reports whether any callback is waiting to run.
func (s *Scheduler) Busy() bool {
	return s.pending > 0
}

// Tick runs every frame callback registered before this call, then every
// timer whose deadline has passed, in deadline order.
func (s *Scheduler) Tick() {
	s.ticks++
	now := s.clock.Now()

	var frames, timers []Handle
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.live {
			continue
		}
		switch sl.kind {
		case kindFrame:
			if sl.tick < s.ticks {
				frames = append(frames, Handle{index: i, gen: sl.gen})
			}
		case kindTimer:
			if !sl.deadline.After(now) {
				timers = append(timers, Handle{index: i, gen: sl.gen})
			}
		}
	}

	sort.Slice(frames, func(a, b int) bool {
		return s.slots[frames[a].index].seq < s.slots[frames[b].index].seq
	})
	sort.Slice(timers, func(a, b int) bool {
		sa, sb := s.slots[timers[a].index], s.slots[timers[b].index]
		if !sa.deadline.Equal(sb.deadline) {
			return sa.deadline.Before(sb.deadline)
		}
		return sa.seq < sb.seq
	})

	for _, h := range frames {
		// an earlier callback may have cancelled this one
		if !s.owns(h) {
			continue
		}
		fn := s.slots[h.index].onFrame
		s.release(h.index)
		if fn != nil {
			fn(now)
		}
	}
	for _, h := range timers {
		if !s.owns(h) {
			continue
		}
		fn := s.slots[h.index].onTimer
		s.release(h.index)
		if fn != nil {
			fn()
		}
	}
}

func (s *Scheduler) owns(h Handle) bool {
	if h.gen == 0 || h.index < 0 || h.index >= len(s.slots) {
		return false
	}
	sl := s.slots[h.index]
	return sl.live && sl.gen == h.gen
}

func (s *Scheduler) alloc() int {
	s.seq++
	s.pending++
	var i int
	if n := len(s.free); n > 0 {
		i = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{gen: 1})
		i = len(s.slots) - 1
	}
	sl := &s.slots[i]
	sl.live = true
	sl.seq = s.seq
	return i
}

func (s *Scheduler) release(i int) {
	sl := &s.slots[i]
	gen := sl.gen + 1
	if gen == 0 {
		gen = 1
	}
	*sl = slot{gen: gen}
	s.free = append(s.free, i)
	s.pending--
}
