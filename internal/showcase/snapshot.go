package showcase

import (
	"time"

	"github.com/alexisbeaulieu97/jiva/internal/config"
	"github.com/alexisbeaulieu97/jiva/internal/frame"
)

// snapshotLimit bounds the simulated time a snapshot waits for animations.
const snapshotLimit = 5 * time.Second

// stepClock is advanced by hand, one frame at a time.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}

// Snapshot renders cfg as a single static frame with every animation run to
// completion. The help line is left out.
func Snapshot(cfg *config.Config, opts ...Option) (string, error) {
	clk := &stepClock{now: time.Now()}
	frames := frame.NewScheduler(clk)

	m, err := New(cfg, append(opts, WithFrames(frames))...)
	if err != nil {
		return "", err
	}
	defer m.Close()

	for elapsed := time.Duration(0); frames.Busy() && elapsed < snapshotLimit; elapsed += frame.FrameInterval {
		clk.now = clk.now.Add(frame.FrameInterval)
		frames.Tick()
		m.render()
	}

	m.static = true
	return m.render(), nil
}
