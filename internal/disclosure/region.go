package disclosure

import (
	"math"
	"time"

	"github.com/alexisbeaulieu97/jiva/internal/frame"
	"github.com/alexisbeaulieu97/jiva/internal/logger"
	"github.com/alexisbeaulieu97/jiva/internal/motion"
	jivaerrors "github.com/alexisbeaulieu97/jiva/pkg/errors"
)

// TransitionDuration is the length of the height animation. Closed content
// stays mounted for exactly this long so the close animation plays against
// real content.
const TransitionDuration = 300 * time.Millisecond

// SettleDuration is how long a closed region waits before unmounting.
const SettleDuration = TransitionDuration

// Phase is the rendering state of a region.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Measurable is content whose natural height can be read and watched.
type Measurable interface {
	// Measure returns the natural height in rows.
	Measure() int
	// ObserveSize calls fn whenever the natural height may have changed.
	ObserveSize(fn func()) (release func())
}

// RegionOption configures a Region.
type RegionOption func(*Region)

// WithLogger logs phase changes at debug level.
func WithLogger(l *logger.Logger) RegionOption {
	return func(r *Region) { r.log = l }
}

// Region animates the height of a panel's content and keeps it mounted
// while it is open or still closing.
type Region struct {
	panel   *Panel
	frames  *frame.Scheduler
	content Measurable
	log     *logger.Logger

	phase    Phase
	wasOpen  bool
	height   *motion.Transition
	measure  frame.Handle
	settle   frame.Handle
	release  func()
	unsub    func()
	onChange func()
	disposed bool
}

// NewRegion creates a region for p. A nil scheduler uses the system clock;
// nil content always measures zero rows.
func NewRegion(p *Panel, frames *frame.Scheduler, content Measurable, opts ...RegionOption) (*Region, error) {
	if p == nil {
		return nil, jivaerrors.NewConfigurationError("region", "", ErrNoPanel)
	}
	if frames == nil {
		frames = frame.NewScheduler(nil)
	}
	r := &Region{panel: p, frames: frames, content: content}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With("panel", string(p.id))
	r.height = motion.NewTransition(frames, TransitionDuration, motion.EaseInOut, 0)
	r.height.OnUpdate = func(float64) { r.changed() }
	r.unsub = p.Subscribe(r.sync)
	r.sync()
	return r, nil
}

// Panel returns the region's panel.
func (r *Region) Panel() *Panel {
	return r.panel
}

// Phase returns the current phase.
func (r *Region) Phase() Phase {
	return r.phase
}

// Mounted reports whether the content should be rendered.
func (r *Region) Mounted() bool {
	return r.phase != PhaseClosed
}

// Height returns the current animated height in whole rows.
func (r *Region) Height() int {
	return int(math.Round(r.height.Value()))
}

// TargetHeight returns the height the region is animating toward.
func (r *Region) TargetHeight() int {
	return int(math.Round(r.height.Target()))
}

// Animating reports whether the height is still moving.
func (r *Region) Animating() bool {
	return r.height.Running()
}

// OnChange sets a callback run after every phase or height change.
func (r *Region) OnChange(fn func()) {
	r.onChange = fn
}

// Dispose releases every subscription, frame and timer the region holds.
// It is safe to call more than once.
func (r *Region) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.unsub()
	r.frames.Cancel(r.measure)
	r.frames.Cancel(r.settle)
	r.height.Stop()
	r.releaseSize()
}

func (r *Region) sync() {
	if r.disposed {
		return
	}
	open := r.panel.IsOpen()
	if open == r.wasOpen {
		return
	}
	r.wasOpen = open
	if open {
		r.open()
	} else {
		r.close()
	}
}

func (r *Region) open() {
	r.frames.Cancel(r.settle)
	r.settle = frame.Handle{}
	r.setPhase(PhaseOpen)
	if r.release == nil && r.content != nil {
		r.release = r.content.ObserveSize(r.resized)
	}
	// content mounts now; its natural height is readable on the next frame
	r.frames.Cancel(r.measure)
	r.measure = r.frames.RequestFrame(func(time.Time) {
		r.measure = frame.Handle{}
		r.height.AnimateTo(float64(r.natural()))
	})
}

func (r *Region) close() {
	r.setPhase(PhaseClosing)
	r.frames.Cancel(r.measure)
	r.measure = frame.Handle{}
	r.height.AnimateTo(0)
	r.frames.Cancel(r.settle)
	r.settle = r.frames.AfterFunc(SettleDuration, r.settled)
}

func (r *Region) settled() {
	r.settle = frame.Handle{}
	if r.panel.IsOpen() {
		return
	}
	r.releaseSize()
	r.height.Jump(0)
	r.setPhase(PhaseClosed)
}

// resized follows a content size change. A settled region jumps to the new
// height so it never clips; one still animating is retargeted.
func (r *Region) resized() {
	if r.phase != PhaseOpen {
		return
	}
	n := float64(r.natural())
	if r.height.Running() {
		if n != r.height.Target() {
			r.height.AnimateTo(n)
		}
		return
	}
	r.height.Jump(n)
}

func (r *Region) natural() int {
	if r.content == nil {
		return 0
	}
	return max(r.content.Measure(), 0)
}

func (r *Region) releaseSize() {
	if r.release != nil {
		r.release()
		r.release = nil
	}
}

func (r *Region) setPhase(p Phase) {
	if r.phase == p {
		return
	}
	r.log.Debug("region phase changed", "from", r.phase.String(), "to", p.String())
	r.phase = p
	r.changed()
}

func (r *Region) changed() {
	if r.onChange != nil {
		r.onChange()
	}
}
