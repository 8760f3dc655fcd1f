package motion

import (
	"time"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/frame"
)

// Transition tweens a float64 toward a target over a fixed duration, one
// step per frame.
type Transition struct {
	// OnUpdate receives every interpolated value, including the final one.
	OnUpdate func(float64)
	// OnEnd runs when a run reaches its target. Interrupted runs never end.
	OnEnd func()

	sched    *frame.Scheduler
	duration time.Duration
	curve    Curve

	from, to, value float64
	start           time.Time
	handle          frame.Handle
	running         bool
}

// NewTransition creates a transition resting at initial.
func NewTransition(s *frame.Scheduler, d time.Duration, c Curve, initial float64) *Transition {
	if c == nil {
		c = Linear
	}
	return &Transition{sched: s, duration: d, curve: c, value: initial, from: initial, to: initial}
}

// Value returns the current interpolated value.
func (t *Transition) Value() float64 {
	return t.value
}

// Target returns the value the transition is heading to.
func (t *Transition) Target() float64 {
	return t.to
}

// Running reports whether a run is in progress.
func (t *Transition) Running() bool {
	return t.running
}

// Duration returns the run length.
func (t *Transition) Duration() time.Duration {
	return t.duration
}

// AnimateTo starts a run from the current value to target. Retargeting a
// running transition continues from wherever it is. Animating to the value
// it already rests at does nothing, matching how style transitions only
// fire on an actual change.
func (t *Transition) AnimateTo(target float64) {
	if !t.running && target == t.value {
		return
	}
	t.sched.Cancel(t.handle)
	t.from, t.to = t.value, target
	t.start = t.sched.Now()
	t.running = true
	t.handle = t.sched.RequestFrame(t.step)
}

// Jump moves to v immediately, cancelling any run without ending it.
func (t *Transition) Jump(v float64) {
	t.Stop()
	t.from, t.to, t.value = v, v, v
	if t.OnUpdate != nil {
		t.OnUpdate(v)
	}
}

// Stop freezes the transition at its current value.
func (t *Transition) Stop() {
	t.sched.Cancel(t.handle)
	t.handle = frame.Handle{}
	t.running = false
	t.to = t.value
}

func (t *Transition) step(now time.Time) {
	t.handle = frame.Handle{}
	progress := 1.0
	if t.duration > 0 {
		progress = clampUnit(float64(now.Sub(t.start)) / float64(t.duration))
	}
	t.value = Lerp(t.from, t.to, t.curve(progress))
	if progress >= 1 {
		t.value = t.to
	}
	if t.OnUpdate != nil {
		t.OnUpdate(t.value)
	}
	if progress < 1 {
		t.handle = t.sched.RequestFrame(t.step)
		return
	}
	t.running = false
	if t.OnEnd != nil {
		t.OnEnd()
	}
}

// Animate binds a transition to a node property. Each step writes the
// property and a completed run dispatches dom.EventTransitionEnd on the node.
func Animate(s *frame.Scheduler, n *dom.Node, p dom.Property, d time.Duration, c Curve) *Transition {
	t := NewTransition(s, d, c, n.Get(p))
	t.OnUpdate = func(v float64) { n.Set(p, v) }
	t.OnEnd = func() { n.Dispatch(dom.TransitionEnd(p)) }
	return t
}
