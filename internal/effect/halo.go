package effect

import (
	"time"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/motion"
)

const (
	// HaloRingDuration is how long the ring takes to spread.
	HaloRingDuration = 400 * time.Millisecond
	// HaloFadeDuration is how long the overlay takes to fade out.
	HaloFadeDuration = 2 * time.Second
	// HaloSpread is the final ring spread in cells.
	HaloSpread = 1.0
)

// Halo draws a ring around the target that spreads and fades out. It is the
// default highlight.
type Halo struct{}

// Name implements Namer.
func (Halo) Name() string { return "halo" }

// Run implements Effect.
func (Halo) Run(p Props) func() {
	overlay := dom.NewNode("halo")
	overlay.Style.Position = dom.PositionAbsolute
	overlay.Style.PointerEvents = dom.PointerNone
	p.Container.AppendChild(overlay)

	measure := func() {
		box := p.Target.Box()
		overlay.Style.Width = float64(box.W)
		overlay.Style.Height = float64(box.H)
		overlay.Style.Rounded = p.Target.Style.Rounded
		overlay.Style.RingColor = accentOf(p.Target, p.Accent)
	}

	var ring, fade *motion.Transition
	start := p.Frames.RequestFrame(func(time.Time) {
		if !p.Target.Connected() {
			p.Cleanup()
			return
		}
		measure()
		ring = motion.Animate(p.Frames, overlay, dom.PropRing, HaloRingDuration, motion.EaseInOutCirc)
		fade = motion.Animate(p.Frames, overlay, dom.PropOpacity, HaloFadeDuration, motion.EaseInOutCirc)
		ring.AnimateTo(HaloSpread)
		fade.AnimateTo(0)
	})

	unobserve := p.Target.ObserveResize(func(dom.Rect) { measure() })
	unlisten := overlay.AddEventListener(dom.EventTransitionEnd, func(ev *dom.Event) {
		if ev.Property == dom.PropOpacity {
			p.Cleanup()
		}
	})

	return func() {
		p.Frames.Cancel(start)
		if ring != nil {
			ring.Stop()
		}
		if fade != nil {
			fade.Stop()
		}
		unobserve()
		unlisten()
		overlay.Remove()
	}
}

// accentOf picks the target's background unless it is white or
// transparent, in which case fallback is used.
func accentOf(target *dom.Node, fallback dom.Color) dom.Color {
	bg := target.Style.Background
	if bg.IsTransparent() || bg.IsWhite() {
		return fallback
	}
	return bg
}
