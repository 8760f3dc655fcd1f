package effect

import (
	"time"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/motion"
)

const (
	// RippleDiameter is the width, in cells, a ripple dot grows to.
	RippleDiameter = 40.0
	// RippleDuration is how long a ripple takes to grow and fade.
	RippleDuration = time.Second
	// RippleOpacity is the starting opacity of a ripple dot.
	RippleOpacity = 0.8
)

// RippleName and RippleDotName name the nodes a ripple adds to its target.
const (
	RippleName    = "ripple"
	RippleDotName = "ripple-dot"
)

// Ripple grows a dot from the click point inside the target.
type Ripple struct{}

// Name implements Namer.
func (Ripple) Name() string { return "ripple" }

// Run implements Effect.
func (Ripple) Run(p Props) func() {
	if !p.Target.Connected() {
		p.Cleanup()
		return func() {}
	}
	holder := dom.NewNode(RippleName)
	holder.Style.Position = dom.PositionAbsolute
	holder.Style.Fill = true
	holder.Style.ClipChildren = true
	holder.Style.PointerEvents = dom.PointerNone
	p.Target.AppendChild(holder)

	box := p.Target.Box()
	colour := p.Target.Style.Foreground
	if colour.IsTransparent() {
		colour = p.Accent
	}
	dot := dom.NewNode(RippleDotName)
	dot.Style.Position = dom.PositionAbsolute
	dot.Style.Centered = true
	dot.Style.Left = float64(p.Event.X - box.X)
	dot.Style.Top = float64(p.Event.Y - box.Y)
	dot.Style.Rounded = true
	dot.Style.Background = colour
	dot.Style.Opacity = RippleOpacity
	dot.Style.PointerEvents = dom.PointerNone
	holder.AppendChild(dot)

	var transitions []*motion.Transition
	start := p.Frames.RequestFrame(func(time.Time) {
		// Cells are roughly twice as tall as wide.
		targets := []struct {
			prop dom.Property
			to   float64
		}{
			{dom.PropWidth, RippleDiameter},
			{dom.PropHeight, RippleDiameter / 2},
			{dom.PropOpacity, 0},
		}
		for _, tg := range targets {
			tr := motion.Animate(p.Frames, dot, tg.prop, RippleDuration, motion.Ease)
			tr.AnimateTo(tg.to)
			transitions = append(transitions, tr)
		}
	})

	unlisten := dot.AddEventListener(dom.EventTransitionEnd, func(ev *dom.Event) {
		if ev.Property != dom.PropWidth {
			return
		}
		holder.Remove()
		p.Cleanup()
	})

	return func() {
		p.Frames.Cancel(start)
		for _, tr := range transitions {
			tr.Stop()
		}
		unlisten()
		if holder.Parent() != nil {
			holder.Remove()
		}
	}
}
