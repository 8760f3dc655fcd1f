package effect_test

import (
	"testing"
	"time"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/effect"
	"github.com/alexisbeaulieu97/jiva/internal/frame"
	"github.com/alexisbeaulieu97/jiva/internal/frame/frametest"
	"github.com/alexisbeaulieu97/jiva/internal/portal"
	"github.com/stretchr/testify/require"
)

type rig struct {
	doc    *dom.Document
	frames *frame.Scheduler
	clk    *frametest.FakeClock
	host   *portal.Host
	sched  *effect.Scheduler
	target *dom.Node
}

func newRig(t *testing.T, opts ...effect.Option) *rig {
	t.Helper()
	doc := dom.NewDocument(200, 120)
	frames, clk := frametest.NewScheduler()
	host := portal.NewHost(doc.Root())
	target := dom.NewNode("target")
	target.SetBox(dom.Rect{W: 100, H: 100})
	doc.Root().AppendChild(target)
	return &rig{
		doc:    doc,
		frames: frames,
		clk:    clk,
		host:   host,
		sched:  effect.NewScheduler(host, frames, opts...),
		target: target,
	}
}

func (r *rig) settle() {
	frametest.Settle(r.frames, r.clk, 5*time.Second)
}

// counted wraps e so every cleanup call the effect makes is counted.
func counted(e effect.Effect, n *int) effect.Effect {
	return effect.Func(func(p effect.Props) func() {
		inner := p.Cleanup
		p.Cleanup = func() {
			*n++
			inner()
		}
		return e.Run(p)
	})
}

func find(root *dom.Node, name string) *dom.Node {
	if root.Name == name {
		return root
	}
	for _, c := range root.Children() {
		if n := find(c, name); n != nil {
			return n
		}
	}
	return nil
}

func TestByName(t *testing.T) {
	for _, name := range effect.Names() {
		e, ok := effect.ByName(name)
		require.True(t, ok, name)
		require.Equal(t, name, e.(effect.Namer).Name())
	}
	_, ok := effect.ByName("  HALO ")
	require.True(t, ok)
	_, ok = effect.ByName("sparkle")
	require.False(t, ok)
	require.Equal(t, []string{"halo", "ripple", "shake"}, effect.Names())
}
