package motion_test

import (
	"testing"
	"time"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/frame/frametest"
	"github.com/alexisbeaulieu97/jiva/internal/motion"
	"github.com/stretchr/testify/require"
)

func TestTransitionReachesTargetAndEnds(t *testing.T) {
	s, clk := frametest.NewScheduler()
	tr := motion.NewTransition(s, 300*time.Millisecond, motion.Linear, 0)

	var updates []float64
	ends := 0
	tr.OnUpdate = func(v float64) { updates = append(updates, v) }
	tr.OnEnd = func() { ends++ }

	tr.AnimateTo(10)
	require.True(t, tr.Running())
	require.Equal(t, 10.0, tr.Target())

	frametest.PumpFrames(s, clk, 9)
	require.InDelta(t, 5, tr.Value(), 0.01)
	require.Zero(t, ends)

	frametest.Settle(s, clk, time.Second)
	require.Equal(t, 10.0, tr.Value())
	require.False(t, tr.Running())
	require.Equal(t, 1, ends)
	require.Equal(t, 10.0, updates[len(updates)-1])
	require.False(t, s.Busy())
}

func TestTransitionToCurrentValueDoesNothing(t *testing.T) {
	s, _ := frametest.NewScheduler()
	tr := motion.NewTransition(s, time.Second, motion.Linear, 4)
	tr.AnimateTo(4)
	require.False(t, tr.Running())
	require.False(t, s.Busy())
}

func TestTransitionRetargetContinuesFromCurrentValue(t *testing.T) {
	s, clk := frametest.NewScheduler()
	tr := motion.NewTransition(s, 300*time.Millisecond, motion.Linear, 0)
	ends := 0
	tr.OnEnd = func() { ends++ }

	tr.AnimateTo(10)
	frametest.PumpFrames(s, clk, 9)
	mid := tr.Value()

	tr.AnimateTo(0)
	require.Equal(t, mid, tr.Value())
	frametest.PumpFrames(s, clk, 1)
	require.Less(t, tr.Value(), mid)

	frametest.Settle(s, clk, time.Second)
	require.Equal(t, 0.0, tr.Value())
	require.Equal(t, 1, ends, "the interrupted run never ends")
}

func TestTransitionStopAndJump(t *testing.T) {
	s, clk := frametest.NewScheduler()
	tr := motion.NewTransition(s, 300*time.Millisecond, motion.Linear, 0)
	ended := false
	tr.OnEnd = func() { ended = true }

	tr.AnimateTo(10)
	frametest.PumpFrames(s, clk, 3)
	tr.Stop()
	frozen := tr.Value()
	frametest.PumpFrames(s, clk, 30)
	require.Equal(t, frozen, tr.Value())
	require.False(t, ended)

	var last float64
	tr.OnUpdate = func(v float64) { last = v }
	tr.Jump(42)
	require.Equal(t, 42.0, tr.Value())
	require.Equal(t, 42.0, last)
	require.False(t, tr.Running())
}

func TestZeroDurationCompletesOnNextFrame(t *testing.T) {
	s, clk := frametest.NewScheduler()
	tr := motion.NewTransition(s, 0, nil, 0)
	tr.AnimateTo(1)
	frametest.PumpFrames(s, clk, 1)
	require.Equal(t, 1.0, tr.Value())
	require.False(t, tr.Running())
}

func TestAnimateDispatchesTransitionEnd(t *testing.T) {
	s, clk := frametest.NewScheduler()
	n := dom.NewNode("overlay")

	var ended []dom.Property
	n.AddEventListener(dom.EventTransitionEnd, func(ev *dom.Event) { ended = append(ended, ev.Property) })

	ring := motion.Animate(s, n, dom.PropRing, 100*time.Millisecond, motion.EaseInOutCirc)
	fade := motion.Animate(s, n, dom.PropOpacity, 200*time.Millisecond, motion.EaseInOutCirc)
	ring.AnimateTo(1)
	fade.AnimateTo(0)

	frametest.PumpFrames(s, clk, 2)
	require.Greater(t, n.Style.Ring, 0.0)
	require.Less(t, n.Style.Opacity, 1.0)

	frametest.Settle(s, clk, time.Second)
	require.Equal(t, []dom.Property{dom.PropRing, dom.PropOpacity}, ended)
	require.Equal(t, 1.0, n.Style.Ring)
	require.Equal(t, 0.0, n.Style.Opacity)
}
