package effect_test

import (
	"testing"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/effect"
	"github.com/alexisbeaulieu97/jiva/internal/frame/frametest"
	"github.com/stretchr/testify/require"
)

func TestShakeStepsThroughSequence(t *testing.T) {
	r := newRig(t)
	_, err := r.sched.Trigger(r.target, effect.Shake{}, dom.Click(0, 0))
	require.NoError(t, err)

	frametest.PumpFrames(r.frames, r.clk, 5)
	require.Equal(t, -7.5, r.target.Style.Rotate)

	frametest.PumpFrames(r.frames, r.clk, 5)
	require.Equal(t, -15.0, r.target.Style.Rotate)

	frametest.PumpFrames(r.frames, r.clk, effect.ShakeSubsteps)
	require.Equal(t, 15.0, r.target.Style.Rotate)
}

func TestShakeRestoresTransformWithOneCleanup(t *testing.T) {
	r := newRig(t)
	calls := 0
	_, err := r.sched.Trigger(r.target, counted(effect.Shake{}, &calls), dom.Click(0, 0))
	require.NoError(t, err)

	frames := (len(effect.ShakeSequence) - 1) * effect.ShakeSubsteps
	frametest.PumpFrames(r.frames, r.clk, frames)
	require.Zero(t, calls, "the last angle is shown for one frame before cleanup")

	r.settle()
	require.Equal(t, 1, calls)
	require.Zero(t, r.target.Style.Rotate)
	require.Zero(t, r.sched.Active())
	require.Empty(t, r.target.Children())
	require.False(t, r.frames.Busy())
}

func TestShakeTeardownCancelsPendingFrame(t *testing.T) {
	r := newRig(t)
	var props effect.Props
	_, err := r.sched.Trigger(r.target, effect.Func(func(p effect.Props) func() {
		props = p
		return effect.Shake{}.Run(p)
	}), dom.Click(0, 0))
	require.NoError(t, err)

	frametest.PumpFrames(r.frames, r.clk, 12)
	require.NotZero(t, r.target.Style.Rotate)

	props.Cleanup()
	require.Zero(t, r.target.Style.Rotate)
	require.False(t, r.frames.Busy())
}

func TestShakeOverlappingSessionsSettleAtZero(t *testing.T) {
	r := newRig(t)
	_, err := r.sched.Trigger(r.target, effect.Shake{}, dom.Click(0, 0))
	require.NoError(t, err)

	frametest.PumpFrames(r.frames, r.clk, 5)
	require.Equal(t, -7.5, r.target.Style.Rotate)

	_, err = r.sched.Trigger(r.target, effect.Shake{}, dom.Click(0, 0))
	require.NoError(t, err)
	require.Equal(t, 2, r.sched.Active())

	r.settle()
	require.Zero(t, r.target.Style.Rotate)
	require.Zero(t, r.sched.Active())
}

func TestShakeOnDetachedTargetCleansUpAtOnce(t *testing.T) {
	r := newRig(t)
	r.target.Remove()

	calls := 0
	_, err := r.sched.Trigger(r.target, counted(effect.Shake{}, &calls), dom.Click(0, 0))
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Zero(t, r.sched.Active())

	frametest.PumpFrames(r.frames, r.clk, 2)
	require.Equal(t, 1, calls)
	require.Zero(t, r.target.Style.Rotate)
	require.False(t, r.frames.Busy())
}
