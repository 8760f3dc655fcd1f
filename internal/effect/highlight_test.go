package effect_test

import (
	"testing"

	"github.com/alexisbeaulieu97/jiva/internal/effect"
	"github.com/stretchr/testify/require"
)

func TestAttachTriggersOnClick(t *testing.T) {
	r := newRig(t)
	detach := effect.Attach(r.sched, r.target, effect.Highlight{})
	v, ok := r.target.Attr(effect.HighlightAttr)
	require.True(t, ok)
	require.Equal(t, "halo", v)

	require.Same(t, r.target, r.doc.Click(10, 10))
	require.Equal(t, 1, r.sched.Active())

	detach()
	detach()
	_, ok = r.target.Attr(effect.HighlightAttr)
	require.False(t, ok)
	r.doc.Click(10, 10)
	require.Equal(t, 1, r.sched.Active())
}

func TestAttachDisabledDoesNothing(t *testing.T) {
	r := newRig(t)
	detach := effect.Attach(r.sched, r.target, effect.Highlight{Disabled: true})
	r.doc.Click(10, 10)
	require.Zero(t, r.sched.Active())
	_, ok := r.target.Attr(effect.HighlightAttr)
	require.False(t, ok)
	require.NotPanics(t, detach)
}

func TestAttachDoesNotWrapTwice(t *testing.T) {
	r := newRig(t)
	effect.Attach(r.sched, r.target, effect.Highlight{Effect: effect.Shake{}})
	second := effect.Attach(r.sched, r.target, effect.Highlight{})
	second()

	r.doc.Click(10, 10)
	require.Equal(t, 1, r.sched.Active())
	v, _ := r.target.Attr(effect.HighlightAttr)
	require.Equal(t, "shake", v, "the second attach neither wraps nor detaches the first")
}

func TestAttachNilArguments(t *testing.T) {
	r := newRig(t)
	require.NotPanics(t, effect.Attach(nil, r.target, effect.Highlight{}))
	require.NotPanics(t, effect.Attach(r.sched, nil, effect.Highlight{}))
}
