package showcase

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/jiva/internal/config"
	"github.com/alexisbeaulieu97/jiva/internal/disclosure"
	"github.com/alexisbeaulieu97/jiva/internal/frame/frametest"
	"github.com/alexisbeaulieu97/jiva/internal/ui/components"
)

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestNewBuildsDefaultShowcase(t *testing.T) {
	frames, _ := frametest.NewScheduler()
	m, err := New(config.Default(), WithFrames(frames))
	require.NoError(t, err)

	require.Len(t, m.Buttons(), 6)
	require.Len(t, m.Collapses(), 2)
	require.Equal(t, disclosure.Exclusive, m.Collapses()[0].Group().Policy())
	require.Equal(t, disclosure.Independent, m.Collapses()[1].Group().Policy())
	require.Equal(t, components.SizeLg, m.Collapses()[1].Size())

	require.True(t, m.Collapses()[1].Item("intro").Panel().IsOpen())
	require.NotNil(t, m.Init(), "the open panel animates in")

	icon := m.Buttons()[5]
	require.Equal(t, "button:+", icon.Node().Name)
}

func TestViewRendersTitleButtonsAndTriggers(t *testing.T) {
	r := newRig(t, testConfig)
	view := ansi.Strip(r.m.View())

	require.Contains(t, view, "Test")
	require.Contains(t, view, "Go")
	require.Contains(t, view, "▸ A")
	require.Contains(t, view, "▸ B")
	require.Contains(t, view, "focus none")
	require.NotContains(t, view, "alpha", "closed panels render nothing")
}

func TestStatusLineReportsFocus(t *testing.T) {
	r := newRig(t, testConfig)
	r.send(tea.KeyMsg{Type: tea.KeyTab})
	require.Contains(t, ansi.Strip(r.m.View()), "focus button:Go")
}

func TestNestedTriggersJoinFocusOnceShown(t *testing.T) {
	frames, clk := frametest.NewScheduler()
	m, err := New(config.Default(), WithFrames(frames))
	require.NoError(t, err)
	r := &rig{m: m, frames: frames, clk: clk}
	r.settle()

	// five enabled buttons plus three and two triggers
	require.Len(t, r.m.focusables(), 10)

	nested := r.m.Collapses()[1].Item("nested")
	nested.Trigger().Click()
	r.m.View()
	require.Len(t, r.m.focusables(), 10, "triggers stay out while the panel animates")

	r.settle()
	require.Len(t, r.m.focusables(), 12)

	nested.Trigger().Click()
	r.settle()
	require.Len(t, r.m.focusables(), 10)
}

func TestCloseReleasesAnimations(t *testing.T) {
	r := newRig(t, testConfig)
	r.m.Collapses()[0].Item("a").Panel().ToggleOpen()
	require.True(t, r.frames.Busy())

	r.m.Close()
	require.False(t, r.frames.Busy())
	require.False(t, r.m.Buttons()[0].Node().Connected())
}

func TestSnapshotRendersSettledFrame(t *testing.T) {
	cfg, err := config.Parse("test.yaml", []byte(`version: "1.0.0"
title: Snap
collapses:
  - items:
      - title: Open one
        body: visible body
        open: true
      - title: Closed one
        body: hidden body
`))
	require.NoError(t, err)

	out, err := Snapshot(cfg)
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Snap")
	require.Contains(t, plain, "▾ Open one")
	require.Contains(t, plain, "visible body")
	require.NotContains(t, plain, "hidden body")
	require.NotContains(t, plain, "focus", "static frames carry no status line")
	require.False(t, strings.Contains(plain, "quit"))
}
