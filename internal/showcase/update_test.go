package showcase

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/jiva/internal/config"
	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/frame"
	"github.com/alexisbeaulieu97/jiva/internal/frame/frametest"
)

const testConfig = `version: "1.0.0"
title: Test
width: 40
buttons:
  - label: Go
    effect: shake
  - label: "Off"
    disabled: true
collapses:
  - policy: exclusive
    items:
      - id: a
        title: A
        body: alpha
      - id: b
        title: B
        body: beta
`

type rig struct {
	m      Model
	frames *frame.Scheduler
	clk    *frametest.FakeClock
}

func newRig(t *testing.T, contents string) *rig {
	t.Helper()
	cfg, err := config.Parse("test.yaml", []byte(contents))
	require.NoError(t, err)

	frames, clk := frametest.NewScheduler()
	m, err := New(cfg, WithFrames(frames))
	require.NoError(t, err)
	return &rig{m: m, frames: frames, clk: clk}
}

// send runs msg through Update and renders, the way the program loop does.
func (r *rig) send(msg tea.Msg) tea.Cmd {
	updated, cmd := r.m.Update(msg)
	r.m = updated.(Model)
	r.m.View()
	return cmd
}

func (r *rig) settle() {
	frametest.Settle(r.frames, r.clk, 5*time.Second)
	r.m.View()
}

func (r *rig) focusName() string {
	if n := r.m.Focused(); n != nil {
		return n.Name
	}
	return ""
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestTabCyclesFocusSkippingDisabledButtons(t *testing.T) {
	r := newRig(t, testConfig)
	require.Nil(t, r.m.Focused())

	want := []string{"button:Go", "trigger:a", "trigger:b", "button:Go"}
	for _, name := range want {
		r.send(tea.KeyMsg{Type: tea.KeyTab})
		require.Equal(t, name, r.focusName())
	}

	r.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, "trigger:b", r.focusName())
}

func TestShiftTabStartsFromTheEnd(t *testing.T) {
	r := newRig(t, testConfig)
	r.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, "trigger:b", r.focusName())
}

func TestActivateTogglesFocusedTrigger(t *testing.T) {
	r := newRig(t, testConfig)
	collapse := r.m.Collapses()[0]

	r.send(tea.KeyMsg{Type: tea.KeyTab})
	r.send(tea.KeyMsg{Type: tea.KeyTab})
	r.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, collapse.Item("a").Panel().IsOpen())

	r.send(tea.KeyMsg{Type: tea.KeyTab})
	r.send(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, collapse.Item("b").Panel().IsOpen())
	require.False(t, collapse.Item("a").Panel().IsOpen(), "exclusive group closes the sibling")
}

func TestActivatePlaysButtonEffect(t *testing.T) {
	r := newRig(t, testConfig)

	r.send(tea.KeyMsg{Type: tea.KeyTab})
	r.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, r.m.Effects().Active())

	r.settle()
	require.Zero(t, r.m.Effects().Active())
}

func TestActivateWithoutFocusDoesNothing(t *testing.T) {
	r := newRig(t, testConfig)
	r.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Zero(t, r.m.Effects().Active())
	require.False(t, r.m.Collapses()[0].Item("a").Panel().IsOpen())
}

func TestMouseClickTogglesTriggerAndTakesFocus(t *testing.T) {
	r := newRig(t, testConfig)
	trigger := r.m.Collapses()[0].Item("a").Trigger()
	box := trigger.Node().Box()
	require.False(t, box.Empty())

	cmd := r.send(press(box.X+1, box.Y))
	require.True(t, trigger.Panel().IsOpen())
	require.Equal(t, "trigger:a", r.focusName())
	require.NotNil(t, cmd, "the opening panel needs frames")
}

func TestMouseReleaseIsIgnored(t *testing.T) {
	r := newRig(t, testConfig)
	box := r.m.Collapses()[0].Item("a").Trigger().Node().Box()

	r.send(tea.MouseMsg{X: box.X + 1, Y: box.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.False(t, r.m.Collapses()[0].Item("a").Panel().IsOpen())
}

func TestMouseClickOnDisabledButtonPlaysNothing(t *testing.T) {
	r := newRig(t, testConfig)
	off := r.m.Buttons()[1]
	require.True(t, off.IsDisabled())

	x, y := off.Node().Box().Center()
	r.send(press(x, y))
	require.Zero(t, r.m.Effects().Active())
	require.Nil(t, r.m.Focused(), "disabled buttons never take focus")
}

func TestFrameMessagesAdvanceAnimations(t *testing.T) {
	r := newRig(t, testConfig)
	region := r.m.Collapses()[0].Item("a").Content().Region()

	r.m.Collapses()[0].Item("a").Panel().ToggleOpen()
	for i := 0; i < 30; i++ {
		r.clk.Advance(frame.FrameInterval)
		r.send(frame.FrameMsg{Time: r.clk.Now()})
	}
	require.False(t, region.Animating())
	require.Equal(t, region.TargetHeight(), region.Height())
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		r := newRig(t, testConfig)
		cmd := r.send(msg)
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
		require.Empty(t, r.m.View())
	}
}

func TestHelpKeyTogglesFullHelp(t *testing.T) {
	r := newRig(t, testConfig)
	r.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.True(t, r.m.help.ShowAll)
	r.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.False(t, r.m.help.ShowAll)
}

func TestWindowSizeResizesDocument(t *testing.T) {
	r := newRig(t, testConfig)
	r.send(tea.WindowSizeMsg{Width: 30, Height: 20})

	require.Equal(t, dom.Rect{W: 30, H: 20}, r.m.Document().Bounds())
	require.Equal(t, 30-appStyle.GetHorizontalFrameSize(), r.m.contentWidth())

	r.send(tea.WindowSizeMsg{Width: 200, Height: 50})
	require.Equal(t, 40, r.m.contentWidth(), "never wider than configured")
}
