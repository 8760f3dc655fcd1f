package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/jiva/internal/frame"
)

// Update handles bubbletea messages. Input may start animations, so every
// message other than a frame ends by asking the scheduler for the next one.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frame.FrameMsg:
		return m, m.frames.HandleFrame(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.doc.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, m.frames.Next()
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		m.activate()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, m.frames.Next()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	hit := m.doc.Click(msg.X, msg.Y)
	m.log.Debug("click", "x", msg.X, "y", msg.Y, "hit", hit != nil)
	if hit != nil {
		m.focusHit(hit)
	}
}
