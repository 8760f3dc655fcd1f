package frame

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is delivered to the bubbletea program once per frame while the
// scheduler has pending work.
type FrameMsg struct {
	Time time.Time
}

// Next returns a command producing the next FrameMsg, or nil when nothing is
// pending or a frame is already on its way.
func (s *Scheduler) Next() tea.Cmd {
	if s.inFlight || !s.Busy() {
		return nil
	}
	s.inFlight = true
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// HandleFrame runs one Tick for msg and schedules the following frame.
func (s *Scheduler) HandleFrame(FrameMsg) tea.Cmd {
	s.inFlight = false
	s.Tick()
	return s.Next()
}
