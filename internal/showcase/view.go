package showcase

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/jiva/internal/ui/components"
)

// View renders the current state of the model. Rendering also places every
// node, so hit testing always matches what is on screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

func (m Model) render() string {
	ctx := components.DefaultContext().
		WithTheme(m.theme).
		WithConstraints(components.WithMaxWidth(m.contentWidth()))

	body := m.root.ViewWithContext(ctx)
	m.root.Place(appStyle.GetPaddingLeft(), appStyle.GetPaddingTop())

	sections := []string{body}
	if !m.static {
		sections = append(sections,
			statusStyle.Render(m.status()),
			helpStyle.Render(m.help.View(m.keys)))
	}
	frame := appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	if m.height == 0 {
		// no window size yet: the document covers the frame itself
		w, h := lipgloss.Size(frame)
		m.doc.Resize(max(w, m.width), h)
	}
	return m.painter.Compose(frame, m.doc)
}

// contentWidth is the configured width, narrowed to the window once its
// size is known.
func (m Model) contentWidth() int {
	width := m.cfg.Width
	if m.height > 0 {
		if avail := m.width - appStyle.GetHorizontalFrameSize(); avail > 0 && avail < width {
			width = avail
		}
	}
	return width
}

func (m Model) status() string {
	focus := "none"
	if node := m.Focused(); node != nil {
		focus = node.Name
	}
	return fmt.Sprintf("focus %s   effects %d", focus, m.effects.Active())
}
