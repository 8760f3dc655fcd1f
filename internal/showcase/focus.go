package showcase

import (
	"github.com/alexisbeaulieu97/jiva/internal/dom"
)

// focusable is anything keyboard focus can land on.
type focusable interface {
	Node() *dom.Node
	SetFocused(focused bool)
}

// focusables lists the enabled buttons and every visible trigger in render
// order. Triggers inside a closed or still animating panel have no box and
// are skipped.
func (m Model) focusables() []focusable {
	out := make([]focusable, 0, len(m.buttons))
	for _, b := range m.buttons {
		if !b.IsDisabled() {
			out = append(out, b)
		}
	}
	for _, c := range m.collapses {
		for _, t := range c.Triggers() {
			out = append(out, t)
		}
	}

	visible := out[:0]
	for _, f := range out {
		if f.Node().Connected() && !f.Node().Box().Empty() {
			visible = append(visible, f)
		}
	}
	return visible
}

func (m *Model) moveFocus(delta int) {
	list := m.focusables()
	if len(list) == 0 {
		return
	}

	next := 0
	if delta < 0 {
		next = len(list) - 1
	}
	for i, f := range list {
		if f == m.focused {
			next = (i + delta + len(list)) % len(list)
			break
		}
	}
	m.setFocus(list[next])
}

func (m *Model) setFocus(f focusable) {
	if m.focused != nil {
		m.focused.SetFocused(false)
	}
	m.focused = f
	if f != nil {
		f.SetFocused(true)
		m.log.Debug("focus moved", "node", f.Node().Name)
	}
}

// focusHit moves focus to the focusable whose node received a click at hit
// or one of its ancestors.
func (m *Model) focusHit(hit *dom.Node) {
	for _, f := range m.focusables() {
		if f.Node().Contains(hit) {
			m.setFocus(f)
			return
		}
	}
}

// activate clicks the centre of the focused element.
func (m *Model) activate() {
	if m.focused == nil {
		return
	}
	node := m.focused.Node()
	box := node.Box()
	if box.Empty() || !node.Connected() {
		return
	}
	x, y := box.Center()
	node.Dispatch(dom.Click(x, y))
}
