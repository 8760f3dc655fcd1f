package effect

import "github.com/alexisbeaulieu97/jiva/internal/dom"

// HighlightAttr marks nodes that already carry a highlight.
const HighlightAttr = "data-highlight"

// Highlight configures Attach.
type Highlight struct {
	Disabled bool
	// Effect defaults to Halo.
	Effect Effect
}

// Attach makes every click on target trigger h.Effect through s. Disabled
// highlights and nodes that already carry one are left untouched. The
// returned detach function is idempotent.
func Attach(s *Scheduler, target *dom.Node, h Highlight) (detach func()) {
	if h.Disabled || s == nil || target == nil {
		return func() {}
	}
	if _, ok := target.Attr(HighlightAttr); ok {
		return func() {}
	}
	eff := h.Effect
	if eff == nil {
		eff = Halo{}
	}
	target.SetAttr(HighlightAttr, nameOf(eff))
	unlisten := target.AddEventListener(dom.EventClick, func(ev *dom.Event) {
		// the target is non-nil, so Trigger cannot fail
		_, _ = s.Trigger(target, eff, *ev)
	})

	detached := false
	return func() {
		if detached {
			return
		}
		detached = true
		unlisten()
		target.RemoveAttr(HighlightAttr)
	}
}
