package disclosure

import (
	"fmt"
	"slices"
	"strings"

	jivaerrors "github.com/alexisbeaulieu97/jiva/pkg/errors"
)

// Policy decides how a toggle changes the expanded set.
type Policy int

const (
	// Independent panels open and close on their own.
	Independent Policy = iota
	// Exclusive allows at most one expanded panel, like an accordion.
	Exclusive
)

func (p Policy) String() string {
	if p == Exclusive {
		return "exclusive"
	}
	return "independent"
}

// ParsePolicy accepts "exclusive" or "accordion" and "independent" or
// "multiple". The empty string selects Independent.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "independent", "multiple":
		return Independent, nil
	case "exclusive", "accordion":
		return Exclusive, nil
	default:
		return Independent, fmt.Errorf("unknown disclosure policy %q", s)
	}
}

// PanelID identifies a panel within its group.
type PanelID string

// PanelSpec describes one panel to Compose. An empty ID is synthesized from
// the panel's position.
type PanelSpec struct {
	ID PanelID
}

type subscriber struct {
	fn      func()
	removed bool
}

// Group tracks which panels are expanded.
type Group struct {
	policy   Policy
	expanded []PanelID
	subs     []*subscriber
	panels   []*Panel
}

// NewGroup creates an empty group.
func NewGroup(policy Policy) *Group {
	return &Group{policy: policy}
}

// Policy returns the group's policy.
func (g *Group) Policy() Policy {
	return g.policy
}

// Toggle flips id according to the policy and notifies subscribers in
// subscription order. Unknown ids are accepted.
func (g *Group) Toggle(id PanelID) {
	open := g.IsExpanded(id)
	switch g.policy {
	case Exclusive:
		if open {
			g.expanded = nil
		} else {
			g.expanded = []PanelID{id}
		}
	default:
		if open {
			g.expanded = slices.DeleteFunc(g.expanded, func(cur PanelID) bool { return cur == id })
		} else {
			g.expanded = append(g.expanded, id)
		}
	}
	g.notify()
}

// IsExpanded reports whether id is in the expanded set.
func (g *Group) IsExpanded(id PanelID) bool {
	return slices.Contains(g.expanded, id)
}

// Expanded returns the expanded ids in the order they were opened.
func (g *Group) Expanded() []PanelID {
	return slices.Clone(g.expanded)
}

// Subscribe registers fn to run after every toggle and returns a function
// that removes it.
func (g *Group) Subscribe(fn func()) (unsubscribe func()) {
	s := &subscriber{fn: fn}
	g.subs = append(g.subs, s)
	return func() {
		if s.removed {
			return
		}
		s.removed = true
		g.subs = slices.DeleteFunc(g.subs, func(cur *subscriber) bool { return cur == s })
	}
}

func (g *Group) notify() {
	for _, s := range slices.Clone(g.subs) {
		if !s.removed {
			s.fn()
		}
	}
}

// Compose creates one panel per spec, in order. Panels without an id are
// named "item-<index>" after their position in the group. Ids must be unique
// across the group; on error no panel is added.
func (g *Group) Compose(specs ...PanelSpec) ([]*Panel, error) {
	seen := make(map[PanelID]bool, len(g.panels)+len(specs))
	for _, p := range g.panels {
		seen[p.id] = true
	}

	panels := make([]*Panel, 0, len(specs))
	for i, spec := range specs {
		id := spec.ID
		if id == "" {
			id = PanelID(fmt.Sprintf("item-%d", len(g.panels)+i))
		}
		if seen[id] {
			return nil, jivaerrors.NewConfigurationError("group", fmt.Sprintf("panel id %q is used twice", id), ErrDuplicatePanelID)
		}
		seen[id] = true
		panels = append(panels, &Panel{group: g, id: id})
	}
	g.panels = append(g.panels, panels...)
	return panels, nil
}

// Len returns the number of composed panels.
func (g *Group) Len() int {
	return len(g.panels)
}

// Panels returns the composed panels in order.
func (g *Group) Panels() []*Panel {
	return slices.Clone(g.panels)
}
