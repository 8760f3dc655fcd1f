package disclosure

import (
	"errors"

	jivaerrors "github.com/alexisbeaulieu97/jiva/pkg/errors"
)

var (
	// ErrNoGroup is reported for a panel created without a group.
	ErrNoGroup = errors.New("panel must belong to a group")
	// ErrNoPanel is reported for a trigger, content or region without a panel.
	ErrNoPanel = errors.New("component must belong to a panel")
	// ErrNoPanelID is reported for a panel without an id.
	ErrNoPanelID = errors.New("panel id is required")
	// ErrDuplicatePanelID is reported when two panels of a group share an id.
	ErrDuplicatePanelID = errors.New("duplicate panel id")
)

// Panel is one disclosable item of a group. Its open state is derived from
// the group.
type Panel struct {
	group *Group
	id    PanelID
}

// NewPanel binds a panel with the given id to g.
func NewPanel(g *Group, id PanelID) (*Panel, error) {
	if g == nil {
		return nil, jivaerrors.NewConfigurationError("panel", "", ErrNoGroup)
	}
	if id == "" {
		return nil, jivaerrors.NewConfigurationError("panel", "", ErrNoPanelID)
	}
	return &Panel{group: g, id: id}, nil
}

// ID returns the panel id.
func (p *Panel) ID() PanelID {
	return p.id
}

// Group returns the owning group.
func (p *Panel) Group() *Group {
	return p.group
}

// IsOpen reports whether the group has the panel expanded.
func (p *Panel) IsOpen() bool {
	return p.group.IsExpanded(p.id)
}

// ToggleOpen toggles the panel in its group.
func (p *Panel) ToggleOpen() {
	p.group.Toggle(p.id)
}

// Subscribe runs fn after every toggle of the owning group.
func (p *Panel) Subscribe(fn func()) (unsubscribe func()) {
	return p.group.Subscribe(fn)
}

// Trigger toggles its panel when clicked.
type Trigger struct {
	panel   *Panel
	onClick func()
}

// NewTrigger creates a trigger for p. onClick may be nil.
func NewTrigger(p *Panel, onClick func()) (*Trigger, error) {
	if p == nil {
		return nil, jivaerrors.NewConfigurationError("trigger", "", ErrNoPanel)
	}
	return &Trigger{panel: p, onClick: onClick}, nil
}

// Panel returns the trigger's panel.
func (t *Trigger) Panel() *Panel {
	return t.panel
}

// Click runs the caller's handler and then toggles the panel.
func (t *Trigger) Click() {
	if t.onClick != nil {
		t.onClick()
	}
	t.panel.ToggleOpen()
}

// Content is the unanimated body of a panel.
type Content struct {
	panel *Panel
}

// NewContent creates content for p.
func NewContent(p *Panel) (*Content, error) {
	if p == nil {
		return nil, jivaerrors.NewConfigurationError("content", "", ErrNoPanel)
	}
	return &Content{panel: p}, nil
}

// Panel returns the content's panel.
func (c *Content) Panel() *Panel {
	return c.panel
}

// Visible reports whether the content renders. Without a Region it is
// shown only while the panel is open.
func (c *Content) Visible() bool {
	return c.panel.IsOpen()
}
