// Package showcase is the interactive bubbletea program that puts the
// buttons and collapses on screen. It owns the document the components bind
// to, the frame scheduler that drives their animations and the effect
// scheduler behind every highlight.
package showcase

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/jiva/internal/config"
	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/effect"
	"github.com/alexisbeaulieu97/jiva/internal/frame"
	"github.com/alexisbeaulieu97/jiva/internal/logger"
	"github.com/alexisbeaulieu97/jiva/internal/portal"
	"github.com/alexisbeaulieu97/jiva/internal/ui/components"
)

// Option configures a Model.
type Option func(*options)

type options struct {
	frames *frame.Scheduler
	log    *logger.Logger
}

// WithFrames drives animations from s instead of the system clock.
func WithFrames(s *frame.Scheduler) Option {
	return func(o *options) { o.frames = s }
}

// WithLogger logs effect sessions, region phases and input handling.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// Model contains the bubbletea state for the showcase.
type Model struct {
	cfg     *config.Config
	log     *logger.Logger
	theme   components.Theme
	doc     *dom.Document
	frames  *frame.Scheduler
	effects *effect.Scheduler
	painter dom.Compositor

	root      *components.Stack
	buttons   []*components.Button
	collapses []*components.Collapse

	keys keyMap
	help help.Model

	width, height int
	focused       focusable
	quitting      bool
	// static frames carry no status or help lines
	static bool
}

// New builds the showcase described by cfg and binds it to a fresh document.
func New(cfg *config.Config, opts ...Option) (Model, error) {
	if cfg == nil {
		return Model{}, fmt.Errorf("showcase: nil configuration")
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.frames == nil {
		o.frames = frame.NewScheduler(frame.SystemClock())
	}

	theme := components.DarkTheme()
	if cfg.Theme == "light" {
		theme = components.DefaultTheme()
	}

	doc := dom.NewDocument(cfg.Width, 0)
	host := portal.NewHost(doc.Root())
	effectOpts := []effect.Option{effect.WithLogger(o.log.With("component", "effect"))}
	if cfg.Accent != "" {
		effectOpts = append(effectOpts, effect.WithAccent(dom.Color(cfg.Accent)))
	}

	m := Model{
		cfg:     cfg,
		log:     o.log,
		theme:   theme,
		doc:     doc,
		frames:  o.frames,
		effects: effect.NewScheduler(host, o.frames, effectOpts...),
		painter: dom.Compositor{Page: theme.Page()},
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   cfg.Width,
	}

	b := builder{frames: o.frames, log: o.log.With("component", "collapse")}
	root, err := b.build(cfg)
	if err != nil {
		return Model{}, err
	}
	m.root = root
	m.buttons = b.buttons
	m.collapses = b.collapses

	m.root.Bind(doc.Root(), m.effects)
	m.render()

	m.log.Debug("showcase ready",
		"buttons", len(m.buttons),
		"collapses", len(m.collapses),
		"theme", cfg.Theme)
	return m, nil
}

// Init starts the frame loop when a panel opened at construction.
func (m Model) Init() tea.Cmd {
	return m.frames.Next()
}

// Document returns the document the components are bound to.
func (m Model) Document() *dom.Document {
	return m.doc
}

// Frames returns the scheduler driving the animations.
func (m Model) Frames() *frame.Scheduler {
	return m.frames
}

// Effects returns the effect scheduler.
func (m Model) Effects() *effect.Scheduler {
	return m.effects
}

// Buttons returns the button row in order.
func (m Model) Buttons() []*components.Button {
	return m.buttons
}

// Collapses returns the top-level collapses in order.
func (m Model) Collapses() []*components.Collapse {
	return m.collapses
}

// Focused returns the node holding keyboard focus, or nil.
func (m Model) Focused() *dom.Node {
	if m.focused == nil {
		return nil
	}
	return m.focused.Node()
}

// Close unbinds every component and releases pending animations.
func (m Model) Close() {
	m.root.Unbind()
	for _, c := range m.collapses {
		c.Dispose()
	}
}
