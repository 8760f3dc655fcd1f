package components

import (
	"slices"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/effect"
	"github.com/alexisbeaulieu97/jiva/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// StyleFunc derives a style from a base style and the active theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy derives a component's style from the active theme.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleChain is a StyleStrategy applying each func in order.
type StyleChain []StyleFunc

// Apply implements StyleStrategy.
func (c StyleChain) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c {
		base = fn(base, theme)
	}
	return base
}

// Chain returns a strategy applying fns in order.
func Chain(fns ...StyleFunc) StyleStrategy {
	return StyleChain(slices.Clone(fns))
}

// BaseComponent holds the raw style and theme appliers shared by the
// components in this package.
type BaseComponent struct {
	style lipgloss.Style
	chain StyleChain
}

// NewBaseComponent returns a base with an empty style and no appliers.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the raw style with every applier run against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return b.chain.Apply(b.style, theme)
}

func (b *BaseComponent) setAppliers(fns ...StyleFunc) {
	b.chain = slices.Clone(fns)
}

// addAppliers never writes into a backing array a copy of b may share.
func (b *BaseComponent) addAppliers(fns ...StyleFunc) {
	b.chain = append(slices.Clip(b.chain), fns...)
}

// Constraints bound the width a component may render at. A negative
// MaxWidth means no upper bound.
type Constraints struct {
	MinWidth int
	MaxWidth int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1}
}

// WithMaxWidth returns constraints capping the width at maxWidth.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// RenderContext provides layout information and theme to components during
// rendering. No component reads global theme state.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// ContextualRenderable is a component that can receive layout context.
// This is an advanced interface; most components only need Renderable.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Placeable components own document nodes. Containers call Place after
// rendering with the cell the component's top-left corner landed on, or Hide
// when the component is not on screen this frame.
type Placeable interface {
	Place(x, y int)
	Hide()
}

// Bindable components attach their nodes below parent and wire click feedback
// through effects.
type Bindable interface {
	Bind(parent *dom.Node, effects *effect.Scheduler)
	Unbind()
}

func renderChild(child ui.Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
	CrossStretch
)
