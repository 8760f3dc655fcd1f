// Package components provides the theme-aware terminal components the
// disclosure and highlight engines are presented through.
//
// # Overview
//
// Components are lipgloss renderers with a React-inspired shape: every
// component embeds BaseComponent, takes StyleFunc modifiers through
// WithAppliers and renders through View or ViewWithContext. Themes are
// immutable and passed explicitly through RenderContext:
//
//	theme := components.DarkTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := component.ViewWithContext(ctx)
//
// # Document nodes
//
// Interactive components own a dom.Node. After a frame is rendered the
// caller places the root component at its screen cell; containers forward
// the offsets their children landed on, so node boxes always match what is
// on screen:
//
//	view := root.ViewWithContext(ctx)
//	root.Place(0, 0)
//
// Bind attaches the nodes to a document. Buttons are wrapped in a Highlight
// unless disabled; collapse triggers route clicks to their disclosure
// panels.
//
// # Components
//
//   - Text: styled text content
//   - Stack: vertical/horizontal arrangement with gaps and alignment
//   - Button: kind, variant, size, shape and icon, with click feedback
//   - Collapse: titled panels over a disclosure group, bodies animated by a
//     disclosure region and clipped to its current height
//
// # Sizes
//
// Buttons and collapses share the sm/md/lg Size tokens. Collapse items
// without their own size inherit the collapse size, which defaults to md.
package components
