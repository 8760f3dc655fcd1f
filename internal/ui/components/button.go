package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/effect"
	"github.com/charmbracelet/lipgloss"
)

// ButtonKind selects the colour set of a button.
type ButtonKind int

const (
	ButtonKindPrimary ButtonKind = iota
	ButtonKindDanger
)

func (k ButtonKind) String() string {
	if k == ButtonKindDanger {
		return "danger"
	}
	return "primary"
}

// ButtonVariant selects how the colour set is applied.
type ButtonVariant int

const (
	ButtonVariantOutline ButtonVariant = iota
	ButtonVariantFilled
	ButtonVariantDashed
	ButtonVariantGhost
	ButtonVariantFaint
	ButtonVariantLink
)

var buttonVariantNames = map[ButtonVariant]string{
	ButtonVariantOutline: "outline",
	ButtonVariantFilled:  "filled",
	ButtonVariantDashed:  "dashed",
	ButtonVariantGhost:   "ghost",
	ButtonVariantFaint:   "faint",
	ButtonVariantLink:    "link",
}

func (v ButtonVariant) String() string {
	return buttonVariantNames[v]
}

// ParseButtonVariant maps a variant name onto a ButtonVariant. The empty
// string is the outline default.
func ParseButtonVariant(value string) (ButtonVariant, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ButtonVariantOutline, nil
	}
	for variant, name := range buttonVariantNames {
		if name == value {
			return variant, nil
		}
	}
	return ButtonVariantOutline, fmt.Errorf("unknown button variant %q", value)
}

// ButtonShape selects the outline of a button.
type ButtonShape int

const (
	ButtonShapeRect ButtonShape = iota
	ButtonShapeCircle
)

// buttonKey indexes the variant registry by kind and variant together.
type buttonKey struct {
	kind    ButtonKind
	variant ButtonVariant
}

// iconWidths are the fixed widths of icon-only buttons per size.
var iconWidths = map[Size]int{
	SizeSm: 3,
	SizeMd: 5,
	SizeLg: 7,
}

// Button is a clickable label backed by a document node. Enabled buttons get
// click feedback through Highlight once bound.
type Button struct {
	BaseComponent
	label    string
	icon     string
	kind     ButtonKind
	variant  ButtonVariant
	size     Size
	shape    ButtonShape
	disabled bool
	focused  bool
	effect   effect.Effect

	node   *dom.Node
	detach func()
	width  int
	height int
}

// NewButton creates an outline, medium, rectangular primary button.
func NewButton(label string) *Button {
	node := dom.NewNode("button")
	node.SetBox(dom.Rect{})
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		kind:          ButtonKindPrimary,
		variant:       ButtonVariantOutline,
		size:          SizeMd,
		shape:         ButtonShapeRect,
		node:          node,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context and syncs
// the node colours the effects read.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.computeStyle(ctx.Theme)
	out := style.Render(b.content())
	b.width = lipgloss.Width(out)
	b.height = lipgloss.Height(out)
	b.syncNode(ctx.Theme)
	return out
}

func (b *Button) content() string {
	switch {
	case b.icon != "" && b.label != "":
		return b.icon + " " + b.label
	case b.icon != "":
		return b.icon
	default:
		return b.label
	}
}

func (b *Button) iconOnly() bool {
	return b.icon != "" && b.label == ""
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	baseStyle := b.ComputeStyle(theme)

	var style lipgloss.Style
	if strategy := theme.Variants.Get(buttonKey{b.kind, b.variant}); strategy != nil {
		style = strategy.Apply(baseStyle, theme)
	} else {
		style = baseStyle
	}

	if b.iconOnly() {
		style = style.Width(iconWidths[b.size.Or(SizeMd)]).Align(lipgloss.Center)
	} else {
		style = Padding(b.size)(style, theme)
	}

	if b.shape == ButtonShapeCircle && style.GetBorderTop() {
		style = style.BorderStyle(theme.Borders.Rounded)
	}

	if b.disabled {
		style = style.Faint(true)
	}

	if b.focused {
		style = style.Bold(true).Underline(true)
	}

	return style
}

// syncNode copies the resolved colours onto the node. Variants that paint no
// background leave it transparent so the halo falls back to the accent.
func (b *Button) syncNode(theme Theme) {
	set := PalettePrimary
	if b.kind == ButtonKindDanger {
		set = PaletteDanger
	}
	cs := set(theme.Palette)

	node := b.node
	node.Name = "button:" + b.content()
	node.Style.Rounded = b.shape == ButtonShapeCircle
	switch b.variant {
	case ButtonVariantFilled:
		node.Style.Background = theme.Hex(cs.Base)
		node.Style.Foreground = theme.Hex(cs.OnBase)
	case ButtonVariantFaint:
		node.Style.Background = theme.Hex(cs.Muted)
		node.Style.Foreground = theme.Hex(cs.Base)
	case ButtonVariantOutline, ButtonVariantDashed:
		node.Style.Background = ""
		node.Style.Foreground = theme.Hex(theme.Palette.Surface.OnBase)
	default:
		node.Style.Background = ""
		node.Style.Foreground = theme.Hex(cs.Base)
	}
}

// Bind attaches the button node below parent. Disabled buttons are not
// highlighted.
func (b *Button) Bind(parent *dom.Node, effects *effect.Scheduler) {
	b.Unbind()
	if parent != nil {
		parent.AppendChild(b.node)
	}
	b.detach = effect.Attach(effects, b.node, effect.Highlight{
		Disabled: b.disabled,
		Effect:   b.effect,
	})
}

// Unbind detaches the highlight and removes the node from its document.
func (b *Button) Unbind() {
	if b.detach != nil {
		b.detach()
		b.detach = nil
	}
	b.node.Remove()
}

// Place positions the node at the cell the last render landed on.
func (b *Button) Place(x, y int) {
	b.node.SetBox(dom.Rect{X: x, Y: y, W: b.width, H: b.height})
}

// Hide gives the node an empty box so it cannot be hit.
func (b *Button) Hide() {
	b.node.SetBox(dom.Rect{})
}

// Node returns the document node backing the button.
func (b *Button) Node() *dom.Node {
	return b.node
}

// Size returns the rendered width and height from the last render.
func (b *Button) Size() (int, int) {
	return b.width, b.height
}

// WithKind sets the colour set.
func (b *Button) WithKind(kind ButtonKind) *Button {
	b.kind = kind
	return b
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the size token. SizeDefault renders as medium.
func (b *Button) WithSize(size Size) *Button {
	b.size = size
	return b
}

// WithShape sets the outline shape.
func (b *Button) WithShape(shape ButtonShape) *Button {
	b.shape = shape
	return b
}

// WithIcon sets a glyph shown before the label, or alone when the label is
// empty.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// WithEffect sets the click feedback. Nil means the halo.
func (b *Button) WithEffect(eff effect.Effect) *Button {
	b.effect = eff
	return b
}

// WithDisabled sets the disabled state. It takes effect on the next Bind.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// SetFocused sets the keyboard focus state.
func (b *Button) SetFocused(focused bool) {
	b.focused = focused
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.addAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsFocused returns true if the button has keyboard focus.
func (b *Button) IsFocused() bool {
	return b.focused
}

// DangerButton creates a danger button.
func DangerButton(label string) *Button {
	return NewButton(label).WithKind(ButtonKindDanger)
}
