package components

import (
	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic color set with base, on-base and muted colors.
//
//   - Base: The primary background or brand color
//   - OnBase: Text/content color that contrasts well with Base
//   - Muted: A desaturated variant of Base for subtle accents
//
// All colors are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Danger  ColourSet
	Surface ColourSet
	Neutral ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Dashed  lipgloss.Border
}

// SizeSpec is the padding a size token maps to, in cells.
type SizeSpec struct {
	PadX int
	PadY int
}

// SizeScale maps the sm/md/lg tokens onto cell padding.
type SizeScale struct {
	Sm SizeSpec
	Md SizeSpec
	Lg SizeSpec
}

// Spec returns the padding for a size. The zero Size resolves to medium.
func (s SizeScale) Spec(size Size) SizeSpec {
	switch size {
	case SizeSm:
		return s.Sm
	case SizeLg:
		return s.Lg
	default:
		return s.Md
	}
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantEmphasis
	TypographyVariantFaint
)

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Emphasis lipgloss.Style
	Faint    lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
// This allows themes to define variant styling data-driven rather than code-driven.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components.
// Dark selects which half of every adaptive colour Hex resolves to.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Sizes      SizeScale
	Typography TypographyScale
	Variants   *VariantRegistry
	Dark       bool
}

// Hex resolves an adaptive colour to the concrete value the compositor
// paints with.
func (t Theme) Hex(c lipgloss.AdaptiveColor) dom.Color {
	if t.Dark {
		return dom.Color(c.Dark)
	}
	return dom.Color(c.Light)
}

// Page is the page background colour effects blend toward.
func (t Theme) Page() dom.Color {
	return t.Hex(t.Palette.Surface.Base)
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#dbeafe", "#1e3a8a"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#f8fafc", "#450a0a"),
			Muted:  ac("#fee2e2", "#7f1d1d"),
		},
		Surface: ColourSet{
			Base:   ac("#ffffff", "#0b1120"),
			OnBase: ac("#111827", "#e5e7eb"),
			Muted:  ac("#f3f4f6", "#1f2937"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#d1d5db", "#334155"),
		},
	}

	return newTheme(palette, false)
}

// DarkTheme returns the dark variant of the default theme.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Dark = true
	return theme
}

func newTheme(palette Palette, dark bool) Theme {
	theme := Theme{
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Dashed: lipgloss.Border{
				Top:         "╌",
				Bottom:      "╌",
				Left:        "╎",
				Right:       "╎",
				TopLeft:     "┌",
				TopRight:    "┐",
				BottomLeft:  "└",
				BottomRight: "┘",
			},
		},
		Sizes: SizeScale{
			Sm: SizeSpec{PadX: 1, PadY: 0},
			Md: SizeSpec{PadX: 2, PadY: 0},
			Lg: SizeSpec{PadX: 3, PadY: 1},
		},
		Typography: defaultTypography(palette),
		Variants:   NewVariantRegistry(),
		Dark:       dark,
	}
	registerButtonVariants(theme.Variants)
	return theme
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Neutral.Base),
		Emphasis: body.Bold(true),
		Faint:    body.Faint(true),
	}
}

// registerButtonVariants populates the kind × variant strategies. The
// compound entries mirror each other per kind so a kind only swaps its colour
// set.
func registerButtonVariants(registry *VariantRegistry) {
	for kind, slot := range map[ButtonKind]PaletteSlot{
		ButtonKindPrimary: PalettePrimary,
		ButtonKindDanger:  PaletteDanger,
	} {
		registry.Register(buttonKey{kind, ButtonVariantOutline}, Chain(
			Border(BorderVariantNormal),
			BorderColour(PaletteNeutral),
			OnBase(PaletteSurface),
		))
		registry.Register(buttonKey{kind, ButtonVariantDashed}, Chain(
			Border(BorderVariantDashed),
			BorderColour(PaletteNeutral),
			OnBase(PaletteSurface),
		))
		registry.Register(buttonKey{kind, ButtonVariantFilled}, Chain(
			Background(slot),
		))
		registry.Register(buttonKey{kind, ButtonVariantGhost}, Chain(
			Foreground(slot),
		))
		registry.Register(buttonKey{kind, ButtonVariantFaint}, Chain(
			Foreground(slot),
			Tint(slot),
		))
		registry.Register(buttonKey{kind, ButtonVariantLink}, Chain(
			Foreground(slot),
			func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Underline(true) },
		))
	}
}

// BorderVariant selects a border from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantDashed
)

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantDashed:
		return theme.Borders.Dashed
	default:
		return lipgloss.Border{}
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantFaint:
		return typo.Faint
	default:
		return typo.Body
	}
}

// Background applies a semantic background colour and matching foreground for optimal contrast.
//
// Example:
//
//	button := NewButton("Save").WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// OnBase applies the colour meant for text on top of a slot's base.
func OnBase(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).OnBase)
	}
}

// Tint applies the muted shade of a slot as background.
func Tint(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(slot(theme.Palette).Muted)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColour colours every border edge with the slot's muted shade.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Muted)
	}
}

// Padding applies the padding of a size token.
func Padding(size Size) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		spec := theme.Sizes.Spec(size)
		return base.Padding(spec.PadY, spec.PadX)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
