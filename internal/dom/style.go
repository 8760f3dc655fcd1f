package dom

import (
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Position selects how a node's box is resolved.
type Position int

const (
	// PositionStatic nodes are laid out by the presentation layer via SetBox.
	PositionStatic Position = iota
	// PositionRelative nodes are laid out like static ones but become the
	// containing block of absolute descendants.
	PositionRelative
	// PositionAbsolute nodes are placed relative to their containing block.
	PositionAbsolute
)

func (p Position) String() string {
	switch p {
	case PositionRelative:
		return "relative"
	case PositionAbsolute:
		return "absolute"
	default:
		return "static"
	}
}

// PointerEvents controls whether a node takes part in hit testing.
type PointerEvents int

const (
	PointerAuto PointerEvents = iota
	PointerNone
)

// Color is a "#rrggbb" colour. The empty string and "transparent" mean no colour.
type Color string

// Transparent is the absence of a colour.
const Transparent Color = ""

// IsTransparent reports whether c paints nothing.
func (c Color) IsTransparent() bool {
	s := strings.TrimSpace(strings.ToLower(string(c)))
	return s == "" || s == "transparent"
}

// IsWhite reports whether c resolves to pure white.
func (c Color) IsWhite() bool {
	rgb, ok := c.rgb()
	if !ok {
		return strings.EqualFold(strings.TrimSpace(string(c)), "white")
	}
	r, g, b := rgb.RGB255()
	return r == 255 && g == 255 && b == 255
}

// Blend mixes c over background at the given opacity.
// Unparseable colours are returned unchanged.
func (c Color) Blend(background Color, opacity float64) Color {
	fg, ok := c.rgb()
	if !ok {
		return c
	}
	bg, ok := background.rgb()
	if !ok {
		return c
	}
	opacity = math.Max(0, math.Min(1, opacity))
	return Color(bg.BlendRgb(fg, opacity).Clamped().Hex())
}

func (c Color) rgb() (colorful.Color, bool) {
	if c.IsTransparent() {
		return colorful.Color{}, false
	}
	parsed, err := colorful.Hex(strings.TrimSpace(string(c)))
	if err != nil {
		return colorful.Color{}, false
	}
	return parsed, true
}

// Style carries the visual and geometric properties of a node.
// Lengths are in terminal cells; fractional values come from animations and
// are rounded when painted.
type Style struct {
	Position      Position
	Left, Top     float64
	Width, Height float64
	// Fill sizes an absolute node to its containing block.
	Fill bool
	// Centered places the node's centre, rather than its corner, at Left/Top.
	Centered bool
	// ClipChildren clips painting of descendants to this node's box.
	ClipChildren  bool
	PointerEvents PointerEvents

	Background Color
	Foreground Color
	Opacity    float64
	Rounded    bool

	// Ring is the spread of an outline drawn outside the box.
	Ring      float64
	RingColor Color

	// Rotate is an angle in degrees. Terminals cannot rotate glyphs, so the
	// compositor renders it as a horizontal displacement.
	Rotate float64
}

// DefaultStyle returns a static, fully opaque style.
func DefaultStyle() Style {
	return Style{Opacity: 1}
}
