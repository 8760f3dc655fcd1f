package dom

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DefaultPageColor is the colour opacity blends toward when a Compositor has
// no explicit page colour.
const DefaultPageColor Color = "#000000"

// minVisibleOpacity is the opacity under which a node is not painted.
const minVisibleOpacity = 0.02

// degreesPerColumn converts a rotation into a horizontal displacement.
const degreesPerColumn = 5.0

// Compositor paints the visual state of a Document over a rendered frame.
type Compositor struct {
	// Page is the page background colour used for opacity blending.
	Page Color
}

// Compose returns base with every connected node's fill, ring and rotation
// painted on top. Lines are padded as needed so overlays outside the
// rendered content still land on the right cells.
func (c Compositor) Compose(base string, doc *Document) string {
	if doc == nil {
		return base
	}
	page := c.Page
	if page.IsTransparent() {
		page = DefaultPageColor
	}
	cv := &canvas{lines: strings.Split(base, "\n"), bounds: doc.Bounds()}
	for _, child := range doc.Root().children {
		c.paint(cv, child, doc.Bounds(), 1, page)
	}
	return strings.Join(cv.lines, "\n")
}

func (c Compositor) paint(cv *canvas, n *Node, clip Rect, opacity float64, page Color) {
	opacity *= n.Style.Opacity
	if opacity < minVisibleOpacity {
		return
	}
	box := n.Box()

	if dx := int(math.Round(n.Style.Rotate / degreesPerColumn)); dx != 0 {
		cv.shift(box.Intersect(clip), dx)
	}
	if !n.Style.Background.IsTransparent() && !box.Empty() {
		col := n.Style.Background.Blend(page, opacity)
		if n.Style.Rounded {
			cv.ellipse(box, clip, col)
		} else {
			cv.fill(box, clip, col)
		}
	}
	if spread := int(math.Round(n.Style.Ring)); spread > 0 && !n.Style.RingColor.IsTransparent() {
		col := n.Style.RingColor.Blend(page, opacity)
		for d := 1; d <= spread; d++ {
			cv.outline(Rect{X: box.X - d, Y: box.Y - d, W: box.W + 2*d, H: box.H + 2*d}, clip, col, n.Style.Rounded)
		}
	}

	childClip := clip
	if n.Style.ClipChildren {
		childClip = clip.Intersect(box)
	}
	for _, child := range n.children {
		c.paint(cv, child, childClip, opacity, page)
	}
}

type canvas struct {
	lines  []string
	bounds Rect
}

func (cv *canvas) row(y int) (string, bool) {
	if !cv.bounds.Contains(cv.bounds.X, y) {
		return "", false
	}
	for len(cv.lines) <= y {
		cv.lines = append(cv.lines, "")
	}
	return cv.lines[y], true
}

// splice replaces the cells [x, x+width) of row y with seg.
func (cv *canvas) splice(y, x, width int, seg string) {
	line, ok := cv.row(y)
	if !ok || width <= 0 {
		return
	}
	if w := ansi.StringWidth(line); w < x+width {
		line += strings.Repeat(" ", x+width-w)
	}
	total := ansi.StringWidth(line)
	cv.lines[y] = ansi.Cut(line, 0, x) + seg + ansi.Cut(line, x+width, total)
}

// plain returns the unstyled text of cells [x, x+width) of row y, padded.
func (cv *canvas) plain(y, x, width int) string {
	line, _ := cv.row(y)
	text := ansi.Strip(ansi.Cut(line, x, x+width))
	if w := ansi.StringWidth(text); w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}

func (cv *canvas) fill(box, clip Rect, col Color) {
	r := box.Intersect(clip).Intersect(cv.bounds)
	if r.Empty() {
		return
	}
	style := lipgloss.NewStyle().Background(lipgloss.Color(string(col)))
	for y := r.Y; y < r.Y+r.H; y++ {
		cv.splice(y, r.X, r.W, style.Render(cv.plain(y, r.X, r.W)))
	}
}

func (cv *canvas) ellipse(box, clip Rect, col Color) {
	if box.Empty() {
		return
	}
	style := lipgloss.NewStyle().Background(lipgloss.Color(string(col)))
	cx := float64(box.X) + float64(box.W)/2
	for i := 0; i < box.H; i++ {
		dy := (float64(i)+0.5)/float64(box.H)*2 - 1
		half := math.Sqrt(math.Max(0, 1-dy*dy)) * float64(box.W) / 2
		x0 := int(math.Round(cx - half))
		x1 := int(math.Round(cx + half))
		span := Rect{X: x0, Y: box.Y + i, W: x1 - x0, H: 1}.Intersect(clip).Intersect(cv.bounds)
		if span.Empty() {
			continue
		}
		cv.splice(span.Y, span.X, span.W, style.Render(cv.plain(span.Y, span.X, span.W)))
	}
}

func (cv *canvas) outline(r, clip Rect, col Color, rounded bool) {
	if r.W < 2 || r.H < 2 {
		return
	}
	border := lipgloss.NormalBorder()
	if rounded {
		border = lipgloss.RoundedBorder()
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(string(col)))
	bottom := r.Y + r.H - 1
	right := r.X + r.W - 1

	top := border.TopLeft + strings.Repeat(border.Top, r.W-2) + border.TopRight
	low := border.BottomLeft + strings.Repeat(border.Bottom, r.W-2) + border.BottomRight
	cv.run(r.Y, r.X, top, clip, style)
	cv.run(bottom, r.X, low, clip, style)
	for y := r.Y + 1; y < bottom; y++ {
		cv.run(y, r.X, border.Left, clip, style)
		cv.run(y, right, border.Right, clip, style)
	}
}

// run paints text starting at (x, y), clipped to clip.
func (cv *canvas) run(y, x int, text string, clip Rect, style lipgloss.Style) {
	bounds := clip.Intersect(cv.bounds)
	if y < bounds.Y || y >= bounds.Y+bounds.H {
		return
	}
	cells := []rune(text)
	x0 := max(x, bounds.X)
	x1 := min(x+len(cells), bounds.X+bounds.W)
	if x1 <= x0 {
		return
	}
	cv.splice(y, x0, x1-x0, style.Render(string(cells[x0-x:x1-x])))
}

// shift displaces the content of r horizontally by dx cells.
func (cv *canvas) shift(r Rect, dx int) {
	r = r.Intersect(cv.bounds)
	if r.Empty() || dx == 0 {
		return
	}
	if dx >= r.W || -dx >= r.W {
		dx = (r.W - 1) * sign(dx)
		if dx == 0 {
			return
		}
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		line, _ := cv.row(y)
		if w := ansi.StringWidth(line); w < r.X+r.W {
			line += strings.Repeat(" ", r.X+r.W-w)
		}
		seg := ansi.Cut(line, r.X, r.X+r.W)
		var moved string
		if dx > 0 {
			moved = strings.Repeat(" ", dx) + ansi.Cut(seg, 0, r.W-dx)
		} else {
			moved = ansi.Cut(seg, -dx, r.W) + strings.Repeat(" ", -dx)
		}
		cv.lines[y] = line
		cv.splice(y, r.X, r.W, moved)
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
