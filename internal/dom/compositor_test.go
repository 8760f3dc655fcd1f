package dom_test

import (
	"strings"
	"testing"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func compose(t *testing.T, base string, doc *dom.Document) []string {
	t.Helper()
	out := dom.Compositor{}.Compose(base, doc)
	return strings.Split(ansi.Strip(out), "\n")
}

func TestComposeRing(t *testing.T) {
	doc := dom.NewDocument(10, 3)
	n := dom.NewNode("ring")
	n.SetBox(dom.Rect{X: 2, Y: 1, W: 4, H: 1})
	n.Style.Ring = 1
	n.Style.RingColor = "#ff0000"
	doc.Root().AppendChild(n)

	lines := compose(t, "          \n  button  \n          ", doc)
	require.Equal(t, " ┌────┐   ", lines[0])
	require.Equal(t, " │butt│n  ", lines[1])
	require.Equal(t, " └────┘   ", lines[2])
}

func TestComposeRingClippedToViewport(t *testing.T) {
	doc := dom.NewDocument(6, 1)
	n := dom.NewNode("ring")
	n.SetBox(dom.Rect{X: 0, Y: 0, W: 6, H: 1})
	n.Style.Ring = 1
	n.Style.RingColor = "#ff0000"
	doc.Root().AppendChild(n)

	lines := compose(t, "abcdef", doc)
	require.Equal(t, []string{"abcdef"}, lines)
}

func TestComposeSkipsInvisibleNodes(t *testing.T) {
	doc := dom.NewDocument(10, 3)
	n := dom.NewNode("ring")
	n.SetBox(dom.Rect{X: 2, Y: 1, W: 4, H: 1})
	n.Style.Ring = 1
	n.Style.RingColor = "#ff0000"
	n.Style.Opacity = 0
	doc.Root().AppendChild(n)

	base := "          \n  button  \n          "
	require.Equal(t, strings.Split(base, "\n"), compose(t, base, doc))
}

func TestComposeRotationShiftsContent(t *testing.T) {
	doc := dom.NewDocument(10, 1)
	n := dom.NewNode("shaking")
	n.SetBox(dom.Rect{X: 0, Y: 0, W: 6, H: 1})
	doc.Root().AppendChild(n)

	n.Style.Rotate = 10
	require.Equal(t, []string{"  abcdgh  "}, compose(t, "abcdefgh  ", doc))

	n.Style.Rotate = -5
	require.Equal(t, []string{"bcdef gh  "}, compose(t, "abcdefgh  ", doc))
}

func TestComposeFillKeepsText(t *testing.T) {
	doc := dom.NewDocument(10, 2)
	holder := dom.NewNode("holder")
	holder.SetBox(dom.Rect{X: 0, Y: 0, W: 4, H: 1})
	holder.Style.ClipChildren = true
	doc.Root().AppendChild(holder)

	dot := dom.NewNode("dot")
	dot.Style.Position = dom.PositionAbsolute
	dot.Style.Width, dot.Style.Height = 8, 2
	dot.Style.Background = "#00ff00"
	dot.Style.Rounded = true
	holder.AppendChild(dot)

	lines := compose(t, "ok", doc)
	require.Equal(t, "ok  ", lines[0], "fill pads to the clip box only")
	require.Len(t, lines, 1)
}

func TestComposeNilDocument(t *testing.T) {
	require.Equal(t, "x", dom.Compositor{}.Compose("x", nil))
}
