package dom

// Property names an animatable numeric style property.
type Property int

const (
	PropOpacity Property = iota
	PropWidth
	PropHeight
	PropRing
	PropRotate
)

func (p Property) String() string {
	switch p {
	case PropOpacity:
		return "opacity"
	case PropWidth:
		return "width"
	case PropHeight:
		return "height"
	case PropRing:
		return "ring"
	case PropRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Get reads the current value of p.
func (n *Node) Get(p Property) float64 {
	switch p {
	case PropOpacity:
		return n.Style.Opacity
	case PropWidth:
		return n.Style.Width
	case PropHeight:
		return n.Style.Height
	case PropRing:
		return n.Style.Ring
	case PropRotate:
		return n.Style.Rotate
	default:
		return 0
	}
}

// Set writes v to p.
func (n *Node) Set(p Property, v float64) {
	switch p {
	case PropOpacity:
		n.Style.Opacity = v
	case PropWidth:
		n.Style.Width = v
	case PropHeight:
		n.Style.Height = v
	case PropRing:
		n.Style.Ring = v
	case PropRotate:
		n.Style.Rotate = v
	}
}
