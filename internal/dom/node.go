package dom

import "math"

// Node is an element of the retained tree.
type Node struct {
	// Name identifies the node in logs and tests.
	Name  string
	Style Style

	parent   *Node
	children []*Node
	doc      *Document
	box      Rect
	boxSet   bool
	attrs    map[string]string

	listeners map[EventKind][]*listener
	resize    []*resizeObserver
	detach    []*disconnectObserver
}

// NewNode returns a detached node with the default style.
func NewNode(name string) *Node {
	return &Node{Name: name, Style: DefaultStyle()}
}

// Parent returns the node's parent, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a snapshot of the node's children in paint order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// AppendChild moves child to the end of n's children.
func (n *Node) AppendChild(child *Node) {
	n.insert(child, len(n.children))
}

// PrependChild moves child to the front of n's children.
func (n *Node) PrependChild(child *Node) {
	n.insert(child, 0)
}

func (n *Node) insert(child *Node, at int) {
	if child == nil || child == n || child.Contains(n) {
		return
	}
	wasConnected := child.Connected()
	if child.parent != nil {
		child.parent.unlink(child)
	}
	if at > len(n.children) {
		at = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[at+1:], n.children[at:])
	n.children[at] = child
	child.parent = n
	if wasConnected && !child.Connected() {
		child.notifyDisconnect()
	}
}

// RemoveChild detaches child from n. It reports false when child is not a
// direct child of n.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil || child.parent != n {
		return false
	}
	wasConnected := child.Connected()
	n.unlink(child)
	if wasConnected {
		child.notifyDisconnect()
	}
	return true
}

// Remove detaches n from its parent. Removing a detached node does nothing.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	n.parent.RemoveChild(n)
}

func (n *Node) unlink(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Document returns the document n is connected to, or nil.
func (n *Node) Document() *Document {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur.doc
}

// Connected reports whether n is attached to a Document.
func (n *Node) Connected() bool {
	return n.Document() != nil
}

// Attr returns the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr sets the named attribute.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// RemoveAttr deletes the named attribute.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// SetBox records the layout box of a static or relative node. Observers
// registered with ObserveResize run synchronously when the size changes.
func (n *Node) SetBox(r Rect) {
	prev, had := n.box, n.boxSet
	n.box, n.boxSet = r, true
	if had && prev.SameSize(r) {
		return
	}
	if !had && r.Empty() {
		return
	}
	n.notifyResize(r)
}

// Box resolves the node's box in document cells.
//
// Absolute nodes are placed against their containing block, the nearest
// ancestor that is not static. Static nodes without an explicit box report
// their parent's box.
func (n *Node) Box() Rect {
	if n.Style.Position != PositionAbsolute {
		if n.boxSet || n.parent == nil {
			if n.parent == nil && !n.boxSet && n.doc != nil {
				return n.doc.Bounds()
			}
			return n.box
		}
		return n.parent.Box()
	}

	cb := n.containingBlock()
	w, h := round(n.Style.Width), round(n.Style.Height)
	if n.Style.Fill {
		w, h = cb.W, cb.H
	}
	x, y := cb.X+round(n.Style.Left), cb.Y+round(n.Style.Top)
	if n.Style.Centered {
		x -= w / 2
		y -= h / 2
	}
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

func (n *Node) containingBlock() Rect {
	for cur := n.parent; cur != nil; cur = cur.parent {
		if cur.Style.Position != PositionStatic || cur.parent == nil {
			return cur.Box()
		}
	}
	return Rect{}
}

func round(v float64) int {
	return int(math.Round(v))
}
