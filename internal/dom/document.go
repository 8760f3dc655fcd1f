package dom

// Document owns the root of a connected tree.
type Document struct {
	root          *Node
	width, height int
}

// NewDocument creates a document with the given viewport size in cells.
func NewDocument(width, height int) *Document {
	d := &Document{width: width, height: height}
	root := NewNode("root")
	root.Style.Position = PositionRelative
	root.doc = d
	d.root = root
	return d
}

// Root returns the document's root node.
func (d *Document) Root() *Node {
	return d.root
}

// Bounds returns the viewport rectangle.
func (d *Document) Bounds() Rect {
	return Rect{W: d.width, H: d.height}
}

// Resize changes the viewport size.
func (d *Document) Resize(width, height int) {
	d.width, d.height = width, height
}

// Walk visits every connected node in paint order. Returning false skips
// the node's subtree.
func (d *Document) Walk(fn func(*Node) bool) {
	walk(d.root, fn)
}

// HitTest returns the topmost node under cell (x, y). Later siblings and
// deeper nodes paint over earlier ones, so they win. Nodes with
// PointerNone are skipped while their children stay eligible.
func (d *Document) HitTest(x, y int) *Node {
	var hit *Node
	d.Walk(func(n *Node) bool {
		if n == d.root || n.Style.PointerEvents == PointerNone {
			return true
		}
		if n.Box().Contains(x, y) {
			hit = n
		}
		return true
	})
	return hit
}

// Click hit-tests (x, y) and dispatches a click on the result. It reports
// the node that received the click, or nil.
func (d *Document) Click(x, y int) *Node {
	target := d.HitTest(x, y)
	if target == nil {
		return nil
	}
	target.Dispatch(Click(x, y))
	return target
}
