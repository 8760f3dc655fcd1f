package dom

type resizeObserver struct {
	fn       func(Rect)
	released bool
}

type disconnectObserver struct {
	fn       func()
	released bool
}

// ObserveResize calls fn with the new box whenever SetBox changes n's size.
// The returned release function stops observation and is idempotent.
func (n *Node) ObserveResize(fn func(Rect)) func() {
	o := &resizeObserver{fn: fn}
	n.resize = append(n.resize, o)
	return func() {
		if o.released {
			return
		}
		o.released = true
		for i, cur := range n.resize {
			if cur == o {
				n.resize = append(n.resize[:i], n.resize[i+1:]...)
				break
			}
		}
	}
}

// ResizeObservers reports how many resize observers are attached to n.
func (n *Node) ResizeObservers() int {
	return len(n.resize)
}

// OnDisconnect calls fn when n, or one of its ancestors, is removed from
// the document. The returned release function is idempotent.
func (n *Node) OnDisconnect(fn func()) func() {
	o := &disconnectObserver{fn: fn}
	n.detach = append(n.detach, o)
	return func() {
		if o.released {
			return
		}
		o.released = true
		for i, cur := range n.detach {
			if cur == o {
				n.detach = append(n.detach[:i], n.detach[i+1:]...)
				break
			}
		}
	}
}

func (n *Node) notifyResize(r Rect) {
	for _, o := range append([]*resizeObserver(nil), n.resize...) {
		if !o.released {
			o.fn(r)
		}
	}
}

func (n *Node) notifyDisconnect() {
	var pending []*disconnectObserver
	walk(n, func(cur *Node) bool {
		pending = append(pending, cur.detach...)
		return true
	})
	for _, o := range pending {
		if !o.released {
			o.fn()
		}
	}
}

// walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's subtree.
func walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range append([]*Node(nil), n.children...) {
		walk(c, fn)
	}
}
