// Package portal mounts components into containers outside the caller's own
// render tree.
//
// A Host owns a default root. Render creates a fresh container, appends it to
// the requested target (or the root) and mounts the component into it. The
// returned Portal undoes both steps; it is safe to unmount after the target
// has already left the document.
package portal

import "github.com/alexisbeaulieu97/jiva/internal/dom"

// Component renders into a container node and returns its teardown.
// A nil teardown is allowed.
type Component interface {
	Mount(container *dom.Node) (unmount func())
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(container *dom.Node) func()

// Mount calls f.
func (f ComponentFunc) Mount(container *dom.Node) func() {
	return f(container)
}

// Host renders portals into a default root node.
type Host struct {
	root    *dom.Node
	mounted int
}

// NewHost creates a host whose default target is root.
func NewHost(root *dom.Node) *Host {
	return &Host{root: root}
}

// Root returns the default target.
func (h *Host) Root() *dom.Node {
	return h.root
}

// Mounted returns the number of portals that have not been unmounted.
func (h *Host) Mounted() int {
	return h.mounted
}

// Render mounts c into a new container appended to target.
// A nil target selects the host root.
func (h *Host) Render(target *dom.Node, c Component) *Portal {
	if target == nil {
		target = h.root
	}
	p := &Portal{
		host:      h,
		target:    target,
		container: dom.NewNode("portal"),
		mounted:   true,
	}
	if target != nil {
		target.AppendChild(p.container)
	}
	h.mounted++
	if c != nil {
		p.unmount = c.Mount(p.container)
	}
	return p
}

// Portal is a mounted component.
type Portal struct {
	host      *Host
	target    *dom.Node
	container *dom.Node
	unmount   func()
	mounted   bool
}

// Container returns the node the component was mounted into.
func (p *Portal) Container() *dom.Node {
	return p.container
}

// Target returns the node the container was appended to.
func (p *Portal) Target() *dom.Node {
	return p.target
}

// Mounted reports whether Unmount has not run yet.
func (p *Portal) Mounted() bool {
	return p != nil && p.mounted
}

// Unmount tears the component down and detaches the container if it is
// still attached to its target. Calling it again does nothing.
func (p *Portal) Unmount() {
	if p == nil || !p.mounted {
		return
	}
	p.mounted = false
	p.host.mounted--
	if p.unmount != nil {
		p.unmount()
	}
	if p.target != nil && p.container.Parent() == p.target {
		p.target.RemoveChild(p.container)
	}
}
