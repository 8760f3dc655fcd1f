package components

import (
	"math"
	"strings"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/effect"
	"github.com/alexisbeaulieu97/jiva/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// offset is where a child landed relative to the stack's top-left corner in
// the last render. Children that rendered empty have shown == false.
type offset struct {
	x, y  int
	shown bool
}

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	crossAlign  CrossAxisAlignment
	constraints Constraints
	offsets     []offset
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    CrossStart,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context and records where
// every child landed for Place.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	s.offsets = make([]offset, len(s.children))
	style := s.ComputeStyle(ctx.Theme)

	effective := s.mergeConstraints(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.deriveChildConstraints(effective, style))

	views := make([]string, 0, len(s.children))
	index := make([]int, 0, len(s.children))
	for i, child := range s.children {
		if child == nil {
			continue
		}
		if view := renderChild(child, childCtx); view != "" {
			views = append(views, view)
			index = append(index, i)
		}
	}

	if len(views) == 0 {
		return style.Render("")
	}

	s.layout(views, index, style)

	var content string
	if s.direction == DirectionHorizontal {
		content = s.join(lipgloss.JoinHorizontal, strings.Repeat(" ", s.gap), views)
	} else {
		content = s.join(lipgloss.JoinVertical, strings.Repeat("\n", max(s.gap-1, 0)), views)
	}

	if effective.MaxWidth > 0 {
		style = style.MaxWidth(effective.MaxWidth)
	}
	return style.Render(content)
}

// layout computes child offsets the way lipgloss joins the views: along the
// main axis each child follows the previous one plus the gap, across it the
// child is aligned inside the widest (or tallest) sibling.
func (s *Stack) layout(views []string, index []int, style lipgloss.Style) {
	originX := style.GetMarginLeft() + style.GetBorderLeftSize() + style.GetPaddingLeft()
	originY := style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()

	cross := 0
	for _, view := range views {
		if s.direction == DirectionHorizontal {
			cross = max(cross, lipgloss.Height(view))
		} else {
			cross = max(cross, lipgloss.Width(view))
		}
	}

	along := 0
	for i, view := range views {
		w, h := lipgloss.Size(view)
		off := offset{shown: true}
		if s.direction == DirectionHorizontal {
			off.x, off.y = along, s.crossAlign.offset(cross, h)
			along += w + s.gap
		} else {
			off.x, off.y = s.crossAlign.offset(cross, w), along
			along += h + s.gap
		}
		off.x += originX
		off.y += originY
		s.offsets[index[i]] = off
	}
}

func (s *Stack) join(joinFn func(lipgloss.Position, ...string) string, spacer string, views []string) string {
	pos := s.crossAlign.toLipglossPosition()
	if s.gap == 0 {
		return joinFn(pos, views...)
	}

	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return joinFn(pos, result...)
}

// mergeConstraints combines stack-level constraints with parent context constraints.
func (s *Stack) mergeConstraints(parent Constraints) Constraints {
	result := parent
	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MinWidth > result.MinWidth {
		result.MinWidth = s.constraints.MinWidth
	}
	return result
}

// deriveChildConstraints computes constraints for child components based on layout direction.
func (s *Stack) deriveChildConstraints(parent Constraints, style lipgloss.Style) Constraints {
	child := parent
	if parent.MaxWidth <= 0 {
		return child
	}

	child.MaxWidth = max(parent.MaxWidth-style.GetHorizontalFrameSize(), 1)
	if s.direction == DirectionHorizontal && len(s.children) > 0 {
		totalGap := s.gap * (len(s.children) - 1)
		if available := child.MaxWidth - totalGap; available > 0 {
			child.MaxWidth = max(available/len(s.children), 1)
		}
	}
	return child
}

// Place forwards the stack's position to every placeable child.
func (s *Stack) Place(x, y int) {
	for i, child := range s.children {
		p, ok := child.(Placeable)
		if !ok {
			continue
		}
		if i >= len(s.offsets) || !s.offsets[i].shown {
			p.Hide()
			continue
		}
		p.Place(x+s.offsets[i].x, y+s.offsets[i].y)
	}
}

// Hide hides every placeable child.
func (s *Stack) Hide() {
	for _, child := range s.children {
		if p, ok := child.(Placeable); ok {
			p.Hide()
		}
	}
}

// Bind binds every bindable child below parent.
func (s *Stack) Bind(parent *dom.Node, effects *effect.Scheduler) {
	for _, child := range s.children {
		if b, ok := child.(Bindable); ok {
			b.Bind(parent, effects)
		}
	}
}

// Unbind reverses Bind.
func (s *Stack) Unbind() {
	for _, child := range s.children {
		if b, ok := child.(Bindable); ok {
			b.Unbind()
		}
	}
}

// ObserveSize forwards fn to every child that reports size changes.
func (s *Stack) ObserveSize(fn func()) (release func()) {
	releases := make([]func(), 0, len(s.children))
	for _, child := range s.children {
		if r, ok := child.(Resizable); ok {
			releases = append(releases, r.ObserveSize(fn))
		}
	}
	return func() {
		for _, release := range releases {
			release()
		}
		releases = nil
	}
}

// Triggers collects the collapse triggers of every child.
func (s *Stack) Triggers() []*CollapseTrigger {
	var out []*CollapseTrigger
	for _, child := range s.children {
		if src, ok := child.(triggerSource); ok {
			out = append(out, src.Triggers()...)
		}
	}
	return out
}

// Dispose releases every child that holds animation state.
func (s *Stack) Dispose() {
	for _, child := range s.children {
		if d, ok := child.(disposable); ok {
			d.Dispose()
		}
	}
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithStyle sets the container style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.style = style
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.setAppliers(appliers...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// Helper to convert CrossAxisAlignment to lipgloss.Position
func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// offset returns where a child of size n starts inside a span of size total.
func (c CrossAxisAlignment) offset(total, n int) int {
	switch c {
	case CrossCenter:
		return int(math.Round(float64(total-n) * 0.5))
	case CrossEnd:
		return total - n
	default:
		return 0
	}
}
