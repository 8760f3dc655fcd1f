package components

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/jiva/internal/disclosure"
	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/effect"
	"github.com/alexisbeaulieu97/jiva/internal/frame"
	"github.com/alexisbeaulieu97/jiva/internal/logger"
	"github.com/alexisbeaulieu97/jiva/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// CollapseDefaultWidth is used when the render context carries no width.
const CollapseDefaultWidth = 48

// Resizable content reports changes to its natural size.
type Resizable interface {
	ObserveSize(fn func()) (release func())
}

type triggerSource interface {
	Triggers() []*CollapseTrigger
}

type disposable interface {
	Dispose()
}

// CollapseItemSpec describes one panel of a Collapse.
type CollapseItemSpec struct {
	// ID defaults to "item-<index>".
	ID      disclosure.PanelID
	Title   string
	Body    ui.Renderable
	Size    Size
	OnClick func()
}

// Collapse is a list of titled panels whose bodies animate open and closed.
// Under the exclusive policy it behaves as an accordion.
type Collapse struct {
	BaseComponent
	group  *disclosure.Group
	frames *frame.Scheduler
	log    *logger.Logger
	size   Size
	items  []*CollapseItem

	ctx       RenderContext
	width     int
	observers map[int]func()
	nextObs   int
}

// NewCollapse creates an empty collapse. A nil scheduler uses the system
// clock.
func NewCollapse(policy disclosure.Policy, frames *frame.Scheduler) *Collapse {
	if frames == nil {
		frames = frame.NewScheduler(nil)
	}
	return &Collapse{
		BaseComponent: NewBaseComponent(),
		group:         disclosure.NewGroup(policy),
		frames:        frames,
		size:          SizeMd,
		ctx:           DefaultContext(),
		width:         CollapseDefaultWidth,
		observers:     make(map[int]func()),
	}
}

// WithSize sets the size items inherit. SizeDefault resets it to medium.
func (c *Collapse) WithSize(size Size) *Collapse {
	c.size = size.Or(SizeMd)
	return c
}

// WithLogger logs region phase changes of items added afterwards.
func (c *Collapse) WithLogger(l *logger.Logger) *Collapse {
	c.log = l
	return c
}

// Add composes one item per spec. Either every item is added or none is.
func (c *Collapse) Add(specs ...CollapseItemSpec) error {
	panelSpecs := make([]disclosure.PanelSpec, len(specs))
	for i, spec := range specs {
		panelSpecs[i] = disclosure.PanelSpec{ID: spec.ID}
	}
	panels, err := c.group.Compose(panelSpecs...)
	if err != nil {
		return fmt.Errorf("compose collapse: %w", err)
	}

	for i, panel := range panels {
		item, err := c.newItem(panel, specs[i])
		if err != nil {
			return err
		}
		c.items = append(c.items, item)
	}
	return nil
}

func (c *Collapse) newItem(panel *disclosure.Panel, spec CollapseItemSpec) (*CollapseItem, error) {
	item := &CollapseItem{collapse: c, panel: panel, size: spec.Size}

	trigger, err := disclosure.NewTrigger(panel, spec.OnClick)
	if err != nil {
		return nil, fmt.Errorf("create trigger: %w", err)
	}
	node := dom.NewNode("trigger:" + string(panel.ID()))
	node.SetBox(dom.Rect{})
	item.trigger = &CollapseTrigger{
		item:    item,
		trigger: trigger,
		title:   spec.Title,
		node:    node,
	}

	content, err := disclosure.NewContent(panel)
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	body := &CollapseContent{item: item, content: content, body: spec.Body}
	region, err := disclosure.NewRegion(panel, c.frames, body, disclosure.WithLogger(c.log))
	if err != nil {
		return nil, fmt.Errorf("create region: %w", err)
	}
	region.OnChange(c.resized)
	body.region = region
	item.content = body
	return item, nil
}

// Group returns the disclosure group backing the collapse.
func (c *Collapse) Group() *disclosure.Group {
	return c.group
}

// Items returns the items in order.
func (c *Collapse) Items() []*CollapseItem {
	return c.items
}

// Item returns the item for id, or nil.
func (c *Collapse) Item(id disclosure.PanelID) *CollapseItem {
	for _, item := range c.items {
		if item.panel.ID() == id {
			return item
		}
	}
	return nil
}

// Triggers returns every trigger, including those of collapses nested in
// open item bodies, in render order.
func (c *Collapse) Triggers() []*CollapseTrigger {
	var out []*CollapseTrigger
	for _, item := range c.items {
		out = append(out, item.trigger)
		if nested, ok := item.content.body.(triggerSource); ok && item.content.region.Mounted() {
			out = append(out, nested.Triggers()...)
		}
	}
	return out
}

// Size returns the size items inherit.
func (c *Collapse) Size() Size {
	return c.size
}

// ObserveSize calls fn whenever an item's height changes. Collapses nested
// in another collapse's body use it to keep the outer region measured.
func (c *Collapse) ObserveSize(fn func()) (release func()) {
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *Collapse) resized() {
	for _, id := range slices.Sorted(maps.Keys(c.observers)) {
		if fn, ok := c.observers[id]; ok {
			fn()
		}
	}
}

// View renders the collapse.
func (c *Collapse) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every trigger and the visible rows of every
// mounted body.
func (c *Collapse) ViewWithContext(ctx RenderContext) string {
	c.ctx = ctx
	c.width = CollapseDefaultWidth
	if ctx.Constraints.MaxWidth > 0 {
		c.width = ctx.Constraints.MaxWidth
	}

	rule := lipgloss.NewStyle().
		Foreground(ctx.Theme.Palette.Neutral.Muted).
		Render(strings.Repeat("─", c.width))

	y := 0
	blocks := make([]string, 0, len(c.items)*3)
	for i, item := range c.items {
		if i > 0 {
			blocks = append(blocks, rule)
			y++
		}
		head := item.trigger.render(ctx.Theme, c.width)
		item.trigger.y, item.trigger.height = y, lipgloss.Height(head)
		blocks = append(blocks, head)
		y += item.trigger.height

		item.content.y = y
		if body := item.content.clipped(); body != "" {
			blocks = append(blocks, body)
			y += lipgloss.Height(body)
		}
	}
	return c.ComputeStyle(ctx.Theme).Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// Place positions every trigger node and nested body.
func (c *Collapse) Place(x, y int) {
	for _, item := range c.items {
		t := item.trigger
		t.node.SetBox(dom.Rect{X: x, Y: y + t.y, W: c.width, H: t.height})
		item.content.place(x, y)
	}
}

// Hide removes every trigger from hit testing.
func (c *Collapse) Hide() {
	for _, item := range c.items {
		item.trigger.node.SetBox(dom.Rect{})
		if p, ok := item.content.body.(Placeable); ok {
			p.Hide()
		}
	}
}

// Bind attaches the trigger nodes below parent and routes their clicks to
// the panels. Bodies are bound too.
func (c *Collapse) Bind(parent *dom.Node, effects *effect.Scheduler) {
	for _, item := range c.items {
		item.trigger.bind(parent)
		if b, ok := item.content.body.(Bindable); ok {
			b.Bind(parent, effects)
		}
	}
}

// Unbind reverses Bind.
func (c *Collapse) Unbind() {
	for _, item := range c.items {
		item.trigger.unbind()
		if b, ok := item.content.body.(Bindable); ok {
			b.Unbind()
		}
	}
}

// Dispose unbinds the collapse and releases every region.
func (c *Collapse) Dispose() {
	c.Unbind()
	for _, item := range c.items {
		item.content.region.Dispose()
		if nested, ok := item.content.body.(disposable); ok {
			nested.Dispose()
		}
	}
}

// CollapseItem is one panel of a Collapse.
type CollapseItem struct {
	collapse *Collapse
	panel    *disclosure.Panel
	size     Size
	trigger  *CollapseTrigger
	content  *CollapseContent
}

// Panel returns the item's disclosure panel.
func (i *CollapseItem) Panel() *disclosure.Panel {
	return i.panel
}

// Trigger returns the item's trigger.
func (i *CollapseItem) Trigger() *CollapseTrigger {
	return i.trigger
}

// Content returns the item's animated body.
func (i *CollapseItem) Content() *CollapseContent {
	return i.content
}

// Size returns the item's own size, SizeDefault when it inherits.
func (i *CollapseItem) Size() Size {
	return i.size
}

// SetSize overrides the collapse size for this item.
func (i *CollapseItem) SetSize(size Size) {
	i.size = size
}

// resolvedSize is the item size, or the collapse size when unset.
func (i *CollapseItem) resolvedSize() Size {
	return i.size.Or(i.collapse.size)
}

// CollapseTrigger is the clickable title row of an item.
type CollapseTrigger struct {
	item     *CollapseItem
	trigger  *disclosure.Trigger
	title    string
	node     *dom.Node
	unlisten func()
	focused  bool
	y        int
	height   int
}

// Size returns the item size, falling back to the collapse size.
func (t *CollapseTrigger) Size() Size {
	return t.item.resolvedSize()
}

// Panel returns the panel the trigger toggles.
func (t *CollapseTrigger) Panel() *disclosure.Panel {
	return t.item.panel
}

// Click runs the item's handler and toggles its panel.
func (t *CollapseTrigger) Click() {
	t.trigger.Click()
}

// Node returns the document node clicks land on.
func (t *CollapseTrigger) Node() *dom.Node {
	return t.node
}

// Title returns the title text.
func (t *CollapseTrigger) Title() string {
	return t.title
}

// SetFocused sets the keyboard focus state.
func (t *CollapseTrigger) SetFocused(focused bool) {
	t.focused = focused
}

func (t *CollapseTrigger) render(theme Theme, width int) string {
	marker := "▸"
	if t.item.panel.IsOpen() {
		marker = "▾"
	}

	style := Padding(t.Size())(lipgloss.NewStyle().Width(width), theme)
	style = Typography(TypographyVariantEmphasis)(style, theme)
	if t.focused {
		style = Foreground(PalettePrimary)(style, theme).Underline(true)
	}
	return style.Render(marker + " " + t.title)
}

func (t *CollapseTrigger) bind(parent *dom.Node) {
	t.unbind()
	if parent != nil {
		parent.AppendChild(t.node)
	}
	t.unlisten = t.node.AddEventListener(dom.EventClick, func(*dom.Event) {
		t.Click()
	})
}

func (t *CollapseTrigger) unbind() {
	if t.unlisten != nil {
		t.unlisten()
		t.unlisten = nil
	}
	t.node.Remove()
}

// CollapseContent is the animated body of an item. It measures the body as
// rendered with the collapse's last render context.
type CollapseContent struct {
	item    *CollapseItem
	content *disclosure.Content
	region  *disclosure.Region
	body    ui.Renderable
	y       int
}

// Region returns the animated region driving the body height.
func (c *CollapseContent) Region() *disclosure.Region {
	return c.region
}

// Body returns the wrapped renderable.
func (c *CollapseContent) Body() ui.Renderable {
	return c.body
}

// Measure returns the natural height of the padded body.
func (c *CollapseContent) Measure() int {
	view := c.render()
	if view == "" {
		return 0
	}
	return lipgloss.Height(view)
}

// ObserveSize forwards to bodies that report their own size changes.
func (c *CollapseContent) ObserveSize(fn func()) (release func()) {
	if r, ok := c.body.(Resizable); ok {
		return r.ObserveSize(fn)
	}
	return func() {}
}

func (c *CollapseContent) spec() (Theme, SizeSpec) {
	theme := c.item.collapse.ctx.Theme
	return theme, theme.Sizes.Spec(c.item.resolvedSize())
}

func (c *CollapseContent) render() string {
	if c.body == nil {
		return ""
	}
	collapse := c.item.collapse
	theme, spec := c.spec()
	inner := max(collapse.width-2*spec.PadX, 1)
	view := renderChild(c.body, collapse.ctx.WithConstraints(WithMaxWidth(inner)))
	if view == "" {
		return ""
	}
	style := Padding(c.item.resolvedSize())(lipgloss.NewStyle(), theme)
	return style.Render(view)
}

// clipped renders the body cut to the region's current height. Closed
// regions render nothing.
func (c *CollapseContent) clipped() string {
	if !c.region.Mounted() {
		return ""
	}
	h := c.region.Height()
	if h <= 0 {
		return ""
	}
	lines := strings.Split(c.render(), "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// place positions a placeable body when it is fully shown and hides it
// otherwise, so half-revealed triggers cannot be clicked.
func (c *CollapseContent) place(x, y int) {
	p, ok := c.body.(Placeable)
	if !ok {
		return
	}
	if !c.region.Mounted() || c.region.Animating() || c.region.Height() < c.Measure() {
		p.Hide()
		return
	}
	_, spec := c.spec()
	p.Place(x+spec.PadX, y+c.y+spec.PadY)
}
