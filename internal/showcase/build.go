package showcase

import (
	"fmt"

	"github.com/alexisbeaulieu97/jiva/internal/config"
	"github.com/alexisbeaulieu97/jiva/internal/disclosure"
	"github.com/alexisbeaulieu97/jiva/internal/effect"
	"github.com/alexisbeaulieu97/jiva/internal/frame"
	"github.com/alexisbeaulieu97/jiva/internal/logger"
	"github.com/alexisbeaulieu97/jiva/internal/ui"
	"github.com/alexisbeaulieu97/jiva/internal/ui/components"
)

// builder turns a validated configuration into a component tree.
type builder struct {
	frames *frame.Scheduler
	log    *logger.Logger

	buttons   []*components.Button
	collapses []*components.Collapse
}

func (b *builder) build(cfg *config.Config) (*components.Stack, error) {
	root := components.VStack().
		WithGap(1).
		WithConstraints(components.WithMaxWidth(cfg.Width))

	if cfg.Title != "" {
		root.Add(components.TitleText(cfg.Title))
	}

	if len(cfg.Buttons) > 0 {
		row := components.HStack().WithGap(1).WithCrossAlign(components.CrossCenter)
		for i, spec := range cfg.Buttons {
			button, err := newButton(spec)
			if err != nil {
				return nil, fmt.Errorf("buttons[%d]: %w", i, err)
			}
			b.buttons = append(b.buttons, button)
			row.Add(button)
		}
		root.Add(row)
	}

	for i := range cfg.Collapses {
		spec := &cfg.Collapses[i]
		collapse, err := b.collapse(spec, fmt.Sprintf("collapses[%d]", i))
		if err != nil {
			return nil, err
		}
		b.collapses = append(b.collapses, collapse)
		if spec.Title != "" {
			root.Add(components.VStack(components.SubtitleText(spec.Title), collapse))
		} else {
			root.Add(collapse)
		}
	}

	return root, nil
}

func newButton(spec config.Button) (*components.Button, error) {
	variant, err := components.ParseButtonVariant(spec.Variant)
	if err != nil {
		return nil, err
	}
	size, err := components.ParseSize(spec.Size)
	if err != nil {
		return nil, err
	}

	button := components.NewButton(spec.Label).
		WithVariant(variant).
		WithSize(size).
		WithDisabled(spec.Disabled)
	if spec.Kind == "danger" {
		button.WithKind(components.ButtonKindDanger)
	}
	if spec.Shape == "circle" {
		button.WithShape(components.ButtonShapeCircle)
	}
	if spec.Icon != "" {
		button.WithIcon(spec.Icon)
	}
	if spec.Effect != "" {
		eff, ok := effect.ByName(spec.Effect)
		if !ok {
			return nil, fmt.Errorf("unknown effect %q", spec.Effect)
		}
		button.WithEffect(eff)
	}
	return button, nil
}

// collapse builds spec and its nested collapses. Items marked open are
// toggled once composition succeeded, so they animate in on the first frames.
func (b *builder) collapse(spec *config.Collapse, field string) (*components.Collapse, error) {
	policy, err := disclosure.ParsePolicy(spec.Policy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	size, err := components.ParseSize(spec.Size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	collapse := components.NewCollapse(policy, b.frames).
		WithSize(size).
		WithLogger(b.log)

	items := make([]components.CollapseItemSpec, len(spec.Items))
	for i, item := range spec.Items {
		itemField := fmt.Sprintf("%s.items[%d]", field, i)
		itemSize, err := components.ParseSize(item.Size)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", itemField, err)
		}
		body, err := b.body(item, itemField)
		if err != nil {
			return nil, err
		}
		items[i] = components.CollapseItemSpec{
			ID:    disclosure.PanelID(item.ID),
			Title: item.Title,
			Body:  body,
			Size:  itemSize,
		}
	}
	if err := collapse.Add(items...); err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	for i, item := range spec.Items {
		if item.Open {
			collapse.Items()[i].Panel().ToggleOpen()
		}
	}
	return collapse, nil
}

func (b *builder) body(item config.Item, field string) (ui.Renderable, error) {
	var text ui.Renderable
	if item.Body != "" {
		text = components.NewText(item.Body)
	}
	if item.Nested == nil {
		return text, nil
	}

	nested, err := b.collapse(item.Nested, field+".nested")
	if err != nil {
		return nil, err
	}
	parts := make([]ui.Renderable, 0, 3)
	if text != nil {
		parts = append(parts, text)
	}
	if item.Nested.Title != "" {
		parts = append(parts, components.FaintText(item.Nested.Title))
	}
	if len(parts) == 0 {
		return nested, nil
	}
	return components.VStack(append(parts, nested)...), nil
}
