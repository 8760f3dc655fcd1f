package config

// Config describes the showcase: a row of buttons and a list of collapses.
type Config struct {
	Version   string     `yaml:"version" validate:"required,semver"`
	Title     string     `yaml:"title,omitempty" validate:"max=100"`
	Theme     string     `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	Width     int        `yaml:"width,omitempty" validate:"omitempty,min=20,max=200"`
	Accent    string     `yaml:"accent,omitempty" validate:"omitempty,hexcolor"`
	Buttons   []Button   `yaml:"buttons,omitempty" validate:"omitempty,dive"`
	Collapses []Collapse `yaml:"collapses,omitempty" validate:"omitempty,dive"`
}

// Button configures one button of the showcase row.
type Button struct {
	Label    string `yaml:"label,omitempty" validate:"required_without=Icon,max=40"`
	Icon     string `yaml:"icon,omitempty" validate:"max=4"`
	Kind     string `yaml:"kind,omitempty" validate:"omitempty,oneof=primary danger"`
	Variant  string `yaml:"variant,omitempty" validate:"variant"`
	Size     string `yaml:"size,omitempty" validate:"size"`
	Shape    string `yaml:"shape,omitempty" validate:"omitempty,oneof=rect circle"`
	Effect   string `yaml:"effect,omitempty" validate:"effect"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Collapse configures a disclosure group. Nested collapses appear inside an
// item body.
type Collapse struct {
	Title  string `yaml:"title,omitempty" validate:"max=100"`
	Policy string `yaml:"policy,omitempty" validate:"policy"`
	Size   string `yaml:"size,omitempty" validate:"size"`
	Items  []Item `yaml:"items" validate:"required,min=1,dive"`
}

// Item configures one panel.
type Item struct {
	ID     string    `yaml:"id,omitempty" validate:"panel_id"`
	Title  string    `yaml:"title" validate:"required,max=100"`
	Body   string    `yaml:"body,omitempty"`
	Size   string    `yaml:"size,omitempty" validate:"size"`
	Open   bool      `yaml:"open,omitempty"`
	Nested *Collapse `yaml:"nested,omitempty" validate:"omitempty"`
}

const (
	DefaultVersion = "1.0.0"
	DefaultTheme   = "dark"
	DefaultWidth   = 60
)

// ApplyDefaults fills every optional field that has a default. It is run
// after parsing so files only need the values they change.
func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	for i := range c.Buttons {
		b := &c.Buttons[i]
		if b.Kind == "" {
			b.Kind = "primary"
		}
		if b.Variant == "" {
			b.Variant = "outline"
		}
		if b.Size == "" {
			b.Size = "md"
		}
		if b.Shape == "" {
			b.Shape = "rect"
		}
	}
	for i := range c.Collapses {
		c.Collapses[i].applyDefaults()
	}
}

// applyDefaults leaves item sizes empty: they inherit the collapse size.
func (c *Collapse) applyDefaults() {
	if c.Policy == "" {
		c.Policy = "independent"
	}
	if c.Size == "" {
		c.Size = "md"
	}
	for i := range c.Items {
		if c.Items[i].Nested != nil {
			c.Items[i].Nested.applyDefaults()
		}
	}
}
