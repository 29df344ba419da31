// Package config loads declarative bar descriptions.
//
// A bar file names the screen and bounding rectangle of a bar and
// describes its widget tree: nested groups with layout attributes and
// per-entry margins, with leaves referring to widgets by name. Building
// a loaded file against a widget registry yields the layout.Group tree
// and margin table the engine consumes.
//
// Unlike the engine, which degrades silently, loading is strict: unknown
// fields, unknown widget names, and malformed attributes are errors. A
// bar that silently drops widgets is worse than a startup failure.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-strut/strut/pkg/errors"
	"github.com/go-strut/strut/pkg/geometry"
	"github.com/go-strut/strut/pkg/layout"
)

// Config represents a bar configuration file.
type Config struct {
	Bar BarConfig `yaml:"bar"`
	// Widgets optionally describes stub extents per widget name, used
	// by tooling that lays a bar out without live widgets.
	Widgets map[string]WidgetConfig `yaml:"widgets,omitempty"`
	Tree    NodeConfig              `yaml:"tree"`
}

// BarConfig names the screen and bounding rectangle of a bar.
type BarConfig struct {
	Screen      int    `yaml:"screen,omitempty"`
	X           int    `yaml:"x,omitempty"`
	Y           int    `yaml:"y,omitempty"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Orientation string `yaml:"orientation,omitempty"`
}

// WidgetConfig describes stub extents for one named widget.
type WidgetConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Hidden bool `yaml:"hidden,omitempty"`
	Resize bool `yaml:"resize,omitempty"`
}

// MarginConfig is a four-sided margin. All sides must be non-negative.
type MarginConfig struct {
	Left   int `yaml:"left,omitempty"`
	Right  int `yaml:"right,omitempty"`
	Top    int `yaml:"top,omitempty"`
	Bottom int `yaml:"bottom,omitempty"`
}

// NodeConfig is one entry of the widget tree: a leaf when Widget is set,
// otherwise a group of Items.
type NodeConfig struct {
	Widget  string       `yaml:"widget,omitempty"`
	Layout  string       `yaml:"layout,omitempty"`
	Width   int          `yaml:"width,omitempty"`
	Height  int          `yaml:"height,omitempty"`
	Gap     int          `yaml:"gap,omitempty"`
	MaxSize int          `yaml:"max_size,omitempty"`
	Margin  MarginConfig `yaml:"margin,omitempty"`
	Items   []NodeConfig `yaml:"items,omitempty"`
}

// Bar is a built configuration, ready for the engine.
type Bar struct {
	Screen  int
	Axis    layout.Axis
	Bounds  geometry.Rect
	Root    *layout.Group
	Margins layout.MarginTable
}

// Compute runs one layout pass over the built bar.
func (b *Bar) Compute() (layout.Result, error) {
	return layout.Compute(b.Axis, b.Bounds, b.Root, layout.Context{Screen: b.Screen}, b.Margins)
}

// Load reads and parses a bar configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bar config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// Parse decodes a bar configuration. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bar config: %w", err)
	}
	return &cfg, nil
}

// Build resolves the widget tree against a registry of live widgets and
// returns the assembled bar. Every leaf name must resolve.
func (c *Config) Build(registry map[string]layout.Widget) (*Bar, error) {
	axis, err := parseOrientation(c.Bar.Orientation)
	if err != nil {
		return nil, err
	}
	if c.Bar.Width <= 0 || c.Bar.Height <= 0 {
		return nil, &errors.ConfigError{Field: "bar", Err: fmt.Errorf("bar needs positive width and height, got %dx%d", c.Bar.Width, c.Bar.Height)}
	}
	if c.Tree.Widget != "" {
		return nil, &errors.ConfigError{Field: "tree", Err: fmt.Errorf("tree root must be a group, not widget %q", c.Tree.Widget)}
	}

	margins := layout.MarginTable{}
	root, err := buildGroup(&c.Tree, registry, margins)
	if err != nil {
		return nil, err
	}
	return &Bar{
		Screen:  c.Bar.Screen,
		Axis:    axis,
		Bounds:  geometry.Rect{X: c.Bar.X, Y: c.Bar.Y, Width: c.Bar.Width, Height: c.Bar.Height},
		Root:    root,
		Margins: margins,
	}, nil
}

func parseOrientation(s string) (layout.Axis, error) {
	switch s {
	case "", "horizontal":
		return layout.Horizontal, nil
	case "vertical":
		return layout.Vertical, nil
	default:
		return 0, &errors.ConfigError{Field: "orientation", Err: fmt.Errorf("unknown orientation %q", s)}
	}
}

func parseMode(s string) (layout.Mode, error) {
	switch s {
	case "", "fixed":
		return layout.Fixed, nil
	case "fixed-reverse":
		return layout.FixedReverse, nil
	case "flex":
		return layout.Flex, nil
	default:
		return 0, &errors.ConfigError{Field: "layout", Err: fmt.Errorf("unknown layout %q", s)}
	}
}

func (m MarginConfig) insets() (layout.EdgeInsets, error) {
	if m.Left < 0 || m.Right < 0 || m.Top < 0 || m.Bottom < 0 {
		return layout.EdgeInsets{}, fmt.Errorf("margins must be non-negative, got %+v", m)
	}
	return layout.EdgeInsets{Left: m.Left, Right: m.Right, Top: m.Top, Bottom: m.Bottom}, nil
}

func buildGroup(n *NodeConfig, registry map[string]layout.Widget, margins layout.MarginTable) (*layout.Group, error) {
	mode, err := parseMode(n.Layout)
	if err != nil {
		return nil, err
	}
	if n.Width < 0 || n.Height < 0 || n.Gap < 0 || n.MaxSize < 0 {
		return nil, &errors.ConfigError{Field: "group", Err: fmt.Errorf("group attributes must be non-negative: %+v", n)}
	}
	g := &layout.Group{
		Width:   n.Width,
		Height:  n.Height,
		Mode:    mode,
		Gap:     n.Gap,
		MaxSize: n.MaxSize,
	}
	for i := range n.Items {
		item, err := buildItem(&n.Items[i], registry, margins)
		if err != nil {
			return nil, err
		}
		g.Items = append(g.Items, item)
	}
	return g, nil
}

func buildItem(n *NodeConfig, registry map[string]layout.Widget, margins layout.MarginTable) (layout.Item, error) {
	var item layout.Item
	switch {
	case n.Widget != "" && len(n.Items) > 0:
		return nil, &errors.ConfigError{Field: n.Widget, Err: fmt.Errorf("entry cannot be both a widget and a group")}
	case n.Widget != "":
		if n.Layout != "" || n.Width != 0 || n.Height != 0 || n.Gap != 0 || n.MaxSize != 0 {
			return nil, &errors.ConfigError{Field: n.Widget, Err: fmt.Errorf("widget entries take only a margin, not group attributes")}
		}
		w, ok := registry[n.Widget]
		if !ok {
			return nil, &errors.ConfigError{Field: n.Widget, Err: fmt.Errorf("unknown widget")}
		}
		item = layout.Leaf{Widget: w}
	default:
		g, err := buildGroup(n, registry, margins)
		if err != nil {
			return nil, err
		}
		item = g
	}

	if n.Margin != (MarginConfig{}) {
		insets, err := n.Margin.insets()
		if err != nil {
			return nil, &errors.ConfigError{Field: n.Widget, Err: err}
		}
		margins[item] = insets
	}
	return item, nil
}
