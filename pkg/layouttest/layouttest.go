// Package layouttest provides stub widgets for exercising the layout
// engine without a real widget set.
package layouttest

import (
	"github.com/go-strut/strut/pkg/geometry"
	"github.com/go-strut/strut/pkg/layout"
)

// Stub is a layout.Widget with prescribed natural extents. The zero
// value is a visible 0x0 widget. Use pointers so margin tables and
// result slots keep per-instance identity.
type Stub struct {
	// W and H are the natural extents reported to the engine.
	W, H int
	// Hidden makes the widget invisible to layout.
	Hidden bool
	// KeepRatio reports the aspect-preserving resize flag.
	KeepRatio bool
	// Err, when set, is returned from every extents query.
	Err error

	// Queries counts extents calls, for asserting that invisible
	// widgets never reach sizing logic.
	Queries int
}

// Visible implements layout.Widget.
func (s *Stub) Visible() bool { return !s.Hidden }

// Resize implements layout.Widget.
func (s *Stub) Resize() bool { return s.KeepRatio }

// Extents implements layout.Widget.
func (s *Stub) Extents(layout.Context) (geometry.Rect, error) {
	s.Queries++
	if s.Err != nil {
		return geometry.Rect{}, s.Err
	}
	return geometry.Rect{Width: s.W, Height: s.H}, nil
}

// Row builds a group of the given mode from plain widgets.
func Row(mode layout.Mode, widgets ...layout.Widget) *layout.Group {
	g := &layout.Group{Mode: mode}
	for _, w := range widgets {
		g.Items = append(g.Items, layout.Leaf{Widget: w})
	}
	return g
}
