package layout_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/go-strut/strut/pkg/geometry"
	"github.com/go-strut/strut/pkg/layout"
	"github.com/go-strut/strut/pkg/layouttest"
)

// TestFlex_EvenDistribution checks the floating-cursor split with a gap
// and an invisible slot: the share is computed over all slots, gaps only
// separate the sized children, and rounding error lands on single cells
// instead of drifting.
func TestFlex_EvenDistribution(t *testing.T) {
	a := &layouttest.Stub{W: 10, H: 20}
	b := &layouttest.Stub{W: 10, H: 20}
	c := &layouttest.Stub{W: 10, H: 20, Hidden: true}
	g := layouttest.Row(layout.Flex, a, b, c)
	g.Gap = 2

	res := mustCompute(t, layout.Horizontal, geometry.Rect{Width: 300, Height: 20}, g, nil)

	want := []geometry.Rect{
		{X: 0, Y: 0, Width: 99, Height: 20},
		{X: 101, Y: 0, Width: 100, Height: 20},
		{},
	}
	if !reflect.DeepEqual(res.Widgets, want) {
		t.Errorf("widgets = %v, want %v", res.Widgets, want)
	}
	if res.Total.Width != 201 {
		t.Errorf("total width = %d, want 201", res.Total.Width)
	}
	if c.Queries != 0 {
		t.Errorf("invisible widget extents queried %d times, want 0", c.Queries)
	}
}

// TestFlex_SumLaw sweeps child counts, spans, and gaps over fully visible
// groups: assigned widths plus gaps must reproduce the span within one
// pixel regardless of how awkwardly it divides.
func TestFlex_SumLaw(t *testing.T) {
	for _, span := range []int{100, 300, 301, 457} {
		for _, gap := range []int{0, 2, 3} {
			for n := 1; n <= 12; n++ {
				t.Run(fmt.Sprintf("span=%d/gap=%d/n=%d", span, gap, n), func(t *testing.T) {
					g := &layout.Group{Mode: layout.Flex, Gap: gap}
					for range n {
						g.Items = append(g.Items, layout.Leaf{Widget: &layouttest.Stub{W: 1, H: 10}})
					}
					res := mustCompute(t, layout.Horizontal, geometry.Rect{Width: span, Height: 20}, g, nil)

					sum := 0
					for _, r := range res.Widgets {
						sum += r.Width
					}
					got := sum + (n-1)*gap
					if got < span-1 || got > span+1 {
						t.Errorf("sum(widths) + gaps = %d, want %d±1", got, span)
					}
					if res.Total.Width > span+1 {
						t.Errorf("total width %d exceeds span %d", res.Total.Width, span)
					}
				})
			}
		}
	}
}

// TestFlex_MaxSizeClampsShare verifies the per-child cap.
func TestFlex_MaxSizeClampsShare(t *testing.T) {
	g := layouttest.Row(layout.Flex,
		&layouttest.Stub{W: 10, H: 20},
		&layouttest.Stub{W: 10, H: 20},
		&layouttest.Stub{W: 10, H: 20})
	g.MaxSize = 50

	res := mustCompute(t, layout.Horizontal, geometry.Rect{Width: 300, Height: 20}, g, nil)

	for i, r := range res.Widgets {
		if r.Width != 50 {
			t.Errorf("widget %d width = %d, want 50", i, r.Width)
		}
		if r.X != i*50 {
			t.Errorf("widget %d at x=%d, want %d", i, r.X, i*50)
		}
	}
	if res.Total.Width != 150 {
		t.Errorf("total width = %d, want 150", res.Total.Width)
	}
}

// TestFlex_NestedGroupGetsCell verifies a nested group receives exactly
// its assigned cell and packs inside it.
func TestFlex_NestedGroupGetsCell(t *testing.T) {
	a := &layouttest.Stub{W: 10, H: 20}
	inner := &layouttest.Stub{W: 30, H: 20}
	nested := layouttest.Row(layout.Fixed, inner)
	g := &layout.Group{Mode: layout.Flex, Items: []layout.Item{layout.Leaf{Widget: a}, nested}}

	res := mustCompute(t, layout.Horizontal, geometry.Rect{Width: 200, Height: 20}, g, nil)

	want := []geometry.Rect{
		{X: 0, Y: 0, Width: 100, Height: 20},
		{X: 100, Y: 0, Width: 30, Height: 20},
	}
	if !reflect.DeepEqual(res.Widgets, want) {
		t.Errorf("widgets = %v, want %v", res.Widgets, want)
	}
	if res.Total.Width != 200 {
		t.Errorf("total width = %d, want 200 (both cells consumed)", res.Total.Width)
	}
}

// TestFlex_AspectRescalesCross: with the main axis dictated by the cell,
// ratio-preserving widgets rescale their cross size instead.
func TestFlex_AspectRescalesCross(t *testing.T) {
	img := &layouttest.Stub{W: 100, H: 50, KeepRatio: true}
	g := layouttest.Row(layout.Flex, img)

	res := mustCompute(t, layout.Horizontal, geometry.Rect{Width: 200, Height: 200}, g, nil)

	if want := (geometry.Rect{Width: 200, Height: 100}); res.Widgets[0] != want {
		t.Errorf("widget = %v, want %v", res.Widgets[0], want)
	}
}

// TestFlex_FixedCrossOverridesNatural: a group with a fixed cross size
// forces every cell to it, margins deducted.
func TestFlex_FixedCrossOverridesNatural(t *testing.T) {
	w := &layouttest.Stub{W: 10, H: 50}
	g := layouttest.Row(layout.Flex, w)
	g.Height = 20
	margins := layout.MarginTable{
		layout.Leaf{Widget: w}: {Top: 2, Bottom: 2},
	}

	res := mustCompute(t, layout.Horizontal, geometry.Rect{Width: 100, Height: 50}, g, margins)

	if want := (geometry.Rect{X: 0, Y: 2, Width: 100, Height: 16}); res.Widgets[0] != want {
		t.Errorf("widget = %v, want %v", res.Widgets[0], want)
	}
	if res.Total.Height != 20 {
		t.Errorf("total height = %d, want 20", res.Total.Height)
	}
}

// TestFlex_MarginsStayInsideCell: margins shrink the widget inside its
// assigned cell without shifting the siblings.
func TestFlex_MarginsStayInsideCell(t *testing.T) {
	a := &layouttest.Stub{W: 10, H: 20}
	b := &layouttest.Stub{W: 10, H: 20}
	g := layouttest.Row(layout.Flex, a, b)
	margins := layout.MarginTable{
		layout.Leaf{Widget: a}: {Left: 5, Right: 5},
	}

	res := mustCompute(t, layout.Horizontal, geometry.Rect{Width: 200, Height: 20}, g, margins)

	want := []geometry.Rect{
		{X: 5, Y: 0, Width: 90, Height: 20},
		{X: 100, Y: 0, Width: 100, Height: 20},
	}
	if !reflect.DeepEqual(res.Widgets, want) {
		t.Errorf("widgets = %v, want %v", res.Widgets, want)
	}
}

// TestFlex_VerticalAxis splits a column.
func TestFlex_VerticalAxis(t *testing.T) {
	g := layouttest.Row(layout.Flex,
		&layouttest.Stub{W: 20, H: 10},
		&layouttest.Stub{W: 20, H: 10},
		&layouttest.Stub{W: 20, H: 10})

	res := mustCompute(t, layout.Vertical, geometry.Rect{Width: 20, Height: 300}, g, nil)

	for i, r := range res.Widgets {
		if r.Y != i*100 || r.Height != 100 {
			t.Errorf("widget %d = %v, want y=%d height=100", i, r, i*100)
		}
		if r.Width != 20 {
			t.Errorf("widget %d width = %d, want 20", i, r.Width)
		}
	}
	if res.Total.Height != 300 {
		t.Errorf("total height = %d, want 300", res.Total.Height)
	}
}

// TestFlex_AllInvisible: nothing is sized, nothing is consumed, every
// slot survives as a zero rectangle.
func TestFlex_AllInvisible(t *testing.T) {
	g := layouttest.Row(layout.Flex,
		&layouttest.Stub{W: 10, H: 10, Hidden: true},
		&layouttest.Stub{W: 10, H: 10, Hidden: true})
	g.Gap = 4

	res := mustCompute(t, layout.Horizontal, geometry.Rect{X: 30, Y: 1, Width: 100, Height: 20}, g, nil)

	if len(res.Widgets) != 2 {
		t.Fatalf("got %d geometries, want 2", len(res.Widgets))
	}
	for i, r := range res.Widgets {
		if r != (geometry.Rect{}) {
			t.Errorf("slot %d = %v, want zero rect", i, r)
		}
	}
	if want := (geometry.Rect{X: 30, Y: 1}); res.Total != want {
		t.Errorf("total = %v, want %v", res.Total, want)
	}
}

// TestFlex_WidthOverrideDoesNotLeak: a flex parent dictates a nested
// group's span for the call without touching its width attribute.
func TestFlex_WidthOverrideDoesNotLeak(t *testing.T) {
	inner := &layouttest.Stub{W: 300, H: 20}
	nested := layouttest.Row(layout.Fixed, inner)
	nested.Width = 250
	g := &layout.Group{Mode: layout.Flex, Items: []layout.Item{
		layout.Leaf{Widget: &layouttest.Stub{W: 10, H: 20}},
		nested,
	}}

	res := mustCompute(t, layout.Horizontal, geometry.Rect{Width: 200, Height: 20}, g, nil)

	// The cell (100) overrides the group's own width (250).
	if res.Widgets[1].Width != 100 {
		t.Errorf("nested widget width = %d, want 100", res.Widgets[1].Width)
	}
	if nested.Width != 250 {
		t.Errorf("group width attribute = %d after layout, want 250 untouched", nested.Width)
	}
}
