// Package layout computes exact pixel placement for the widgets of a bar.
//
// A bar is described as an ordered tree of widgets and nested groups. One
// layout pass walks the tree inside a bounding rectangle and produces a
// geometry per leaf widget plus the bounding box of the space it consumed.
// Groups choose between two disciplines: fixed packing, which places
// children at natural size and shrinks the remaining bounds as it goes,
// and flex distribution, which divides the main axis evenly. Both run
// against either orientation through the same algorithm bodies.
//
// The engine holds no state across calls. Every pass recomputes from
// scratch, group attributes are read but never written, and results are
// identical for identical inputs as long as widget extents are stable.
// Independent bars may therefore lay out concurrently as long as their
// widgets tolerate concurrent extents queries.
package layout

import (
	"fmt"

	"github.com/go-strut/strut/pkg/errors"
	"github.com/go-strut/strut/pkg/geometry"
)

// Context identifies the screen a layout pass runs against. The engine
// passes it through to widget extents queries untouched.
type Context struct {
	// Screen is the physical screen index.
	Screen int
}

// Widget is the capability surface the engine needs from a bar widget.
// Rendering and natural-size computation stay with the implementation;
// the engine only asks for visibility, the resize flag, and extents.
type Widget interface {
	// Visible reports whether the widget takes part in layout. An
	// invisible widget keeps its slot in the result as a zero rectangle.
	Visible() bool
	// Resize reports whether the widget preserves its aspect ratio when
	// constrained on one axis.
	Resize() bool
	// Extents returns the widget's natural size for the given context.
	// Only Width and Height are read. An error means the content is not
	// realized yet; the engine surfaces it to the caller unchanged.
	Extents(ctx Context) (geometry.Rect, error)
}

// Item is one entry of a group: either a Leaf widget or a nested *Group.
// These two are the only variants.
type Item interface {
	isItem()
}

// Leaf wraps a Widget as a group entry. Margin tables key a leaf's margin
// by the wrapped widget value.
type Leaf struct {
	Widget Widget
}

func (Leaf) isItem() {}

// Mode selects the layout discipline a group applies to its direct
// children.
type Mode int

const (
	// Fixed packs children at natural size from the leading edge.
	Fixed Mode = iota
	// FixedReverse packs children at natural size from the trailing
	// edge, the way right-aligned bar sections are expressed.
	FixedReverse
	// Flex divides the main axis evenly among children.
	Flex
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case FixedReverse:
		return "fixed-reverse"
	case Flex:
		return "flex"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Group is an ordered collection of widgets and sub-groups laid out
// together. The engine never mutates a group: per-call attribute
// overrides travel as recursion parameters instead.
type Group struct {
	// Items are the direct children in layout order.
	Items []Item
	// Width and Height cap the group's own extents for a single layout
	// call. Zero means unset.
	Width  int
	Height int
	// Mode selects the discipline for the direct children.
	Mode Mode
	// Gap is the flex-mode spacing between sized children.
	Gap int
	// MaxSize caps each flex share. Zero means unbounded.
	MaxSize int
}

func (*Group) isItem() {}

// EdgeInsets is a four-sided margin in pixels. Margins shape consumed
// space and offsets only; they never reorder siblings.
type EdgeInsets struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Horizontal returns the sum of the left and right insets.
func (e EdgeInsets) Horizontal() int { return e.Left + e.Right }

// Vertical returns the sum of the top and bottom insets.
func (e EdgeInsets) Vertical() int { return e.Top + e.Bottom }

// MarginResolver supplies per-item margins by identity.
type MarginResolver interface {
	// Margin returns the margin for a widget or group entry.
	// Unregistered items resolve to zero margins.
	Margin(item Item) EdgeInsets
}

// MarginTable is a map-backed MarginResolver. The nil table resolves
// everything to zero margins.
type MarginTable map[Item]EdgeInsets

// Margin implements MarginResolver.
func (t MarginTable) Margin(item Item) EdgeInsets { return t[item] }

// Result is the outcome of one layout pass.
type Result struct {
	// Widgets holds one geometry per leaf widget, in flattened pre-order
	// of the input tree. Invisible widgets appear as zero rectangles at
	// their original index.
	Widgets []geometry.Rect
	// Total is the bounding box of the space the pass actually consumed.
	Total geometry.Rect
}

// Compute lays out group inside bounds along the given main axis.
//
// The result lists every leaf geometry in input order plus the consumed
// bounding box, which never exceeds bounds beyond one pixel of flex
// rounding. A nil margins resolver means zero margins everywhere. The
// only error is a failed extents query, returned wrapped with the
// widget's error reachable through errors.Unwrap; everything else
// degrades to neutral defaults.
func Compute(axis Axis, bounds geometry.Rect, group *Group, ctx Context, margins MarginResolver) (Result, error) {
	if margins == nil {
		margins = MarginTable(nil)
	}
	st := &state{ax: axis.ops(), ctx: ctx, margins: margins}
	res, err := st.group(bounds, group, override{})
	if err != nil {
		return Result{}, &errors.StrutError{Op: "layout.Compute", Kind: errors.KindExtents, Err: err}
	}
	return res, nil
}

// override carries per-call replacements for a group's own axis
// attributes, so recursion never has to write to the group itself.
// A zero field leaves the group's attribute in charge.
type override struct {
	// main replaces the group's main-axis attribute outright (a flex
	// parent dictates the child's span).
	main int
	// cross is inherited only when the group has no cross attribute of
	// its own.
	cross int
}

// state carries the per-pass inputs shared by the recursive walk.
type state struct {
	ax      axisOps
	ctx     Context
	margins MarginResolver
}

// group runs one tree level under the group's selected discipline.
func (st *state) group(bounds geometry.Rect, g *Group, ov override) (Result, error) {
	switch g.Mode {
	case Flex:
		return st.flex(bounds, g, ov)
	case FixedReverse:
		return st.fixed(bounds, g, ov, true)
	default:
		return st.fixed(bounds, g, ov, false)
	}
}

// clamp shrinks bounds to the group's own width/height attributes (or
// their per-call overrides) when those are set and smaller. The clamp is
// local to the current call; the caller's rectangle is unaffected.
// Returns the effective cross attribute, zero when the group leaves its
// cross size free.
func (st *state) clamp(bounds *geometry.Rect, g *Group, ov override) int {
	ax := st.ax
	main := ov.main
	if main == 0 {
		main = ax.MainAttr(g)
	}
	if main > 0 && main < ax.Main(*bounds) {
		ax.SetMain(bounds, main)
	}
	cross := ax.CrossAttr(g)
	if cross == 0 {
		cross = ov.cross
	}
	if cross > 0 && cross < ax.Cross(*bounds) {
		ax.SetCross(bounds, cross)
	}
	return cross
}
