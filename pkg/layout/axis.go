package layout

import (
	"fmt"

	"github.com/go-strut/strut/pkg/geometry"
)

// Axis is the direction a bar arranges its widgets along.
type Axis int

const (
	// Horizontal lays widgets out left to right.
	Horizontal Axis = iota
	// Vertical lays widgets out top to bottom.
	Vertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ops returns the accessor set for the axis. Out-of-range values fall
// back to horizontal.
func (a Axis) ops() axisOps {
	if a == Vertical {
		return verticalOps{}
	}
	return horizontalOps{}
}

// axisOps maps main-axis semantics onto the physical fields of
// rectangles, insets, and group attributes, so one algorithm body serves
// both orientations. Horizontal reads x/width/left/right as the main
// axis; vertical reads y/height/top/bottom.
type axisOps interface {
	Main(r geometry.Rect) int
	SetMain(r *geometry.Rect, v int)
	MainOrigin(r geometry.Rect) int
	SetMainOrigin(r *geometry.Rect, v int)
	Cross(r geometry.Rect) int
	SetCross(r *geometry.Rect, v int)
	CrossOrigin(r geometry.Rect) int
	SetCrossOrigin(r *geometry.Rect, v int)

	// Leading and Trailing are the main-axis margins before and after a
	// child; CrossLeading and CrossTrailing are the cross-axis pair.
	Leading(m EdgeInsets) int
	Trailing(m EdgeInsets) int
	CrossLeading(m EdgeInsets) int
	CrossTrailing(m EdgeInsets) int

	// MainAttr and CrossAttr read a group's own size attributes.
	MainAttr(g *Group) int
	CrossAttr(g *Group) int
}

type horizontalOps struct{}

func (horizontalOps) Main(r geometry.Rect) int               { return r.Width }
func (horizontalOps) SetMain(r *geometry.Rect, v int)        { r.Width = v }
func (horizontalOps) MainOrigin(r geometry.Rect) int         { return r.X }
func (horizontalOps) SetMainOrigin(r *geometry.Rect, v int)  { r.X = v }
func (horizontalOps) Cross(r geometry.Rect) int              { return r.Height }
func (horizontalOps) SetCross(r *geometry.Rect, v int)       { r.Height = v }
func (horizontalOps) CrossOrigin(r geometry.Rect) int        { return r.Y }
func (horizontalOps) SetCrossOrigin(r *geometry.Rect, v int) { r.Y = v }
func (horizontalOps) Leading(m EdgeInsets) int               { return m.Left }
func (horizontalOps) Trailing(m EdgeInsets) int              { return m.Right }
func (horizontalOps) CrossLeading(m EdgeInsets) int          { return m.Top }
func (horizontalOps) CrossTrailing(m EdgeInsets) int         { return m.Bottom }
func (horizontalOps) MainAttr(g *Group) int                  { return g.Width }
func (horizontalOps) CrossAttr(g *Group) int                 { return g.Height }

type verticalOps struct{}

func (verticalOps) Main(r geometry.Rect) int               { return r.Height }
func (verticalOps) SetMain(r *geometry.Rect, v int)        { r.Height = v }
func (verticalOps) MainOrigin(r geometry.Rect) int         { return r.Y }
func (verticalOps) SetMainOrigin(r *geometry.Rect, v int)  { r.Y = v }
func (verticalOps) Cross(r geometry.Rect) int              { return r.Width }
func (verticalOps) SetCross(r *geometry.Rect, v int)       { r.Width = v }
func (verticalOps) CrossOrigin(r geometry.Rect) int        { return r.X }
func (verticalOps) SetCrossOrigin(r *geometry.Rect, v int) { r.X = v }
func (verticalOps) Leading(m EdgeInsets) int               { return m.Top }
func (verticalOps) Trailing(m EdgeInsets) int              { return m.Bottom }
func (verticalOps) CrossLeading(m EdgeInsets) int          { return m.Left }
func (verticalOps) CrossTrailing(m EdgeInsets) int         { return m.Right }
func (verticalOps) MainAttr(g *Group) int                  { return g.Height }
func (verticalOps) CrossAttr(g *Group) int                 { return g.Width }
