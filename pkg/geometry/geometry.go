// Package geometry provides the integer pixel types the layout engine
// assigns to bar widgets.
package geometry

// Rect is a rectangle in screen pixel coordinates, stored as origin
// plus extent. The zero value is the zero-area rectangle at the origin,
// which the layout engine uses as the placeholder for invisible widgets.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains reports whether inner lies entirely within r.
// An empty inner rectangle is contained by anything.
func (r Rect) Contains(inner Rect) bool {
	if inner.Empty() {
		return true
	}
	return inner.X >= r.X && inner.Y >= r.Y &&
		inner.Right() <= r.Right() && inner.Bottom() <= r.Bottom()
}
