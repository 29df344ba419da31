package layout

import (
	"math"

	"github.com/go-strut/strut/pkg/geometry"
)

// flex divides the main axis evenly among children. A floating cursor
// accumulates the exact per-child share and every child takes the
// difference between the rounded cursor before and after, so cumulative
// rounding error stays within one pixel instead of drifting per child.
func (st *state) flex(bounds geometry.Rect, g *Group, ov override) (Result, error) {
	ax := st.ax
	crossFixed := st.clamp(&bounds, g, ov)

	var res Result
	res.Total = bounds
	origin := ax.MainOrigin(bounds)
	maxCross := 0

	sized, slots := flexCounts(g)
	share := 0.0
	if slots > 0 {
		share = float64(ax.Main(bounds)-g.Gap*max(sized-1, 0)) / float64(slots)
		if g.MaxSize > 0 && share > float64(g.MaxSize) {
			share = float64(g.MaxSize)
		}
		if share < 0 {
			share = 0
		}
	}

	cursor := float64(origin)
	end := origin
	for _, item := range g.Items {
		if leaf, ok := item.(Leaf); ok && !leaf.Widget.Visible() {
			// No cell, no gap; the slot stays in the result as a zero
			// rectangle.
			res.Widgets = append(res.Widgets, geometry.Rect{})
			continue
		}

		m := st.margins.Margin(item)
		lead, trail := ax.Leading(m), ax.Trailing(m)
		crossLead, crossTrail := ax.CrossLeading(m), ax.CrossTrailing(m)

		before := int(math.Round(cursor))
		cursor += share
		after := int(math.Round(cursor))
		cursor += float64(g.Gap)
		end = after
		cell := after - before
		inner := max(cell-lead-trail, 0)

		switch it := item.(type) {
		case *Group:
			var child geometry.Rect
			ax.SetMainOrigin(&child, before+lead)
			ax.SetMain(&child, inner)
			ax.SetCrossOrigin(&child, ax.CrossOrigin(bounds)+crossLead)
			ax.SetCross(&child, max(ax.Cross(bounds)-crossLead-crossTrail, 0))

			r, err := st.group(child, it, override{main: cell, cross: crossFixed})
			if err != nil {
				return Result{}, err
			}
			res.Widgets = append(res.Widgets, r.Widgets...)
			if c := ax.Cross(r.Total) + crossLead + crossTrail; c > maxCross {
				maxCross = c
			}

		case Leaf:
			ext, err := it.Widget.Extents(st.ctx)
			if err != nil {
				return Result{}, err
			}

			crossSize := ax.Cross(ext)
			if it.Widget.Resize() && ax.Main(ext) > 0 && ax.Cross(ext) > 0 {
				// The main axis is dictated by the assigned cell, so the
				// cross axis rescales to keep the aspect ratio.
				crossSize = int(math.Round(float64(ax.Cross(ext)) * float64(inner) / float64(ax.Main(ext))))
			}
			if crossFixed > 0 {
				crossSize = max(crossFixed-crossLead-crossTrail, 0)
			} else if avail := max(ax.Cross(bounds)-crossLead-crossTrail, 0); crossSize > avail {
				crossSize = avail
			}

			var out geometry.Rect
			ax.SetMainOrigin(&out, before+lead)
			ax.SetMain(&out, inner)
			ax.SetCrossOrigin(&out, ax.CrossOrigin(bounds)+crossLead)
			ax.SetCross(&out, crossSize)
			res.Widgets = append(res.Widgets, out)
			if c := crossSize + crossLead + crossTrail; c > maxCross {
				maxCross = c
			}
		}
	}

	// Flex always fills from the leading edge: the total runs from the
	// origin to the end of the last assigned cell, excluding the
	// trailing gap.
	ax.SetMain(&res.Total, end-origin)
	if crossFixed > 0 {
		ax.SetCross(&res.Total, crossFixed)
	} else {
		ax.SetCross(&res.Total, maxCross)
	}
	return res, nil
}

// flexCounts reports how a group's children divide flex space. sized
// counts the children that receive a cell and a gap: visible leaves and
// every nested group. slots additionally counts invisible leaves, a
// quirk kept from the original engine: the share divides among all
// slots while gaps only separate sized children, so space reserved for
// an invisible slot is simply left unfilled.
func flexCounts(g *Group) (sized, slots int) {
	for _, item := range g.Items {
		if leaf, ok := item.(Leaf); ok && !leaf.Widget.Visible() {
			slots++
			continue
		}
		sized++
		slots++
	}
	return sized, slots
}
