package layout

import (
	"math"

	"github.com/go-strut/strut/pkg/geometry"
)

// fixed packs children at natural size along the main axis, consuming the
// bounds rectangle as it proceeds. With reverse set, packing starts at
// the trailing edge and walks backwards, which is how right-aligned (or
// bottom-aligned) bar sections are expressed.
//
// The total geometry covers the region actually used. When nothing
// anchored itself to the leading edge, the consumed region sits at the
// trailing end and the total origin moves there; the parent's
// flush-with-origin guard relies on exactly this signal to avoid
// advancing past trailing-aligned sub-content.
func (st *state) fixed(bounds geometry.Rect, g *Group, ov override, reverse bool) (Result, error) {
	ax := st.ax
	crossFixed := st.clamp(&bounds, g, ov)

	var res Result
	res.Total = bounds
	size := ax.Main(bounds)
	end := ax.MainOrigin(bounds) + size
	maxCross := 0

	for _, item := range g.Items {
		m := st.margins.Margin(item)
		lead, trail := ax.Leading(m), ax.Trailing(m)
		crossLead, crossTrail := ax.CrossLeading(m), ax.CrossTrailing(m)

		switch it := item.(type) {
		case *Group:
			// The child works in the remaining region minus its margins.
			child := bounds
			ax.SetMainOrigin(&child, ax.MainOrigin(child)+lead)
			ax.SetMain(&child, max(ax.Main(child)-lead-trail, 0))
			ax.SetCrossOrigin(&child, ax.CrossOrigin(child)+crossLead)
			ax.SetCross(&child, max(ax.Cross(child)-crossLead-crossTrail, 0))

			r, err := st.group(child, it, override{cross: crossFixed})
			if err != nil {
				return Result{}, err
			}
			used := ax.Main(r.Total)
			if reverse {
				// Flush with the trailing edge keeps the leading region
				// free; a leading-anchored child moves the free region
				// past itself instead.
				flush := ax.MainOrigin(r.Total)+used == ax.MainOrigin(child)+ax.Main(child)
				ax.SetMain(&bounds, max(ax.Main(bounds)-used-lead-trail, 0))
				if !flush {
					ax.SetMainOrigin(&bounds, ax.MainOrigin(bounds)+lead+used+trail)
				}
			} else {
				// Only a child flush with the current origin advances
				// it; trailing-aligned sub-content consumed space at
				// the far end and the origin must stay put.
				flush := ax.MainOrigin(r.Total) == ax.MainOrigin(child)
				ax.SetMain(&bounds, max(ax.Main(bounds)-used-lead-trail, 0))
				if flush {
					ax.SetMainOrigin(&bounds, ax.MainOrigin(bounds)+lead+used+trail)
				}
			}
			res.Widgets = append(res.Widgets, r.Widgets...)
			if c := ax.Cross(r.Total) + crossLead + crossTrail; c > maxCross {
				maxCross = c
			}

		case Leaf:
			if !it.Widget.Visible() {
				res.Widgets = append(res.Widgets, geometry.Rect{})
				continue
			}
			ext, err := it.Widget.Extents(st.ctx)
			if err != nil {
				return Result{}, err
			}

			crossSize := crossSizeFor(ax, ext, bounds, crossFixed, crossLead, crossTrail)
			mainSize := ax.Main(ext)
			if it.Widget.Resize() && ax.Main(ext) > 0 && ax.Cross(ext) > 0 {
				// Preserve the aspect ratio against the cross size the
				// widget will receive. Degenerate extents skip this.
				mainSize = int(math.Round(float64(ax.Main(ext)) * float64(crossSize) / float64(ax.Cross(ext))))
			}
			if avail := max(ax.Main(bounds)-lead-trail, 0); mainSize > avail {
				mainSize = avail
			}

			var out geometry.Rect
			if reverse {
				ax.SetMainOrigin(&out, ax.MainOrigin(bounds)+ax.Main(bounds)-trail-mainSize)
			} else {
				ax.SetMainOrigin(&out, ax.MainOrigin(bounds)+lead)
			}
			ax.SetCrossOrigin(&out, ax.CrossOrigin(bounds)+crossLead)
			ax.SetMain(&out, mainSize)
			ax.SetCross(&out, crossSize)
			res.Widgets = append(res.Widgets, out)

			ax.SetMain(&bounds, max(ax.Main(bounds)-mainSize-lead-trail, 0))
			if !reverse {
				ax.SetMainOrigin(&bounds, ax.MainOrigin(out)+mainSize+trail)
			}
			if c := crossSize + crossLead + crossTrail; c > maxCross {
				maxCross = c
			}
		}
	}

	if reverse {
		// Reverse packing always anchors its total at the trailing edge.
		free := ax.MainOrigin(bounds) + ax.Main(bounds)
		ax.SetMainOrigin(&res.Total, free)
		ax.SetMain(&res.Total, max(end-free, 0))
	} else {
		consumed := size - ax.Main(bounds)
		ax.SetMain(&res.Total, consumed)
		if consumed > 0 && ax.MainOrigin(res.Total) == ax.MainOrigin(bounds) {
			ax.SetMainOrigin(&res.Total, ax.MainOrigin(res.Total)+ax.Main(bounds))
		}
	}
	if crossFixed > 0 {
		ax.SetCross(&res.Total, crossFixed)
	} else {
		ax.SetCross(&res.Total, maxCross)
	}
	return res, nil
}

// crossSizeFor resolves the cross-axis size a visible leaf receives: the
// group's fixed cross size minus the leaf's cross margins when the group
// fixes one, otherwise the natural size clamped to the available bounds.
func crossSizeFor(ax axisOps, ext, bounds geometry.Rect, crossFixed, crossLead, crossTrail int) int {
	if crossFixed > 0 {
		return max(crossFixed-crossLead-crossTrail, 0)
	}
	size := ax.Cross(ext)
	if avail := max(ax.Cross(bounds)-crossLead-crossTrail, 0); size > avail {
		size = avail
	}
	return size
}
