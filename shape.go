package labelmask

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// LabeledShape pairs a geometry with the class id it carries. The pair is
// permanent: the label travels with the geometry through every transform
// step (clip, buffer, reframe) as one record, never as a side table keyed
// by geometry identity.
type LabeledShape struct {
	Geometry orb.Geometry
	ClassID  uint8
}

// minRectExtent pads degenerate bounding boxes (points, axis-parallel
// lines) so they index as valid R-tree rectangles.
const minRectExtent = 1e-9

// Bounds implements the rtreego.Spatial interface.
func (s LabeledShape) Bounds() rtreego.Rect {
	return boundToRect(s.Geometry.Bound())
}

// boundToRect converts an orb.Bound to an rtreego.Rect, padding zero
// extents so rtreego accepts them.
func boundToRect(b orb.Bound) rtreego.Rect {
	w := b.Max[0] - b.Min[0]
	h := b.Max[1] - b.Min[1]
	if w < minRectExtent {
		w = minRectExtent
	}
	if h < minRectExtent {
		h = minRectExtent
	}
	rect, _ := rtreego.NewRect(
		rtreego.Point{b.Min[0], b.Min[1]},
		[]float64{w, h},
	)
	return rect
}
