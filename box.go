package labelmask

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Box is an axis-aligned rectangle in pixel coordinates. Coordinates may be
// fractional. A well-formed Box has XMin <= XMax and YMin <= YMax; the zero
// Box is well formed and empty.
type Box struct {
	XMin, YMin, XMax, YMax float64
}

// NewBox creates a Box from its corner coordinates.
func NewBox(xmin, ymin, xmax, ymax float64) Box {
	return Box{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
}

// BoxFromBound converts an orb.Bound to a Box.
func BoxFromBound(b orb.Bound) Box {
	return Box{XMin: b.Min[0], YMin: b.Min[1], XMax: b.Max[0], YMax: b.Max[1]}
}

// Width returns xmax - xmin.
func (b Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns ymax - ymin.
func (b Box) Height() float64 {
	return b.YMax - b.YMin
}

// IsEmpty reports whether the box encloses no area.
func (b Box) IsEmpty() bool {
	return b.XMax <= b.XMin || b.YMax <= b.YMin
}

// Intersection returns the overlap of two boxes. If the boxes are disjoint
// the result is empty.
func (b Box) Intersection(o Box) Box {
	r := Box{
		XMin: math.Max(b.XMin, o.XMin),
		YMin: math.Max(b.YMin, o.YMin),
		XMax: math.Min(b.XMax, o.XMax),
		YMax: math.Min(b.YMax, o.YMax),
	}
	if r.XMax < r.XMin || r.YMax < r.YMin {
		return Box{}
	}
	return r
}

// Translate returns the box shifted by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{
		XMin: b.XMin + dx,
		YMin: b.YMin + dy,
		XMax: b.XMax + dx,
		YMax: b.YMax + dy,
	}
}

// Contains reports whether the point (x, y) lies inside the box.
// Points on the edge count as inside.
func (b Box) Contains(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// ToInt truncates the box to integer pixel bounds using floor semantics on
// both the min and max edges, consistent with grid indexing: pixel column c
// covers [c, c+1), so a fractional max edge does not claim the pixel it
// falls inside of.
func (b Box) ToInt() (xmin, ymin, xmax, ymax int) {
	return int(math.Floor(b.XMin)), int(math.Floor(b.YMin)),
		int(math.Floor(b.XMax)), int(math.Floor(b.YMax))
}

// Bound converts the box to an orb.Bound.
func (b Box) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.XMin, b.YMin},
		Max: orb.Point{b.XMax, b.YMax},
	}
}

// Ring converts the box to a closed orb.Ring (counter-clockwise).
func (b Box) Ring() orb.Ring {
	return orb.Ring{
		{b.XMin, b.YMin},
		{b.XMax, b.YMin},
		{b.XMax, b.YMax},
		{b.XMin, b.YMax},
		{b.XMin, b.YMin},
	}
}

// Polygon converts the box to a single-ring orb.Polygon.
func (b Box) Polygon() orb.Polygon {
	return orb.Polygon{b.Ring()}
}

// String formats the box for log output.
func (b Box) String() string {
	return fmt.Sprintf("Box(%g, %g, %g, %g)", b.XMin, b.YMin, b.XMax, b.YMax)
}
