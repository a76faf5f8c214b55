package labelmask

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// rasterizeWindow converts the indexed shapes intersecting window into a
// filled class-id grid of shape (height, width), row-major. The pipeline
// runs in a fixed order:
//
//  1. candidate query against the index (bounding-box overlap only)
//  2. true geometric clip against the window, dropping empty results
//  3. reframe into the window's local [0, width) x [0, height) frame
//  4. burn-in: background fill, then each shape's interior in candidate
//     order, later shapes overwriting earlier ones where they overlap
//     (lines are expanded by the buffer radius as they burn)
//  5. extent masking: pixels outside window ∩ extent are reset to 0
//
// Clipping before buffering keeps buffered extents local to the window;
// reframing before burn-in keeps rasterizer coordinates small no matter
// how far the window sits from the origin; masking last makes the extent
// authoritative over anything burn-in produced.
func rasterizeWindow(ix *Index, opts rasterOptions, window, extent Box) []uint8 {
	width := int(window.Width())
	height := int(window.Height())
	if width <= 0 || height <= 0 {
		return nil
	}
	log := Logger()

	log.Debug("cropping shapes to window", "window", window)
	candidates := ix.Query(window)
	bound := window.Bound()
	shapes := make([]LabeledShape, 0, len(candidates))
	for _, c := range candidates {
		clipped, err := clipShape(bound, c.Geometry)
		if err != nil {
			log.Warn("skipping shape that failed to clip",
				"class", c.ClassID, "err", err)
			continue
		}
		if clipped == nil {
			continue
		}
		shapes = append(shapes, LabeledShape{Geometry: clipped, ClassID: c.ClassID})
	}
	log.Debug("shapes in window", "count", len(shapes))

	toWindowFrame := func(p orb.Point) orb.Point {
		return orb.Point{p[0] - window.XMin, p[1] - window.YMin}
	}
	for i := range shapes {
		shapes[i].Geometry = project.Geometry(shapes[i].Geometry, toWindowFrame)
	}

	grid := make([]uint8, height*width)
	if opts.backgroundClass != 0 {
		fillUniform(grid, opts.backgroundClass)
	}
	if len(shapes) > 0 {
		b := newBurner(width, height, opts.lineBuffer)
		for _, s := range shapes {
			b.burn(grid, s)
		}
	}

	valid := window.Intersection(extent)
	if valid.IsEmpty() {
		// The window lies entirely outside the extent: everything is
		// don't-care, including anything burned above.
		clear(grid)
		return grid
	}
	local := valid.Translate(-window.XMin, -window.YMin)
	x0, y0, x1, y1 := local.ToInt()
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, width)
	y1 = min(y1, height)
	if x0 >= x1 || y0 >= y1 {
		clear(grid)
		return grid
	}
	if x0 == 0 && y0 == 0 && x1 == width && y1 == height {
		return grid
	}
	masked := make([]uint8, height*width)
	for row := y0; row < y1; row++ {
		copy(masked[row*width+x0:row*width+x1], grid[row*width+x0:row*width+x1])
	}
	return masked
}

// clipShape computes the true geometric intersection of a shape with the
// window bound. It returns nil for results with no content. The input is
// cloned first: clip returns its argument unchanged when the shape lies
// fully inside the bound, and downstream reframing mutates coordinates in
// place, which must never reach the indexed geometry.
//
// orb's clip helpers panic on malformed input rather than returning
// errors; the panic is converted to an error here so one bad shape cannot
// abort the whole window.
func clipShape(b orb.Bound, g orb.Geometry) (clipped orb.Geometry, err error) {
	defer func() {
		if r := recover(); r != nil {
			clipped, err = nil, fmt.Errorf("clip: %v", r)
		}
	}()
	c := clip.Geometry(b, orb.Clone(g))
	if c == nil || isEmptyGeometry(c) {
		return nil, nil
	}
	return c, nil
}

// isEmptyGeometry reports whether a clipped geometry has no content left
// to burn.
func isEmptyGeometry(g orb.Geometry) bool {
	switch g := g.(type) {
	case orb.Point:
		return false
	case orb.MultiPoint:
		return len(g) == 0
	case orb.LineString:
		return len(g) < 2
	case orb.MultiLineString:
		for _, ls := range g {
			if len(ls) >= 2 {
				return false
			}
		}
		return true
	case orb.Ring:
		// Clipping a polygon that only touches the window edge can leave
		// a zero-area sliver; those burn nothing and count as empty.
		return len(g) < 3 || planar.Area(g) == 0
	case orb.Polygon:
		for _, r := range g {
			if len(r) >= 3 && planar.Area(r) != 0 {
				return false
			}
		}
		return true
	case orb.MultiPolygon:
		for _, p := range g {
			if !isEmptyGeometry(p) {
				return false
			}
		}
		return true
	case orb.Collection:
		for _, sub := range g {
			if !isEmptyGeometry(sub) {
				return false
			}
		}
		return true
	case orb.Bound:
		return BoxFromBound(g).IsEmpty()
	}
	return false
}

func fillUniform(grid []uint8, v uint8) {
	for i := range grid {
		grid[i] = v
	}
}
