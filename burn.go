package labelmask

import (
	"math"

	"github.com/golang/freetype/raster"
	"github.com/paulmach/orb"
	"golang.org/x/image/math/fixed"
)

// classPainter paints rasterizer coverage spans into a class-id grid,
// quantizing each span to fully burned or not burned at 50% coverage.
// Burned pixels overwrite whatever the grid held before, so shapes painted
// later win where they overlap.
type classPainter struct {
	grid  []uint8
	width int
	class uint8
}

// Paint implements the raster.Painter interface.
func (p *classPainter) Paint(ss []raster.Span, done bool) {
	height := len(p.grid) / p.width
	for _, s := range ss {
		if s.Alpha < 0x8000 {
			continue
		}
		if s.Y < 0 || s.Y >= height {
			continue
		}
		x0, x1 := s.X0, s.X1
		if x0 < 0 {
			x0 = 0
		}
		if x1 > p.width {
			x1 = p.width
		}
		row := p.grid[s.Y*p.width : (s.Y+1)*p.width]
		for x := x0; x < x1; x++ {
			row[x] = p.class
		}
	}
}

// burner rasterizes reframed shapes onto a class-id grid. The shapes must
// already be in the grid's local [0, width) x [0, height) frame.
//
// A burner is not safe for concurrent use; each window gets its own.
type burner struct {
	ras        *raster.Rasterizer
	width      int
	height     int
	lineBuffer float64
}

func newBurner(width, height int, lineBuffer float64) *burner {
	return &burner{
		ras:        raster.NewRasterizer(width, height),
		width:      width,
		height:     height,
		lineBuffer: lineBuffer,
	}
}

// burn paints one labeled shape's interior onto the grid.
func (b *burner) burn(grid []uint8, s LabeledShape) {
	b.burnGeometry(grid, s.Geometry, s.ClassID)
}

func (b *burner) burnGeometry(grid []uint8, g orb.Geometry, class uint8) {
	switch g := g.(type) {
	case orb.Polygon:
		b.fill(grid, g, class)
	case orb.MultiPolygon:
		for _, poly := range g {
			b.fill(grid, poly, class)
		}
	case orb.Ring:
		b.fill(grid, orb.Polygon{g}, class)
	case orb.Bound:
		b.fill(grid, g.ToPolygon(), class)
	case orb.LineString:
		b.stroke(grid, g, class)
	case orb.MultiLineString:
		for _, ls := range g {
			b.stroke(grid, ls, class)
		}
	case orb.Point:
		b.point(grid, g, class)
	case orb.MultiPoint:
		for _, pt := range g {
			b.point(grid, pt, class)
		}
	case orb.Collection:
		for _, sub := range g {
			b.burnGeometry(grid, sub, class)
		}
	}
}

// fill burns a polygon's interior. The even-odd rule is used so interior
// rings read as holes regardless of their winding direction.
func (b *burner) fill(grid []uint8, poly orb.Polygon, class uint8) {
	b.ras.Clear()
	b.ras.UseNonZeroWinding = false
	added := false
	for _, ring := range poly {
		if len(ring) < 3 {
			continue
		}
		b.ras.Start(fixp(ring[0]))
		for _, pt := range ring[1:] {
			b.ras.Add1(fixp(pt))
		}
		if ring[0] != ring[len(ring)-1] {
			b.ras.Add1(fixp(ring[0]))
		}
		added = true
	}
	if !added {
		return
	}
	b.ras.Rasterize(&classPainter{grid: grid, width: b.width, class: class})
}

// stroke burns a line geometry buffered by the configured radius: the line
// is expanded into its offset outline with round caps and joins, width
// twice the buffer radius, and the outline's interior is burned.
//
// A zero buffer radius yields a degenerate outline and burns nothing, as
// does a line whose segments are all zero length.
func (b *burner) stroke(grid []uint8, ls orb.LineString, class uint8) {
	if b.lineBuffer <= 0 {
		return
	}
	var path raster.Path
	segments := 0
	for i, pt := range ls {
		if i == 0 {
			path.Start(fixp(pt))
			continue
		}
		// The stroker cannot offset zero-length segments.
		if pt == ls[i-1] {
			continue
		}
		path.Add1(fixp(pt))
		segments++
	}
	if segments == 0 {
		return
	}
	b.ras.Clear()
	// Offset outlines self-overlap at joins; the nonzero rule keeps the
	// overlap filled.
	b.ras.UseNonZeroWinding = true
	b.ras.AddStroke(path, fix(2*b.lineBuffer), raster.RoundCapper, raster.RoundJoiner)
	b.ras.Rasterize(&classPainter{grid: grid, width: b.width, class: class})
}

// point burns the single pixel containing the point.
func (b *burner) point(grid []uint8, pt orb.Point, class uint8) {
	col := int(math.Floor(pt[0]))
	row := int(math.Floor(pt[1]))
	if col < 0 || col >= b.width || row < 0 || row >= b.height {
		return
	}
	grid[row*b.width+col] = class
}

// fix converts a pixel coordinate to 26.6 fixed point.
func fix(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}

func fixp(p orb.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fix(p[0]), Y: fix(p[1])}
}
