// Package labelmask rasterizes class-labeled vector geometries into
// pixel-aligned label masks, one rectangular window at a time.
//
// # Overview
//
// labelmask materializes vector ground truth (labeled polygons and lines)
// as dense uint8 class-id grids matching imagery tiles requested by a
// training or inference pipeline. Geometries are expected to already be in
// the pixel coordinate space of a fixed imagery extent; reprojection is the
// job of whatever produced them.
//
// # Quick Start
//
//	import "github.com/gogeo/labelmask"
//
//	src := labelmask.NewRasterizedSource(vectors,
//		labelmask.NewBox(0, 0, 4096, 4096),
//		labelmask.WithBackgroundClass(1),
//		labelmask.WithLineBuffer(2))
//
//	if err := src.Activate(); err != nil {
//		// ...
//	}
//	defer src.Deactivate()
//
//	chip, err := src.GetChip(labelmask.NewBox(0, 0, 256, 256))
//
// # Architecture
//
// The library is organized around four pieces:
//   - Box: axis-aligned rectangle in pixel coordinates
//   - Index: bulk-built, read-only R-tree over labeled geometries
//   - the window rasterizer: clip, buffer, reframe, burn in, extent-mask
//   - RasterizedSource: activation lifecycle and chip serving
//
// Geometries use the orb model (github.com/paulmach/orb), the index is an
// rtreego R-tree, and burn-in runs on the freetype scanline rasterizer.
//
// # Coordinate System
//
// Pixel coordinates with origin (0,0) at the top-left of the extent,
// X increasing right and Y increasing down. Pixel (row, col) of a chip for
// window w covers the half-open square [w.XMin+col, w.XMin+col+1) x
// [w.YMin+row, w.YMin+row+1).
//
// # Concurrency
//
// An activated source is read-only: any number of goroutines may call
// GetChip concurrently, provided Activate happened before the first call
// and Deactivate happens after the last in-flight call completes.
package labelmask
