package labelmask

// Option configures a RasterizedSource during creation.
// Use functional options to customize rasterization behavior.
//
// Example:
//
//	// Defaults: 15px line buffer, background class 0
//	src := labelmask.NewRasterizedSource(vectors, extent)
//
//	// Custom rasterization
//	src := labelmask.NewRasterizedSource(vectors, extent,
//		labelmask.WithLineBuffer(2),
//		labelmask.WithBackgroundClass(1))
type Option func(*rasterOptions)

// rasterOptions holds the immutable rasterization configuration of a
// source. Supplied once at construction.
type rasterOptions struct {
	lineBuffer      float64
	backgroundClass uint8
}

// defaultRasterOptions returns the default rasterization options.
func defaultRasterOptions() rasterOptions {
	return rasterOptions{
		lineBuffer:      15,
		backgroundClass: 0,
	}
}

// WithLineBuffer sets the buffer radius, in pixels, applied to line
// geometries so they rasterize with nonzero area. The radius must be >= 0;
// negative values are clamped to 0.
//
// A radius of 0 is legal: the buffered line is degenerate and contributes
// no burned pixels.
func WithLineBuffer(px float64) Option {
	return func(o *rasterOptions) {
		if px < 0 {
			px = 0
		}
		o.lineBuffer = px
	}
}

// WithBackgroundClass sets the class id burned into pixels that lie inside
// the extent but are covered by no labeled geometry.
//
// Class id 0 doubles as the don't-care sentinel for pixels outside the
// extent. Pick a nonzero background class unless background and don't-care
// are meant to be indistinguishable.
func WithBackgroundClass(id uint8) Option {
	return func(o *rasterOptions) {
		o.backgroundClass = id
	}
}
