package labelmask

import (
	"errors"
	"fmt"
)

// ErrNotActivated is returned by index-dependent calls made while the
// source is deactivated. Activate the source and retry.
var ErrNotActivated = errors.New("labelmask: source must be activated before use")

// VectorSource supplies the labeled shapes a RasterizedSource burns in.
// Shapes must already be expressed in the pixel coordinate space of the
// source extent; coordinate-reference-system transformation is the
// supplier's responsibility.
type VectorSource interface {
	// GetShapes returns the full labeled-shape collection.
	// Called once per activation.
	GetShapes() ([]LabeledShape, error)
}

// RasterizedSource serves class-id chips rasterized on demand from a
// vector source. It has two states, deactivated (initial) and activated:
// Activate fetches the shapes and builds the spatial index, Deactivate
// releases it. GetChip is valid only while activated.
//
// The index field is non-nil exactly in the activated state; every
// index-dependent call is guarded through it.
type RasterizedSource struct {
	vectors VectorSource
	opts    rasterOptions
	extent  Box

	index *Index
}

// NewRasterizedSource creates a deactivated source over the given vector
// collaborator and imagery extent.
func NewRasterizedSource(vectors VectorSource, extent Box, opts ...Option) *RasterizedSource {
	o := defaultRasterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &RasterizedSource{
		vectors: vectors,
		opts:    o,
		extent:  extent,
	}
}

// Activate fetches the labeled shapes from the vector source and builds
// the spatial index. It must not be called on an already activated source,
// and must happen before any GetChip call.
func (s *RasterizedSource) Activate() error {
	shapes, err := s.vectors.GetShapes()
	if err != nil {
		return fmt.Errorf("labelmask: fetching labeled shapes: %w", err)
	}
	s.index = BuildIndex(shapes)
	Logger().Info("spatial index built", "shapes", s.index.Len())
	return nil
}

// Deactivate releases the spatial index and returns the source to the
// deactivated state. It must happen after all in-flight GetChip calls
// complete.
func (s *RasterizedSource) Deactivate() {
	s.index = nil
}

// GetExtent returns the total valid pixel area of the imagery this source
// accompanies. Valid in either state.
func (s *RasterizedSource) GetExtent() Box {
	return s.extent
}

// Channels returns the number of channels in chips produced by GetChip,
// always 1.
func (s *RasterizedSource) Channels() int {
	return 1
}

// GetChip rasterizes the labeled shapes intersecting window into a
// (height, width, 1) uint8 chip. Shape interiors are burned with their
// class id, uncovered pixels inside the extent get the background class,
// and pixels outside the extent are 0, the don't-care class.
//
// GetChip returns ErrNotActivated while the source is deactivated. Calls
// are independent and allocate a fresh chip each time; concurrent calls
// are safe on an activated source.
func (s *RasterizedSource) GetChip(window Box) (*Chip, error) {
	ix := s.index
	if ix == nil {
		return nil, ErrNotActivated
	}
	Logger().Debug("rasterizing window", "window", window)
	grid := rasterizeWindow(ix, s.opts, window, s.extent)
	return newChip(int(window.Height()), int(window.Width()), grid), nil
}
