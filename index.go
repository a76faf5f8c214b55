package labelmask

import (
	"github.com/dhconnelly/rtreego"
)

// R-tree branching factors, rtreego's conventional defaults.
const (
	indexMinBranch = 25
	indexMaxBranch = 50
)

// Index is a bulk-built, read-only spatial index over labeled shapes.
// It answers "which shapes might intersect this rectangle" by bounding box;
// true geometric intersection is checked downstream.
//
// An Index is immutable after BuildIndex and safe for concurrent queries.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// BuildIndex bulk-loads an R-tree over the bounding boxes of the given
// shapes. An empty (or nil) input yields a valid, trivially empty index.
// Construction is O(n log n); the index must not be mutated afterward.
func BuildIndex(shapes []LabeledShape) *Index {
	objs := make([]rtreego.Spatial, len(shapes))
	for i, s := range shapes {
		objs[i] = s
	}
	return &Index{
		tree: rtreego.NewTree(2, indexMinBranch, indexMaxBranch, objs...),
		size: len(shapes),
	}
}

// Query returns every shape whose bounding box intersects the window.
// The order is unspecified but deterministic for a given build: rebuilding
// from the same input sequence reproduces the same order. Callers must not
// rely on any further ordering guarantee.
//
// An empty or out-of-range window yields an empty result, never an error.
func (ix *Index) Query(window Box) []LabeledShape {
	if ix.size == 0 {
		return nil
	}
	hits := ix.tree.SearchIntersect(boundToRect(window.Bound()))
	if len(hits) == 0 {
		return nil
	}
	shapes := make([]LabeledShape, len(hits))
	for i, h := range hits {
		shapes[i] = h.(LabeledShape)
	}
	return shapes
}

// Len returns the number of indexed shapes.
func (ix *Index) Len() int {
	return ix.size
}
