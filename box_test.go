package labelmask

import (
	"testing"
)

func TestBoxWidthHeight(t *testing.T) {
	b := NewBox(2, 3, 10, 7)
	if got := b.Width(); got != 8 {
		t.Errorf("Width() = %g, want 8", got)
	}
	if got := b.Height(); got != 4 {
		t.Errorf("Height() = %g, want 4", got)
	}
}

func TestBoxIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"zero box", Box{}, true},
		{"normal box", NewBox(0, 0, 10, 10), false},
		{"zero width", NewBox(5, 0, 5, 10), true},
		{"zero height", NewBox(0, 5, 10, 5), true},
		{"fractional", NewBox(0.5, 0.5, 0.6, 0.6), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want Box
	}{
		{
			"overlap",
			NewBox(0, 0, 10, 10),
			NewBox(5, 5, 15, 15),
			NewBox(5, 5, 10, 10),
		},
		{
			"contained",
			NewBox(0, 0, 100, 100),
			NewBox(10, 20, 30, 40),
			NewBox(10, 20, 30, 40),
		},
		{
			"disjoint",
			NewBox(0, 0, 10, 10),
			NewBox(20, 20, 30, 30),
			Box{},
		},
		{
			"touching edge",
			NewBox(0, 0, 10, 10),
			NewBox(10, 0, 20, 10),
			NewBox(10, 0, 10, 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersection(tt.b)
			if got != tt.want {
				t.Errorf("Intersection() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if rev := tt.b.Intersection(tt.a); rev != got {
				t.Errorf("Intersection not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestBoxIntersectionEmptyResults(t *testing.T) {
	a := NewBox(0, 0, 10, 10)
	b := NewBox(20, 20, 30, 30)
	if got := a.Intersection(b); !got.IsEmpty() {
		t.Errorf("disjoint Intersection() = %v, want empty", got)
	}
	// Edge-touching boxes intersect in a zero-width box, which encloses
	// no pixels and therefore counts as empty.
	c := NewBox(10, 0, 20, 10)
	if got := a.Intersection(c); !got.IsEmpty() {
		t.Errorf("touching Intersection() = %v, want empty", got)
	}
}

func TestBoxToInt(t *testing.T) {
	tests := []struct {
		name                   string
		box                    Box
		xmin, ymin, xmax, ymax int
	}{
		{"integer", NewBox(1, 2, 3, 4), 1, 2, 3, 4},
		{"fractional floors both edges", NewBox(1.7, 2.2, 9.9, 10.1), 1, 2, 9, 10},
		{"negative coordinates", NewBox(-0.5, -1.5, 2.5, 3.5), -1, -2, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1 := tt.box.ToInt()
			if x0 != tt.xmin || y0 != tt.ymin || x1 != tt.xmax || y1 != tt.ymax {
				t.Errorf("ToInt() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					x0, y0, x1, y1, tt.xmin, tt.ymin, tt.xmax, tt.ymax)
			}
		})
	}
}

func TestBoxTranslate(t *testing.T) {
	b := NewBox(10, 20, 30, 40).Translate(-10, -20)
	want := NewBox(0, 0, 20, 20)
	if b != want {
		t.Errorf("Translate() = %v, want %v", b, want)
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(0, 0, 10, 10)
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 5, 5, true},
		{"on edge", 0, 5, true},
		{"on corner", 10, 10, true},
		{"outside", 11, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%g, %g) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBoxRing(t *testing.T) {
	r := NewBox(1, 2, 3, 4).Ring()
	if len(r) != 5 {
		t.Fatalf("Ring() has %d points, want 5", len(r))
	}
	if r[0] != r[len(r)-1] {
		t.Errorf("Ring() not closed: first %v, last %v", r[0], r[len(r)-1])
	}
}

func TestBoxBoundRoundTrip(t *testing.T) {
	b := NewBox(1.5, 2.5, 3.5, 4.5)
	if got := BoxFromBound(b.Bound()); got != b {
		t.Errorf("BoxFromBound(Bound()) = %v, want %v", got, b)
	}
}
