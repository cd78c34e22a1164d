package lattice

import "testing"

func TestPathShadowCrossings(t *testing.T) {
	s := NewPathShadow(square(0, 0, 10, 10))
	f := func(s0, s1 Point, want int) {
		t.Helper()
		if got := s.Crossings(0, s0, s1); got != want {
			t.Errorf("edge (%s, %s): got %d, want %d", s0, s1, got, want)
		}
	}
	// entirely to the right, crossing both borders
	f(Pt(20, -5, 0), Pt(20, 15, 0), 2)
	f(Pt(20, 15, 0), Pt(20, -5, 0), -2)
	// entirely to the left
	f(Pt(-5, -5, 0), Pt(-5, 15, 0), 0)
	// above
	f(Pt(0, 20, 0), Pt(10, 30, 0), 0)
	// through the path
	f(Pt(5, -5, 0), Pt(5, 15, 0), ShapeIntersects)
	// inside the closed path
	f(Pt(4, 4, 0), Pt(6, 6, 0), ShapeIntersects)
	// within the bounds but outside of the outline of a triangle
	tri := NewPath(NonZero)
	tri.MoveTo(Pt(0, 0, 0))
	tri.LineTo(Pt(10, 0, 0))
	tri.LineTo(Pt(0, 10, 0))
	tri.ClosePath()
	s = NewPathShadow(tri)
	f(Pt(8, 6, 0), Pt(9, 9, 0), 0)
	f(Pt(2, 2, 0), Pt(3, 3, 0), ShapeIntersects)

	if got := s.Crossings(ShapeIntersects, Pt(100, 0, 0), Pt(100, 1, 0)); got != ShapeIntersects {
		t.Errorf("ShapeIntersects should absorb further edges, got %d", got)
	}
}

func TestPathShadowEmpty(t *testing.T) {
	s := NewPathShadow(NewPath(NonZero))
	if got := s.Crossings(3, Pt(0, 0, 0), Pt(10, 10, 0)); got != 3 {
		t.Errorf("the shadow of an empty path changed the crossings to %d", got)
	}
}
