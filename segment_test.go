package lattice

import (
	"math"
	"slices"
	"testing"
)

func TestSegmentContains(t *testing.T) {
	s := NewSegment(Pt(0, 0, 0), Pt(10, 5, 0))
	for p := range LinePoints(s.P1, s.P2) {
		if !s.Contains(p) {
			t.Errorf("%s doesn't contain its raster point %s", s, p)
		}
	}
	// on the ideal line, but not on the raster
	if s.Contains(Pt(1, 1, 0)) {
		t.Errorf("%s shouldn't contain %s", s, Pt(1, 1, 0))
	}
	if s.Contains(Pt(2, 1, 1)) {
		t.Errorf("%s shouldn't contain %s", s, Pt(2, 1, 1))
	}

	if !s.ContainsBox(NewBox(Pt(2, 1, 0), Pt(3, 1, 0))) {
		t.Error("segment should contain a box made of two raster points")
	}
	if s.ContainsBox(NewBox(Pt(1, 0, 0), Pt(2, 1, 0))) {
		t.Error("segment shouldn't contain a 2×2 box")
	}

	d := NewSegment(Pt(4, 4, 4), Pt(4, 4, 4))
	if !d.IsEmpty() || !d.Contains(Pt(4, 4, 4)) {
		t.Error("degenerate segment should be empty and contain its point")
	}
}

func TestSegmentClosestPoint(t *testing.T) {
	f := func(s *Segment, pt, closest, farthest Point) {
		t.Helper()
		if got := s.ClosestPointTo(pt); got != closest {
			t.Errorf("%s.ClosestPointTo(%s) = %s, want %s", s, pt, got, closest)
		}
		if got := s.FarthestPointTo(pt); got != farthest {
			t.Errorf("%s.FarthestPointTo(%s) = %s, want %s", s, pt, got, farthest)
		}
	}
	f(NewSegment(Pt(0, 0, 0), Pt(10, 0, 0)), Pt(4, 7, 0), Pt(4, 0, 0), Pt(10, 0, 0))
	f(NewSegment(Pt(0, 0, 0), Pt(10, 0, 0)), Pt(-5, 0, 0), Pt(0, 0, 0), Pt(10, 0, 0))
	// The distance to raster points isn't monotonic along the segment: from
	// (0, 100), (0, 0) is closer than (1, 0), but (6, 1) is closer still.
	f(NewSegment(Pt(0, 0, 0), Pt(10, 1, 0)), Pt(0, 100, 0), Pt(6, 1, 0), Pt(5, 0, 0))

	s := NewSegment(Pt(0, 0, 0), Pt(10, 0, 0))
	if got := s.DistanceSquared(Pt(4, 7, 0)); got != 49 {
		t.Errorf("got distance² %d, want 49", got)
	}
}

func TestSegmentMeasures(t *testing.T) {
	s := NewSegment(Pt(0, 0, 0), Pt(3, 4, 12))
	if got := s.Length(); got != 13 {
		t.Errorf("got length %g, want 13", got)
	}
	if got := s.LengthSquared(); got != 169 {
		t.Errorf("got length² %d, want 169", got)
	}

	s = NewSegment(Pt(0, 0, 0), Pt(10, 0, 0))
	if got := s.DistanceToLine(Pt(5, 3, 4)); math.Abs(got-5) > 1e-12 {
		t.Errorf("got distance %g, want 5", got)
	}
	if got := s.DistanceToLine(Pt(13, 4, 0)); math.Abs(got-5) > 1e-12 {
		t.Errorf("got distance %g past the end, want 5", got)
	}
	if got := s.Side(Pt(5, 1, 0)); got != 1 {
		t.Errorf("got side %d, want 1", got)
	}
	if got := s.Side(Pt(5, -1, 0)); got != -1 {
		t.Errorf("got side %d, want -1", got)
	}
	if got := s.Side(Pt(20, 0, 3)); got != 0 {
		t.Errorf("got side %d, want 0", got)
	}
}

func TestSegmentPathIterator(t *testing.T) {
	s := NewSegment(Pt(1, 2, 3), Pt(4, 5, 6))
	it := s.PathIterator()
	if !it.IsPolyline() || it.IsPolygon() {
		t.Error("segment outline should be a polyline")
	}
	diff(t, []PathElement{MoveTo{Pt(1, 2, 3)}, LineTo{Pt(1, 2, 3), Pt(4, 5, 6)}}, slices.Collect(Elements(it)))

	c := s.Clone().(*Segment)
	c.Translate(Vec(1, 1, 1))
	if s.P1 != Pt(1, 2, 3) || c.P1 != Pt(2, 3, 4) || c.P2 != Pt(5, 6, 7) {
		t.Errorf("got %s and clone %s", s, c)
	}
}
