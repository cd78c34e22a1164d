package lattice

import (
	"slices"
	"testing"
)

func TestMultiShapeBounds(t *testing.T) {
	box := boxp(5, 8, 0, 7, 9, 0)
	sphere := NewSphere(Pt(-5, 18, 0), 2)
	m := NewMultiShape(box, sphere)

	b := m.BoundingBox()
	if b.Min.X != -7 || b.Min.Y != 8 || b.Max.X != 7 || b.Max.Y != 20 {
		t.Errorf("got bounds %s, want x and y from (-7, 8) to (7, 20)", b)
	}

	// Members are shared, so moving one moves the bounds.
	sphere.Translate(Vec(0, -10, 0))
	if got := m.BoundingBox().Max.Y; got != 10 {
		t.Errorf("got max y %d after moving a member, want 10", got)
	}

	if got := NewMultiShape().BoundingBox(); got != (Box{}) {
		t.Errorf("got bounds %s for an empty multi-shape", got)
	}
}

func TestMultiShapeMembers(t *testing.T) {
	a := boxp(0, 0, 0, 10, 10, 0)
	b := NewSphere(Pt(8, 8, 0), 4)
	c := NewSegment(Pt(50, 50, 0), Pt(60, 50, 0))
	m := NewMultiShape(a, b, c)

	if got, ok := m.GetFirstShapeContaining(Pt(9, 9, 0)); !ok || got != Shape(a) {
		t.Errorf("got first shape %v, %t, want %v", got, ok, a)
	}
	diff(t, []Shape{a, b}, m.GetShapesContaining(Pt(9, 9, 0)))
	diff(t, []Shape{b}, m.GetShapesContaining(Pt(12, 8, 0)))
	if got, ok := m.GetFirstShapeContaining(Pt(30, 30, 0)); ok {
		t.Errorf("got %v containing a point outside of all members", got)
	}
	if !m.Contains(Pt(55, 50, 0)) || m.Contains(Pt(55, 51, 0)) {
		t.Error("Contains doesn't match the members")
	}

	probe := NewSegment(Pt(12, 8, 0), Pt(55, 50, 0))
	diff(t, []Shape{b, c}, m.GetShapesIntersecting(probe))
	if got, ok := m.GetFirstShapeIntersecting(probe); !ok || got != Shape(b) {
		t.Errorf("got first intersecting shape %v, %t, want %v", got, ok, b)
	}

	if !m.Remove(b) || m.Len() != 2 || m.At(1) != Shape(c) {
		t.Errorf("Remove didn't remove %v: %v", b, m)
	}
	if m.Remove(b) {
		t.Error("removed a shape twice")
	}
	shapes := m.Shapes()
	shapes[0] = nil
	if m.At(0) != Shape(a) {
		t.Error("Shapes doesn't return a copy")
	}
	m.Clear()
	if m.Len() != 0 || !m.IsEmpty() {
		t.Error("Clear didn't remove the members")
	}
}

func TestMultiShapeSelf(t *testing.T) {
	m := NewMultiShape()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic when adding a multi-shape to itself")
		}
	}()
	m.Add(m)
}

func TestMultiShapeClosestPoint(t *testing.T) {
	m := NewMultiShape(boxp(0, 0, 0, 10, 10, 0), boxp(100, 0, 0, 110, 10, 0))
	f := func(pt, closest, farthest Point) {
		t.Helper()
		if got := m.ClosestPointTo(pt); got != closest {
			t.Errorf("ClosestPointTo(%s) = %s, want %s", pt, got, closest)
		}
		if got := m.FarthestPointTo(pt); got != farthest {
			t.Errorf("FarthestPointTo(%s) = %s, want %s", pt, got, farthest)
		}
	}
	f(Pt(40, 5, 0), Pt(10, 5, 0), Pt(110, 10, 0))
	f(Pt(70, 5, 0), Pt(100, 5, 0), Pt(0, 10, 0))
	f(Pt(5, 5, 0), Pt(5, 5, 0), Pt(110, 10, 0))

	if got := m.DistanceSquared(Pt(40, 5, 0)); got != 900 {
		t.Errorf("got distance² %d, want 900", got)
	}
	if got := NewMultiShape().ClosestPointTo(Pt(1, 2, 3)); got != Pt(1, 2, 3) {
		t.Errorf("empty multi-shape: got %s", got)
	}
}

func TestMultiShapeCloneTranslate(t *testing.T) {
	a := boxp(0, 0, 0, 1, 1, 1)
	m := NewMultiShape(a, NewSphere(Pt(5, 5, 5), 1))
	c := m.Clone().(*MultiShape)
	m.Translate(Vec(10, 0, 0))
	if a.Min != Pt(10, 0, 0) {
		t.Errorf("Translate didn't move the member, got %s", a)
	}
	if got := c.At(0).BoundingBox().Min; got != Pt(0, 0, 0) {
		t.Errorf("translating the original moved the clone's member to %s", got)
	}
}

func TestMultiShapePathIterator(t *testing.T) {
	m := NewMultiShape(boxp(0, 0, 0, 10, 10, 0), NewSegment(Pt(20, 0, 0), Pt(30, 0, 0)))
	it := m.PathIterator()
	if !it.IsMultiParts() || it.IsPolygon() || it.IsPolyline() || it.IsCurved() {
		t.Error("wrong flags for a box and a segment")
	}
	var want []PathElement
	want = append(want, slices.Collect(Elements(m.At(0).PathIterator()))...)
	want = append(want, slices.Collect(Elements(m.At(1).PathIterator()))...)
	diff(t, want, slices.Collect(Elements(it)))
	diff(t, want, slices.Collect(Elements(it.Restart())))

	m.Add(NewSphere(Pt(0, 0, 0), 3))
	if !m.PathIterator().IsCurved() {
		t.Error("iterator over a sphere isn't curved")
	}

	one := NewMultiShape(NewSegment(Pt(0, 0, 0), Pt(5, 5, 0)))
	if !one.PathIterator().IsPolyline() || one.PathIterator().IsMultiParts() {
		t.Error("a single segment should be a polyline")
	}
	two := NewMultiShape(NewSegment(Pt(0, 0, 0), Pt(5, 5, 0)), NewSegment(Pt(9, 0, 0), Pt(9, 5, 0)))
	if it := two.PathIterator(); it.IsPolyline() || !it.IsMultiParts() {
		t.Error("two segments are not a single polyline")
	}
}
