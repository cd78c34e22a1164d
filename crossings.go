package lattice

import "math"

// ShapeIntersects is returned by crossing computations when the query
// geometry touches the boundary being tested. It absorbs all further
// contributions: once a computation yields ShapeIntersects, so does every
// computation that is passed its result.
const ShapeIntersects = math.MinInt

// Crossing counts are computed in the xy plane. A ray is cast from the query
// towards +x, and every boundary edge that crosses it contributes +1 if it
// runs towards increasing y and −1 otherwise. An edge is considered to be in
// row y if ymin ≤ y < ymax, so that two edges sharing a vertex don't both
// count. Edges are compared using their lattice rasters, not their ideal
// lines.
//
// Queries with an extent (segments, boxes, spheres, path shadows) cast two
// rays, one from their lowest and one from their highest row, and their
// crossing counts are the sum of both.

// Mask returns the bit mask that decides insideness for a crossing count
// accumulated over the given number of rays.
func Mask(rule WindingRule, borders int) int {
	if rule == NonZero {
		return -1
	}
	if borders == 1 {
		return 1
	}
	return 2
}

// Inside reports whether crossings, accumulated over the given number of
// rays, places the query inside the boundary or on it.
func Inside(crossings int, rule WindingRule, borders int) bool {
	return crossings == ShapeIntersects || crossings&Mask(rule, borders) != 0
}

type edge struct {
	xmin, xmax int
	ymin, ymax int
	dir        int
}

func newEdge(p0, p1 Point) edge {
	e := edge{
		xmin: min(p0.X, p1.X),
		xmax: max(p0.X, p1.X),
		ymin: min(p0.Y, p1.Y),
		ymax: max(p0.Y, p1.Y),
	}
	switch {
	case p1.Y > p0.Y:
		e.dir = 1
	case p1.Y < p0.Y:
		e.dir = -1
	}
	return e
}

// border adds the edge's contribution to a ray cast in row y from a point
// to the left of the edge.
func (e edge) border(c, y int) int {
	if e.ymin <= y && y < e.ymax {
		c += e.dir
	}
	return c
}

// CrossingsFromPoint adds to c the contribution of the edge (s0, s1) to the
// crossing count of a ray cast from p.
func CrossingsFromPoint(c int, p, s0, s1 Point) int {
	if c == ShapeIntersects {
		return c
	}
	e := newEdge(s0, s1)
	if p.Y < e.ymin || p.Y > e.ymax || p.X > e.xmax {
		return c
	}
	if e.ymin == e.ymax {
		if p.X >= e.xmin {
			return ShapeIntersects
		}
		return c
	}
	if p.X < e.xmin {
		return e.border(c, p.Y)
	}
	lo, hi, _ := rowRun(s0, s1, p.Y)
	if p.X >= lo && p.X <= hi {
		return ShapeIntersects
	}
	if p.X < lo {
		return e.border(c, p.Y)
	}
	return c
}

// CrossingsFromSegment adds to c the contribution of the edge (s0, s1) to
// the crossing count of the shadow of the segment (q0, q1).
func CrossingsFromSegment(c int, q0, q1, s0, s1 Point) int {
	if c == ShapeIntersects {
		return c
	}
	e := newEdge(s0, s1)
	q := newEdge(q0, q1)
	if e.ymax < q.ymin || e.ymin > q.ymax || e.xmax < q.xmin {
		return c
	}
	if e.xmin > q.xmax {
		return e.border(e.border(c, q.ymin), q.ymax)
	}
	if IntersectsSegmentSegment(q0, q1, s0, s1) {
		return ShapeIntersects
	}
	lo, hi := q0, q1
	if lo.Y > hi.Y {
		lo, hi = hi, lo
	}
	c = CrossingsFromPoint(c, lo, s0, s1)
	return CrossingsFromPoint(c, hi, s0, s1)
}

// CrossingsFromBox adds to c the contribution of the edge (s0, s1) to the
// crossing count of the shadow of the box's projection.
func CrossingsFromBox(c int, b Box, s0, s1 Point) int {
	if c == ShapeIntersects {
		return c
	}
	e := newEdge(s0, s1)
	if e.ymax < b.Min.Y || e.ymin > b.Max.Y || e.xmax < b.Min.X {
		return c
	}
	if e.ymin == e.ymax {
		if e.xmin <= b.Max.X {
			return ShapeIntersects
		}
		return c
	}
	if e.xmin > b.Max.X {
		return e.border(e.border(c, b.Min.Y), b.Max.Y)
	}

	// Walk the raster; any pixel inside the box is a touch. Otherwise, the
	// run of the edge in each border row lies entirely on one side of the
	// box.
	var low, high option[int]
	for pt := range LinePoints(s0.XY(), s1.XY()) {
		if pt.X >= b.Min.X && pt.X <= b.Max.X && pt.Y >= b.Min.Y && pt.Y <= b.Max.Y {
			return ShapeIntersects
		}
		if pt.Y == b.Min.Y && (!low.isSet || pt.X < low.value) {
			low.set(pt.X)
		}
		if pt.Y == b.Max.Y && (!high.isSet || pt.X < high.value) {
			high.set(pt.X)
		}
	}
	if low.isSet && low.value > b.Max.X {
		c = e.border(c, b.Min.Y)
	}
	if high.isSet && high.value > b.Max.X {
		c = e.border(c, b.Max.Y)
	}
	return c
}

// CrossingsFromSphere adds to c the contribution of the edge (s0, s1) to the
// crossing count of the shadow of the sphere's equatorial disk.
func CrossingsFromSphere(c int, center Point, radius int, s0, s1 Point) int {
	if c == ShapeIntersects {
		return c
	}
	e := newEdge(s0, s1)
	y0, y1 := center.Y-radius, center.Y+radius
	if e.ymax < y0 || e.ymin > y1 || e.xmax < center.X-radius {
		return c
	}
	if e.xmin > center.X+radius {
		return e.border(e.border(c, y0), y1)
	}
	if intersectsSegmentDisk(s0, s1, center, radius) {
		return ShapeIntersects
	}
	c = CrossingsFromPoint(c, Point{center.X, y0, center.Z}, s0, s1)
	return CrossingsFromPoint(c, Point{center.X, y1, center.Z}, s0, s1)
}

// IntersectsSegmentSegment reports whether the rasters of two segments,
// projected onto the xy plane, touch or cross.
//
// Two rasters can cross diagonally without sharing a pixel, so besides
// overlapping columns this also looks for columns in which the segments
// swap their vertical order.
func IntersectsSegmentSegment(a0, a1, b0, b1 Point) bool {
	x0 := max(min(a0.X, a1.X), min(b0.X, b1.X))
	x1 := min(max(a0.X, a1.X), max(b0.X, b1.X))
	if x0 > x1 {
		return false
	}
	if max(a0.Y, a1.Y) < min(b0.Y, b1.Y) || max(b0.Y, b1.Y) < min(a0.Y, a1.Y) {
		return false
	}
	sa := columnSpans(a0, a1, x0, x1)
	sb := columnSpans(b0, b1, x0, x1)
	order := 0
	for i := range sa {
		a, b := sa[i], sb[i]
		if !a.ok || !b.ok {
			continue
		}
		if a.lo <= b.hi && b.lo <= a.hi {
			return true
		}
		o := -1
		if a.lo > b.hi {
			o = 1
		}
		if order != 0 && o != order {
			return true
		}
		order = o
	}
	return false
}

// intersectsSegmentDisk reports whether the planar raster of (s0, s1)
// touches the disk of the given radius around center.
func intersectsSegmentDisk(s0, s1 Point, center Point, radius int) bool {
	if radius < 0 {
		return false
	}
	for pt := range LinePoints(s0.XY(), s1.XY()) {
		if diskContains(pt.X-center.X, pt.Y-center.Y, radius) {
			return true
		}
	}
	return false
}

// IntersectsSegmentBox reports whether the raster of the segment (s0, s1)
// has a point inside b.
func IntersectsSegmentBox(s0, s1 Point, b Box) bool {
	if !b.Overlaps(NewBox(s0, s1)) {
		return false
	}
	for pt := range LinePoints(s0, s1) {
		if b.Contains(pt) {
			return true
		}
	}
	return false
}

// IntersectsSegmentSphere reports whether the raster of the segment
// (s0, s1) has a point inside the sphere.
func IntersectsSegmentSphere(s0, s1 Point, center Point, radius int) bool {
	if radius < 0 || !NewBox(s0, s1).Overlaps(sphereBounds(center, radius)) {
		return false
	}
	for pt := range LinePoints(s0, s1) {
		if sphereContains(center, radius, pt) {
			return true
		}
	}
	return false
}
