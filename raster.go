package lattice

import (
	"fmt"
	"iter"
)

// LineRaster enumerates the lattice points of a segment using Bresenham's
// algorithm, generalized to three dimensions.
//
// The dominant axis is the one with the largest extent, preferring x over y
// and y over z on ties. Every step advances the dominant axis by one and each
// minor axis by at most one, so a raster from p0 to p1 yields exactly
// max(|Δx|, |Δy|, |Δz|)+1 points, the first being p0 and the last being p1.
//
// The set of points doesn't depend on the direction of the segment: a raster
// from p1 to p0 yields the same points in reverse order. Error terms are
// always accumulated along increasing dominant coordinates, and walking in
// the other direction undoes them step by step.
type LineRaster struct {
	cur       [3]int
	step      [3]int
	delta     [3]int
	err       [3]int
	major     int
	reverse   bool
	remaining int
}

// NewLineRaster returns a raster of the segment from p0 to p1.
func NewLineRaster(p0, p1 Point) *LineRaster {
	a, b := p0.array(), p1.array()
	r := &LineRaster{cur: a}
	for i := range 3 {
		r.delta[i] = abs(b[i] - a[i])
		r.step[i] = sign(b[i] - a[i])
	}
	switch dx, dy, dz := r.delta[0], r.delta[1], r.delta[2]; {
	case dx >= dy && dx >= dz:
		r.major = 0
	case dy >= dz:
		r.major = 1
	default:
		r.major = 2
	}
	dM := r.delta[r.major]
	r.remaining = dM + 1
	r.reverse = r.step[r.major] < 0
	for i := range 3 {
		r.err[i] = dM / 2
	}
	return r
}

func (r *LineRaster) HasNext() bool {
	return r.remaining > 0
}

// Next returns the next point of the raster. It panics if the raster is
// exhausted.
func (r *LineRaster) Next() Point {
	if r.remaining == 0 {
		panic("lattice: Next called on exhausted LineRaster")
	}
	pt := pointFromArray(r.cur)
	r.remaining--
	if r.remaining == 0 {
		return pt
	}
	dM := r.delta[r.major]
	r.cur[r.major] += r.step[r.major]
	for i := range 3 {
		if i == r.major {
			continue
		}
		if r.reverse {
			r.err[i] += r.delta[i]
			if r.err[i] >= dM {
				r.cur[i] += r.step[i]
				r.err[i] -= dM
			}
		} else {
			r.err[i] -= r.delta[i]
			if r.err[i] < 0 {
				r.cur[i] += r.step[i]
				r.err[i] += dM
			}
		}
	}
	return pt
}

// Len returns the number of points not yet returned by Next.
func (r *LineRaster) Len() int {
	return r.remaining
}

// LinePoints returns an iterator over the raster of the segment from p0 to p1.
func LinePoints(p0, p1 Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		r := NewLineRaster(p0, p1)
		for r.HasNext() {
			if !yield(r.Next()) {
				return
			}
		}
	}
}

// rowRun returns the x extent of the planar raster of (p0, p1) in row y.
func rowRun(p0, p1 Point, y int) (lo, hi int, ok bool) {
	if y < min(p0.Y, p1.Y) || y > max(p0.Y, p1.Y) {
		return 0, 0, false
	}
	for pt := range LinePoints(p0.XY(), p1.XY()) {
		if pt.Y == y {
			if !ok {
				lo, hi, ok = pt.X, pt.X, true
			} else {
				lo, hi = min(lo, pt.X), max(hi, pt.X)
			}
		} else if ok {
			break
		}
	}
	return lo, hi, ok
}

// columnSpans returns the y extents of the planar raster of (p0, p1) in
// columns x0 through x1. Columns the raster doesn't reach have ok unset.
func columnSpans(p0, p1 Point, x0, x1 int) []span {
	spans := make([]span, x1-x0+1)
	for pt := range LinePoints(p0.XY(), p1.XY()) {
		if pt.X < x0 || pt.X > x1 {
			continue
		}
		s := &spans[pt.X-x0]
		if !s.ok {
			*s = span{pt.Y, pt.Y, true}
		} else {
			s.lo, s.hi = min(s.lo, pt.Y), max(s.hi, pt.Y)
		}
	}
	return spans
}

type span struct {
	lo, hi int
	ok     bool
}

// CirclePerimeter enumerates the lattice points of a circle's perimeter in
// the z = center.Z plane using the midpoint circle algorithm.
//
// Octants are numbered counter-clockwise starting at the positive x axis.
// Octant 0 holds the points from (r, 0) up to the diagonal; the other
// octants mirror it. Points shared by adjacent octants are emitted once.
type CirclePerimeter struct {
	center  Point
	octant0 []Point
	first   int
	count   int
	// index of the current octant relative to first
	o   int
	i   int
	end int
}

// NewCirclePerimeter returns an iterator over octantCount octants of the
// circle, beginning with firstOctant. If skipFirst is set, the first point of
// the first octant is omitted, for callers that already emitted it.
//
// A circle of radius 0 consists of its center.
func NewCirclePerimeter(center Point, radius, firstOctant, octantCount int, skipFirst bool) *CirclePerimeter {
	if radius < 0 {
		panic(fmt.Sprintf("lattice: negative radius %d", radius))
	}
	if firstOctant < 0 || firstOctant > 7 {
		panic(fmt.Sprintf("lattice: octant %d out of range [0, 7]", firstOctant))
	}
	if octantCount < 0 || octantCount > 8 {
		panic(fmt.Sprintf("lattice: octant count %d out of range [0, 8]", octantCount))
	}
	c := &CirclePerimeter{
		center:  center,
		octant0: octantPoints(radius),
		first:   firstOctant,
		count:   octantCount,
	}
	if c.count > 0 {
		c.startOctant(skipFirst)
	}
	return c
}

func (c *CirclePerimeter) startOctant(skip bool) {
	c.i = 0
	c.end = len(c.octant0)
	if skip {
		c.i = 1
	}
	if c.count == 8 && c.o == 7 && c.junctionDuplicate(c.first) {
		// the walk ends where it started
		c.end--
	}
}

// junctionDuplicate reports whether the first point of octant oct equals the
// last point of the octant before it.
func (c *CirclePerimeter) junctionDuplicate(oct int) bool {
	if oct%2 == 0 {
		// Axis junction.
		return true
	}
	last := c.octant0[len(c.octant0)-1]
	return last.X == last.Y
}

func (c *CirclePerimeter) HasNext() bool {
	for c.o < c.count && c.i >= c.end {
		c.o++
		if c.o < c.count {
			c.startOctant(c.junctionDuplicate((c.first + c.o) % 8))
		}
	}
	return c.o < c.count
}

// Next returns the next perimeter point. It panics if the iterator is
// exhausted.
func (c *CirclePerimeter) Next() Point {
	if !c.HasNext() {
		panic("lattice: Next called on exhausted CirclePerimeter")
	}
	oct := (c.first + c.o) % 8
	j := c.i
	if oct%2 == 1 {
		j = len(c.octant0) - 1 - c.i
	}
	c.i++
	off := mapOctant(oct, c.octant0[j])
	return c.center.Translate(Vector{off.X, off.Y, 0})
}

// CirclePoints returns an iterator over the full perimeter of a circle.
func CirclePoints(center Point, radius int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		c := NewCirclePerimeter(center, radius, 0, 8, false)
		for c.HasNext() {
			if !yield(c.Next()) {
				return
			}
		}
	}
}

// mapOctant maps an octant 0 offset into the given octant.
func mapOctant(oct int, p Point) Point {
	x, y := p.X, p.Y
	switch oct {
	case 0:
		return Point{X: x, Y: y}
	case 1:
		return Point{X: y, Y: x}
	case 2:
		return Point{X: -y, Y: x}
	case 3:
		return Point{X: -x, Y: y}
	case 4:
		return Point{X: -x, Y: -y}
	case 5:
		return Point{X: -y, Y: -x}
	case 6:
		return Point{X: y, Y: -x}
	case 7:
		return Point{X: x, Y: -y}
	default:
		panic(fmt.Sprintf("lattice: invalid octant %d", oct))
	}
}

// octantPoints returns the offsets of octant 0 of a circle of radius r,
// ordered by increasing y.
func octantPoints(r int) []Point {
	out := make([]Point, 0, r/2+2)
	x, y, d := r, 0, 1-r
	for y <= x {
		out = append(out, Point{X: x, Y: y})
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return out
}

// quadrantPoints returns the perimeter offsets of a circle of radius r with
// non-negative coordinates. Points may repeat at the diagonal.
func quadrantPoints(r int) []Point {
	oct := octantPoints(r)
	out := make([]Point, 0, 2*len(oct))
	out = append(out, oct...)
	for _, p := range oct {
		out = append(out, Point{X: p.Y, Y: p.X})
	}
	return out
}

// diskContains reports whether the offset (dx, dy) lies within the discrete
// disk of radius r, that is, within the region bounded by the circle's
// perimeter raster.
//
// Reflecting the offset into octant 0 makes a single walk of that octant
// sufficient.
func diskContains(dx, dy, r int) bool {
	if r < 0 {
		return false
	}
	a, b := max(abs(dx), abs(dy)), min(abs(dx), abs(dy))
	x, y, d := r, 0, 1-r
	for y <= x {
		if y == b {
			return a <= x
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return false
}

// diskHalfWidths returns, for every row offset 0 ≤ dy ≤ r, the largest x
// offset that lies within the discrete disk of radius r.
func diskHalfWidths(r int) []int {
	hw := make([]int, r+1)
	for _, p := range octantPoints(r) {
		hw[p.Y] = max(hw[p.Y], p.X)
		hw[p.X] = max(hw[p.X], p.Y)
	}
	return hw
}
