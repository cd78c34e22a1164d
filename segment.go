package lattice

import "fmt"

// Segment is a line segment between two lattice points. Its points are the
// points of its raster, see [LineRaster].
type Segment struct {
	P1 Point
	P2 Point
}

func NewSegment(p1, p2 Point) *Segment {
	return &Segment{P1: p1, P2: p2}
}

func (s *Segment) Set(p1, p2 Point) {
	s.P1 = p1
	s.P2 = p2
}

func (*Segment) Kind() ShapeKind { return SegmentKind }
func (*Segment) isShape()        {}

func (s *Segment) String() string {
	return fmt.Sprintf("Segment[%s, %s]", s.P1, s.P2)
}

// IsEmpty reports whether the segment is degenerate. A degenerate segment
// still contains its single point.
func (s *Segment) IsEmpty() bool {
	return s.P1 == s.P2
}

func (s *Segment) BoundingBox() Box {
	return NewBox(s.P1, s.P2)
}

// Length returns the euclidean length of the segment.
func (s *Segment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// LengthSquared returns the squared euclidean length of the segment.
func (s *Segment) LengthSquared() int {
	return s.P1.DistanceSquared(s.P2)
}

// Side returns the side of the segment's supporting line, in the xy plane,
// that pt lies on: 1 for the left, −1 for the right, and 0 if it is on the
// line.
func (s *Segment) Side(pt Point) int {
	d := s.P2.Sub(s.P1)
	o := pt.Sub(s.P1)
	return sign(d.X*o.Y - d.Y*o.X)
}

// Contains reports whether pt is a point of the segment's raster. Most points
// of the ideal line between the end points are not.
func (s *Segment) Contains(pt Point) bool {
	if !s.BoundingBox().Contains(pt) {
		return false
	}
	for p := range LinePoints(s.P1, s.P2) {
		if p == pt {
			return true
		}
	}
	return false
}

// ContainsBox reports whether every point of b is a point of the segment.
func (s *Segment) ContainsBox(b Box) bool {
	if !s.BoundingBox().ContainsBox(b) {
		return false
	}
	n := (b.Width() + 1) * (b.Height() + 1) * (b.Depth() + 1)
	if n > NewLineRaster(s.P1, s.P2).Len() {
		return false
	}
	found := 0
	for p := range LinePoints(s.P1, s.P2) {
		if b.Contains(p) {
			found++
		}
	}
	return found == n
}

func (s *Segment) Intersects(o Shape) bool {
	return Intersects(s, o)
}

func (s *Segment) IntersectsIterator(it PathIterator) bool {
	return intersectsIterator(segmentQuery{s.P1, s.P2}, s.BoundingBox(), it)
}

// ClosestPointTo returns the point of the raster nearest to pt. Rasters
// aren't monotonic with respect to distance from a point, so the whole
// raster is scanned.
func (s *Segment) ClosestPointTo(pt Point) Point {
	best := bestPoint{target: pt, better: closer}
	for p := range LinePoints(s.P1, s.P2) {
		best.offer(p)
	}
	return best.point.unwrap()
}

// FarthestPointTo returns the point of the raster farthest from pt.
func (s *Segment) FarthestPointTo(pt Point) Point {
	best := bestPoint{target: pt, better: farther}
	for p := range LinePoints(s.P1, s.P2) {
		best.offer(p)
	}
	return best.point.unwrap()
}

func (s *Segment) DistanceSquared(pt Point) int {
	return pt.DistanceSquared(s.ClosestPointTo(pt))
}

// DistanceToLine returns the distance between pt and the ideal segment
// between the end points.
func (s *Segment) DistanceToLine(pt Point) float64 {
	return distanceToChord(pt.r3(), s.P1.r3(), s.P2.r3())
}

func (s *Segment) Translate(v Vector) {
	s.P1 = s.P1.Translate(v)
	s.P2 = s.P2.Translate(v)
}

func (s *Segment) PathIterator() PathIterator {
	return newSliceIterator(NonZero, MoveTo{s.P1}, LineTo{s.P1, s.P2})
}

func (s *Segment) Clone() Shape {
	c := *s
	return &c
}
