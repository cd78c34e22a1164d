package lattice

import (
	"fmt"
	"math"
)

// circleControlRatio is the distance of the control points of a cubic
// Bézier approximating a quarter circle, relative to the radius.
const circleControlRatio = 0.5522847498307933

// Sphere is the set of lattice points whose cross-section in their z plane
// is a discrete disk of radius ⌊√(r²−dz²)⌋ around the center.
type Sphere struct {
	Center Point
	Radius int
}

// NewSphere returns a sphere. It panics if radius is negative.
func NewSphere(center Point, radius int) *Sphere {
	s := &Sphere{}
	s.Set(center, radius)
	return s
}

// Set changes the center and radius of the sphere. It panics if radius is
// negative.
func (s *Sphere) Set(center Point, radius int) {
	if radius < 0 {
		panic(fmt.Sprintf("lattice: negative radius %d", radius))
	}
	s.Center = center
	s.Radius = radius
}

func (*Sphere) Kind() ShapeKind { return SphereKind }
func (*Sphere) isShape()        {}

func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere[%s, %d]", s.Center, s.Radius)
}

// IsEmpty reports whether the radius is zero.
func (s *Sphere) IsEmpty() bool {
	return s.Radius <= 0
}

func (s *Sphere) BoundingBox() Box {
	return sphereBounds(s.Center, s.Radius)
}

func sphereBounds(center Point, radius int) Box {
	r := Vector{radius, radius, radius}
	return Box{Min: center.Translate(r.Negate()), Max: center.Translate(r)}
}

func (s *Sphere) Contains(pt Point) bool {
	return sphereContains(s.Center, s.Radius, pt)
}

func sphereContains(center Point, radius int, pt Point) bool {
	if radius < 0 {
		return false
	}
	d := pt.Sub(center)
	if abs(d.Z) > radius {
		return false
	}
	return diskContains(d.X, d.Y, isqrt(radius*radius-d.Z*d.Z))
}

// ContainsBox reports whether the sphere contains every point of b.
// Containment only gets harder with increasing distance from the center
// along any axis, so it suffices to test the corner farthest from it.
func (s *Sphere) ContainsBox(b Box) bool {
	return s.Contains(b.FarthestPointTo(s.Center))
}

func (s *Sphere) Intersects(o Shape) bool {
	return Intersects(s, o)
}

func (s *Sphere) IntersectsIterator(it PathIterator) bool {
	return intersectsIterator(sphereQuery{s.Center, s.Radius}, s.BoundingBox(), it)
}

// ClosestPointTo returns pt if it is inside the sphere. Otherwise, it finds
// the point nearest to pt in every z plane the sphere spans and returns the
// nearest of those.
//
// Within a plane, the projection of pt is its own closest point if the
// cross-section contains it. If not, the closest point lies on the
// cross-section's perimeter.
func (s *Sphere) ClosestPointTo(pt Point) Point {
	if s.Contains(pt) {
		return pt
	}
	d := pt.Sub(s.Center)
	// Reflect into the first quadrant.
	target := Point{X: abs(d.X), Y: abs(d.Y)}
	best := bestPoint{target: pt, better: closer}
	for dz := -s.Radius; dz <= s.Radius; dz++ {
		rr := isqrt(s.Radius*s.Radius - dz*dz)
		if diskContains(d.X, d.Y, rr) {
			best.offer(s.Center.Translate(Vector{d.X, d.Y, dz}))
			continue
		}
		ring := bestPoint{target: target, better: closer}
		for _, q := range quadrantPoints(rr) {
			ring.offer(q)
		}
		q := ring.point.unwrap()
		best.offer(s.Center.Translate(Vector{signOr1(d.X) * q.X, signOr1(d.Y) * q.Y, dz}))
	}
	return best.point.unwrap()
}

// FarthestPointTo returns the point of the sphere farthest from pt. Every z
// plane contributes the point of its cross-section's perimeter farthest from
// pt, found on the opposite side of the center.
func (s *Sphere) FarthestPointTo(pt Point) Point {
	d := pt.Sub(s.Center)
	target := Point{X: -abs(d.X), Y: -abs(d.Y)}
	best := bestPoint{target: pt, better: farther}
	for dz := -s.Radius; dz <= s.Radius; dz++ {
		rr := isqrt(s.Radius*s.Radius - dz*dz)
		ring := bestPoint{target: target, better: farther}
		for _, q := range quadrantPoints(rr) {
			ring.offer(q)
		}
		q := ring.point.unwrap()
		best.offer(s.Center.Translate(Vector{-signOr1(d.X) * q.X, -signOr1(d.Y) * q.Y, dz}))
	}
	return best.point.unwrap()
}

func signOr1(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}

func (s *Sphere) DistanceSquared(pt Point) int {
	return pt.DistanceSquared(s.ClosestPointTo(pt))
}

func (s *Sphere) Translate(v Vector) {
	s.Center = s.Center.Translate(v)
}

// PathIterator returns the outline of the sphere's equator, approximated
// by four cubic Béziers.
func (s *Sphere) PathIterator() PathIterator {
	if s.IsEmpty() {
		return newSliceIterator(NonZero)
	}
	c, r := s.Center, s.Radius
	k := int(math.Round(float64(r) * circleControlRatio))
	at := func(dx, dy int) Point {
		return Point{c.X + dx, c.Y + dy, c.Z}
	}
	return newSliceIterator(NonZero,
		MoveTo{at(r, 0)},
		CurveTo{at(r, 0), at(r, k), at(k, r), at(0, r)},
		CurveTo{at(0, r), at(-k, r), at(-r, k), at(-r, 0)},
		CurveTo{at(-r, 0), at(-r, -k), at(-k, -r), at(0, -r)},
		CurveTo{at(0, -r), at(k, -r), at(r, -k), at(r, 0)},
		Close{at(r, 0), at(r, 0)},
	)
}

func (s *Sphere) Clone() Shape {
	c := *s
	return &c
}
