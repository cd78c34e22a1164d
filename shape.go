package lattice

import "fmt"

type ShapeKind int

const (
	SegmentKind ShapeKind = iota + 1
	BoxKind
	SphereKind
	PathKind
	MultiShapeKind
)

func (k ShapeKind) String() string {
	switch k {
	case SegmentKind:
		return "Segment"
	case BoxKind:
		return "Box"
	case SphereKind:
		return "Sphere"
	case PathKind:
		return "Path"
	case MultiShapeKind:
		return "MultiShape"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape describes geometric shapes on the integer lattice.
//
// The set of implementations is closed: [*Segment], [*Box], [*Sphere],
// [*Path], and [*MultiShape].
type Shape interface {
	Kind() ShapeKind
	// BoundingBox returns the smallest box containing the shape.
	BoundingBox() Box
	IsEmpty() bool

	Contains(p Point) bool
	// ContainsBox reports whether every point of b is inside the shape.
	ContainsBox(b Box) bool
	// Intersects reports whether the shape and o share a point. It is
	// equivalent to calling [Intersects].
	Intersects(o Shape) bool
	// IntersectsIterator reports whether the shape and the outline
	// described by it share a point. Closed outlines count their interior.
	IntersectsIterator(it PathIterator) bool

	// ClosestPointTo returns the point of the shape nearest to p. Points
	// inside the shape are their own closest point.
	ClosestPointTo(p Point) Point
	// FarthestPointTo returns the point of the shape farthest from p.
	FarthestPointTo(p Point) Point
	// DistanceSquared returns the squared distance between p and the
	// shape.
	DistanceSquared(p Point) int

	// Translate moves the shape in place.
	Translate(v Vector)
	// PathIterator returns an iterator over the outline of the shape.
	PathIterator() PathIterator
	// Clone returns a deep copy of the shape.
	Clone() Shape

	isShape()
}

var (
	_ Shape = (*Segment)(nil)
	_ Shape = (*Box)(nil)
	_ Shape = (*Sphere)(nil)
	_ Shape = (*Path)(nil)
	_ Shape = (*MultiShape)(nil)
)

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}

// bestPoint keeps the best candidate seen so far.
type bestPoint struct {
	target Point
	better func(p, a, b Point) bool
	point  option[Point]
}

func (b *bestPoint) offer(p Point) {
	if !b.point.isSet || b.better(b.target, p, b.point.value) {
		b.point.set(p)
	}
}
