package lattice

import "fmt"

// Box is an axis-aligned rectangular prism. Both corners are inclusive.
//
// A box whose corners coincide is empty: it still contains its single point,
// but it has no outline.
type Box struct {
	Min Point
	Max Point
}

// NewBox returns the box with the extents of p0 and p1, ensuring that
// Min ≤ Max component-wise.
func NewBox(p0, p1 Point) Box {
	return Box{Min: p0.Min(p1), Max: p0.Max(p1)}
}

// NewBoxFromCenter returns the box centered on center whose corners are
// displaced from it by ±half.
func NewBoxFromCenter(center Point, half Vector) Box {
	return NewBox(center.Translate(half.Negate()), center.Translate(half))
}

// SetFromCorners changes the box to have the extents of p0 and p1.
func (b *Box) SetFromCorners(p0, p1 Point) {
	*b = NewBox(p0, p1)
}

// SetFromCenter changes the box to be centered on center, with corner as
// one of its corners.
func (b *Box) SetFromCenter(center, corner Point) {
	*b = NewBoxFromCenter(center, corner.Sub(center))
}

func (Box) Kind() ShapeKind { return BoxKind }
func (Box) isShape()        {}

func (b Box) String() string {
	return fmt.Sprintf("Box[%s, %s]", b.Min, b.Max)
}

// Width returns the extent of the box along x.
func (b Box) Width() int { return b.Max.X - b.Min.X }

// Height returns the extent of the box along y.
func (b Box) Height() int { return b.Max.Y - b.Min.Y }

// Depth returns the extent of the box along z.
func (b Box) Depth() int { return b.Max.Z - b.Min.Z }

// Center returns the center of the box, rounded towards Min.
func (b Box) Center() Point {
	return Point{
		X: b.Min.X + b.Width()/2,
		Y: b.Min.Y + b.Height()/2,
		Z: b.Min.Z + b.Depth()/2,
	}
}

func (b Box) IsEmpty() bool {
	return b.Min == b.Max
}

func (b Box) BoundingBox() Box {
	return b
}

func (b Box) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

func (b Box) ContainsBox(o Box) bool {
	return b.Contains(o.Min) && b.Contains(o.Max)
}

// Overlaps reports whether the two boxes share a point.
func (b Box) Overlaps(o Box) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}

func (b Box) Intersects(o Shape) bool {
	return Intersects(&b, o)
}

func (b Box) IntersectsIterator(it PathIterator) bool {
	return intersectsIterator(boxQuery{b}, b, it)
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	return Box{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// UnionPoint returns the smallest box containing b and pt.
func (b Box) UnionPoint(pt Point) Box {
	return Box{Min: b.Min.Min(pt), Max: b.Max.Max(pt)}
}

// Intersect returns the intersection of two boxes. The second result is
// false if they don't overlap.
func (b Box) Intersect(o Box) (Box, bool) {
	if !b.Overlaps(o) {
		return Box{}, false
	}
	return Box{Min: b.Min.Max(o.Min), Max: b.Max.Min(o.Max)}, true
}

// Inflate returns a box that extends further by the given amounts on each
// side. Negative amounts shrink the box, down to a single point.
func (b Box) Inflate(dx, dy, dz int) Box {
	lo := b.Min.Translate(Vector{-dx, -dy, -dz})
	hi := b.Max.Translate(Vector{dx, dy, dz})
	c := b.Center()
	return Box{
		Min: Point{min(lo.X, c.X), min(lo.Y, c.Y), min(lo.Z, c.Z)},
		Max: Point{max(hi.X, c.X), max(hi.Y, c.Y), max(hi.Z, c.Z)},
	}
}

func (b Box) ClosestPointTo(pt Point) Point {
	return Point{
		X: min(max(pt.X, b.Min.X), b.Max.X),
		Y: min(max(pt.Y, b.Min.Y), b.Max.Y),
		Z: min(max(pt.Z, b.Min.Z), b.Max.Z),
	}
}

func (b Box) FarthestPointTo(pt Point) Point {
	far := func(p, lo, hi int) int {
		if 2*p <= lo+hi {
			return hi
		}
		return lo
	}
	return Point{
		X: far(pt.X, b.Min.X, b.Max.X),
		Y: far(pt.Y, b.Min.Y, b.Max.Y),
		Z: far(pt.Z, b.Min.Z, b.Max.Z),
	}
}

func (b Box) DistanceSquared(pt Point) int {
	return pt.DistanceSquared(b.ClosestPointTo(pt))
}

func (b *Box) Translate(v Vector) {
	b.Min = b.Min.Translate(v)
	b.Max = b.Max.Translate(v)
}

// PathIterator returns the outline of the box's bottom face, in the plane
// z = Min.Z.
func (b Box) PathIterator() PathIterator {
	if b.IsEmpty() {
		return newSliceIterator(NonZero)
	}
	z := b.Min.Z
	p0 := Point{b.Min.X, b.Min.Y, z}
	p1 := Point{b.Max.X, b.Min.Y, z}
	p2 := Point{b.Max.X, b.Max.Y, z}
	p3 := Point{b.Min.X, b.Max.Y, z}
	return newSliceIterator(NonZero,
		MoveTo{p0},
		LineTo{p0, p1},
		LineTo{p1, p2},
		LineTo{p2, p3},
		LineTo{p3, p0},
		Close{p0, p0},
	)
}

func (b Box) Clone() Shape {
	return &b
}
