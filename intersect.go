package lattice

import (
	"fmt"

	"github.com/samber/lo"
)

// Intersects reports whether two shapes share a point. Closed outlines, such
// as those of boxes, spheres, and closed paths, include their interior.
//
// The result doesn't depend on the order of the arguments.
func Intersects(a, b Shape) bool {
	if a.Kind() > b.Kind() {
		a, b = b, a
	}
	if m, ok := b.(*MultiShape); ok {
		return lo.ContainsBy(m.shapes, func(s Shape) bool {
			return Intersects(a, s)
		})
	}
	if p, ok := b.(*Path); ok {
		// Paths are iterated; the other shape is the query.
		return a.IntersectsIterator(p.PathIterator())
	}
	switch a := a.(type) {
	case *Segment:
		switch b := b.(type) {
		case *Segment:
			return a.BoundingBox().Overlaps(b.BoundingBox()) &&
				IntersectsSegmentSegment(a.P1, a.P2, b.P1, b.P2)
		case *Box:
			return IntersectsSegmentBox(a.P1, a.P2, *b)
		case *Sphere:
			return IntersectsSegmentSphere(a.P1, a.P2, b.Center, b.Radius)
		}
	case *Box:
		switch b := b.(type) {
		case *Box:
			return a.Overlaps(*b)
		case *Sphere:
			// Sphere containment is monotonic in the distance from the
			// center along each axis, so the box's point nearest to the
			// center decides.
			return b.Contains(a.ClosestPointTo(b.Center))
		}
	case *Sphere:
		if b, ok := b.(*Sphere); ok {
			return spheresIntersect(a, b)
		}
	}
	panic(fmt.Sprintf("lattice: unhandled shape combination %s and %s", a.Kind(), b.Kind()))
}

// spheresIntersect reports whether two spheres share a lattice point. Rasterized
// perimeters can reach past the ideal radius, so the distance of the centers
// doesn't decide; the rows of the cross-sections in each shared plane do.
func spheresIntersect(a, b *Sphere) bool {
	box, ok := a.BoundingBox().Intersect(b.BoundingBox())
	if !ok {
		return false
	}
	for z := box.Min.Z; z <= box.Max.Z; z++ {
		ra := isqrt(a.Radius*a.Radius - (z-a.Center.Z)*(z-a.Center.Z))
		rb := isqrt(b.Radius*b.Radius - (z-b.Center.Z)*(z-b.Center.Z))
		hwa, hwb := diskHalfWidths(ra), diskHalfWidths(rb)
		for y := box.Min.Y; y <= box.Max.Y; y++ {
			dya, dyb := abs(y-a.Center.Y), abs(y-b.Center.Y)
			if dya > ra || dyb > rb {
				continue
			}
			lo := max(a.Center.X-hwa[dya], b.Center.X-hwb[dyb])
			hi := min(a.Center.X+hwa[dya], b.Center.X+hwb[dyb])
			if lo <= hi {
				return true
			}
		}
	}
	return false
}

// intersectsIterator reports whether the query q, whose bounding box is
// bounds, intersects the outline described by it.
func intersectsIterator(q crossingSource, bounds Box, it PathIterator) bool {
	ib, ok := iteratorBounds(it.Restart())
	if !ok || !bounds.Overlaps(ib) {
		return false
	}
	c := pathCrossings(0, it, q, SimpleIntersectionWhenNotPolygon)
	return Inside(c, it.WindingRule(), q.borders())
}

// iteratorBounds returns the bounding box of the flattened elements of it.
func iteratorBounds(it PathIterator) (Box, bool) {
	var b option[Box]
	for el := range Elements(FlatteningIterator(it)) {
		pt := el.EndPoint()
		if !b.isSet {
			b.set(NewBox(pt, pt))
		} else {
			b.set(b.value.UnionPoint(pt))
		}
	}
	return b.value, b.isSet
}

// ClosestPointToShape returns the point of a nearest to b.
//
// Supported are any a paired with a sphere, boxes paired with boxes, and
// spheres paired with boxes. For a multi-shape a, the member answering
// nearest to b wins. Other combinations return an error wrapping
// [ErrUnsupported].
func ClosestPointToShape(a, b Shape) (Point, error) {
	if m, ok := a.(*MultiShape); ok {
		var best option[Point]
		dist := 0
		for _, s := range m.shapes {
			p, err := ClosestPointToShape(s, b)
			if err != nil {
				return Point{}, err
			}
			if d := b.DistanceSquared(p); !best.isSet || d < dist {
				best.set(p)
				dist = d
			}
		}
		if !best.isSet {
			return Point{}, fmt.Errorf("%w: empty %s", ErrUnsupported, a.Kind())
		}
		return best.value, nil
	}
	switch b := b.(type) {
	case *Sphere:
		// The point nearest to a ball is the point nearest to its center.
		return a.ClosestPointTo(b.Center), nil
	case *Box:
		switch a := a.(type) {
		case *Box:
			near := func(amin, amax, bmin, bmax int) int {
				switch {
				case bmax < amin:
					return amin
				case bmin > amax:
					return amax
				default:
					return max(amin, bmin)
				}
			}
			return Point{
				X: near(a.Min.X, a.Max.X, b.Min.X, b.Max.X),
				Y: near(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y),
				Z: near(a.Min.Z, a.Max.Z, b.Min.Z, b.Max.Z),
			}, nil
		case *Sphere:
			return a.ClosestPointTo(b.ClosestPointTo(a.Center)), nil
		}
	}
	return Point{}, fmt.Errorf("%w: closest point of %s to %s", ErrUnsupported, a.Kind(), b.Kind())
}
