package lattice

import "fmt"

// CrossingComputationType decides how subpaths that don't end where they
// started contribute to a path's crossing count.
type CrossingComputationType int

const (
	// Standard counts the edges of open subpaths as they are.
	Standard CrossingComputationType = iota
	// AutoClose adds the edge from the end of an open subpath back to its
	// start, as if the subpath had been closed.
	AutoClose
	// SimpleIntersectionWhenNotPolygon discards the crossings of open
	// subpaths. They can still yield [ShapeIntersects].
	SimpleIntersectionWhenNotPolygon
)

func (typ CrossingComputationType) String() string {
	switch typ {
	case Standard:
		return "Standard"
	case AutoClose:
		return "AutoClose"
	case SimpleIntersectionWhenNotPolygon:
		return "SimpleIntersectionWhenNotPolygon"
	default:
		return fmt.Sprintf("CrossingComputationType(%d)", int(typ))
	}
}

// crossingSource is the query side of a crossing computation.
type crossingSource interface {
	// crossings adds the contribution of the edge (s0, s1) to c.
	crossings(c int, s0, s1 Point) int
	// borders returns the number of rays the query casts.
	borders() int
}

type pointQuery struct{ p Point }

func (q pointQuery) crossings(c int, s0, s1 Point) int { return CrossingsFromPoint(c, q.p, s0, s1) }
func (pointQuery) borders() int                        { return 1 }

type segmentQuery struct{ p0, p1 Point }

func (q segmentQuery) crossings(c int, s0, s1 Point) int {
	return CrossingsFromSegment(c, q.p0, q.p1, s0, s1)
}
func (segmentQuery) borders() int { return 2 }

type boxQuery struct{ b Box }

func (q boxQuery) crossings(c int, s0, s1 Point) int { return CrossingsFromBox(c, q.b, s0, s1) }
func (boxQuery) borders() int                        { return 2 }

type sphereQuery struct {
	center Point
	radius int
}

func (q sphereQuery) crossings(c int, s0, s1 Point) int {
	return CrossingsFromSphere(c, q.center, q.radius, s0, s1)
}
func (sphereQuery) borders() int { return 2 }

// PathCrossingsFromPoint adds to c the crossing count of a ray cast from p
// against the path elements of it.
func PathCrossingsFromPoint(c int, it PathIterator, p Point, typ CrossingComputationType) int {
	return pathCrossings(c, it, pointQuery{p}, typ)
}

// PathCrossingsFromSegment adds to c the crossing count of the shadow of
// the segment (p0, p1) against the path elements of it.
func PathCrossingsFromSegment(c int, it PathIterator, p0, p1 Point, typ CrossingComputationType) int {
	return pathCrossings(c, it, segmentQuery{p0, p1}, typ)
}

// PathCrossingsFromBox adds to c the crossing count of the shadow of b
// against the path elements of it.
func PathCrossingsFromBox(c int, it PathIterator, b Box, typ CrossingComputationType) int {
	return pathCrossings(c, it, boxQuery{b}, typ)
}

// PathCrossingsFromSphere adds to c the crossing count of the shadow of the
// sphere's equatorial disk against the path elements of it.
func PathCrossingsFromSphere(c int, it PathIterator, center Point, radius int, typ CrossingComputationType) int {
	return pathCrossings(c, it, sphereQuery{center, radius}, typ)
}

// PathCrossingsFromShadow adds to c the crossing count of a path's shadow
// against the path elements of it.
func PathCrossingsFromShadow(c int, it PathIterator, shadow *PathShadow, typ CrossingComputationType) int {
	return pathCrossings(c, it, shadow, typ)
}

// pathCrossings accumulates the contributions of every edge of it. Curves are
// flattened on the fly. The computation stops as soon as the count becomes
// ShapeIntersects.
func pathCrossings(c int, it PathIterator, q crossingSource, typ CrossingComputationType) int {
	if c == ShapeIntersects || !it.HasNext() {
		return c
	}
	m, ok := it.Next().(MoveTo)
	if !ok {
		panic("lattice: missing initial MoveTo in path definition")
	}
	opts := defaultFlattenOptions()
	start, cur := m.To, m.To
	// crossings at the start of the current subpath
	subpath := c
	for it.HasNext() {
		switch el := it.Next().(type) {
		case MoveTo:
			c = finishSubpath(c, subpath, cur, start, q, typ)
			start, cur, subpath = el.To, el.To, c
		case LineTo:
			c = q.crossings(c, cur, el.To)
			cur = el.To
		case QuadTo, CurveTo:
			for p := range curvePoints(el, opts) {
				c = q.crossings(c, cur, p)
				cur = p
				if c == ShapeIntersects {
					return c
				}
			}
			cur = el.EndPoint()
		case Close:
			if cur != start {
				c = q.crossings(c, cur, start)
			}
			cur = start
		}
		if c == ShapeIntersects {
			return c
		}
	}
	return finishSubpath(c, subpath, cur, start, q, typ)
}

func finishSubpath(c, subpath int, cur, start Point, q crossingSource, typ CrossingComputationType) int {
	if c == ShapeIntersects || cur == start {
		return c
	}
	switch typ {
	case AutoClose:
		return q.crossings(c, cur, start)
	case SimpleIntersectionWhenNotPolygon:
		return subpath
	default:
		return c
	}
}
