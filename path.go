package lattice

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

const (
	// Growth increments of the element buffers, in elements and in
	// coordinates.
	typesGrowSize  = 16
	coordsGrowSize = 48
)

// Path is a sequence of path elements, stored as a list of element types and
// a flat buffer of coordinates. Each element stores the points listed by
// [PathElementType.Arity]; its start point is the end point of its
// predecessor.
//
// A valid path has a MoveTo at the beginning of each subpath. A LineTo,
// QuadTo, or CurveTo that directly follows a Close continues from the start
// of the closed subpath.
type Path struct {
	types  []PathElementType
	coords []int
	rule   WindingRule
}

// NewPath returns an empty path.
func NewPath(rule WindingRule) *Path {
	return &Path{rule: rule}
}

// NewPathFromIterator returns a path containing the remaining elements of
// it, using its winding rule.
func NewPathFromIterator(it PathIterator) *Path {
	p := NewPath(it.WindingRule())
	p.Add(it)
	return p
}

func (*Path) Kind() ShapeKind { return PathKind }
func (*Path) isShape()        {}

func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString("Path[")
	for i, el := range slices.Collect(p.Elements()) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(el.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func (p *Path) WindingRule() WindingRule { return p.rule }

func (p *Path) SetWindingRule(rule WindingRule) { p.rule = rule }

// Add appends the remaining elements of it to the path.
func (p *Path) Add(it PathIterator) {
	for el := range Elements(it) {
		switch el := el.(type) {
		case MoveTo:
			p.MoveTo(el.To)
		case LineTo:
			p.LineTo(el.To)
		case QuadTo:
			p.QuadTo(el.Ctrl, el.To)
		case CurveTo:
			p.CurveTo(el.Ctrl1, el.Ctrl2, el.To)
		case Close:
			p.ClosePath()
		}
	}
}

func (p *Path) grow(nCoords int) {
	if len(p.types) == cap(p.types) {
		p.types = slices.Grow(p.types, typesGrowSize)
	}
	if len(p.coords)+nCoords > cap(p.coords) {
		p.coords = slices.Grow(p.coords, max(nCoords, coordsGrowSize))
	}
}

func (p *Path) push(typ PathElementType, pts ...Point) {
	p.grow(3 * len(pts))
	p.types = append(p.types, typ)
	for _, pt := range pts {
		p.coords = append(p.coords, pt.X, pt.Y, pt.Z)
	}
}

func (p *Path) requireMoveTo() {
	if len(p.types) == 0 {
		panic("lattice: missing initial MoveTo in path definition")
	}
}

// MoveTo starts a new subpath at pt. If the path already ends in a MoveTo,
// that element is moved instead.
func (p *Path) MoveTo(pt Point) {
	if n := len(p.types); n > 0 && p.types[n-1] == MoveToType {
		copy(p.coords[len(p.coords)-3:], []int{pt.X, pt.Y, pt.Z})
		return
	}
	p.push(MoveToType, pt)
}

// LineTo adds a line from the current point to pt. It panics if the path is
// empty.
func (p *Path) LineTo(pt Point) {
	p.requireMoveTo()
	p.push(LineToType, pt)
}

// QuadTo adds a quadratic Bézier from the current point to pt. It panics if
// the path is empty.
func (p *Path) QuadTo(ctrl, pt Point) {
	p.requireMoveTo()
	p.push(QuadToType, ctrl, pt)
}

// CurveTo adds a cubic Bézier from the current point to pt. It panics if
// the path is empty.
func (p *Path) CurveTo(ctrl1, ctrl2, pt Point) {
	p.requireMoveTo()
	p.push(CurveToType, ctrl1, ctrl2, pt)
}

// ClosePath closes the current subpath. Closing a closed subpath has no
// effect. It panics if the path is empty.
func (p *Path) ClosePath() {
	p.requireMoveTo()
	if p.types[len(p.types)-1] != CloseType {
		p.push(CloseType)
	}
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.types)
}

// Type returns the type of the i-th element.
func (p *Path) Type(i int) PathElementType {
	return p.types[i]
}

// NumPoints returns the number of stored points.
func (p *Path) NumPoints() int {
	return len(p.coords) / 3
}

// PointAt returns the i-th stored point.
func (p *Path) PointAt(i int) Point {
	c := p.coords[3*i : 3*i+3]
	return Point{c[0], c[1], c[2]}
}

// coordIndex returns the offset into coords of the first point of the i-th
// element.
func (p *Path) coordIndex(i int) int {
	ci := 0
	for _, typ := range p.types[:i] {
		ci += 3 * typ.Arity()
	}
	return ci
}

// CurrentPoint returns the end point of the last element. After a Close,
// that is the start of the closed subpath.
func (p *Path) CurrentPoint() (Point, bool) {
	n := len(p.types)
	if n == 0 {
		return Point{}, false
	}
	if p.types[n-1] != CloseType {
		return p.PointAt(p.NumPoints() - 1), true
	}
	ci := len(p.coords)
	for i := n - 1; i >= 0; i-- {
		ci -= 3 * p.types[i].Arity()
		if p.types[i] == MoveToType {
			return Point{p.coords[ci], p.coords[ci+1], p.coords[ci+2]}, true
		}
	}
	panic("lattice: missing initial MoveTo in path definition")
}

// Elements returns an iterator over the path's elements.
func (p *Path) Elements() iter.Seq[PathElement] {
	return Elements(p.PathIterator())
}

// Remove removes the first element that ends at pt and reports whether there
// was one. If that element starts a subpath, the following element takes
// its place.
func (p *Path) Remove(pt Point) bool {
	ci := 0
	for i, typ := range p.types {
		n := 3 * typ.Arity()
		if n > 0 && p.PointAt((ci+n)/3-1) == pt {
			p.removeAt(i, ci)
			return true
		}
		ci += n
	}
	return false
}

func (p *Path) removeAt(i, ci int) {
	typ := p.types[i]
	p.coords = slices.Delete(p.coords, ci, ci+3*typ.Arity())
	p.types = slices.Delete(p.types, i, i+1)
	if typ != MoveToType {
		return
	}
	for i < len(p.types) && p.types[i] == CloseType {
		p.types = slices.Delete(p.types, i, i+1)
	}
	if i < len(p.types) && p.types[i] != MoveToType {
		// Keep only the end point and turn it into a MoveTo.
		n := 3 * p.types[i].Arity()
		p.coords = slices.Delete(p.coords, ci, ci+n-3)
		p.types[i] = MoveToType
	}
}

// RemoveLast removes the last element, if any.
func (p *Path) RemoveLast() {
	n := len(p.types)
	if n == 0 {
		return
	}
	p.coords = p.coords[:len(p.coords)-3*p.types[n-1].Arity()]
	p.types = p.types[:n-1]
}

// SetLastPoint replaces the last stored point. It panics if the path has
// none.
func (p *Path) SetLastPoint(pt Point) {
	if len(p.coords) == 0 {
		panic("lattice: SetLastPoint on empty path")
	}
	copy(p.coords[len(p.coords)-3:], []int{pt.X, pt.Y, pt.Z})
}

// Set replaces the contents of the path with those of o.
func (p *Path) Set(o *Path) {
	p.types = append(p.types[:0], o.types...)
	p.coords = append(p.coords[:0], o.coords...)
	p.rule = o.rule
}

// Clear removes all elements, keeping the allocated buffers.
func (p *Path) Clear() {
	p.types = p.types[:0]
	p.coords = p.coords[:0]
}

func (p *Path) flags() pathFlags {
	return scanTypes(slices.Values(p.types))
}

func (p *Path) IsCurved() bool     { return p.flags().curved }
func (p *Path) IsPolyline() bool   { return p.flags().polyline() }
func (p *Path) IsMultiParts() bool { return p.flags().multiParts() }
func (p *Path) IsPolygon() bool    { return p.flags().polygon() }

// IsEmpty reports whether the path has no drawing elements.
func (p *Path) IsEmpty() bool {
	return p.flags().subpaths == 0
}

// ControlBox returns the bounding box of all stored points, including
// control points. It is cheaper to compute than [Path.BoundingBox] and
// contains it.
func (p *Path) ControlBox() Box {
	if len(p.coords) == 0 {
		return Box{}
	}
	b := NewBox(p.PointAt(0), p.PointAt(0))
	for i := 1; i < p.NumPoints(); i++ {
		b = b.UnionPoint(p.PointAt(i))
	}
	return b
}

// BoundingBox returns the bounding box of the flattened path.
func (p *Path) BoundingBox() Box {
	var b option[Box]
	for el := range Elements(p.FlatteningIterator()) {
		pt := el.EndPoint()
		if !b.isSet {
			b.set(NewBox(pt, pt))
		} else {
			b.set(b.value.UnionPoint(pt))
		}
	}
	return b.value
}

// Transform applies t to every stored point.
func (p *Path) Transform(t Transform) {
	for i := range p.NumPoints() {
		pt := p.PointAt(i).Transform(t)
		copy(p.coords[3*i:], []int{pt.X, pt.Y, pt.Z})
	}
}

func (p *Path) Translate(v Vector) {
	for i := 0; i < len(p.coords); i += 3 {
		p.coords[i] += v.X
		p.coords[i+1] += v.Y
		p.coords[i+2] += v.Z
	}
}

// PathIterator returns an iterator over the path's elements.
func (p *Path) PathIterator() PathIterator {
	return &pathIterator{path: p, flags: p.flags()}
}

// PathIteratorTransformed returns an iterator over the path's elements with
// t applied to them. The path itself is left unchanged.
func (p *Path) PathIteratorTransformed(t Transform) PathIterator {
	return TransformedIterator(p.PathIterator(), t)
}

// FlatteningIterator returns an iterator over the path's elements with
// curves replaced by lines.
func (p *Path) FlatteningIterator(opts ...FlattenOption) PathIterator {
	return FlatteningIterator(p.PathIterator(), opts...)
}

// Length returns the euclidean length of the flattened path.
func (p *Path) Length() float64 {
	var l float64
	for el := range Elements(p.FlatteningIterator()) {
		switch el := el.(type) {
		case LineTo:
			l += el.From.Distance(el.To)
		case Close:
			l += el.From.Distance(el.To)
		}
	}
	return l
}

// rasterPoints returns an iterator over the lattice points of the flattened
// path's outline. Open subpaths are not closed.
func (p *Path) rasterPoints() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for el := range Elements(p.FlatteningIterator()) {
			var from, to Point
			switch el := el.(type) {
			case MoveTo:
				if !yield(el.To) {
					return
				}
				continue
			case LineTo:
				from, to = el.From, el.To
			case Close:
				from, to = el.From, el.To
			default:
				panic(fmt.Sprintf("lattice: unexpected %s in flattened path", el.Type()))
			}
			for pt := range LinePoints(from, to) {
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// Contains reports whether pt is inside the path or on its outline. Open
// subpaths are treated as if they were closed.
//
// [Intersects] doesn't close open subpaths: there, an open subpath is only
// its outline. A point enclosed by an open subpath is contained in the path,
// but a shape at that point doesn't intersect it.
func (p *Path) Contains(pt Point) bool {
	if p.IsEmpty() || !p.BoundingBox().Contains(pt) {
		return false
	}
	c := PathCrossingsFromPoint(0, p.PathIterator(), pt, AutoClose)
	return Inside(c, p.rule, 1)
}

// ContainsBox reports whether b lies inside the path without touching its
// outline.
func (p *Path) ContainsBox(b Box) bool {
	if p.IsEmpty() || !p.BoundingBox().ContainsBox(b) {
		return false
	}
	c := PathCrossingsFromBox(0, p.PathIterator(), b, AutoClose)
	return c != ShapeIntersects && c&Mask(p.rule, 2) != 0
}

func (p *Path) Intersects(o Shape) bool {
	return Intersects(p, o)
}

func (p *Path) IntersectsIterator(it PathIterator) bool {
	if p.IsEmpty() {
		return false
	}
	return intersectsIterator(NewPathShadow(p), p.BoundingBox(), it)
}

// ClosestPointTo returns pt if it is inside the path. Otherwise, it returns
// the point of the outline's raster nearest to pt. An empty path returns pt.
func (p *Path) ClosestPointTo(pt Point) Point {
	if p.Contains(pt) {
		return pt
	}
	best := bestPoint{target: pt, better: closer}
	for q := range p.rasterPoints() {
		best.offer(q)
	}
	if !best.point.isSet {
		return pt
	}
	return best.point.value
}

// FarthestPointTo returns the point of the outline's raster farthest from
// pt. An empty path returns pt.
func (p *Path) FarthestPointTo(pt Point) Point {
	best := bestPoint{target: pt, better: farther}
	for q := range p.rasterPoints() {
		best.offer(q)
	}
	if !best.point.isSet {
		return pt
	}
	return best.point.value
}

func (p *Path) DistanceSquared(pt Point) int {
	return pt.DistanceSquared(p.ClosestPointTo(pt))
}

func (p *Path) Clone() Shape {
	c := &Path{}
	c.Set(p)
	return c
}
