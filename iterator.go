package lattice

import (
	"fmt"
	"iter"
)

// WindingRule decides which points are inside a path from their crossing
// count.
type WindingRule int

const (
	// NonZero treats points with a non-zero signed crossing count as inside.
	NonZero WindingRule = iota
	// EvenOdd treats points with an odd crossing count as inside.
	EvenOdd
)

func (w WindingRule) String() string {
	switch w {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return fmt.Sprintf("WindingRule(%d)", int(w))
	}
}

// PathIterator is a single-pass sequence of path elements.
//
// Restart returns a new iterator over the same source, positioned at the
// beginning. The new iterator shares no state with the old one, so both can
// be advanced independently. A source must not be modified while an iterator
// over it is in use.
type PathIterator interface {
	HasNext() bool
	// Next returns the next element. It panics if the iterator is exhausted.
	Next() PathElement
	Restart() PathIterator
	WindingRule() WindingRule

	// IsPolyline reports whether the elements form a single open subpath of
	// lines.
	IsPolyline() bool
	// IsCurved reports whether any element is a quadratic or cubic Bézier.
	IsCurved() bool
	// IsMultiParts reports whether there is more than one subpath.
	IsMultiParts() bool
	// IsPolygon reports whether every subpath is closed and made of lines.
	IsPolygon() bool
}

// Elements returns a Go iterator over the remaining elements of it.
func Elements(it PathIterator) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

type pathFlags struct {
	curved   bool
	hasClose bool
	// every subpath ends with a Close
	closed   bool
	subpaths int
}

func (f pathFlags) polyline() bool   { return !f.curved && !f.hasClose && f.subpaths == 1 }
func (f pathFlags) polygon() bool    { return f.subpaths > 0 && f.closed && !f.curved }
func (f pathFlags) multiParts() bool { return f.subpaths > 1 }

// scanTypes computes the flags of a sequence of element types. Subpaths
// without drawing elements don't count.
func scanTypes(types iter.Seq[PathElementType]) pathFlags {
	f := pathFlags{closed: true}
	drawn, open := false, false
	finish := func() {
		if drawn {
			f.subpaths++
			if open {
				f.closed = false
			}
		}
	}
	for typ := range types {
		switch typ {
		case MoveToType:
			finish()
			drawn, open = false, false
		case LineToType:
			drawn, open = true, true
		case QuadToType, CurveToType:
			f.curved = true
			drawn, open = true, true
		case CloseType:
			f.hasClose = true
			drawn, open = true, false
		}
	}
	finish()
	return f
}

func elementTypes(els []PathElement) iter.Seq[PathElementType] {
	return func(yield func(PathElementType) bool) {
		for _, el := range els {
			if !yield(el.Type()) {
				return
			}
		}
	}
}

func iteratorTypes(it PathIterator) iter.Seq[PathElementType] {
	return func(yield func(PathElementType) bool) {
		for el := range Elements(it) {
			if !yield(el.Type()) {
				return
			}
		}
	}
}

// pathIterator walks the buffer of a [Path].
type pathIterator struct {
	path  *Path
	flags pathFlags
	// index into types
	i int
	// index into coords
	ci    int
	prev  Point
	start Point
}

var _ PathIterator = (*pathIterator)(nil)

func (it *pathIterator) HasNext() bool {
	return it.i < len(it.path.types)
}

func (it *pathIterator) point() Point {
	c := it.path.coords[it.ci : it.ci+3]
	it.ci += 3
	return Point{c[0], c[1], c[2]}
}

func (it *pathIterator) Next() PathElement {
	if !it.HasNext() {
		panic("lattice: Next called on exhausted PathIterator")
	}
	typ := it.path.types[it.i]
	it.i++
	var el PathElement
	switch typ {
	case MoveToType:
		p := it.point()
		el = MoveTo{p}
		it.start = p
	case LineToType:
		el = LineTo{it.prev, it.point()}
	case QuadToType:
		c := it.point()
		el = QuadTo{it.prev, c, it.point()}
	case CurveToType:
		c1 := it.point()
		c2 := it.point()
		el = CurveTo{it.prev, c1, c2, it.point()}
	case CloseType:
		el = Close{it.prev, it.start}
	default:
		panic(fmt.Sprintf("lattice: invalid path element type %d", int(typ)))
	}
	it.prev = el.EndPoint()
	return el
}

func (it *pathIterator) Restart() PathIterator {
	return &pathIterator{path: it.path, flags: it.flags}
}

func (it *pathIterator) WindingRule() WindingRule { return it.path.rule }
func (it *pathIterator) IsPolyline() bool         { return it.flags.polyline() }
func (it *pathIterator) IsCurved() bool           { return it.flags.curved }
func (it *pathIterator) IsMultiParts() bool       { return it.flags.multiParts() }
func (it *pathIterator) IsPolygon() bool          { return it.flags.polygon() }

// sliceIterator replays a fixed sequence of elements. Shapes with a small,
// synthesized outline use it.
type sliceIterator struct {
	els   []PathElement
	rule  WindingRule
	flags pathFlags
	i     int
}

var _ PathIterator = (*sliceIterator)(nil)

func newSliceIterator(rule WindingRule, els ...PathElement) *sliceIterator {
	return &sliceIterator{
		els:   els,
		rule:  rule,
		flags: scanTypes(elementTypes(els)),
	}
}

func (it *sliceIterator) HasNext() bool {
	return it.i < len(it.els)
}

func (it *sliceIterator) Next() PathElement {
	if !it.HasNext() {
		panic("lattice: Next called on exhausted PathIterator")
	}
	el := it.els[it.i]
	it.i++
	return el
}

func (it *sliceIterator) Restart() PathIterator {
	return &sliceIterator{els: it.els, rule: it.rule, flags: it.flags}
}

func (it *sliceIterator) WindingRule() WindingRule { return it.rule }
func (it *sliceIterator) IsPolyline() bool         { return it.flags.polyline() }
func (it *sliceIterator) IsCurved() bool           { return it.flags.curved }
func (it *sliceIterator) IsMultiParts() bool       { return it.flags.multiParts() }
func (it *sliceIterator) IsPolygon() bool          { return it.flags.polygon() }

// TransformedIterator returns an iterator that applies t to every element
// of src.
func TransformedIterator(src PathIterator, t Transform) PathIterator {
	if t == nil || t.IsIdentity() {
		return src
	}
	return &transformedIterator{src: src, t: t}
}

type transformedIterator struct {
	src PathIterator
	t   Transform
}

func (it *transformedIterator) HasNext() bool { return it.src.HasNext() }

func (it *transformedIterator) Next() PathElement {
	return it.src.Next().Transform(it.t)
}

func (it *transformedIterator) Restart() PathIterator {
	return &transformedIterator{src: it.src.Restart(), t: it.t}
}

func (it *transformedIterator) WindingRule() WindingRule { return it.src.WindingRule() }
func (it *transformedIterator) IsPolyline() bool         { return it.src.IsPolyline() }
func (it *transformedIterator) IsCurved() bool           { return it.src.IsCurved() }
func (it *transformedIterator) IsMultiParts() bool       { return it.src.IsMultiParts() }
func (it *transformedIterator) IsPolygon() bool          { return it.src.IsPolygon() }

// multiIterator concatenates the outlines of a list of shapes.
type multiIterator struct {
	shapes []Shape
	i      int
	cur    PathIterator
}

func newMultiIterator(shapes []Shape) *multiIterator {
	return &multiIterator{shapes: shapes}
}

func (it *multiIterator) HasNext() bool {
	for it.cur == nil || !it.cur.HasNext() {
		if it.i >= len(it.shapes) {
			return false
		}
		it.cur = it.shapes[it.i].PathIterator()
		it.i++
	}
	return true
}

func (it *multiIterator) Next() PathElement {
	if !it.HasNext() {
		panic("lattice: Next called on exhausted PathIterator")
	}
	return it.cur.Next()
}

func (it *multiIterator) Restart() PathIterator {
	return newMultiIterator(it.shapes)
}

func (it *multiIterator) WindingRule() WindingRule { return NonZero }

func (it *multiIterator) IsCurved() bool {
	for _, s := range it.shapes {
		if s.PathIterator().IsCurved() {
			return true
		}
	}
	return false
}

func (it *multiIterator) IsPolygon() bool {
	if len(it.shapes) == 0 {
		return false
	}
	for _, s := range it.shapes {
		if !s.PathIterator().IsPolygon() {
			return false
		}
	}
	return true
}

// IsPolyline reports whether the only member is a polyline. Two or more
// members make for more than one subpath.
func (it *multiIterator) IsPolyline() bool {
	return len(it.shapes) == 1 && it.shapes[0].PathIterator().IsPolyline()
}

func (it *multiIterator) IsMultiParts() bool {
	switch len(it.shapes) {
	case 0:
		return false
	case 1:
		return it.shapes[0].PathIterator().IsMultiParts()
	default:
		return true
	}
}
