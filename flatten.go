package lattice

import (
	"iter"
	"log/slog"
)

// FlatteningIterator returns an iterator over src that replaces quadratic and
// cubic Béziers with lines.
//
// Each curve is bisected until its control points lie within the configured
// flatness of the chord, or until the recursion limit is reached. Points are
// rounded to the lattice, and lines that would repeat the previous point are
// dropped. The result contains only MoveTo, LineTo, and Close elements.
func FlatteningIterator(src PathIterator, opts ...FlattenOption) PathIterator {
	flags := scanTypes(iteratorTypes(src.Restart()))
	flags.curved = false
	return &flatteningIterator{
		src:   src,
		opts:  newFlattenOptions(opts),
		flags: flags,
	}
}

type flatteningIterator struct {
	src     PathIterator
	opts    flattenOptions
	flags   pathFlags
	pending []PathElement
	head    int
	// last emitted point
	last Point
}

func (it *flatteningIterator) fill() {
	for it.head == len(it.pending) && it.src.HasNext() {
		it.pending = it.pending[:0]
		it.head = 0
		switch el := it.src.Next().(type) {
		case MoveTo:
			it.pending = append(it.pending, el)
			it.last = el.To
		case LineTo:
			if el.To != it.last {
				it.pending = append(it.pending, LineTo{it.last, el.To})
				it.last = el.To
			}
		case QuadTo, CurveTo:
			for p := range curvePoints(el, it.opts) {
				if p != it.last {
					it.pending = append(it.pending, LineTo{it.last, p})
					it.last = p
				}
			}
		case Close:
			it.pending = append(it.pending, el)
			it.last = el.To
		}
	}
}

func (it *flatteningIterator) HasNext() bool {
	it.fill()
	return it.head < len(it.pending)
}

func (it *flatteningIterator) Next() PathElement {
	if !it.HasNext() {
		panic("lattice: Next called on exhausted PathIterator")
	}
	el := it.pending[it.head]
	it.head++
	return el
}

func (it *flatteningIterator) Restart() PathIterator {
	return &flatteningIterator{
		src:   it.src.Restart(),
		opts:  it.opts,
		flags: it.flags,
	}
}

func (it *flatteningIterator) WindingRule() WindingRule { return it.src.WindingRule() }
func (it *flatteningIterator) IsPolyline() bool         { return it.flags.polyline() }
func (it *flatteningIterator) IsCurved() bool           { return false }
func (it *flatteningIterator) IsMultiParts() bool       { return it.flags.multiParts() }
func (it *flatteningIterator) IsPolygon() bool          { return it.flags.polygon() }

// curvePoints returns the lattice points of the flattened curve el, excluding
// its start point. The last point is always el's end point.
func curvePoints(el PathElement, o flattenOptions) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		type frame struct {
			b     bezier
			depth int
		}
		b := curveOf(el)
		last := roundPoint(b.start())
		tol := o.flatness * o.flatness
		stack := []frame{{b, 0}}
		limited := false
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			flat := f.b.flatnessSquared() <= tol
			if flat || f.depth >= o.limit {
				if !flat {
					limited = true
				}
				p := roundPoint(f.b.end())
				if p == last {
					continue
				}
				last = p
				if !yield(p) {
					return
				}
				continue
			}
			l, r := f.b.subdivide()
			stack = append(stack, frame{r, f.depth + 1}, frame{l, f.depth + 1})
		}
		if limited {
			Logger().Debug("curve flattening reached recursion limit",
				slog.String("curve", el.String()),
				slog.Int("limit", o.limit))
		}
	}
}
