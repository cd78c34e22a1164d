package lattice

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// MultiShape is an ordered collection of shapes. Members are referenced, not
// copied: moving a member moves it within the collection too.
//
// The bounding box is recomputed from the members whenever it is needed, so
// it always reflects their current geometry.
type MultiShape struct {
	shapes []Shape
}

func NewMultiShape(shapes ...Shape) *MultiShape {
	m := &MultiShape{}
	for _, s := range shapes {
		m.Add(s)
	}
	return m
}

func (*MultiShape) Kind() ShapeKind { return MultiShapeKind }
func (*MultiShape) isShape()        {}

func (m *MultiShape) String() string {
	names := lo.Map(m.shapes, func(s Shape, _ int) string {
		return fmt.Sprint(s)
	})
	return "MultiShape[" + strings.Join(names, ", ") + "]"
}

// Add appends s. It panics if s is m itself.
func (m *MultiShape) Add(s Shape) {
	if s == Shape(m) {
		panic("lattice: MultiShape cannot contain itself")
	}
	m.shapes = append(m.shapes, s)
}

// Remove removes the first occurrence of s and reports whether there was
// one.
func (m *MultiShape) Remove(s Shape) bool {
	i := lo.IndexOf(m.shapes, s)
	if i < 0 {
		return false
	}
	m.shapes = slices.Delete(m.shapes, i, i+1)
	return true
}

func (m *MultiShape) Clear() {
	m.shapes = nil
}

func (m *MultiShape) Len() int {
	return len(m.shapes)
}

func (m *MultiShape) At(i int) Shape {
	return m.shapes[i]
}

// Shapes returns a copy of the member list.
func (m *MultiShape) Shapes() []Shape {
	return slices.Clone(m.shapes)
}

// IsEmpty reports whether every member is empty.
func (m *MultiShape) IsEmpty() bool {
	return lo.EveryBy(m.shapes, func(s Shape) bool { return s.IsEmpty() })
}

// BoundingBox returns the union of the members' bounding boxes, or the zero
// box if there are no members.
func (m *MultiShape) BoundingBox() Box {
	if len(m.shapes) == 0 {
		return Box{}
	}
	b := m.shapes[0].BoundingBox()
	for _, s := range m.shapes[1:] {
		b = b.Union(s.BoundingBox())
	}
	Logger().Debug("computed multi-shape bounds",
		slog.Int("members", len(m.shapes)),
		slog.String("bounds", b.String()))
	return b
}

func (m *MultiShape) Contains(pt Point) bool {
	_, ok := m.GetFirstShapeContaining(pt)
	return ok
}

// ContainsBox reports whether a single member contains all of b.
func (m *MultiShape) ContainsBox(b Box) bool {
	return lo.ContainsBy(m.shapes, func(s Shape) bool {
		return s.ContainsBox(b)
	})
}

func (m *MultiShape) Intersects(o Shape) bool {
	return Intersects(m, o)
}

func (m *MultiShape) IntersectsIterator(it PathIterator) bool {
	return lo.ContainsBy(m.shapes, func(s Shape) bool {
		return s.IntersectsIterator(it.Restart())
	})
}

func (m *MultiShape) containing(pt Point) func(Shape) bool {
	return func(s Shape) bool {
		return s.BoundingBox().Contains(pt) && s.Contains(pt)
	}
}

func (m *MultiShape) intersecting(o Shape) func(Shape) bool {
	bounds := o.BoundingBox()
	return func(s Shape) bool {
		return s.BoundingBox().Overlaps(bounds) && Intersects(s, o)
	}
}

// GetFirstShapeContaining returns the first member that contains pt.
func (m *MultiShape) GetFirstShapeContaining(pt Point) (Shape, bool) {
	return lo.Find(m.shapes, m.containing(pt))
}

// GetShapesContaining returns the members that contain pt, in order.
func (m *MultiShape) GetShapesContaining(pt Point) []Shape {
	return lo.Filter(m.shapes, func(s Shape, _ int) bool {
		return m.containing(pt)(s)
	})
}

// GetFirstShapeIntersecting returns the first member that intersects o.
func (m *MultiShape) GetFirstShapeIntersecting(o Shape) (Shape, bool) {
	return lo.Find(m.shapes, m.intersecting(o))
}

// GetShapesIntersecting returns the members that intersect o, in order.
func (m *MultiShape) GetShapesIntersecting(o Shape) []Shape {
	pred := m.intersecting(o)
	return lo.Filter(m.shapes, func(s Shape, _ int) bool {
		return pred(s)
	})
}

// ClosestPointTo returns the nearest of the members' closest points. A
// multi-shape without members returns pt.
func (m *MultiShape) ClosestPointTo(pt Point) Point {
	best := bestPoint{target: pt, better: closer}
	for _, s := range m.shapes {
		best.offer(s.ClosestPointTo(pt))
	}
	if !best.point.isSet {
		return pt
	}
	return best.point.value
}

// FarthestPointTo returns the farthest of the members' farthest points. A
// multi-shape without members returns pt.
func (m *MultiShape) FarthestPointTo(pt Point) Point {
	best := bestPoint{target: pt, better: farther}
	for _, s := range m.shapes {
		best.offer(s.FarthestPointTo(pt))
	}
	if !best.point.isSet {
		return pt
	}
	return best.point.value
}

func (m *MultiShape) DistanceSquared(pt Point) int {
	return pt.DistanceSquared(m.ClosestPointTo(pt))
}

// Translate moves every member.
func (m *MultiShape) Translate(v Vector) {
	for _, s := range m.shapes {
		s.Translate(v)
	}
}

// PathIterator returns the concatenation of the members' outlines.
func (m *MultiShape) PathIterator() PathIterator {
	return newMultiIterator(slices.Clone(m.shapes))
}

// Clone returns a multi-shape holding clones of the members.
func (m *MultiShape) Clone() Shape {
	return &MultiShape{
		shapes: lo.Map(m.shapes, func(s Shape, _ int) Shape { return s.Clone() }),
	}
}
