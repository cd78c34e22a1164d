package lattice

import "log/slog"

// PathShadow is the shadow of a path: the region swept by the path when
// extruded towards +x. It answers how the edges of another path cross the
// shadow's two borders, the rays cast from the path's lowest and highest
// rows.
//
// Most edges can be decided against the path's bounding box alone. Only
// edges that pass through the box cause the path to be replayed.
type PathShadow struct {
	path    *Path
	bounds  Box
	empty   bool
	polygon bool
}

var _ crossingSource = (*PathShadow)(nil)

// NewPathShadow returns the shadow of p. The shadow reads p lazily, so p
// must not be modified while the shadow is in use.
func NewPathShadow(p *Path) *PathShadow {
	flat := FlatteningIterator(p.PathIterator())
	return &PathShadow{
		path:    p,
		bounds:  p.BoundingBox(),
		empty:   len(p.types) == 0,
		polygon: flat.IsPolygon(),
	}
}

// shadowData is the state of a single replay of the shadow path.
type shadowData struct {
	crossings int
	// smallest x of the path in its lowest and highest rows
	x4ymin option[int]
	x4ymax option[int]
}

func (d *shadowData) observe(pt Point, b Box) {
	if pt.Y == b.Min.Y && (!d.x4ymin.isSet || pt.X < d.x4ymin.value) {
		d.x4ymin.set(pt.X)
	}
	if pt.Y == b.Max.Y && (!d.x4ymax.isSet || pt.X < d.x4ymax.value) {
		d.x4ymax.set(pt.X)
	}
}

// Crossings adds to c the contribution of the edge (s0, s1) to the crossing
// count of the shadow. It returns [ShapeIntersects] if the edge touches the
// path or, for closed paths, lies inside it.
func (s *PathShadow) Crossings(c int, s0, s1 Point) int {
	if c == ShapeIntersects || s.empty {
		return c
	}
	bc := CrossingsFromBox(c, s.bounds, s0, s1)
	if bc != ShapeIntersects {
		return bc
	}

	Logger().Debug("edge crosses path shadow bounds, replaying path",
		slog.String("from", s0.String()),
		slog.String("to", s1.String()))
	var d shadowData
	s.replay(&d, s0, s1)
	if d.crossings == ShapeIntersects {
		return ShapeIntersects
	}
	if s.polygon && d.crossings&Mask(s.path.rule, 2) != 0 {
		return ShapeIntersects
	}
	// The path's extreme rows are reached by its vertices, so both are set.
	c = CrossingsFromPoint(c, Point{X: d.x4ymin.unwrap(), Y: s.bounds.Min.Y}, s0, s1)
	return CrossingsFromPoint(c, Point{X: d.x4ymax.unwrap(), Y: s.bounds.Max.Y}, s0, s1)
}

func (s *PathShadow) crossings(c int, s0, s1 Point) int { return s.Crossings(c, s0, s1) }
func (s *PathShadow) borders() int                      { return 2 }

// replay accumulates the crossings of the shadow path's edges against the
// shadow of (s0, s1), recording the path's extreme row intercepts on the
// way.
func (s *PathShadow) replay(d *shadowData, s0, s1 Point) {
	it := s.path.PathIterator()
	if !it.HasNext() {
		return
	}
	m, ok := it.Next().(MoveTo)
	if !ok {
		panic("lattice: missing initial MoveTo in path definition")
	}
	opts := defaultFlattenOptions()
	start, cur := m.To, m.To
	d.observe(cur, s.bounds)
	edge := func(p0, p1 Point) {
		d.crossings = CrossingsFromSegment(d.crossings, s0, s1, p0, p1)
		for _, y := range [2]int{s.bounds.Min.Y, s.bounds.Max.Y} {
			if lo, _, ok := rowRun(p0, p1, y); ok {
				d.observe(Point{X: lo, Y: y}, s.bounds)
			}
		}
	}
	for it.HasNext() {
		switch el := it.Next().(type) {
		case MoveTo:
			start, cur = el.To, el.To
			d.observe(cur, s.bounds)
		case LineTo:
			edge(cur, el.To)
			cur = el.To
		case QuadTo, CurveTo:
			for p := range curvePoints(el, opts) {
				edge(cur, p)
				cur = p
				if d.crossings == ShapeIntersects {
					return
				}
			}
			cur = el.EndPoint()
		case Close:
			if cur != start {
				edge(cur, start)
			}
			cur = start
		}
		if d.crossings == ShapeIntersects {
			return
		}
	}
}
