// Package scene loads named lattice shapes and queries about them from YAML
// documents.
//
// A document has two top-level keys. shapes maps names to shape
// descriptions, and queries lists questions to ask about them:
//
//	shapes:
//	  room:
//	    box: {min: [0, 0, 0], max: [10, 10, 3]}
//	  lamp:
//	    sphere: {center: [12, 5, 1], radius: 2}
//	  cable:
//	    segment: {from: [-5, 5, 0], to: [3, 5, 0]}
//	  floor:
//	    path:
//	      rule: evenodd
//	      elements:
//	        - move: [0, 0, 0]
//	        - line: [10, 0, 0]
//	        - quad: [[15, 5, 0], [10, 10, 0]]
//	        - close
//	  all:
//	    multi: [room, lamp]
//	queries:
//	  - contains: {shape: room, point: [1, 2, 3]}
//	  - intersects: [cable, lamp]
//	  - closest: {shape: lamp, point: [0, 0, 0]}
//	  - farthest: {shape: room, point: [0, 0, 0]}
//	  - bbox: all
//
// Members of a multi shape are shared with the named shapes they refer to.
package scene

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"honnef.co/go/lattice"
)

var (
	ErrUnknownShape = errors.New("unknown shape")
	ErrCycle        = errors.New("multi shape contains itself")
	ErrInvalid      = errors.New("invalid description")
)

type Scene struct {
	shapes  map[string]lattice.Shape
	queries []Query
}

// LoadFile loads the scene stored in the named file.
func LoadFile(name string) (*Scene, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a scene and builds its shapes. Unknown keys are errors.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("scene: %w", err)
	}

	b := builder{
		descs:    doc.Shapes,
		shapes:   make(map[string]lattice.Shape, len(doc.Shapes)),
		visiting: map[string]bool{},
	}
	// Sorted, so that the first error is deterministic.
	names := lo.Keys(doc.Shapes)
	slices.Sort(names)
	for _, name := range names {
		if _, err := b.build(name); err != nil {
			return nil, err
		}
	}
	for i, q := range doc.Queries {
		if err := q.validate(b.shapes); err != nil {
			return nil, fmt.Errorf("scene: query %d: %w", i, err)
		}
	}
	lattice.Logger().Debug("loaded scene",
		slog.Int("shapes", len(b.shapes)),
		slog.Int("queries", len(doc.Queries)))
	return &Scene{shapes: b.shapes, queries: doc.Queries}, nil
}

type builder struct {
	descs    map[string]shapeDesc
	shapes   map[string]lattice.Shape
	visiting map[string]bool
}

func (b *builder) build(name string) (lattice.Shape, error) {
	if s, ok := b.shapes[name]; ok {
		return s, nil
	}
	desc, ok := b.descs[name]
	if !ok {
		return nil, fmt.Errorf("scene: shape %q: %w", name, ErrUnknownShape)
	}
	if b.visiting[name] {
		return nil, fmt.Errorf("scene: shape %q: %w", name, ErrCycle)
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	s, err := b.shape(desc)
	if err != nil {
		return nil, fmt.Errorf("scene: shape %q: %w", name, err)
	}
	b.shapes[name] = s
	return s, nil
}

func (b *builder) shape(desc shapeDesc) (lattice.Shape, error) {
	set := lo.Count([]bool{
		desc.Segment != nil,
		desc.Box != nil,
		desc.Sphere != nil,
		desc.Path != nil,
		desc.Multi != nil,
	}, true)
	if set != 1 {
		return nil, fmt.Errorf("%w: need exactly one of segment, box, sphere, path, multi; got %d", ErrInvalid, set)
	}

	switch {
	case desc.Segment != nil:
		return lattice.NewSegment(lattice.Point(desc.Segment.From), lattice.Point(desc.Segment.To)), nil
	case desc.Box != nil:
		box := lattice.NewBox(lattice.Point(desc.Box.Min), lattice.Point(desc.Box.Max))
		return &box, nil
	case desc.Sphere != nil:
		if desc.Sphere.Radius < 0 {
			return nil, fmt.Errorf("%w: negative radius %d", ErrInvalid, desc.Sphere.Radius)
		}
		return lattice.NewSphere(lattice.Point(desc.Sphere.Center), desc.Sphere.Radius), nil
	case desc.Path != nil:
		return buildPath(desc.Path)
	default:
		m := lattice.NewMultiShape()
		for _, member := range desc.Multi {
			s, err := b.build(member)
			if err != nil {
				return nil, err
			}
			m.Add(s)
		}
		return m, nil
	}
}

func buildPath(desc *pathDesc) (*lattice.Path, error) {
	var rule lattice.WindingRule
	switch strings.ToLower(desc.Rule) {
	case "", "nonzero":
		rule = lattice.NonZero
	case "evenodd":
		rule = lattice.EvenOdd
	default:
		return nil, fmt.Errorf("%w: unknown winding rule %q", ErrInvalid, desc.Rule)
	}

	p := lattice.NewPath(rule)
	for i, el := range desc.Elements {
		if i == 0 && el.typ != lattice.MoveToType {
			return nil, fmt.Errorf("%w: path must start with move, not %s", ErrInvalid, el.typ)
		}
		pts := make([]lattice.Point, len(el.pts))
		for j, pt := range el.pts {
			pts[j] = lattice.Point(pt)
		}
		switch el.typ {
		case lattice.MoveToType:
			p.MoveTo(pts[0])
		case lattice.LineToType:
			p.LineTo(pts[0])
		case lattice.QuadToType:
			p.QuadTo(pts[0], pts[1])
		case lattice.CurveToType:
			p.CurveTo(pts[0], pts[1], pts[2])
		case lattice.CloseType:
			p.ClosePath()
		}
	}
	return p, nil
}

func (q Query) validate(shapes map[string]lattice.Shape) error {
	var names []string
	set := 0
	if q.Contains != nil {
		set++
		names = append(names, q.Contains.Shape)
	}
	if q.Intersects != nil {
		set++
		if len(q.Intersects) != 2 {
			return fmt.Errorf("%w: intersects needs 2 shapes, got %d", ErrInvalid, len(q.Intersects))
		}
		names = append(names, q.Intersects...)
	}
	if q.Closest != nil {
		set++
		names = append(names, q.Closest.Shape)
	}
	if q.Farthest != nil {
		set++
		names = append(names, q.Farthest.Shape)
	}
	if q.BBox != "" {
		set++
		names = append(names, q.BBox)
	}
	if set != 1 {
		return fmt.Errorf("%w: need exactly one of contains, intersects, closest, farthest, bbox; got %d", ErrInvalid, set)
	}
	for _, name := range names {
		if _, ok := shapes[name]; !ok {
			return fmt.Errorf("shape %q: %w", name, ErrUnknownShape)
		}
	}
	return nil
}

// Shape returns the named shape.
func (s *Scene) Shape(name string) (lattice.Shape, bool) {
	sh, ok := s.shapes[name]
	return sh, ok
}

// Names returns the names of all shapes, sorted.
func (s *Scene) Names() []string {
	names := lo.Keys(s.shapes)
	slices.Sort(names)
	return names
}

func (s *Scene) Queries() []Query {
	return slices.Clone(s.queries)
}

// Run answers all queries in order, one line per query.
func (s *Scene) Run() []string {
	return lo.Map(s.queries, func(q Query, _ int) string {
		return s.answer(q)
	})
}

func (s *Scene) answer(q Query) string {
	switch {
	case q.Contains != nil:
		pt := lattice.Point(q.Contains.Point)
		return fmt.Sprintf("contains %s %s: %t", q.Contains.Shape, pt, s.shapes[q.Contains.Shape].Contains(pt))
	case q.Intersects != nil:
		a, b := s.shapes[q.Intersects[0]], s.shapes[q.Intersects[1]]
		return fmt.Sprintf("intersects %s %s: %t", q.Intersects[0], q.Intersects[1], lattice.Intersects(a, b))
	case q.Closest != nil:
		pt := lattice.Point(q.Closest.Point)
		return fmt.Sprintf("closest %s %s: %s", q.Closest.Shape, pt, s.shapes[q.Closest.Shape].ClosestPointTo(pt))
	case q.Farthest != nil:
		pt := lattice.Point(q.Farthest.Point)
		return fmt.Sprintf("farthest %s %s: %s", q.Farthest.Shape, pt, s.shapes[q.Farthest.Shape].FarthestPointTo(pt))
	default:
		return fmt.Sprintf("bbox %s: %s", q.BBox, s.shapes[q.BBox].BoundingBox())
	}
}
