package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"honnef.co/go/lattice"
)

// point is a lattice point written as a flow sequence, [x, y, z].
type point lattice.Point

func (p *point) UnmarshalYAML(node *yaml.Node) error {
	var xyz []int
	if err := node.Decode(&xyz); err != nil {
		return err
	}
	if len(xyz) != 3 {
		return fmt.Errorf("line %d: point needs 3 coordinates, got %d", node.Line, len(xyz))
	}
	*p = point(lattice.Pt(xyz[0], xyz[1], xyz[2]))
	return nil
}

type segmentDesc struct {
	From point `yaml:"from"`
	To   point `yaml:"to"`
}

type boxDesc struct {
	Min point `yaml:"min"`
	Max point `yaml:"max"`
}

type sphereDesc struct {
	Center point `yaml:"center"`
	Radius int   `yaml:"radius"`
}

type pathDesc struct {
	Rule     string        `yaml:"rule"`
	Elements []elementDesc `yaml:"elements"`
}

// elementDesc is one path element: a single-key mapping such as
// {line: [1, 2, 3]}, or the scalar close.
type elementDesc struct {
	typ lattice.PathElementType
	pts []point
}

func (el *elementDesc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if node.Value != "close" {
			return fmt.Errorf("line %d: unknown path element %q", node.Line, node.Value)
		}
		el.typ = lattice.CloseType
		return nil
	}
	var m map[string]yaml.Node
	if err := node.Decode(&m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("line %d: path element needs exactly one key, got %d", node.Line, len(m))
	}
	for k, v := range m {
		switch k {
		case "move":
			el.typ = lattice.MoveToType
		case "line":
			el.typ = lattice.LineToType
		case "quad":
			el.typ = lattice.QuadToType
		case "cubic":
			el.typ = lattice.CurveToType
		default:
			return fmt.Errorf("line %d: unknown path element %q", node.Line, k)
		}
		if el.typ.Arity() == 1 {
			var p point
			if err := v.Decode(&p); err != nil {
				return err
			}
			el.pts = []point{p}
		} else {
			if err := v.Decode(&el.pts); err != nil {
				return err
			}
			if len(el.pts) != el.typ.Arity() {
				return fmt.Errorf("line %d: %s needs %d points, got %d", node.Line, k, el.typ.Arity(), len(el.pts))
			}
		}
	}
	return nil
}

// shapeDesc describes one named shape. Exactly one field must be set.
type shapeDesc struct {
	Segment *segmentDesc `yaml:"segment"`
	Box     *boxDesc     `yaml:"box"`
	Sphere  *sphereDesc  `yaml:"sphere"`
	Path    *pathDesc    `yaml:"path"`
	Multi   []string     `yaml:"multi"`
}

type pointQuery struct {
	Shape string `yaml:"shape"`
	Point point  `yaml:"point"`
}

// Query is a single question about the shapes of a scene. Exactly one field
// must be set.
type Query struct {
	Contains   *pointQuery `yaml:"contains"`
	Intersects []string    `yaml:"intersects"`
	Closest    *pointQuery `yaml:"closest"`
	Farthest   *pointQuery `yaml:"farthest"`
	BBox       string      `yaml:"bbox"`
}

type document struct {
	Shapes  map[string]shapeDesc `yaml:"shapes"`
	Queries []Query              `yaml:"queries"`
}
