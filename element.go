package lattice

import "fmt"

type PathElementType int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToType PathElementType = iota + 1
	// Draw a line from the current location to the point.
	LineToType
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToType
	// Draw a cubic Bézier using the current location and the three points.
	CurveToType
	// Close off the subpath.
	CloseType
)

func (typ PathElementType) String() string {
	switch typ {
	case MoveToType:
		return "MoveTo"
	case LineToType:
		return "LineTo"
	case QuadToType:
		return "QuadTo"
	case CurveToType:
		return "CurveTo"
	case CloseType:
		return "Close"
	default:
		return fmt.Sprintf("PathElementType(%d)", int(typ))
	}
}

// Arity returns the number of points a path stores for an element of this
// type. The start point of an element is implied by its predecessor.
func (typ PathElementType) Arity() int {
	switch typ {
	case MoveToType, LineToType:
		return 1
	case QuadToType:
		return 2
	case CurveToType:
		return 3
	case CloseType:
		return 0
	default:
		panic(fmt.Sprintf("lattice: invalid path element type %d", int(typ)))
	}
}

// PathElement is a single drawing command produced by a [PathIterator].
//
// The set of implementations is closed: [MoveTo], [LineTo], [QuadTo],
// [CurveTo], and [Close]. Elements other than MoveTo carry their start point,
// so each can be interpreted without looking at its predecessor.
type PathElement interface {
	Type() PathElementType
	// EndPoint returns the location of the pen after the element.
	EndPoint() Point
	// Transform returns the element with t applied to all of its points.
	Transform(t Transform) PathElement
	String() string

	isPathElement()
}

var (
	_ PathElement = MoveTo{}
	_ PathElement = LineTo{}
	_ PathElement = QuadTo{}
	_ PathElement = CurveTo{}
	_ PathElement = Close{}
)

type MoveTo struct {
	To Point
}

type LineTo struct {
	From Point
	To   Point
}

type QuadTo struct {
	From Point
	Ctrl Point
	To   Point
}

type CurveTo struct {
	From  Point
	Ctrl1 Point
	Ctrl2 Point
	To    Point
}

// Close draws a line from the current location back to the start of the
// subpath. To is the point of the subpath's MoveTo.
type Close struct {
	From Point
	To   Point
}

func (MoveTo) Type() PathElementType  { return MoveToType }
func (LineTo) Type() PathElementType  { return LineToType }
func (QuadTo) Type() PathElementType  { return QuadToType }
func (CurveTo) Type() PathElementType { return CurveToType }
func (Close) Type() PathElementType   { return CloseType }

func (el MoveTo) EndPoint() Point  { return el.To }
func (el LineTo) EndPoint() Point  { return el.To }
func (el QuadTo) EndPoint() Point  { return el.To }
func (el CurveTo) EndPoint() Point { return el.To }
func (el Close) EndPoint() Point   { return el.To }

func (MoveTo) isPathElement()  {}
func (LineTo) isPathElement()  {}
func (QuadTo) isPathElement()  {}
func (CurveTo) isPathElement() {}
func (Close) isPathElement()   {}

func (el MoveTo) Transform(t Transform) PathElement {
	return MoveTo{el.To.Transform(t)}
}

func (el LineTo) Transform(t Transform) PathElement {
	return LineTo{el.From.Transform(t), el.To.Transform(t)}
}

func (el QuadTo) Transform(t Transform) PathElement {
	return QuadTo{el.From.Transform(t), el.Ctrl.Transform(t), el.To.Transform(t)}
}

func (el CurveTo) Transform(t Transform) PathElement {
	return CurveTo{el.From.Transform(t), el.Ctrl1.Transform(t), el.Ctrl2.Transform(t), el.To.Transform(t)}
}

func (el Close) Transform(t Transform) PathElement {
	return Close{el.From.Transform(t), el.To.Transform(t)}
}

func (el MoveTo) String() string {
	return fmt.Sprintf("MoveTo(%s)", el.To)
}

func (el LineTo) String() string {
	return fmt.Sprintf("LineTo(%s, %s)", el.From, el.To)
}

func (el QuadTo) String() string {
	return fmt.Sprintf("QuadTo(%s, %s, %s)", el.From, el.Ctrl, el.To)
}

func (el CurveTo) String() string {
	return fmt.Sprintf("CurveTo(%s, %s, %s, %s)", el.From, el.Ctrl1, el.Ctrl2, el.To)
}

func (el Close) String() string {
	return fmt.Sprintf("Close(%s, %s)", el.From, el.To)
}

// points returns the points stored for el in a path buffer.
func points(el PathElement) []Point {
	switch el := el.(type) {
	case MoveTo:
		return []Point{el.To}
	case LineTo:
		return []Point{el.To}
	case QuadTo:
		return []Point{el.Ctrl, el.To}
	case CurveTo:
		return []Point{el.Ctrl1, el.Ctrl2, el.To}
	case Close:
		return nil
	default:
		panic(fmt.Sprintf("lattice: unhandled path element %T", el))
	}
}
