package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// bezier is the control polygon of a quadratic (n = 3) or cubic (n = 4)
// Bézier curve in real coordinates.
type bezier struct {
	p [4]r3.Vec
	n int
}

// curveOf returns the control polygon of a QuadTo or CurveTo element.
func curveOf(el PathElement) bezier {
	switch el := el.(type) {
	case QuadTo:
		return bezier{p: [4]r3.Vec{el.From.r3(), el.Ctrl.r3(), el.To.r3()}, n: 3}
	case CurveTo:
		return bezier{p: [4]r3.Vec{el.From.r3(), el.Ctrl1.r3(), el.Ctrl2.r3(), el.To.r3()}, n: 4}
	default:
		panic(fmt.Sprintf("lattice: %s is not a curve", el.Type()))
	}
}

func (b bezier) start() r3.Vec { return b.p[0] }
func (b bezier) end() r3.Vec   { return b.p[b.n-1] }

func midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

// subdivide splits the curve at t = 0.5 using de Casteljau's algorithm. The
// end points of the parent are copied, not recomputed, so they survive
// subdivision exactly.
func (b bezier) subdivide() (bezier, bezier) {
	switch b.n {
	case 3:
		p01 := midpoint(b.p[0], b.p[1])
		p12 := midpoint(b.p[1], b.p[2])
		m := midpoint(p01, p12)
		return bezier{p: [4]r3.Vec{b.p[0], p01, m}, n: 3},
			bezier{p: [4]r3.Vec{m, p12, b.p[2]}, n: 3}
	case 4:
		p01 := midpoint(b.p[0], b.p[1])
		p12 := midpoint(b.p[1], b.p[2])
		p23 := midpoint(b.p[2], b.p[3])
		p012 := midpoint(p01, p12)
		p123 := midpoint(p12, p23)
		m := midpoint(p012, p123)
		return bezier{p: [4]r3.Vec{b.p[0], p01, p012, m}, n: 4},
			bezier{p: [4]r3.Vec{m, p123, p23, b.p[3]}, n: 4}
	default:
		panic(fmt.Sprintf("lattice: invalid Bézier order %d", b.n))
	}
}

// eval evaluates the curve at t.
func (b bezier) eval(t float64) r3.Vec {
	var q [4]r3.Vec
	copy(q[:], b.p[:b.n])
	for n := b.n - 1; n > 0; n-- {
		for i := range n {
			q[i] = r3.Add(q[i], r3.Scale(t, r3.Sub(q[i+1], q[i])))
		}
	}
	return q[0]
}

// flatnessSquared returns the largest squared distance of an inner control
// point from the chord.
func (b bezier) flatnessSquared() float64 {
	p0, p1 := b.start(), b.end()
	chord := r3.Sub(p1, p0)
	l2 := r3.Norm2(chord)
	var worst float64
	for _, c := range b.p[1 : b.n-1] {
		d := r3.Sub(c, p0)
		if l2 != 0 {
			d = r3.Sub(d, r3.Scale(r3.Dot(d, chord)/l2, chord))
		}
		worst = max(worst, r3.Norm2(d))
	}
	return worst
}

// distanceToChord returns the distance of p from the segment (a, b).
func distanceToChord(p, a, b r3.Vec) float64 {
	ab := r3.Sub(b, a)
	l2 := r3.Norm2(ab)
	if l2 == 0 {
		return r3.Norm(r3.Sub(p, a))
	}
	t := min(max(r3.Dot(r3.Sub(p, a), ab)/l2, 0), 1)
	return r3.Norm(r3.Sub(p, r3.Add(a, r3.Scale(t, ab))))
}
