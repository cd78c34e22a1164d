package lattice

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestBezierSubdivide(t *testing.T) {
	curves := []PathElement{
		QuadTo{Pt(0, 0, 0), Pt(5, 10, 3), Pt(10, 0, -2)},
		CurveTo{Pt(0, 0, 0), Pt(0, 100, 0), Pt(100, 100, 10), Pt(100, 0, 0)},
	}
	for _, el := range curves {
		b := curveOf(el)
		l, r := b.subdivide()
		if l.start() != b.start() || r.end() != b.end() {
			t.Errorf("%s: subdivision moved the end points", el)
		}
		if l.end() != r.start() {
			t.Errorf("%s: halves don't meet, %v and %v", el, l.end(), r.start())
		}
		for _, u := range []float64{0, 0.1, 0.25, 0.6, 1} {
			want := b.eval(u / 2)
			diff(t, want, l.eval(u), cmpopts.EquateApprox(0, 1e-9))
			want = b.eval(0.5 + u/2)
			diff(t, want, r.eval(u), cmpopts.EquateApprox(0, 1e-9))
		}
	}
}

func TestBezierFlatness(t *testing.T) {
	line := curveOf(CurveTo{Pt(0, 0, 0), Pt(3, 3, 3), Pt(6, 6, 6), Pt(9, 9, 9)})
	if f := line.flatnessSquared(); f > 1e-12 {
		t.Errorf("collinear control points have flatness² %g", f)
	}
	bump := curveOf(QuadTo{Pt(0, 0, 0), Pt(5, 4, 0), Pt(10, 0, 0)})
	if f := bump.flatnessSquared(); math.Abs(f-16) > 1e-12 {
		t.Errorf("got flatness² %g, want 16", f)
	}
	// degenerate chord
	loop := curveOf(QuadTo{Pt(1, 1, 1), Pt(4, 5, 1), Pt(1, 1, 1)})
	if f := loop.flatnessSquared(); math.Abs(f-25) > 1e-12 {
		t.Errorf("got flatness² %g, want 25", f)
	}
}

func TestFlatteningIterator(t *testing.T) {
	el := CurveTo{Pt(0, 0, 0), Pt(0, 100, 0), Pt(100, 100, 0), Pt(100, 0, 0)}
	p := NewPath(EvenOdd)
	p.MoveTo(el.From)
	p.CurveTo(el.Ctrl1, el.Ctrl2, el.To)
	p.ClosePath()

	for _, flatness := range []float64{0.25, 0.5, 2, 10} {
		it := p.FlatteningIterator(WithFlatness(flatness))
		if it.WindingRule() != EvenOdd {
			t.Errorf("flattening changed the winding rule to %s", it.WindingRule())
		}
		els := slices.Collect(Elements(it))
		if _, ok := els[0].(MoveTo); !ok {
			t.Fatalf("got %s as first element, want MoveTo", els[0])
		}
		if _, ok := els[len(els)-1].(Close); !ok {
			t.Fatalf("got %s as last element, want Close", els[len(els)-1])
		}
		lines := els[1 : len(els)-1]
		if len(lines) < 2 {
			t.Fatalf("flatness %g: got only %d lines", flatness, len(lines))
		}
		if from, to := lines[0].(LineTo).From, lines[len(lines)-1].EndPoint(); from != el.From || to != el.To {
			t.Errorf("flatness %g: flattened curve runs from %s to %s", flatness, from, to)
		}

		// Compare against a dense sampling of the curve. Rounding to the
		// lattice adds up to half a diagonal, sampling a little more.
		b := curveOf(el)
		var samples []r3.Vec
		for i := range 4001 {
			samples = append(samples, b.eval(float64(i)/4000))
		}
		tol := flatness + math.Sqrt(3)/2 + 0.05
		for i, el := range lines {
			l, ok := el.(LineTo)
			if !ok {
				t.Fatalf("flatness %g: got %s, want only lines", flatness, el)
			}
			if l.From == l.To {
				t.Errorf("flatness %g: zero-length line %s", flatness, l)
			}
			if i > 0 && l.From != lines[i-1].EndPoint() {
				t.Errorf("flatness %g: line %s doesn't continue from %s", flatness, l, lines[i-1].EndPoint())
			}
			for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
				q := r3.Add(l.From.r3(), r3.Scale(u, r3.Sub(l.To.r3(), l.From.r3())))
				d := math.Inf(1)
				for _, s := range samples {
					d = min(d, r3.Norm(r3.Sub(q, s)))
				}
				if d > tol {
					t.Errorf("flatness %g: %v is %g away from the curve", flatness, q, d)
				}
			}
		}
	}
}

func TestFlatteningLimit(t *testing.T) {
	p := NewPath(NonZero)
	p.MoveTo(Pt(0, 0, 0))
	p.QuadTo(Pt(50, 100, 0), Pt(100, 0, 0))

	got := slices.Collect(Elements(p.FlatteningIterator(WithLimit(0))))
	want := []PathElement{
		MoveTo{Pt(0, 0, 0)},
		LineTo{Pt(0, 0, 0), Pt(100, 0, 0)},
	}
	diff(t, want, got)

	got = slices.Collect(Elements(p.FlatteningIterator(WithLimit(1))))
	want = []PathElement{
		MoveTo{Pt(0, 0, 0)},
		LineTo{Pt(0, 0, 0), Pt(50, 50, 0)},
		LineTo{Pt(50, 50, 0), Pt(100, 0, 0)},
	}
	diff(t, want, got)

	n0 := len(slices.Collect(Elements(p.FlatteningIterator(WithLimit(3)))))
	n1 := len(slices.Collect(Elements(p.FlatteningIterator())))
	if n0 >= n1 {
		t.Errorf("a lower limit should produce fewer lines, got %d and %d", n0, n1)
	}
}

func TestFlatteningDegenerateCurve(t *testing.T) {
	// A curve whose points all round to the same lattice point disappears.
	p := NewPath(NonZero)
	p.MoveTo(Pt(3, 3, 3))
	p.CurveTo(Pt(3, 3, 3), Pt(3, 3, 3), Pt(3, 3, 3))
	p.LineTo(Pt(4, 3, 3))
	got := slices.Collect(Elements(p.FlatteningIterator()))
	want := []PathElement{
		MoveTo{Pt(3, 3, 3)},
		LineTo{Pt(3, 3, 3), Pt(4, 3, 3)},
	}
	diff(t, want, got)
}

func TestFlatteningRepeatedPoints(t *testing.T) {
	p := NewPath(NonZero)
	p.MoveTo(Pt(0, 0, 0))
	p.LineTo(Pt(5, 0, 0))
	p.LineTo(Pt(5, 0, 0))
	p.QuadTo(Pt(5, 0, 0), Pt(5, 0, 0))
	p.LineTo(Pt(5, 5, 0))
	p.ClosePath()
	p.MoveTo(Pt(9, 9, 9))
	p.LineTo(Pt(9, 9, 9))
	got := slices.Collect(Elements(p.FlatteningIterator()))
	want := []PathElement{
		MoveTo{Pt(0, 0, 0)},
		LineTo{Pt(0, 0, 0), Pt(5, 0, 0)},
		LineTo{Pt(5, 0, 0), Pt(5, 5, 0)},
		Close{Pt(5, 5, 0), Pt(0, 0, 0)},
		MoveTo{Pt(9, 9, 9)},
	}
	diff(t, want, got)

	// A lone point still touches what passes through it.
	dot := NewPath(NonZero)
	dot.MoveTo(Pt(0, 0, 0))
	dot.LineTo(Pt(10, 0, 0))
	dot.MoveTo(Pt(4, 4, 0))
	dot.LineTo(Pt(4, 4, 0))
	if !dot.Intersects(NewSegment(Pt(0, 4, 0), Pt(8, 4, 0))) {
		t.Error("a segment through a single-point subpath should intersect the path")
	}
}

func TestFlatteningRestart(t *testing.T) {
	it := NewSphere(Pt(0, 0, 0), 20).PathIterator()
	flat := FlatteningIterator(it)
	first := slices.Collect(Elements(flat))
	second := slices.Collect(Elements(flat.Restart()))
	diff(t, first, second)
	if !flat.IsPolygon() || flat.IsCurved() {
		t.Errorf("flattened circle: got polygon %t, curved %t", flat.IsPolygon(), flat.IsCurved())
	}
}

func TestFlattenOptionsPanic(t *testing.T) {
	f := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}
	f("WithFlatness", func() { WithFlatness(-1) })
	f("WithLimit", func() { WithLimit(-1) })
}
