package lattice

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform maps lattice points to lattice points.
type Transform interface {
	Transform(pt Point) Point
	// IsIdentity reports whether Transform returns its argument unchanged,
	// allowing callers to skip it.
	IsIdentity() bool
}

var _ Transform = Affine3{}

// Affine3 describes a 3D affine transform via coefficients, representing
// this augmented matrix:
//
//	| N0 N3 N6 N9  |
//	| N1 N4 N7 N10 |
//	| N2 N5 N8 N11 |
//	| 0  0  0  1   |
//
// The idea is that (A * B) * v == A * (B * v). Transformed points are rounded
// to the nearest lattice point.
type Affine3 struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Affine3{N0: 1, N4: 1, N8: 1}

func affineFromColumns(x, y, z, t r3.Vec) Affine3 {
	return Affine3{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
		t.X, t.Y, t.Z,
	}
}

// Translate creates an affine transform representing translation.
func Translate(v Vector) Affine3 {
	aff := Identity
	aff.N9, aff.N10, aff.N11 = float64(v.X), float64(v.Y), float64(v.Z)
	return aff
}

// Scale creates an affine transform representing non-uniform scaling.
func Scale(x, y, z float64) Affine3 {
	return Affine3{N0: x, N4: y, N8: z}
}

// RotateAbout creates an affine transform representing a rotation of th
// radians about axis, following the right-hand rule. It panics if axis is
// the zero vector.
func RotateAbout(axis Vector, th float64) Affine3 {
	if axis.IsZero() {
		panic("lattice: rotation about zero axis")
	}
	rot := r3.NewRotation(th, axis.r3())
	return affineFromColumns(
		rot.Rotate(r3.Vec{X: 1}),
		rot.Rotate(r3.Vec{Y: 1}),
		rot.Rotate(r3.Vec{Z: 1}),
		r3.Vec{},
	)
}

// RotateX creates an affine transform representing a rotation of th radians
// about the x axis.
func RotateX(th float64) Affine3 { return RotateAbout(Vector{X: 1}, th) }

// RotateY creates an affine transform representing a rotation of th radians
// about the y axis.
func RotateY(th float64) Affine3 { return RotateAbout(Vector{Y: 1}, th) }

// RotateZ creates an affine transform representing a rotation of th radians
// about the z axis. A positive angle rotates +x into +y.
func RotateZ(th float64) Affine3 { return RotateAbout(Vector{Z: 1}, th) }

// Coefficients returns the coefficients of the transform.
func (aff Affine3) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8, aff.N9, aff.N10, aff.N11,
	}
}

func (aff Affine3) linear(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: aff.N0*v.X + aff.N3*v.Y + aff.N6*v.Z,
		Y: aff.N1*v.X + aff.N4*v.Y + aff.N7*v.Z,
		Z: aff.N2*v.X + aff.N5*v.Y + aff.N8*v.Z,
	}
}

func (aff Affine3) apply(v r3.Vec) r3.Vec {
	return r3.Add(aff.linear(v), aff.translation())
}

func (aff Affine3) translation() r3.Vec {
	return r3.Vec{X: aff.N9, Y: aff.N10, Z: aff.N11}
}

func (aff Affine3) Mul(o Affine3) Affine3 {
	return affineFromColumns(
		aff.linear(r3.Vec{X: o.N0, Y: o.N1, Z: o.N2}),
		aff.linear(r3.Vec{X: o.N3, Y: o.N4, Z: o.N5}),
		aff.linear(r3.Vec{X: o.N6, Y: o.N7, Z: o.N8}),
		aff.apply(r3.Vec{X: o.N9, Y: o.N10, Z: o.N11}),
	)
}

// ThenTranslate creates aff followed by a translation by v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine3) ThenTranslate(v Vector) Affine3 {
	return Translate(v).Mul(aff)
}

// PreTranslate creates a translation by v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine3) PreTranslate(v Vector) Affine3 {
	return aff.Mul(Translate(v))
}

// ThenRotate creates aff followed by a rotation of th radians about axis.
func (aff Affine3) ThenRotate(axis Vector, th float64) Affine3 {
	return RotateAbout(axis, th).Mul(aff)
}

// PreRotate creates a rotation of th radians about axis followed by aff.
func (aff Affine3) PreRotate(axis Vector, th float64) Affine3 {
	return aff.Mul(RotateAbout(axis, th))
}

// ThenScale creates aff followed by a scaling.
func (aff Affine3) ThenScale(x, y, z float64) Affine3 {
	return Scale(x, y, z).Mul(aff)
}

// PreScale creates a scaling followed by aff.
func (aff Affine3) PreScale(x, y, z float64) Affine3 {
	return aff.Mul(Scale(x, y, z))
}

// Determinant computes the determinant of the linear part.
func (aff Affine3) Determinant() float64 {
	x := r3.Vec{X: aff.N0, Y: aff.N1, Z: aff.N2}
	y := r3.Vec{X: aff.N3, Y: aff.N4, Z: aff.N5}
	z := r3.Vec{X: aff.N6, Y: aff.N7, Z: aff.N8}
	return r3.Dot(x, r3.Cross(y, z))
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine3) Invert() Affine3 {
	x := r3.Vec{X: aff.N0, Y: aff.N1, Z: aff.N2}
	y := r3.Vec{X: aff.N3, Y: aff.N4, Z: aff.N5}
	z := r3.Vec{X: aff.N6, Y: aff.N7, Z: aff.N8}
	invDet := 1 / aff.Determinant()
	// The rows of the inverse are the cross products of the columns.
	r0 := r3.Scale(invDet, r3.Cross(y, z))
	r1 := r3.Scale(invDet, r3.Cross(z, x))
	r2 := r3.Scale(invDet, r3.Cross(x, y))
	inv := Affine3{
		r0.X, r1.X, r2.X,
		r0.Y, r1.Y, r2.Y,
		r0.Z, r1.Z, r2.Z,
		0, 0, 0,
	}
	t := inv.linear(aff.translation())
	inv.N9, inv.N10, inv.N11 = -t.X, -t.Y, -t.Z
	return inv
}

func (aff Affine3) IsIdentity() bool {
	return aff == Identity
}

func (aff Affine3) IsNaN() bool {
	for _, n := range aff.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// Transform applies the transform to pt and rounds the result to the
// lattice.
func (aff Affine3) Transform(pt Point) Point {
	return roundPoint(aff.apply(pt.r3()))
}
