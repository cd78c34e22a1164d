package lattice

import (
	"fmt"
	"math"
)

// Point is a point on the integer lattice.
type Point struct {
	X int
	Y int
	Z int
}

// Pt returns the point (x, y, z).
func Pt(x, y, z int) Point {
	return Point{X: x, Y: y, Z: z}
}

func (pt Point) Splat() (int, int, int) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point) String() string {
	return fmt.Sprintf("(%d, %d, %d)", pt.X, pt.Y, pt.Z)
}

func (pt Point) Translate(v Vector) Point {
	return Point{
		X: pt.X + v.X,
		Y: pt.Y + v.Y,
		Z: pt.Z + v.Z,
	}
}

// Transform applies t to pt. A nil transform is the identity.
func (pt Point) Transform(t Transform) Point {
	if t == nil || t.IsIdentity() {
		return pt
	}
	return t.Transform(pt)
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vector {
	return Vector{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// XY returns the projection of pt onto the z = 0 plane.
func (pt Point) XY() Point {
	return Point{X: pt.X, Y: pt.Y}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Sqrt(float64(pt.DistanceSquared(o)))
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) int {
	return pt.Sub(o).LengthSquared()
}

// DistanceL1 returns the taxicab distance between two points.
func (pt Point) DistanceL1(o Point) int {
	return pt.Sub(o).LengthL1()
}

// DistanceLinf returns the Chebyshev distance between two points.
func (pt Point) DistanceLinf(o Point) int {
	return pt.Sub(o).LengthLinf()
}

// Min returns the component-wise minimum of two points.
func (pt Point) Min(o Point) Point {
	return Point{min(pt.X, o.X), min(pt.Y, o.Y), min(pt.Z, o.Z)}
}

// Max returns the component-wise maximum of two points.
func (pt Point) Max(o Point) Point {
	return Point{max(pt.X, o.X), max(pt.Y, o.Y), max(pt.Z, o.Z)}
}

func (pt Point) array() [3]int {
	return [3]int{pt.X, pt.Y, pt.Z}
}

func pointFromArray(a [3]int) Point {
	return Point{a[0], a[1], a[2]}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// isqrt returns ⌊√n⌋ for n ≥ 0.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// closer reports whether candidate a is strictly closer to p than b is,
// breaking ties in squared distance by Chebyshev distance.
func closer(p, a, b Point) bool {
	da, db := p.DistanceSquared(a), p.DistanceSquared(b)
	if da != db {
		return da < db
	}
	return p.DistanceLinf(a) < p.DistanceLinf(b)
}

// farther is the counterpart of closer.
func farther(p, a, b Point) bool {
	da, db := p.DistanceSquared(a), p.DistanceSquared(b)
	if da != db {
		return da > db
	}
	return p.DistanceLinf(a) > p.DistanceLinf(b)
}
