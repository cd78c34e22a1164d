package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a displacement on the integer lattice.
type Vector struct {
	X int
	Y int
	Z int
}

// Vec returns the vector (x, y, z).
func Vec(x, y, z int) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func (v Vector) Splat() (int, int, int) {
	return v.X, v.Y, v.Z
}

func (v Vector) String() string {
	return fmt.Sprintf("⟨%d, %d, %d⟩", v.X, v.Y, v.Z)
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

func (v Vector) Mul(s int) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) int {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the euclidean length of v.
func (v Vector) Length() float64 {
	return math.Sqrt(float64(v.LengthSquared()))
}

// LengthSquared returns the squared euclidean length of v.
func (v Vector) LengthSquared() int {
	return v.Dot(v)
}

// LengthL1 returns the taxicab length of v.
func (v Vector) LengthL1() int {
	return abs(v.X) + abs(v.Y) + abs(v.Z)
}

// LengthLinf returns the Chebyshev length of v.
func (v Vector) LengthLinf() int {
	return max(abs(v.X), abs(v.Y), abs(v.Z))
}

// IsZero reports whether all components of v are zero.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

func (v Vector) r3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func (pt Point) r3() r3.Vec {
	return r3.Vec{X: float64(pt.X), Y: float64(pt.Y), Z: float64(pt.Z)}
}

// roundPoint rounds a real-valued vector to the nearest lattice point.
func roundPoint(v r3.Vec) Point {
	return Point{
		X: int(math.Round(v.X)),
		Y: int(math.Round(v.Y)),
		Z: int(math.Round(v.Z)),
	}
}
