package core

import "math"

// Epsilon is the tolerance used for floating-point comparisons throughout the
// tracer, both for tuple equality and for surface offset points.
const Epsilon = 1e-5

// ApproxEq reports whether two floats are equal within Epsilon
func ApproxEq(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Point represents a location in 3D space
type Point struct {
	X, Y, Z float64
}

// Vector represents a direction and magnitude in 3D space.
// Points and vectors are distinct types: subtracting two points yields a
// vector, and adding a vector to a point yields another point.
type Vector struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the point displaced by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the vector from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubtractVector returns the point displaced by the negation of a vector
func (p Point) SubtractVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Equals reports whether two points are equal within Epsilon
func (p Point) Equals(other Point) bool {
	return ApproxEq(p.X, other.X) && ApproxEq(p.Y, other.Y) && ApproxEq(p.Z, other.Z)
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the negative of the vector
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Magnitude returns the length of the vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vector) Normalize() Vector {
	length := v.Magnitude()
	if length == 0 {
		return Vector{0, 0, 0}
	}
	return Vector{v.X / length, v.Y / length, v.Z / length}
}

// Reflect returns the vector reflected about the given normal
func (v Vector) Reflect(normal Vector) Vector {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Equals reports whether two vectors are equal within Epsilon
func (v Vector) Equals(other Vector) bool {
	return ApproxEq(v.X, other.X) && ApproxEq(v.Y, other.Y) && ApproxEq(v.Z, other.Z)
}
