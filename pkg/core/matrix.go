package core

import (
	"fmt"
	"math"
)

// Matrix4x4 is a row-major 4x4 matrix of float64 values
type Matrix4x4 struct {
	m [16]float64
}

// NewMatrix4x4 creates a matrix from 16 row-major values
func NewMatrix4x4(values [16]float64) Matrix4x4 {
	return Matrix4x4{m: values}
}

// IdentityMatrix returns the 4x4 identity matrix
func IdentityMatrix() Matrix4x4 {
	return Matrix4x4{m: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// At returns the element at the given row and column
func (a Matrix4x4) At(row, col int) float64 {
	return a.m[row*4+col]
}

// Multiply returns the matrix product a*b
func (a Matrix4x4) Multiply(b Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a.At(row, k) * b.At(k, col)
			}
			out.m[row*4+col] = sum
		}
	}
	return out
}

// MultiplyPoint applies the matrix to a point (homogeneous w=1, so the
// translation column contributes)
func (a Matrix4x4) MultiplyPoint(p Point) Point {
	return Point{
		X: a.At(0, 0)*p.X + a.At(0, 1)*p.Y + a.At(0, 2)*p.Z + a.At(0, 3),
		Y: a.At(1, 0)*p.X + a.At(1, 1)*p.Y + a.At(1, 2)*p.Z + a.At(1, 3),
		Z: a.At(2, 0)*p.X + a.At(2, 1)*p.Y + a.At(2, 2)*p.Z + a.At(2, 3),
	}
}

// MultiplyVector applies the matrix to a vector (homogeneous w=0, so
// translation is ignored)
func (a Matrix4x4) MultiplyVector(v Vector) Vector {
	return Vector{
		X: a.At(0, 0)*v.X + a.At(0, 1)*v.Y + a.At(0, 2)*v.Z,
		Y: a.At(1, 0)*v.X + a.At(1, 1)*v.Y + a.At(1, 2)*v.Z,
		Z: a.At(2, 0)*v.X + a.At(2, 1)*v.Y + a.At(2, 2)*v.Z,
	}
}

// MultiplyRay applies the matrix to both the origin and direction of a ray
func (a Matrix4x4) MultiplyRay(r Ray) Ray {
	return Ray{
		Origin:    a.MultiplyPoint(r.Origin),
		Direction: a.MultiplyVector(r.Direction),
	}
}

// Transpose returns the matrix with rows and columns swapped
func (a Matrix4x4) Transpose() Matrix4x4 {
	var out Matrix4x4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.m[col*4+row] = a.m[row*4+col]
		}
	}
	return out
}

// det2 returns the determinant of a 2x2 matrix
func det2(a, b, c, d float64) float64 {
	return a*d - b*c
}

// det3 returns the determinant of a 3x3 matrix given in row-major order,
// by cofactor expansion along the first row
func det3(m [9]float64) float64 {
	return m[0]*det2(m[4], m[5], m[7], m[8]) -
		m[1]*det2(m[3], m[5], m[6], m[8]) +
		m[2]*det2(m[3], m[4], m[6], m[7])
}

// submatrix returns the 3x3 matrix obtained by removing the given row and column
func (a Matrix4x4) submatrix(row, col int) [9]float64 {
	var out [9]float64
	i := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			out[i] = a.At(r, c)
			i++
		}
	}
	return out
}

// cofactor returns the signed minor for the given row and column
func (a Matrix4x4) cofactor(row, col int) float64 {
	minor := det3(a.submatrix(row, col))
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant via cofactor expansion along the first row
func (a Matrix4x4) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += a.At(0, col) * a.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse matrix, computed as the transposed cofactor
// matrix divided by the determinant. Inverting a singular matrix is a
// programming or scene-authoring error and panics.
func (a Matrix4x4) Inverse() Matrix4x4 {
	det := a.Determinant()
	if math.Abs(det) < Epsilon {
		panic(fmt.Sprintf("core: cannot invert singular matrix (determinant %g)", det))
	}

	var out Matrix4x4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed assignment performs the adjugate transpose
			out.m[col*4+row] = a.cofactor(row, col) / det
		}
	}
	return out
}

// Equals reports whether two matrices are equal element-wise within Epsilon
func (a Matrix4x4) Equals(b Matrix4x4) bool {
	for i := 0; i < 16; i++ {
		if !ApproxEq(a.m[i], b.m[i]) {
			return false
		}
	}
	return true
}
