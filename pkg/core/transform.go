package core

import (
	"fmt"
	"math"
)

// Transform pairs a forward matrix with its precomputed inverse so that
// applying the inverse never recomputes it per ray. The pair is established
// at construction or composition time and kept matched from then on.
type Transform struct {
	mat Matrix4x4
	inv Matrix4x4
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{mat: IdentityMatrix(), inv: IdentityMatrix()}
}

// NewTransform builds a transform from an arbitrary matrix, computing its
// inverse once. Panics if the matrix is singular.
func NewTransform(mat Matrix4x4) Transform {
	return Transform{mat: mat, inv: mat.Inverse()}
}

// Translation returns a transform that moves points by (x, y, z).
// Vectors are unaffected.
func Translation(x, y, z float64) Transform {
	mat := NewMatrix4x4([16]float64{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	})
	inv := NewMatrix4x4([16]float64{
		1, 0, 0, -x,
		0, 1, 0, -y,
		0, 0, 1, -z,
		0, 0, 0, 1,
	})
	return Transform{mat: mat, inv: inv}
}

// Scaling returns a transform that scales by (x, y, z).
// A zero scale factor would make the transform non-invertible, so it panics.
func Scaling(x, y, z float64) Transform {
	if x == 0 || y == 0 || z == 0 {
		panic(fmt.Sprintf("core: scaling factors must be non-zero, got (%g, %g, %g)", x, y, z))
	}
	mat := NewMatrix4x4([16]float64{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})
	inv := NewMatrix4x4([16]float64{
		1 / x, 0, 0, 0,
		0, 1 / y, 0, 0,
		0, 0, 1 / z, 0,
		0, 0, 0, 1,
	})
	return Transform{mat: mat, inv: inv}
}

// RotationX returns a rotation about the x axis by a radians.
// Rotation matrices are orthogonal, so the inverse is the transpose.
func RotationX(a float64) Transform {
	sin, cos := math.Sin(a), math.Cos(a)
	mat := NewMatrix4x4([16]float64{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	})
	return Transform{mat: mat, inv: mat.Transpose()}
}

// RotationY returns a rotation about the y axis by a radians
func RotationY(a float64) Transform {
	sin, cos := math.Sin(a), math.Cos(a)
	mat := NewMatrix4x4([16]float64{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	})
	return Transform{mat: mat, inv: mat.Transpose()}
}

// RotationZ returns a rotation about the z axis by a radians
func RotationZ(a float64) Transform {
	sin, cos := math.Sin(a), math.Cos(a)
	mat := NewMatrix4x4([16]float64{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	return Transform{mat: mat, inv: mat.Transpose()}
}

// Shearing returns a transform where each coordinate changes in proportion
// to the other two: xy is the change of x per unit y, and so on
func Shearing(xy, xz, yx, yz, zx, zy float64) Transform {
	mat := NewMatrix4x4([16]float64{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	})
	return Transform{mat: mat, inv: mat.Inverse()}
}

// ViewTransform builds the world-to-camera orientation and position for a
// camera at from, looking at to, with the given approximate up vector
func ViewTransform(from, to Point, up Vector) Transform {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := NewMatrix4x4([16]float64{
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	})
	return NewTransform(orientation).Compose(Translation(-from.X, -from.Y, -from.Z))
}

// Compose returns the transform equivalent to applying other first, then t.
// The inverse of a composition is the composition of the inverses in reverse
// order, so the pair stays matched without re-inversion.
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		mat: t.mat.Multiply(other.mat),
		inv: other.inv.Multiply(t.inv),
	}
}

// Matrix returns the forward matrix
func (t Transform) Matrix() Matrix4x4 {
	return t.mat
}

// Inv returns the precomputed inverse matrix
func (t Transform) Inv() Matrix4x4 {
	return t.inv
}

// Inverse returns the transform with forward and inverse matrices swapped
func (t Transform) Inverse() Transform {
	return Transform{mat: t.inv, inv: t.mat}
}

// ApplyPoint applies the transform to a point
func (t Transform) ApplyPoint(p Point) Point {
	return t.mat.MultiplyPoint(p)
}

// ApplyVector applies the transform to a vector, ignoring translation
func (t Transform) ApplyVector(v Vector) Vector {
	return t.mat.MultiplyVector(v)
}

// ApplyRay applies the transform to a ray's origin and direction
func (t Transform) ApplyRay(r Ray) Ray {
	return t.mat.MultiplyRay(r)
}

// ApplyToNormal converts a surface normal from the transform's local space to
// its parent space using the inverse transpose, renormalizing the result.
// Using the forward matrix directly would skew normals under non-uniform
// scaling.
func (t Transform) ApplyToNormal(n Vector) Vector {
	m := t.inv
	out := Vector{
		X: m.At(0, 0)*n.X + m.At(1, 0)*n.Y + m.At(2, 0)*n.Z,
		Y: m.At(0, 1)*n.X + m.At(1, 1)*n.Y + m.At(2, 1)*n.Z,
		Z: m.At(0, 2)*n.X + m.At(1, 2)*n.Y + m.At(2, 2)*n.Z,
	}
	return out.Normalize()
}

// Equals reports whether two transforms have equal forward matrices
func (t Transform) Equals(other Transform) bool {
	return t.mat.Equals(other.mat)
}
