package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the local-space origin
type Sphere struct {
	material material.Material
}

// NewSphere creates a unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{material: material.Default()}
}

// NewGlassSphere creates a unit sphere with a fully transparent material,
// refractive index 1.5
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.material.Transparency = 1.0
	s.material.RefractiveIndex = 1.5
	return s
}

// Material returns the sphere's material
func (s *Sphere) Material() *material.Material {
	return &s.material
}

// LocalIntersect solves |O + tD|² = 1 for t, yielding zero or two roots
// (a tangent ray reports the same root twice)
func (s *Sphere) LocalIntersect(r core.Ray, n *Node) []Intersection {
	sphereToRay := r.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []Intersection{
		{T: (-b - sqrtD) / (2 * a), Object: n},
		{T: (-b + sqrtD) / (2 * a), Object: n},
	}
}

// LocalNormalAt returns the local point itself as a vector, which is the
// normal of a unit sphere at the origin
func (s *Sphere) LocalNormalAt(p core.Point, hit Intersection) core.Vector {
	return p.Subtract(core.NewPoint(0, 0, 0))
}
