package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Triangle is a flat triangle defined by three local-space vertices.
// Edge vectors and the face normal are precomputed at construction.
type Triangle struct {
	P1, P2, P3 core.Point
	E1, E2     core.Vector
	Normal     core.Vector
	material   material.Material
}

// NewTriangle creates a triangle from three vertices
func NewTriangle(p1, p2, p3 core.Point) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		P1: p1, P2: p2, P3: p3,
		E1:       e1,
		E2:       e2,
		Normal:   e2.Cross(e1).Normalize(),
		material: material.Default(),
	}
}

// Material returns the triangle's material
func (t *Triangle) Material() *material.Material {
	return &t.material
}

// intersectTriangle is the Möller–Trumbore test shared by Triangle and
// SmoothTriangle. ok is false for rays parallel to the triangle plane or
// hits outside the barycentric range.
func intersectTriangle(p1 core.Point, e1, e2 core.Vector, r core.Ray) (t, u, v float64, ok bool) {
	dirCrossE2 := r.Direction.Cross(e2)
	determinant := e1.Dot(dirCrossE2)
	if math.Abs(determinant) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1 / determinant
	p1ToOrigin := r.Origin.Subtract(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * r.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}

// LocalIntersect runs the Möller–Trumbore test against the precomputed edges
func (t *Triangle) LocalIntersect(r core.Ray, n *Node) []Intersection {
	dist, _, _, ok := intersectTriangle(t.P1, t.E1, t.E2, r)
	if !ok {
		return nil
	}
	return []Intersection{{T: dist, Object: n}}
}

// LocalNormalAt returns the precomputed face normal regardless of position
func (t *Triangle) LocalNormalAt(p core.Point, hit Intersection) core.Vector {
	return t.Normal
}
