package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// SmoothTriangle is a triangle with per-vertex normals. Intersections record
// their barycentric u/v so the normal can be interpolated at shading time,
// giving meshes a smooth appearance across faces.
type SmoothTriangle struct {
	P1, P2, P3 core.Point
	N1, N2, N3 core.Vector
	E1, E2     core.Vector
	material   material.Material
}

// NewSmoothTriangle creates a smooth triangle from three vertices and their
// normals
func NewSmoothTriangle(p1, p2, p3 core.Point, n1, n2, n3 core.Vector) *SmoothTriangle {
	return &SmoothTriangle{
		P1: p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		E1:       p2.Subtract(p1),
		E2:       p3.Subtract(p1),
		material: material.Default(),
	}
}

// Material returns the triangle's material
func (t *SmoothTriangle) Material() *material.Material {
	return &t.material
}

// LocalIntersect is the same Möller–Trumbore test as Triangle, but the
// barycentric coordinates are kept on the intersection
func (t *SmoothTriangle) LocalIntersect(r core.Ray, n *Node) []Intersection {
	dist, u, v, ok := intersectTriangle(t.P1, t.E1, t.E2, r)
	if !ok {
		return nil
	}
	return []Intersection{{T: dist, Object: n, U: u, V: v}}
}

// LocalNormalAt interpolates the vertex normals using the intersection's
// barycentric weights
func (t *SmoothTriangle) LocalNormalAt(p core.Point, hit Intersection) core.Vector {
	return t.N2.Multiply(hit.U).
		Add(t.N3.Multiply(hit.V)).
		Add(t.N1.Multiply(1 - hit.U - hit.V))
}
