package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane is the infinite xz-plane at local y=0
type Plane struct {
	material material.Material
}

// NewPlane creates a plane with the default material
func NewPlane() *Plane {
	return &Plane{material: material.Default()}
}

// Material returns the plane's material
func (p *Plane) Material() *material.Material {
	return &p.material
}

// LocalIntersect reports the single crossing of the xz-plane, or nothing
// when the ray runs parallel to it
func (p *Plane) LocalIntersect(r core.Ray, n *Node) []Intersection {
	if math.Abs(r.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -r.Origin.Y / r.Direction.Y
	return []Intersection{{T: t, Object: n}}
}

// LocalNormalAt always points straight up in local space
func (p *Plane) LocalNormalAt(point core.Point, hit Intersection) core.Vector {
	return core.NewVector(0, 1, 0)
}
