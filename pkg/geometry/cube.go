package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Cube is the axis-aligned box spanning [-1,1] on every local axis
type Cube struct {
	material material.Material
}

// NewCube creates a cube with the default material
func NewCube() *Cube {
	return &Cube{material: material.Default()}
}

// Material returns the cube's material
func (c *Cube) Material() *material.Material {
	return &c.material
}

// checkAxis computes the entry/exit distances for one slab. A near-zero
// direction component makes the slab effectively infinite in that axis.
func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	if math.Abs(direction) >= core.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LocalIntersect runs the per-axis slab test: the ray is inside the cube
// between the largest slab entry and the smallest slab exit
func (c *Cube) LocalIntersect(r core.Ray, n *Node) []Intersection {
	xtmin, xtmax := checkAxis(r.Origin.X, r.Direction.X)
	ytmin, ytmax := checkAxis(r.Origin.Y, r.Direction.Y)
	ztmin, ztmax := checkAxis(r.Origin.Z, r.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	if tmin > tmax {
		return nil
	}

	return []Intersection{
		{T: tmin, Object: n},
		{T: tmax, Object: n},
	}
}

// LocalNormalAt picks the axis with the largest absolute component, which
// identifies the face the point lies on
func (c *Cube) LocalNormalAt(p core.Point, hit Intersection) core.Vector {
	maxC := math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))

	switch maxC {
	case math.Abs(p.X):
		return core.NewVector(p.X, 0, 0)
	case math.Abs(p.Y):
		return core.NewVector(0, p.Y, 0)
	default:
		return core.NewVector(0, 0, p.Z)
	}
}
