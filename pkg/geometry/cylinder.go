package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Cylinder is the radius-1 cylinder around the local y axis. By default it
// extends infinitely in y and is open at both ends; Minimum/Maximum truncate
// it (exclusive bounds) and Closed caps the ends.
type Cylinder struct {
	Minimum, Maximum float64
	Closed           bool
	material         material.Material
}

// NewCylinder creates an infinite open cylinder with the default material
func NewCylinder() *Cylinder {
	return &Cylinder{
		Minimum:  math.Inf(-1),
		Maximum:  math.Inf(1),
		material: material.Default(),
	}
}

// Material returns the cylinder's material
func (c *Cylinder) Material() *material.Material {
	return &c.material
}

// checkCap reports whether the ray at t lies within the unit cap radius
func checkCap(r core.Ray, t float64) bool {
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	return x*x+z*z <= 1
}

// intersectCaps adds hits against the y=Minimum and y=Maximum cap planes
func (c *Cylinder) intersectCaps(r core.Ray, n *Node, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(r.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (c.Minimum - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t) {
		xs = append(xs, Intersection{T: t, Object: n})
	}

	t = (c.Maximum - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t) {
		xs = append(xs, Intersection{T: t, Object: n})
	}
	return xs
}

// LocalIntersect solves the quadratic in the transverse x/z axes and keeps
// the roots whose y lies within the truncation range, then tests the caps
func (c *Cylinder) LocalIntersect(r core.Ray, n *Node) []Intersection {
	var xs []Intersection

	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z
	if math.Abs(a) >= core.Epsilon {
		b := 2*r.Origin.X*r.Direction.X + 2*r.Origin.Z*r.Direction.Z
		cc := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := r.Origin.Y + t0*r.Direction.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, Intersection{T: t0, Object: n})
		}
		y1 := r.Origin.Y + t1*r.Direction.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, Intersection{T: t1, Object: n})
		}
	}

	return c.intersectCaps(r, n, xs)
}

// LocalNormalAt returns the cap normal near a closed end, otherwise the
// radial surface normal
func (c *Cylinder) LocalNormalAt(p core.Point, hit Intersection) core.Vector {
	dist := p.X*p.X + p.Z*p.Z

	if dist < 1 && p.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && p.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(p.X, 0, p.Z)
}
