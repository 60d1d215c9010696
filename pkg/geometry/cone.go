package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Cone is the double-napped cone along the local y axis, with radius |y| at
// height y. Minimum/Maximum truncate it and Closed caps the ends, as with
// Cylinder.
type Cone struct {
	Minimum, Maximum float64
	Closed           bool
	material         material.Material
}

// NewCone creates an infinite open double cone with the default material
func NewCone() *Cone {
	return &Cone{
		Minimum:  math.Inf(-1),
		Maximum:  math.Inf(1),
		material: material.Default(),
	}
}

// Material returns the cone's material
func (c *Cone) Material() *material.Material {
	return &c.material
}

// checkConeCap reports whether the ray at t lies within the cap radius,
// which for a cone equals |y| of the cap plane
func checkConeCap(r core.Ray, t, radius float64) bool {
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	return x*x+z*z <= radius*radius
}

func (c *Cone) intersectCaps(r core.Ray, n *Node, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(r.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (c.Minimum - r.Origin.Y) / r.Direction.Y
	if checkConeCap(r, t, c.Minimum) {
		xs = append(xs, Intersection{T: t, Object: n})
	}

	t = (c.Maximum - r.Origin.Y) / r.Direction.Y
	if checkConeCap(r, t, c.Maximum) {
		xs = append(xs, Intersection{T: t, Object: n})
	}
	return xs
}

// LocalIntersect solves the cone quadratic, falling back to the degenerate
// linear case when the ray is parallel to one of the cone's halves
func (c *Cone) LocalIntersect(r core.Ray, n *Node) []Intersection {
	var xs []Intersection

	a := r.Direction.X*r.Direction.X - r.Direction.Y*r.Direction.Y + r.Direction.Z*r.Direction.Z
	b := 2*r.Origin.X*r.Direction.X - 2*r.Origin.Y*r.Direction.Y + 2*r.Origin.Z*r.Direction.Z
	cc := r.Origin.X*r.Origin.X - r.Origin.Y*r.Origin.Y + r.Origin.Z*r.Origin.Z

	if math.Abs(a) < core.Epsilon {
		// Parallel to one half: a single hit against the other half,
		// unless b vanishes too and the ray misses entirely
		if math.Abs(b) >= core.Epsilon {
			t := -cc / (2 * b)
			y := r.Origin.Y + t*r.Direction.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, Intersection{T: t, Object: n})
			}
		}
	} else {
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
// algebraic surface normal with y opposing the point's half
func (c *Cone) LocalNormalAt(p core.Point, hit Intersection) core.Vector {
	dist := p.X*p.X + p.Z*p.Z

	if dist < c.Maximum*c.Maximum && p.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < c.Minimum*c.Minimum && p.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if p.Y > 0 {
		y = -y
	}
	return core.NewVector(p.X, y, p.Z)
}
