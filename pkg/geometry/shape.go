// Package geometry provides the shape variants and the scene graph that
// arranges them in nested coordinate spaces.
package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is the capability every geometric variant implements. Shapes answer
// queries in their own local space (unit sphere at the origin, xz-plane at
// y=0, and so on); the owning Node is responsible for converting rays and
// normals between world and local space.
type Shape interface {
	// Material returns a mutable reference to the shape's surface material.
	// Groups carry no appearance, so calling this on a Group panics.
	Material() *material.Material

	// LocalIntersect returns the parametric distances at which the
	// local-space ray meets the shape. Negative t values are reported too;
	// filtering to the visible hit happens later. Each intersection is
	// tagged with the owning node n.
	LocalIntersect(r core.Ray, n *Node) []Intersection

	// LocalNormalAt returns the surface normal at a local-space point.
	// Shapes with interpolated normals consult the intersection's u/v.
	LocalNormalAt(p core.Point, hit Intersection) core.Vector
}
