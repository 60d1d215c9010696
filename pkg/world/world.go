// Package world aggregates lights and scene nodes and performs the recursive
// Whitted shading: local Phong illumination plus reflection, refraction, and
// shadow rays, blended with Schlick reflectance where a surface is both
// reflective and transparent.
package world

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// DefaultMaxDepth is the conventional recursion budget for reflection and
// refraction rays
const DefaultMaxDepth = 5

// World owns the light list and the root scene nodes. Its lifecycle is
// build-then-render: AddLight and AddNode assemble the scene, after which
// rendering is strictly read-only, which is what makes the per-pixel render
// loop safe to parallelize.
type World struct {
	lights []lights.PointLight
	nodes  []*geometry.Node
}

// New creates an empty world
func New() *World {
	return &World{}
}

// AddLight adds a point light to the world
func (w *World) AddLight(light lights.PointLight) {
	w.lights = append(w.lights, light)
}

// AddNode attaches a node subtree to the world's root
func (w *World) AddNode(node *geometry.Node) {
	w.nodes = append(w.nodes, node)
}

// Lights returns the world's lights
func (w *World) Lights() []lights.PointLight {
	return w.lights
}

// Nodes returns the world's root nodes
func (w *World) Nodes() []*geometry.Node {
	return w.nodes
}

// Intersect tests the ray against every node tree and returns all
// intersections sorted ascending by t
func (w *World) Intersect(r core.Ray) []geometry.Intersection {
	var xs []geometry.Intersection
	for _, node := range w.nodes {
		xs = append(xs, node.Intersect(r)...)
	}
	geometry.SortIntersections(xs)
	return xs
}

// ColorAt returns the color seen along a ray, or black when the ray hits
// nothing. remaining is the recursion budget for reflection/refraction rays.
func (w *World) ColorAt(r core.Ray, remaining int) core.Color {
	xs := w.Intersect(r)
	hit, ok := geometry.Hit(xs)
	if !ok {
		return core.Black
	}
	state := NewIntersectionState(hit, r, xs)
	return w.shadeHit(state, remaining)
}

// shadeHit combines, over all lights, local Phong illumination at the hit
// with the recursive reflected and refracted contributions. When the
// material is both reflective and transparent the two secondary terms are
// blended by the Schlick reflectance instead of simply summed.
func (w *World) shadeHit(state IntersectionState, remaining int) core.Color {
	mat := state.Object.Material()

	surface := core.Black
	for _, light := range w.lights {
		shadowed := w.IsShadowed(state.OverPoint, light)
		surface = surface.Add(mat.Lighting(
			state.Object, light, state.OverPoint, state.Eyev, state.Normalv, shadowed))
	}

	reflected := w.reflectedColor(state, remaining)
	refracted := w.refractedColor(state, remaining)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := state.Schlick()
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether an occluder sits between the point and the
// light. The test is binary: the nearest hit blocks the light regardless of
// its transparency.
func (w *World) IsShadowed(p core.Point, light lights.PointLight) bool {
	toLight := light.Position.Subtract(p)
	distance := toLight.Magnitude()

	r := core.NewRay(p, toLight.Normalize())
	if hit, ok := geometry.Hit(w.Intersect(r)); ok && hit.T < distance {
		return true
	}
	return false
}

// reflectedColor casts the reflection ray from just above the surface and
// returns its color scaled by the material's reflectivity. Black when the
// material is non-reflective or the recursion budget is exhausted; the
// budget is the sole terminator of the mutual recursion with ColorAt.
func (w *World) reflectedColor(state IntersectionState, remaining int) core.Color {
	if state.Object.Material().Reflective == 0 {
		return core.Black
	}
	if remaining <= 0 {
		return core.Black
	}

	reflectRay := core.NewRay(state.OverPoint, state.Reflectv)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Scale(state.Object.Material().Reflective)
}

// refractedColor casts the refraction ray from just below the surface using
// Snell's law. Black for opaque materials, an exhausted recursion budget, or
// total internal reflection.
func (w *World) refractedColor(state IntersectionState, remaining int) core.Color {
	if state.Object.Material().Transparency == 0 {
		return core.Black
	}
	if remaining <= 0 {
		return core.Black
	}

	nRatio := state.N1 / state.N2
	cosI := state.Eyev.Dot(state.Normalv)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		// Total internal reflection
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := state.Normalv.Multiply(nRatio*cosI - cosT).
		Subtract(state.Eyev.Multiply(nRatio))

	refractRay := core.NewRay(state.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).
		Scale(state.Object.Material().Transparency)
}
