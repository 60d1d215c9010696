package world

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// IntersectionState is the hit record: everything shading needs, derived
// once from a chosen intersection and the full sorted intersection list of
// its ray. It is transient and never outlives the color computation.
type IntersectionState struct {
	T      float64
	Object *geometry.Node

	// Point is the world-space intersection position. OverPoint and
	// UnderPoint are nudged along the normal by Epsilon on either side of
	// the surface so secondary rays don't immediately re-hit it (acne).
	Point      core.Point
	OverPoint  core.Point
	UnderPoint core.Point

	Eyev     core.Vector
	Normalv  core.Vector
	Reflectv core.Vector

	// N1 is the refractive index of the medium being exited, N2 of the
	// medium being entered.
	N1, N2 float64

	// Inside is true when the ray originates within the shape; the normal
	// has already been flipped in that case.
	Inside bool
}

// NewIntersectionState derives the hit record for hit. xs must be the full
// intersection list of the ray, sorted ascending by t; it is walked to
// determine the refractive indices on both sides of the surface.
func NewIntersectionState(hit geometry.Intersection, r core.Ray, xs []geometry.Intersection) IntersectionState {
	point := r.Position(hit.T)
	eyev := r.Direction.Negate()
	normalv := hit.Object.NormalAt(point, hit)

	inside := false
	if normalv.Dot(eyev) < 0 {
		inside = true
		normalv = normalv.Negate()
	}

	offset := normalv.Multiply(core.Epsilon)
	state := IntersectionState{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  point.Add(offset),
		UnderPoint: point.SubtractVector(offset),
		Eyev:       eyev,
		Normalv:    normalv,
		Reflectv:   r.Direction.Reflect(normalv),
		N1:         1.0,
		N2:         1.0,
		Inside:     inside,
	}

	// Walk the sorted list maintaining the stack of shapes the ray is
	// currently inside. At the hit, the top of the stack before entering
	// is the exited medium and the top after is the entered one.
	containers := make([]*geometry.Node, 0, len(xs))
	hitSeen := false
	for _, i := range xs {
		isHit := !hitSeen && i == hit
		if isHit {
			if len(containers) > 0 {
				state.N1 = containers[len(containers)-1].Material().RefractiveIndex
			} else {
				state.N1 = 1.0
			}
		}

		if idx := indexOfNode(containers, i.Object); idx >= 0 {
			// Exiting the shape
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			// Entering the shape
			containers = append(containers, i.Object)
		}

		if isHit {
			if len(containers) > 0 {
				state.N2 = containers[len(containers)-1].Material().RefractiveIndex
			} else {
				state.N2 = 1.0
			}
			hitSeen = true
			break
		}
	}

	return state
}

func indexOfNode(nodes []*geometry.Node, target *geometry.Node) int {
	for i, n := range nodes {
		if n == target {
			return i
		}
	}
	return -1
}

// Schlick returns the reflectance at this hit: the fraction of light that
// reflects rather than refracts, via Schlick's polynomial approximation of
// the Fresnel equations
func (s IntersectionState) Schlick() float64 {
	cos := s.Eyev.Dot(s.Normalv)

	// Total internal reflection can only occur when n1 > n2
	if s.N1 > s.N2 {
		n := s.N1 / s.N2
		sin2T := n * n * (1.0 - cos*cos)
		if sin2T > 1.0 {
			return 1.0
		}
		cos = math.Sqrt(1.0 - sin2T)
	}

	r0 := (s.N1 - s.N2) / (s.N1 + s.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
