package world

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func TestNewIntersectionState(t *testing.T) {
	t.Run("outside hit", func(t *testing.T) {
		n := geometry.NewNode(geometry.NewSphere())
		r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		hit := geometry.Intersection{T: 4, Object: n}

		state := NewIntersectionState(hit, r, []geometry.Intersection{hit})
		if !core.ApproxEq(state.T, 4) || state.Object != n {
			t.Errorf("unexpected hit identity: %+v", state)
		}
		if !state.Point.Equals(core.NewPoint(0, 0, -1)) {
			t.Errorf("point = %v, want (0, 0, -1)", state.Point)
		}
		if !state.Eyev.Equals(core.NewVector(0, 0, -1)) {
			t.Errorf("eyev = %v, want (0, 0, -1)", state.Eyev)
		}
		if !state.Normalv.Equals(core.NewVector(0, 0, -1)) {
			t.Errorf("normalv = %v, want (0, 0, -1)", state.Normalv)
		}
		if state.Inside {
			t.Error("hit from outside should not be inside")
		}
	})

	t.Run("inside hit flips the normal", func(t *testing.T) {
		n := geometry.NewNode(geometry.NewSphere())
		r := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
		hit := geometry.Intersection{T: 1, Object: n}

		state := NewIntersectionState(hit, r, []geometry.Intersection{hit})
		if !state.Inside {
			t.Error("hit from inside should set Inside")
		}
		if !state.Point.Equals(core.NewPoint(0, 0, 1)) {
			t.Errorf("point = %v, want (0, 0, 1)", state.Point)
		}
		if !state.Normalv.Equals(core.NewVector(0, 0, -1)) {
			t.Errorf("normalv = %v, want flipped (0, 0, -1)", state.Normalv)
		}
	})

	t.Run("over and under points straddle the surface", func(t *testing.T) {
		n := geometry.NewNode(geometry.NewSphere())
		n.SetTransform(core.Translation(0, 0, 1))
		r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		hit := geometry.Intersection{T: 5, Object: n}

		state := NewIntersectionState(hit, r, []geometry.Intersection{hit})
		if state.OverPoint.Z >= -core.Epsilon/2 {
			t.Errorf("over point z = %v, want < %v", state.OverPoint.Z, -core.Epsilon/2)
		}
		if state.Point.Z <= state.OverPoint.Z {
			t.Error("over point should sit in front of the surface")
		}
		if state.UnderPoint.Z <= core.Epsilon/2 {
			t.Errorf("under point z = %v, want > %v", state.UnderPoint.Z, core.Epsilon/2)
		}
	})

	t.Run("reflection vector", func(t *testing.T) {
		n := geometry.NewNode(geometry.NewPlane())
		s2 := math.Sqrt2 / 2
		r := core.NewRay(core.NewPoint(0, 1, -1), core.NewVector(0, -s2, s2))
		hit := geometry.Intersection{T: math.Sqrt2, Object: n}

		state := NewIntersectionState(hit, r, []geometry.Intersection{hit})
		if !state.Reflectv.Equals(core.NewVector(0, s2, s2)) {
			t.Errorf("reflectv = %v, want (0, %v, %v)", state.Reflectv, s2, s2)
		}
	})
}

func TestNewIntersectionState_RefractiveIndices(t *testing.T) {
	// Three overlapping glass spheres: B and C sit inside A
	a := geometry.NewNode(geometry.NewGlassSphere())
	a.SetTransform(core.Scaling(2, 2, 2))
	a.Material().RefractiveIndex = 1.5

	b := geometry.NewNode(geometry.NewGlassSphere())
	b.SetTransform(core.Translation(0, 0, -0.25))
	b.Material().RefractiveIndex = 2.0

	c := geometry.NewNode(geometry.NewGlassSphere())
	c.SetTransform(core.Translation(0, 0, 0.25))
	c.Material().RefractiveIndex = 2.5

	r := core.NewRay(core.NewPoint(0, 0, -4), core.NewVector(0, 0, 1))
	xs := []geometry.Intersection{
		{T: 2, Object: a},
		{T: 2.75, Object: b},
		{T: 3.25, Object: c},
		{T: 4.75, Object: b},
		{T: 5.25, Object: c},
		{T: 6, Object: a},
	}

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for i, want := range expected {
		state := NewIntersectionState(xs[i], r, xs)
		if !core.ApproxEq(state.N1, want.n1) || !core.ApproxEq(state.N2, want.n2) {
			t.Errorf("xs[%d]: n1=%v n2=%v, want n1=%v n2=%v", i, state.N1, state.N2, want.n1, want.n2)
		}
	}
}

func TestSchlick(t *testing.T) {
	s2 := math.Sqrt2 / 2

	t.Run("total internal reflection", func(t *testing.T) {
		n := geometry.NewNode(geometry.NewGlassSphere())
		r := core.NewRay(core.NewPoint(0, 0, s2), core.NewVector(0, 1, 0))
		xs := []geometry.Intersection{
			{T: -s2, Object: n},
			{T: s2, Object: n},
		}
		state := NewIntersectionState(xs[1], r, xs)
		if got := state.Schlick(); !core.ApproxEq(got, 1.0) {
			t.Errorf("got %v, want 1.0", got)
		}
	})

	t.Run("perpendicular ray", func(t *testing.T) {
		n := geometry.NewNode(geometry.NewGlassSphere())
		r := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0))
		xs := []geometry.Intersection{
			{T: -1, Object: n},
			{T: 1, Object: n},
		}
		state := NewIntersectionState(xs[1], r, xs)
		if got := state.Schlick(); !core.ApproxEq(got, 0.04) {
			t.Errorf("got %v, want 0.04", got)
		}
	})

	t.Run("small angle, n2 greater than n1", func(t *testing.T) {
		n := geometry.NewNode(geometry.NewGlassSphere())
		r := core.NewRay(core.NewPoint(0, 0.99, -2), core.NewVector(0, 0, 1))
		xs := []geometry.Intersection{{T: 1.8589, Object: n}}
		state := NewIntersectionState(xs[0], r, xs)
		if got := state.Schlick(); !core.ApproxEq(got, 0.48873) {
			t.Errorf("got %v, want 0.48873", got)
		}
	})
}
