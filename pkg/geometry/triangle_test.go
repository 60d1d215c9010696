package geometry

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func defaultTriangle() *Triangle {
	return NewTriangle(
		core.NewPoint(0, 1, 0),
		core.NewPoint(-1, 0, 0),
		core.NewPoint(1, 0, 0),
	)
}

func TestNewTriangle_Precomputes(t *testing.T) {
	tri := defaultTriangle()

	if !tri.E1.Equals(core.NewVector(-1, -1, 0)) {
		t.Errorf("e1 = %v, want (-1, -1, 0)", tri.E1)
	}
	if !tri.E2.Equals(core.NewVector(1, -1, 0)) {
		t.Errorf("e2 = %v, want (1, -1, 0)", tri.E2)
	}
	if !tri.Normal.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("normal = %v, want (0, 0, -1)", tri.Normal)
	}
}

func TestTriangle_LocalNormalAt(t *testing.T) {
	tri := defaultTriangle()

	// The face normal is constant across the surface
	for _, p := range []core.Point{
		core.NewPoint(0, 0.5, 0),
		core.NewPoint(-0.5, 0.75, 0),
		core.NewPoint(0.5, 0.25, 0),
	} {
		if n := tri.LocalNormalAt(p, Intersection{}); !n.Equals(tri.Normal) {
			t.Errorf("normal at %v = %v, want %v", p, n, tri.Normal)
		}
	}
}

func TestTriangle_LocalIntersect(t *testing.T) {
	tri := defaultTriangle()
	node := NewNode(tri)

	misses := []struct {
		name string
		ray  core.Ray
	}{
		{"parallel ray", core.NewRay(core.NewPoint(0, -1, -2), core.NewVector(0, 1, 0))},
		{"beyond the p1-p3 edge", core.NewRay(core.NewPoint(1, 1, -2), core.NewVector(0, 0, 1))},
		{"beyond the p1-p2 edge", core.NewRay(core.NewPoint(-1, 1, -2), core.NewVector(0, 0, 1))},
		{"beyond the p2-p3 edge", core.NewRay(core.NewPoint(0, -1, -2), core.NewVector(0, 0, 1))},
	}
	for _, tt := range misses {
		t.Run(tt.name, func(t *testing.T) {
			if xs := tri.LocalIntersect(tt.ray, node); len(xs) != 0 {
				t.Errorf("expected miss, got %d intersections", len(xs))
			}
		})
	}

	t.Run("strike", func(t *testing.T) {
		r := core.NewRay(core.NewPoint(0, 0.5, -2), core.NewVector(0, 0, 1))
		xs := tri.LocalIntersect(r, node)
		if len(xs) != 1 || !core.ApproxEq(xs[0].T, 2) {
			t.Fatalf("expected single intersection at t=2, got %v", xs)
		}
	})
}
