package material_test

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestStripePattern(t *testing.T) {
	p := material.NewStripePattern(core.White, core.Black)

	t.Run("constant in y and z", func(t *testing.T) {
		for _, pt := range []core.Point{
			core.NewPoint(0, 0, 0),
			core.NewPoint(0, 1, 0),
			core.NewPoint(0, 2, 0),
			core.NewPoint(0, 0, 1),
			core.NewPoint(0, 0, 2),
		} {
			if !p.PatternAt(pt).Equals(core.White) {
				t.Errorf("stripe at %v should be white", pt)
			}
		}
	})

	t.Run("alternates in x", func(t *testing.T) {
		cases := []struct {
			pt       core.Point
			expected core.Color
		}{
			{core.NewPoint(0, 0, 0), core.White},
			{core.NewPoint(0.9, 0, 0), core.White},
			{core.NewPoint(1, 0, 0), core.Black},
			{core.NewPoint(-0.1, 0, 0), core.Black},
			{core.NewPoint(-1, 0, 0), core.Black},
			{core.NewPoint(-1.1, 0, 0), core.White},
		}
		for _, tt := range cases {
			if got := p.PatternAt(tt.pt); !got.Equals(tt.expected) {
				t.Errorf("stripe at %v = %v, want %v", tt.pt, got, tt.expected)
			}
		}
	})
}

func TestGradientPattern(t *testing.T) {
	p := material.NewGradientPattern(core.White, core.Black)

	cases := []struct {
		pt       core.Point
		expected core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{core.NewPoint(0.5, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
		{core.NewPoint(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},
	}
	for _, tt := range cases {
		if got := p.PatternAt(tt.pt); !got.Equals(tt.expected) {
			t.Errorf("gradient at %v = %v, want %v", tt.pt, got, tt.expected)
		}
	}
}

func TestRingPattern(t *testing.T) {
	p := material.NewRingPattern(core.White, core.Black)

	cases := []struct {
		pt       core.Point
		expected core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(1, 0, 0), core.Black},
		{core.NewPoint(0, 0, 1), core.Black},
		// Just past sqrt(2)/2 in both x and z
		{core.NewPoint(0.708, 0, 0.708), core.Black},
	}
	for _, tt := range cases {
		if got := p.PatternAt(tt.pt); !got.Equals(tt.expected) {
			t.Errorf("ring at %v = %v, want %v", tt.pt, got, tt.expected)
		}
	}
}

func TestCheckersPattern(t *testing.T) {
	p := material.NewCheckersPattern(core.White, core.Black)

	cases := []struct {
		pt       core.Point
		expected core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(0.99, 0, 0), core.White},
		{core.NewPoint(1.01, 0, 0), core.Black},
		{core.NewPoint(0, 0.99, 0), core.White},
		{core.NewPoint(0, 1.01, 0), core.Black},
		{core.NewPoint(0, 0, 0.99), core.White},
		{core.NewPoint(0, 0, 1.01), core.Black},
	}
	for _, tt := range cases {
		if got := p.PatternAt(tt.pt); !got.Equals(tt.expected) {
			t.Errorf("checkers at %v = %v, want %v", tt.pt, got, tt.expected)
		}
	}
}

func TestPatternAtObject(t *testing.T) {
	t.Run("object transform", func(t *testing.T) {
		object := geometry.NewNode(geometry.NewSphere())
		object.SetTransform(core.Scaling(2, 2, 2))
		p := material.NewStripePattern(core.White, core.Black)

		got := material.PatternAtObject(p, object, core.NewPoint(1.5, 0, 0))
		if !got.Equals(core.White) {
			t.Errorf("got %v, want white", got)
		}
	})

	t.Run("pattern transform", func(t *testing.T) {
		object := geometry.NewNode(geometry.NewSphere())
		p := material.NewStripePattern(core.White, core.Black)
		p.SetTransform(core.Scaling(2, 2, 2))

		got := material.PatternAtObject(p, object, core.NewPoint(1.5, 0, 0))
		if !got.Equals(core.White) {
			t.Errorf("got %v, want white", got)
		}
	})

	t.Run("both transforms", func(t *testing.T) {
		object := geometry.NewNode(geometry.NewSphere())
		object.SetTransform(core.Scaling(2, 2, 2))
		p := material.NewStripePattern(core.White, core.Black)
		p.SetTransform(core.Translation(0.5, 0, 0))

		got := material.PatternAtObject(p, object, core.NewPoint(2.5, 0, 0))
		if !got.Equals(core.White) {
			t.Errorf("got %v, want white", got)
		}
	})
}
