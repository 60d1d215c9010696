package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// StripePattern alternates between two colors along the x axis in unit-wide
// bands
type StripePattern struct {
	A, B      core.Color
	transform core.Transform
}

// NewStripePattern creates a stripe pattern with the identity transform
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{A: a, B: b, transform: core.Identity()}
}

// Transform returns the pattern-to-shape transform
func (p *StripePattern) Transform() core.Transform { return p.transform }

// SetTransform replaces the pattern-to-shape transform
func (p *StripePattern) SetTransform(t core.Transform) { p.transform = t }

// PatternAt alternates on the integer part of x
func (p *StripePattern) PatternAt(point core.Point) core.Color {
	if int(math.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from color A to color B over x in [0,1)
type GradientPattern struct {
	A, B      core.Color
	transform core.Transform
}

// NewGradientPattern creates a gradient pattern with the identity transform
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{A: a, B: b, transform: core.Identity()}
}

// Transform returns the pattern-to-shape transform
func (p *GradientPattern) Transform() core.Transform { return p.transform }

// SetTransform replaces the pattern-to-shape transform
func (p *GradientPattern) SetTransform(t core.Transform) { p.transform = t }

// PatternAt interpolates between A and B using the fractional part of x
func (p *GradientPattern) PatternAt(point core.Point) core.Color {
	distance := p.B.Subtract(p.A)
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(distance.Scale(fraction))
}

// RingPattern alternates two colors in concentric rings around the y axis
type RingPattern struct {
	A, B      core.Color
	transform core.Transform
}

// NewRingPattern creates a ring pattern with the identity transform
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{A: a, B: b, transform: core.Identity()}
}

// Transform returns the pattern-to-shape transform
func (p *RingPattern) Transform() core.Transform { return p.transform }

// SetTransform replaces the pattern-to-shape transform
func (p *RingPattern) SetTransform(t core.Transform) { p.transform = t }

// PatternAt alternates on the integer part of the radial distance in xz
func (p *RingPattern) PatternAt(point core.Point) core.Color {
	if int(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z)))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckersPattern tiles space with unit cubes of alternating color
type CheckersPattern struct {
	A, B      core.Color
	transform core.Transform
}

// NewCheckersPattern creates a checkers pattern with the identity transform
func NewCheckersPattern(a, b core.Color) *CheckersPattern {
	return &CheckersPattern{A: a, B: b, transform: core.Identity()}
}

// Transform returns the pattern-to-shape transform
func (p *CheckersPattern) Transform() core.Transform { return p.transform }

// SetTransform replaces the pattern-to-shape transform
func (p *CheckersPattern) SetTransform(t core.Transform) { p.transform = t }

// PatternAt alternates on the parity of the summed integer coordinates
func (p *CheckersPattern) PatternAt(point core.Point) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if int(sum)%2 == 0 {
		return p.A
	}
	return p.B
}
