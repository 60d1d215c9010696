package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Pattern maps a pattern-space point to a color. Every pattern owns its own
// pattern-to-shape transform, composed with the shape's transform chain when
// the pattern is evaluated against a world-space point.
type Pattern interface {
	Transform() core.Transform
	SetTransform(t core.Transform)
	PatternAt(p core.Point) core.Color
}

// PatternAtObject evaluates a pattern at a world-space point on an object:
// the point is first converted into the object's local space, then into
// pattern space
func PatternAtObject(pattern Pattern, object Object, worldPoint core.Point) core.Color {
	objectPoint := object.WorldToObject(worldPoint)
	patternPoint := pattern.Transform().Inv().MultiplyPoint(objectPoint)
	return pattern.PatternAt(patternPoint)
}
