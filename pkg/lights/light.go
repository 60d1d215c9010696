// Package lights provides the light sources a world can hold.
package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is a light source with a position and no area extent,
// so the shadows it casts are hard-edged
type PointLight struct {
	Position  core.Point
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
