// Package material provides surface appearance: Phong illumination
// parameters, reflection/refraction coefficients, and procedural patterns.
package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Object is the part of the scene graph a material needs to see: the
// world-to-local conversion used to evaluate patterns in shape space.
// Defined here (rather than importing the geometry package) to keep the
// dependency direction one-way.
type Object interface {
	WorldToObject(p core.Point) core.Point
}

// Material holds the surface appearance parameters of a shape
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // [0,1]: 0 = no reflection, 1 = perfect mirror
	Transparency    float64 // [0,1]: 0 = opaque
	RefractiveIndex float64
	Pattern         Pattern // optional; overrides Color when set
}

// Default returns the standard material: white, mostly diffuse, opaque
func Default() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
}

// Lighting evaluates the Phong model at a point. Ambient always contributes;
// diffuse and specular contribute only when the point is unshadowed and the
// light falls on the normal's side of the surface.
func (m Material) Lighting(object Object, light lights.PointLight, point core.Point, eyev, normalv core.Vector, inShadow bool) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = PatternAtObject(m.Pattern, object, point)
	}

	effectiveColor := color.Multiply(light.Intensity)
	ambient := effectiveColor.Scale(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Scale(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}

// Equals compares the scalar and color fields of two materials
func (m Material) Equals(other Material) bool {
	return m.Color.Equals(other.Color) &&
		core.ApproxEq(m.Ambient, other.Ambient) &&
		core.ApproxEq(m.Diffuse, other.Diffuse) &&
		core.ApproxEq(m.Specular, other.Specular) &&
		core.ApproxEq(m.Shininess, other.Shininess) &&
		core.ApproxEq(m.Reflective, other.Reflective) &&
		core.ApproxEq(m.Transparency, other.Transparency) &&
		core.ApproxEq(m.RefractiveIndex, other.RefractiveIndex)
}
