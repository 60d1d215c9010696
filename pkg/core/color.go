package core

// Color represents an RGB color with unbounded float components.
// Values outside [0,1] are legal during shading and are clamped only at
// serialization time.
type Color struct {
	R, G, B float64
}

// Named colors used as defaults throughout the tracer
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Multiply returns the component-wise (Schur) product of two colors,
// used for blending a surface color with a light's intensity
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors are equal within Epsilon
func (c Color) Equals(other Color) bool {
	return ApproxEq(c.R, other.R) && ApproxEq(c.G, other.G) && ApproxEq(c.B, other.B)
}
