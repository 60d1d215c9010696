// Package renderer provides the camera, the canvas render target, and the
// sequential and parallel render loops.
package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Camera generates one primary ray per pixel and assembles the output grid.
// Half extents and the per-pixel size are derived once at construction, not
// per ray.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64
	transform   core.Transform
	halfWidth   float64
	halfHeight  float64
	pixelSize   float64
}

// NewCamera creates a camera for a hsize x vsize image with the given
// field of view in radians
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   core.Identity(),
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelSize:   (halfWidth * 2) / float64(hsize),
	}
}

// HSize returns the image width in pixels
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the image height in pixels
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// PixelSize returns the world-space size of one pixel on the view plane
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the camera's view transform
func (c *Camera) Transform() core.Transform { return c.transform }

// SetTransform replaces the camera's view transform, usually with
// core.ViewTransform
func (c *Camera) SetTransform(t core.Transform) { c.transform = t }

// RayForPixel returns the primary ray through the center of pixel (px, py).
// The pixel center is mapped onto the view plane at camera-local z=-1, then
// both it and the camera origin are carried into world space.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inv := c.transform.Inv()
	pixel := inv.MultiplyPoint(core.NewPoint(worldX, worldY, -1))
	origin := inv.MultiplyPoint(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render traces every pixel sequentially and returns the finished canvas.
// The world is only read, never mutated, so repeated renders of the same
// world and camera produce identical canvases.
func (c *Camera) Render(w *world.World) *Canvas {
	canvas := NewCanvas(c.hsize, c.vsize)
	for py := 0; py < c.vsize; py++ {
		c.renderRow(w, canvas, py)
	}
	return canvas
}

// renderRow traces one scanline into the canvas
func (c *Camera) renderRow(w *world.World, canvas *Canvas, py int) {
	for px := 0; px < c.hsize; px++ {
		ray := c.RayForPixel(px, py)
		canvas.WritePixel(px, py, w.ColorAt(ray, world.DefaultMaxDepth))
	}
}
