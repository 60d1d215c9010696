package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is the render target: a width x height grid of colors with the
// origin at the top-left, created pre-filled with black
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) checkBounds(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		panic(fmt.Sprintf("renderer: pixel (%d, %d) outside canvas %dx%d", x, y, c.width, c.height))
	}
}

// PixelAt returns the color at (x, y). Out-of-range coordinates are a
// programming error in the render loop and panic.
func (c *Canvas) PixelAt(x, y int) core.Color {
	c.checkBounds(x, y)
	return c.pixels[y*c.width+x]
}

// WritePixel sets the color at (x, y)
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	c.checkBounds(x, y)
	c.pixels[y*c.width+x] = col
}

// clampChannel converts a float color channel to the [0,255] integer range
func clampChannel(v float64) int {
	scaled := int(math.Round(v * 255))
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return scaled
}

// WritePPM serializes the canvas in plain-text PPM: the P3 header followed
// by one "R G B" line per pixel in row-major order, ending with a newline
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			_, err := fmt.Fprintf(w, "%d %d %d\n",
				clampChannel(p.R), clampChannel(p.G), clampChannel(p.B))
			if err != nil {
				return fmt.Errorf("failed to write PPM pixel (%d, %d): %w", x, y, err)
			}
		}
	}
	return nil
}

// ToImage converts the canvas to a standard image for PNG encoding or
// serving over HTTP
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			img.Set(x, y, color.RGBA{
				R: uint8(clampChannel(p.R)),
				G: uint8(clampChannel(p.G)),
				B: uint8(clampChannel(p.B)),
				A: 255,
			})
		}
	}
	return img
}
