package renderer

import "time"

// RenderStats summarizes a completed render for CLI and web reporting
type RenderStats struct {
	Width       int
	Height      int
	TotalPixels int
	PrimaryRays int
	Elapsed     time.Duration
}

// PixelsPerSecond returns the render throughput, or 0 for an instant render
func (s RenderStats) PixelsPerSecond() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / secs
}

// NewRenderStats computes stats for a canvas rendered in the given duration.
// One primary ray is cast per pixel.
func NewRenderStats(canvas *Canvas, elapsed time.Duration) RenderStats {
	pixels := canvas.Width() * canvas.Height()
	return RenderStats{
		Width:       canvas.Width(),
		Height:      canvas.Height(),
		TotalPixels: pixels,
		PrimaryRays: pixels,
		Elapsed:     elapsed,
	}
}
