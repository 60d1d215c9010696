package renderer

import (
	"math"
	"sync"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func testCamera() *Camera {
	c := NewCamera(11, 11, math.Pi/2)
	c.SetTransform(core.ViewTransform(
		core.NewPoint(0, 0, -5),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 1, 0),
	))
	return c
}

func TestRenderParallel_MatchesSequential(t *testing.T) {
	w := defaultWorld()
	c := testCamera()

	sequential := c.Render(w)
	for _, workers := range []int{1, 2, 8} {
		parallel := c.RenderParallel(w, RenderOptions{NumWorkers: workers})
		for y := 0; y < c.VSize(); y++ {
			for x := 0; x < c.HSize(); x++ {
				if sequential.PixelAt(x, y) != parallel.PixelAt(x, y) {
					t.Fatalf("workers=%d: pixel (%d, %d) differs from sequential render", workers, x, y)
				}
			}
		}
	}
}

func TestRenderParallel_ReportsProgress(t *testing.T) {
	w := defaultWorld()
	c := testCamera()

	var mu sync.Mutex
	var calls []int
	c.RenderParallel(w, RenderOptions{
		NumWorkers: 4,
		Progress: func(rowsDone, totalRows int) {
			mu.Lock()
			defer mu.Unlock()
			if totalRows != c.VSize() {
				t.Errorf("totalRows = %d, want %d", totalRows, c.VSize())
			}
			calls = append(calls, rowsDone)
		},
	})

	if len(calls) != c.VSize() {
		t.Fatalf("progress called %d times, want %d", len(calls), c.VSize())
	}
	// rowsDone counts up monotonically on the collector goroutine
	for i, done := range calls {
		if done != i+1 {
			t.Fatalf("calls[%d] = %d, want %d", i, done, i+1)
		}
	}
}

func TestRenderParallel_DefaultWorkerCount(t *testing.T) {
	w := defaultWorld()
	c := testCamera()

	// Zero options select NumCPU workers and no progress callback
	canvas := c.RenderParallel(w, RenderOptions{})
	if canvas.Width() != c.HSize() || canvas.Height() != c.VSize() {
		t.Errorf("canvas = %dx%d, want %dx%d", canvas.Width(), canvas.Height(), c.HSize(), c.VSize())
	}
}
