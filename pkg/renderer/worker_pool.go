package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// RowTask represents one scanline rendering task for the worker pool
type RowTask struct {
	Row int
}

// RowResult reports a completed scanline
type RowResult struct {
	Row int
}

// RenderOptions configures a parallel render
type RenderOptions struct {
	// NumWorkers is the worker goroutine count; <= 0 selects NumCPU
	NumWorkers int
	// Progress, when set, is called after each completed scanline with the
	// number of rows finished so far and the total row count. Calls are
	// serialized on the collector goroutine.
	Progress func(rowsDone, totalRows int)
}

// WorkerPool renders scanlines in parallel. Each pixel's color computation
// is independent and read-only over the world, so workers share the world
// and write disjoint rows of the canvas; the result is bit-identical to the
// sequential render loop.
type WorkerPool struct {
	camera     *Camera
	world      *world.World
	canvas     *Canvas
	numWorkers int
	tasks      chan RowTask
	results    chan RowResult
	wg         sync.WaitGroup
}

// NewWorkerPool creates a pool rendering the given world through the camera
func NewWorkerPool(camera *Camera, w *world.World, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		camera:     camera,
		world:      w,
		canvas:     NewCanvas(camera.HSize(), camera.VSize()),
		numWorkers: numWorkers,
		tasks:      make(chan RowTask, camera.VSize()),
		results:    make(chan RowResult, camera.VSize()),
	}
}

// Render runs the pool to completion and returns the finished canvas
func (wp *WorkerPool) Render(progress func(rowsDone, totalRows int)) *Canvas {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.runWorker()
	}

	for row := 0; row < wp.camera.VSize(); row++ {
		wp.tasks <- RowTask{Row: row}
	}
	close(wp.tasks)

	go func() {
		wp.wg.Wait()
		close(wp.results)
	}()

	totalRows := wp.camera.VSize()
	rowsDone := 0
	for range wp.results {
		rowsDone++
		if progress != nil {
			progress(rowsDone, totalRows)
		}
	}

	return wp.canvas
}

// runWorker consumes row tasks until the task channel is drained
func (wp *WorkerPool) runWorker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		wp.camera.renderRow(wp.world, wp.canvas, task.Row)
		wp.results <- RowResult{Row: task.Row}
	}
}

// RenderParallel renders the world across a pool of workers. With opts left
// zero it uses one worker per CPU and reports no progress.
func (c *Camera) RenderParallel(w *world.World, opts RenderOptions) *Canvas {
	pool := NewWorkerPool(c, w, opts.NumWorkers)
	return pool.Render(opts.Progress)
}
