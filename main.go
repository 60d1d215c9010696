// Command whitted renders scenes with a Whitted-style raytracer: built-in
// demo scenes, YAML scene files, and Wavefront OBJ meshes, written out as
// PNG or PPM. The serve subcommand exposes the same renderer over HTTP.
package main

import (
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/world"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "whitted",
		Short: "A Whitted-style raytracer",
	}
	root.AddCommand(newRenderCmd(), newServeCmd(), newScenesCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var (
		sceneName string
		sceneFile string
		objFile   string
		width     int
		height    int
		fov       float64
		out       string
		format    string
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to an image file",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, camera, err := buildScene(sceneName, sceneFile, objFile, width, height, fov)
			if err != nil {
				return err
			}

			log.Printf("Rendering %dx%d with %s", camera.HSize(), camera.VSize(), workerLabel(workers))
			start := time.Now()
			canvas := camera.RenderParallel(w, renderer.RenderOptions{
				NumWorkers: workers,
				Progress:   logProgress(camera.VSize()),
			})

			stats := renderer.NewRenderStats(canvas, time.Since(start))
			log.Printf("Rendered %d pixels in %v (%.0f px/s)",
				stats.TotalPixels, stats.Elapsed.Round(time.Millisecond), stats.PixelsPerSecond())

			if err := writeCanvas(canvas, out, format); err != nil {
				return err
			}
			log.Printf("Wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&sceneName, "scene", "spheres", "built-in scene to render")
	cmd.Flags().StringVar(&sceneFile, "scene-file", "", "YAML scene file (overrides --scene)")
	cmd.Flags().StringVar(&objFile, "obj", "", "Wavefront OBJ mesh to render (overrides --scene)")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "image height in pixels")
	cmd.Flags().Float64Var(&fov, "fov", math.Pi/3, "field of view in radians (OBJ scenes)")
	cmd.Flags().StringVar(&out, "out", "render.png", "output file path")
	cmd.Flags().StringVar(&format, "format", "", "output format, png or ppm (default: from extension)")
	cmd.Flags().IntVar(&workers, "workers", 0, "render workers (0 = one per CPU)")
	return cmd
}

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the raytracer over HTTP with a web viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.NewServer(port).Start()
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "HTTP port")
	return cmd
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Run: func(cmd *cobra.Command, args []string) {
			descriptions := scene.Descriptions()
			for _, name := range scene.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, descriptions[name])
			}
		},
	}
}

// buildScene resolves the three scene sources in precedence order:
// an explicit YAML file, an OBJ mesh, then a built-in scene name
func buildScene(sceneName, sceneFile, objFile string, width, height int, fov float64) (*world.World, *renderer.Camera, error) {
	switch {
	case sceneFile != "":
		return loaders.LoadScene(sceneFile)
	case objFile != "":
		return buildMeshScene(objFile, width, height, fov)
	default:
		sc, err := scene.Get(sceneName, width, height)
		if err != nil {
			return nil, nil, err
		}
		return sc.World, sc.Camera, nil
	}
}

// buildMeshScene frames a parsed OBJ mesh on a plain floor with a single
// light
func buildMeshScene(path string, width, height int, fov float64) (*world.World, *renderer.Camera, error) {
	parsed, err := loaders.ParseOBJFile(path)
	if err != nil {
		return nil, nil, err
	}

	w := world.New()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	floor := geometry.NewNode(geometry.NewPlane())
	floor.Material().Specular = 0
	w.AddNode(floor)

	w.AddNode(parsed.Group())

	camera := renderer.NewCamera(width, height, fov)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))
	return w, camera, nil
}

// writeCanvas saves the canvas as PNG or PPM, inferring the format from the
// file extension when not given explicitly
func writeCanvas(canvas *renderer.Canvas, path, format string) error {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ppm":
			format = "ppm"
		default:
			format = "png"
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch format {
	case "png":
		if err := png.Encode(file, canvas.ToImage()); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
	case "ppm":
		if err := canvas.WritePPM(file); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want png or ppm)", format)
	}
	return nil
}

// logProgress reports render progress every 10% of rows
func logProgress(totalRows int) func(rowsDone, totalRows int) {
	step := totalRows / 10
	if step == 0 {
		step = 1
	}
	return func(rowsDone, total int) {
		if rowsDone%step == 0 || rowsDone == total {
			log.Printf("  %3d%% (%d/%d rows)", rowsDone*100/total, rowsDone, total)
		}
	}
}

func workerLabel(workers int) string {
	if workers <= 0 {
		return "one worker per CPU"
	}
	return fmt.Sprintf("%d workers", workers)
}
