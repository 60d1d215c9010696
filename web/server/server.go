// Package server exposes the raytracer over HTTP: a JSON scene listing, a
// one-shot PNG render endpoint, and a websocket that streams render progress.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	upgrader websocket.Upgrader
}

// NewServer creates a new web server listening on the given port
func NewServer(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g. "spheres")
	Width   int    `json:"width"`   // Image width
	Height  int    `json:"height"`  // Image height
	Workers int    `json:"workers"` // Worker count, 0 = one per CPU
}

// ProgressUpdate is one websocket progress message; the final update carries
// the finished image and statistics
type ProgressUpdate struct {
	RowsDone   int    `json:"rowsDone"`
	TotalRows  int    `json:"totalRows"`
	IsComplete bool   `json:"isComplete"`
	ImageData  string `json:"imageData,omitempty"` // Base64 encoded PNG
	Stats      *Stats `json:"stats,omitempty"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels     int     `json:"totalPixels"`
	PrimaryRays     int     `json:"primaryRays"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
}

// Start registers the handlers and blocks serving HTTP
func (s *Server) Start() error {
	http.HandleFunc("/", s.handleIndex)
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/api/scenes", s.handleScenes)
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/ws/render", s.handleRenderWS)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the available scenes with their descriptions
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	type sceneInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	descriptions := scene.Descriptions()
	scenes := make([]sceneInfo, 0, len(descriptions))
	for _, name := range scene.Names() {
		scenes = append(scenes, sceneInfo{Name: name, Description: descriptions[name]})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scenes)
}

// handleRender renders a scene synchronously and returns the PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sc, err := scene.Get(req.Scene, req.Width, req.Height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	canvas := sc.Camera.RenderParallel(sc.World, renderer.RenderOptions{NumWorkers: req.Workers})

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, canvas.ToImage()); err != nil {
		log.Printf("failed to encode render response: %v", err)
	}
}

// handleRenderWS streams scanline progress over a websocket, finishing with
// the complete image
func (s *Server) handleRenderWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.sendWSError(conn, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if err := validateRenderRequest(&req); err != nil {
		s.sendWSError(conn, err.Error())
		return
	}

	sc, err := scene.Get(req.Scene, req.Width, req.Height)
	if err != nil {
		s.sendWSError(conn, err.Error())
		return
	}

	start := time.Now()
	canvas := sc.Camera.RenderParallel(sc.World, renderer.RenderOptions{
		NumWorkers: req.Workers,
		Progress: func(rowsDone, totalRows int) {
			// Progress messages are best-effort; a failed write just means
			// the client went away and the final send will fail too
			conn.WriteJSON(ProgressUpdate{
				RowsDone:  rowsDone,
				TotalRows: totalRows,
				ElapsedMs: time.Since(start).Milliseconds(),
			})
		},
	})

	imageData, err := imageToBase64PNG(canvas)
	if err != nil {
		s.sendWSError(conn, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	stats := renderer.NewRenderStats(canvas, time.Since(start))
	final := ProgressUpdate{
		RowsDone:   canvas.Height(),
		TotalRows:  canvas.Height(),
		IsComplete: true,
		ImageData:  imageData,
		Stats: &Stats{
			TotalPixels:     stats.TotalPixels,
			PrimaryRays:     stats.PrimaryRays,
			PixelsPerSecond: stats.PixelsPerSecond(),
		},
		ElapsedMs: stats.Elapsed.Milliseconds(),
	}
	if err := conn.WriteJSON(final); err != nil {
		log.Printf("failed to send final render update: %v", err)
	}
}

func (s *Server) sendWSError(conn *websocket.Conn, msg string) {
	conn.WriteJSON(map[string]string{"error": msg})
}

// parseRenderRequest reads render parameters from URL query values,
// applying defaults for everything but the scene name
func parseRenderRequest(q url.Values) (RenderRequest, error) {
	req := RenderRequest{
		Scene:  q.Get("scene"),
		Width:  400,
		Height: 300,
	}

	for key, dst := range map[string]*int{
		"width":   &req.Width,
		"height":  &req.Height,
		"workers": &req.Workers,
	} {
		if v := q.Get(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return req, fmt.Errorf("bad %s %q", key, v)
			}
			*dst = n
		}
	}

	if err := validateRenderRequest(&req); err != nil {
		return req, err
	}
	return req, nil
}

// validateRenderRequest enforces limits and defaults shared by the HTTP and
// websocket entry points
func validateRenderRequest(req *RenderRequest) error {
	if req.Scene == "" {
		return fmt.Errorf("scene is required")
	}
	if req.Width <= 0 || req.Height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	// Cap the image size so a single request can't pin the server
	const maxPixels = 4096 * 4096
	if req.Width*req.Height > maxPixels {
		return fmt.Errorf("image size %dx%d exceeds the limit", req.Width, req.Height)
	}
	return nil
}

// imageToBase64PNG encodes the canvas as a base64 PNG string for embedding
// in a JSON message
func imageToBase64PNG(canvas *renderer.Canvas) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.ToImage()); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
