// Package server exposes the raytracer over HTTP: a health endpoint, scene
// discovery, and a websocket that streams per-pass preview frames while a
// render is in progress.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/snappy"
	"github.com/gorilla/websocket"

	"github.com/mcray/go-raytracer/pkg/renderer"
	"github.com/mcray/go-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	upgrader websocket.Upgrader
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Previews are served to local tooling; any origin may connect
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Samples int    `json:"samples"`
	Passes  int    `json:"passes"`
	Seed    int64  `json:"seed"`
}

// PassUpdate announces a completed pass. It is sent as a JSON text message,
// immediately followed by one binary message holding the snappy-compressed
// RGBA framebuffer (Width*Height*4 bytes once decompressed, top row first).
type PassUpdate struct {
	Pass            int   `json:"pass"`
	TotalPasses     int   `json:"totalPasses"`
	SamplesPerPixel int   `json:"samplesPerPixel"`
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	ElapsedMs       int64 `json:"elapsedMs"`
	IsComplete      bool  `json:"isComplete"`
}

// Handler returns the routing table for the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/ws/render", s.handleRenderSocket)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the available scenes and the default sampling settings
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	defaults := renderer.DefaultSamplingConfig()
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"scenes": scene.Names(),
		"defaults": map[string]interface{}{
			"samplesPerPixel": defaults.SamplesPerPixel,
			"maxDepth":        defaults.MaxDepth,
			"passes":          defaults.Passes,
		},
	})
}

// handleRenderSocket upgrades to a websocket and streams preview frames as
// the render progresses
func (s *Server) handleRenderSocket(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	aspectRatio := float64(req.Width) / float64(req.Height)
	sceneObj, err := scene.Build(req.Scene, aspectRatio)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	config := renderer.DefaultSamplingConfig()
	config.SamplesPerPixel = req.Samples
	config.Passes = req.Passes
	config.Seed = req.Seed

	raytracer := renderer.NewRaytracer(sceneObj, req.Width, req.Height, config)
	raytracer.SetLogger(log.Default())

	sendErr := func() error {
		var failed error
		raytracer.Render(func(stats renderer.RenderStats, fb *renderer.Framebuffer) {
			if failed != nil {
				return
			}
			failed = s.sendPass(conn, req, stats, fb)
		})
		return failed
	}()
	if sendErr != nil {
		log.Printf("Preview stream ended early: %v", sendErr)
		return
	}

	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "render complete"),
		time.Now().Add(time.Second))
}

// sendPass sends one pass update: a JSON header followed by the compressed
// framebuffer
func (s *Server) sendPass(conn *websocket.Conn, req *RenderRequest, stats renderer.RenderStats, fb *renderer.Framebuffer) error {
	update := PassUpdate{
		Pass:            stats.Pass,
		TotalPasses:     stats.TotalPasses,
		SamplesPerPixel: stats.SamplesPerPixel,
		Width:           fb.Width(),
		Height:          fb.Height(),
		ElapsedMs:       stats.Elapsed.Milliseconds(),
		IsComplete:      stats.Pass == stats.TotalPasses,
	}

	header, err := json.Marshal(update)
	if err != nil {
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, header); err != nil {
		return err
	}

	compressed := snappy.Encode(nil, fb.RawRGBA())
	return conn.WriteMessage(websocket.BinaryMessage, compressed)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if name := r.URL.Query().Get("scene"); name != "" {
		req.Scene = name
	} else {
		req.Scene = "cornell"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 400, 100, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 400, 100, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(r.URL.Query(), "samples", 50, 1, 10000); err != nil {
		return nil, err
	}
	if req.Passes, err = parseIntParam(r.URL.Query(), "passes", 8, 1, 10000); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(r.URL.Query(), "seed", 42, 0, 1<<30)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	if req.Width*req.Height > 800*600 && req.Samples > 100 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
