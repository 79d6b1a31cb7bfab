package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/log"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
)

var logger = log.New("server")

const defaultScene = "three-spheres"

// Server serves rendered frames over HTTP
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest holds the parsed query parameters of a render request
type RenderRequest struct {
	Scene           string `json:"scene"`
	Width           int    `json:"width"`           // 0 keeps the scene default
	SamplesPerPixel int    `json:"samplesPerPixel"` // 0 keeps the scene default
	MaxDepth        int    `json:"maxDepth"`        // 0 keeps the scene default
	Seed            int64  `json:"seed"`
	Seeded          bool   `json:"seeded"`
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/frame", s.handleFrame)
	return logRequests(mux)
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Infof("%s %s in %s", r.Method, r.URL.RequestURI(), time.Since(start))
	})
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the scenes a client can request
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.List())
}

// handleRender renders a frame and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	frame, ok := s.renderFrame(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := loaders.Encode(&buf, frame.image, loaders.FormatPNG); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	frame.writeHeaders(w)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleFrame renders a frame and returns the raw RGBA bytes, row-major from the top-left pixel
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	frame, ok := s.renderFrame(w, r)
	if !ok {
		return
	}

	frame.writeHeaders(w)
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(frame.image.Pix)))
	w.WriteHeader(http.StatusOK)
	w.Write(frame.image.Pix)
}

type renderedFrame struct {
	image *image.RGBA
	stats renderer.RenderStats
}

func (f renderedFrame) writeHeaders(w http.ResponseWriter) {
	w.Header().Set("X-Frame-Width", strconv.Itoa(f.stats.Width))
	w.Header().Set("X-Frame-Height", strconv.Itoa(f.stats.Height))
	w.Header().Set("X-Render-Samples", strconv.Itoa(f.stats.TotalSamples))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(f.stats.Duration.Milliseconds(), 10))
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// renderFrame parses the request, builds the scene and renders it. On failure the
// error response has already been written.
func (s *Server) renderFrame(w http.ResponseWriter, r *http.Request) (renderedFrame, bool) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return renderedFrame{}, false
	}

	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return renderedFrame{}, false
	}

	sc, err := scene.Create(req.Scene, scene.Options{
		Seed:            req.Seed,
		ImageWidth:      req.Width,
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return renderedFrame{}, false
	}

	var opts []renderer.Option
	if req.Seeded {
		opts = append(opts, renderer.WithSeed(req.Seed))
	}
	rd, err := sc.NewRenderer(opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return renderedFrame{}, false
	}

	if rd.Width()*rd.Height() > 800*600 && rd.Camera().SamplesPerPixel() > 100 {
		logger.Warningf("large image with high sample count may render slowly: %dx%d at %d spp",
			rd.Width(), rd.Height(), rd.Camera().SamplesPerPixel())
	}

	img, stats := rd.RenderWithStats(sc.World, true)
	return renderedFrame{image: img, stats: stats}, true
}

// parseRenderRequest parses and validates the render query parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: defaultScene}
	if name := values.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 16, 2000); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(values, "spp", 0, 1, 10000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", 0, 1, 500); err != nil {
		return nil, err
	}
	if value := values.Get("seed"); value != "" {
		if req.Seed, err = strconv.ParseInt(value, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %s", value)
		}
		req.Seeded = true
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

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
