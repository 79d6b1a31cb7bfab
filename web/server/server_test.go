package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/df07/go-raytracer/pkg/scene"
)

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestScenes(t *testing.T) {
	rec := get(t, "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var infos []scene.SceneInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(infos) != len(scene.List()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.List()), len(infos))
	}
}

func TestRenderPNG(t *testing.T) {
	rec := get(t, "/api/render?scene=three-spheres&width=32&spp=1&depth=2&seed=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("Body is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 18 {
		t.Errorf("Expected 32x18, got %v", img.Bounds())
	}
	if rec.Header().Get("X-Render-Samples") != strconv.Itoa(32*18) {
		t.Errorf("Expected %d samples, got %q", 32*18, rec.Header().Get("X-Render-Samples"))
	}
}

func TestFrameBytes(t *testing.T) {
	target := "/api/frame?scene=three-spheres&width=32&spp=1&depth=2&seed=3"
	rec := get(t, target)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	width, _ := strconv.Atoi(rec.Header().Get("X-Frame-Width"))
	height, _ := strconv.Atoi(rec.Header().Get("X-Frame-Height"))
	if width != 32 || height != 18 {
		t.Fatalf("Expected 32x18 headers, got %dx%d", width, height)
	}
	pix := rec.Body.Bytes()
	if len(pix) != width*height*4 {
		t.Fatalf("Expected %d bytes, got %d", width*height*4, len(pix))
	}
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 255 {
			t.Fatalf("Expected opaque alpha at byte %d, got %d", i, pix[i])
		}
	}

	again := get(t, target)
	if !bytes.Equal(pix, again.Body.Bytes()) {
		t.Error("Seeded frames should be identical")
	}
}

func TestRenderRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		method string
		query  url.Values
		status int
	}{
		{"unknown scene", http.MethodGet, url.Values{"scene": {"nope"}}, http.StatusBadRequest},
		{"width not a number", http.MethodGet, url.Values{"width": {"wide"}}, http.StatusBadRequest},
		{"width too small", http.MethodGet, url.Values{"width": {"4"}}, http.StatusBadRequest},
		{"spp too large", http.MethodGet, url.Values{"spp": {"100000"}}, http.StatusBadRequest},
		{"bad seed", http.MethodGet, url.Values{"seed": {"x"}}, http.StatusBadRequest},
		{"post", http.MethodPost, url.Values{}, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/api/render?"+tt.query.Encode(), nil)
			NewServer(0).Handler().ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("Expected %d, got %d", tt.status, rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("Expected JSON error body: %v", err)
			}
			if body["error"] == "" {
				t.Error("Expected an error message")
			}
		})
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"missing uses default", "", 7, false},
		{"in range", "10", 10, false},
		{"lower bound", "1", 1, false},
		{"upper bound", "100", 100, false},
		{"below", "0", 0, true},
		{"above", "101", 0, true},
		{"garbage", "1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			if tt.value != "" {
				values.Set("n", tt.value)
			}
			got, err := parseIntParam(values, "n", 7, 1, 100)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
