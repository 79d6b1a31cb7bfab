package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/log"
	"github.com/df07/go-raytracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	World       *geometry.World // Finalized world holding a single BVH
	Camera      *renderer.Camera
	AspectRatio float64
	ImageWidth  int
	BVHStats    geometry.BVHStats
}

// Options override scene defaults. Zero values keep the scene's own settings.
type Options struct {
	Seed            int64  // Seed for random scene layout and BVH axis choice
	ImageWidth      int    // Output width in pixels
	SamplesPerPixel int    // Camera rays per pixel
	MaxDepth        int    // Maximum bounces
	TexturePath     string // Image file for textured scenes
}

// SceneInfo describes a registered scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

// builder creates a scene's world and default camera configuration
type builder struct {
	info        SceneInfo
	aspectRatio float64
	imageWidth  int
	camera      func() renderer.CameraConfig
	world       func(opts Options, sampler core.Sampler) (*geometry.World, error)
}

var registry = map[string]builder{}

func register(b builder) {
	registry[b.info.ID] = b
}

// List returns every registered scene sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, b := range registry {
		infos = append(infos, b.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Create builds the named scene: it lays out the world, moves it into a BVH and
// validates the camera
func Create(name string, opts Options) (*Scene, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}

	cameraConfig := mergeCameraConfig(b.camera(), opts)
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %s: invalid camera: %w", name, err)
	}

	sampler := core.NewSeededSampler(opts.Seed)
	world, err := b.world(opts, sampler)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	objects := world.Len()
	finalized := world.Finalize(sampler)

	s := &Scene{
		Name:        name,
		World:       finalized,
		Camera:      camera,
		AspectRatio: b.aspectRatio,
		ImageWidth:  b.imageWidth,
	}
	if opts.ImageWidth > 0 {
		s.ImageWidth = opts.ImageWidth
	}
	if finalized.Len() == 1 {
		if bvh, ok := finalized.Objects()[0].(*geometry.BVHNode); ok {
			s.BVHStats = bvh.Stats()
		}
	}

	logger.Debugf("built scene %s: %d objects, %d BVH nodes, max depth %d",
		name, objects, s.BVHStats.TotalNodes, s.BVHStats.MaxDepth)

	return s, nil
}

// NewRenderer creates a renderer for the scene at its configured size
func (s *Scene) NewRenderer(opts ...renderer.Option) (*renderer.Renderer, error) {
	return renderer.NewRenderer(s.AspectRatio, s.ImageWidth, s.Camera, opts...)
}

// mergeCameraConfig applies the non-zero sampling overrides to a scene's camera
func mergeCameraConfig(base renderer.CameraConfig, opts Options) renderer.CameraConfig {
	if opts.SamplesPerPixel != 0 {
		base.SamplesPerPixel = opts.SamplesPerPixel
	}
	if opts.MaxDepth != 0 {
		base.MaxDepth = opts.MaxDepth
	}
	return base
}
