package renderer

import (
	"errors"
	"fmt"
	"image"
	"math"
	"runtime"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/log"
	"github.com/df07/go-raytracer/pkg/material"
)

// DefaultTileSize is the side length of render tiles in pixels
const DefaultTileSize = 16

// hitEpsilon keeps scattered rays from re-hitting the surface they left
const hitEpsilon = 0.001

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
	black   = core.Vec3{}
)

// Option configures a Renderer
type Option func(*Renderer)

// WithWorkers sets the number of parallel workers. Zero or less means one per CPU.
func WithWorkers(workers int) Option {
	return func(r *Renderer) {
		r.workers = workers
	}
}

// WithTileSize sets the side length of the tiles handed to workers
func WithTileSize(tileSize int) Option {
	return func(r *Renderer) {
		if tileSize > 0 {
			r.tileSize = tileSize
		}
	}
}

// WithSeed makes renders reproducible. Every tile samples from its own generator
// seeded with seed + tile ID, so serial and parallel renders produce the same image.
func WithSeed(seed int64) Option {
	return func(r *Renderer) {
		r.seed = seed
		r.seeded = true
	}
}

// Renderer turns a world into an image through a camera. The viewport is derived once
// at construction; render calls only read the renderer and may run concurrently.
type Renderer struct {
	camera *Camera
	width  int
	height int

	upperLeftPixel core.Vec3 // World position of the center of pixel (0,0)
	pixelDeltaU    core.Vec3 // Offset to the next pixel to the right
	pixelDeltaV    core.Vec3 // Offset to the next pixel below

	workers  int
	tileSize int
	seed     int64
	seeded   bool

	logger log.Logger
}

// NewRenderer derives the viewport for an image of the given width and aspect ratio
func NewRenderer(aspectRatio float64, imageWidth int, camera *Camera, opts ...Option) (*Renderer, error) {
	if !(aspectRatio > 0) || math.IsInf(aspectRatio, 1) {
		return nil, fmt.Errorf("got %g: %w", aspectRatio, ErrAspectRatio)
	}
	if imageWidth <= 0 {
		return nil, fmt.Errorf("width %d: %w", imageWidth, ErrImageSize)
	}
	imageHeight := int(float64(imageWidth) / aspectRatio)
	if imageHeight <= 0 {
		return nil, fmt.Errorf("width %d at aspect %g gives height %d: %w", imageWidth, aspectRatio, imageHeight, ErrImageSize)
	}
	if camera == nil {
		return nil, errors.New("renderer needs a camera")
	}

	r := &Renderer{
		camera:   camera,
		width:    imageWidth,
		height:   imageHeight,
		workers:  runtime.NumCPU(),
		tileSize: DefaultTileSize,
		logger:   log.New("renderer"),
	}
	for _, opt := range opts {
		opt(r)
	}

	config := camera.Config()
	u, v, w := camera.Basis()

	// Viewport dimensions on the focus plane, using the real pixel ratio
	h := math.Tan(degreesToRadians(config.VFov) / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(imageWidth) / float64(imageHeight)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight) // Image rows go down

	r.pixelDeltaU = viewportU.Multiply(1.0 / float64(imageWidth))
	r.pixelDeltaV = viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := camera.Center().
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	r.upperLeftPixel = viewportUpperLeft.Add(r.pixelDeltaU.Add(r.pixelDeltaV).Multiply(0.5))

	return r, nil
}

// Width returns the image width in pixels
func (r *Renderer) Width() int {
	return r.width
}

// Height returns the image height in pixels
func (r *Renderer) Height() int {
	return r.height
}

// Camera returns the camera the renderer was built with
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// PixelCenter returns the world position of the center of pixel (x, y)
func (r *Renderer) PixelCenter(x, y int) core.Vec3 {
	return r.upperLeftPixel.
		Add(r.pixelDeltaU.Multiply(float64(x))).
		Add(r.pixelDeltaV.Multiply(float64(y)))
}

// GetRay returns a camera ray through a random point of pixel (x, y), leaving the lens
// at a random point of the defocus disk at a random time in [0,1)
func (r *Renderer) GetRay(x, y int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := r.PixelCenter(x, y).
		Add(r.pixelDeltaU.Multiply(offset.X - 0.5)).
		Add(r.pixelDeltaV.Multiply(offset.Y - 0.5))

	origin := r.camera.DefocusDiskSample(sampler)
	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// RayColor returns the light carried back along ray after at most depth bounces
func RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return black
	}

	var hit material.HitRecord
	if !world.Hit(ray, core.NewInterval(hitEpsilon, math.Inf(1)), &hit) {
		return Background(ray)
	}

	scatter, scattered := hit.Material.Scatter(ray, &hit, sampler)
	if !scattered {
		return black
	}

	return scatter.Attenuation.MultiplyVec(RayColor(scatter.Scattered, world, depth-1, sampler))
}

// Background returns the sky gradient seen by rays that escape the scene
func Background(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return white.Lerp(skyBlue, a)
}

// Render renders the world on the calling goroutine
func (r *Renderer) Render(world geometry.Shape) *image.RGBA {
	img, _ := r.RenderWithStats(world, false)
	return img
}

// RenderParallel renders the world with a pool of workers, one tile at a time each
func (r *Renderer) RenderParallel(world geometry.Shape) *image.RGBA {
	img, _ := r.RenderWithStats(world, true)
	return img
}

// RenderBytes renders in parallel and returns the row-major RGBA bytes, four per pixel
func (r *Renderer) RenderBytes(world geometry.Shape) []byte {
	return r.RenderParallel(world).Pix
}

// RenderWithStats renders the world serially or in parallel and reports how the work was spread
func (r *Renderer) RenderWithStats(world geometry.Shape, parallel bool) (*image.RGBA, RenderStats) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	tiles := NewTileGrid(r.width, r.height, r.tileSize)

	baseSeed := r.seed
	if !r.seeded {
		baseSeed = start.UnixNano()
	}

	stats := RenderStats{
		Width:           r.width,
		Height:          r.height,
		SamplesPerPixel: r.camera.SamplesPerPixel(),
		TotalTiles:      len(tiles),
	}

	if parallel {
		r.logger.Debugf("rendering %dx%d in %d tiles with %d workers", r.width, r.height, len(tiles), r.workerCount())

		pool := NewWorkerPool(r, world, img, r.workers, len(tiles))
		pool.Start()
		for _, tile := range tiles {
			pool.SubmitTask(TileTask{Tile: tile, Seed: baseSeed + int64(tile.ID)})
		}
		pool.Stop()

		for result, ok := pool.GetResult(); ok; result, ok = pool.GetResult() {
			stats.addTile(result.WorkerID, result.Stats)
		}
		for len(stats.Workers) < pool.GetNumWorkers() {
			stats.Workers = append(stats.Workers, WorkerStats{ID: len(stats.Workers)})
		}
	} else {
		r.logger.Debugf("rendering %dx%d in %d tiles serially", r.width, r.height, len(tiles))

		for _, tile := range tiles {
			stats.addTile(0, r.renderTile(world, img, tile.Bounds, baseSeed+int64(tile.ID)))
		}
	}

	stats.Duration = time.Since(start)
	r.logger.Infof("rendered %dx%d, %d samples in %s", r.width, r.height, stats.TotalSamples, stats.Duration)

	return img, stats
}

func (r *Renderer) workerCount() int {
	if r.workers <= 0 {
		return runtime.NumCPU()
	}
	return r.workers
}

// renderTile renders every pixel inside bounds with a sampler owned by this call
func (r *Renderer) renderTile(world geometry.Shape, img *image.RGBA, bounds image.Rectangle, seed int64) TileStats {
	start := time.Now()
	sampler := core.NewSeededSampler(seed)
	samplesPerPixel := r.camera.SamplesPerPixel()
	maxDepth := r.camera.MaxDepth()
	scale := 1.0 / float64(samplesPerPixel)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			colorAccum := black
			for sample := 0; sample < samplesPerPixel; sample++ {
				ray := r.GetRay(x, y, sampler)
				colorAccum = colorAccum.Add(RayColor(ray, world, maxDepth, sampler))
			}
			img.SetRGBA(x, y, r.camera.ColorToPixel(colorAccum.Multiply(scale)))
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	return TileStats{
		Pixels:   pixels,
		Samples:  pixels * samplesPerPixel,
		Duration: time.Since(start),
	}
}
