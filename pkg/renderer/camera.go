package renderer

import (
	"fmt"
	"image/color"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Gamma selects the transfer function applied when converting linear colors to pixels
type Gamma int

const (
	// Gamma2 encodes with a 1/2 exponent (square root)
	Gamma2 Gamma = iota
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	SamplesPerPixel int       // Rays traced per pixel
	MaxDepth        int       // Maximum ray bounce depth
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Up direction, must not be parallel to the view direction
	Gamma           Gamma     // Output transfer function
	DefocusAngle    float64   // Aperture cone angle in degrees (0 = pinhole, no blur)
	FocusDistance   float64   // Distance to the plane of perfect focus
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            90.0,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		Gamma:           Gamma2,
		DefocusAngle:    0.0,
		FocusDistance:   1.0,
	}
}

// Camera holds the validated viewing basis and lens of a scene. It is immutable
// once built and safe to share between render workers.
type Camera struct {
	config CameraConfig

	u, v, w      core.Vec3 // Orthonormal frame: right, up, backward
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera validates the configuration and derives the camera basis
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	right := config.Up.Cross(w)
	if right.LengthSquared() == 0 {
		return nil, fmt.Errorf("up %v is parallel to the view direction: %w", config.Up, ErrDegenerateView)
	}
	u := right.Normalize()
	v := w.Cross(u)

	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}, nil
}

func (c CameraConfig) validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("got %d: %w", c.SamplesPerPixel, ErrZeroSamples)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("got %d: %w", c.MaxDepth, ErrNegativeDepth)
	}
	if !(c.VFov >= 0 && c.VFov < 360) {
		return fmt.Errorf("got %g: %w", c.VFov, ErrFieldOfView)
	}
	if !(c.DefocusAngle >= 0 && c.DefocusAngle < 360) {
		return fmt.Errorf("got %g: %w", c.DefocusAngle, ErrDefocusAngle)
	}
	if c.LookFrom.Equals(c.LookAt) {
		return fmt.Errorf("look from and look at are both %v: %w", c.LookFrom, ErrDegenerateView)
	}
	if !(c.FocusDistance > 0) {
		return fmt.Errorf("got %g: %w", c.FocusDistance, ErrFocusDistance)
	}
	return nil
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Center returns the camera position
func (c *Camera) Center() core.Vec3 {
	return c.config.LookFrom
}

// Basis returns the camera frame: u points right, v up and w backward (away from the view)
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// SamplesPerPixel returns the number of rays traced per pixel
func (c *Camera) SamplesPerPixel() int {
	return c.config.SamplesPerPixel
}

// MaxDepth returns the maximum number of bounces per ray
func (c *Camera) MaxDepth() int {
	return c.config.MaxDepth
}

// DefocusDiskSample returns a random ray origin on the lens. Pinhole cameras always
// return the camera center.
func (c *Camera) DefocusDiskSample(sampler core.Sampler) core.Vec3 {
	if c.defocusDiskU.IsZero() && c.defocusDiskV.IsZero() {
		return c.config.LookFrom
	}
	p := core.RandomInUnitDisk(sampler)
	return c.config.LookFrom.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// ColorToPixel converts a linear color to an 8-bit pixel with the camera's gamma.
// Channels are clamped to [0,1] first and NaN becomes 0.
func (c *Camera) ColorToPixel(linear core.Vec3) color.RGBA {
	return color.RGBA{
		R: encodeChannel(linear.X, c.config.Gamma),
		G: encodeChannel(linear.Y, c.config.Gamma),
		B: encodeChannel(linear.Z, c.config.Gamma),
		A: 255,
	}
}

func encodeChannel(value float64, gamma Gamma) uint8 {
	if math.IsNaN(value) {
		return 0
	}
	value = core.NewInterval(0, 1).Clamp(value)

	switch gamma {
	case Gamma2:
		value = math.Sqrt(value)
	}
	return uint8(value * 255)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
