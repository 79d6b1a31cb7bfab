package material

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker is a 3D checker pattern alternating between two textures.
// Cells are 1/Scale wide along each axis.
type Checker struct {
	Scale float64
	Even  Texture
	Odd   Texture
}

// NewChecker creates a checker texture from two sub-textures
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

// NewSolidChecker creates a checker texture alternating between two solid colors
func NewSolidChecker(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks a sub-texture by the parity of the summed floored scaled coordinates
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sum := math.Floor(c.Scale*point.X) + math.Floor(c.Scale*point.Y) + math.Floor(c.Scale*point.Z)

	// Non-finite coordinates have no cell; they fall on the even texture
	if math.IsNaN(sum) || math.IsInf(sum, 0) || math.Mod(sum, 2) == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
