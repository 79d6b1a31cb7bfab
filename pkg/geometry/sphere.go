package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Sphere represents a sphere shape. A moving sphere travels linearly from Center
// at ray time 0 to Center + Motion at ray time 1.
type Sphere struct {
	Center   core.Vec3
	Motion   core.Vec3 // Zero for stationary spheres
	Radius   float64
	Material material.Material
	box      core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	extent := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
		box:      core.NewAABBFromPoints(center.Subtract(extent), center.Add(extent)),
	}
}

// NewMovingSphere creates a sphere whose center moves from center1 (time 0) to center2 (time 1)
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	extent := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(extent), center1.Add(extent))
	box2 := core.NewAABBFromPoints(center2.Subtract(extent), center2.Add(extent))
	return &Sphere{
		Center:   center1,
		Motion:   center2.Subtract(center1),
		Radius:   radius,
		Material: mat,
		box:      core.NewAABBFromBoxes(box1, box2),
	}
}

// IsMoving reports whether the sphere has a motion vector
func (s *Sphere) IsMoving() bool {
	return !s.Motion.IsZero()
}

// CenterAt returns the sphere center at the given ray time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.Motion.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tInterval core.Interval, rec *material.HitRecord) bool {
	center := s.CenterAt(ray.Time)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !tInterval.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !tInterval.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	rec.Material = s.Material

	outwardNormal := rec.Point.Subtract(center).Multiply(1.0 / s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.UV = SphereUV(outwardNormal)

	return true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.box
}

// SphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting from -X, v runs from the bottom pole (0) to the top (1).
func SphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
