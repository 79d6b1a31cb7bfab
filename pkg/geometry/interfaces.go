package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit fills rec and returns true only for hits with t strictly inside tInterval;
// on a miss rec is left untouched.
type Shape interface {
	Hit(ray core.Ray, tInterval core.Interval, rec *material.HitRecord) bool
	BoundingBox() core.AABB
}
