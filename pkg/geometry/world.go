package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// World is an ordered collection of shapes with a running bounding box.
// It is built once at scene construction and only read while rendering.
type World struct {
	objects []Shape
	box     core.AABB
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{box: core.EmptyAABB()}
}

// Add appends a shape and grows the world's bounding box to contain it
func (w *World) Add(object Shape) {
	w.objects = append(w.objects, object)
	w.box = w.box.Union(object.BoundingBox())
}

// Len returns the number of top-level objects
func (w *World) Len() int {
	return len(w.objects)
}

// Objects returns the world's top-level objects
func (w *World) Objects() []Shape {
	return w.objects
}

// BoundingBox returns the union of every object's box
func (w *World) BoundingBox() core.AABB {
	return w.box
}

// Hit finds the nearest hit by scanning every object, narrowing the upper bound
// to the closest t found so far
func (w *World) Hit(ray core.Ray, tInterval core.Interval, rec *material.HitRecord) bool {
	var candidate material.HitRecord
	hitAnything := false
	closest := tInterval.Max

	for _, object := range w.objects {
		if object.Hit(ray, tInterval.WithMax(closest), &candidate) {
			hitAnything = true
			closest = candidate.T
			*rec = candidate
		}
	}

	return hitAnything
}

// Finalize moves every object into a single BVH and returns a world containing only that tree.
// The receiver is left empty.
func (w *World) Finalize(sampler core.Sampler) *World {
	objects := w.objects
	w.objects = nil
	w.box = core.EmptyAABB()

	accelerated := NewWorld()
	if len(objects) == 0 {
		return accelerated
	}
	accelerated.Add(NewBVHNode(objects, sampler))
	return accelerated
}
