package geometry

import (
	"sort"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Children are either shapes (leaves) or further nodes. Right is nil only
// when the node was built over a single object.
type BVHNode struct {
	Left  Shape
	Right Shape
	Box   core.AABB
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes  int
	LeafShapes  int
	MaxDepth    int
	AvgDepth    float64 // Average depth of leaf shapes
	SingleNodes int     // Nodes without a right child
}

// NewBVHNode constructs a BVH over the given objects. The input slice is copied,
// so the caller keeps ownership of it. The split axis at every level is drawn from sampler.
// An empty object list yields a node that never hits and has an empty box.
func NewBVHNode(objects []Shape, sampler core.Sampler) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{Box: core.EmptyAABB()}
	}

	owned := make([]Shape, len(objects))
	copy(owned, objects)

	return buildBVH(owned, sampler)
}

// buildBVH recursively builds the tree, consuming the objects slice
func buildBVH(objects []Shape, sampler core.Sampler) *BVHNode {
	axis := core.RandomAxis(sampler)

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Box = objects[0].BoundingBox()
		return node
	case 2:
		left, right := objects[0], objects[1]
		if boxCompare(right, left, axis) {
			left, right = right, left
		}
		node.Left, node.Right = left, right
	default:
		sortShapesByAxis(objects, axis)
		mid := len(objects) / 2

		// Split into two owned sub-slices so the halves never alias
		leftObjects := append([]Shape(nil), objects[:mid]...)
		rightObjects := append([]Shape(nil), objects[mid:]...)

		node.Left = buildBVH(leftObjects, sampler)
		node.Right = buildBVH(rightObjects, sampler)
	}

	node.Box = core.NewAABBFromBoxes(node.Left.BoundingBox(), node.Right.BoundingBox())
	return node
}

// boxCompare reports whether a's box starts before b's box on the axis
func boxCompare(a, b Shape, axis int) bool {
	return a.BoundingBox().Axis(axis).Min < b.BoundingBox().Axis(axis).Min
}

// sortShapesByAxis sorts shapes by the minimum of their bounding box along the axis.
// Equal keys keep their input order.
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return boxCompare(shapes[i], shapes[j], axis)
	})
}

// Hit tests the ray against the subtree. The right child is only asked for hits
// closer than the left child's hit, so rec always ends up holding the nearest hit.
func (n *BVHNode) Hit(ray core.Ray, tInterval core.Interval, rec *material.HitRecord) bool {
	if n.Left == nil || !n.Box.Hit(ray, tInterval) {
		return false
	}

	hitLeft := n.Left.Hit(ray, tInterval, rec)
	if n.Right == nil {
		return hitLeft
	}

	rightInterval := tInterval
	if hitLeft {
		rightInterval = tInterval.WithMax(rec.T)
	}
	hitRight := n.Right.Hit(ray, rightInterval, rec)

	return hitLeft || hitRight
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.Box
}

// Stats returns statistics about the BVH structure
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	if n.Left == nil {
		return stats
	}

	n.collectStats(0, &stats)
	if stats.LeafShapes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafShapes)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if n.Right == nil {
		stats.SingleNodes++
	}

	for _, child := range []Shape{n.Left, n.Right} {
		switch c := child.(type) {
		case nil:
		case *BVHNode:
			c.collectStats(depth+1, stats)
		default:
			stats.LeafShapes++
			stats.AvgDepth += float64(depth + 1)
			if depth+1 > stats.MaxDepth {
				stats.MaxDepth = depth + 1
			}
		}
	}
}
