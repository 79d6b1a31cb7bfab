package core

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X Interval
	Y Interval
	Z Interval
}

// NewAABB creates a new AABB from three axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// EmptyAABB returns a box that contains nothing and is the identity for Union
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval(), Y: EmptyInterval(), Z: EmptyInterval()}
}

// NewAABBFromPoints creates the smallest AABB containing both points
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{
		X: NewInterval(min(a.X, b.X), max(a.X, b.X)),
		Y: NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		Z: NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	}
}

// NewAABBFromBoxes creates the smallest AABB containing both boxes
func NewAABBFromBoxes(a, b AABB) AABB {
	return AABB{
		X: a.X.Union(b.X),
		Y: a.Y.Union(b.Y),
		Z: a.Z.Union(b.Z),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return NewAABBFromBoxes(aabb, other)
}

// Axis returns the interval for axis 0 (X), 1 (Y) or 2 (Z).
// Any other index is a programming error and panics.
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	}
	panic("core: bounding box axis out of range")
}

// Hit tests if a ray intersects this AABB within the interval using the slab method.
// A zero direction component produces an infinite inverse, which either excludes the
// whole axis or leaves the running interval untouched.
func (aabb AABB) Hit(ray Ray, tInterval Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tInterval.Min {
			tInterval.Min = t0
		}
		if t1 < tInterval.Max {
			tInterval.Max = t1
		}

		if tInterval.Max <= tInterval.Min {
			return false
		}
	}

	return true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)*0.5,
		(aabb.Y.Min+aabb.Y.Max)*0.5,
		(aabb.Z.Min+aabb.Z.Max)*0.5,
	)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return NewVec3(aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size())
}

// IsEmpty reports whether any axis is empty
func (aabb AABB) IsEmpty() bool {
	return aabb.X.IsEmpty() || aabb.Y.IsEmpty() || aabb.Z.IsEmpty()
}

// ContainsBox reports whether every axis interval of other lies within this box
func (aabb AABB) ContainsBox(other AABB) bool {
	for axis := 0; axis < 3; axis++ {
		outer, inner := aabb.Axis(axis), other.Axis(axis)
		if !outer.Contains(inner.Min) || !outer.Contains(inner.Max) {
			return false
		}
	}
	return true
}
