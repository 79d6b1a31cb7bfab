package core

import (
	"math/rand"
	"time"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns.
// Implementations are not safe for concurrent use; every worker owns its own.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// NewTimeSeededSampler creates a sampler seeded from the wall clock
func NewTimeSeededSampler() *RandomSampler {
	return NewSeededSampler(time.Now().UnixNano())
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomUnitVector returns a uniformly distributed unit vector using rejection sampling:
// points in [-1,1]³ are drawn until one lies strictly inside the unit sphere and is not the origin.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		lengthSquared := p.LengthSquared()
		if lengthSquared >= 1 || lengthSquared == 0 {
			continue
		}
		return p.Normalize()
	}
}

// RandomInUnitDisk returns a point with z = 0 strictly inside the unit disk (rejection sampled)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomAxis returns 0, 1 or 2 with equal probability
func RandomAxis(sampler Sampler) int {
	axis := int(sampler.Get1D() * 3)
	if axis > 2 {
		return 2
	}
	return axis
}
