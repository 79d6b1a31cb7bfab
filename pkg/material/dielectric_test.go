package material

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.NewRay(core.NewVec3(-1, 1, 0), rayDirection)

	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	hasReflection := false
	hasRefraction := false

	for seed := int64(0); seed < 1000; seed++ {
		sampler := core.NewSeededSampler(seed)
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if !result.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
			t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
		}

		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
			// Entering glass bends the ray toward the normal
			if math.Abs(result.Scattered.Direction.Normalize().X) >= math.Abs(rayDirection.X) {
				t.Errorf("Refracted ray should bend toward the normal, got %v", result.Scattered.Direction)
			}
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction in at least some cases")
	}
	// Reflectance at 45 degrees is roughly 5%, so 1000 draws see it
	if !hasReflection {
		t.Error("Expected to see Fresnel reflection in at least some cases")
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// A shallow ray leaving glass cannot refract
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)

	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: false,
		Material:  glass,
	}

	cosTheta := -rayDirection.Dot(hit.Normal)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	if 1.5*sinTheta <= 1.0 {
		t.Fatalf("Test setup error: this angle should cause total internal reflection")
	}

	for i := 0; i < 10; i++ {
		sampler := core.NewSeededSampler(int64(i))
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Error("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Y <= 0 {
			t.Errorf("Expected total internal reflection (ray going up), got %v", result.Scattered.Direction)
		}
		if math.Abs(result.Scattered.Direction.X-rayDirection.X) > 1e-10 {
			t.Errorf("Expected X component %.6f, got %.6f", rayDirection.X, result.Scattered.Direction.X)
		}
	}
}

func TestDielectricIndexOneDoesNotBend(t *testing.T) {
	air := NewDielectric(1.0)
	direction := core.NewVec3(0, 0, -1)
	ray := core.NewRay(core.NewVec3(0, 0, 1), direction)

	for _, frontFace := range []bool{true, false} {
		normal := core.NewVec3(0, 0, 1)
		if !frontFace {
			normal = normal.Negate()
			ray = core.NewRay(core.NewVec3(0, 0, -1), direction.Negate())
		}
		hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: frontFace}

		for seed := int64(0); seed < 50; seed++ {
			result, _ := air.Scatter(ray, hit, core.NewSeededSampler(seed))
			cross := result.Scattered.Direction.Cross(ray.Direction)
			if cross.Length() > 1e-12 {
				t.Errorf("frontFace=%v: scattered direction %v not collinear with %v", frontFace, result.Scattered.Direction, ray.Direction)
			}
			if result.Scattered.Direction.Dot(ray.Direction) <= 0 {
				t.Errorf("frontFace=%v: scattered direction %v reversed", frontFace, result.Scattered.Direction)
			}
		}
	}
}

func TestRefractFunction(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(1, -1, 0).Normalize()

	// Ratio 1 leaves the direction untouched at any angle
	same := Refract(incident, normal, 1.0)
	if !same.ApproxEquals(incident, 1e-12) {
		t.Errorf("Refract with ratio 1 = %v, expected %v", same, incident)
	}

	// Snell's law: sin(out) = ratio * sin(in)
	ratio := 1.0 / 1.5
	refracted := Refract(incident, normal, ratio)
	sinIn := math.Sqrt(0.5)
	sinOut := refracted.X / refracted.Length()
	if math.Abs(sinOut-ratio*sinIn) > 1e-12 {
		t.Errorf("sin(out) = %f, expected %f", sinOut, ratio*sinIn)
	}
	if math.Abs(refracted.Length()-1) > 1e-12 {
		t.Errorf("Refracted unit vector should stay unit length, got %f", refracted.Length())
	}
}

func TestReflectanceFunction(t *testing.T) {
	// Normal incidence - should be low for air->glass
	r0 := Reflectance(1.0, 1.0/1.5)
	if r0 < 0.03 || r0 > 0.06 {
		t.Errorf("Normal incidence reflectance = %.3f, expected ~0.04", r0)
	}

	// Grazing incidence - should be close to 1
	r90 := Reflectance(0.0, 1.0/1.5)
	if r90 < 0.95 {
		t.Errorf("Grazing incidence reflectance = %.3f, expected close to 1.0", r90)
	}

	r45 := Reflectance(0.707, 1.0/1.5)
	if r45 <= r0 || r90 <= r45 {
		t.Errorf("Reflectance should increase with angle: R(0)=%.3f, R(45)=%.3f, R(90)=%.3f", r0, r45, r90)
	}

	// Matching indices reflect nothing head on
	if r := Reflectance(1.0, 1.0); r != 0 {
		t.Errorf("Reflectance with ratio 1 at normal incidence = %f, expected 0", r)
	}
}
