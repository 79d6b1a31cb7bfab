package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/renderer"
)

func init() {
	register(builder{
		info: SceneInfo{
			ID:          "random-spheres",
			DisplayName: "Random Spheres",
			Description: "Checkered ground with a field of small diffuse, metal and glass spheres and three large ones",
		},
		aspectRatio: 16.0 / 9.0,
		imageWidth:  400,
		camera:      wideShotCamera,
		world:       randomSpheresWorld,
	})
	register(builder{
		info: SceneInfo{
			ID:          "two-spheres",
			DisplayName: "Two Spheres",
			Description: "Two large checkered spheres touching at the origin",
		},
		aspectRatio: 16.0 / 9.0,
		imageWidth:  400,
		camera: func() renderer.CameraConfig {
			config := wideShotCamera()
			config.DefocusAngle = 0
			return config
		},
		world: twoSpheresWorld,
	})
	register(builder{
		info: SceneInfo{
			ID:          "three-spheres",
			DisplayName: "Three Spheres",
			Description: "Glass, diffuse and mirror spheres on a gray ground; cheap enough for interactive frames",
		},
		aspectRatio: 16.0 / 9.0,
		imageWidth:  640,
		camera: func() renderer.CameraConfig {
			config := wideShotCamera()
			config.SamplesPerPixel = 5
			config.MaxDepth = 10
			return config
		},
		world: threeSpheresWorld,
	})
}

// wideShotCamera looks at the origin from (13,2,3) with a narrow field of view and shallow depth of field
func wideShotCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            20.0,
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		Gamma:           renderer.Gamma2,
		DefocusAngle:    0.6,
		FocusDistance:   10.0,
	}
}

// groundChecker is the green and white checker used for ground spheres
func groundChecker() material.Material {
	return material.NewTexturedLambertian(material.NewSolidChecker(3.0,
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
}

// addHeroSpheres adds the three large spheres shared by the wide shot scenes
func addHeroSpheres(world *geometry.World) {
	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))
}

func randomSpheresWorld(opts Options, sampler core.Sampler) (*geometry.World, error) {
	world := geometry.NewWorld()
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundChecker()))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)
			// Keep the space around the metal hero sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			chooseMaterial := sampler.Get1D()
			switch {
			case chooseMaterial < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				bounce := core.NewVec3(0, 0.5*sampler.Get1D(), 0)
				world.Add(geometry.NewMovingSphere(center, center.Add(bounce), 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := sampler.Get3D().Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				fuzz := 0.5 * sampler.Get1D()
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	addHeroSpheres(world)
	return world, nil
}

func twoSpheresWorld(opts Options, sampler core.Sampler) (*geometry.World, error) {
	world := geometry.NewWorld()
	checker := groundChecker()
	world.Add(geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker))
	world.Add(geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker))
	return world, nil
}

func threeSpheresWorld(opts Options, sampler core.Sampler) (*geometry.World, error) {
	world := geometry.NewWorld()
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	addHeroSpheres(world)
	return world, nil
}
