package scene

import (
	"fmt"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/renderer"
)

func init() {
	register(builder{
		info: SceneInfo{
			ID:          "earth",
			DisplayName: "Earth",
			Description: "A single image-textured globe; shows a UV debug texture when no image is given",
		},
		aspectRatio: 16.0 / 9.0,
		imageWidth:  400,
		camera: func() renderer.CameraConfig {
			return renderer.CameraConfig{
				SamplesPerPixel: 100,
				MaxDepth:        50,
				VFov:            20.0,
				LookFrom:        core.NewVec3(0, 0, 12),
				LookAt:          core.NewVec3(0, 0, 0),
				Up:              core.NewVec3(0, 1, 0),
				Gamma:           renderer.Gamma2,
				DefocusAngle:    0.0,
				FocusDistance:   10.0,
			}
		},
		world: earthWorld,
	})
}

func earthWorld(opts Options, sampler core.Sampler) (*geometry.World, error) {
	var surface material.Texture
	if opts.TexturePath != "" {
		texture, err := loaders.LoadImage(opts.TexturePath)
		if err != nil {
			return nil, fmt.Errorf("load texture: %w", err)
		}
		logger.Debugf("loaded %dx%d texture from %s", texture.Width, texture.Height, opts.TexturePath)
		surface = texture
	} else {
		surface = material.NewUVDebugTexture(256, 128)
	}

	world := geometry.NewWorld()
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2.0, material.NewTexturedLambertian(surface)))
	return world, nil
}
