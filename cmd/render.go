package cmd

import (
	"errors"
	"fmt"

	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// Render a still frame of a registered scene and write it to disk.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneName := ctx.String("scene")
	if sceneName == "" {
		return errors.New("missing scene name")
	}

	outFile := ctx.String("out")
	if _, err := loaders.FormatFromFilename(outFile); err != nil {
		return err
	}

	opts := scene.Options{
		Seed:            ctx.Int64("seed"),
		ImageWidth:      ctx.Int("width"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		TexturePath:     ctx.String("texture"),
	}

	sc, err := scene.Create(sceneName, opts)
	if err != nil {
		return err
	}

	rendererOpts := []renderer.Option{
		renderer.WithWorkers(ctx.Int("workers")),
		renderer.WithTileSize(ctx.Int("tile-size")),
	}
	if ctx.IsSet("seed") {
		rendererOpts = append(rendererOpts, renderer.WithSeed(opts.Seed))
	}

	r, err := sc.NewRenderer(rendererOpts...)
	if err != nil {
		return fmt.Errorf("scene %s: %w", sceneName, err)
	}

	logger.Noticef("rendering %q at %dx%d (%d spp, depth %d)",
		sceneName, r.Width(), r.Height(), r.Camera().SamplesPerPixel(), r.Camera().MaxDepth())

	img, stats := r.RenderWithStats(sc.World, !ctx.Bool("serial"))

	if err := loaders.SaveImage(outFile, img); err != nil {
		return err
	}
	logger.Noticef("wrote %s", outFile)

	displayRenderStats(stats)

	return nil
}
