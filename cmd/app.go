package cmd

import (
	"github.com/urfave/cli"
)

// NewApp assembles the command line application.
func NewApp() *cli.App {
	// Free -v for verbosity
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-raytracer"
	app.Usage = "render sphere scenes using BVH accelerated path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame",
			Description: `
Build one of the registered scenes, move its objects into a BVH and trace
it with the configured camera. The output format is picked from the file
extension (.png, .jpg, .bmp, .tif).`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "three-spheres",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width; 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel; 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounces; 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "number of render workers; 0 uses one per CPU",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 16,
					Usage: "side length of the tiles handed to workers",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "seed for scene layout and sampling; set it for reproducible output",
				},
				cli.BoolFlag{
					Name:  "serial",
					Usage: "render on the calling goroutine only",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image file for textured scenes",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "output/frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: Render,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve rendered frames over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to listen on",
				},
			},
			Action: Serve,
		},
	}

	return app
}
