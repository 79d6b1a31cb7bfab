package cmd

import (
	"github.com/df07/go-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve rendered frames over HTTP.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.NewServer(ctx.Int("port"))
	logger.Noticef("visit http://localhost:%d/api/scenes to list scenes", ctx.Int("port"))

	return srv.Start()
}
