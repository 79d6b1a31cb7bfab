package cmd

import (
	"bytes"

	"github.com/df07/go-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the scenes that can be passed to the render command.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	logger.Noticef("available scenes\n%s", sceneTable(scene.List()))
	return nil
}

func sceneTable(infos []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Description"})
	for _, info := range infos {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}

	table.Render()
	return buf.String()
}
