package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
)

func displayRenderStats(stats renderer.RenderStats) {
	logger.Noticef("render statistics\n%s", renderStatsTable(stats))
}

func renderStatsTable(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "Samples", "% of frame", "Render time"})
	for _, worker := range stats.Workers {
		framePercent := 0.0
		if stats.TotalPixels > 0 {
			framePercent = 100 * float64(worker.Pixels) / float64(stats.TotalPixels)
		}
		table.Append([]string{
			fmt.Sprintf("%d", worker.ID),
			fmt.Sprintf("%d", worker.Tiles),
			fmt.Sprintf("%d", worker.Pixels),
			fmt.Sprintf("%d", worker.Samples),
			fmt.Sprintf("%02.1f %%", framePercent),
			worker.Duration.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.TotalTiles),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.0f samples/s", stats.SamplesPerSecond()),
		stats.Duration.String(),
	})

	table.Render()
	return buf.String()
}
