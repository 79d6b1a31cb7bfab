package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Camera rays per pixel
	TotalTiles      int           // Number of tiles the image was split into
	Duration        time.Duration // Wall-clock render time
	Workers         []WorkerStats // Per-worker breakdown, ordered by worker ID
}

// WorkerStats records the work done by a single render worker
type WorkerStats struct {
	ID       int
	Tiles    int
	Pixels   int
	Samples  int
	Duration time.Duration // Time spent rendering tiles
}

// TileStats is what a worker reports for one finished tile
type TileStats struct {
	Pixels   int
	Samples  int
	Duration time.Duration
}

// SamplesPerSecond returns the camera ray throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// addTile folds a tile result into the totals and the owning worker's entry
func (s *RenderStats) addTile(workerID int, tile TileStats) {
	for len(s.Workers) <= workerID {
		s.Workers = append(s.Workers, WorkerStats{ID: len(s.Workers)})
	}

	worker := &s.Workers[workerID]
	worker.Tiles++
	worker.Pixels += tile.Pixels
	worker.Samples += tile.Samples
	worker.Duration += tile.Duration

	s.TotalPixels += tile.Pixels
	s.TotalSamples += tile.Samples
}
