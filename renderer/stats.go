package renderer

import "time"

type FrameStats struct {
	// Number of workers used for the frame.
	Workers int

	// Number of column tasks dispatched.
	Columns uint32

	// Number of rays traced for the frame, excluding secondary rays.
	PrimaryRays uint64

	// Time spent building the spatial index.
	IndexBuildTime time.Duration

	// Total render time for the entire frame, index build included.
	RenderTime time.Duration
}
