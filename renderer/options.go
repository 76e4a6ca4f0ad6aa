package renderer

import "github.com/vega-rt/vega/tracer"

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples per pixel. Values above 1 enable jittered
	// sub-pixel sampling.
	SamplesPerPixel uint32

	// Maximum recursive bounce budget per traced ray.
	NumBounces uint32

	// Number of render workers. Values <= 0 select one worker per CPU.
	NumWorkers int

	// Base seed for the per-column sampling RNGs.
	Seed int64

	// BVH split policy.
	SplitPolicy tracer.SplitPolicy
}
