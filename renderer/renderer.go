package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/vega-rt/vega/log"
	"github.com/vega-rt/vega/scene"
	"github.com/vega-rt/vega/tracer"
)

var logger = log.New("renderer")

// The result of one column task. Results carry their originating column
// index so the frame can be assembled in pixel order no matter when each
// column completes.
type columnResult struct {
	x      uint32
	colors []scene.Color
	err    error
}

// Render the scene into a frame.
//
// The frame is partitioned into one task per pixel column and the tasks
// are executed by a fixed pool of workers in arbitrary order. Each
// completed column is placed back at its original index, so the output is
// identical to what sequential in-order execution would produce; a fixed
// options seed therefore yields byte-identical frames regardless of the
// worker count. A panicking column task surfaces as a render error rather
// than a partially populated frame.
func Render(sc *scene.Scene, opt Options) (*Frame, *FrameStats, error) {
	switch {
	case sc == nil:
		return nil, nil, ErrSceneNotDefined
	case sc.Camera == nil:
		return nil, nil, ErrCameraNotDefined
	case opt.FrameW == 0 || opt.FrameH == 0:
		return nil, nil, ErrInvalidFrameDims
	case opt.SamplesPerPixel == 0:
		return nil, nil, ErrInvalidSampleRate
	}

	numWorkers := opt.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	start := time.Now()
	engine := tracer.NewEngine(sc, opt.SplitPolicy)
	logger.Infof("built spatial index over %d primitives in %s", len(sc.Primitives), engine.BuildTime())

	jobs := make(chan uint32, opt.FrameW)
	results := make(chan columnResult, opt.FrameW)
	for w := 0; w < numWorkers; w++ {
		go columnWorker(engine, sc.Camera, opt, jobs, results)
	}
	for x := uint32(0); x < opt.FrameW; x++ {
		jobs <- x
	}
	close(jobs)

	// Collect exactly one result per column before returning.
	frame := newFrame(opt.FrameW, opt.FrameH)
	var firstErr error
	for done := uint32(0); done < opt.FrameW; done++ {
		res := <-results
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		frame.setColumn(res.x, res.colors)
	}
	if firstErr != nil {
		return nil, nil, firstErr
	}

	stats := &FrameStats{
		Workers:        numWorkers,
		Columns:        opt.FrameW,
		PrimaryRays:    uint64(opt.FrameW) * uint64(opt.FrameH) * uint64(opt.SamplesPerPixel),
		IndexBuildTime: engine.BuildTime(),
		RenderTime:     time.Since(start),
	}
	logger.Noticef("rendered %dx%d frame with %d workers in %s", opt.FrameW, opt.FrameH, numWorkers, stats.RenderTime)
	return frame, stats, nil
}

// Pull column indices off the job queue until it drains.
func columnWorker(engine *tracer.Engine, cam *scene.Camera, opt Options, jobs <-chan uint32, results chan<- columnResult) {
	for x := range jobs {
		results <- renderColumn(engine, cam, opt, x)
	}
}

// Render one pixel column. A panic inside the tracing code is converted
// into a column error so the scheduler can fail the whole frame.
func renderColumn(engine *tracer.Engine, cam *scene.Camera, opt Options, x uint32) (res columnResult) {
	defer func() {
		if r := recover(); r != nil {
			res = columnResult{x: x, err: fmt.Errorf("renderer: column %d failed: %v", x, r)}
		}
	}()

	// Sampling RNG is owned by the column task and seeded from the column
	// index, so frames do not depend on which worker ran the column.
	var rng *rand.Rand
	if opt.SamplesPerPixel > 1 {
		rng = rand.New(rand.NewSource(opt.Seed + int64(x)))
	}

	colors := make([]scene.Color, opt.FrameH)
	for y := uint32(0); y < opt.FrameH; y++ {
		var r, g, b, a float32
		for s := uint32(0); s < opt.SamplesPerPixel; s++ {
			c := engine.Trace(cam.GenerateRay(x, y, rng), int(opt.NumBounces))
			r += c.R
			g += c.G
			b += c.B
			a += c.A
		}
		inv := 1.0 / float32(opt.SamplesPerPixel)
		colors[y] = scene.RGBA(r*inv, g*inv, b*inv, a*inv)
	}
	return columnResult{x: x, colors: colors}
}
