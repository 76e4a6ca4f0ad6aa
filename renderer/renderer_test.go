package renderer

import (
	"testing"

	"github.com/vega-rt/vega/scene"
	"github.com/vega-rt/vega/tracer"
	"github.com/vega-rt/vega/types"
)

func testOptions() Options {
	return Options{
		FrameW:          32,
		FrameH:          24,
		SamplesPerPixel: 2,
		NumBounces:      4,
		NumWorkers:      1,
		Seed:            1234,
	}
}

func TestRenderValidation(t *testing.T) {
	sc := scene.Basic(32, 24)

	if _, _, err := Render(nil, testOptions()); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined; got %v", err)
	}

	noCamera := &scene.Scene{}
	if _, _, err := Render(noCamera, testOptions()); err != ErrCameraNotDefined {
		t.Fatalf("expected ErrCameraNotDefined; got %v", err)
	}

	opt := testOptions()
	opt.FrameW = 0
	if _, _, err := Render(sc, opt); err != ErrInvalidFrameDims {
		t.Fatalf("expected ErrInvalidFrameDims; got %v", err)
	}

	opt = testOptions()
	opt.SamplesPerPixel = 0
	if _, _, err := Render(sc, opt); err != ErrInvalidSampleRate {
		t.Fatalf("expected ErrInvalidSampleRate; got %v", err)
	}
}

func TestRenderDeterminism(t *testing.T) {
	opt := testOptions()
	sc := scene.Basic(opt.FrameW, opt.FrameH)

	sequential, _, err := Render(sc, opt)
	if err != nil {
		t.Fatalf("sequential render failed: %v", err)
	}

	for _, workers := range []int{2, 8} {
		opt.NumWorkers = workers
		parallel, _, err := Render(sc, opt)
		if err != nil {
			t.Fatalf("parallel render with %d workers failed: %v", workers, err)
		}

		for i := range sequential.Pix {
			if sequential.Pix[i] != parallel.Pix[i] {
				t.Fatalf("expected identical frames for 1 and %d workers; pixel %d differs: %v vs %v",
					workers, i, sequential.Pix[i], parallel.Pix[i])
			}
		}
	}
}

func TestRenderSplitPolicyIndependence(t *testing.T) {
	opt := testOptions()
	sc := scene.Basic(opt.FrameW, opt.FrameH)

	sahFrame, _, err := Render(sc, opt)
	if err != nil {
		t.Fatalf("sah render failed: %v", err)
	}

	opt.SplitPolicy = tracer.BasicSplit
	basicFrame, _, err := Render(sc, opt)
	if err != nil {
		t.Fatalf("basic split render failed: %v", err)
	}

	for i := range sahFrame.Pix {
		if sahFrame.Pix[i] != basicFrame.Pix[i] {
			t.Fatalf("expected identical frames for both split policies; pixel %d differs", i)
		}
	}
}

func TestRenderStats(t *testing.T) {
	opt := testOptions()
	opt.NumWorkers = 3
	sc := scene.Basic(opt.FrameW, opt.FrameH)

	_, stats, err := Render(sc, opt)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if stats.Workers != 3 {
		t.Fatalf("expected 3 workers; got %d", stats.Workers)
	}
	if stats.Columns != opt.FrameW {
		t.Fatalf("expected %d columns; got %d", opt.FrameW, stats.Columns)
	}
	exp := uint64(opt.FrameW) * uint64(opt.FrameH) * uint64(opt.SamplesPerPixel)
	if stats.PrimaryRays != exp {
		t.Fatalf("expected %d primary rays; got %d", exp, stats.PrimaryRays)
	}
}

func TestRenderSurfacesWorkerPanic(t *testing.T) {
	opt := testOptions()
	sc := scene.NewScene(
		scene.NewCamera(types.XYZ(0, 0, 5), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, opt.FrameW, opt.FrameH),
		scene.RGB(0, 0, 0),
	)
	// A primitive without a material makes the shading code panic; the
	// scheduler must convert that into a render error.
	sc.AddPrimitive(scene.NewSphere(types.XYZ(0, 0, 0), 1, nil))

	opt.NumWorkers = 4
	frame, _, err := Render(sc, opt)
	if err == nil {
		t.Fatal("expected render to surface the worker panic as an error")
	}
	if frame != nil {
		t.Fatal("expected no frame when a column fails")
	}
}

func TestFramePixelAddressing(t *testing.T) {
	frame := newFrame(4, 3)
	frame.setColumn(2, []scene.Color{
		scene.RGB(1, 0, 0),
		scene.RGB(0, 1, 0),
		scene.RGB(0, 0, 1),
	})

	if got := frame.At(2, 1); got != scene.RGB(0, 1, 0) {
		t.Fatalf("expected pixel (2,1) to be green; got %v", got)
	}

	img := frame.RGBA()
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("expected 4x3 image; got %v", img.Bounds())
	}
	r, g, b, _ := img.At(2, 2).RGBA()
	if r != 0 || g != 0 || b == 0 {
		t.Fatalf("expected pixel (2,2) to be blue; got (%d, %d, %d)", r, g, b)
	}
}
