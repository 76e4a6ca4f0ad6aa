package scene

import (
	"math/rand"
	"testing"

	"github.com/vega-rt/vega/types"
)

func TestCameraCenterRay(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 0, 5), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, 100, 100)

	// The center of the frame looks straight down the view direction.
	ray := cam.GenerateRay(49, 49, nil)
	if ray.Origin != cam.Position {
		t.Fatalf("expected ray origin at the camera position; got %v", ray.Origin)
	}
	if !approxEq(ray.Dir[2], -1, 1e-2) || !approxEq(ray.Dir[0], 0, 1e-2) {
		t.Fatalf("expected center ray along -z; got %v", ray.Dir)
	}

	if !approxEq(ray.Dir.Len(), 1, 1e-5) {
		t.Fatalf("expected unit length direction; got %f", ray.Dir.Len())
	}
}

func TestCameraPixelOrientation(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 0, 5), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, 100, 100)

	// Pixel (0, 0) is the top left corner: left of and above the center.
	ray := cam.GenerateRay(0, 0, nil)
	if ray.Dir[0] >= 0 {
		t.Fatalf("expected top-left ray to point left; got %v", ray.Dir)
	}
	if ray.Dir[1] <= 0 {
		t.Fatalf("expected top-left ray to point up; got %v", ray.Dir)
	}

	right := cam.GenerateRay(99, 50, nil)
	if right.Dir[0] <= 0 {
		t.Fatalf("expected rightmost ray to point right; got %v", right.Dir)
	}
}

func TestCameraDeterministicWithoutRNG(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 1.5, 5), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 53.13, 64, 48)

	for i := 0; i < 5; i++ {
		r1 := cam.GenerateRay(10, 20, nil)
		r2 := cam.GenerateRay(10, 20, nil)
		if r1 != r2 {
			t.Fatalf("expected identical rays without jitter; got %v vs %v", r1, r2)
		}
	}
}

func TestCameraJitterStaysInsidePixel(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 0, 5), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, 10, 10)
	rng := rand.New(rand.NewSource(1))

	// Jittered rays through one pixel must stay between the rays through
	// the neighboring pixel centers.
	lo := cam.GenerateRay(4, 5, nil)
	hi := cam.GenerateRay(5, 5, nil)
	for i := 0; i < 100; i++ {
		ray := cam.GenerateRay(4, 5, rng)
		if ray.Dir[0] < lo.Dir[0] || ray.Dir[0] > hi.Dir[0] {
			t.Fatalf("expected jittered ray to stay within its pixel footprint; got %v", ray.Dir)
		}
	}
}
