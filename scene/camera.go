package scene

import (
	"math"
	"math/rand"

	"github.com/vega-rt/vega/types"
)

// A pinhole look-at camera. The projection basis is precomputed at
// construction; ray generation is a pure function of the pixel coordinates
// (plus an optional caller-owned RNG for sub-pixel jitter) and is safe to
// call concurrently from many goroutines.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical field of view in degrees.
	FOV float32

	// Frame dims in pixels.
	FrameW uint32
	FrameH uint32

	// Precomputed view basis and projection plane half extents.
	forward types.Vec3
	right   types.Vec3
	up      types.Vec3
	halfW   float32
	halfH   float32
}

// Create a new camera at position looking toward lookAt.
func NewCamera(position, lookAt, up types.Vec3, fov float32, frameW, frameH uint32) *Camera {
	c := &Camera{
		Position: position,
		LookAt:   lookAt,
		Up:       up,
		FOV:      fov,
		FrameW:   frameW,
		FrameH:   frameH,
	}
	c.update()
	return c
}

// Recalculate the view basis from the camera position/orientation.
func (c *Camera) update() {
	c.forward = c.LookAt.Sub(c.Position).Normalize()
	c.right = c.forward.Cross(c.Up).Normalize()
	c.up = c.right.Cross(c.forward)

	c.halfH = float32(math.Tan(float64(c.FOV) * math.Pi / 360.0))
	c.halfW = c.halfH * float32(c.FrameW) / float32(c.FrameH)
}

// Generate a world-space ray through pixel (x, y). Pixel (0, 0) is the top
// left corner of the frame. When rng is nil the ray passes through the
// pixel center; otherwise the sample position is jittered by a random
// offset in [0, 0.5) on each axis.
func (c *Camera) GenerateRay(x, y uint32, rng *rand.Rand) types.Ray {
	px := float32(x) + 0.5
	py := float32(y) + 0.5
	if rng != nil {
		px += rng.Float32() * 0.5
		py += rng.Float32() * 0.5
	}

	// Map the sample to [-1, 1] on each axis of the projection plane.
	sx := 2.0*px/float32(c.FrameW) - 1.0
	sy := 1.0 - 2.0*py/float32(c.FrameH)

	dir := c.forward.
		Add(c.right.Mul(sx * c.halfW)).
		Add(c.up.Mul(sy * c.halfH))
	return types.NewRay(c.Position, dir)
}
