package scene

import (
	"math"

	"github.com/vega-rt/vega/types"
)

type LightType uint8

const (
	PointLight LightType = iota
	DirectionalLight
	AmbientLight
)

// Defines a scene light source. Point lights illuminate from a position
// with distance falloff, directional lights from a fixed direction with no
// falloff, ambient lights illuminate every surface and can never be
// occluded.
type Light struct {
	// The type of the light.
	Type LightType

	// Light position (point lights only).
	Position types.Vec3

	// The direction light travels in (directional lights only).
	Direction types.Vec3

	// The light color.
	Color Color
}

// Create a new point light.
func NewPointLight(position types.Vec3, color Color) *Light {
	return &Light{
		Type:     PointLight,
		Position: position,
		Color:    color,
	}
}

// Create a new directional light. The direction is the direction the light
// travels in, not the direction toward the light.
func NewDirectionalLight(direction types.Vec3, color Color) *Light {
	return &Light{
		Type:      DirectionalLight,
		Direction: direction.Normalize(),
		Color:     color,
	}
}

// Create a new ambient light.
func NewAmbientLight(color Color) *Light {
	return &Light{
		Type:  AmbientLight,
		Color: color,
	}
}

// Get the direction light travels at point p.
func (l *Light) DirAt(p types.Vec3) types.Vec3 {
	if l.Type == DirectionalLight {
		return l.Direction
	}
	return p.Sub(l.Position).Normalize()
}

// Build a shadow ray from point p toward the light and report the distance
// to the light along that ray. Directional lights are infinitely far away.
// Must not be called for ambient lights; they cast no shadow rays.
func (l *Light) ShadowRay(p types.Vec3) (types.Ray, float32) {
	if l.Type == DirectionalLight {
		return types.NewRay(p, l.Direction.Neg()), float32(math.Inf(1))
	}
	toLight := l.Position.Sub(p)
	return types.NewRay(p, toLight), toLight.Len()
}

// Get the light intensity at the given distance from the light. Point
// lights attenuate with the square of the distance; other light types have
// no falloff.
func (l *Light) Falloff(dist float32) float32 {
	if l.Type != PointLight {
		return 1.0
	}
	return 5.0 / (0.001 + dist*dist)
}
