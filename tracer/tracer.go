package tracer

import (
	"fmt"
	"math"
	"time"

	"github.com/vega-rt/vega/scene"
	"github.com/vega-rt/vega/types"
)

// Offset applied to secondary rays (shadow, reflection, refraction) so
// they cannot immediately re-intersect the surface they originate from.
const rayEpsilon = 1e-3

// The tracing engine walks the spatial index to shade viewing rays. It
// holds no mutable state after construction: Trace is a pure function of
// (ray, bounces) and may be called concurrently from many goroutines.
type Engine struct {
	scene *scene.Scene
	tree  *Tree

	buildTime time.Duration
}

// Create a tracing engine for the given scene, building its spatial index
// with the selected split policy.
func NewEngine(sc *scene.Scene, policy SplitPolicy) *Engine {
	start := time.Now()
	tree := Build(sc.Primitives, policy)
	return &Engine{
		scene:     sc,
		tree:      tree,
		buildTime: time.Since(start),
	}
}

// Get the spatial index built for the scene.
func (e *Engine) Tree() *Tree {
	return e.tree
}

// Get the time spent building the spatial index.
func (e *Engine) BuildTime() time.Duration {
	return e.buildTime
}

// Trace a ray through the scene with the given remaining bounce budget and
// return its color. A budget of zero resolves to the scene background
// without any intersection test; the budget is the sole mechanism that
// terminates recursion through facing mirrors or refractive chains.
func (e *Engine) Trace(r types.Ray, bounces int) scene.Color {
	if bounces <= 0 {
		return e.scene.Background
	}

	prim, t, ok := e.tree.NearestIntersection(r)
	if !ok {
		return e.scene.Background
	}

	p := r.At(t)
	return e.shade(r, t, prim, prim.Material, e.visibleLights(p), bounces)
}

// Determine which scene lights illuminate point p. A light is occluded
// when an obstruction sits strictly between p and the light; ambient
// lights are always visible.
func (e *Engine) visibleLights(p types.Vec3) []*scene.Light {
	visible := make([]*scene.Light, 0, len(e.scene.Lights))
	for _, light := range e.scene.Lights {
		if light.Type == scene.AmbientLight {
			visible = append(visible, light)
			continue
		}

		shadowRay, dist := light.ShadowRay(p)
		shadowRay = shadowRay.Offset(rayEpsilon)
		if _, obstT, ok := e.tree.NearestIntersection(shadowRay); ok && obstT < dist-rayEpsilon {
			continue
		}
		visible = append(visible, light)
	}
	return visible
}

// Evaluate the material for a nearest hit, recursing back into Trace for
// the reflective and refractive variants.
func (e *Engine) shade(r types.Ray, t float32, prim *scene.Primitive, mat *scene.Material, lights []*scene.Light, bounces int) scene.Color {
	p := r.At(t)

	switch mat.Type {
	case scene.PhongMaterial:
		return e.shadePhong(r, p, prim, mat, lights)

	case scene.ReflectiveMaterial:
		normal := prim.NormalAt(p)
		reflected := types.NewRay(p, r.Dir.Reflect(normal)).Offset(rayEpsilon)
		return e.Trace(reflected, bounces-1)

	case scene.RefractiveMaterial:
		dir, ok := refract(r.Dir, prim.NormalAt(p), mat.IOR)
		if !ok {
			// Total internal reflection: no real refracted direction
			// exists, so the surface acts as a mirror.
			dir = r.Dir.Reflect(prim.NormalAt(p).Neg())
		}
		return e.Trace(types.NewRay(p, dir).Offset(rayEpsilon), bounces-1)

	case scene.CompositeMaterial:
		var out scene.Color
		for _, part := range mat.Parts {
			out = out.Add(e.shade(r, t, prim, part.Material, lights, bounces).Scale(part.Weight))
		}
		return out
	}

	panic(fmt.Sprintf("tracer: unknown material type %d", mat.Type))
}

// Local Phong reflectance: a pure function of the hit point, the surface
// normal, the incoming direction and the visible lights.
func (e *Engine) shadePhong(r types.Ray, p types.Vec3, prim *scene.Primitive, mat *scene.Material, lights []*scene.Light) scene.Color {
	normal := prim.NormalAt(p)
	u, v := prim.UVAt(p)
	base := mat.Texture.Sample(u, v)

	var sum scene.Color
	for _, light := range lights {
		if light.Type == scene.AmbientLight {
			sum = sum.Add(base.Mul(light.Color).Scale(mat.Diffuse))
			continue
		}

		lightDir := light.DirAt(p)
		lightColor := light.Color.Scale(light.Falloff(light.Position.Sub(p).Len()))

		diffuse := clampf(lightDir.Neg().Dot(normal), 0, 1)
		specular := clampf(lightDir.Reflect(normal).Dot(r.Dir.Neg()), 0, 1)
		intensity := mat.Diffuse*diffuse +
			mat.Specular*float32(math.Pow(float64(specular), float64(mat.Shininess)))

		sum = sum.Add(base.Scale(intensity).Mul(lightColor))
	}
	return sum
}

// Compute the refracted direction for a unit incoming direction against a
// unit surface normal, with the incidence side selecting the 1/ior or
// ior/1 index ratio. Reports false on total internal reflection.
func refract(dir, normal types.Vec3, ior float32) (types.Vec3, bool) {
	cosi := dir.Dot(normal)
	eta := 1.0 / ior
	n := normal
	if cosi < 0 {
		cosi = -cosi
	} else {
		// Leaving the medium.
		eta = ior
		n = normal.Neg()
	}

	k := 1.0 - eta*eta*(1.0-cosi*cosi)
	if k < 0 {
		return types.Vec3{}, false
	}

	refracted := dir.Mul(eta).Add(n.Mul(eta*cosi - float32(math.Sqrt(float64(k)))))
	return refracted.Normalize(), true
}

func clampf(x, low, high float32) float32 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
