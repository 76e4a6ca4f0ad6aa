package scene

import (
	"math/rand"

	"github.com/vega-rt/vega/types"
)

// A Builder constructs one of the built-in scenes for the given frame dims.
type Builder func(frameW, frameH uint32) *Scene

// A built-in scene registry entry.
type BuiltinScene struct {
	Name        string
	Description string
	Build       Builder
}

// The set of scenes that can be rendered without any external assets.
var Builtins = []BuiltinScene{
	{
		Name:        "basic",
		Description: "quad floor, refractive/mirror spheres and triangles lit by three point lights",
		Build:       Basic,
	},
	{
		Name:        "spheres",
		Description: "seeded random sphere field over two quads with two point lights",
		Build:       Spheres,
	},
}

// Lookup a built-in scene builder by name.
func Lookup(name string) (Builder, bool) {
	for _, b := range Builtins {
		if b.Name == name {
			return b.Build, true
		}
	}
	return nil, false
}

// Create the default camera used by the built-in scenes.
func defaultCamera(frameW, frameH uint32) *Camera {
	return NewCamera(
		types.XYZ(0, 1.5, 5),
		types.XYZ(0, 0, 0),
		types.XYZ(0, 1, 0),
		53.13,
		frameW, frameH,
	)
}

// Build a small showcase scene: a matte floor quad, a large phong sphere, a
// refractive/phong composite sphere, a mirror/phong composite sphere and
// two triangles, lit by three point lights.
func Basic(frameW, frameH uint32) *Scene {
	sc := NewScene(defaultCamera(frameW, frameH), Grayscale(0.2))

	// Floor.
	sc.AddPrimitive(NewQuad(
		types.XYZ(-5, -1, 5),
		types.XYZ(5, -1, 5),
		types.XYZ(5, -1, -5),
		types.XYZ(-5, -1, -5),
		NewPhong(NewFlatTexture(Grayscale(0.7)), 1.0, 0.0, 1.0),
	))

	// Large shiny sphere.
	sc.AddPrimitive(NewSphere(
		types.XYZ(1, 0.5, -2), 1.5,
		NewPhong(NewFlatTexture(RGB(0.8, 0.3, 0.3)), 0.4, 0.6, 1.8),
	))

	// Transparent sphere. The index of refraction for glass is about 1.5;
	// the original scene uses a slightly softer 1.3.
	sc.AddPrimitive(NewSphere(
		types.XYZ(1, -0.25, 1), 0.75,
		NewComposite(
			MaterialPart{Material: NewRefractive(1.3), Weight: 0.8},
			MaterialPart{Material: NewPhong(NewFlatTexture(RGB(0, 1, 0)), 0.4, 0.6, 1.8), Weight: 0.2},
		),
	))

	// Mirror sphere.
	sc.AddPrimitive(NewSphere(
		types.XYZ(-1, 0, 0), 1.0,
		NewComposite(
			MaterialPart{Material: NewReflective(), Weight: 0.4},
			MaterialPart{Material: NewPhong(NewFlatTexture(RGB(0, 0, 1)), 0.4, 0.6, 1.8), Weight: 0.6},
		),
	))

	// Yellow triangle.
	sc.AddPrimitive(NewTriangle(
		types.XYZ(-2, 0, 1),
		types.XYZ(-1, 0, 1),
		types.XYZ(-2, 2, 1),
		NewPhong(NewFlatTexture(RGB(1, 1, 0)), 1.0, 0.0, 1.0),
	))

	// Second triangle above the scene center.
	sc.AddPrimitive(NewTriangle(
		types.XYZ(-0.5, 1, 1),
		types.XYZ(0.5, 1, 1),
		types.XYZ(0, 2, 1),
		NewPhong(NewFlatTexture(RGB(0.9, 0.4, 0.9)), 1.0, 0.0, 1.0),
	))

	sc.AddLight(NewPointLight(types.XYZ(2, 3, 0.5), RGB(1, 1, 1)))
	sc.AddLight(NewPointLight(types.XYZ(1, 2, 2.5), RGB(1, 1, 1)))
	sc.AddLight(NewPointLight(types.XYZ(-4, 2, 2), RGB(1, 1, 1)))

	return sc
}

// Seed for the random sphere field; fixed so the scene is reproducible.
const spheresSceneSeed = 248

// Build a field of randomly placed and colored spheres over a ground quad
// and a back quad.
func Spheres(frameW, frameH uint32) *Scene {
	sc := NewScene(defaultCamera(frameW, frameH), Grayscale(0.2))

	// Ground quad.
	sc.AddPrimitive(NewQuad(
		types.XYZ(-10, 0, 10),
		types.XYZ(10, 0, 10),
		types.XYZ(10, 0, -10),
		types.XYZ(-10, 0, -10),
		NewPhong(NewFlatTexture(Grayscale(0.2)), 1.0, 0.0, 1.0),
	))

	// Back quad.
	sc.AddPrimitive(NewQuad(
		types.XYZ(10, -10, -3),
		types.XYZ(10, 10, -3),
		types.XYZ(-10, 10, -3),
		types.XYZ(-10, -10, -3),
		NewPhong(NewFlatTexture(Grayscale(0.8)), 1.0, 0.0, 1.0),
	))

	rng := rand.New(rand.NewSource(spheresSceneSeed))
	randRange := func(low, high float32) float32 {
		return low + rng.Float32()*(high-low)
	}

	for i := 0; i < 30; i++ {
		color := RGBA(randRange(0.2, 1), randRange(0.2, 1), randRange(0.2, 1), randRange(0.5, 1))
		center := types.XYZ(randRange(-2.5, 2.5), randRange(0, 2), randRange(-3, 3))
		radius := randRange(0.05, 0.2)
		sc.AddPrimitive(NewSphere(
			center, radius,
			NewPhong(NewFlatTexture(color), 1.0, 0.0, 1.0),
		))
	}

	sc.AddLight(NewPointLight(types.XYZ(1, 2, 2.5), RGB(1, 1, 1)))
	sc.AddLight(NewPointLight(types.XYZ(-2, 2, 1), RGB(1, 1, 1)))

	return sc
}
