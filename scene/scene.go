package scene

// A scene aggregates the primitives, lights, camera and background color
// consumed by the tracer. Scenes are built up front and treated as
// immutable for the duration of a render; the tracer and renderer only
// ever read them.
type Scene struct {
	Primitives []*Primitive
	Lights     []*Light
	Camera     *Camera
	Background Color
}

// Create a new empty scene with the given camera and background color.
func NewScene(camera *Camera, background Color) *Scene {
	return &Scene{
		Camera:     camera,
		Background: background,
	}
}

// Add a primitive to the scene.
func (s *Scene) AddPrimitive(prim *Primitive) {
	s.Primitives = append(s.Primitives, prim)
}

// Add a light to the scene.
func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}
