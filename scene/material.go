package scene

type MaterialType uint8

const (
	PhongMaterial MaterialType = iota
	ReflectiveMaterial
	RefractiveMaterial
	CompositeMaterial
)

// A weighted sub-material inside a composite material.
type MaterialPart struct {
	Material *Material
	Weight   float32
}

// Defines a scene material. Materials form a small closed set of behaviors
// which the tracer dispatches on: local Phong reflectance, mirror
// reflection, refraction and weighted composition. Composition weights are
// not required to sum to 1; that is an authoring choice, not an error.
type Material struct {
	// The type of the material.
	Type MaterialType

	// Base surface color source (phong materials).
	Texture *Texture

	// Phong coefficients.
	Diffuse   float32
	Specular  float32
	Shininess float32

	// Index of refraction (refractive materials only).
	IOR float32

	// Weighted sub-materials (composite materials only).
	Parts []MaterialPart
}

// Create a new phong material with the given diffuse/specular coefficients
// and shininess exponent.
func NewPhong(texture *Texture, diffuse, specular, shininess float32) *Material {
	return &Material{
		Type:      PhongMaterial,
		Texture:   texture,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// Create a new perfect mirror material.
func NewReflective() *Material {
	return &Material{
		Type: ReflectiveMaterial,
	}
}

// Create a new refractive material with the given index of refraction.
func NewRefractive(ior float32) *Material {
	return &Material{
		Type: RefractiveMaterial,
		IOR:  ior,
	}
}

// Create a material that blends the evaluation of its weighted parts.
func NewComposite(parts ...MaterialPart) *Material {
	return &Material{
		Type:  CompositeMaterial,
		Parts: parts,
	}
}
