package scene

import (
	"math"

	"github.com/vega-rt/vega/types"
)

type PrimitiveType uint8

const (
	SpherePrimitive PrimitiveType = iota
	PlanePrimitive
	TrianglePrimitive
	QuadPrimitive
)

const (
	// Extent of the bounding box reported for infinite planes.
	planeExtent float32 = 1e4

	// Treat ray/surface angles below this threshold as parallel.
	parallelEpsilon float32 = 1e-7
)

// Defines a scene primitive. Primitives expose world-space intersection
// queries, surface normals, UV coordinates and a bounding box used at
// spatial index build time. All intersection math operates on unit-length
// ray directions and returns the smallest positive ray parameter.
type Primitive struct {
	// The primitive type.
	Type PrimitiveType

	// Sphere center / plane point.
	Origin types.Vec3

	// Sphere radius.
	Radius float32

	// Plane normal.
	Normal types.Vec3

	// Triangle/quad vertices in counter-clockwise order. Triangles use the
	// first three entries.
	Verts [4]types.Vec3

	// Per-vertex UV coordinates for triangles and quads.
	UV [4]types.Vec2

	// The primitive material.
	Material *Material
}

// Create a new sphere primitive.
func NewSphere(center types.Vec3, radius float32, material *Material) *Primitive {
	return &Primitive{
		Type:     SpherePrimitive,
		Origin:   center,
		Radius:   radius,
		Material: material,
	}
}

// Create a new infinite plane primitive through origin with the given normal.
func NewPlane(origin, normal types.Vec3, material *Material) *Primitive {
	return &Primitive{
		Type:     PlanePrimitive,
		Origin:   origin,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Create a new triangle primitive. Vertices should be specified in
// counter-clockwise order when viewed from the front face.
func NewTriangle(v0, v1, v2 types.Vec3, material *Material) *Primitive {
	return &Primitive{
		Type:     TrianglePrimitive,
		Verts:    [4]types.Vec3{v0, v1, v2},
		UV:       [4]types.Vec2{{0, 0}, {1, 0}, {0, 1}},
		Normal:   v1.Sub(v0).Cross(v2.Sub(v0)).Normalize(),
		Material: material,
	}
}

// Create a new planar quad primitive from its four corners in
// counter-clockwise order. The corners map to UV (0,0), (1,0), (1,1), (0,1).
func NewQuad(v0, v1, v2, v3 types.Vec3, material *Material) *Primitive {
	return &Primitive{
		Type:     QuadPrimitive,
		Verts:    [4]types.Vec3{v0, v1, v2, v3},
		UV:       [4]types.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Normal:   v1.Sub(v0).Cross(v3.Sub(v0)).Normalize(),
		Material: material,
	}
}

// Intersect the primitive with a world-space ray. Returns the smallest
// positive ray parameter for the intersection point, if one exists.
func (p *Primitive) Intersect(r types.Ray) (float32, bool) {
	switch p.Type {
	case SpherePrimitive:
		return p.intersectSphere(r)
	case PlanePrimitive:
		t, ok := intersectPlane(r, p.Origin, p.Normal)
		return t, ok
	case TrianglePrimitive:
		return intersectTriangle(r, p.Verts[0], p.Verts[1], p.Verts[2])
	case QuadPrimitive:
		// Split the quad into its two triangles.
		if t, ok := intersectTriangle(r, p.Verts[0], p.Verts[1], p.Verts[2]); ok {
			return t, true
		}
		return intersectTriangle(r, p.Verts[0], p.Verts[2], p.Verts[3])
	}
	return 0, false
}

// Get the world-space surface normal at point pt on the primitive surface.
func (p *Primitive) NormalAt(pt types.Vec3) types.Vec3 {
	if p.Type == SpherePrimitive {
		return pt.Sub(p.Origin).Mul(1.0 / p.Radius)
	}
	return p.Normal
}

// Get the UV coordinates at point pt on the primitive surface.
func (p *Primitive) UVAt(pt types.Vec3) (float32, float32) {
	switch p.Type {
	case SpherePrimitive:
		d := pt.Sub(p.Origin).Mul(1.0 / p.Radius)
		u := 0.5 + float32(math.Atan2(float64(d[2]), float64(d[0])))/(2.0*math.Pi)
		v := 0.5 + float32(math.Asin(float64(clamp(d[1], -1, 1))))/math.Pi
		return u, v
	case PlanePrimitive:
		tangent, bitangent := planeBasis(p.Normal)
		rel := pt.Sub(p.Origin)
		return rel.Dot(tangent), rel.Dot(bitangent)
	case TrianglePrimitive:
		b0, b1, b2 := barycentric(pt, p.Verts[0], p.Verts[1], p.Verts[2])
		uv := p.UV[0].Mul(b0).Add(p.UV[1].Mul(b1)).Add(p.UV[2].Mul(b2))
		return uv[0], uv[1]
	case QuadPrimitive:
		e1 := p.Verts[1].Sub(p.Verts[0])
		e3 := p.Verts[3].Sub(p.Verts[0])
		rel := pt.Sub(p.Verts[0])
		return rel.Dot(e1) / e1.Len2(), rel.Dot(e3) / e3.Len2()
	}
	return 0, 0
}

// Get the world-space bounding box as a min/max extent pair.
func (p *Primitive) BBox() [2]types.Vec3 {
	switch p.Type {
	case SpherePrimitive:
		rad := types.XYZ(p.Radius, p.Radius, p.Radius)
		return [2]types.Vec3{p.Origin.Sub(rad), p.Origin.Add(rad)}
	case PlanePrimitive:
		ext := types.XYZ(planeExtent, planeExtent, planeExtent)
		return [2]types.Vec3{p.Origin.Sub(ext), p.Origin.Add(ext)}
	}

	nverts := 3
	if p.Type == QuadPrimitive {
		nverts = 4
	}
	min := p.Verts[0]
	max := p.Verts[0]
	for i := 1; i < nverts; i++ {
		min = types.MinVec3(min, p.Verts[i])
		max = types.MaxVec3(max, p.Verts[i])
	}
	return [2]types.Vec3{min, max}
}

// Get the center of the primitive bounding box.
func (p *Primitive) Center() types.Vec3 {
	bbox := p.BBox()
	return bbox[0].Add(bbox[1]).Mul(0.5)
}

func (p *Primitive) intersectSphere(r types.Ray) (float32, bool) {
	oc := r.Origin.Sub(p.Origin)
	b := oc.Dot(r.Dir)
	c := oc.Len2() - p.Radius*p.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sq := float32(math.Sqrt(float64(disc)))
	if t := -b - sq; t > 0 {
		return t, true
	}
	if t := -b + sq; t > 0 {
		return t, true
	}
	return 0, false
}

func intersectPlane(r types.Ray, origin, normal types.Vec3) (float32, bool) {
	denom := r.Dir.Dot(normal)
	if denom > -parallelEpsilon && denom < parallelEpsilon {
		return 0, false
	}
	t := origin.Sub(r.Origin).Dot(normal) / denom
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// Moeller-Trumbore ray/triangle intersection.
func intersectTriangle(r types.Ray, v0, v1, v2 types.Vec3) (float32, bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	pvec := r.Dir.Cross(e2)
	det := e1.Dot(pvec)
	if det > -parallelEpsilon && det < parallelEpsilon {
		return 0, false
	}

	invDet := 1.0 / det
	tvec := r.Origin.Sub(v0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(e1)
	v := r.Dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(qvec) * invDet
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// Compute the barycentric coordinates of pt with respect to a triangle.
func barycentric(pt, v0, v1, v2 types.Vec3) (float32, float32, float32) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	rel := pt.Sub(v0)

	d11 := e1.Len2()
	d12 := e1.Dot(e2)
	d22 := e2.Len2()
	r1 := rel.Dot(e1)
	r2 := rel.Dot(e2)

	denom := d11*d22 - d12*d12
	if denom > -parallelEpsilon && denom < parallelEpsilon {
		return 1, 0, 0
	}
	b1 := (d22*r1 - d12*r2) / denom
	b2 := (d11*r2 - d12*r1) / denom
	return 1.0 - b1 - b2, b1, b2
}

// Pick an arbitrary tangent basis for a plane with the given unit normal.
func planeBasis(normal types.Vec3) (types.Vec3, types.Vec3) {
	axis := types.XYZ(1, 0, 0)
	if normal[0] > 0.9 || normal[0] < -0.9 {
		axis = types.XYZ(0, 1, 0)
	}
	tangent := normal.Cross(axis).Normalize()
	return tangent, normal.Cross(tangent)
}
