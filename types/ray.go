package types

// A ray in world space. The direction is always unit length; rays are
// immutable value types and safe to copy or share between goroutines.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Create a new ray. The direction is normalized at construction.
func NewRay(origin, dir Vec3) Ray {
	return Ray{
		Origin: origin,
		Dir:    dir.Normalize(),
	}
}

// Get the point at parameter t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Move the ray origin forward by epsilon units along its direction. Used
// after a bounce so that the new ray cannot immediately re-intersect the
// surface it originated from.
func (r Ray) Offset(epsilon float32) Ray {
	return Ray{
		Origin: r.Origin.Add(r.Dir.Mul(epsilon)),
		Dir:    r.Dir,
	}
}
