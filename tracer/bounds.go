package tracer

import (
	"fmt"
	"math"

	"github.com/vega-rt/vega/types"
)

// An axis-aligned bounding box. The zero value is the degenerate
// zero-volume box at the origin, which acts as the identity for union
// folds over empty primitive sets.
type Bounds struct {
	Min types.Vec3
	Max types.Vec3
}

// Create a new bounding box. The extents must satisfy min <= max on every
// axis; violating that is a programmer error and aborts immediately.
func NewBounds(min, max types.Vec3) Bounds {
	if min[0] > max[0] || min[1] > max[1] || min[2] > max[2] {
		panic(fmt.Sprintf("tracer: inverted bounds: min %v > max %v", min, max))
	}
	return Bounds{Min: min, Max: max}
}

// Get the union of two bounding boxes.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Min: types.MinVec3(b.Min, other.Min),
		Max: types.MaxVec3(b.Max, other.Max),
	}
}

// Get the surface area of the bounding box.
func (b Bounds) SurfaceArea() float32 {
	side := b.Max.Sub(b.Min)
	return 2.0 * (side[0]*side[1] + side[1]*side[2] + side[0]*side[2])
}

// Intersect the bounding box with a ray using the slab method and return
// the entry parameter. If the ray origin lies inside the box the exit
// parameter is returned instead, since the entry is behind the origin.
//
// Axis-parallel ray components are handled with an explicit branch instead
// of a division so no NaN can leak into the comparisons, and rays that
// merely graze a box edge still report a hit.
func (b Bounds) Intersect(r types.Ray) (float32, bool) {
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		dir := r.Dir[axis]
		origin := r.Origin[axis]

		if dir == 0 {
			// Parallel to the slab: either the origin coordinate is inside
			// the slab for the whole line, or the ray misses outright.
			if origin < b.Min[axis] || origin > b.Max[axis] {
				return 0, false
			}
			continue
		}

		invDir := 1.0 / dir
		t1 := (b.Min[axis] - origin) * invDir
		t2 := (b.Max[axis] - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		// Box is entirely behind the ray origin.
		return 0, false
	}
	if tmin < 0 {
		// Origin is inside the box.
		return tmax, true
	}
	return tmin, true
}
