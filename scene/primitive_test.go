package scene

import (
	"testing"

	"github.com/vega-rt/vega/types"
)

func testMaterial() *Material {
	return NewPhong(NewFlatTexture(RGB(1, 1, 1)), 1.0, 0.0, 1.0)
}

func TestSphereIntersect(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, -5), 1, testMaterial())

	tval, hit := sphere.Intersect(types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1)))
	if !hit {
		t.Fatal("expected head-on ray to hit the sphere")
	}
	if !approxEq(tval, 4.0, 1e-4) {
		t.Fatalf("expected hit parameter 4; got %f", tval)
	}

	// Origin inside the sphere returns the exit intersection.
	tval, hit = sphere.Intersect(types.NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, -1)))
	if !hit {
		t.Fatal("expected ray from inside the sphere to hit")
	}
	if !approxEq(tval, 1.0, 1e-4) {
		t.Fatalf("expected exit parameter 1; got %f", tval)
	}

	if _, hit = sphere.Intersect(types.NewRay(types.XYZ(0, 2, 0), types.XYZ(0, 0, -1))); hit {
		t.Fatal("expected offset ray to miss the sphere")
	}

	// Sphere behind the origin.
	if _, hit = sphere.Intersect(types.NewRay(types.XYZ(0, 0, -10), types.XYZ(0, 0, -1))); hit {
		t.Fatal("expected sphere behind the ray to be missed")
	}
}

func TestSphereNormalAndBounds(t *testing.T) {
	sphere := NewSphere(types.XYZ(1, 2, 3), 2, testMaterial())

	normal := sphere.NormalAt(types.XYZ(3, 2, 3))
	if !approxEq(normal[0], 1, 1e-4) || !approxEq(normal[1], 0, 1e-4) || !approxEq(normal[2], 0, 1e-4) {
		t.Fatalf("expected normal (1, 0, 0); got %v", normal)
	}

	bbox := sphere.BBox()
	if bbox[0] != types.XYZ(-1, 0, 1) || bbox[1] != types.XYZ(3, 4, 5) {
		t.Fatalf("expected bbox (-1,0,1)-(3,4,5); got %v", bbox)
	}
	if center := sphere.Center(); center != types.XYZ(1, 2, 3) {
		t.Fatalf("expected center at the sphere origin; got %v", center)
	}
}

func TestPlaneIntersect(t *testing.T) {
	plane := NewPlane(types.XYZ(0, -1, 0), types.XYZ(0, 1, 0), testMaterial())

	tval, hit := plane.Intersect(types.NewRay(types.XYZ(0, 1, 0), types.XYZ(0, -1, 0)))
	if !hit {
		t.Fatal("expected downward ray to hit the plane")
	}
	if !approxEq(tval, 2.0, 1e-4) {
		t.Fatalf("expected hit parameter 2; got %f", tval)
	}

	// Parallel ray never hits.
	if _, hit = plane.Intersect(types.NewRay(types.XYZ(0, 1, 0), types.XYZ(1, 0, 0))); hit {
		t.Fatal("expected parallel ray to miss the plane")
	}

	// Plane behind the ray.
	if _, hit = plane.Intersect(types.NewRay(types.XYZ(0, 1, 0), types.XYZ(0, 1, 0))); hit {
		t.Fatal("expected upward ray to miss the plane")
	}
}

func TestTriangleIntersect(t *testing.T) {
	tri := NewTriangle(
		types.XYZ(-1, -1, 0),
		types.XYZ(1, -1, 0),
		types.XYZ(0, 1, 0),
		testMaterial(),
	)

	tval, hit := tri.Intersect(types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1)))
	if !hit {
		t.Fatal("expected central ray to hit the triangle")
	}
	if !approxEq(tval, 5.0, 1e-4) {
		t.Fatalf("expected hit parameter 5; got %f", tval)
	}

	if _, hit = tri.Intersect(types.NewRay(types.XYZ(2, 2, 5), types.XYZ(0, 0, -1))); hit {
		t.Fatal("expected offset ray to miss the triangle")
	}

	normal := tri.NormalAt(types.XYZ(0, 0, 0))
	if !approxEq(normal[2], 1, 1e-4) {
		t.Fatalf("expected normal along +z; got %v", normal)
	}
}

func TestQuadIntersectAndUV(t *testing.T) {
	quad := NewQuad(
		types.XYZ(-1, -1, 0),
		types.XYZ(1, -1, 0),
		types.XYZ(1, 1, 0),
		types.XYZ(-1, 1, 0),
		testMaterial(),
	)

	// Both halves of the quad must report hits.
	for _, origin := range []types.Vec3{
		types.XYZ(0.5, 0.5, 5),
		types.XYZ(-0.5, -0.5, 5),
	} {
		tval, hit := quad.Intersect(types.NewRay(origin, types.XYZ(0, 0, -1)))
		if !hit {
			t.Fatalf("expected ray from %v to hit the quad", origin)
		}
		if !approxEq(tval, 5.0, 1e-4) {
			t.Fatalf("expected hit parameter 5; got %f", tval)
		}
	}

	if _, hit := quad.Intersect(types.NewRay(types.XYZ(1.5, 0, 5), types.XYZ(0, 0, -1))); hit {
		t.Fatal("expected ray outside the quad to miss")
	}

	u, v := quad.UVAt(types.XYZ(1, 1, 0))
	if !approxEq(u, 1, 1e-4) || !approxEq(v, 1, 1e-4) {
		t.Fatalf("expected UV (1, 1) at the far corner; got (%f, %f)", u, v)
	}
	u, v = quad.UVAt(types.XYZ(0, 0, 0))
	if !approxEq(u, 0.5, 1e-4) || !approxEq(v, 0.5, 1e-4) {
		t.Fatalf("expected UV (0.5, 0.5) at the center; got (%f, %f)", u, v)
	}
}

func TestTriangleUVInterpolation(t *testing.T) {
	tri := NewTriangle(
		types.XYZ(0, 0, 0),
		types.XYZ(2, 0, 0),
		types.XYZ(0, 2, 0),
		testMaterial(),
	)

	// Default UVs map the vertices to (0,0), (1,0) and (0,1).
	u, v := tri.UVAt(types.XYZ(2, 0, 0))
	if !approxEq(u, 1, 1e-4) || !approxEq(v, 0, 1e-4) {
		t.Fatalf("expected UV (1, 0) at the second vertex; got (%f, %f)", u, v)
	}
	u, v = tri.UVAt(types.XYZ(1, 1, 0))
	if !approxEq(u, 0.5, 1e-4) || !approxEq(v, 0.5, 1e-4) {
		t.Fatalf("expected UV (0.5, 0.5) at the edge midpoint; got (%f, %f)", u, v)
	}
}

func approxEq(a, b, epsilon float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}
