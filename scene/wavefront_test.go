package scene

import (
	"strings"
	"testing"

	"github.com/vega-rt/vega/types"
)

const quadObj = `
# a unit quad in the xy plane
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`

func TestParseWavefrontFanTriangulation(t *testing.T) {
	mat := NewPhong(NewFlatTexture(RGB(1, 1, 1)), 0.9, 0.1, 16)
	prims, err := parseWavefront(strings.NewReader(quadObj), mat)
	if err != nil {
		t.Fatalf("expected no error; got %v", err)
	}
	if len(prims) != 2 {
		t.Fatalf("expected quad face to triangulate into 2 primitives; got %d", len(prims))
	}

	for i, prim := range prims {
		if prim.Type != TrianglePrimitive {
			t.Fatalf("expected primitive %d to be a triangle; got type %d", i, prim.Type)
		}
		if prim.Material != mat {
			t.Fatalf("expected primitive %d to share the mesh material", i)
		}
	}

	// Fan around vertex 1: triangles (1,2,3) and (1,3,4).
	if got := prims[1].Verts[1]; got != types.XYZ(1, 1, 0) {
		t.Fatalf("expected second triangle middle vertex (1, 1, 0); got %v", got)
	}
	if got := prims[0].UV[2]; got != types.XY(1, 1) {
		t.Fatalf("expected first triangle uv[2] to be (1, 1); got %v", got)
	}
}

func TestParseWavefrontNegativeIndices(t *testing.T) {
	payload := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	prims, err := parseWavefront(strings.NewReader(payload), nil)
	if err != nil {
		t.Fatalf("expected no error; got %v", err)
	}
	if len(prims) != 1 {
		t.Fatalf("expected 1 triangle; got %d", len(prims))
	}
	if got := prims[0].Verts[2]; got != types.XYZ(0, 1, 0) {
		t.Fatalf("expected third vertex (0, 1, 0); got %v", got)
	}
}

func TestParseWavefrontErrors(t *testing.T) {
	specs := []struct {
		descr   string
		payload string
	}{
		{"no faces", "v 0 0 0\nv 1 0 0\nv 0 1 0\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nf 1 2 3\n"},
		{"short vertex", "v 0 0\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"bad float", "v a b c\n"},
	}

	for _, spec := range specs {
		if _, err := parseWavefront(strings.NewReader(spec.payload), nil); err == nil {
			t.Fatalf("[%s] expected a parse error; got none", spec.descr)
		}
	}
}
