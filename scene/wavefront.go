package scene

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vega-rt/vega/asset"
	"github.com/vega-rt/vega/log"
	"github.com/vega-rt/vega/types"
)

var wavefrontLogger = log.New("wavefront")

// Load a wavefront OBJ mesh as a list of triangle primitives sharing the
// given material. The path may point to a local file or an http/https URL.
// Only v, vt and f statements are honored; faces with more than three
// vertices are triangulated as a fan. Vertex normals are ignored since
// triangle primitives shade with their face normal.
func LoadWavefront(path string, material *Material) ([]*Primitive, error) {
	f, err := asset.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavefront: %v", err)
	}
	defer f.Close()

	start := time.Now()
	prims, err := parseWavefront(f, material)
	if err != nil {
		return nil, fmt.Errorf("wavefront: %s: %v", path, err)
	}
	wavefrontLogger.Infof("parsed %q (%d triangles) in %d ms", path, len(prims), time.Since(start).Nanoseconds()/1e6)
	return prims, nil
}

func parseWavefront(r io.Reader, material *Material) ([]*Primitive, error) {
	var (
		verts  []types.Vec3
		uvs    []types.Vec2
		prims  []*Primitive
		lineNo int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseFloatList(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %v", lineNo, err)
			}
			verts = append(verts, types.XYZ(v[0], v[1], v[2]))
		case "vt":
			v, err := parseFloatList(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: tex coord: %v", lineNo, err)
			}
			uvs = append(uvs, types.XY(v[0], v[1]))
		case "f":
			face, faceUV, err := parseFace(fields[1:], len(verts), len(uvs))
			if err != nil {
				return nil, fmt.Errorf("line %d: face: %v", lineNo, err)
			}

			// Triangulate as a fan around the first vertex.
			for i := 1; i < len(face)-1; i++ {
				tri := NewTriangle(verts[face[0]], verts[face[i]], verts[face[i+1]], material)
				if faceUV != nil {
					tri.UV[0] = uvs[faceUV[0]]
					tri.UV[1] = uvs[faceUV[i]]
					tri.UV[2] = uvs[faceUV[i+1]]
				}
				prims = append(prims, tri)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(prims) == 0 {
		return nil, fmt.Errorf("no faces defined")
	}
	return prims, nil
}

func parseFloatList(fields []string, want int) ([]float32, error) {
	if len(fields) < want {
		return nil, fmt.Errorf("expected %d components; got %d", want, len(fields))
	}
	out := make([]float32, want)
	for i := 0; i < want; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

// Parse the vertex and optional tex-coord indices of a face statement.
// OBJ indices are 1-based and may be negative (relative to the end of the
// current vertex list).
func parseFace(fields []string, numVerts, numUVs int) ([]int, []int, error) {
	if len(fields) < 3 {
		return nil, nil, fmt.Errorf("expected at least 3 vertices; got %d", len(fields))
	}

	face := make([]int, len(fields))
	var faceUV []int
	for i, field := range fields {
		comps := strings.Split(field, "/")

		vIdx, err := resolveIndex(comps[0], numVerts)
		if err != nil {
			return nil, nil, err
		}
		face[i] = vIdx

		if len(comps) > 1 && comps[1] != "" {
			uvIdx, err := resolveIndex(comps[1], numUVs)
			if err != nil {
				return nil, nil, err
			}
			if faceUV == nil {
				faceUV = make([]int, len(fields))
			}
			faceUV[i] = uvIdx
		}
	}
	if faceUV != nil {
		for i := range faceUV {
			if faceUV[i] >= numUVs {
				return nil, nil, fmt.Errorf("tex coord index out of range")
			}
		}
	}
	return face, faceUV, nil
}

func resolveIndex(s string, listLen int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case idx > 0 && idx <= listLen:
		return idx - 1, nil
	case idx < 0 && listLen+idx >= 0:
		return listLen + idx, nil
	}
	return 0, fmt.Errorf("index %d out of range [1, %d]", idx, listLen)
}
