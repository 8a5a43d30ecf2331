// Package obj loads triangle meshes from Wavefront OBJ data.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/softrast/softrast/linear"
	"github.com/softrast/softrast/mesh"
)

// Decode reads OBJ data and returns the mesh it describes.
// Vertex positions (v), texture coordinates (vt), normals (vn)
// and faces (f) are honored; other statements are ignored.
// Faces with more than three vertices are fan-triangulated.
func Decode(r io.Reader) (*mesh.Mesh, error) {
	var (
		positions []linear.V4
		texCoords []linear.V2
		normals   []linear.V4
		faces     []mesh.Face
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", line, err)
			}
			positions = append(positions, linear.V4{X: p[0], Y: p[1], Z: p[2], W: 1})
		case "vt":
			p, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", line, err)
			}
			texCoords = append(texCoords, linear.V2{X: p[0], Y: p[1]})
		case "vn":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", line, err)
			}
			normals = append(normals, linear.V4{X: p[0], Y: p[1], Z: p[2], W: 1})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj: line %d: face with %d vertices", line, len(fields)-1)
			}
			verts := make([]mesh.Vertex, len(fields)-1)
			for i, ref := range fields[1:] {
				v, err := parseVertex(ref, positions, texCoords, normals)
				if err != nil {
					return nil, fmt.Errorf("obj: line %d: %w", line, err)
				}
				verts[i] = v
			}
			for i := 1; i < len(verts)-1; i++ {
				faces = append(faces, mesh.Face{V: [3]mesh.Vertex{verts[0], verts[i], verts[i+1]}})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	return mesh.New(faces), nil
}

// DecodeFile loads an OBJ file from disk.
func DecodeFile(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// parseVertex resolves one "v", "v/vt", "v//vn" or "v/vt/vn"
// face vertex. Indices are 1-based; missing attributes stay zero.
func parseVertex(ref string, positions []linear.V4, texCoords []linear.V2, normals []linear.V4) (mesh.Vertex, error) {
	var vert mesh.Vertex
	parts := strings.Split(ref, "/")
	i, err := strconv.Atoi(parts[0])
	if err != nil || i < 1 || i > len(positions) {
		return vert, fmt.Errorf("bad vertex index %q", parts[0])
	}
	vert.Position = positions[i-1]

	if len(parts) > 1 && parts[1] != "" {
		i, err := strconv.Atoi(parts[1])
		if err != nil || i < 1 || i > len(texCoords) {
			return vert, fmt.Errorf("bad texture coordinate index %q", parts[1])
		}
		vert.TexCoord = texCoords[i-1]
	}
	if len(parts) > 2 && parts[2] != "" {
		i, err := strconv.Atoi(parts[2])
		if err != nil || i < 1 || i > len(normals) {
			return vert, fmt.Errorf("bad normal index %q", parts[2])
		}
		vert.Normal = normals[i-1]
	}
	return vert, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("have %d values, want %d", len(fields), n)
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("bad value %q", fields[i])
		}
		out[i] = float32(v)
	}
	return out, nil
}
