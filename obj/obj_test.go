package obj

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softrast/softrast/linear"
)

const triangleObj = `
# a single textured triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

func TestDecodeTriangle(t *testing.T) {
	m, err := Decode(strings.NewReader(triangleObj))
	require.NoError(t, err)
	require.Len(t, m.Faces, 1)

	f := m.Faces[0]
	assert.Equal(t, linear.V4{X: 0, Y: 0, Z: 0, W: 1}, f.V[0].Position)
	assert.Equal(t, linear.V4{X: 1, Y: 0, Z: 0, W: 1}, f.V[1].Position)
	assert.Equal(t, linear.V2{X: 1, Y: 0}, f.V[1].TexCoord)
	assert.Equal(t, linear.V4{X: 0, Y: 0, Z: 1, W: 1}, f.V[2].Normal)
	assert.Equal(t, linear.I4(), m.Transform)
}

func TestDecodeQuadFanTriangulates(t *testing.T) {
	const quad = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	m, err := Decode(strings.NewReader(quad))
	require.NoError(t, err)
	require.Len(t, m.Faces, 2)

	// fan from vertex 1: (1,2,3) and (1,3,4)
	assert.Equal(t, float32(0), m.Faces[0].V[0].Position.X)
	assert.Equal(t, float32(1), m.Faces[0].V[1].Position.X)
	assert.Equal(t, float32(1), m.Faces[0].V[2].Position.X)
	assert.Equal(t, float32(0), m.Faces[1].V[0].Position.X)
	assert.Equal(t, float32(1), m.Faces[1].V[1].Position.X)
	assert.Equal(t, float32(0), m.Faces[1].V[2].Position.X)
}

func TestDecodeMissingAttributes(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`
	m, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Faces, 1)
	assert.Equal(t, linear.V2{}, m.Faces[0].V[0].TexCoord)
	assert.Equal(t, linear.V4{Z: 1, W: 1}, m.Faces[0].V[0].Normal)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("v 1 2\n"))
	assert.Error(t, err, "missing vertex component")

	_, err = Decode(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	assert.Error(t, err, "face index out of range")

	_, err = Decode(strings.NewReader("f x 1 2\n"))
	assert.Error(t, err, "bad index syntax")

	_, err = Decode(strings.NewReader("v 0 0 0\nv 1 0 0\nf 1 2\n"))
	assert.Error(t, err, "degenerate face")
}

func TestDecodeIgnoresUnknownStatements(t *testing.T) {
	const src = `
mtllib scene.mtl
o triangle
v 0 0 0
v 1 0 0
v 0 1 0
s off
f 1 2 3
`
	m, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, m.Faces, 1)
}
