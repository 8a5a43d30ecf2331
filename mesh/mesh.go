// Package mesh implements the triangle mesh data model consumed
// by the renderer.
package mesh

import (
	math "github.com/chewxy/math32"

	"github.com/softrast/softrast/linear"
)

// Vertex carries the per-vertex attributes interpolated by the
// pipeline.
type Vertex struct {
	Position linear.V4
	Normal   linear.V4
	TexCoord linear.V2
}

// Lerp interpolates every attribute between v and o by t.
func (v Vertex) Lerp(o Vertex, t float32) Vertex {
	return Vertex{
		Position: linear.LerpV4(v.Position, o.Position, t),
		Normal:   linear.LerpV4(v.Normal, o.Normal, t),
		TexCoord: linear.LerpV2(v.TexCoord, o.TexCoord, t),
	}
}

// InsideView reports whether the vertex lies inside the view
// volume in homogeneous clip space, before perspective divide.
func (v Vertex) InsideView() bool {
	w := v.Position.W
	return math.Abs(v.Position.X) <= w &&
		math.Abs(v.Position.Y) <= w &&
		math.Abs(v.Position.Z) <= w
}

// Face is a triangle of vertices. The vertex order determines
// the winding.
type Face struct {
	V [3]Vertex
}

// Normal returns the unit face normal computed from the first
// two edges. The result has w=1.
func (f *Face) Normal() linear.V4 {
	e1 := linear.SubV4(f.V[1].Position, f.V[0].Position)
	e2 := linear.SubV4(f.V[2].Position, f.V[0].Position)
	n := linear.NormV3(linear.Cross(e1.V3(), e2.V3()))
	return linear.V4{X: n.X, Y: n.Y, Z: n.Z, W: 1}
}

// Mesh is a sequence of faces together with a deferred model
// transform.
type Mesh struct {
	Faces     []Face
	Transform linear.M4
}

// New returns a mesh of the given faces with an identity
// transform.
func New(faces []Face) *Mesh {
	return &Mesh{Faces: faces, Transform: linear.I4()}
}

// Scale multiplies the deferred transform's scale by f.
func (m *Mesh) Scale(f float32) {
	m.Transform[0][0] *= f
	m.Transform[1][1] *= f
	m.Transform[2][2] *= f
}

// Translate adds x, y, z to the deferred translation.
func (m *Mesh) Translate(x, y, z float32) {
	m.Transform[3][0] += x
	m.Transform[3][1] += y
	m.Transform[3][2] += z
}

// Rotate composes a rotation by the given angles, in degrees,
// into the deferred transform.
func (m *Mesh) Rotate(x, y, z float32) {
	m.Transform = linear.MulM4(m.Transform, linear.RotationXYZ(x, y, z))
}

// ApplyTransformations folds the deferred transform into every
// vertex position and resets the transform to identity.
func (m *Mesh) ApplyTransformations() {
	for i := range m.Faces {
		for j := range m.Faces[i].V {
			p := &m.Faces[i].V[j].Position
			*p = linear.MulVM(*p, m.Transform)
		}
	}
	m.Transform = linear.I4()
}

// TransformedFace returns face i with the deferred transform
// applied to its vertex positions.
func (m *Mesh) TransformedFace(i int) Face {
	f := m.Faces[i]
	for j := range f.V {
		f.V[j].Position = linear.MulVM(f.V[j].Position, m.Transform)
	}
	return f
}
