package mesh

import (
	"github.com/softrast/softrast/linear"
)

// NewCube returns a unit cube centered at the origin, two
// triangles per side, with outward normals.
func NewCube() *Mesh {
	faces := make([]Face, 0, 12)
	add := func(n linear.V4, p1, p2, p3, p4 linear.V3) {
		v := func(p linear.V3, u, t float32) Vertex {
			return Vertex{
				Position: linear.V4{X: p.X, Y: p.Y, Z: p.Z, W: 1},
				Normal:   n,
				TexCoord: linear.V2{X: u, Y: t},
			}
		}
		faces = append(faces,
			Face{V: [3]Vertex{v(p1, 0, 0), v(p2, 1, 0), v(p3, 1, 1)}},
			Face{V: [3]Vertex{v(p1, 0, 0), v(p3, 1, 1), v(p4, 0, 1)}},
		)
	}

	const h = 0.5
	add(linear.V4{Z: 1},
		linear.V3{-h, -h, h}, linear.V3{h, -h, h}, linear.V3{h, h, h}, linear.V3{-h, h, h})
	add(linear.V4{Z: -1},
		linear.V3{h, -h, -h}, linear.V3{-h, -h, -h}, linear.V3{-h, h, -h}, linear.V3{h, h, -h})
	add(linear.V4{X: 1},
		linear.V3{h, -h, h}, linear.V3{h, -h, -h}, linear.V3{h, h, -h}, linear.V3{h, h, h})
	add(linear.V4{X: -1},
		linear.V3{-h, -h, -h}, linear.V3{-h, -h, h}, linear.V3{-h, h, h}, linear.V3{-h, h, -h})
	add(linear.V4{Y: 1},
		linear.V3{-h, h, h}, linear.V3{h, h, h}, linear.V3{h, h, -h}, linear.V3{-h, h, -h})
	add(linear.V4{Y: -1},
		linear.V3{-h, -h, -h}, linear.V3{h, -h, -h}, linear.V3{h, -h, h}, linear.V3{-h, -h, h})

	return New(faces)
}
