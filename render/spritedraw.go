package render

import (
	"github.com/softrast/softrast/linear"
	"github.com/softrast/softrast/mesh"
	"github.com/softrast/softrast/pixel"
	"github.com/softrast/softrast/sprite"
	"github.com/softrast/softrast/texture"
)

// spriteVShader leaves the shader data untouched.
func spriteVShader(*TriShaderData[struct{}]) {}

// spriteFShader samples texture slot 0.
func spriteFShader(out *pixel.Color, sd *TriShaderData[struct{}], _, _, _, u, v, _ float32) {
	*out = sd.Textures[0].Sample(u, v)
}

// DrawSprite blits the sprite with its top-left corner at the
// given normalized position, honoring the sprite's scale,
// rotation angle and pivot. The blit builds a two-face textured
// quad and re-enters the 3D rasterizer with alpha blending, so
// transparent sprite pixels leave the frame buffer untouched.
func (g *Graphics) DrawSprite(xStart, yStart float32, s *sprite.Sprite) {
	spriteW := float32(s.Width())
	spriteH := float32(s.Height())
	rotX := float32(s.RotationPointX())
	rotY := float32(s.RotationPointY())
	x := xStart * float32(g.width)
	y := yStart * float32(g.height)

	vert := func(px, py, u, v float32) mesh.Vertex {
		return mesh.Vertex{
			Position: linear.V4{X: px, Y: py, W: 1},
			Normal:   linear.V4{Z: -1},
			TexCoord: linear.V2{X: u, Y: v},
		}
	}
	quad := mesh.New([]mesh.Face{
		{V: [3]mesh.Vertex{
			vert(x, y, 0, 1),
			vert(x+spriteW, y, 1, 1),
			vert(x+spriteW, y+spriteH, 1, 0),
		}},
		{V: [3]mesh.Vertex{
			vert(x, y, 0, 1),
			vert(x+spriteW, y+spriteH, 1, 0),
			vert(x, y+spriteH, 0, 0),
		}},
	})

	// rotate about the pivot, then scale about it
	quad.Translate(-x-rotX, -y-rotY, 0)
	quad.Rotate(0, 0, float32(s.RotationAngle()))
	quad.ApplyTransformations()
	quad.Scale(s.ScaleFactor())
	quad.Translate(x+rotX, y+rotY, 0)

	sd := &TriShaderData[struct{}]{
		Textures: [maxShaderTextures]*texture.Texture{s.Texture()},
		Camera:   NewScreenCamera(g.width, g.height),
		VShader:  spriteVShader,
		FShader:  spriteFShader,
	}

	drawShaded(g, quad.TransformedFace(0), sd, true)
	drawShaded(g, quad.TransformedFace(1), sd, true)
}
