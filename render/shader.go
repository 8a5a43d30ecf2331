package render

import (
	"github.com/softrast/softrast/linear"
	"github.com/softrast/softrast/pixel"
	"github.com/softrast/softrast/texture"
)

// maxShaderTextures is the number of texture slots available to
// a draw call.
const maxShaderTextures = 5

// PointLight is a light source considered by the per-vertex
// lighting step.
type PointLight struct {
	Position  linear.V3
	Intensity float32
}

// VertexShader runs once per face before the pipeline transforms
// it. It may mutate the shader data in place.
type VertexShader[T any] func(sd *TriShaderData[T])

// FragmentShader runs once per generated pixel. u and v are
// perspective-correct texture coordinates, light is the
// interpolated light scalar, and b1, b2, b3 are reserved
// barycentric slots, currently zero.
type FragmentShader[T any] func(out *pixel.Color, sd *TriShaderData[T], b1, b2, b3, u, v, light float32)

// TriShaderData carries the per-draw state seen by both shader
// stages. It borrows its camera, textures and lights; Pass is an
// opaque block owned by the caller's shaders.
type TriShaderData[T any] struct {
	Textures [maxShaderTextures]*texture.Texture
	Camera   *Camera
	Color    pixel.Color
	Lights   []PointLight
	Pass     T

	VShader VertexShader[T]
	FShader FragmentShader[T]
}

// vertexLight returns the light scalar for a vertex, from the
// draw call's lights when present, else from a fixed directional
// light.
func vertexLight[T any](sd *TriShaderData[T], pos, normal linear.V4) float32 {
	n := linear.NormV4(normal)
	var amt float32
	if len(sd.Lights) > 0 {
		for i := range sd.Lights {
			d := linear.NormV3(linear.SubV3(sd.Lights[i].Position, pos.V3()))
			amt += linear.Saturate(n.X*d.X+n.Y*d.Y+n.Z*d.Z) * sd.Lights[i].Intensity
		}
		amt = linear.Saturate(amt)
	} else {
		amt = linear.Saturate(n.X*-0.5 + n.Y*-0.5)
	}
	return amt*0.8 + 0.2
}
