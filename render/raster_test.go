package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softrast/softrast/linear"
	"github.com/softrast/softrast/mesh"
	"github.com/softrast/softrast/pixel"
)

// solidShader returns shader data that paints every fragment
// with the pass color.
func solidShader(cam *Camera, c pixel.Color) *TriShaderData[pixel.Color] {
	return &TriShaderData[pixel.Color]{
		Camera:  cam,
		Pass:    c,
		VShader: func(*TriShaderData[pixel.Color]) {},
		FShader: func(out *pixel.Color, sd *TriShaderData[pixel.Color], _, _, _, _, _, _ float32) {
			*out = sd.Pass
		},
	}
}

func drawCubeAt(g *Graphics, cam *Camera, z float32, c pixel.Color) {
	cube := mesh.NewCube()
	cube.Translate(0, 0, z)
	cube.ApplyTransformations()
	sd := solidShader(cam, c)
	for i := range cube.Faces {
		DrawTriangleShaded(g, cube.Faces[i], sd)
	}
}

var (
	red   = pixel.Color{R: 1, A: 1, M: true}
	green = pixel.Color{G: 1, A: 1, M: true}
)

func TestCubeFrontFaceVisible(t *testing.T) {
	g := NewGraphics(320, 240, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)

	drawCubeAt(g, cam, -2, red)

	// the face toward the camera covers the image center
	assert.True(t, isRed(pixelRGB(g, 160, 120)))
	// corners stay empty
	assert.True(t, isBlack(pixelRGB(g, 0, 0)))
	assert.True(t, isBlack(pixelRGB(g, 319, 239)))

	// depth was written at the center
	assert.Less(t, g.DepthAt(160, 120), float32(math.Inf(1)))
}

func TestDepthOcclusion(t *testing.T) {
	g := NewGraphics(320, 240, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)

	// far cube first, near cube second: near wins
	drawCubeAt(g, cam, -2, red)
	drawCubeAt(g, cam, -1.5, green)
	c := pixelRGB(g, 160, 120)
	assert.Equal(t, float32(1), c.G)
	assert.Equal(t, float32(0), c.R)
}

func TestDepthRejectsFartherDraw(t *testing.T) {
	g := NewGraphics(320, 240, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)

	// near cube first; the farther cube sits entirely inside its
	// screen footprint and must not change a single pixel
	drawCubeAt(g, cam, -1.5, green)
	before := append([]byte(nil), g.FrameBuffer().Pix()...)
	drawCubeAt(g, cam, -2, red)

	assert.Equal(t, before, g.FrameBuffer().Pix())
}

func TestFullyClippedTriangleDrawsNothing(t *testing.T) {
	g := NewGraphics(64, 64, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)

	// behind the camera, wound so that culling keeps it and the
	// clipper has to reject it
	f := mesh.Face{V: [3]mesh.Vertex{
		{Position: linear.V4{X: -0.5, Y: -0.5, Z: 2, W: 1}, Normal: linear.V4{Z: -1}},
		{Position: linear.V4{X: 0, Y: 0.5, Z: 2, W: 1}, Normal: linear.V4{Z: -1}},
		{Position: linear.V4{X: 0.5, Y: -0.5, Z: 2, W: 1}, Normal: linear.V4{Z: -1}},
	}}
	DrawTriangleShaded(g, f, solidShader(cam, red))

	assert.Equal(t, 0, countRed(g))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			require.True(t, math.IsInf(float64(g.DepthAt(x, y)), 1),
				"depth touched at %d,%d", x, y)
		}
	}
}

func TestPartiallyClippedTriangle(t *testing.T) {
	g := NewGraphics(64, 64, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)

	// wide triangle poking out of both x planes
	f := mesh.Face{V: [3]mesh.Vertex{
		{Position: linear.V4{X: -10, Y: -0.5, Z: -2, W: 1}, Normal: linear.V4{Z: 1}},
		{Position: linear.V4{X: 10, Y: -0.5, Z: -2, W: 1}, Normal: linear.V4{Z: 1}},
		{Position: linear.V4{X: 0, Y: 0.5, Z: -2, W: 1}, Normal: linear.V4{Z: 1}},
	}}
	DrawTriangleShaded(g, f, solidShader(cam, red))

	assert.Greater(t, countRed(g), 0)
}

func TestBackFaceCulled(t *testing.T) {
	g := NewGraphics(64, 64, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)

	// winding gives a normal pointing away from the camera
	f := mesh.Face{V: [3]mesh.Vertex{
		{Position: linear.V4{X: 0.5, Y: -0.5, Z: -2, W: 1}},
		{Position: linear.V4{X: -0.5, Y: -0.5, Z: -2, W: 1}},
		{Position: linear.V4{X: 0, Y: 0.5, Z: -2, W: 1}},
	}}
	DrawTriangleShaded(g, f, solidShader(cam, red))
	assert.Equal(t, 0, countRed(g))
}

func TestDegenerateTriangleDropped(t *testing.T) {
	g := NewGraphics(64, 64, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)

	// collinear vertices
	f := mesh.Face{V: [3]mesh.Vertex{
		{Position: linear.V4{X: -0.5, Y: 0, Z: -2, W: 1}},
		{Position: linear.V4{X: 0, Y: 0, Z: -2, W: 1}},
		{Position: linear.V4{X: 0.5, Y: 0, Z: -2, W: 1}},
	}}
	DrawTriangleShaded(g, f, solidShader(cam, red))
	assert.Equal(t, 0, countRed(g))
}

func TestShadedDrawPreservesColor(t *testing.T) {
	g := NewGraphics(64, 64, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)

	g.SetColor(0, 0, 1)
	before := g.ColorProfile().Color()
	drawCubeAt(g, cam, -2, red)
	assert.Equal(t, before, g.ColorProfile().Color())
}

func TestFragmentShaderReceivesLight(t *testing.T) {
	g := NewGraphics(64, 64, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)

	var minLight, maxLight float32 = 2, -2
	sd := &TriShaderData[struct{}]{
		Camera:  cam,
		VShader: func(*TriShaderData[struct{}]) {},
		FShader: func(out *pixel.Color, _ *TriShaderData[struct{}], _, _, _, _, _, light float32) {
			if light < minLight {
				minLight = light
			}
			if light > maxLight {
				maxLight = light
			}
			*out = pixel.Color{R: light, G: light, B: light, A: 1, M: true}
		},
	}
	f := mesh.Face{V: [3]mesh.Vertex{
		{Position: linear.V4{X: -0.5, Y: -0.5, Z: -2, W: 1}, Normal: linear.V4{X: -1}},
		{Position: linear.V4{X: 0.5, Y: -0.5, Z: -2, W: 1}, Normal: linear.V4{Z: 1}},
		{Position: linear.V4{X: 0, Y: 0.5, Z: -2, W: 1}, Normal: linear.V4{Z: 1}},
	}}
	DrawTriangleShaded(g, f, sd)

	// ambient floor and diffuse ceiling from the fixed light
	assert.GreaterOrEqual(t, minLight, float32(0.19))
	assert.LessOrEqual(t, maxLight, float32(1.01))
	assert.Greater(t, maxLight, minLight)
}

func TestDrawDepthBuffer(t *testing.T) {
	g := NewGraphics(64, 64, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)

	// empty depth renders black
	g.DrawDepthBuffer(cam)
	assert.True(t, isBlack(pixelRGB(g, 32, 32)))

	drawCubeAt(g, cam, -2, red)
	g.DrawDepthBuffer(cam)
	c := pixelRGB(g, 32, 32)
	assert.Greater(t, c.R, float32(0.5))
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)
}

func TestClearDepthBuffer(t *testing.T) {
	g := NewGraphics(32, 32, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)
	drawCubeAt(g, cam, -2, red)
	require.Less(t, g.DepthAt(16, 16), float32(math.Inf(1)))
	g.ClearDepthBuffer()
	assert.True(t, math.IsInf(float64(g.DepthAt(16, 16)), 1))
}

func TestVertexShaderRuns(t *testing.T) {
	g := NewGraphics(32, 32, pixel.RGB24, true)
	cam := NewCamera(0.1, 100, 90, 1)

	ran := false
	sd := solidShader(cam, red)
	base := sd.VShader
	sd.VShader = func(d *TriShaderData[pixel.Color]) {
		ran = true
		base(d)
	}
	f := mesh.NewCube().Faces[0]
	DrawTriangleShaded(g, f, sd)
	assert.True(t, ran)
}
