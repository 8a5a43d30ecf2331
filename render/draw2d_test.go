package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softrast/softrast/pixel"
)

// pixelRGB returns the pixel at x, y.
func pixelRGB(g *Graphics, x, y int) pixel.Color {
	return g.ColorProfile().GetPixel(g.FrameBuffer().Pix(), y*g.Width()+x)
}

func isRed(c pixel.Color) bool   { return c.R == 1 && c.G == 0 && c.B == 0 }
func isBlack(c pixel.Color) bool { return c.R == 0 && c.G == 0 && c.B == 0 }

func countRed(g *Graphics) int {
	n := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if isRed(pixelRGB(g, x, y)) {
				n++
			}
		}
	}
	return n
}

func TestFill(t *testing.T) {
	g := NewGraphics(4, 4, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	g.Fill()
	assert.Equal(t, 16, countRed(g))
}

func TestDrawLineClippedHorizontal(t *testing.T) {
	g := NewGraphics(100, 100, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	g.DrawLine(-0.5, 0.5, 1.5, 0.5)

	assert.Equal(t, 100, countRed(g))
	for x := 0; x < 100; x++ {
		assert.True(t, isRed(pixelRGB(g, x, 50)), "column %d", x)
	}
}

func TestDrawLineRejectedOutside(t *testing.T) {
	g := NewGraphics(32, 32, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	g.DrawLine(-0.5, -0.5, -0.1, -0.2)
	g.DrawLine(1.2, 0.1, 1.5, 0.9)
	assert.Equal(t, 0, countRed(g))
}

func TestDrawLineVertical(t *testing.T) {
	g := NewGraphics(50, 50, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	g.DrawLine(0.5, 0, 0.5, 1)

	for y := 0; y < 50; y++ {
		assert.True(t, isRed(pixelRGB(g, 25, y)), "row %d", y)
	}
	assert.Equal(t, 50, countRed(g))
}

func TestDrawBoxBorder(t *testing.T) {
	g := NewGraphics(320, 240, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	g.DrawBox(0, 0, 1, 1)

	for x := 0; x < 320; x++ {
		assert.True(t, isRed(pixelRGB(g, x, 0)), "top %d", x)
		assert.True(t, isRed(pixelRGB(g, x, 239)), "bottom %d", x)
	}
	for y := 0; y < 240; y++ {
		assert.True(t, isRed(pixelRGB(g, 0, y)), "left %d", y)
		assert.True(t, isRed(pixelRGB(g, 319, y)), "right %d", y)
	}
	assert.True(t, isBlack(pixelRGB(g, 5, 5)))
	assert.True(t, isBlack(pixelRGB(g, 160, 120)))
}

func TestDrawBoxFilled(t *testing.T) {
	g := NewGraphics(40, 40, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	g.DrawBoxFilled(0.25, 0.25, 0.75, 0.75)

	require.Greater(t, countRed(g), 0)
	assert.True(t, isRed(pixelRGB(g, 20, 20)))
	assert.True(t, isBlack(pixelRGB(g, 2, 2)))
	assert.True(t, isBlack(pixelRGB(g, 38, 38)))
}

func TestDrawTriangleFilledDiagonal(t *testing.T) {
	g := NewGraphics(320, 240, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	g.DrawTriangleFilled(0, 0, 1, 0, 0, 1)

	// corner on the right angle is covered, the far corner is not
	assert.True(t, isRed(pixelRGB(g, 0, 0)))
	assert.True(t, isBlack(pixelRGB(g, 319, 239)))

	// below the anti-diagonal is filled, above it is not
	assert.True(t, isRed(pixelRGB(g, 0, 238)))
	assert.True(t, isRed(pixelRGB(g, 158, 120)))
	assert.True(t, isBlack(pixelRGB(g, 159, 120)))
	assert.True(t, isBlack(pixelRGB(g, 300, 120)))
}

func TestDrawTriangleFilledClipped(t *testing.T) {
	g := NewGraphics(64, 64, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	// spills over every border; must not panic or wrap
	g.DrawTriangleFilled(-0.5, -0.5, 1.5, 0.5, 0.5, 1.5)
	assert.Greater(t, countRed(g), 0)
}

func TestDrawTriangleFilledOutside(t *testing.T) {
	g := NewGraphics(64, 64, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	g.DrawTriangleFilled(1.5, 0, 2.5, 0, 2, 1)
	assert.Equal(t, 0, countRed(g))
}

func TestDrawCircleFilled(t *testing.T) {
	g := NewGraphics(100, 100, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	g.DrawCircleFilled(0.5, 0.5, 0.25)

	assert.True(t, isRed(pixelRGB(g, 49, 49)))
	// 0.25 of the width is ~24 pixels of radius
	assert.True(t, isRed(pixelRGB(g, 49+20, 49)))
	assert.True(t, isBlack(pixelRGB(g, 49+30, 49)))
	assert.True(t, isBlack(pixelRGB(g, 2, 2)))
}

func TestDrawCircleClipped(t *testing.T) {
	g := NewGraphics(50, 50, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	// center near the corner; the circle crosses two borders
	g.DrawCircleFilled(0.05, 0.05, 0.3)
	assert.Greater(t, countRed(g), 0)
}

func TestDrawQuadFilled(t *testing.T) {
	g := NewGraphics(64, 64, pixel.RGB24, false)
	g.SetColor(1, 0, 0)
	g.DrawQuadFilled(0.2, 0.2, 0.8, 0.2, 0.8, 0.8, 0.2, 0.8)
	assert.True(t, isRed(pixelRGB(g, 31, 31)))
	assert.True(t, isBlack(pixelRGB(g, 5, 31)))
}

func TestSetMonoFill(t *testing.T) {
	g := NewGraphics(16, 8, pixel.Mono1, false)
	g.SetMono(true)
	g.Fill()
	for _, b := range g.FrameBuffer().Pix() {
		assert.Equal(t, byte(0xff), b)
	}
	g.SetMono(false)
	g.Fill()
	for _, b := range g.FrameBuffer().Pix() {
		assert.Equal(t, byte(0), b)
	}
}
