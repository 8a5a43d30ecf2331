// Package render implements the CPU rasterization pipeline: the
// programmable 3D triangle path with homogeneous clipping,
// perspective-correct interpolation and depth testing, and the
// 2D primitives that share its frame buffer.
package render

import (
	"github.com/softrast/softrast/font"
	"github.com/softrast/softrast/pixel"
)

// Graphics owns a frame buffer, its color profile, and, when 3D
// rendering is enabled, a depth buffer. All drawing operations
// take normalized [0, 1] coordinates unless stated otherwise.
//
// A Graphics instance must not be shared between goroutines
// while a frame is being drawn into it.
type Graphics struct {
	width  int
	height int
	fb     *pixel.FrameBuffer
	depth  pixel.DepthBuffer
	prof   pixel.Profile
	font   *font.Font
}

// NewGraphics returns a graphics instance with a zeroed frame
// buffer. The depth buffer exists only when enable3D is set.
func NewGraphics(width, height int, format pixel.Format, enable3D bool) *Graphics {
	g := &Graphics{
		width:  width,
		height: height,
		fb:     pixel.NewFrameBuffer(width, height, format),
		prof:   pixel.NewProfile(format),
	}
	if enable3D {
		g.depth = pixel.NewDepthBuffer(width, height)
	}
	return g
}

// Width returns the frame buffer width in pixels.
func (g *Graphics) Width() int { return g.width }

// Height returns the frame buffer height in pixels.
func (g *Graphics) Height() int { return g.height }

// FrameBuffer returns the frame buffer drawn into.
func (g *Graphics) FrameBuffer() *pixel.FrameBuffer { return g.fb }

// ColorProfile returns the graphics' color profile.
func (g *Graphics) ColorProfile() *pixel.Profile { return &g.prof }

// Has3D reports whether a depth buffer exists.
func (g *Graphics) Has3D() bool { return g.depth != nil }

// DepthAt returns the depth value stored for pixel x, y.
// It is only meaningful when 3D rendering is enabled.
func (g *Graphics) DepthAt(x, y int) float32 {
	return g.depth[y*g.width+x]
}

// SetColor sets the current draw color. Components are clamped
// to [0, 1].
func (g *Graphics) SetColor(r, gr, b float32) {
	g.prof.SetRGB(r, gr, b)
}

// SetColorRGBA sets the current draw color with an explicit
// alpha. Components are clamped to [0, 1].
func (g *Graphics) SetColorRGBA(r, gr, b, a float32) {
	g.prof.SetRGBA(r, gr, b, a)
}

// SetMono sets the current draw color from a monochrome value.
func (g *Graphics) SetMono(on bool) {
	g.prof.SetMono(on)
}

// SetFont sets the font used by DrawText.
func (g *Graphics) SetFont(f *font.Font) { g.font = f }

// Font returns the current font.
func (g *Graphics) Font() *font.Font { return g.font }

// Fill writes the current color to every pixel.
func (g *Graphics) Fill() {
	pix := g.fb.Pix()
	for n := 0; n < g.width*g.height; n++ {
		g.prof.PutPixel(pix, n)
	}
}

// ClearDepthBuffer resets every depth value to +Inf.
// It does nothing when 3D rendering is disabled.
func (g *Graphics) ClearDepthBuffer() {
	if g.depth != nil {
		g.depth.Clear()
	}
}

// DrawDepthBuffer writes a grayscale visualization of the depth
// buffer into the frame buffer: each pixel gets the gray level
// 1 - (z - near)/(far - near), clamped to [0, 1], where z is the
// stored depth. The rasterizer stores z after the perspective
// divide, in [-1, 1], so drawn pixels come out close to white;
// pixels without a depth value (+Inf) come out black.
func (g *Graphics) DrawDepthBuffer(cam *Camera) {
	if g.depth == nil {
		return
	}
	prev := g.prof.Color()
	mul := 1 / (cam.Far() - cam.Near())
	pix := g.fb.Pix()
	for n := range g.depth {
		v := 1 - (g.depth[n]-cam.Near())*mul
		g.prof.SetRGB(v, v, v)
		g.prof.PutPixel(pix, n)
	}
	g.prof.SetColor(prev)
}
