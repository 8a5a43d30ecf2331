// Package texture provides pixel buffers sampled by the 3D
// pipeline, and their binary container format.
package texture

import (
	math "github.com/chewxy/math32"

	"github.com/softrast/softrast/pixel"
)

// Texture is a frame buffer with a nearest-neighbor sampler.
type Texture struct {
	fb   *pixel.FrameBuffer
	prof pixel.Profile
}

// New returns a zeroed texture.
func New(width, height int, format pixel.Format) *Texture {
	return &Texture{
		fb:   pixel.NewFrameBuffer(width, height, format),
		prof: pixel.NewProfile(format),
	}
}

// FromFrameBuffer wraps fb as a texture. The texture shares
// fb's storage.
func FromFrameBuffer(fb *pixel.FrameBuffer) *Texture {
	return &Texture{fb: fb, prof: pixel.NewProfile(fb.Format())}
}

// FrameBuffer returns the texture's backing frame buffer.
func (t *Texture) FrameBuffer() *pixel.FrameBuffer { return t.fb }

// Width returns the width in pixels.
func (t *Texture) Width() int { return t.fb.Width() }

// Height returns the height in pixels.
func (t *Texture) Height() int { return t.fb.Height() }

// Format returns the pixel format.
func (t *Texture) Format() pixel.Format { return t.fb.Format() }

// At returns the pixel at x, y.
func (t *Texture) At(x, y int) pixel.Color {
	return t.prof.GetPixel(t.fb.Pix(), y*t.fb.Width()+x)
}

// Sample returns the nearest pixel for the texture coordinates
// u, v. Coordinates wrap into [0, 1), so sampling is periodic in
// both directions.
func (t *Texture) Sample(u, v float32) pixel.Color {
	u -= math.Floor(u)
	v -= math.Floor(v)

	x := int(u * float32(t.fb.Width()-1))
	y := int(v * float32(t.fb.Height()-1))
	return t.prof.GetPixel(t.fb.Pix(), y*t.fb.Width()+x)
}
