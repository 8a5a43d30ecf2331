package pixel

import (
	math "github.com/chewxy/math32"

	"github.com/softrast/softrast/internal/bitvec"
)

// Profile holds the current draw color for one pixel format and
// packs and unpacks pixels in a byte buffer at a pixel index.
type Profile struct {
	format     Format
	r, g, b, a uint8
	m          bool
}

// NewProfile returns a profile for the format with the color
// set to opaque black.
func NewProfile(format Format) Profile {
	return Profile{format: format, a: 255}
}

// Format returns the profile's pixel format.
func (p *Profile) Format() Format { return p.format }

// SetRGB sets the current color. Components are clamped to [0, 1]
// and quantized to 8 bits. Alpha becomes fully opaque.
func (p *Profile) SetRGB(r, g, b float32) {
	p.SetRGBA(r, g, b, 1)
}

// SetRGBA sets the current color with an explicit alpha.
// Components are clamped to [0, 1] and quantized to 8 bits.
func (p *Profile) SetRGBA(r, g, b, a float32) {
	p.r = quantize(r)
	p.g = quantize(g)
	p.b = quantize(b)
	p.a = quantize(a)
	p.m = p.r > 0 || p.g > 0 || p.b > 0
}

// SetMono sets the current color from a monochrome value.
func (p *Profile) SetMono(on bool) {
	p.m = on
	if on {
		p.r, p.g, p.b, p.a = 255, 255, 255, 255
	} else {
		p.r, p.g, p.b, p.a = 0, 0, 0, 255
	}
}

// SetColor sets the current color from a shader color.
// The channels must already be in [0, 1].
func (p *Profile) SetColor(c Color) {
	p.r = uint8(255 * c.R)
	p.g = uint8(255 * c.G)
	p.b = uint8(255 * c.B)
	p.a = uint8(255 * c.A)
	p.m = c.M
}

// Color returns the current color in normalized form.
func (p *Profile) Color() Color {
	return Color{
		R: float32(p.r) / 255,
		G: float32(p.g) / 255,
		B: float32(p.b) / 255,
		A: float32(p.a) / 255,
		M: p.m,

		IsMono:   p.format == Mono1,
		HasAlpha: p.format == RGBA32,
	}
}

// PutPixel writes the current color at pixel n of buf.
func (p *Profile) PutPixel(buf []byte, n int) {
	switch p.format {
	case Mono1:
		v := bitvec.V(buf)
		if p.m && p.a > 0 {
			v.Set(n)
		} else if p.a > 0 {
			v.Unset(n)
		}
	case RGB24:
		buf[n*3+0] = p.r
		buf[n*3+1] = p.g
		buf[n*3+2] = p.b
	default:
		buf[n*4+0] = p.r
		buf[n*4+1] = p.g
		buf[n*4+2] = p.b
		buf[n*4+3] = p.a
	}
}

// PutPixelBlend composes the current color over pixel n of buf
// with source-over alpha blending. Mono1 treats any nonzero alpha
// as an opaque write.
func (p *Profile) PutPixelBlend(buf []byte, n int) {
	switch p.format {
	case Mono1:
		p.PutPixel(buf, n)
	case RGB24:
		c := p.Color().AlphaBlend(p.GetPixel(buf, n))
		buf[n*3+0] = uint8(255 * c.R)
		buf[n*3+1] = uint8(255 * c.G)
		buf[n*3+2] = uint8(255 * c.B)
	default:
		c := p.Color().AlphaBlend(p.GetPixel(buf, n))
		buf[n*4+0] = uint8(255 * c.R)
		buf[n*4+1] = uint8(255 * c.G)
		buf[n*4+2] = uint8(255 * c.B)
		buf[n*4+3] = uint8(255 * c.A)
	}
}

// GetPixel returns pixel n of buf in normalized form.
func (p *Profile) GetPixel(buf []byte, n int) Color {
	const inv = 1.0 / 255.0
	switch p.format {
	case Mono1:
		c := Color{IsMono: true}
		if bitvec.V(buf).IsSet(n) {
			c.M = true
			c.R, c.G, c.B, c.A = 1, 1, 1, 1
		}
		return c
	case RGB24:
		return Color{
			R: float32(buf[n*3+0]) * inv,
			G: float32(buf[n*3+1]) * inv,
			B: float32(buf[n*3+2]) * inv,
			A: 1,
			M: true,
		}
	default:
		return Color{
			R: float32(buf[n*4+0]) * inv,
			G: float32(buf[n*4+1]) * inv,
			B: float32(buf[n*4+2]) * inv,
			A: float32(buf[n*4+3]) * inv,
			M: true,

			HasAlpha: true,
		}
	}
}

func quantize(v float32) uint8 {
	if v > 1 {
		v = 1
	} else if v < 0 {
		v = 0
	}
	return uint8(math.Round(255 * v))
}
