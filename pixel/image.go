package pixel

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// Image returns a copy of the frame buffer as an image.Image.
// Mono1 buffers become grayscale images; RGB24 and RGBA32 become
// NRGBA images.
func (fb *FrameBuffer) Image() image.Image {
	r := image.Rect(0, 0, fb.width, fb.height)
	prof := NewProfile(fb.format)
	if fb.format == Mono1 {
		img := image.NewGray(r)
		for n := 0; n < fb.NumPixels(); n++ {
			if prof.GetPixel(fb.pix, n).M {
				img.Pix[n] = 255
			}
		}
		return img
	}
	img := image.NewNRGBA(r)
	for n := 0; n < fb.NumPixels(); n++ {
		c := prof.GetPixel(fb.pix, n)
		img.Pix[n*4+0] = uint8(255 * c.R)
		img.Pix[n*4+1] = uint8(255 * c.G)
		img.Pix[n*4+2] = uint8(255 * c.B)
		img.Pix[n*4+3] = uint8(255 * c.A)
	}
	return img
}

// FrameBufferFromImage converts img into a frame buffer of the
// given format. Mono1 sets a pixel wherever the source luminance
// is at least half scale.
func FrameBufferFromImage(img image.Image, format Format) *FrameBuffer {
	b := img.Bounds()
	fb := NewFrameBuffer(b.Dx(), b.Dy(), format)
	prof := NewProfile(format)
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			const inv = 1.0 / 255.0
			r := float32(c.R) * inv
			g := float32(c.G) * inv
			bl := float32(c.B) * inv
			a := float32(c.A) * inv
			if format == Mono1 {
				prof.SetMono((r+g+bl)/3 >= 0.5)
			} else {
				prof.SetRGBA(r, g, bl, a)
			}
			prof.PutPixel(fb.pix, n)
			n++
		}
	}
	return fb
}

// EncodeImage writes the frame buffer to w in the named image
// format, one of "png" or "bmp".
func (fb *FrameBuffer) EncodeImage(w io.Writer, name string) error {
	switch name {
	case "png":
		return png.Encode(w, fb.Image())
	case "bmp":
		return bmp.Encode(w, fb.Image())
	}
	return fmt.Errorf("pixel: unknown image format %q", name)
}

// DecodeImage reads any registered image format from r and
// converts it into a frame buffer of the given pixel format.
func DecodeImage(r io.Reader, format Format) (*FrameBuffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixel: decoding image: %w", err)
	}
	return FrameBufferFromImage(img, format), nil
}
