package pixel

import (
	"fmt"
	"math"
)

// FrameBuffer is a byte-backed pixel buffer of a fixed size
// and format.
type FrameBuffer struct {
	width  int
	height int
	format Format
	pix    []byte
}

// NewFrameBuffer returns a zeroed frame buffer.
func NewFrameBuffer(width, height int, format Format) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		format: format,
		pix:    make([]byte, format.BufferSize(width, height)),
	}
}

// NewFrameBufferPix returns a frame buffer initialized with a copy
// of the given pixel data. The data must match the buffer size of
// the format.
func NewFrameBufferPix(width, height int, format Format, pix []byte) (*FrameBuffer, error) {
	if n := format.BufferSize(width, height); len(pix) != n {
		return nil, fmt.Errorf("pixel: have %d bytes of pixel data, want %d", len(pix), n)
	}
	fb := NewFrameBuffer(width, height, format)
	copy(fb.pix, pix)
	return fb, nil
}

// Width returns the width in pixels.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the height in pixels.
func (fb *FrameBuffer) Height() int { return fb.height }

// Format returns the pixel format.
func (fb *FrameBuffer) Format() Format { return fb.format }

// NumPixels returns the number of pixels.
func (fb *FrameBuffer) NumPixels() int { return fb.width * fb.height }

// Pix returns the backing pixel bytes.
func (fb *FrameBuffer) Pix() []byte { return fb.pix }

// DepthBuffer stores one float32 depth value per pixel.
type DepthBuffer []float32

// NewDepthBuffer returns a depth buffer for width x height pixels,
// cleared to +Inf.
func NewDepthBuffer(width, height int) DepthBuffer {
	d := make(DepthBuffer, width*height)
	d.Clear()
	return d
}

// Clear resets every depth value to +Inf.
func (d DepthBuffer) Clear() {
	if len(d) == 0 {
		return
	}
	d[0] = float32(math.Inf(1))
	for i := 1; i < len(d); i *= 2 {
		copy(d[i:], d[:i])
	}
}
