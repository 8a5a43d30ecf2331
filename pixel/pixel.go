// Package pixel implements the pixel formats, color handling and
// byte-level frame buffer access used by the renderer.
package pixel

import "fmt"

// Format identifies the layout of a pixel buffer.
type Format int

// Pixel formats.
const (
	Mono1 Format = iota // 1 bit per pixel, MSB first
	RGB24               // 3 bytes per pixel
	RGBA32              // 4 bytes per pixel
)

// Bits returns the number of bits used per pixel.
func (f Format) Bits() int {
	switch f {
	case Mono1:
		return 1
	case RGB24:
		return 24
	default:
		return 32
	}
}

// BufferSize returns the number of bytes needed to store
// width x height pixels of the format.
func (f Format) BufferSize(width, height int) int {
	switch f {
	case Mono1:
		return (width*height + 7) / 8
	case RGB24:
		return width * height * 3
	default:
		return width * height * 4
	}
}

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case Mono1:
		return "mono1"
	case RGB24:
		return "rgb24"
	case RGBA32:
		return "rgba32"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "mono1":
		return Mono1, nil
	case "rgb24":
		return RGB24, nil
	case "rgba32":
		return RGBA32, nil
	}
	return 0, fmt.Errorf("pixel: unknown format %q", s)
}
