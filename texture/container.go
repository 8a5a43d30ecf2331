package texture

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/softrast/softrast/pixel"
)

// The container layout is a one-byte format tag, big-endian
// uint32 width and height, then raw pixel bytes in the tagged
// format.
const headerSize = 9

// Format tags.
const (
	tagRGB24 = iota
	tagRGBA32
	tagMono1
)

var errShortData = errors.New("texture: container data too short")

// Decode parses a binary texture container.
func Decode(data []byte) (*Texture, error) {
	if len(data) < headerSize {
		return nil, errShortData
	}
	format, err := tagFormat(data[0])
	if err != nil {
		return nil, err
	}
	width := int(binary.BigEndian.Uint32(data[1:5]))
	height := int(binary.BigEndian.Uint32(data[5:9]))
	fb, err := pixel.NewFrameBufferPix(width, height, format, data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	return FromFrameBuffer(fb), nil
}

// Encode serializes the texture into the binary container layout.
func Encode(t *Texture) []byte {
	data := make([]byte, headerSize+len(t.fb.Pix()))
	data[0] = formatTag(t.Format())
	binary.BigEndian.PutUint32(data[1:5], uint32(t.Width()))
	binary.BigEndian.PutUint32(data[5:9], uint32(t.Height()))
	copy(data[headerSize:], t.fb.Pix())
	return data
}

func tagFormat(tag byte) (pixel.Format, error) {
	switch tag {
	case tagRGB24:
		return pixel.RGB24, nil
	case tagRGBA32:
		return pixel.RGBA32, nil
	case tagMono1:
		return pixel.Mono1, nil
	}
	return 0, fmt.Errorf("texture: unknown format tag %d", tag)
}

func formatTag(f pixel.Format) byte {
	switch f {
	case pixel.RGB24:
		return tagRGB24
	case pixel.RGBA32:
		return tagRGBA32
	default:
		return tagMono1
	}
}
