// Package font parses the bitmap font container used by the
// text renderer.
//
// The container starts with the character width in pixels, a
// big-endian uint32 bitmap width, the bitmap height, and the
// byte offset of the bitmap itself. Between the header and the
// bitmap sits a character mapping table of (character, column
// index) byte pairs. The bitmap packs pixels one bit each,
// MSB first.
package font

import (
	"errors"
)

const (
	charWidthIndex   = 0
	widthIndex       = 1
	heightIndex      = 5
	bitmapStartIndex = 6
	mappingStart     = 7
)

var errShortData = errors.New("font: container data too short")

// Font is a fixed-cell bitmap font.
type Font struct {
	data      []byte
	charWidth int
	width     int
	height    int
	bitmap    []byte
	index     map[byte]int
}

// Decode parses a font container.
func Decode(data []byte) (*Font, error) {
	if len(data) < mappingStart {
		return nil, errShortData
	}
	f := &Font{
		data:      data,
		charWidth: int(data[charWidthIndex]),
		width: int(data[widthIndex])<<24 | int(data[widthIndex+1])<<16 |
			int(data[widthIndex+2])<<8 | int(data[widthIndex+3]),
		height: int(data[heightIndex]),
		index:  make(map[byte]int),
	}
	start := int(data[bitmapStartIndex])
	if start > len(data) {
		return nil, errShortData
	}
	f.bitmap = data[start:]
	for i := mappingStart; i+1 < start; i += 2 {
		f.index[data[i]] = int(data[i+1])
	}
	return f, nil
}

// CharacterWidth returns the width of one character cell.
func (f *Font) CharacterWidth() int { return f.charWidth }

// BitmapWidth returns the width of the whole bitmap.
func (f *Font) BitmapWidth() int { return f.width }

// BitmapHeight returns the height of the bitmap.
func (f *Font) BitmapHeight() int { return f.height }

// CharacterIndex returns the cell index of ch, and whether the
// font maps it.
func (f *Font) CharacterIndex(ch byte) (int, bool) {
	i, ok := f.index[ch]
	return i, ok
}

// Bit reports whether the bitmap pixel at x, y is set.
func (f *Font) Bit(x, y int) bool {
	n := y*f.width + x
	return f.bitmap[n/8]&(1<<(7-n%8)) != 0
}
