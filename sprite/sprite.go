// Package sprite defines a texture with blit-time scaling and
// rotation state.
package sprite

import (
	math "github.com/chewxy/math32"

	"github.com/softrast/softrast/pixel"
	"github.com/softrast/softrast/texture"
)

// Sprite is a texture together with a uniform scale factor,
// a rotation angle and a rotation pivot.
type Sprite struct {
	tex *texture.Texture

	scale  float32
	rotDeg int
	pivotX int
	pivotY int
}

// New returns a sprite with scale 1, no rotation and the pivot
// at the texture center.
func New(width, height int, format pixel.Format) *Sprite {
	return FromTexture(texture.New(width, height, format))
}

// FromTexture wraps t as a sprite.
func FromTexture(t *texture.Texture) *Sprite {
	return &Sprite{
		tex:    t,
		scale:  1,
		pivotX: t.Width() / 2,
		pivotY: t.Height() / 2,
	}
}

// Decode parses a binary texture container into a sprite.
func Decode(data []byte) (*Sprite, error) {
	t, err := texture.Decode(data)
	if err != nil {
		return nil, err
	}
	return FromTexture(t), nil
}

// Texture returns the sprite's texture.
func (s *Sprite) Texture() *texture.Texture { return s.tex }

// Width returns the unscaled width in pixels.
func (s *Sprite) Width() int { return s.tex.Width() }

// Height returns the unscaled height in pixels.
func (s *Sprite) Height() int { return s.tex.Height() }

// ScaledWidth returns the width after scaling.
func (s *Sprite) ScaledWidth() int {
	return int(math.Floor(float32(s.tex.Width()) * s.scale))
}

// ScaledHeight returns the height after scaling.
func (s *Sprite) ScaledHeight() int {
	return int(math.Floor(float32(s.tex.Height()) * s.scale))
}

// SetScaleFactor sets the uniform scale applied at blit time.
func (s *Sprite) SetScaleFactor(f float32) { s.scale = f }

// ScaleFactor returns the current scale factor.
func (s *Sprite) ScaleFactor() float32 { return s.scale }

// SetRotationAngle sets the blit rotation. Any angle is
// normalized into [0, 360).
func (s *Sprite) SetRotationAngle(degrees int) {
	if degrees < 0 {
		s.rotDeg = 360 - (-degrees)%360
		if s.rotDeg == 360 {
			s.rotDeg = 0
		}
	} else {
		s.rotDeg = degrees % 360
	}
}

// RotationAngle returns the rotation in degrees, in [0, 360).
func (s *Sprite) RotationAngle() int { return s.rotDeg }

// SetRotationPointX sets the pivot x as a fraction of the width,
// in [0, 1].
func (s *Sprite) SetRotationPointX(x float32) {
	s.pivotX = int(float32(s.tex.Width()-1) * x)
}

// RotationPointX returns the pivot x in pixels.
func (s *Sprite) RotationPointX() int { return s.pivotX }

// SetRotationPointY sets the pivot y as a fraction of the height,
// in [0, 1].
func (s *Sprite) SetRotationPointY(y float32) {
	s.pivotY = int(float32(s.tex.Height()-1) * y)
}

// RotationPointY returns the pivot y in pixels.
func (s *Sprite) RotationPointY() int { return s.pivotY }
