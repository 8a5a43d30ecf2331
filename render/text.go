package render

import (
	math "github.com/chewxy/math32"
)

// DrawText renders text with the current font and color,
// starting at the given normalized position. The glyph bitmap is
// scaled by nearest neighbor; pixels falling outside the frame
// buffer are dropped.
func (g *Graphics) DrawText(xStart, yStart float32, text string, scale float32) {
	if g.font == nil || scale <= 0 {
		return
	}
	// fractional upscales leave gaps between source pixels
	if scale > 1 {
		scale = math.Round(scale)
	}

	charWidth := g.font.CharacterWidth()
	charHeight := g.font.BitmapHeight()
	scaledWidth := int(math.Round(float32(charWidth) * scale))
	scaledHeight := int(math.Round(float32(charHeight) * scale))
	if scaledWidth == 0 || scaledHeight == 0 {
		return
	}

	startX := int(xStart * float32(g.width-1))
	startY := int(yStart * float32(g.height-1))

	pix := g.fb.Pix()
	for i := 0; i < len(text); i++ {
		cell, ok := g.font.CharacterIndex(text[i])
		if !ok {
			continue
		}
		baseX := startX + i*scaledWidth
		cellX := cell * charWidth

		for sy := 0; sy < scaledHeight; sy++ {
			py := startY + sy
			if py < 0 || py >= g.height {
				continue
			}
			srcY := sy * charHeight / scaledHeight
			for sx := 0; sx < scaledWidth; sx++ {
				px := baseX + sx
				if px < 0 || px >= g.width {
					continue
				}
				srcX := sx * charWidth / scaledWidth
				if g.font.Bit(cellX+srcX, srcY) {
					g.prof.PutPixel(pix, py*g.width+px)
				}
			}
		}
	}
}
