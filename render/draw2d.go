package render

import (
	math "github.com/chewxy/math32"
)

// Cohen-Sutherland outcode bits for the unit rectangle.
// Top is y < 0 and bottom is y > 1, matching screen orientation.
const (
	regionInside uint8 = 0
	regionLeft   uint8 = 1 << iota
	regionRight
	regionBottom
	regionTop
)

func lineRegion(x, y float32) uint8 {
	r := regionInside
	if x < 0 {
		r |= regionLeft
	} else if x > 1 {
		r |= regionRight
	}
	if y < 0 {
		r |= regionTop
	} else if y > 1 {
		r |= regionBottom
	}
	return r
}

// clipPointToRect returns where the line through (x1, y1) and
// (x2, y2) crosses the unit-rect border on the side named by
// region. Corner regions fall back to the horizontal border when
// the vertical intersection misses the rect.
func clipPointToRect(region uint8, x1, y1, x2, y2 float32) (float32, float32) {
	atY := func(edge float32) (float32, float32) {
		return x1 + (x2-x1)*(edge-y1)/(y2-y1), edge
	}
	atX := func(edge float32) (float32, float32) {
		return edge, y1 + (y2-y1)*(edge-x1)/(x2-x1)
	}

	switch {
	case region&regionTop != 0:
		switch {
		case region&regionRight != 0:
			x, y := atX(1)
			if y < 0 {
				return atY(0)
			}
			return x, y
		case region&regionLeft != 0:
			x, y := atX(0)
			if y < 0 {
				return atY(0)
			}
			return x, y
		}
		return atY(0)
	case region&regionBottom != 0:
		switch {
		case region&regionRight != 0:
			x, y := atX(1)
			if y > 1 {
				return atY(1)
			}
			return x, y
		case region&regionLeft != 0:
			x, y := atX(0)
			if y > 1 {
				return atY(1)
			}
			return x, y
		}
		return atY(1)
	case region&regionRight != 0:
		return atX(1)
	default:
		return atX(0)
	}
}

// clipLine clips the line to the unit rect. It reports false
// when the line lies entirely outside.
func clipLine(x1, y1, x2, y2 *float32) bool {
	r1 := lineRegion(*x1, *y1)
	r2 := lineRegion(*x2, *y2)

	if r1 == regionInside && r2 == regionInside {
		return true
	}
	if r1&r2 != 0 {
		return false
	}

	cx1, cy1 := *x1, *y1
	cx2, cy2 := *x2, *y2
	if r1 != regionInside {
		cx1, cy1 = clipPointToRect(r1, *x1, *y1, *x2, *y2)
	}
	if r2 != regionInside {
		cx2, cy2 = clipPointToRect(r2, *x1, *y1, *x2, *y2)
	}

	if cx1 < 0 || cx1 > 1 || cy1 < 0 || cy1 > 1 {
		return false
	}

	*x1, *y1 = cx1, cy1
	*x2, *y2 = cx2, cy2
	return true
}

// DrawLine draws a line between two points in normalized
// coordinates, clipped to the frame buffer.
func (g *Graphics) DrawLine(xStart, yStart, xEnd, yEnd float32) {
	if !clipLine(&xStart, &yStart, &xEnd, &yEnd) {
		return
	}

	w := g.width
	x1 := int(math.Ceil(xStart * float32(w-1)))
	y1 := int(math.Ceil(yStart * float32(g.height-1)))
	x2 := int(math.Ceil(xEnd * float32(w-1)))
	y2 := int(math.Ceil(yEnd * float32(g.height-1)))

	slope := float32(y2-y1) / float32(x2-x1)

	pixelStart := w*y1 + x1
	pixelEnd := w*y2 + x2
	if pixelStart > pixelEnd {
		pixelStart, pixelEnd = pixelEnd, pixelStart
	}

	pix := g.fb.Pix()
	numPixels := g.width * g.height
	put := func(i int) {
		if i >= 0 && i < numPixels {
			g.prof.PutPixel(pix, i)
		}
	}
	pixel := pixelStart
	var yAccumulator float32

	switch {
	case x1 == x2: // vertical
		for pixel <= pixelEnd {
			put(pixel)
			pixel += w
		}
	case y1 == y2: // horizontal
		for pixel <= pixelEnd {
			put(pixel)
			pixel++
		}
	case slope > 0 && slope <= 1:
		for pixel <= pixelEnd {
			for yAccumulator < 1 && pixel <= pixelEnd {
				put(pixel)
				pixel++
				yAccumulator += slope
			}
			pixel += w
			yAccumulator--
		}
	case slope < 0 && slope >= -1:
		for pixel <= pixelEnd {
			for yAccumulator < 1 && pixel <= pixelEnd-int(1/-slope) {
				put(pixel)
				pixel--
				yAccumulator -= slope
			}
			pixel += w
			yAccumulator--
		}
	case slope > 1:
		yAccumulator = slope
		for pixel <= pixelEnd {
			for yAccumulator > 1 && pixel <= pixelEnd {
				put(pixel)
				pixel += w
				yAccumulator--
			}
			pixel++
			yAccumulator += slope
		}
	default: // slope < -1
		yAccumulator = slope
		for pixel <= pixelEnd {
			for yAccumulator < -1 && pixel <= pixelEnd {
				put(pixel)
				pixel += w
				yAccumulator++
			}
			pixel--
			yAccumulator += slope
		}
	}
}

// DrawBox outlines an axis-aligned box.
func (g *Graphics) DrawBox(xStart, yStart, xEnd, yEnd float32) {
	g.DrawLine(xStart, yStart, xEnd, yStart)
	g.DrawLine(xEnd, yStart, xEnd, yEnd)
	g.DrawLine(xEnd, yEnd, xStart, yEnd)
	g.DrawLine(xStart, yEnd, xStart, yStart)
}

// DrawBoxFilled fills an axis-aligned box.
func (g *Graphics) DrawBoxFilled(xStart, yStart, xEnd, yEnd float32) {
	x1 := clampInt(int(xStart*float32(g.width-1)), 0, g.width-1)
	y1 := clampInt(int(yStart*float32(g.height-1)), 0, g.height-1)
	x2 := clampInt(int(xEnd*float32(g.width-1)), 0, g.width-1)
	y2 := clampInt(int(yEnd*float32(g.height-1)), 0, g.height-1)

	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	pix := g.fb.Pix()
	for y := y1; y < y2; y++ {
		row := y * g.width
		for x := x1; x < x2; x++ {
			g.prof.PutPixel(pix, row+x)
		}
	}
}

// DrawTriangle outlines a triangle.
func (g *Graphics) DrawTriangle(x1, y1, x2, y2, x3, y3 float32) {
	g.DrawLine(x1, y1, x2, y2)
	g.DrawLine(x2, y2, x3, y3)
	g.DrawLine(x3, y3, x1, y1)
}

// DrawQuad outlines a quadrilateral.
func (g *Graphics) DrawQuad(x1, y1, x2, y2, x3, y3, x4, y4 float32) {
	g.DrawLine(x1, y1, x2, y2)
	g.DrawLine(x2, y2, x3, y3)
	g.DrawLine(x3, y3, x4, y4)
	g.DrawLine(x4, y4, x1, y1)
}

// DrawQuadFilled fills a quadrilateral as two triangles.
func (g *Graphics) DrawQuadFilled(x1, y1, x2, y2, x3, y3, x4, y4 float32) {
	g.DrawTriangleFilled(x1, y1, x2, y2, x3, y3)
	g.DrawTriangleFilled(x1, y1, x4, y4, x3, y3)
}

// point2 is a vertex of the 2D clip polygon.
type point2 struct {
	x, y float32
}

// DrawTriangleFilled fills a triangle, clipping it to the unit
// rect first.
func (g *Graphics) DrawTriangleFilled(x1, y1, x2, y2, x3, y3 float32) {
	const maxVerts = 8
	var out [maxVerts]point2
	out[0] = point2{x1, y1}
	out[1] = point2{x2, y2}
	out[2] = point2{x3, y3}
	count := 3

	var scratch [maxVerts]point2
	for _, edge := range [2]float32{0, 1} {
		// clip x, then y
		for axis := 0; axis < 2; axis++ {
			n := count
			copy(scratch[:n], out[:n])
			count = 0
			for i := 0; i < n; i++ {
				cur := scratch[i]
				next := scratch[(i+1)%n]

				curV, nextV := cur.x, next.x
				if axis == 1 {
					curV, nextV = cur.y, next.y
				}
				var curInside, nextInside bool
				if edge == 0 {
					curInside, nextInside = curV >= 0, nextV >= 0
				} else {
					curInside, nextInside = curV <= 1, nextV <= 1
				}

				if nextInside {
					if !curInside {
						out[count] = intersect2(edge, axis, cur, next)
						count++
					}
					out[count] = next
					count++
				} else if curInside {
					out[count] = intersect2(edge, axis, cur, next)
					count++
				}
			}
			if count == 0 {
				return
			}
		}
	}

	for i := 1; i < count-1; i++ {
		g.fillTriangle(out[0].x, out[0].y, out[i].x, out[i].y, out[i+1].x, out[i+1].y)
	}
}

// intersect2 returns the point where the edge cur->next crosses
// the clip edge. Axis 0 clips x, axis 1 clips y.
func intersect2(edge float32, axis int, cur, next point2) point2 {
	if axis == 0 {
		t := (edge - cur.x) / (next.x - cur.x)
		return point2{edge, linearLerp(t, cur.y, next.y)}
	}
	t := (edge - cur.y) / (next.y - cur.y)
	return point2{linearLerp(t, cur.x, next.x), edge}
}

func linearLerp(t, a, b float32) float32 { return a + t*(b-a) }

// fillTriangle scanline-fills a triangle already inside the unit
// rect.
func (g *Graphics) fillTriangle(x1, y1, x2, y2, x3, y3 float32) {
	x1 *= float32(g.width - 1)
	y1 *= float32(g.height - 1)
	x2 *= float32(g.width - 1)
	y2 *= float32(g.height - 1)
	x3 *= float32(g.width - 1)
	y3 *= float32(g.height - 1)

	// sort ascending by y, then by x for shared scanlines
	if y2 > y3 || (ceilEq(y2, y3) && x2 > x3) {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}
	if y1 > y2 || (ceilEq(y1, y2) && x1 > x2) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y2 > y3 || (ceilEq(y2, y3) && x2 > x3) {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}

	y1Ceil := int(math.Ceil(y1))
	y2Ceil := int(math.Ceil(y2))
	y3Ceil := int(math.Ceil(y3))

	xLeftIncrTop := (x2 - x1) / (y2 - y1)
	xRightIncrTop := (x3 - x1) / (y3 - y1)
	xLeftIncrBottom := (x3 - x2) / (y3 - y2)
	xRightIncrBottom := (x3 - x1) / (y3 - y1)

	area := (x3-x1)*(y2-y1) - (x2-x1)*(y3-y1)
	if area < 0 {
		xLeftIncrTop, xRightIncrTop = xRightIncrTop, xLeftIncrTop
		xLeftIncrBottom, xRightIncrBottom = xRightIncrBottom, xLeftIncrBottom
	}

	xLeft := x1 + (float32(y1Ceil)-y1)*xLeftIncrTop
	xRight := x1 + (float32(y1Ceil)-y1)*xRightIncrTop

	pix := g.fb.Pix()
	span := func(startRow, endRow int, xLeftIncr, xRightIncr float32) {
		for row := startRow; row < endRow && row < g.height; row++ {
			leftX := clampInt(int(math.Ceil(xLeft)), 0, g.width)
			rightX := clampInt(int(math.Ceil(xRight)), 0, g.width)
			base := row * g.width
			for x := leftX; x < rightX; x++ {
				g.prof.PutPixel(pix, base+x)
			}
			xLeft += xLeftIncr
			xRight += xRightIncr
		}
	}

	span(y1Ceil, y2Ceil, xLeftIncrTop, xRightIncrTop)

	switch {
	case y1Ceil != y2Ceil:
		xLeft += (y2-float32(y2Ceil))*xLeftIncrTop + (float32(y2Ceil)-y2)*xLeftIncrBottom
		xRight += (y2-float32(y2Ceil))*xRightIncrTop + (float32(y2Ceil)-y2)*xRightIncrBottom
	case !approxEqual(y1, y2):
		xLeft = x1 + (y2-y1)*xLeftIncrTop + (float32(y2Ceil)-y2)*xLeftIncrBottom
		xRight = x1 + (y2-y1)*xRightIncrTop + (float32(y2Ceil)-y2)*xRightIncrBottom
	default:
		xLeft = x1 + (float32(y2Ceil)-y2)*xLeftIncrBottom
		xRight = x2 + (float32(y2Ceil)-y2)*xRightIncrBottom
	}

	span(y2Ceil, y3Ceil, xLeftIncrBottom, xRightIncrBottom)
}

func ceilEq(a, b float32) bool {
	return math.Ceil(a) == math.Ceil(b)
}

// DrawCircle outlines a circle with the Bresenham midpoint
// algorithm. The radius is relative to the width.
func (g *Graphics) DrawCircle(originX, originY, radius float32) {
	g.drawCircle(originX, originY, radius, false)
}

// DrawCircleFilled fills a circle.
func (g *Graphics) DrawCircleFilled(originX, originY, radius float32) {
	g.drawCircle(originX, originY, radius, true)
}

func (g *Graphics) drawCircle(originX, originY, radius float32, filled bool) {
	ox := int(originX * float32(g.width-1))
	oy := int(originY * float32(g.height-1))
	r := int(radius * float32(g.width-1))

	x := 0
	y := r
	decision := 3 - 2*r

	g.circleOctants(ox, oy, x, y, filled)
	for y >= x {
		x++
		if decision > 0 {
			y--
			decision += 4*(x-y) + 10
		} else {
			decision += 4*x + 6
		}
		g.circleOctants(ox, oy, x, y, filled)
	}
}

// circleOctants plots (or spans, when filled) the eight
// symmetric points of one Bresenham step, clipped to the frame
// buffer.
func (g *Graphics) circleOctants(originX, originY, x, y int, filled bool) {
	xRight := clampInt(originX+x, 0, g.width-1)
	xLeft := clampInt(originX-x, 0, g.width-1)
	xFarRight := clampInt(originX+y, 0, g.width-1)
	xFarLeft := clampInt(originX-y, 0, g.width-1)
	yBottom := originY + y
	yTop := originY - y
	yLow := originY + x
	yHigh := originY - x

	pix := g.fb.Pix()
	row := func(y, xFrom, xTo int) {
		if y < 0 || y >= g.height {
			return
		}
		base := y * g.width
		if filled {
			for x := xFrom; x < xTo; x++ {
				g.prof.PutPixel(pix, base+x)
			}
			return
		}
		g.prof.PutPixel(pix, base+xFrom)
		g.prof.PutPixel(pix, base+xTo)
	}

	row(yBottom, xLeft, xRight)
	row(yTop, xLeft, xRight)
	row(yLow, xFarLeft, xFarRight)
	row(yHigh, xFarLeft, xFarRight)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
