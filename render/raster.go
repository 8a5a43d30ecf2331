package render

import (
	math "github.com/chewxy/math32"

	"github.com/softrast/softrast/mesh"
	"github.com/softrast/softrast/pixel"
)

// epsilon is the float32 machine epsilon, used when deciding
// whether two vertices share a scanline.
const epsilon = 1.1920929e-07

// gradientLimit caps attribute increments; degenerate triangles
// produce extreme gradients that are clamped to zero instead of
// propagating.
const gradientLimit = 1e5

// DrawTriangleShaded runs one face through the full 3D pipeline:
// vertex shader, view transform, back-face culling, homogeneous
// clipping, perspective divide, screen mapping and scanline
// rasterization with the fragment shader. The caller's current
// color is preserved across the call.
func DrawTriangleShaded[T any](g *Graphics, f mesh.Face, sd *TriShaderData[T]) {
	drawShaded(g, f, sd, false)
}

// DrawTriangleShadedBlend is DrawTriangleShaded with source-over
// alpha blending. Blended pixels pass the depth test but do not
// update the depth buffer.
func DrawTriangleShadedBlend[T any](g *Graphics, f mesh.Face, sd *TriShaderData[T]) {
	drawShaded(g, f, sd, true)
}

func drawShaded[T any](g *Graphics, f mesh.Face, sd *TriShaderData[T], blend bool) {
	cam := sd.Camera

	sd.VShader(sd)

	cam.View(&f)

	// Cull faces pointing away from the camera, which sits at the
	// origin in view space. Faces seen edge-on are kept.
	n := f.Normal()
	v1 := f.V[0].Position
	if n.X*v1.X+n.Y*v1.Y+n.Z*v1.Z > 0 {
		return
	}

	cam.Project(&f)

	// Shading changes the profile's color per pixel; put the
	// caller's color back afterwards.
	prev := g.prof.Color()
	defer g.prof.SetColor(prev)

	if f.V[0].InsideView() && f.V[1].InsideView() && f.V[2].InsideView() {
		cam.PerspectiveDivide(&f)
		cam.ScaleXYToUnit(&f)
		rasterize(g, &f, sd, blend)
		return
	}

	var clipped [maxClipVertices]mesh.Vertex
	count := clipFace(&f, &clipped)
	for i := 1; i < count-1; i++ {
		sub := mesh.Face{V: [3]mesh.Vertex{clipped[0], clipped[i], clipped[i+1]}}
		cam.PerspectiveDivide(&sub)
		cam.ScaleXYToUnit(&sub)
		rasterize(g, &sub, sd, blend)
	}
}

// sortVertices orders the face's vertices ascending by y,
// breaking ties between vertices on the same scanline by
// ascending x.
func sortVertices(f *mesh.Face) {
	v := &f.V
	if v[1].Position.Y > v[2].Position.Y {
		v[1], v[2] = v[2], v[1]
	}
	if v[0].Position.Y > v[1].Position.Y {
		v[0], v[1] = v[1], v[0]
	}
	if v[1].Position.Y > v[2].Position.Y {
		v[1], v[2] = v[2], v[1]
	}

	y1 := int(math.Ceil(v[0].Position.Y))
	y2 := int(math.Ceil(v[1].Position.Y))
	y3 := int(math.Ceil(v[2].Position.Y))

	if y2 == y3 && v[1].Position.X > v[2].Position.X {
		v[1], v[2] = v[2], v[1]
	}
	if y1 == y2 && v[0].Position.X > v[1].Position.X {
		v[0], v[1] = v[1], v[0]
	}
	if y2 == y3 && v[1].Position.X > v[2].Position.X {
		v[1], v[2] = v[2], v[1]
	}
}

// calcIncr computes the per-pixel increment of an attribute with
// vertex values vals against the vertex coordinates a1, a2, a3.
// Extreme results from near-degenerate triangles clamp to zero.
func calcIncr(vals [3]float32, a1, a2, a3, oneOver float32) float32 {
	r := ((vals[1]-vals[2])*(a1-a3) - (vals[0]-vals[2])*(a2-a3)) * oneOver
	if r > gradientLimit || r < -gradientLimit {
		return 0
	}
	return r
}

// rasterize fills a clipped, perspective-divided face whose x, y
// are in [0, 1]. This is the hot loop.
func rasterize[T any](g *Graphics, f *mesh.Face, sd *TriShaderData[T], blend bool) {
	// offset to screen space
	sw := float32(g.width - 1)
	sh := float32(g.height - 1)
	for i := range f.V {
		f.V[i].Position.X *= sw
		f.V[i].Position.Y *= sh
	}

	sortVertices(f)

	x1 := f.V[0].Position.X
	y1 := f.V[0].Position.Y
	x2 := f.V[1].Position.X
	y2 := f.V[1].Position.Y
	x3 := f.V[2].Position.X
	y3 := f.V[2].Position.Y

	y1Ceil := int(math.Ceil(y1))
	y2Ceil := int(math.Ceil(y2))
	y3Ceil := int(math.Ceil(y3))

	denom := (x2-x3)*(y1-y3) - (x1-x3)*(y2-y3)
	if denom == 0 {
		return
	}
	oneOverdX := 1 / denom
	oneOverdY := -oneOverdX

	xLeftIncrTop := (x2 - x1) / (y2 - y1)
	xRightIncrTop := (x3 - x1) / (y3 - y1)
	xLeftIncrBottom := (x3 - x2) / (y3 - y2)
	xRightIncrBottom := (x3 - x1) / (y3 - y1)

	// handedness from the signed area of the edges out of v1
	area := (x3-x1)*(y2-y1) - (x2-x1)*(y3-y1)
	if area < 0 {
		xLeftIncrTop, xRightIncrTop = xRightIncrTop, xLeftIncrTop
		xLeftIncrBottom, xRightIncrBottom = xRightIncrBottom, xLeftIncrBottom
	}

	xLeft := x1 + (float32(y1Ceil)-y1)*xLeftIncrTop
	xRight := x1 + (float32(y1Ceil)-y1)*xRightIncrTop

	persp1 := 1 / f.V[0].Position.W
	persp2 := 1 / f.V[1].Position.W
	persp3 := 1 / f.V[2].Position.W
	depth1 := f.V[0].Position.Z
	light1 := vertexLight(sd, f.V[0].Position, f.V[0].Normal)
	light2 := vertexLight(sd, f.V[1].Position, f.V[1].Normal)
	light3 := vertexLight(sd, f.V[2].Position, f.V[2].Normal)

	texU := [3]float32{
		f.V[0].TexCoord.X * persp1,
		f.V[1].TexCoord.X * persp2,
		f.V[2].TexCoord.X * persp3,
	}
	texV := [3]float32{
		f.V[0].TexCoord.Y * persp1,
		f.V[1].TexCoord.Y * persp2,
		f.V[2].TexCoord.Y * persp3,
	}
	persps := [3]float32{persp1, persp2, persp3}
	depths := [3]float32{depth1, f.V[1].Position.Z, f.V[2].Position.Z}
	lights := [3]float32{light1, light2, light3}

	texUXIncr := calcIncr(texU, y1, y2, y3, oneOverdX)
	texUYIncr := calcIncr(texU, x1, x2, x3, oneOverdY)
	texVXIncr := calcIncr(texV, y1, y2, y3, oneOverdX)
	texVYIncr := calcIncr(texV, x1, x2, x3, oneOverdY)
	perspXIncr := calcIncr(persps, y1, y2, y3, oneOverdX)
	perspYIncr := calcIncr(persps, x1, x2, x3, oneOverdY)
	depthXIncr := calcIncr(depths, y1, y2, y3, oneOverdX)
	depthYIncr := calcIncr(depths, x1, x2, x3, oneOverdY)
	lightXIncr := calcIncr(lights, y1, y2, y3, oneOverdX)
	lightYIncr := calcIncr(lights, x1, x2, x3, oneOverdY)

	texUBase := texU[0]
	texVBase := texV[0]

	var out pixel.Color
	pix := g.fb.Pix()

	scan := func(startRow, endRow int, xLeftIncr, xRightIncr float32) {
		for row := startRow; row < endRow && row < g.height; row++ {
			leftX := int(math.Ceil(xLeft))
			rightX := int(math.Ceil(xRight))
			if leftX < 0 {
				leftX = 0
			}
			if rightX > g.width {
				rightX = g.width
			}

			rowF := float32(row)
			leftXF := float32(leftX)
			rightXF := float32(rightX)
			oneOverStride := 1 / (rightXF - leftXF)

			depthStart := depth1 + depthYIncr*(rowF-y1) + depthXIncr*(leftXF-x1)
			depthEnd := depth1 + depthYIncr*(rowF-y1) + depthXIncr*(rightXF-x1)
			texUStart := texUBase + texUYIncr*(rowF-y1) + texUXIncr*(leftXF-x1)
			texUEnd := texUBase + texUYIncr*(rowF-y1) + texUXIncr*(rightXF-x1)
			texVStart := texVBase + texVYIncr*(rowF-y1) + texVXIncr*(leftXF-x1)
			texVEnd := texVBase + texVYIncr*(rowF-y1) + texVXIncr*(rightXF-x1)
			perspStart := persp1 + perspYIncr*(rowF-y1) + perspXIncr*(leftXF-x1)
			perspEnd := persp1 + perspYIncr*(rowF-y1) + perspXIncr*(rightXF-x1)
			lightStart := light1 + lightYIncr*(rowF-y1) + lightXIncr*(leftXF-x1)
			lightEnd := light1 + lightYIncr*(rowF-y1) + lightXIncr*(rightXF-x1)

			depthIncr := (depthEnd - depthStart) * oneOverStride
			perspIncr := (perspEnd - perspStart) * oneOverStride
			texUIncr := (texUEnd - texUStart) * oneOverStride
			texVIncr := (texVEnd - texVStart) * oneOverStride
			lightIncr := (lightEnd - lightStart) * oneOverStride

			depth := depthStart
			tu := texUStart
			tv := texVStart
			pers := perspStart
			light := lightStart

			for x := leftX; x < rightX; x++ {
				px := row*g.width + x
				if g.depth == nil {
					perspOffset := 1 / pers
					sd.FShader(&out, sd, 0, 0, 0, tu*perspOffset, tv*perspOffset, light)
					g.prof.SetColor(out)
					if blend {
						g.prof.PutPixelBlend(pix, px)
					} else {
						g.prof.PutPixel(pix, px)
					}
				} else if g.depth[px] >= depth {
					perspOffset := 1 / pers
					sd.FShader(&out, sd, 0, 0, 0, tu*perspOffset, tv*perspOffset, light)
					g.prof.SetColor(out)
					if blend {
						g.prof.PutPixelBlend(pix, px)
					} else {
						g.prof.PutPixel(pix, px)
						g.depth[px] = depth
					}
				}

				depth += depthIncr
				tu += texUIncr
				tv += texVIncr
				pers += perspIncr
				light += lightIncr
			}

			xLeft += xLeftIncr
			xRight += xRightIncr
		}
	}

	// top half, up to the middle vertex
	scan(y1Ceil, y2Ceil, xLeftIncrTop, xRightIncrTop)

	// re-seed the accumulators for the row where the middle
	// vertex sits between the top and bottom edge slopes
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

	// bottom half
	scan(y2Ceil, y3Ceil, xLeftIncrBottom, xRightIncrBottom)
}

func approxEqual(a, b float32) bool {
	return math.Abs(a-b) < epsilon
}
