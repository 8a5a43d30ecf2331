package linear

import (
	math "github.com/chewxy/math32"
)

// V2 is a 2-component vector of float32.
type V2 struct {
	X, Y float32
}

// AddV2 returns p + q.
func AddV2(p, q V2) V2 { return V2{p.X + q.X, p.Y + q.Y} }

// SubV2 returns p - q.
func SubV2(p, q V2) V2 { return V2{p.X - q.X, p.Y - q.Y} }

// ScaleV2 returns s ⋅ p.
func ScaleV2(s float32, p V2) V2 { return V2{s * p.X, s * p.Y} }

// DotV2 returns p ⋅ q.
func DotV2(p, q V2) float32 { return p.X*q.X + p.Y*q.Y }

// LenV2 returns the length of p.
func LenV2(p V2) float32 { return math.Sqrt(DotV2(p, p)) }

// LerpV2 interpolates between p and q by t.
func LerpV2(p, q V2, t float32) V2 {
	return V2{Lerp(t, p.X, q.X), Lerp(t, p.Y, q.Y)}
}

// V3 is a 3-component vector of float32.
type V3 struct {
	X, Y, Z float32
}

// AddV3 returns p + q.
func AddV3(p, q V3) V3 { return V3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// SubV3 returns p - q.
func SubV3(p, q V3) V3 { return V3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// ScaleV3 returns s ⋅ p.
func ScaleV3(s float32, p V3) V3 { return V3{s * p.X, s * p.Y, s * p.Z} }

// DotV3 returns p ⋅ q.
func DotV3(p, q V3) float32 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// LenV3 returns the length of p.
func LenV3(p V3) float32 { return math.Sqrt(DotV3(p, p)) }

// NormV3 returns p normalized.
// The zero vector normalizes to itself.
func NormV3(p V3) V3 {
	l := LenV3(p)
	if l == 0 {
		return V3{}
	}
	return ScaleV3(1/l, p)
}

// Cross returns the cross product p × q.
func Cross(p, q V3) V3 {
	return V3{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// LerpV3 interpolates between p and q by t.
func LerpV3(p, q V3, t float32) V3 {
	return V3{Lerp(t, p.X, q.X), Lerp(t, p.Y, q.Y), Lerp(t, p.Z, q.Z)}
}

// V4 is a 4-component vector of float32.
// The pipeline treats it as a row vector in homogeneous space.
type V4 struct {
	X, Y, Z, W float32
}

// At returns the component at index i (0..3).
func (p V4) At(i int) float32 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	default:
		return p.W
	}
}

// V3 returns the x, y, z components of p.
func (p V4) V3() V3 { return V3{p.X, p.Y, p.Z} }

// AddV4 returns p + q.
func AddV4(p, q V4) V4 { return V4{p.X + q.X, p.Y + q.Y, p.Z + q.Z, p.W + q.W} }

// SubV4 returns p - q.
func SubV4(p, q V4) V4 { return V4{p.X - q.X, p.Y - q.Y, p.Z - q.Z, p.W - q.W} }

// ScaleV4 returns s ⋅ p.
func ScaleV4(s float32, p V4) V4 { return V4{s * p.X, s * p.Y, s * p.Z, s * p.W} }

// DotV4 returns p ⋅ q.
func DotV4(p, q V4) float32 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z + p.W*q.W }

// LenV4 returns the length of p.
func LenV4(p V4) float32 { return math.Sqrt(DotV4(p, p)) }

// NormV4 returns p normalized.
// The zero vector normalizes to itself.
func NormV4(p V4) V4 {
	l := LenV4(p)
	if l == 0 {
		return V4{}
	}
	return ScaleV4(1/l, p)
}

// CrossV4 returns the cross product of the x, y, z components
// of p and q. The w components are ignored and the result has w=1.
func CrossV4(p, q V4) V4 {
	c := Cross(p.V3(), q.V3())
	return V4{c.X, c.Y, c.Z, 1}
}

// LerpV4 interpolates between p and q by t.
func LerpV4(p, q V4, t float32) V4 {
	return V4{Lerp(t, p.X, q.X), Lerp(t, p.Y, q.Y), Lerp(t, p.Z, q.Z), Lerp(t, p.W, q.W)}
}
