// Package linear implements float32 math for the 3D pipeline.
package linear

import (
	math "github.com/chewxy/math32"
)

// Clamp returns v clamped to the interval [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math.Min(hi, math.Max(v, lo))
}

// Saturate returns v clamped to [0, 1].
func Saturate(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(t, a, b float32) float32 {
	return a + t*(b-a)
}

// ApproxEqual reports whether a and b differ by less than eps.
func ApproxEqual(a, b, eps float32) bool {
	return math.Abs(a-b) < eps
}
