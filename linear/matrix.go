package linear

import (
	math "github.com/chewxy/math32"
)

// M4 is a row-major 4x4 matrix of float32.
type M4 [4][4]float32

// I4 returns the identity matrix.
func I4() M4 {
	return M4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// At returns the element at row r, column c.
func (m *M4) At(r, c int) float32 { return m[r][c] }

// Set sets the element at row r, column c to v.
func (m *M4) Set(r, c int, v float32) { m[r][c] = v }

// AddScalar returns m with s added to every element.
func (m M4) AddScalar(s float32) M4 {
	for r := range m {
		for c := range m[r] {
			m[r][c] += s
		}
	}
	return m
}

// SubScalar returns m with s subtracted from every element.
func (m M4) SubScalar(s float32) M4 {
	return m.AddScalar(-s)
}

// ScaleScalar returns m with every element multiplied by s.
func (m M4) ScaleScalar(s float32) M4 {
	for r := range m {
		for c := range m[r] {
			m[r][c] *= s
		}
	}
	return m
}

// MulM4 returns l ⋅ r.
func MulM4(l, r M4) M4 {
	var m M4
	for i := range m {
		for j := range m[i] {
			var s float32
			for k := range m {
				s += l[i][k] * r[k][j]
			}
			m[i][j] = s
		}
	}
	return m
}

// MulVM returns the row vector v multiplied by m.
func MulVM(v V4, m M4) V4 {
	return V4{
		v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// Translation returns a matrix translating row vectors by x, y, z.
func Translation(x, y, z float32) M4 {
	m := I4()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

// Scaling returns a matrix scaling row vectors by x, y, z.
func Scaling(x, y, z float32) M4 {
	var m M4
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	m[3][3] = 1
	return m
}

// RotationXYZ returns the rotation matrix for the given angles,
// in degrees, about the x, y and z axes, composed z then y then x.
func RotationXYZ(xDeg, yDeg, zDeg float32) M4 {
	const degToRad = math.Pi / 180
	sinX, cosX := math.Sincos(xDeg * degToRad)
	sinY, cosY := math.Sincos(yDeg * degToRad)
	sinZ, cosZ := math.Sincos(zDeg * degToRad)

	var m M4
	m[0][0] = cosZ * cosY
	m[0][1] = cosZ*sinY*sinX - sinZ*cosX
	m[0][2] = cosZ*sinY*cosX + sinZ*sinX
	m[1][0] = sinZ * cosY
	m[1][1] = sinZ*sinY*sinX + cosZ*cosX
	m[1][2] = sinZ*sinY*cosX - cosZ*sinX
	m[2][0] = -sinY
	m[2][1] = cosY * sinX
	m[2][2] = cosY * cosX
	m[3][3] = 1
	return m
}
