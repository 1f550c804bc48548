package gx

import (
	"math"

	"github.com/AntonioND/nds-rtt-example/hw/fixed"
)

// Matrix is a 4x4 matrix in f32 format, indexed [row][col] and applied to
// column vectors.
type Matrix [4][4]fixed.Int20_12

type Vec4 [4]fixed.Int20_12

var one = fixed.Int20_12U(1)

func Identity() Matrix {
	return Matrix{
		{one, 0, 0, 0},
		{0, one, 0, 0},
		{0, 0, one, 0},
		{0, 0, 0, one},
	}
}

// Mul returns m*n.
func (m Matrix) Mul(n Matrix) (r Matrix) {
	for i := range 4 {
		for j := range 4 {
			var sum int64
			for k := range 4 {
				sum += int64(m[i][k]) * int64(n[k][j])
			}
			r[i][j] = fixed.Int20_12(sum >> 12)
		}
	}
	return
}

// Transform returns m*v.
func (m Matrix) Transform(v Vec4) (r Vec4) {
	for i := range 4 {
		var sum int64
		for k := range 4 {
			sum += int64(m[i][k]) * int64(v[k])
		}
		r[i] = fixed.Int20_12(sum >> 12)
	}
	return
}

func Translation(x, y, z fixed.Int20_12) Matrix {
	m := Identity()
	m[0][3], m[1][3], m[2][3] = x, y, z
	return m
}

func Scaling(x, y, z fixed.Int20_12) Matrix {
	m := Identity()
	m[0][0], m[1][1], m[2][2] = x, y, z
	return m
}

func sincos(deg float32) (s, c fixed.Int20_12) {
	fs, fc := math.Sincos(float64(deg) * math.Pi / 180)
	return fixed.Int20_12F(float32(fs)), fixed.Int20_12F(float32(fc))
}

// RotationX returns a rotation around the X axis, counter clockwise when
// looking towards the origin.
func RotationX(deg float32) Matrix {
	s, c := sincos(deg)
	m := Identity()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

func RotationY(deg float32) Matrix {
	s, c := sincos(deg)
	m := Identity()
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return m
}

func RotationZ(deg float32) Matrix {
	s, c := sincos(deg)
	m := Identity()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// Perspective returns a projection with a vertical field of view of fovy
// degrees.
func Perspective(fovy, aspect, near, far float32) Matrix {
	f := float32(1 / math.Tan(float64(fovy)*math.Pi/360))
	return Matrix{
		{fixed.Int20_12F(f / aspect), 0, 0, 0},
		{0, fixed.Int20_12F(f), 0, 0},
		{0, 0, fixed.Int20_12F((far + near) / (near - far)), fixed.Int20_12F(2 * far * near / (near - far))},
		{0, 0, -one, 0},
	}
}

type vec3 [3]float32

func (a vec3) sub(b vec3) vec3 { return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a vec3) dot(b vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
func (a vec3) cross(b vec3) vec3 {
	return vec3{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}
func (a vec3) normalize() vec3 {
	l := float32(math.Sqrt(float64(a.dot(a))))
	if l == 0 {
		return a
	}
	return vec3{a[0] / l, a[1] / l, a[2] / l}
}

// LookAt returns a view transformation placing the camera at eye, looking at
// center.
func LookAt(eye, center, up [3]float32) Matrix {
	f := vec3(center).sub(eye).normalize()
	s := f.cross(up).normalize()
	u := s.cross(f)
	e := vec3(eye)

	m := Identity()
	for i := range 3 {
		m[0][i] = fixed.Int20_12F(s[i])
		m[1][i] = fixed.Int20_12F(u[i])
		m[2][i] = fixed.Int20_12F(-f[i])
	}
	m[0][3] = fixed.Int20_12F(-s.dot(e))
	m[1][3] = fixed.Int20_12F(-u.dot(e))
	m[2][3] = fixed.Int20_12F(f.dot(e))
	return m
}
