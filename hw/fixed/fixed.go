// Package fixed provides the fixed-point number formats used by the 3D
// hardware.
package fixed

//go:generate go run mkfixed.go Int4_12 int16
type Int4_12 int16 // v16: vertex coordinates

//go:generate go run mkfixed.go Int12_4 int16
type Int12_4 int16 // t16: texel coordinates

//go:generate go run mkfixed.go Int7_9 int16
type Int7_9 int16 // v10: normals and light directions

//go:generate go run mkfixed.go Int20_12 int32
type Int20_12 int32 // f32: matrix entries

// Vec3 is a three component vector of any fixed-point format.
type Vec3[T Int4_12 | Int7_9 | Int20_12] struct{ X, Y, Z T }

// Pack10 packs a normal or light direction into the 3×10 bit layout of the
// NORMAL and LIGHT_VECTOR commands.
func Pack10(v Vec3[Int7_9]) uint32 {
	return uint32(v.X)&0x3ff | (uint32(v.Y)&0x3ff)<<10 | (uint32(v.Z)&0x3ff)<<20
}

// Unpack10 is the inverse of Pack10.
func Unpack10(w uint32) Vec3[Int7_9] {
	ext := func(v uint32) Int7_9 { return Int7_9(int16(v<<6) >> 6) }
	return Vec3[Int7_9]{ext(w & 0x3ff), ext(w >> 10 & 0x3ff), ext(w >> 20 & 0x3ff)}
}

// PackTexCoord packs a texel coordinate pair like the TEXCOORD command.
func PackTexCoord(s, t Int12_4) uint32 {
	return uint32(uint16(s)) | uint32(uint16(t))<<16
}

// UnpackTexCoord is the inverse of PackTexCoord.
func UnpackTexCoord(w uint32) (s, t Int12_4) {
	return Int12_4(int16(w)), Int12_4(int16(w >> 16))
}
