package rtt

import "github.com/AntonioND/nds-rtt-example/hw/fixed"

var (
	v16 = fixed.Int4_12F
	v10 = fixed.Int7_9F
	t16 = fixed.Int12_4U
)

// CubeVertices are the corners of a unit cube centered on the origin.
var CubeVertices = [8]fixed.Vec3[fixed.Int4_12]{
	{X: v16(-0.5), Y: v16(-0.5), Z: v16(0.5)},
	{X: v16(0.5), Y: v16(-0.5), Z: v16(0.5)},
	{X: v16(0.5), Y: v16(-0.5), Z: v16(-0.5)},
	{X: v16(-0.5), Y: v16(-0.5), Z: v16(-0.5)},
	{X: v16(-0.5), Y: v16(0.5), Z: v16(0.5)},
	{X: v16(0.5), Y: v16(0.5), Z: v16(0.5)},
	{X: v16(0.5), Y: v16(0.5), Z: v16(-0.5)},
	{X: v16(-0.5), Y: v16(0.5), Z: v16(-0.5)},
}

// CubeFaces index CubeVertices, counter clockwise seen from outside: bottom,
// front, right, back, left, top.
var CubeFaces = [6][4]uint8{
	{3, 2, 1, 0},
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
	{5, 6, 7, 4},
}

// CubeTexCoords are used in the same order for every face.  They map the
// top left 128x128 texels onto a face.
var CubeTexCoords = [4][2]fixed.Int12_4{
	{t16(128), 0},
	{t16(128), t16(128)},
	{0, t16(128)},
	{0, 0},
}

var CubeNormals = [6]fixed.Vec3[fixed.Int7_9]{
	{Y: v10(-.97)},
	{Z: v10(.97)},
	{X: v10(.97)},
	{Z: v10(-.97)},
	{X: v10(-.97)},
	{Y: v10(.97)},
}

// Mesh is the part of the renderer needed to draw a mesh.
type Mesh interface {
	BeginQuads()
	Normal(n fixed.Vec3[fixed.Int7_9])
	TexCoord(s, t fixed.Int12_4)
	EmitVertex(v fixed.Vec3[fixed.Int4_12])
}

// DrawCube submits the cube as six quads.
func DrawCube(r Mesh) {
	r.BeginQuads()
	for i, face := range CubeFaces {
		r.Normal(CubeNormals[i])
		for j, v := range face {
			uv := CubeTexCoords[j]
			r.TexCoord(uv[0], uv[1])
			r.EmitVertex(CubeVertices[v])
		}
	}
}
