package gx

import "github.com/AntonioND/nds-rtt-example/hw/fixed"

// The methods below are shorthands for the common command sequences of an
// immediate mode renderer.

// SetProjection loads a perspective projection.  It leaves the engine in
// PositionVector mode.
func (e *Engine) SetProjection(fovy, aspect, near, far float32) {
	e.MatrixMode(Projection)
	e.LoadIdentity()
	e.Perspective(fovy, aspect, near, far)
	e.MatrixMode(PositionVector)
}

// SetView replaces the modelview matrix with a camera transformation.
func (e *Engine) SetView(eye, center, up [3]float32) {
	e.MatrixMode(PositionVector)
	e.LoadIdentity()
	e.LookAt(eye, center, up)
}

func (e *Engine) BeginQuads() { e.Begin(Quads) }

func (e *Engine) EmitVertex(v fixed.Vec3[fixed.Int4_12]) { e.Vertex16(v.X, v.Y, v.Z) }
