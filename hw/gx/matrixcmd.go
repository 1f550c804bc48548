package gx

import (
	"github.com/AntonioND/nds-rtt-example/hw"
	"github.com/AntonioND/nds-rtt-example/hw/fixed"
)

// MatrixMode selects the matrix the following matrix commands act on.  In
// PositionVector mode the position and directional matrices are updated
// together, except by Scale which leaves directions untouched.
func (e *Engine) MatrixMode(m MatrixMode) { e.mode = m }

func (e *Engine) mult(m Matrix, directional bool) {
	switch e.mode {
	case Projection:
		e.proj = e.proj.Mul(m)
	case Position:
		e.pos = e.pos.Mul(m)
	case PositionVector:
		e.pos = e.pos.Mul(m)
		if directional {
			e.vec = e.vec.Mul(m)
		}
	case TextureMatrix:
		e.tex = e.tex.Mul(m)
	}
}

func (e *Engine) LoadIdentity() {
	switch e.mode {
	case Projection:
		e.proj = Identity()
	case Position:
		e.pos = Identity()
	case PositionVector:
		e.pos, e.vec = Identity(), Identity()
	case TextureMatrix:
		e.tex = Identity()
	}
}

// LoadMatrix replaces the current matrix.
func (e *Engine) LoadMatrix(m Matrix) {
	switch e.mode {
	case Projection:
		e.proj = m
	case Position:
		e.pos = m
	case PositionVector:
		e.pos, e.vec = m, m
	case TextureMatrix:
		e.tex = m
	}
}

// Matrix returns the current matrix.
func (e *Engine) Matrix() Matrix {
	switch e.mode {
	case Projection:
		return e.proj
	case TextureMatrix:
		return e.tex
	}
	return e.pos
}

func (e *Engine) PushMatrix() {
	switch e.mode {
	case Projection:
		if len(e.projStack) == 1 {
			hw.Logger().Debug("gx: projection stack overflow")
			return
		}
		e.projStack = append(e.projStack, e.proj)
	case Position, PositionVector:
		if len(e.posStack) == positionStackSize {
			hw.Logger().Debug("gx: position stack overflow")
			return
		}
		e.posStack = append(e.posStack, e.pos)
		e.vecStack = append(e.vecStack, e.vec)
	}
}

// PopMatrix pops n matrices.
func (e *Engine) PopMatrix(n int) {
	switch e.mode {
	case Projection:
		if len(e.projStack) == 0 {
			hw.Logger().Debug("gx: projection stack underflow")
			return
		}
		e.proj = e.projStack[0]
		e.projStack = e.projStack[:0]
	case Position, PositionVector:
		if n <= 0 || n > len(e.posStack) {
			hw.Logger().Debug("gx: position stack underflow", "pop", n, "depth", len(e.posStack))
			return
		}
		top := len(e.posStack) - n
		e.pos, e.vec = e.posStack[top], e.vecStack[top]
		e.posStack, e.vecStack = e.posStack[:top], e.vecStack[:top]
	}
}

func (e *Engine) MultMatrix(m Matrix) { e.mult(m, true) }

func (e *Engine) Translate(x, y, z fixed.Int20_12) { e.mult(Translation(x, y, z), true) }
func (e *Engine) Scale(x, y, z fixed.Int20_12)     { e.mult(Scaling(x, y, z), false) }

func (e *Engine) RotateX(deg float32) { e.mult(RotationX(deg), true) }
func (e *Engine) RotateY(deg float32) { e.mult(RotationY(deg), true) }
func (e *Engine) RotateZ(deg float32) { e.mult(RotationZ(deg), true) }

// Perspective multiplies the current matrix by a perspective projection.
func (e *Engine) Perspective(fovy, aspect, near, far float32) {
	e.mult(Perspective(fovy, aspect, near, far), true)
}

func (e *Engine) LookAt(eye, center, up [3]float32) {
	e.mult(LookAt(eye, center, up), true)
}
