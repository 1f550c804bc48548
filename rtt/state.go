package rtt

import "github.com/AntonioND/nds-rtt-example/hw/keypad"

// Phase selects what a loop iteration draws.
type Phase uint8

const (
	// TextureScene draws the small cube that becomes the texture of the
	// real scene.  It is the phase of the first iteration.
	TextureScene Phase = iota
	// RealScene draws the big cube, textured with the last capture.
	RealScene
)

func (p Phase) String() string {
	if p == RealScene {
		return "real scene"
	}
	return "texture scene"
}

// Per-frame increments.
const (
	RotateStep = 3
	ScaleStep  = 0.01
	SpinStep   = 1
)

// State is the interaction state of the demo.  Nothing is clamped.
type State struct {
	Rx, Ry           float32 // free running rotation of the big cube, degrees
	RotateX, RotateY float32 // rotation of the small cube, degrees
	Scale            float32 // scale of the small cube
	Frame            int     // 0 or 1
}

func NewState() State {
	return State{Rx: 30, Ry: 0, Scale: 1}
}

// Update applies the held keys and advances the free running angles.
func (s *State) Update(held keypad.Key) {
	if held&keypad.Up != 0 {
		s.RotateX += RotateStep
	}
	if held&keypad.Down != 0 {
		s.RotateX -= RotateStep
	}
	if held&keypad.Left != 0 {
		s.RotateY += RotateStep
	}
	if held&keypad.Right != 0 {
		s.RotateY -= RotateStep
	}
	if held&keypad.A != 0 {
		s.Scale += ScaleStep
	}
	if held&keypad.B != 0 {
		s.Scale -= ScaleStep
	}
	s.Rx += SpinStep
	s.Ry += SpinStep
}

func (s *State) Phase() Phase { return Phase(s.Frame & 1) }

// flip moves to the other phase.
func (s *State) flip() { s.Frame ^= 1 }
