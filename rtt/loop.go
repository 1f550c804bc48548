// Package rtt renders a rotating cube into a texture and uses it on a second
// cube, on alternating frames.
//
// Even iterations draw the texture scene, a small cube into the top left
// 128x128 pixels.  The 3D output is captured into bank B.  Odd iterations
// draw the real scene, a big cube textured with bank B, and capture it into
// bank C.  In 3D mode the main screen shows bank C on BG2 above the 3D
// layer, so the real scene is visible on every frame.
//
// Because the 3D engine renders a polygon list during the display period
// after the one it was flushed in, each iteration configures the capture
// and VRAM mapping for the list flushed by the previous iteration.
package rtt

import (
	"context"
	"log/slog"

	"github.com/AntonioND/nds-rtt-example/debug"
	"github.com/AntonioND/nds-rtt-example/hw/capture"
	"github.com/AntonioND/nds-rtt-example/hw/fixed"
	"github.com/AntonioND/nds-rtt-example/hw/gx"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
)

// CapturedTexture selects the capture in bank B, mapped to texture slot 1,
// as a 256x256 direct color texture.  Only the top 256x192 texels are
// written by the capture.
var CapturedTexture = texture.Param{
	Addr:   1 * vram.SlotSize,
	SizeS:  5,
	SizeT:  5,
	Format: texture.Direct,
}

var (
	eye    = [3]float32{0, 0, 1}
	center = [3]float32{0, 0, 0}
	up     = [3]float32{0, 1, 0}
)

type Loop struct {
	hw      Hardware
	cfg     Config
	State   State
	texture int
	halted  error
}

// New runs Setup and returns the loop.  If Setup fails the error is
// returned together with a loop that only waits for vertical blank.
func New(h Hardware, cfg Config) (*Loop, error) {
	l := &Loop{hw: h, cfg: cfg, State: NewState()}
	l.texture, l.halted = Setup(h, cfg)
	return l, l.halted
}

// Halted returns the Setup error, if any.
func (l *Loop) Halted() error { return l.halted }

// Frame runs one iteration: wait for vertical blank, scan the keys, update
// the state and draw the scene of the current phase.
func (l *Loop) Frame() {
	l.hw.VBlank.WaitVBlank()
	if l.halted != nil {
		return
	}

	l.hw.Input.Scan()
	l.State.Update(l.hw.Input.Held())

	switch l.State.Phase() {
	case RealScene:
		l.realScene()
	case TextureScene:
		l.textureScene()
	}
	l.State.flip()
}

// Run calls Frame until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	if l.halted != nil {
		return Halt(ctx, l.hw.VBlank)
	}
	for ctx.Err() == nil {
		l.Frame()
	}
	return ctx.Err()
}

func (l *Loop) setBank(b vram.Bank, mode vram.Mode) {
	err := l.hw.Capture.SetBankMode(b, mode)
	debug.AssertErrNil(err)
	if err != nil {
		slog.Warn("rtt: bank mode", "bank", b, "err", err)
	}
}

func (l *Loop) realScene() {
	s, r := &l.State, l.hw.Renderer

	l.setBank(vram.B, vram.ModeLCD)
	if l.cfg.DisplayMode == Mode3D {
		l.setBank(vram.C, vram.ModeMainBG(0))
	}
	l.hw.Capture.ConfigureCapture(capture.Source3D, vram.B, capture.Size256x192)

	r.Viewport(0, 0, 255, 192)
	r.SetProjection(70, 256.0/192.0, 0.1, 40)
	r.ClearColor(0, 0, 31, 31)
	r.SetView(eye, center, up)
	r.Translate(0, 0, fixed.Int20_12F(-1))
	r.RotateX(s.Rx)
	r.RotateY(s.Ry)

	// BindTexture only reaches the hardware when the name changes.  Binding
	// no texture makes sure the raw parameters below are replaced by the
	// next BindTexture of the texture scene.
	r.BindTexture(gx.NoTexture)
	r.TexParam(CapturedTexture)

	DrawCube(r)
	r.Flush()
}

func (l *Loop) textureScene() {
	s, r := &l.State, l.hw.Renderer

	l.setBank(vram.B, vram.ModeTexture(1))
	if l.cfg.DisplayMode == Mode3D {
		l.setBank(vram.C, vram.ModeLCD)
	}
	l.hw.Capture.ConfigureCapture(capture.Source3D, vram.C, capture.Size256x192)

	r.Viewport(0, 64, 128, 192)
	r.SetProjection(70, 1, 0.1, 40)
	r.ClearColor(0, 31, 0, 31)
	r.SetView(eye, center, up)
	r.Translate(0, 0, fixed.Int20_12F(-1))
	r.RotateX(s.RotateX)
	r.RotateY(s.RotateY)
	scale := fixed.Int20_12F(s.Scale)
	r.Scale(scale, scale, scale)

	r.BindTexture(l.texture)

	DrawCube(r)
	r.Flush()
}
