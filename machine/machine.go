// Package machine wires the hardware model together and advances it one
// display period at a time.
//
// The program and the hardware take turns.  The program issues commands
// until it waits for vertical blank, then the hardware runs a display
// period: it renders the polygon list flushed before the previous vertical
// blank using the current VRAM mapping, composes the main screen, performs
// an armed capture and finally enters vertical blank, where the most
// recently flushed list is swapped in.
package machine

import (
	"github.com/AntonioND/nds-rtt-example/hw"
	"github.com/AntonioND/nds-rtt-example/hw/capture"
	"github.com/AntonioND/nds-rtt-example/hw/gx"
	"github.com/AntonioND/nds-rtt-example/hw/keypad"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/video"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
)

type Machine struct {
	VRAM    *vram.Memory
	GX      *gx.Engine
	Capture capture.Unit
	Main    *video.Main
	Sub     *video.Sub
	Keypad  keypad.Register
	VBlank  video.VBlank

	render, screen *texture.RGB5A1
}

func New() *Machine {
	mem := vram.New()
	m := &Machine{
		VRAM:   mem,
		GX:     gx.New(mem),
		Main:   video.NewMain(),
		Sub:    video.NewSub(),
		render: texture.NewRGB5A1(video.Bounds),
		screen: texture.NewRGB5A1(video.Bounds),
	}
	m.screen.Fill(texture.AlphaBit)
	hw.Logger().Info("machine: created")
	return m
}

// Step runs one display period followed by vertical blank.
func (m *Machine) Step() {
	m.GX.Render(m.render)
	m.Main.Compose(m.screen, m.render, m.VRAM)
	if m.Capture.Run(capture.Sources{Screen: m.screen, Render: m.render}, m.VRAM) {
		hw.Logger().Debug("machine: captured", "frame", m.VBlank.Count(), "bank", m.Capture.Control().Bank,
			"polygons", m.GX.LatchedPolygons())
	}

	m.GX.SwapBuffers()
	m.VBlank.Signal()
}

// WaitVBlank returns at the start of the next vertical blank.
func (m *Machine) WaitVBlank() { m.Step() }

// Frame returns the number of vertical blanks since New.
func (m *Machine) Frame() uint64 { return m.VBlank.Count() }

// ConfigureCapture arms a single capture of source into dest, starting at
// the beginning of the bank.
func (m *Machine) ConfigureCapture(source capture.Source, dest vram.Bank, region capture.Size) {
	m.Capture.Configure(capture.Control{
		Bank:    dest,
		Size:    region,
		SourceA: source,
		Mode:    capture.ModeA,
		Enable:  true,
	})
}

func (m *Machine) SetBankMode(b vram.Bank, mode vram.Mode) error {
	return m.VRAM.SetBankMode(b, mode)
}

// MainScreen returns the main screen as composed in the last display
// period.  The image is reused.
func (m *Machine) MainScreen() *texture.RGB5A1 { return m.screen }

// Render3D returns the 3D output of the last display period.
func (m *Machine) Render3D() *texture.RGB5A1 { return m.render }
