package rtt

import (
	"io"

	"github.com/AntonioND/nds-rtt-example/hw/capture"
	"github.com/AntonioND/nds-rtt-example/hw/fixed"
	"github.com/AntonioND/nds-rtt-example/hw/gx"
	"github.com/AntonioND/nds-rtt-example/hw/keypad"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/video"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
)

// Renderer is an immediate mode 3D renderer.  *gx.Engine implements it.
type Renderer interface {
	Mesh

	Enable(f gx.Flags)
	ClearPolyID(id uint8)
	ClearDepth(d uint16)
	MatrixMode(m gx.MatrixMode)
	LoadIdentity()
	SetMaterial(m gx.Material)
	PolyFmt(attr gx.PolyAttr)
	Light(n int, color texture.Color, dir fixed.Vec3[fixed.Int7_9])
	GenTexture() int
	TexImage2D(tex texture.Texture) error

	Viewport(x1, y1, x2, y2 uint8)
	ClearColor(r, g, b, a uint8)
	SetProjection(fovy, aspect, near, far float32)
	SetView(eye, center, up [3]float32)
	Translate(x, y, z fixed.Int20_12)
	RotateX(deg float32)
	RotateY(deg float32)
	Scale(x, y, z fixed.Int20_12)
	BindTexture(id int)
	TexParam(p texture.Param)
	Flush()
}

// CaptureController configures display capture and the VRAM banks it writes
// to and reads from.
type CaptureController interface {
	ConfigureCapture(source capture.Source, dest vram.Bank, region capture.Size)
	SetBankMode(b vram.Bank, mode vram.Mode) error
}

// Display configures the main display engine.  *video.Main implements it.
type Display interface {
	SetGraphics(layers video.Layer)
	SetPriority(l video.Layer, p uint8)
	SetBitmapBase(addr uint32)
	SetFramebuffer(b vram.Bank)
}

type Input interface {
	Scan()
	Held() keypad.Key
}

type VBlank interface {
	WaitVBlank()
}

// Hardware bundles everything the demo talks to.
type Hardware struct {
	Renderer Renderer
	Capture  CaptureController
	Display  Display
	Input    Input
	VBlank   VBlank
	Console  io.Writer
}
