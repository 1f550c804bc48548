package rtt_test

import (
	"fmt"
	"strings"

	"github.com/AntonioND/nds-rtt-example/hw/capture"
	"github.com/AntonioND/nds-rtt-example/hw/fixed"
	"github.com/AntonioND/nds-rtt-example/hw/gx"
	"github.com/AntonioND/nds-rtt-example/hw/keypad"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/video"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
	"github.com/AntonioND/nds-rtt-example/rtt"
)

// recorder implements all hardware interfaces and logs every call.
type recorder struct {
	calls   []string
	held    keypad.Key
	console strings.Builder
	texErr  error
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) hardware() rtt.Hardware {
	return rtt.Hardware{Renderer: r, Capture: r, Display: r, Input: r, VBlank: r, Console: &r.console}
}

// reset forgets the calls so far.
func (r *recorder) reset() { r.calls = r.calls[:0] }

func (r *recorder) index(call string) int {
	for i, c := range r.calls {
		if c == call {
			return i
		}
	}
	return -1
}

func (r *recorder) count(prefix string) (n int) {
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return
}

func (r *recorder) BeginQuads()                            { r.log("BeginQuads") }
func (r *recorder) Normal(n fixed.Vec3[fixed.Int7_9])      { r.log("Normal %v", n) }
func (r *recorder) TexCoord(s, t fixed.Int12_4)            { r.log("TexCoord %v %v", s, t) }
func (r *recorder) EmitVertex(v fixed.Vec3[fixed.Int4_12]) { r.log("EmitVertex %v", v) }
func (r *recorder) Enable(f gx.Flags)                      { r.log("Enable %d", f) }
func (r *recorder) ClearPolyID(id uint8)                   { r.log("ClearPolyID %d", id) }
func (r *recorder) ClearDepth(d uint16)                    { r.log("ClearDepth %#x", d) }
func (r *recorder) MatrixMode(m gx.MatrixMode)             { r.log("MatrixMode %d", m) }
func (r *recorder) LoadIdentity()                          { r.log("LoadIdentity") }
func (r *recorder) SetMaterial(m gx.Material)              { r.log("SetMaterial %+v", m) }
func (r *recorder) PolyFmt(attr gx.PolyAttr)               { r.log("PolyFmt %#x", uint32(attr)) }
func (r *recorder) Viewport(x1, y1, x2, y2 uint8)          { r.log("Viewport %d %d %d %d", x1, y1, x2, y2) }
func (r *recorder) ClearColor(cr, g, b, a uint8)           { r.log("ClearColor %d %d %d %d", cr, g, b, a) }
func (r *recorder) Translate(x, y, z fixed.Int20_12)       { r.log("Translate %v %v %v", x, y, z) }
func (r *recorder) RotateX(deg float32)                    { r.log("RotateX %g", deg) }
func (r *recorder) RotateY(deg float32)                    { r.log("RotateY %g", deg) }
func (r *recorder) Scale(x, y, z fixed.Int20_12)           { r.log("Scale %v %v %v", x, y, z) }
func (r *recorder) BindTexture(id int)                     { r.log("BindTexture %d", id) }
func (r *recorder) TexParam(p texture.Param)               { r.log("TexParam %#08x", p.Encode()) }
func (r *recorder) Flush()                                 { r.log("Flush") }
func (r *recorder) SetGraphics(layers video.Layer)         { r.log("SetGraphics %d", layers) }
func (r *recorder) SetPriority(l video.Layer, p uint8)     { r.log("SetPriority %d %d", l, p) }
func (r *recorder) SetBitmapBase(addr uint32)              { r.log("SetBitmapBase %#x", addr) }
func (r *recorder) SetFramebuffer(b vram.Bank)             { r.log("SetFramebuffer %v", b) }
func (r *recorder) Scan()                                  { r.log("Scan") }
func (r *recorder) Held() keypad.Key                       { return r.held }
func (r *recorder) WaitVBlank()                            { r.log("WaitVBlank") }

func (r *recorder) Light(n int, color texture.Color, dir fixed.Vec3[fixed.Int7_9]) {
	r.log("Light %d %#04x %v", n, color, dir)
}

func (r *recorder) GenTexture() int { r.log("GenTexture"); return 1 }

func (r *recorder) TexImage2D(tex texture.Texture) error {
	r.log("TexImage2D %v %v", tex.Format(), tex.Bounds().Size())
	return r.texErr
}

func (r *recorder) SetProjection(fovy, aspect, near, far float32) {
	r.log("SetProjection %g %.4f %g %g", fovy, aspect, near, far)
}

func (r *recorder) SetView(eye, center, up [3]float32) {
	r.log("SetView %v %v %v", eye, center, up)
}

func (r *recorder) ConfigureCapture(source capture.Source, dest vram.Bank, region capture.Size) {
	r.log("ConfigureCapture %d %v %v", source, dest, region)
}

func (r *recorder) SetBankMode(b vram.Bank, mode vram.Mode) error {
	r.log("SetBankMode %v %v", b, mode)
	return nil
}
