// Package video models the two 2D display engines.  The main engine
// composites the 3D output (BG0) with a 16-bit bitmap background (BG2) or
// shows a VRAM bank directly.  The sub engine shows a text console.
package video

import (
	"image"
	"sync/atomic"

	"github.com/AntonioND/nds-rtt-example/hw"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
)

const (
	Width  = 256
	Height = 192

	bitmapWidth = 256
)

var Bounds = image.Rect(0, 0, Width, Height)

type Mode uint8

const (
	ModeGraphics    Mode = iota // backgrounds and 3D
	ModeFramebuffer             // a VRAM bank in LCD mode shown directly
)

func (m Mode) String() string {
	if m == ModeFramebuffer {
		return "framebuffer"
	}
	return "graphics"
}

type Layer uint8

const (
	BG0 Layer = 1 << iota
	BG1
	BG2
	BG3
)

// Main is the main display engine.
type Main struct {
	mode     Mode
	fb       vram.Bank
	layers   Layer
	priority [4]uint8
	bg2Base  uint32
	backdrop texture.Color
}

func NewMain() *Main {
	return &Main{backdrop: texture.AlphaBit}
}

// SetGraphics selects graphics mode with the given layers enabled.  BG0
// shows the 3D output, BG2 a 256x256 16-bit bitmap.
func (m *Main) SetGraphics(layers Layer) {
	m.mode, m.layers = ModeGraphics, layers
	hw.Logger().Info("video: graphics mode", "layers", layers)
}

// SetFramebuffer shows bank b, which must be in LCD mode.
func (m *Main) SetFramebuffer(b vram.Bank) {
	m.mode, m.fb = ModeFramebuffer, b
	hw.Logger().Info("video: framebuffer mode", "bank", b)
}

func (m *Main) Mode() Mode { return m.mode }

// SetPriority sets the priority of a single background layer.  Lower values
// are drawn on top; equal priorities are resolved by layer number.
func (m *Main) SetPriority(l Layer, p uint8) {
	for i := range m.priority {
		if l&(1<<i) != 0 {
			m.priority[i] = p & 3
		}
	}
}

// SetBitmapBase sets the BG2 bitmap address in main background memory.
func (m *Main) SetBitmapBase(addr uint32) { m.bg2Base = addr }

func (m *Main) SetBackdrop(c texture.Color) { m.backdrop = c | texture.AlphaBit }

// Compose draws one frame of the main screen into out.
func (m *Main) Compose(out, render3D *texture.RGB5A1, mem *vram.Memory) {
	if m.mode == ModeFramebuffer {
		m.composeFramebuffer(out, mem)
		return
	}

	// Layers in drawing order, top first.
	var order [4]int
	n := 0
	for p := range uint8(4) {
		for i := range 4 {
			if m.layers&(1<<i) != 0 && m.priority[i] == p {
				order[n] = i
				n++
			}
		}
	}

	for y := range Height {
		for x := range Width {
			c := m.backdrop
			for _, l := range order[:n] {
				var px texture.Color
				switch l {
				case 0:
					if render3D != nil {
						px = render3D.ColorAt(x, y)
					}
				case 2:
					px = texture.Color(mem.ReadMainBG16(m.bg2Base + uint32(y*bitmapWidth+x)*2))
				}
				if px.Opaque() {
					c = px
					break
				}
			}
			out.SetColor(x, y, c)
		}
	}
}

func (m *Main) composeFramebuffer(out *texture.RGB5A1, mem *vram.Memory) {
	lcd := mem.LCD(m.fb)
	if lcd == nil {
		out.Fill(texture.AlphaBit)
		return
	}
	for y := range Height {
		for x := range Width {
			o := 2 * (y*Width + x)
			out.SetColor(x, y, texture.Color(uint16(lcd[o])|uint16(lcd[o+1])<<8)|texture.AlphaBit)
		}
	}
}

const (
	TextCols = Width / 8
	TextRows = Height / 8
)

// Sub is the sub display engine.  Its only layer is a text background of
// 8x8 cells; Map holds the character code of each cell.
type Sub struct {
	Map [TextRows][TextCols]byte
}

func NewSub() *Sub {
	s := &Sub{}
	s.Clear()
	return s
}

func (s *Sub) Clear() {
	for r := range s.Map {
		for c := range s.Map[r] {
			s.Map[r][c] = ' '
		}
	}
}

// VBlank counts vertical blanks.
type VBlank struct {
	count atomic.Uint64
}

func (v *VBlank) Signal()       { v.count.Add(1) }
func (v *VBlank) Count() uint64 { return v.count.Load() }
