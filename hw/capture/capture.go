// Package capture models the display capture unit of the main engine.  A
// capture copies one frame of the 3D output, the composited screen, a VRAM
// bank or a blend of two of them into a VRAM bank in LCD mode.
package capture

import (
	"fmt"

	"github.com/AntonioND/nds-rtt-example/hw"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
)

type Size uint8

const (
	Size128x128 Size = iota
	Size256x64
	Size256x128
	Size256x192
)

var sizes = [...][2]int{{128, 128}, {256, 64}, {256, 128}, {256, 192}}

func (s Size) Dim() (w, h int) { return sizes[s&3][0], sizes[s&3][1] }

func (s Size) String() string {
	w, h := s.Dim()
	return fmt.Sprintf("%dx%d", w, h)
}

// Source selects what source A of a capture reads.
type Source uint8

const (
	SourceGraphics Source = iota // composited background and 3D screen
	Source3D                     // 3D output only
)

// SourceB selects what source B of a capture reads.
type SourceB uint8

const (
	SourceVRAM SourceB = iota
	SourceFIFO
)

type Mode uint8

const (
	ModeA Mode = iota
	ModeB
	ModeBlend
)

// Control is the decoded DISPCAPCNT register.
type Control struct {
	EVA, EVB   uint8 // blend factors, 0-16
	Bank       vram.Bank
	Offset     uint8 // write offset in 32 KiB steps
	Size       Size
	SourceA    Source
	SourceB    SourceB
	ReadOffset uint8 // source B read offset in 32 KiB steps
	Mode       Mode
	Enable     bool
}

const (
	blockSize = 0x8000
	enableBit = 1 << 31
)

func (c Control) Encode() uint32 {
	w := uint32(c.EVA&31) | uint32(c.EVB&31)<<8
	w |= uint32(c.Bank&3)<<16 | uint32(c.Offset&3)<<18 | uint32(c.Size&3)<<20
	w |= uint32(c.SourceA&1)<<24 | uint32(c.SourceB&1)<<25
	w |= uint32(c.ReadOffset&3)<<26 | uint32(c.Mode&3)<<29
	if c.Enable {
		w |= enableBit
	}
	return w
}

func Decode(w uint32) Control {
	mode := Mode(w >> 29 & 3)
	if mode > ModeBlend {
		mode = ModeBlend
	}
	return Control{
		EVA:        uint8(w & 31),
		EVB:        uint8(w >> 8 & 31),
		Bank:       vram.Bank(w >> 16 & 3),
		Offset:     uint8(w >> 18 & 3),
		Size:       Size(w >> 20 & 3),
		SourceA:    Source(w >> 24 & 1),
		SourceB:    SourceB(w >> 25 & 1),
		ReadOffset: uint8(w >> 26 & 3),
		Mode:       mode,
		Enable:     w&enableBit != 0,
	}
}

// Sources are the images a capture can read during one display period.
type Sources struct {
	Screen *texture.RGB5A1 // graphics screen
	Render *texture.RGB5A1 // 3D output
	VRAM   []byte          // display bank for source B, may be nil
}

// Unit is the capture unit.  A configured capture runs once, during the next
// display period.
type Unit struct {
	ctrl     Control
	captures int
}

func (u *Unit) Configure(c Control) {
	if c.Bank > vram.D {
		hw.Logger().Warn("capture: bank out of range", "bank", c.Bank)
		c.Enable = false
	}
	u.ctrl = c
}

func (u *Unit) Control() Control { return u.ctrl }

// Captures returns the number of completed captures.
func (u *Unit) Captures() int { return u.captures }

// Run performs the pending capture, if any, and reports whether one was
// written.  The destination bank must be in LCD mode, otherwise nothing is
// written.  Either way the capture is disarmed.
func (u *Unit) Run(src Sources, mem *vram.Memory) bool {
	c := u.ctrl
	if !c.Enable {
		return false
	}
	u.ctrl.Enable = false

	dst := mem.LCD(c.Bank)
	if dst == nil {
		hw.Logger().Debug("capture: destination bank not in LCD mode", "bank", c.Bank, "mode", mem.Mode(c.Bank))
		return false
	}

	a := src.Screen
	if c.SourceA == Source3D {
		a = src.Render
	}
	w, h := c.Size.Dim()
	woff := int(c.Offset) * blockSize
	roff := int(c.ReadOffset) * blockSize
	for y := range h {
		for x := range w {
			i := y*w + x
			var pa, pb texture.Color
			if a != nil {
				pa = a.ColorAt(x, y)
			}
			if c.Mode != ModeA && src.VRAM != nil && c.SourceB == SourceVRAM {
				o := (roff + 2*(y*256+x)) % len(src.VRAM)
				pb = texture.Color(uint16(src.VRAM[o]) | uint16(src.VRAM[o+1])<<8)
			}
			var p texture.Color
			switch c.Mode {
			case ModeA:
				p = pa
			case ModeB:
				p = pb
			default:
				p = mix(pa, pb, c.EVA, c.EVB)
			}
			o := (woff + 2*i) % len(dst)
			dst[o] = byte(p)
			dst[o+1] = byte(p >> 8)
		}
	}
	u.captures++
	return true
}

func mix(a, b texture.Color, eva, evb uint8) texture.Color {
	eva, evb = min(eva, 16), min(evb, 16)
	ch := func(ca, cb uint8) uint8 {
		if !a.Opaque() {
			ca = 0
		}
		if !b.Opaque() {
			cb = 0
		}
		return uint8(min((int(ca)*int(eva)+int(cb)*int(evb)+8)>>4, 31))
	}
	p := texture.RGB15(ch(a.R(), b.R()), ch(a.G(), b.G()), ch(a.B(), b.B()))
	if a.Opaque() && eva > 0 || b.Opaque() && evb > 0 {
		p |= texture.AlphaBit
	}
	return p
}
