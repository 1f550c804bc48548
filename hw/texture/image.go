package texture

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

// Color is a 15 bit color with a single alpha bit, as used by the display
// hardware: bits 0-4 red, 5-9 green, 10-14 blue, 15 alpha.
type Color uint16

const AlphaBit Color = 1 << 15

// RGB15 returns an opaque color from 5 bit components.
func RGB15(r, g, b uint8) Color {
	return AlphaBit | Color(r&31) | Color(g&31)<<5 | Color(b&31)<<10
}

func (c Color) R() uint8     { return uint8(c & 31) }
func (c Color) G() uint8     { return uint8(c >> 5 & 31) }
func (c Color) B() uint8     { return uint8(c >> 10 & 31) }
func (c Color) Opaque() bool { return c&AlphaBit != 0 }

func expand5(v uint8) uint32 {
	v8 := uint32(v)<<3 | uint32(v)>>2
	return v8<<8 | v8
}

func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.Opaque() {
		return 0, 0, 0, 0
	}
	return expand5(c.R()), expand5(c.G()), expand5(c.B()), 0xffff
}

var ColorModel color.Model = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	return toColor(c)
}

func toColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return 0
	}
	if a != 0xffff { // unpremultiply
		r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	}
	return RGB15(uint8(r>>11), uint8(g>>11), uint8(b>>11))
}

// RGB5A1 is a direct color texture, two bytes per texel in little endian.
type RGB5A1 struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func NewRGB5A1(r image.Rectangle) *RGB5A1 {
	return &RGB5A1{
		Pix:    make([]uint8, r.Dx()*r.Dy()*2),
		Stride: 2 * r.Dx(),
		Rect:   r,
	}
}

func (p *RGB5A1) ColorModel() color.Model { return ColorModel }
func (p *RGB5A1) Bounds() image.Rectangle { return p.Rect }
func (p *RGB5A1) Format() Format          { return Direct }
func (p *RGB5A1) Texels() []byte          { return p.Pix }
func (p *RGB5A1) PaletteData() []byte     { return nil }

func (p *RGB5A1) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *RGB5A1) At(x, y int) color.Color { return p.ColorAt(x, y) }

func (p *RGB5A1) ColorAt(x, y int) Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return 0
	}
	return Color(binary.LittleEndian.Uint16(p.Pix[p.PixOffset(x, y):]))
}

func (p *RGB5A1) Set(x, y int, c color.Color) {
	p.SetColor(x, y, toColor(c))
}

func (p *RGB5A1) SetColor(x, y int, c Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	binary.LittleEndian.PutUint16(p.Pix[p.PixOffset(x, y):], uint16(c))
}

// Fill sets all pixels to c.
func (p *RGB5A1) Fill(c Color) {
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			p.SetColor(x, y, c)
		}
	}
}

// CI8 is a paletted texture with 256 colors, one byte per texel.
type CI8 struct {
	Pix     []uint8
	Stride  int
	Rect    image.Rectangle
	Palette []Color

	model color.Palette
}

func NewCI8(r image.Rectangle, palette []Color) *CI8 {
	p := &CI8{
		Pix:     make([]uint8, r.Dx()*r.Dy()),
		Stride:  r.Dx(),
		Rect:    r,
		Palette: palette,
	}
	p.model = make(color.Palette, len(palette))
	for i, c := range palette {
		p.model[i] = c
	}
	return p
}

func (p *CI8) ColorModel() color.Model { return p.model }
func (p *CI8) Bounds() image.Rectangle { return p.Rect }
func (p *CI8) Format() Format          { return Pal256 }
func (p *CI8) Texels() []byte          { return p.Pix }

func (p *CI8) PaletteData() []byte {
	buf := make([]byte, 2*Pal256.PaletteSize())
	for i, c := range p.Palette {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(c))
	}
	return buf
}

func (p *CI8) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *CI8) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return Color(0)
	}
	idx := int(p.Pix[p.PixOffset(x, y)])
	if idx >= len(p.Palette) {
		return Color(0)
	}
	return p.Palette[idx]
}

func (p *CI8) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) || len(p.model) == 0 {
		return
	}
	p.Pix[p.PixOffset(x, y)] = uint8(p.model.Index(c))
}

var (
	_ draw.Image = (*RGB5A1)(nil)
	_ draw.Image = (*CI8)(nil)
	_ Texture    = (*RGB5A1)(nil)
	_ Texture    = (*CI8)(nil)
)
