package texture

// Param is the decoded TEXIMAGE_PARAM command word. It selects the texture
// used by following polygons.
type Param struct {
	Addr         uint32 // byte offset in texture image space, 8 byte aligned
	RepeatS      bool
	RepeatT      bool
	FlipS        bool
	FlipT        bool
	SizeS, SizeT uint8 // size codes, see SizeCode
	Format       Format
	Color0       bool // palette entry 0 is transparent
	TexGen       uint8
}

const (
	paramRepeatS = 1 << 16
	paramRepeatT = 1 << 17
	paramFlipS   = 1 << 18
	paramFlipT   = 1 << 19
	paramColor0  = 1 << 29
)

func (p Param) Encode() uint32 {
	w := p.Addr >> 3 & 0xffff
	if p.RepeatS {
		w |= paramRepeatS
	}
	if p.RepeatT {
		w |= paramRepeatT
	}
	if p.FlipS {
		w |= paramFlipS
	}
	if p.FlipT {
		w |= paramFlipT
	}
	w |= uint32(p.SizeS&7)<<20 | uint32(p.SizeT&7)<<23
	w |= uint32(p.Format&7) << 26
	if p.Color0 {
		w |= paramColor0
	}
	w |= uint32(p.TexGen&3) << 30
	return w
}

func DecodeParam(w uint32) Param {
	return Param{
		Addr:    (w & 0xffff) << 3,
		RepeatS: w&paramRepeatS != 0,
		RepeatT: w&paramRepeatT != 0,
		FlipS:   w&paramFlipS != 0,
		FlipT:   w&paramFlipT != 0,
		SizeS:   uint8(w >> 20 & 7),
		SizeT:   uint8(w >> 23 & 7),
		Format:  Format(w >> 26 & 7),
		Color0:  w&paramColor0 != 0,
		TexGen:  uint8(w >> 30),
	}
}

// Width and Height return the texture dimensions in texels.
func (p Param) Width() int  { return Size(p.SizeS) }
func (p Param) Height() int { return Size(p.SizeT) }
