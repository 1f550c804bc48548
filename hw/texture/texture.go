// Package texture provides the image formats understood by the 3D hardware,
// the TEXIMAGE_PARAM command word and a file format to store textures.
package texture

import (
	"fmt"
	"image"
)

// Format is the texel format, encoded as in bits 26-28 of TEXIMAGE_PARAM.
type Format uint8

const (
	None   Format = 0
	Pal256 Format = 4 // 8 bit palette indices
	Direct Format = 7 // RGB5A1
)

func (f Format) String() string {
	switch f {
	case None:
		return "none"
	case Pal256:
		return "PAL256"
	case Direct:
		return "RGB5A1"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// BitsPerTexel returns the storage size of a single texel.
func (f Format) BitsPerTexel() int {
	switch f {
	case Pal256:
		return 8
	case Direct:
		return 16
	}
	return 0
}

// PaletteSize returns the number of palette entries used by the format.
func (f Format) PaletteSize() int {
	if f == Pal256 {
		return 256
	}
	return 0
}

// Texture is an image in a format that can be uploaded to texture memory.
type Texture interface {
	image.Image

	Format() Format
	// Texels returns the texel data as stored in texture memory.
	Texels() []byte
	// PaletteData returns the RGB555 palette as stored in palette memory, or
	// nil if the format has no palette.
	PaletteData() []byte
}

// SizeCode returns the size code of TEXIMAGE_PARAM for a texture dimension
// of px texels. Only powers of two from 8 to 1024 are valid.
func SizeCode(px int) (code uint8, ok bool) {
	for code = 0; code < 8; code++ {
		if 8<<code == px {
			return code, true
		}
	}
	return 0, false
}

// Size returns the texture dimension for a size code.
func Size(code uint8) int { return 8 << (code & 7) }
