package texture

import (
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/sigurn/crc8"
)

var (
	ErrFormat   = errors.New("texture: unsupported format")
	ErrSize     = errors.New("texture: size must be a power of two from 8 to 1024")
	ErrChecksum = errors.New("texture: checksum mismatch")
)

var fileCRC8 = crc8.MakeTable(crc8.Params{Poly: 0x85, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00, Check: 0x2A, Name: "CRC-8 texture"})

type header struct {
	Format        Format
	Width, Height uint16
	PaletteSize   uint16
}

// Load reads a texture stored with Store.
func Load(r io.Reader) (Texture, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var hdr header
	err = binary.Read(zr, binary.BigEndian, &hdr)
	if err != nil {
		return nil, err
	}
	if _, ok := SizeCode(int(hdr.Width)); !ok {
		return nil, fmt.Errorf("%w: width %d", ErrSize, hdr.Width)
	}
	if _, ok := SizeCode(int(hdr.Height)); !ok {
		return nil, fmt.Errorf("%w: height %d", ErrSize, hdr.Height)
	}

	rect := image.Rect(0, 0, int(hdr.Width), int(hdr.Height))
	if hdr.Format != Direct && hdr.Format != Pal256 {
		return nil, fmt.Errorf("%w: %v", ErrFormat, hdr.Format)
	}
	if int(hdr.PaletteSize) > hdr.Format.PaletteSize() {
		return nil, fmt.Errorf("%w: %d palette entries", ErrFormat, hdr.PaletteSize)
	}

	pix := make([]byte, rect.Dx()*rect.Dy()*hdr.Format.BitsPerTexel()/8)
	pal := make([]byte, 2*int(hdr.PaletteSize))
	csum := crc8.Init(fileCRC8)
	for _, buf := range [][]byte{pix, pal} {
		_, err = io.ReadFull(zr, buf)
		if err != nil {
			return nil, err
		}
		csum = crc8.Update(csum, buf, fileCRC8)
	}

	var stored [1]byte
	_, err = io.ReadFull(zr, stored[:])
	if err != nil {
		return nil, err
	}
	if stored[0] != crc8.Complete(csum, fileCRC8) {
		return nil, ErrChecksum
	}

	if hdr.Format == Direct {
		tex := NewRGB5A1(rect)
		copy(tex.Pix, pix)
		return tex, nil
	}

	colors := make([]Color, hdr.PaletteSize)
	for i := range colors {
		colors[i] = Color(binary.LittleEndian.Uint16(pal[2*i:]))
	}
	tex := NewCI8(rect, colors)
	copy(tex.Pix, pix)
	return tex, nil
}

// Store writes tex compressed and with a checksum, so it can be read back
// with Load.
func Store(w io.Writer, tex Texture) error {
	bounds := tex.Bounds()
	hdr := header{
		Format: tex.Format(),
		Width:  uint16(bounds.Dx()),
		Height: uint16(bounds.Dy()),
	}
	if _, ok := SizeCode(bounds.Dx()); !ok {
		return fmt.Errorf("%w: width %d", ErrSize, bounds.Dx())
	}
	if _, ok := SizeCode(bounds.Dy()); !ok {
		return fmt.Errorf("%w: height %d", ErrSize, bounds.Dy())
	}

	var pal []byte
	switch tex := tex.(type) {
	case *RGB5A1:
		if tex.Stride != 2*bounds.Dx() {
			return errors.New("texture: is subimage")
		}
	case *CI8:
		if tex.Stride != bounds.Dx() {
			return errors.New("texture: is subimage")
		}
		hdr.PaletteSize = uint16(len(tex.Palette))
		pal = tex.PaletteData()[:2*len(tex.Palette)]
	default:
		return fmt.Errorf("%w: %v", ErrFormat, tex.Format())
	}

	zw := zlib.NewWriter(w)
	err := binary.Write(zw, binary.BigEndian, hdr)
	if err != nil {
		return err
	}

	csum := crc8.Init(fileCRC8)
	for _, buf := range [][]byte{tex.Texels(), pal} {
		_, err = zw.Write(buf)
		if err != nil {
			return err
		}
		csum = crc8.Update(csum, buf, fileCRC8)
	}
	_, err = zw.Write([]byte{crc8.Complete(csum, fileCRC8)})
	if err != nil {
		return err
	}

	return zw.Close()
}
