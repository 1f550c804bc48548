package gx

import (
	"fmt"

	"github.com/AntonioND/nds-rtt-example/hw"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
)

// GenTexture allocates a texture name.  Names start at 1.
func (e *Engine) GenTexture() int {
	e.nextName++
	e.textures[e.nextName] = &texObject{}
	return e.nextName
}

// BindTexture makes id the active texture.  The texture parameters are only
// sent to the hardware if id differs from the active texture, so a raw
// TexParam issued in between is not undone by binding the same texture
// again.  Binding an unknown name, such as NoTexture, selects no texture.
func (e *Engine) BindTexture(id int) {
	if id == e.bound {
		return
	}
	e.bound = id
	obj := e.textures[id]
	if obj == nil || !obj.allocated {
		e.TexParam(texture.Param{})
		return
	}
	e.TexParam(obj.param)
	e.PaletteBase(obj.palette)
}

// ActiveTexture returns the name BindTexture last selected.
func (e *Engine) ActiveTexture() int { return e.bound }

// TexParam issues the TEXIMAGE_PARAM command for the following polygons.
func (e *Engine) TexParam(p texture.Param) {
	e.texParam = p
	e.texParamWrites++
}

// CurrentTexParam returns the last TEXIMAGE_PARAM command.
func (e *Engine) CurrentTexParam() texture.Param { return e.texParam }

// TexParamWrites counts the TEXIMAGE_PARAM commands issued since New.
func (e *Engine) TexParamWrites() int { return e.texParamWrites }

// PaletteBase sets the palette address in bytes for paletted textures.
func (e *Engine) PaletteBase(addr uint32) { e.palette = addr &^ 15 }

// TexImage2D uploads tex to texture memory for the active texture.  Texture
// memory must be mapped (banks in texture mode) and, for paletted formats,
// palette memory too.
func (e *Engine) TexImage2D(tex texture.Texture) error {
	obj := e.textures[e.bound]
	if obj == nil {
		return ErrNoTexture
	}
	size := tex.Bounds().Size()
	sizeS, okS := texture.SizeCode(size.X)
	sizeT, okT := texture.SizeCode(size.Y)
	if !okS || !okT {
		return fmt.Errorf("%w: %v", ErrTextureSize, size)
	}

	texels := tex.Texels()
	addr, ok := e.allocTexture(len(texels))
	if !ok {
		return fmt.Errorf("%w: %d bytes", ErrNoTextureMemory, len(texels))
	}
	if n := e.mem.WriteTexture(addr, texels); n != len(texels) {
		return fmt.Errorf("%w: short write at %#x", ErrNoTextureMemory, addr)
	}
	e.texAlloc = addr + uint32(len(texels))

	p := texture.Param{
		Addr:   addr,
		SizeS:  sizeS,
		SizeT:  sizeT,
		Format: tex.Format(),
	}
	var palAddr uint32
	if pal := tex.PaletteData(); len(pal) > 0 {
		palAddr = e.paletteTop
		if n := e.mem.WritePalette(palAddr, pal); n != len(pal) {
			return fmt.Errorf("%w: no palette memory", ErrNoTextureMemory)
		}
		e.paletteTop += uint32(len(pal)+15) &^ 15
	}
	obj.param, obj.palette, obj.allocated = p, palAddr, true
	hw.Logger().Debug("gx: texture uploaded", "name", e.bound, "addr", addr, "format", p.Format, "size", size)

	e.TexParam(p)
	e.PaletteBase(palAddr)
	return nil
}

// allocTexture finds size bytes of contiguous mapped texture memory at or
// after the allocation pointer.
func (e *Engine) allocTexture(size int) (uint32, bool) {
	slots := e.mem.TextureSlots()
	addr := (e.texAlloc + 7) &^ 7
	for addr+uint32(size) <= 4*vram.SlotSize {
		end := addr + uint32(size)
		fits := true
		for slot := addr / vram.SlotSize; slot*vram.SlotSize < end; slot++ {
			if !slots[slot] {
				addr = (slot + 1) * vram.SlotSize
				fits = false
				break
			}
		}
		if fits {
			return addr, true
		}
	}
	return 0, false
}
