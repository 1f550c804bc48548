// Package vram models the video memory banks and their runtime mapping.
//
// Every bank is a plain block of memory whose function is selected by its
// mode: while mapped to the LCDC it is accessible by the CPU and the capture
// unit, otherwise it serves as texture image, texture palette or main engine
// background memory.
package vram

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/AntonioND/nds-rtt-example/hw"
)

type Bank uint8

const (
	A Bank = iota
	B
	C
	D
	E

	NumBanks
)

const (
	SlotSize        = 0x20000 // size of a texture slot or main BG block
	PaletteSlotSize = 0x4000
)

var bankSizes = [NumBanks]int{
	A: 128 << 10, B: 128 << 10, C: 128 << 10, D: 128 << 10,
	E: 64 << 10,
}

func (b Bank) Size() int { return bankSizes[b] }

func (b Bank) String() string {
	if b >= NumBanks {
		return fmt.Sprintf("Bank(%d)", uint8(b))
	}
	return "VRAM_" + string(rune('A'+b))
}

type Kind uint8

const (
	Disabled Kind = iota
	LCD
	MainBG
	Texture
	TexturePalette
)

func (k Kind) String() string {
	switch k {
	case Disabled:
		return "disabled"
	case LCD:
		return "lcd"
	case MainBG:
		return "main-bg"
	case Texture:
		return "texture"
	case TexturePalette:
		return "texture-palette"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Mode is the function of a bank together with its offset, e.g. the texture
// slot it occupies.
type Mode struct {
	Kind   Kind
	Offset uint8
}

var (
	ModeDisabled = Mode{Kind: Disabled}
	ModeLCD      = Mode{Kind: LCD}
)

func ModeMainBG(offset uint8) Mode      { return Mode{MainBG, offset} }
func ModeTexture(slot uint8) Mode       { return Mode{Texture, slot} }
func ModeTexturePalette(slot uint8) Mode { return Mode{TexturePalette, slot} }

func (m Mode) String() string {
	if m.Kind == Disabled || m.Kind == LCD {
		return m.Kind.String()
	}
	return fmt.Sprintf("%v@%d", m.Kind, m.Offset)
}

var ErrInvalidMode = errors.New("vram: invalid mode for bank")

const unmapped = -1

// Memory holds all banks and resolves addresses of the mapped address spaces
// to the bank currently serving them.
type Memory struct {
	banks [NumBanks][]byte
	modes [NumBanks]Mode

	// Address space lookup tables, updated on every mode change. The bank
	// mapped last wins if two banks overlap.
	texture [4]int8
	palette [4]int8
	mainBG  [4]int8
}

func New() *Memory {
	m := &Memory{}
	for b := range m.banks {
		m.banks[b] = make([]byte, bankSizes[b])
	}
	for i := range 4 {
		m.texture[i], m.palette[i], m.mainBG[i] = unmapped, unmapped, unmapped
	}
	return m
}

func validMode(b Bank, mode Mode) bool {
	switch mode.Kind {
	case Disabled, LCD:
		return true
	case MainBG:
		if b == E {
			return mode.Offset == 0
		}
		return mode.Offset < 4
	case Texture:
		return b != E && mode.Offset < 4
	case TexturePalette:
		return b == E && mode.Offset == 0
	}
	return false
}

// SetBankMode changes the function of a bank, like writing its VRAMCNT
// register. The contents of the bank are preserved.
func (m *Memory) SetBankMode(b Bank, mode Mode) error {
	if b >= NumBanks || !validMode(b, mode) {
		hw.Logger().Warn("vram: ignoring invalid mode", "bank", b, "mode", mode)
		return fmt.Errorf("%w: %v %v", ErrInvalidMode, b, mode)
	}

	unmap := func(table *[4]int8) {
		for i := range table {
			if table[i] == int8(b) {
				table[i] = unmapped
			}
		}
	}
	unmap(&m.texture)
	unmap(&m.palette)
	unmap(&m.mainBG)

	switch mode.Kind {
	case Texture:
		m.texture[mode.Offset] = int8(b)
	case TexturePalette:
		for i := range m.palette { // 64 KiB cover all four palette slots
			m.palette[i] = int8(b)
		}
	case MainBG:
		m.mainBG[mode.Offset] = int8(b)
	}

	m.modes[b] = mode
	return nil
}

func (m *Memory) Mode(b Bank) Mode { return m.modes[b] }

// LCD returns the memory of a bank if it's currently mapped to the LCDC, nil
// otherwise.
func (m *Memory) LCD(b Bank) []byte {
	if m.modes[b].Kind != LCD {
		return nil
	}
	return m.banks[b]
}

// lookup resolves addr in an address space made of consecutive blocks of
// blockSize bytes.
func (m *Memory) lookup(table *[4]int8, blockSize int, addr uint32) (mem []byte, off int) {
	blk := int(addr) / blockSize
	if blk >= len(table) || table[blk] == unmapped {
		return nil, 0
	}
	mem = m.banks[table[blk]]
	off = int(addr) % blockSize
	if table == &m.palette {
		off = int(addr) // a single bank covers the whole palette space
	}
	if off >= len(mem) {
		return nil, 0
	}
	return mem, off
}

func read16(mem []byte, off int) uint16 {
	if mem == nil || off+1 >= len(mem) {
		return 0
	}
	return binary.LittleEndian.Uint16(mem[off:])
}

// ReadTexture16 reads a halfword from texture image space. Unmapped addresses
// read as zero.
func (m *Memory) ReadTexture16(addr uint32) uint16 {
	return read16(m.lookup(&m.texture, SlotSize, addr&^1))
}

// ReadTexture8 reads a byte from texture image space.
func (m *Memory) ReadTexture8(addr uint32) uint8 {
	mem, off := m.lookup(&m.texture, SlotSize, addr)
	if mem == nil {
		return 0
	}
	return mem[off]
}

// ReadPalette16 reads a halfword from texture palette space.
func (m *Memory) ReadPalette16(addr uint32) uint16 {
	return read16(m.lookup(&m.palette, PaletteSlotSize*4, addr&^1))
}

// ReadMainBG16 reads a halfword from main engine background space, relative
// to its base address.
func (m *Memory) ReadMainBG16(addr uint32) uint16 {
	return read16(m.lookup(&m.mainBG, SlotSize, addr&^1))
}

// WriteTexture copies p into texture image space starting at addr and
// returns the number of bytes written. Writing stops at the first unmapped
// block.
func (m *Memory) WriteTexture(addr uint32, p []byte) int {
	return m.write(&m.texture, SlotSize, addr, p)
}

// WritePalette copies p into texture palette space starting at addr.
func (m *Memory) WritePalette(addr uint32, p []byte) int {
	return m.write(&m.palette, PaletteSlotSize*4, addr, p)
}

func (m *Memory) write(table *[4]int8, blockSize int, addr uint32, p []byte) (n int) {
	for n < len(p) {
		mem, off := m.lookup(table, blockSize, addr+uint32(n))
		if mem == nil {
			break
		}
		n += copy(mem[off:], p[n:])
	}
	return n
}

// TextureSlots returns which texture slots are currently backed by a bank.
func (m *Memory) TextureSlots() (mapped [4]bool) {
	for i := range m.texture {
		mapped[i] = m.texture[i] != unmapped
	}
	return
}
