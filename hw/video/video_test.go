package video_test

import (
	"testing"

	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/video"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
)

var (
	red   = texture.RGB15(31, 0, 0) | texture.AlphaBit
	green = texture.RGB15(0, 31, 0) | texture.AlphaBit
	black = texture.AlphaBit
)

func put(mem []byte, i int, c texture.Color) {
	mem[2*i], mem[2*i+1] = byte(c), byte(c>>8)
}

func TestComposeGraphics(t *testing.T) {
	mem := vram.New()
	if err := mem.SetBankMode(vram.C, vram.ModeLCD); err != nil {
		t.Fatal(err)
	}
	bank := mem.LCD(vram.C)
	put(bank, 0, green)        // (0,0) opaque bitmap pixel
	put(bank, 1, green&^black) // (1,0) transparent
	if err := mem.SetBankMode(vram.C, vram.ModeMainBG(0)); err != nil {
		t.Fatal(err)
	}

	render := texture.NewRGB5A1(video.Bounds)
	render.SetColor(0, 0, red)
	render.SetColor(1, 0, red)

	m := video.NewMain()
	m.SetGraphics(video.BG0 | video.BG2)
	m.SetPriority(video.BG2, 0)
	m.SetPriority(video.BG0, 1)

	out := texture.NewRGB5A1(video.Bounds)
	m.Compose(out, render, mem)
	for _, tc := range []struct {
		x    int
		want texture.Color
	}{
		{0, green}, // bitmap on top
		{1, red},   // 3D through transparent bitmap
		{2, black}, // backdrop
	} {
		if got := out.ColorAt(tc.x, 0); got != tc.want {
			t.Errorf("(%d,0): got %#04x, want %#04x", tc.x, got, tc.want)
		}
	}

	// Swapped priorities put 3D on top.
	m.SetPriority(video.BG0, 0)
	m.SetPriority(video.BG2, 1)
	m.Compose(out, render, mem)
	if got := out.ColorAt(0, 0); got != red {
		t.Errorf("3D on top: got %#04x", got)
	}

	// Unmapped bitmap memory reads as transparent.
	if err := mem.SetBankMode(vram.C, vram.ModeLCD); err != nil {
		t.Fatal(err)
	}
	m.SetPriority(video.BG2, 0)
	m.Compose(out, texture.NewRGB5A1(video.Bounds), mem)
	if got := out.ColorAt(0, 0); got != black {
		t.Errorf("unmapped bitmap: got %#04x", got)
	}
}

func TestComposeFramebuffer(t *testing.T) {
	mem := vram.New()
	m := video.NewMain()
	m.SetFramebuffer(vram.C)
	if m.Mode() != video.ModeFramebuffer {
		t.Fatalf("mode: got %v", m.Mode())
	}
	out := texture.NewRGB5A1(video.Bounds)
	m.Compose(out, nil, mem)
	if got := out.ColorAt(10, 10); got != black {
		t.Errorf("bank not in LCD mode: got %#04x", got)
	}

	if err := mem.SetBankMode(vram.C, vram.ModeLCD); err != nil {
		t.Fatal(err)
	}
	put(mem.LCD(vram.C), 5*256+10, red&^texture.AlphaBit)
	m.Compose(out, nil, mem)
	if got := out.ColorAt(10, 5); got != red {
		t.Errorf("got %#04x, want %#04x", got, red)
	}
}

func TestVBlank(t *testing.T) {
	var vb video.VBlank
	vb.Signal()
	vb.Signal()
	if vb.Count() != 2 {
		t.Errorf("Count: got %d, want 2", vb.Count())
	}
}
