package rtt_test

import (
	"strings"
	"testing"

	"github.com/AntonioND/nds-rtt-example/drivers/controller"
	"github.com/AntonioND/nds-rtt-example/hw/keypad"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
	"github.com/AntonioND/nds-rtt-example/machine"
	"github.com/AntonioND/nds-rtt-example/rtt"
)

func newMachine(t *testing.T, cfg rtt.Config) (*machine.Machine, *rtt.Loop) {
	t.Helper()
	m := machine.New()
	var console strings.Builder
	l, err := rtt.New(rtt.Hardware{
		Renderer: m.GX,
		Capture:  m,
		Display:  m.Main,
		Input:    controller.New(&m.Keypad),
		VBlank:   m,
		Console:  &console,
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return m, l
}

func lcdPixel(mem []byte, x, y int) texture.Color {
	o := 2 * (y*256 + x)
	return texture.Color(uint16(mem[o]) | uint16(mem[o+1])<<8)
}

func TestMachine(t *testing.T) {
	m, l := newMachine(t, rtt.Config{})
	green := texture.RGB15(0, 31, 0)
	blue := texture.RGB15(0, 0, 31)

	for n := 1; n <= 8; n++ {
		l.Frame()
		if got := m.Frame(); got != uint64(n) {
			t.Fatalf("frame %d: %d vertical blanks", n, got)
		}

		// The raw parameters of the captured texture must not leak into
		// the texture scene.
		switch p := m.GX.CurrentTexParam(); l.State.Phase() {
		case rtt.TextureScene: // a real scene was just drawn
			if p != rtt.CapturedTexture {
				t.Errorf("frame %d: real scene texture %+v", n, p)
			}
		case rtt.RealScene:
			if p.Addr != 0 || p.Format != texture.Direct || p.Width() != 128 {
				t.Errorf("frame %d: texture scene texture %+v", n, p)
			}
		}

		if n >= 4 {
			screen := m.MainScreen()
			if c := screen.ColorAt(0, 0); c != blue {
				t.Errorf("frame %d: background %#04x, want %#04x", n, c, blue)
			}
			if c := screen.ColorAt(128, 96); c == blue || !c.Opaque() {
				t.Errorf("frame %d: no cube on the main screen, %#04x", n, c)
			}
		}

		// Bank B is readable while the real scene is set up.  It holds the
		// texture scene captured during the last display period.
		if n >= 4 && n%2 == 0 {
			b := m.VRAM.LCD(vram.B)
			if b == nil {
				t.Fatalf("frame %d: bank B mode %v", n, m.VRAM.Mode(vram.B))
			}
			if c := lcdPixel(b, 0, 0); c != green {
				t.Errorf("frame %d: captured background %#04x, want %#04x", n, c, green)
			}
			if c := lcdPixel(b, 64, 64); c == green || !c.Opaque() {
				t.Errorf("frame %d: small cube missing, %#04x", n, c)
			}
		}
	}
	if got := m.Capture.Captures(); got != 7 {
		t.Errorf("%d captures, want 7", got)
	}
}

func TestMachineInput(t *testing.T) {
	m, l := newMachine(t, rtt.Config{TextureFormat: texture.Pal256})
	m.Keypad.Press(keypad.A | keypad.Left)
	for range 10 {
		l.Frame()
	}
	m.Keypad.Release(keypad.All)
	l.Frame()
	if !near(l.State.Scale, 1.1) || l.State.RotateY != 30 || l.State.Rx != 41 {
		t.Errorf("got %+v", l.State)
	}
}

func TestMachineFramebuffer(t *testing.T) {
	m, l := newMachine(t, rtt.Config{DisplayMode: rtt.ModeFramebuffer})
	for range 5 {
		l.Frame()
	}
	// Bank C holds the real scene.
	blue := texture.RGB15(0, 0, 31)
	if c := m.MainScreen().ColorAt(0, 0); c != blue {
		t.Errorf("background %#04x, want %#04x", c, blue)
	}
	if m.VRAM.Mode(vram.C) != vram.ModeLCD {
		t.Errorf("bank C mode %v", m.VRAM.Mode(vram.C))
	}
}
