package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AntonioND/nds-rtt-example/hw/keypad"
)

func TestLoadConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "rtt.yaml")
	err := os.WriteFile(name, []byte(`
scale: 3
displayMode: framebuffer
textureFormat: PAL256
keys:
  Space: A
headless:
  enabled: true
  frames: 120
  hold: [A, LEFT]
  screenshot: out.png
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	fc, err := loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if fc.Scale != 3 || fc.DisplayMode != "framebuffer" || fc.TextureFormat != "PAL256" {
		t.Errorf("got %+v", fc)
	}
	if fc.Keys["Space"] != "A" {
		t.Errorf("keys: got %v", fc.Keys)
	}
	h := fc.Headless
	if !h.Enabled || h.Frames != 120 || len(h.Hold) != 2 || h.Screenshot != "out.png" {
		t.Errorf("headless: got %+v", h)
	}

	if fc, err := loadConfig(""); err != nil || fc.Scale != 0 {
		t.Errorf("no file: got %+v, %v", fc, err)
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestParseKeys(t *testing.T) {
	for _, tc := range []struct {
		in   []string
		want keypad.Key
		ok   bool
	}{
		{nil, 0, true},
		{[]string{"A"}, keypad.A, true},
		{[]string{"a,left"}, keypad.A | keypad.Left, true},
		{[]string{"UP|B", "start"}, keypad.Up | keypad.B | keypad.Start, true},
		{[]string{"A,turbo"}, keypad.A, false},
	} {
		got, err := parseKeys(tc.in...)
		if got != tc.want || (err == nil) != tc.ok {
			t.Errorf("%q: got %v, %v", tc.in, got, err)
		}
	}
}
