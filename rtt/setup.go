package rtt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AntonioND/nds-rtt-example/debug"
	"github.com/AntonioND/nds-rtt-example/hw/fixed"
	"github.com/AntonioND/nds-rtt-example/hw/gx"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/video"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
)

var ErrTextureLoad = errors.New("rtt: failed to load texture")

const banner = "     RTT Demo by AntonioND\n" +
	"\n" +
	"    http://www.skylyrac.net\n" +
	"\n" +
	"\n" +
	"\n" +
	"A/B: Scale small cube\n" +
	"Pad: Rotate small cube" +
	"\x1b[23;0HThanks to DiscoStew. ;)"

var white = texture.RGB15(31, 31, 31)

// Setup prepares displays, VRAM and the 3D engine and uploads the texture
// of the small cube.  It returns the texture name.  If the texture can't be
// loaded a notice is printed on the console and an error wrapping
// ErrTextureLoad is returned.
func Setup(h Hardware, cfg Config) (int, error) {
	switch cfg.DisplayMode {
	case Mode3D:
		h.Display.SetGraphics(video.BG0 | video.BG2)
		h.Display.SetPriority(video.BG0, 1)
		h.Display.SetPriority(video.BG2, 0)
		h.Display.SetBitmapBase(0)
	case ModeFramebuffer:
		debug.AssertErrNil(h.Capture.SetBankMode(vram.C, vram.ModeLCD))
		h.Display.SetFramebuffer(vram.C)
	}

	fmt.Fprint(h.Console, banner)

	r := h.Renderer
	r.Enable(gx.Texture2D | gx.Antialias)
	// The rear plane needs a unique polygon ID for antialiasing.
	r.ClearPolyID(63)
	r.ClearDepth(0x7fff)

	debug.AssertErrNil(h.Capture.SetBankMode(vram.A, vram.ModeTexture(0)))
	if cfg.TextureFormat == texture.Pal256 {
		debug.AssertErrNil(h.Capture.SetBankMode(vram.E, vram.ModeTexturePalette(0)))
	}

	id := r.GenTexture()
	r.BindTexture(id)
	tex, err := cfg.loadTexture()
	if err == nil {
		err = r.TexImage2D(tex)
	}
	if err != nil {
		fmt.Fprintln(h.Console, "Failed to load texture")
		return 0, fmt.Errorf("%w: %w", ErrTextureLoad, err)
	}

	r.MatrixMode(gx.TextureMatrix)
	r.LoadIdentity()

	r.SetMaterial(gx.Material{Diffuse: white})
	r.PolyFmt(gx.PolyAlpha(31) | gx.CullBack | gx.Light0)
	r.Light(0, white, fixed.Vec3[fixed.Int7_9]{X: v10(-0.6), Y: v10(-0.6), Z: v10(-0.6)})

	slog.Debug("rtt: setup done", "display", cfg.DisplayMode, "texture", tex.Format(), "name", id)
	return id, nil
}

// Halt waits for vertical blank until ctx is done.
func Halt(ctx context.Context, vb VBlank) error {
	for ctx.Err() == nil {
		vb.WaitVBlank()
	}
	return ctx.Err()
}
