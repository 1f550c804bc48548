package rtt

import (
	"fmt"
	"strings"

	"github.com/AntonioND/nds-rtt-example/assets"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
)

type DisplayMode uint8

const (
	// Mode3D shows the 3D output on BG0 under a bitmap on BG2 that shows
	// bank C.
	Mode3D DisplayMode = iota
	// ModeFramebuffer shows bank C directly.
	ModeFramebuffer
)

func (m DisplayMode) String() string {
	if m == ModeFramebuffer {
		return "framebuffer"
	}
	return "3d"
}

func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(s) {
	case "", "3d":
		return Mode3D, nil
	case "framebuffer", "fb":
		return ModeFramebuffer, nil
	}
	return 0, fmt.Errorf("rtt: unknown display mode %q", s)
}

// ParseTextureFormat accepts the names texture.Format prints.
func ParseTextureFormat(s string) (texture.Format, error) {
	switch strings.ToUpper(s) {
	case "", "RGB5A1", "DIRECT":
		return texture.Direct, nil
	case "PAL256":
		return texture.Pal256, nil
	}
	return 0, fmt.Errorf("rtt: unknown texture format %q", s)
}

type Config struct {
	DisplayMode   DisplayMode
	TextureFormat texture.Format

	// LoadTexture returns the texture of the small cube, assets.Texture if
	// nil.
	LoadTexture func(texture.Format) (texture.Texture, error)
}

func (c *Config) loadTexture() (texture.Texture, error) {
	format := c.TextureFormat
	if format == texture.None {
		format = texture.Direct
	}
	if c.LoadTexture != nil {
		return c.LoadTexture(format)
	}
	return assets.Texture(format)
}
