// Package assets holds the texture of the small cube, a 128x128 image
// stored with texture.Store in both supported formats.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/AntonioND/nds-rtt-example/hw/texture"
)

//go:embed texture.rgba16.tex
var rgba16 []byte

//go:embed texture.ci8.tex
var ci8 []byte

// Texture decodes the embedded texture in format f.
func Texture(f texture.Format) (texture.Texture, error) {
	var data []byte
	switch f {
	case texture.Direct:
		data = rgba16
	case texture.Pal256:
		data = ci8
	default:
		return nil, fmt.Errorf("%w: %v", texture.ErrFormat, f)
	}
	return texture.Load(bytes.NewReader(data))
}
