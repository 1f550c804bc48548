package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// Convert copies img into a new texture of the given format. Paletted formats
// get a median cut palette computed from img. If dither is set, the color
// error is diffused with Floyd-Steinberg.
func Convert(img image.Image, format Format, dither bool) (Texture, error) {
	bounds := img.Bounds()
	if _, ok := SizeCode(bounds.Dx()); !ok {
		return nil, fmt.Errorf("%w: width %d", ErrSize, bounds.Dx())
	}
	if _, ok := SizeCode(bounds.Dy()); !ok {
		return nil, fmt.Errorf("%w: height %d", ErrSize, bounds.Dy())
	}

	var dst interface {
		Texture
		draw.Image
	}
	switch format {
	case Direct:
		dst = NewRGB5A1(bounds)
	case Pal256:
		dst = NewCI8(bounds, Quantize(img, format.PaletteSize()))
	default:
		return nil, fmt.Errorf("%w: %v", ErrFormat, format)
	}

	var d draw.Drawer = draw.Src
	if dither {
		d = draw.FloydSteinberg
	}
	d.Draw(dst, bounds, img, bounds.Min)

	return dst, nil
}

// Quantize returns a palette of at most n hardware colors for img.
func Quantize(img image.Image, n int) []Color {
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, n), img)

	palette := make([]Color, 0, n)
	seen := make(map[Color]bool, n)
	for _, c := range p {
		hc := toColor(c)
		if !seen[hc] {
			seen[hc] = true
			palette = append(palette, hc)
		}
	}
	return palette
}
