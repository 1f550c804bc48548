// Package display presents the modelled screens on the host, either in a
// window or headless.
package display

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/AntonioND/nds-rtt-example/drivers/console"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/video"
)

// Output size of Screens.Render.  Both screens are drawn at twice their
// native resolution so the console font fits its cells, the main screen on
// top.
const (
	Width  = 2 * video.Width
	Height = 2 * 2 * video.Height
)

type Screens struct {
	Main    *texture.RGB5A1
	Console *console.Console
	Face    font.Face // defaults to basicfont.Face7x13
}

// Render draws both screens into dst, which must be Width x Height.
func (s *Screens) Render(dst *image.RGBA) {
	b := dst.Bounds()
	top := image.Rect(b.Min.X, b.Min.Y, b.Min.X+Width, b.Min.Y+Height/2)
	bottom := top.Add(image.Pt(0, Height/2))

	if s.Main != nil {
		scale2x(dst, top.Min, s.Main)
	} else {
		draw.Draw(dst, top, image.Black, image.Point{}, draw.Src)
	}

	face := s.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	if s.Console != nil {
		s.Console.Draw(dst.SubImage(bottom).(*image.RGBA), face)
	} else {
		draw.Draw(dst, bottom, image.Black, image.Point{}, draw.Src)
	}
}

func expand5(v uint8) uint8 { return v<<3 | v>>2 }

func scale2x(dst *image.RGBA, at image.Point, src *texture.RGB5A1) {
	sb := src.Bounds()
	for y := range sb.Dy() {
		for x := range sb.Dx() {
			c := src.ColorAt(sb.Min.X+x, sb.Min.Y+y)
			r, g, b := expand5(c.R()), expand5(c.G()), expand5(c.B())
			for dy := range 2 {
				i := dst.PixOffset(at.X+2*x, at.Y+2*y+dy)
				dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = r, g, b, 0xff
				dst.Pix[i+4], dst.Pix[i+5], dst.Pix[i+6], dst.Pix[i+7] = r, g, b, 0xff
			}
		}
	}
}

// Snapshot returns a new image of both screens.
func (s *Screens) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	s.Render(img)
	return img
}
