package gx

import (
	"math"

	"github.com/AntonioND/nds-rtt-example/hw/texture"
)

// screen space vertex, attributes premultiplied by 1/w
type svertex struct {
	x, y    float32 // y grows downwards
	z       float32 // [0, 1]
	invW    float32
	s, t    float32
	r, g, b float32
}

// Render draws the latched polygon list into out, which must be
// ScreenWidth x ScreenHeight.  Textures are read through the bank mapping
// in effect at the time of the call.
func (e *Engine) Render(out *texture.RGB5A1) {
	rear := e.drawRear
	bg := rear.color
	if rear.alpha != 0 {
		bg |= texture.AlphaBit
	}
	out.Fill(bg)
	d := float32(rear.depth+1) / 0x8000
	for i := range e.depth {
		e.depth[i] = d
	}
	for i := range e.latched {
		e.drawPolygon(out, &e.latched[i])
	}
}

// clipNear clips against the near plane z >= -w.
func clipNear(in []vertex, out []vertex) []vertex {
	out = out[:0]
	dist := func(v *vertex) float32 { return v.clip[2] + v.clip[3] }
	for i := range in {
		a, b := &in[i], &in[(i+1)%len(in)]
		da, db := dist(a), dist(b)
		if da >= 0 {
			out = append(out, *a)
		}
		if (da >= 0) != (db >= 0) {
			f := da / (da - db)
			out = append(out, lerpVertex(a, b, f))
		}
	}
	return out
}

func lerpVertex(a, b *vertex, f float32) (v vertex) {
	for i := range 4 {
		v.clip[i] = a.clip[i] + (b.clip[i]-a.clip[i])*f
	}
	v.s = a.s + (b.s-a.s)*f
	v.t = a.t + (b.t-a.t)*f
	for i := range 3 {
		v.color[i] = a.color[i] + (b.color[i]-a.color[i])*f
	}
	return
}

func (e *Engine) drawPolygon(out *texture.RGB5A1, p *polygon) {
	if p.attr.Alpha() == 0 {
		return // wireframe
	}
	var buf [8]vertex
	clipped := clipNear(p.v[:p.n], buf[:0])
	if len(clipped) < 3 {
		return
	}

	vp := p.viewport
	vx, vy := float32(vp[0]), float32(vp[1])
	vw, vh := float32(int(vp[2])-int(vp[0])+1), float32(int(vp[3])-int(vp[1])+1)

	var sv [8]svertex
	var area float32
	for i := range clipped {
		c := &clipped[i]
		if c.clip[3] <= 0 {
			return
		}
		invW := 1 / c.clip[3]
		x := vx + (c.clip[0]*invW+1)*0.5*vw
		yUp := vy + (c.clip[1]*invW+1)*0.5*vh
		sv[i] = svertex{
			x:    x,
			y:    ScreenHeight - yUp,
			z:    (c.clip[2]*invW + 1) * 0.5,
			invW: invW,
			s:    c.s * invW,
			t:    c.t * invW,
			r:    c.color[0] * invW,
			g:    c.color[1] * invW,
			b:    c.color[2] * invW,
		}
	}
	n := len(clipped)
	for i := range n {
		a, b := &sv[i], &sv[(i+1)%n]
		// Counter clockwise with y up is front facing.
		area += a.x*(-b.y) - b.x*(-a.y)
	}
	switch {
	case area == 0:
		return
	case area > 0 && p.attr&renderFront == 0:
		return
	case area < 0 && p.attr&renderBack == 0:
		return
	}

	clip := scissor{
		x0: max(int(vp[0]), 0),
		x1: min(int(vp[2])+1, ScreenWidth),
		y0: max(ScreenHeight-(int(vp[3])+1), 0),
		y1: min(ScreenHeight-int(vp[1]), ScreenHeight),
	}
	for i := 1; i+1 < n; i++ {
		e.drawTriangle(out, p, clip, &sv[0], &sv[i], &sv[i+1])
	}
}

type scissor struct{ x0, y0, x1, y1 int }

func edge(a, b *svertex, x, y float32) float32 {
	return (b.x-a.x)*(y-a.y) - (b.y-a.y)*(x-a.x)
}

func (e *Engine) drawTriangle(out *texture.RGB5A1, p *polygon, sc scissor, a, b, c *svertex) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	x0 := max(int(math.Floor(float64(min(a.x, b.x, c.x)))), sc.x0)
	x1 := min(int(math.Ceil(float64(max(a.x, b.x, c.x)))), sc.x1)
	y0 := max(int(math.Floor(float64(min(a.y, b.y, c.y)))), sc.y0)
	y1 := min(int(math.Ceil(float64(max(a.y, b.y, c.y)))), sc.y1)

	alpha := p.attr.Alpha()
	for y := y0; y < y1; y++ {
		py := float32(y) + 0.5
		for x := x0; x < x1; x++ {
			px := float32(x) + 0.5
			w0 := edge(b, c, px, py) / area
			w1 := edge(c, a, px, py) / area
			w2 := edge(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*a.z + w1*b.z + w2*c.z
			i := y*ScreenWidth + x
			if z >= e.depth[i] || z < 0 {
				continue
			}
			invW := w0*a.invW + w1*b.invW + w2*c.invW
			wv := 1 / invW
			r := (w0*a.r + w1*b.r + w2*c.r) * wv
			g := (w0*a.g + w1*b.g + w2*c.g) * wv
			bl := (w0*a.b + w1*b.b + w2*c.b) * wv
			col := texture.RGB15(clamp5(r), clamp5(g), clamp5(bl))

			if p.textured {
				s := (w0*a.s + w1*b.s + w2*c.s) * wv
				t := (w0*a.t + w1*b.t + w2*c.t) * wv
				texel, ok := e.sample(p, s, t)
				if !ok {
					continue
				}
				col = modulate(texel, col)
			}
			if alpha < 31 && e.enable&Blend != 0 {
				col = blend(col, out.ColorAt(x, y), alpha)
			}
			out.SetColor(x, y, col|texture.AlphaBit)
			e.depth[i] = z
		}
	}
}

func clamp5(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 31:
		return 31
	}
	return uint8(v + 0.5)
}

// modulate multiplies texel and vertex colour the way the hardware does
// on 5-bit components.
func modulate(tex, vtx texture.Color) texture.Color {
	m := func(a, b uint8) uint8 {
		return uint8(((int(a)+1)*(int(b)+1) - 1) >> 5)
	}
	return texture.RGB15(m(tex.R(), vtx.R()), m(tex.G(), vtx.G()), m(tex.B(), vtx.B()))
}

func blend(src, dst texture.Color, alpha uint8) texture.Color {
	if !dst.Opaque() {
		return src
	}
	a := int(alpha) + 1
	mix := func(s, d uint8) uint8 {
		return uint8((int(s)*a + int(d)*(32-a)) >> 5)
	}
	return texture.RGB15(mix(src.R(), dst.R()), mix(src.G(), dst.G()), mix(src.B(), dst.B()))
}

func wrap(c, size int, repeat, flip bool) int {
	if !repeat {
		return min(max(c, 0), size-1)
	}
	if flip {
		c &= 2*size - 1
		if c >= size {
			c = 2*size - 1 - c
		}
		return c
	}
	return c & (size - 1)
}

// sample returns the texel at texel coordinates s, t and whether it is
// opaque.
func (e *Engine) sample(p *polygon, s, t float32) (texture.Color, bool) {
	w, h := p.tex.Width(), p.tex.Height()
	si := wrap(int(math.Floor(float64(s))), w, p.tex.RepeatS, p.tex.FlipS)
	ti := wrap(int(math.Floor(float64(t))), h, p.tex.RepeatT, p.tex.FlipT)
	idx := uint32(ti*w + si)

	switch p.tex.Format {
	case texture.Direct:
		c := texture.Color(e.mem.ReadTexture16(p.tex.Addr + idx*2))
		return c, c.Opaque()
	case texture.Pal256:
		ci := e.mem.ReadTexture8(p.tex.Addr + idx)
		if ci == 0 && p.tex.Color0 {
			return 0, false
		}
		return texture.Color(e.mem.ReadPalette16(p.palette+uint32(ci)*2)) | texture.AlphaBit, true
	}
	return 0, false
}
