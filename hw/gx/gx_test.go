package gx_test

import (
	"errors"
	"image"
	"testing"

	"github.com/AntonioND/nds-rtt-example/hw/fixed"
	"github.com/AntonioND/nds-rtt-example/hw/gx"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
)

func near(a, b fixed.Int20_12) bool {
	d := a - b
	return d >= -8 && d <= 8
}

func TestMatrix(t *testing.T) {
	m := gx.Translation(fixed.Int20_12U(1), fixed.Int20_12U(2), fixed.Int20_12U(3)).Mul(gx.Identity())
	v := m.Transform(gx.Vec4{0, 0, 0, fixed.Int20_12U(1)})
	want := gx.Vec4{fixed.Int20_12U(1), fixed.Int20_12U(2), fixed.Int20_12U(3), fixed.Int20_12U(1)}
	if v != want {
		t.Errorf("translate: got %v, want %v", v, want)
	}

	// y axis rotated 90 degrees around x ends up on z
	v = gx.RotationX(90).Transform(gx.Vec4{0, fixed.Int20_12U(1), 0, fixed.Int20_12U(1)})
	if !near(v[0], 0) || !near(v[1], 0) || !near(v[2], fixed.Int20_12U(1)) {
		t.Errorf("rotateX: got %v", v)
	}
	v = gx.RotationY(90).Transform(gx.Vec4{0, 0, fixed.Int20_12U(1), fixed.Int20_12U(1)})
	if !near(v[0], fixed.Int20_12U(1)) || !near(v[2], 0) {
		t.Errorf("rotateY: got %v", v)
	}
}

func TestLookAtPerspective(t *testing.T) {
	view := gx.LookAt([3]float32{0, 0, 1}, [3]float32{0, 0, 0}, [3]float32{0, 1, 0})
	v := view.Transform(gx.Vec4{0, 0, 0, fixed.Int20_12U(1)})
	if !near(v[0], 0) || !near(v[1], 0) || !near(v[2], fixed.Int20_12U(-1)) {
		t.Fatalf("origin in eye space: got %v, want (0, 0, -1)", v)
	}
	clip := gx.Perspective(70, 256.0/192, 0.1, 40).Transform(v)
	if !near(clip[0], 0) || !near(clip[1], 0) || !near(clip[3], fixed.Int20_12U(1)) {
		t.Errorf("origin in clip space: got %v", clip)
	}
}

func newEngine(t *testing.T) (*gx.Engine, *vram.Memory) {
	t.Helper()
	mem := vram.New()
	if err := mem.SetBankMode(vram.A, vram.ModeTexture(0)); err != nil {
		t.Fatal(err)
	}
	return gx.New(mem), mem
}

func solidTexture(size int, c texture.Color) *texture.RGB5A1 {
	tex := texture.NewRGB5A1(image.Rect(0, 0, size, size))
	tex.Fill(c)
	return tex
}

func TestBindTextureCache(t *testing.T) {
	e, _ := newEngine(t)
	id := e.GenTexture()
	e.BindTexture(id)
	if err := e.TexImage2D(solidTexture(8, texture.RGB15(31, 0, 0)|texture.AlphaBit)); err != nil {
		t.Fatal(err)
	}
	uploaded := e.CurrentTexParam()
	if uploaded.Format != texture.Direct || uploaded.Width() != 8 {
		t.Fatalf("param after upload: %+v", uploaded)
	}

	writes := e.TexParamWrites()
	e.BindTexture(id)
	if e.TexParamWrites() != writes {
		t.Errorf("binding the active texture issued a command")
	}

	raw := texture.Param{Addr: vram.SlotSize, SizeS: 5, SizeT: 5, Format: texture.Direct}
	e.TexParam(raw)
	e.BindTexture(id)
	if got := e.CurrentTexParam(); got != raw {
		t.Errorf("stale cache: got %+v, want the raw param %+v", got, raw)
	}

	e.BindTexture(gx.NoTexture)
	if e.ActiveTexture() != gx.NoTexture {
		t.Errorf("active texture: got %d", e.ActiveTexture())
	}
	e.BindTexture(id)
	if got := e.CurrentTexParam(); got != uploaded {
		t.Errorf("after invalidating: got %+v, want %+v", got, uploaded)
	}
}

func TestTexImage2DErrors(t *testing.T) {
	e := gx.New(vram.New())
	if err := e.TexImage2D(solidTexture(8, 0)); !errors.Is(err, gx.ErrNoTexture) {
		t.Errorf("unbound: got %v", err)
	}
	e.BindTexture(e.GenTexture())
	if err := e.TexImage2D(solidTexture(8, 0)); !errors.Is(err, gx.ErrNoTextureMemory) {
		t.Errorf("unmapped: got %v", err)
	}
	odd := texture.NewRGB5A1(image.Rect(0, 0, 12, 8))
	if err := e.TexImage2D(odd); !errors.Is(err, gx.ErrTextureSize) {
		t.Errorf("odd size: got %v", err)
	}
}

func TestTexImage2DAllocation(t *testing.T) {
	e, mem := newEngine(t)
	if err := mem.SetBankMode(vram.C, vram.ModeTexture(2)); err != nil {
		t.Fatal(err)
	}
	e.BindTexture(e.GenTexture())
	// 256x256x2 fills slot 0 exactly.
	if err := e.TexImage2D(solidTexture(256, texture.AlphaBit)); err != nil {
		t.Fatal(err)
	}
	if a := e.CurrentTexParam().Addr; a != 0 {
		t.Errorf("first texture at %#x", a)
	}
	e.BindTexture(e.GenTexture())
	if err := e.TexImage2D(solidTexture(8, texture.AlphaBit)); err != nil {
		t.Fatal(err)
	}
	if a := e.CurrentTexParam().Addr; a != 2*vram.SlotSize {
		t.Errorf("second texture at %#x, want slot 2", a)
	}
}

func quad(e *gx.Engine, ccw bool) {
	v := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	uv := [4][2]int{{0, 8}, {8, 8}, {8, 0}, {0, 0}}
	order := []int{0, 1, 2, 3}
	if !ccw {
		order = []int{3, 2, 1, 0}
	}
	e.BeginQuads()
	for _, i := range order {
		e.TexCoord(fixed.Int12_4U(uv[i][0]), fixed.Int12_4U(uv[i][1]))
		e.EmitVertex(fixed.Vec3[fixed.Int4_12]{X: fixed.Int4_12F(v[i][0]), Y: fixed.Int4_12F(v[i][1])})
	}
	e.End()
}

func render(e *gx.Engine) *texture.RGB5A1 {
	out := texture.NewRGB5A1(image.Rect(0, 0, gx.ScreenWidth, gx.ScreenHeight))
	e.Render(out)
	return out
}

func TestRenderLatency(t *testing.T) {
	e, _ := newEngine(t)
	e.ClearColor(0, 0, 31, 31)
	e.Color(texture.RGB15(31, 0, 0))
	quad(e, true)
	e.Flush()

	if got := render(e).ColorAt(128, 96); got != 0 {
		t.Errorf("before swap: got %#04x, want empty", got)
	}
	e.SwapBuffers()
	out := render(e)
	if got, want := out.ColorAt(128, 96), texture.RGB15(31, 0, 0)|texture.AlphaBit; got != want {
		t.Errorf("quad: got %#04x, want %#04x", got, want)
	}

	// Without a new flush the same list is drawn again.
	e.ClearColor(0, 31, 0, 31)
	e.SwapBuffers()
	if got := render(e).ColorAt(128, 96); got != texture.RGB15(31, 0, 0)|texture.AlphaBit {
		t.Errorf("redraw: got %#04x", got)
	}

	e.Flush()
	e.SwapBuffers()
	if got := render(e).ColorAt(128, 96); got != texture.RGB15(0, 31, 0)|texture.AlphaBit {
		t.Errorf("empty list: got %#04x, want green rear plane", got)
	}
}

func TestRenderCulling(t *testing.T) {
	e, _ := newEngine(t)
	e.PolyFmt(gx.PolyAlpha(31) | gx.CullBack)
	quad(e, false)
	e.Flush()
	e.SwapBuffers()
	if got := render(e).ColorAt(128, 96); got != 0 {
		t.Errorf("back face drawn: %#04x", got)
	}

	e.PolyFmt(gx.PolyAlpha(31) | gx.CullFront)
	quad(e, false)
	e.Flush()
	e.SwapBuffers()
	if got := render(e).ColorAt(128, 96); !got.Opaque() {
		t.Errorf("back face culled with CullFront")
	}
}

func TestRenderViewport(t *testing.T) {
	e, _ := newEngine(t)
	e.Viewport(0, 64, 127, 191)
	quad(e, true)
	e.Flush()
	e.SwapBuffers()
	out := render(e)
	for _, tc := range []struct {
		x, y   int
		opaque bool
	}{
		{0, 0, true},
		{127, 127, true},
		{128, 0, false},
		{0, 128, false},
		{200, 150, false},
	} {
		if got := out.ColorAt(tc.x, tc.y).Opaque(); got != tc.opaque {
			t.Errorf("(%d,%d): drawn=%v, want %v", tc.x, tc.y, got, tc.opaque)
		}
	}
}

func TestRenderTextured(t *testing.T) {
	e, _ := newEngine(t)
	e.Enable(gx.Texture2D)
	e.BindTexture(e.GenTexture())
	if err := e.TexImage2D(solidTexture(8, texture.RGB15(0, 31, 0)|texture.AlphaBit)); err != nil {
		t.Fatal(err)
	}
	quad(e, true)
	e.Flush()
	e.SwapBuffers()
	if got, want := render(e).ColorAt(128, 96), texture.RGB15(0, 31, 0)|texture.AlphaBit; got != want {
		t.Errorf("got %#04x, want %#04x", got, want)
	}

	// Transparent texels are not drawn.
	e.BindTexture(e.GenTexture())
	if err := e.TexImage2D(solidTexture(8, texture.RGB15(0, 31, 0))); err != nil {
		t.Fatal(err)
	}
	quad(e, true)
	e.Flush()
	e.SwapBuffers()
	if got := render(e).ColorAt(128, 96); got.Opaque() {
		t.Errorf("transparent texel drawn: %#04x", got)
	}
}

func TestLighting(t *testing.T) {
	e, _ := newEngine(t)
	e.SetMaterial(gx.Material{Diffuse: texture.RGB15(31, 31, 31)})
	e.Light(0, texture.RGB15(31, 31, 31), fixed.Vec3[fixed.Int7_9]{Z: fixed.Int7_9F(-0.99)})
	e.PolyFmt(gx.PolyAlpha(31) | gx.CullBack | gx.Light0)

	e.BeginQuads()
	e.Normal(fixed.Vec3[fixed.Int7_9]{Z: fixed.Int7_9F(0.99)})
	for _, v := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		e.EmitVertex(fixed.Vec3[fixed.Int4_12]{X: fixed.Int4_12F(v[0]), Y: fixed.Int4_12F(v[1])})
	}
	e.End()
	e.Flush()
	e.SwapBuffers()
	if c := render(e).ColorAt(128, 96); c.R() < 29 || c.G() < 29 || c.B() < 29 {
		t.Errorf("lit face: got %#04x, want near white", c)
	}

	// A light from behind leaves the face black.
	e.Light(0, texture.RGB15(31, 31, 31), fixed.Vec3[fixed.Int7_9]{Z: fixed.Int7_9F(0.99)})
	e.BeginQuads()
	e.Normal(fixed.Vec3[fixed.Int7_9]{Z: fixed.Int7_9F(0.99)})
	for _, v := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		e.EmitVertex(fixed.Vec3[fixed.Int4_12]{X: fixed.Int4_12F(v[0]), Y: fixed.Int4_12F(v[1])})
	}
	e.End()
	e.Flush()
	e.SwapBuffers()
	if c := render(e).ColorAt(128, 96); c != texture.AlphaBit {
		t.Errorf("unlit face: got %#04x, want opaque black", c)
	}
}

func TestMatrixStack(t *testing.T) {
	e, _ := newEngine(t)
	e.MatrixMode(gx.PositionVector)
	e.LoadIdentity()
	e.PushMatrix()
	e.Translate(fixed.Int20_12U(1), 0, 0)
	if e.Matrix() == gx.Identity() {
		t.Fatal("translate had no effect")
	}
	e.PopMatrix(1)
	if e.Matrix() != gx.Identity() {
		t.Errorf("pop: got %v", e.Matrix())
	}
}

func TestRenderBlend(t *testing.T) {
	e, _ := newEngine(t)
	e.Color(texture.RGB15(31, 0, 0))
	quad(e, true)

	e.PolyFmt(gx.PolyAlpha(15) | gx.CullBack)
	e.Color(texture.RGB15(0, 0, 31))
	e.BeginQuads()
	for _, v := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		e.EmitVertex(fixed.Vec3[fixed.Int4_12]{X: fixed.Int4_12F(v[0]), Y: fixed.Int4_12F(v[1]), Z: fixed.Int4_12F(-0.1)})
	}
	e.End()
	e.Flush()
	e.SwapBuffers()

	if got, want := render(e).ColorAt(128, 96), texture.RGB15(0, 0, 31); got != want {
		t.Errorf("blending disabled: got %#04x, want %#04x", got, want)
	}
	e.Enable(gx.Blend)
	if got, want := render(e).ColorAt(128, 96), texture.RGB15(15, 0, 15); got != want {
		t.Errorf("blending enabled: got %#04x, want %#04x", got, want)
	}
}
