// Package gx models the fixed-function 3D geometry engine and the
// scanline renderer behind it.  Commands are issued the same way the libnds
// videoGL helpers issue them: matrix and state commands apply immediately,
// vertices are transformed when they are submitted and the resulting
// polygons are collected in polygon RAM until Flush.  The flushed list is
// swapped in at the next vertical blank and rendered during the following
// display period by Render.
package gx

import (
	"errors"

	"github.com/AntonioND/nds-rtt-example/debug"
	"github.com/AntonioND/nds-rtt-example/hw"
	"github.com/AntonioND/nds-rtt-example/hw/fixed"
	"github.com/AntonioND/nds-rtt-example/hw/texture"
	"github.com/AntonioND/nds-rtt-example/hw/vram"
)

const (
	ScreenWidth  = 256
	ScreenHeight = 192

	MaxPolygons = 2048
	MaxVertices = 6144

	positionStackSize = 31
)

var (
	ErrNoTextureMemory = errors.New("gx: out of texture memory")
	ErrTextureSize     = errors.New("gx: texture size must be a power of two between 8 and 1024")
	ErrNoTexture       = errors.New("gx: no texture bound")
)

type MatrixMode uint8

const (
	Projection MatrixMode = iota
	Position
	PositionVector
	TextureMatrix
)

type Flags uint32

const (
	Texture2D Flags = 1 << 0
	Blend     Flags = 1 << 3
	Antialias Flags = 1 << 4
	Edge      Flags = 1 << 5
)

// PolyAttr is the POLYGON_ATTR word.  It is latched by Begin.
type PolyAttr uint32

const (
	Light0 PolyAttr = 1 << iota
	Light1
	Light2
	Light3
)

const (
	renderBack  PolyAttr = 1 << 6
	renderFront PolyAttr = 1 << 7

	CullNone  = renderBack | renderFront
	CullBack  = renderFront
	CullFront = renderBack
)

func PolyAlpha(a uint8) PolyAttr { return PolyAttr(a&31) << 16 }
func PolyID(id uint8) PolyAttr   { return PolyAttr(id&63) << 24 }

func (p PolyAttr) Alpha() uint8 { return uint8(p >> 16 & 31) }
func (p PolyAttr) ID() uint8    { return uint8(p >> 24 & 63) }

type Primitive uint8

const (
	Triangles Primitive = iota
	Quads
)

func (p Primitive) vertices() int {
	if p == Quads {
		return 4
	}
	return 3
}

// Material holds the 5-bit per channel lighting coefficients.
type Material struct {
	Ambient  texture.Color
	Diffuse  texture.Color
	Specular texture.Color
	Emission texture.Color
}

type light struct {
	dir   vec3 // in eye space
	color texture.Color
}

type rearPlane struct {
	color  texture.Color
	alpha  uint8
	polyID uint8
	depth  uint16
}

type vertex struct {
	clip  [4]float32
	s, t  float32
	color [3]float32
}

type polygon struct {
	v        [4]vertex
	n        int
	attr     PolyAttr
	textured bool
	tex      texture.Param
	palette  uint32
	viewport [4]uint8
}

type texObject struct {
	param     texture.Param
	palette   uint32
	allocated bool
}

// NoTexture is never returned by GenTexture.  Binding it clears the active
// texture cache so that the next BindTexture always reaches the hardware.
const NoTexture = -1

// Engine is the geometry engine together with its rendering engine.
type Engine struct {
	mem *vram.Memory

	mode                        MatrixMode
	proj, pos, vec, tex         Matrix
	projStack                   []Matrix
	posStack, vecStack          []Matrix
	viewport                    [4]uint8
	enable                      Flags
	rear, flushedRear, drawRear rearPlane

	polyAttr, curAttr PolyAttr
	material          Material
	lights            [4]light
	color             [3]float32
	s, t              fixed.Int12_4
	texParam          texture.Param
	palette           uint32
	texParamWrites    int

	prim     Primitive
	building polygon
	inBegin  bool

	list, flushed, latched []polygon
	vertices               int
	overflow               bool
	hasFlushed             bool

	textures   map[int]*texObject
	nextName   int
	bound      int
	texAlloc   uint32
	paletteTop uint32

	depth []float32
}

// New returns an engine in the state libnds glInit leaves it in.
func New(mem *vram.Memory) *Engine {
	e := &Engine{
		mem:      mem,
		textures: make(map[int]*texObject),
		depth:    make([]float32, ScreenWidth*ScreenHeight),
	}
	e.Reset()
	return e
}

// Reset restores matrices, render state and texture bookkeeping.  Texture
// memory is not cleared.
func (e *Engine) Reset() {
	e.mode = Projection
	e.proj, e.pos, e.vec, e.tex = Identity(), Identity(), Identity(), Identity()
	e.projStack = e.projStack[:0]
	e.posStack, e.vecStack = e.posStack[:0], e.vecStack[:0]
	e.viewport = [4]uint8{0, 0, 255, 191}
	e.enable = 0
	e.rear = rearPlane{depth: 0x7fff}
	e.drawRear = e.rear
	e.polyAttr = CullBack | PolyAlpha(31)
	e.curAttr = e.polyAttr
	e.material = Material{}
	e.lights = [4]light{}
	e.color = [3]float32{31, 31, 31}
	e.texParam, e.palette = texture.Param{}, 0
	e.inBegin = false
	e.list, e.flushed, e.latched = nil, nil, nil
	e.vertices, e.overflow, e.hasFlushed = 0, false, false
	clear(e.textures)
	e.nextName, e.bound = 0, 0
	e.texAlloc, e.paletteTop = 0, 0
}

func (e *Engine) Enable(f Flags)  { e.enable |= f }
func (e *Engine) Disable(f Flags) { e.enable &^= f }

func (e *Engine) Enabled() Flags { return e.enable }

// Viewport sets the area polygons are mapped to.  Coordinates are
// inclusive with y measured from the bottom of the screen.
func (e *Engine) Viewport(x1, y1, x2, y2 uint8) {
	e.viewport = [4]uint8{x1, y1, x2, y2}
}

// ClearColor sets the rear plane colour.  All components are 5-bit.
func (e *Engine) ClearColor(r, g, b, a uint8) {
	e.rear.color = texture.RGB15(r, g, b)
	e.rear.alpha = a & 31
}

func (e *Engine) ClearPolyID(id uint8)  { e.rear.polyID = id & 63 }
func (e *Engine) ClearDepth(d uint16)   { e.rear.depth = d & 0x7fff }
func (e *Engine) PolyFmt(attr PolyAttr) { e.polyAttr = attr }

func (e *Engine) SetMaterial(m Material) { e.material = m }

// Light sets the colour and direction of light n.  The direction is
// transformed by the current directional matrix.
func (e *Engine) Light(n int, color texture.Color, dir fixed.Vec3[fixed.Int7_9]) {
	d := vec3{dir.X.Float(), dir.Y.Float(), dir.Z.Float()}
	e.lights[n&3] = light{dir: e.vec.rotate(d), color: color}
}

func (m Matrix) rotate(v vec3) (r vec3) {
	for i := range 3 {
		for k := range 3 {
			r[i] += m[i][k].Float() * v[k]
		}
	}
	return
}

// Color sets the vertex colour used when lighting is disabled.
func (e *Engine) Color(c texture.Color) {
	e.color = [3]float32{float32(c.R()), float32(c.G()), float32(c.B())}
}

// Begin starts a new primitive and latches the polygon attributes.
func (e *Engine) Begin(p Primitive) {
	e.prim = p
	e.curAttr = e.polyAttr
	e.building.n = 0
	e.inBegin = true
}

func (e *Engine) End() { e.inBegin = false }

// Normal computes the vertex colour from the enabled lights and the
// material.
func (e *Engine) Normal(n fixed.Vec3[fixed.Int7_9]) {
	nv := e.vec.rotate(vec3{n.X.Float(), n.Y.Float(), n.Z.Float()})
	m := &e.material
	col := [3]float32{
		float32(m.Emission.R()), float32(m.Emission.G()), float32(m.Emission.B()),
	}
	for i, l := range e.lights {
		if e.curAttr&(Light0<<i) == 0 {
			continue
		}
		level := -l.dir.dot(nv)
		if level < 0 {
			level = 0
		}
		lc := [3]float32{float32(l.color.R()), float32(l.color.G()), float32(l.color.B())}
		dc := [3]float32{float32(m.Diffuse.R()), float32(m.Diffuse.G()), float32(m.Diffuse.B())}
		ac := [3]float32{float32(m.Ambient.R()), float32(m.Ambient.G()), float32(m.Ambient.B())}
		for c := range 3 {
			col[c] += (dc[c]*level + ac[c]) * lc[c] / 31
		}
	}
	for c := range col {
		col[c] = min(col[c], 31)
	}
	e.color = col
}

// TexCoord sets the texel coordinates of the following vertices.
func (e *Engine) TexCoord(s, t fixed.Int12_4) { e.s, e.t = s, t }

// Vertex16 transforms a vertex and adds it to the current primitive.
func (e *Engine) Vertex16(x, y, z fixed.Int4_12) {
	if !e.inBegin {
		hw.Logger().Debug("gx: vertex outside Begin/End")
		return
	}
	// v16 and f32 share the fractional part.
	v := Vec4{fixed.Int20_12(x), fixed.Int20_12(y), fixed.Int20_12(z), one}
	c := e.proj.Transform(e.pos.Transform(v))

	s, t := e.s.Float(), e.t.Float()
	if e.texParam.TexGen == 1 {
		m := &e.tex
		s, t = m[0][0].Float()*s+m[0][1].Float()*t+m[0][3].Float(),
			m[1][0].Float()*s+m[1][1].Float()*t+m[1][3].Float()
	}

	p := &e.building
	p.v[p.n] = vertex{
		clip:  [4]float32{c[0].Float(), c[1].Float(), c[2].Float(), c[3].Float()},
		s:     s,
		t:     t,
		color: e.color,
	}
	p.n++
	if p.n == e.prim.vertices() {
		e.emit()
		p.n = 0
	}
}

func (e *Engine) emit() {
	p := e.building
	debug.Assert(p.n == e.prim.vertices(), "gx: incomplete polygon")
	if len(e.list) >= MaxPolygons || e.vertices+p.n > MaxVertices {
		if !e.overflow {
			hw.Logger().Debug("gx: polygon list overflow", "polygons", len(e.list))
			e.overflow = true
		}
		return
	}
	p.attr = e.curAttr
	p.textured = e.enable&Texture2D != 0 && e.texParam.Format != texture.None
	p.tex = e.texParam
	p.palette = e.palette
	p.viewport = e.viewport
	e.list = append(e.list, p)
	e.vertices += p.n
}

// Flush ends the current frame.  The collected polygons and the rear plane
// are rendered after the next vertical blank.
func (e *Engine) Flush() {
	e.flushed = e.list
	e.flushedRear = e.rear
	e.hasFlushed = true
	e.list = make([]polygon, 0, len(e.flushed))
	e.vertices = 0
	e.overflow = false
}

// SwapBuffers is called at the start of vertical blank.  It makes the last
// flushed list the one Render draws.  Without a new Flush the previous list
// is rendered again.
func (e *Engine) SwapBuffers() {
	if !e.hasFlushed {
		return
	}
	e.latched, e.flushed = e.flushed, nil
	e.drawRear = e.flushedRear
	e.hasFlushed = false
}

// Polygons returns the number of polygons in the list being built.
func (e *Engine) Polygons() int { return len(e.list) }

// LatchedPolygons returns the number of polygons Render will draw.
func (e *Engine) LatchedPolygons() int { return len(e.latched) }
