// Package console implements a text console on the sub screen.  It
// understands the few ANSI escape sequences the libnds console does.
//
// The text map holds code page 437 character codes, like the default
// console font.  Text written to a Console is UTF-8 and converted.
package console

import (
	"image"
	"image/draw"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/AntonioND/nds-rtt-example/hw/video"
)

const (
	Cols = video.TextCols
	Rows = video.TextRows

	tabSize = 4
)

const (
	stateText = iota
	stateEscape
	stateCSI
)

type Console struct {
	sub      *video.Sub
	row, col int

	state int
	args  []byte
	enc   *encoding.Encoder
}

// New returns a console writing into the text map of sub, with the map
// cleared.
func New(sub *video.Sub) *Console {
	sub.Clear()
	return &Console{
		sub: sub,
		enc: encoding.ReplaceUnsupported(charmap.CodePage437.NewEncoder()),
	}
}

// Write prints p.  Runes missing from code page 437 are shown as SUB
// (0x1a).  A rune must not be split across writes.
func (v *Console) Write(p []byte) (n int, err error) {
	codes, err := v.enc.Bytes(p)
	if err != nil {
		return 0, err
	}
	for _, b := range codes {
		switch v.state {
		case stateText:
			v.text(b)
		case stateEscape:
			v.state = stateText
			if b == '[' {
				v.state = stateCSI
				v.args = v.args[:0]
			}
		case stateCSI:
			if b >= 0x40 && b <= 0x7e {
				v.csi(b)
				v.state = stateText
			} else {
				v.args = append(v.args, b)
			}
		}
	}
	return len(p), nil
}

func (v *Console) text(b byte) {
	switch b {
	case 0x1b:
		v.state = stateEscape
	case '\n':
		v.newline()
	case '\r':
		v.col = 0
	case '\t':
		v.col = min((v.col/tabSize+1)*tabSize, Cols)
	case '\b':
		v.col = max(v.col-1, 0)
	default:
		if v.col >= Cols {
			v.newline()
		}
		v.sub.Map[v.row][v.col] = b
		v.col++
	}
}

func (v *Console) newline() {
	v.col = 0
	v.row++
	if v.row < Rows {
		return
	}
	v.row = Rows - 1
	copy(v.sub.Map[:], v.sub.Map[1:])
	for i := range v.sub.Map[Rows-1] {
		v.sub.Map[Rows-1][i] = ' '
	}
}

// param returns the i-th numeric parameter of the current sequence.
func (v *Console) param(i, def int) int {
	fields := strings.Split(string(v.args), ";")
	if i >= len(fields) {
		return def
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		return def
	}
	return n
}

func (v *Console) csi(final byte) {
	switch final {
	case 'H', 'f':
		v.row = min(max(v.param(0, 0), 0), Rows-1)
		v.col = min(max(v.param(1, 0), 0), Cols-1)
	case 'J':
		if v.param(0, 0) == 2 {
			v.sub.Clear()
			v.row, v.col = 0, 0
		}
	case 'K':
		for i := v.col; i < Cols; i++ {
			v.sub.Map[v.row][i] = ' '
		}
	case 'A':
		v.row = max(v.row-v.param(0, 1), 0)
	case 'B':
		v.row = min(v.row+v.param(0, 1), Rows-1)
	case 'C':
		v.col = min(v.col+v.param(0, 1), Cols-1)
	case 'D':
		v.col = max(v.col-v.param(0, 1), 0)
	}
}

// Cursor returns the position the next character is written to.
func (v *Console) Cursor() (row, col int) { return v.row, v.col }

// Line returns the text of a row without trailing blanks.
func (v *Console) Line(row int) string {
	var sb strings.Builder
	for _, b := range v.sub.Map[row] {
		sb.WriteRune(charmap.CodePage437.DecodeByte(b))
	}
	return strings.TrimRight(sb.String(), " ")
}

// Draw renders the text map into dst, dividing it into Cols x Rows cells.
// Glyphs are drawn with face, centered in their cell.
func (v *Console) Draw(dst draw.Image, face font.Face) {
	bounds := dst.Bounds()
	cw, ch := bounds.Dx()/Cols, bounds.Dy()/Rows
	draw.Draw(dst, bounds, image.Black, image.Point{}, draw.Src)

	m := face.Metrics()
	top := (ch - m.Height.Ceil()) / 2
	d := font.Drawer{Dst: dst, Src: image.White, Face: face}
	for r := range Rows {
		for c := range Cols {
			b := v.sub.Map[r][c]
			if b == ' ' || b == 0 {
				continue
			}
			g := charmap.CodePage437.DecodeByte(b)
			adv, ok := face.GlyphAdvance(g)
			if !ok {
				continue
			}
			x := bounds.Min.X + c*cw + (cw-adv.Ceil())/2
			y := bounds.Min.Y + r*ch + top + m.Ascent.Ceil()
			d.Dot = fixed.P(x, y)
			d.DrawString(string(g))
		}
	}
}
