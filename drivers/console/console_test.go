package console_test

import (
	"fmt"
	"image"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/AntonioND/nds-rtt-example/drivers/console"
	"github.com/AntonioND/nds-rtt-example/hw/video"
)

func TestWrite(t *testing.T) {
	c := console.New(video.NewSub())
	fmt.Fprintf(c, "hello\nworld\r!")
	if got := c.Line(0); got != "hello" {
		t.Errorf("line 0: got %q", got)
	}
	if got := c.Line(1); got != "!orld" {
		t.Errorf("line 1: got %q", got)
	}

	fmt.Fprint(c, "\x1b[23;0HThanks")
	if got := c.Line(23); got != "Thanks" {
		t.Errorf("line 23: got %q", got)
	}
	if row, col := c.Cursor(); row != 23 || col != 6 {
		t.Errorf("cursor: got %d,%d", row, col)
	}

	fmt.Fprint(c, "\x1b[2J")
	for r := range console.Rows {
		if l := c.Line(r); l != "" {
			t.Fatalf("line %d not cleared: %q", r, l)
		}
	}
}

func TestCodePage(t *testing.T) {
	sub := video.NewSub()
	c := console.New(sub)
	fmt.Fprint(c, "Café ½ €")
	if got := sub.Map[0][3]; got != 0x82 {
		t.Errorf("é stored as %#x, want 0x82", got)
	}
	if got := sub.Map[0][5]; got != 0xab {
		t.Errorf("½ stored as %#x, want 0xab", got)
	}
	if got := sub.Map[0][7]; got != 0x1a {
		t.Errorf("€ stored as %#x, want 0x1a", got)
	}
	if got := c.Line(0); got != "Café ½ \x1a" {
		t.Errorf("line 0: got %q", got)
	}
}

func TestWrapScroll(t *testing.T) {
	c := console.New(video.NewSub())
	long := strings.Repeat("x", console.Cols) + "y"
	fmt.Fprint(c, long)
	if got := c.Line(1); got != "y" {
		t.Errorf("wrapped: got %q", got)
	}

	fmt.Fprint(c, "\x1b[2J")
	for i := range console.Rows + 1 {
		fmt.Fprintf(c, "%d\n", i)
	}
	if got := c.Line(0); got != "2" {
		t.Errorf("top after scroll: got %q, want \"2\"", got)
	}
	if got := c.Line(console.Rows - 2); got != "24" {
		t.Errorf("last line: got %q", got)
	}
}

func TestDraw(t *testing.T) {
	c := console.New(video.NewSub())
	fmt.Fprint(c, "\x1b[1;1HW")

	dst := image.NewRGBA(image.Rect(0, 0, 2*video.Width, 2*video.Height))
	c.Draw(dst, basicfont.Face7x13)

	cell := image.Rect(16, 16, 32, 32)
	lit := 0
	for y := 0; y < dst.Bounds().Dy(); y++ {
		for x := 0; x < dst.Bounds().Dx(); x++ {
			if dst.RGBAAt(x, y).R == 0 {
				continue
			}
			if !image.Pt(x, y).In(cell) {
				t.Fatalf("pixel (%d,%d) lit outside the cell", x, y)
			}
			lit++
		}
	}
	if lit == 0 {
		t.Error("glyph not drawn")
	}
}
