//go:build cgo

package display

import (
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/AntonioND/nds-rtt-example/hw/keypad"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title   string
	Scale   int // window size relative to Width x Height / 2
	TPS     int
	ShowFPS bool
	Keys    Bindings
}

// RunWindow opens a window showing scr and calls step once per tick with
// the keypad updated from keyboard and gamepads.  It blocks until the window
// is closed or step fails.
func RunWindow(cfg WindowConfig, scr *Screens, keys *keypad.Register, step func() error) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Keys == nil {
		cfg.Keys = DefaultBindings()
	}
	keyMap, err := cfg.Keys.ebitenKeys()
	if err != nil {
		return err
	}

	g := &game{
		scr:     scr,
		keys:    keys,
		keyMap:  keyMap,
		step:    step,
		showFPS: cfg.ShowFPS,
		img:     image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Scale*Width/2, cfg.Scale*Height/2)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type game struct {
	scr     *Screens
	keys    *keypad.Register
	keyMap  map[ebiten.Key]keypad.Key
	step    func() error
	showFPS bool

	img    *image.RGBA
	screen *ebiten.Image
	pads   []ebiten.GamepadID
}

var padMap = map[ebiten.StandardGamepadButton]keypad.Key{
	ebiten.StandardGamepadButtonRightRight:    keypad.A,
	ebiten.StandardGamepadButtonRightBottom:   keypad.B,
	ebiten.StandardGamepadButtonRightTop:      keypad.X,
	ebiten.StandardGamepadButtonRightLeft:     keypad.Y,
	ebiten.StandardGamepadButtonFrontTopLeft:  keypad.L,
	ebiten.StandardGamepadButtonFrontTopRight: keypad.R,
	ebiten.StandardGamepadButtonCenterLeft:    keypad.Select,
	ebiten.StandardGamepadButtonCenterRight:   keypad.Start,
	ebiten.StandardGamepadButtonLeftTop:       keypad.Up,
	ebiten.StandardGamepadButtonLeftBottom:    keypad.Down,
	ebiten.StandardGamepadButtonLeftLeft:      keypad.Left,
	ebiten.StandardGamepadButtonLeftRight:     keypad.Right,
}

func (g *game) poll() keypad.Key {
	var held keypad.Key
	for k, key := range g.keyMap {
		if ebiten.IsKeyPressed(k) {
			held |= key
		}
	}
	g.pads = ebiten.AppendGamepadIDs(g.pads[:0])
	for _, id := range g.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, key := range padMap {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				held |= key
			}
		}
	}
	return held
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showFPS = !g.showFPS
	}
	g.keys.Set(g.poll())
	return g.step()
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(Width, Height)
	}
	g.scr.Render(g.img)
	g.screen.WritePixels(g.img.Pix)
	screen.DrawImage(g.screen, nil)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.1f FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Width, Height
}

func (b Bindings) ebitenKeys() (map[ebiten.Key]keypad.Key, error) {
	names := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		names[strings.ToLower(k.String())] = k
	}
	m := make(map[ebiten.Key]keypad.Key, len(b))
	for name, key := range b {
		k, ok := names[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("display: unknown keyboard key %q", name)
		}
		m[k] |= key
	}
	return m, nil
}
