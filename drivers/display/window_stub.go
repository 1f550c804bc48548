//go:build !cgo

package display

import (
	"errors"

	"github.com/AntonioND/nds-rtt-example/hw/keypad"
)

type WindowConfig struct {
	Title   string
	Scale   int
	TPS     int
	ShowFPS bool
	Keys    Bindings
}

func RunWindow(cfg WindowConfig, scr *Screens, keys *keypad.Register, step func() error) error {
	return errors.New("window mode requires cgo (build with CGO_ENABLED=1), use -headless")
}
