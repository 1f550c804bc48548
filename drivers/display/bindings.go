package display

import (
	"fmt"

	"github.com/AntonioND/nds-rtt-example/hw/keypad"
)

// Bindings maps host keyboard key names, as ebiten spells them, to keypad
// keys.
type Bindings map[string]keypad.Key

func DefaultBindings() Bindings {
	return Bindings{
		"ArrowUp":    keypad.Up,
		"ArrowDown":  keypad.Down,
		"ArrowLeft":  keypad.Left,
		"ArrowRight": keypad.Right,
		"X":          keypad.A,
		"Z":          keypad.B,
		"S":          keypad.X,
		"A":          keypad.Y,
		"Q":          keypad.L,
		"W":          keypad.R,
		"Enter":      keypad.Start,
		"Backspace":  keypad.Select,
	}
}

// ParseBindings converts a host key to keypad key name table, as found in
// configuration files, into Bindings.
func ParseBindings(m map[string]string) (Bindings, error) {
	b := make(Bindings, len(m))
	for host, name := range m {
		k, ok := keypad.ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("display: unknown keypad key %q for %q", name, host)
		}
		b[host] = k
	}
	return b, nil
}
