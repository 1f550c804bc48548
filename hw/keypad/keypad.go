// Package keypad models the KEYINPUT register.  Bits are active low: a
// cleared bit means the key is pressed.  X and Y, which the hardware reports
// through a separate register, are folded in above the ten KEYINPUT keys.
package keypad

import (
	"strings"
	"sync/atomic"
)

type Key uint16

const (
	A Key = 1 << iota
	B
	Select
	Start
	Right
	Left
	Up
	Down
	R
	L
	X
	Y

	All = 1<<12 - 1
)

var names = [...]string{"A", "B", "SELECT", "START", "RIGHT", "LEFT", "UP", "DOWN", "R", "L", "X", "Y"}

func (k Key) String() string {
	var b strings.Builder
	for i, n := range names {
		if k&(1<<i) != 0 {
			if b.Len() > 0 {
				b.WriteByte('|')
			}
			b.WriteString(n)
		}
	}
	return b.String()
}

// ParseKey returns the key with the given name, as printed by String.
func ParseKey(name string) (Key, bool) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return 1 << i, true
		}
	}
	return 0, false
}

// Register is safe for concurrent use, as the host input handler and the
// program may run on different goroutines.
type Register struct {
	pressed atomic.Uint32
}

func (r *Register) Press(k Key)   { r.update(func(v Key) Key { return v | k&All }) }
func (r *Register) Release(k Key) { r.update(func(v Key) Key { return v &^ k }) }

// Set replaces the set of pressed keys.
func (r *Register) Set(k Key) { r.pressed.Store(uint32(k & All)) }

func (r *Register) update(f func(Key) Key) {
	for {
		old := r.pressed.Load()
		if r.pressed.CompareAndSwap(old, uint32(f(Key(old)))) {
			return
		}
	}
}

// Read returns the raw, active low register value.
func (r *Register) Read() uint16 {
	return uint16(^Key(r.pressed.Load()) & All)
}
