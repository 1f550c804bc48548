package controller_test

import (
	"testing"

	"github.com/AntonioND/nds-rtt-example/drivers/controller"
	"github.com/AntonioND/nds-rtt-example/hw/keypad"
)

func TestController(t *testing.T) {
	var reg keypad.Register
	c := controller.New(&reg)

	type want struct{ held, pressed, released keypad.Key }
	for i, step := range []struct {
		keys keypad.Key
		want want
	}{
		{0, want{}},
		{keypad.A, want{keypad.A, keypad.A, 0}},
		{keypad.A | keypad.Up, want{keypad.A | keypad.Up, keypad.Up, 0}},
		{keypad.Up, want{keypad.Up, 0, keypad.A}},
		{keypad.Up, want{keypad.Up, 0, 0}},
		{0, want{0, 0, keypad.Up}},
	} {
		reg.Set(step.keys)
		c.Scan()
		got := want{c.Held(), c.Pressed(), c.Released()}
		if got != step.want {
			t.Errorf("scan %d: got %+v, want %+v", i, got, step.want)
		}
	}
}
