// Package controller tracks the keypad state between scans.
package controller

import "github.com/AntonioND/nds-rtt-example/hw/keypad"

type Controller struct {
	reg           *keypad.Register
	current, last keypad.Key
}

func New(reg *keypad.Register) *Controller {
	return &Controller{reg: reg}
}

// Scan latches the current key state.  All other methods report the state
// as of the last Scan.
func (c *Controller) Scan() {
	c.last = c.current
	c.current = ^keypad.Key(c.reg.Read()) & keypad.All
}

func (c *Controller) Held() keypad.Key {
	return c.current
}

func (c *Controller) Changed() keypad.Key {
	return c.current ^ c.last
}

func (c *Controller) Pressed() keypad.Key {
	return c.Changed() & c.current
}

func (c *Controller) Released() keypad.Key {
	return c.Changed() & c.last
}
