// Package hw models the hardware of a dual-screen handheld that the demo
// runs on: VRAM banks, the 3D geometry engine, the display capture unit, the
// two display engines and the keypad.
//
// The subpackages expose the hardware at register level and are in general
// unforgiving: misconfiguration is logged, not reported as an error. Use the
// drivers and the machine package to build programs instead.
package hw

// GBATEK: https://problemkaputt.de/gbatek.htm
