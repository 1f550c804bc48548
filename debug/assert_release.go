//go:build !debug

// Package debug has assertions for invariants of the hardware model and the
// demo.  They panic in builds with the debug tag and do nothing otherwise.
package debug

// Enabled is true in builds with the debug tag.  Checks that cost more than
// a comparison belong in an `if debug.Enabled` block.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
