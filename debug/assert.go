//go:build debug

package debug

// Enabled is true in builds with the debug tag.  Checks that cost more than
// a comparison belong in an `if debug.Enabled` block.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic("assertion failed: " + message)
	}
}

func AssertErrNil(err error) {
	if err != nil {
		panic(err)
	}
}
