package machine

import (
	"bytes"
	"sync"

	"github.com/AntonioND/nds-rtt-example/hw"
)

// DebugWriter models the emulator debug message port.  Text written to it is
// split into lines and each line is logged.
type DebugWriter struct {
	mu  sync.Mutex
	buf []byte
}

func (w *DebugWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush logs a pending partial line.
func (w *DebugWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.buf) > 0 {
		w.emit(w.buf)
		w.buf = w.buf[:0]
	}
}

func (w *DebugWriter) emit(line []byte) {
	// Escape sequences only make sense on the console.
	line = bytes.TrimSpace(stripEscapes(line))
	if len(line) > 0 {
		hw.Logger().Info(string(line), "source", "debug")
	}
}

func stripEscapes(p []byte) []byte {
	out := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		if p[i] != 0x1b {
			out = append(out, p[i])
			continue
		}
		if i+1 < len(p) && p[i+1] == '[' {
			i += 2
			for i < len(p) && (p[i] < 0x40 || p[i] > 0x7e) {
				i++
			}
		}
	}
	return out
}
