package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery when the owning Layout is unreachable.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Write(csiSGR0)
	w.Write(csiDefaultFg)
	w.Write(csiDefaultBg)
	w.Write(csiClear)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone do not restore termios
	resetTerminalMode()
}

// HardReset emits RIS, which also discards scrollback on most terminals
func HardReset(w io.Writer) {
	w.Write(csiRIS)
	resetTerminalMode()
}
