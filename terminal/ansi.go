package terminal

import (
	"io"

	"github.com/gdamore/tcell/v2"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiClear = []byte("\x1b[2J\x1b[H")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: ?7l keeps the cursor at the right edge so writing the bottom-right cell does not scroll
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Color
	csiFg256     = []byte("\x1b[38;5;") // followed by N m
	csiBg256     = []byte("\x1b[48;5;") // followed by N m
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;B m
	csiBgRGB     = []byte("\x1b[48;2;") // followed by R;G;B m
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

// Sequences exposed for callers that verify recorded output
var (
	// SeqClear erases the full screen and homes the cursor
	SeqClear = string(csiClear)
	// SeqResetColors resets foreground then background to terminal defaults
	SeqResetColors = string(csiDefaultFg) + string(csiDefaultBg)
)

// SeqWriter is satisfied by *bytes.Buffer and *bufio.Writer
type SeqWriter interface {
	io.Writer
	io.ByteWriter
}

// writeInt writes a non-negative integer without allocation
func writeInt(w SeqWriter, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// WriteClear emits the full-screen clear sequence
func WriteClear(w SeqWriter) {
	w.Write(csiClear)
}

// WriteResetColors emits default foreground and default background
func WriteResetColors(w SeqWriter) {
	w.Write(csiDefaultFg)
	w.Write(csiDefaultBg)
}

// WriteCursorPos positions the cursor, 0-indexed input
func WriteCursorPos(w SeqWriter, row, col int) {
	w.Write(csi)
	writeInt(w, row+1)
	w.WriteByte(';')
	writeInt(w, col+1)
	w.WriteByte('H')
}

// WriteFg emits a set-foreground sequence for c
// tcell.ColorNone emits nothing, tcell.ColorDefault and tcell.ColorReset emit the default
func WriteFg(w SeqWriter, c tcell.Color) {
	writeColor(w, c, true)
}

// WriteBg emits a set-background sequence for c
func WriteBg(w SeqWriter, c tcell.Color) {
	writeColor(w, c, false)
}

func writeColor(w SeqWriter, c tcell.Color, fg bool) {
	if c == tcell.ColorNone {
		return
	}

	if c == tcell.ColorDefault || c == tcell.ColorReset || !c.Valid() {
		if fg {
			w.Write(csiDefaultFg)
		} else {
			w.Write(csiDefaultBg)
		}
		return
	}

	if c.IsRGB() {
		r, g, b := c.RGB()
		if fg {
			w.Write(csiFgRGB)
		} else {
			w.Write(csiBgRGB)
		}
		writeInt(w, int(r))
		w.WriteByte(';')
		writeInt(w, int(g))
		w.WriteByte(';')
		writeInt(w, int(b))
		w.WriteByte('m')
		return
	}

	idx := int(c - tcell.ColorValid)
	base := 30
	if !fg {
		base = 40
	}

	switch {
	case idx < 8:
		w.Write(csi)
		writeInt(w, base+idx)
		w.WriteByte('m')
	case idx < 16:
		w.Write(csi)
		writeInt(w, base+60+idx-8)
		w.WriteByte('m')
	default:
		if fg {
			w.Write(csiFg256)
		} else {
			w.Write(csiBg256)
		}
		writeInt(w, idx&0xff)
		w.WriteByte('m')
	}
}
