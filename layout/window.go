package layout

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/splitterm/terminal"
)

// Position is the top-left origin of a region, 0-indexed
type Position struct {
	Row int
	Col int
}

// Size is the extent of a region in cells
type Size struct {
	Height int
	Width  int
}

// Window is a fixed rectangular region of the terminal.
// It holds the same Sink as the Layout that produced it and never owns it.
// Once the Layout is closed every write fails with ErrSinkClosed.
type Window struct {
	sink *Sink
	pos  Position
	size Size
}

// newWindow assembles a window; bounds are trusted from the Layout
func newWindow(sink *Sink, pos Position, size Size) *Window {
	return &Window{sink: sink, pos: pos, size: size}
}

// Position returns the window origin
func (w *Window) Position() Position {
	return w.pos
}

// Size returns the window extent
func (w *Window) Size() Size {
	return w.size
}

// Draw gives fn exclusive access to the terminal through a region-relative Pen.
// Everything fn draws is emitted as one uninterrupted sequence and flushed.
// If fn returns an error nothing is emitted.
func (w *Window) Draw(fn func(p *Pen) error) error {
	return w.sink.With(func(buf *bytes.Buffer) error {
		p := &Pen{buf: buf, win: w}
		p.MoveTo(0, 0)
		return fn(p)
	})
}

// WriteRow replaces row with text in the given colors, padding to the window width
func (w *Window) WriteRow(row int, text string, fg, bg tcell.Color) error {
	return w.Draw(func(p *Pen) error {
		p.SetForeground(fg)
		p.SetBackground(bg)
		p.Row(row, text)
		p.ResetColors()
		return nil
	})
}

// Erase blanks the whole window with default colors
func (w *Window) Erase() error {
	return w.Draw(func(p *Pen) error {
		p.ResetColors()
		p.Fill()
		return nil
	})
}

// Pen writes into a window's staged output.
// Coordinates are relative to the window; text is clipped at the right edge.
type Pen struct {
	buf *bytes.Buffer
	win *Window
	row int
	col int
}

// MoveTo positions the cursor, clamped into the window
func (p *Pen) MoveTo(row, col int) {
	size := p.win.size
	row = clamp(row, 0, size.Height-1)
	col = clamp(col, 0, size.Width-1)

	p.row = row
	p.col = col
	terminal.WriteCursorPos(p.buf, p.win.pos.Row+row, p.win.pos.Col+col)
}

// Cursor returns the current window-relative cursor position
func (p *Pen) Cursor() (row, col int) {
	return p.row, p.col
}

// Remaining returns how many cells are left on the current row
func (p *Pen) Remaining() int {
	return p.win.size.Width - p.col
}

// SetForeground sets the text color for subsequent output
func (p *Pen) SetForeground(c tcell.Color) {
	terminal.WriteFg(p.buf, c)
}

// SetBackground sets the background color for subsequent output
func (p *Pen) SetBackground(c tcell.Color) {
	terminal.WriteBg(p.buf, c)
}

// ResetColors restores terminal default colors
func (p *Pen) ResetColors() {
	terminal.WriteResetColors(p.buf)
}

// Print writes text at the cursor and returns the number of cells used.
// Control characters are replaced so they cannot move the cursor or start escape sequences.
func (p *Pen) Print(text string) int {
	avail := p.Remaining()
	if avail <= 0 || text == "" {
		return 0
	}

	text = strings.Map(sanitizeRune, text)
	if runewidth.StringWidth(text) > avail {
		text = runewidth.Truncate(text, avail, "")
	}

	n := runewidth.StringWidth(text)
	p.buf.WriteString(text)
	p.col += n
	return n
}

// Row moves to the start of row, prints text and pads the rest of the row with spaces
func (p *Pen) Row(row int, text string) {
	p.MoveTo(row, 0)
	p.Print(text)
	if pad := p.Remaining(); pad > 0 {
		p.buf.WriteString(strings.Repeat(" ", pad))
		p.col += pad
	}
}

// Fill blanks every row of the window with the current background
func (p *Pen) Fill() {
	for row := 0; row < p.win.size.Height; row++ {
		p.Row(row, "")
	}
}

func sanitizeRune(r rune) rune {
	if r == '\t' {
		return ' '
	}
	if unicode.IsControl(r) {
		return '?'
	}
	return r
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
